// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/deoxys-node/deoxysdb/column"
	"github.com/deoxys-node/deoxysdb/engine"
	"github.com/deoxys-node/deoxysdb/fault"
)

// Config - how to open a backend
type Config struct {
	Engine            engine.Kind
	ConfigDirectory   string // databases live in <ConfigDirectory>/starknet/<engine>
	CacheSize         int    // MiB, leveldb only
	CacheTransactions bool   // keep per block transaction lists
}

// Backend - all stores sharing a single engine
type Backend struct {
	sync.Mutex
	engine   engine.Engine
	log      *logger.L
	closed   bool
	mapping  *MappingStore
	meta     *MetaStore
	da       *DAStore
	messages *MessagingStore
	classes  *ClassStore
	contract *TrieStore
	class    *TrieStore
	storage  *TrieStore
	fees     *FeeStore
}

// Open - open the engine selected by the configuration and build the
// stores on top of it
func Open(cfg Config) (*Backend, error) {
	if "" == cfg.ConfigDirectory {
		return nil, fault.ErrMissingConfigDir
	}

	settings := engine.DefaultSettings(cfg.Engine, cfg.ConfigDirectory, cfg.CacheSize)
	e, err := engine.Open(settings)
	if nil != err {
		return nil, err
	}
	return New(e, cfg.CacheTransactions), nil
}

// New - build a backend over an open engine, which the backend now owns
func New(e engine.Engine, cacheTransactions bool) *Backend {
	log := logger.New("storage")
	log.Infof("backend: %s  cache transactions: %t", e.Kind(), cacheTransactions)

	return &Backend{
		engine:   e,
		log:      log,
		mapping:  newMappingStore(e, cacheTransactions),
		meta:     &MetaStore{engine: e},
		da:       &DAStore{engine: e},
		messages: &MessagingStore{engine: e},
		classes:  newClassStore(e),
		contract: newTrieStore(e, "contract", column.TrieContracts, column.FlatContracts, column.LogContracts),
		class:    newTrieStore(e, "class", column.TrieClasses, column.FlatClasses, column.LogClasses),
		storage:  newTrieStore(e, "storage", column.TrieStorage, column.FlatStorage, column.LogStorage),
		fees:     newFeeStore(e),
	}
}

// Mapping - block and transaction hash mappings
func (b *Backend) Mapping() *MappingStore {
	return b.mapping
}

// Meta - syncing tips and last proved block
func (b *Backend) Meta() *MetaStore {
	return b.meta
}

// DA - data availability facts
func (b *Backend) DA() *DAStore {
	return b.da
}

// Messaging - L1 message sync cursor
func (b *Backend) Messaging() *MessagingStore {
	return b.messages
}

// CompiledClasses - compiled classes by class hash
func (b *Backend) CompiledClasses() *ClassStore {
	return b.classes
}

// TrieContract - contract trie columns
func (b *Backend) TrieContract() *TrieStore {
	return b.contract
}

// TrieClass - class trie columns
func (b *Backend) TrieClass() *TrieStore {
	return b.class
}

// TrieStorage - contract storage trie columns
func (b *Backend) TrieStorage() *TrieStore {
	return b.storage
}

// L1HandlerPaidFee - paid fee per L1 handler nonce
func (b *Backend) L1HandlerPaidFee() *FeeStore {
	return b.fees
}

// Engine - the underlying engine
func (b *Backend) Engine() engine.Engine {
	return b.engine
}

// NewBatch - a batch that may collect mutations from several stores
func (b *Backend) NewBatch() *engine.Batch {
	return engine.NewBatch()
}

// Commit - apply a batch atomically
func (b *Backend) Commit(batch *engine.Batch) error {
	n := batch.Len()
	if err := b.engine.Write(batch); nil != err {
		b.log.Errorf("commit: %d operations  error: %s", n, err)
		return err
	}
	b.log.Debugf("commit: %d operations", n)
	return nil
}

// Close - close the engine, later calls do nothing
func (b *Backend) Close() error {
	b.Lock()
	defer b.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	b.log.Info("close")
	return b.engine.Close()
}

// read a value, absence is not an error
func get(e engine.Engine, c column.Column, key []byte) ([]byte, bool, error) {
	value, err := e.Get(c, key)
	if fault.IsErrNotFound(err) {
		return nil, false, nil
	} else if nil != err {
		return nil, false, err
	}
	return value, true, nil
}
