// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/logger"

	"github.com/deoxys-node/deoxysdb/column"
	"github.com/deoxys-node/deoxysdb/engine"
	"github.com/deoxys-node/deoxysdb/fault"
)

// Namespace - one of the three key spaces of a trie domain
type Namespace int

// trie namespaces
const (
	Trie Namespace = iota // trie nodes
	Flat                  // flat leaf values
	Log                   // change log for reverts
)

var namespaceNames = [...]string{
	Trie: "trie",
	Flat: "flat",
	Log:  "log",
}

func (ns Namespace) String() string {
	if ns < Trie || ns > Log {
		return "namespace(?)"
	}
	return namespaceNames[ns]
}

// TrieStore - the key/value surface an external trie library works on
//
// mutations take an optional batch; with a nil batch they are written
// immediately
type TrieStore struct {
	engine  engine.Engine
	domain  string
	columns [3]column.Column
	log     *logger.L
}

func newTrieStore(e engine.Engine, domain string, trie column.Column, flat column.Column, changes column.Column) *TrieStore {
	return &TrieStore{
		engine:  e,
		domain:  domain,
		columns: [3]column.Column{trie, flat, changes},
		log:     logger.New("trie-" + domain),
	}
}

// the column of a namespace, anything else is a programming error
func (t *TrieStore) column(ns Namespace) column.Column {
	if ns < Trie || ns > Log {
		fault.Panicf("%s: %s: %d", t.domain, fault.ErrInvalidNamespace, ns)
	}
	return t.columns[ns]
}

// Column - the engine column backing a namespace
func (t *TrieStore) Column(ns Namespace) column.Column {
	return t.column(ns)
}

// Get - read one value
func (t *TrieStore) Get(ns Namespace, key []byte) ([]byte, bool, error) {
	return get(t.engine, t.column(ns), key)
}

// Contains - true if the key is present
func (t *TrieStore) Contains(ns Namespace, key []byte) (bool, error) {
	return t.engine.Has(t.column(ns), key)
}

// GetByPrefix - all entries whose key starts with prefix, in key order
func (t *TrieStore) GetByPrefix(ns Namespace, prefix []byte) ([]engine.Element, error) {
	results := []engine.Element{}
	err := t.engine.Iterate(t.column(ns), prefix, nil, func(key []byte, value []byte) error {
		results = append(results, engine.Element{
			Key:   key,
			Value: value,
		})
		return nil
	})
	if nil != err {
		return nil, err
	}
	return results, nil
}

// Insert - store a value, into the batch if one is given
func (t *TrieStore) Insert(ns Namespace, key []byte, value []byte, batch *engine.Batch) error {
	if 0 == len(key) {
		return fault.ErrEmptyKey
	}
	if 0 == len(value) {
		return fault.ErrEmptyValue
	}
	c := t.column(ns)
	if nil != batch {
		batch.Put(c, key, value)
		return nil
	}
	b := engine.NewBatch()
	b.Put(c, key, value)
	return t.engine.Write(b)
}

// Remove - delete a key, into the batch if one is given
func (t *TrieStore) Remove(ns Namespace, key []byte, batch *engine.Batch) error {
	if 0 == len(key) {
		return fault.ErrEmptyKey
	}
	c := t.column(ns)
	if nil != batch {
		batch.Delete(c, key)
		return nil
	}
	return t.engine.Delete(c, key)
}

// RemoveByPrefix - delete every key starting with prefix in one write
func (t *TrieStore) RemoveByPrefix(ns Namespace, prefix []byte) error {
	c := t.column(ns)
	b := engine.NewBatch()
	err := t.engine.Iterate(c, prefix, nil, func(key []byte, value []byte) error {
		b.Delete(c, key)
		return nil
	})
	if nil != err {
		return err
	}
	t.log.Debugf("%s: remove prefix: %x  keys: %d", ns, prefix, b.Len())
	return t.engine.Write(b)
}

// NewBatch - an empty batch for staged mutations
func (t *TrieStore) NewBatch() *engine.Batch {
	return engine.NewBatch()
}

// WriteBatch - apply the staged mutations atomically
func (t *TrieStore) WriteBatch(batch *engine.Batch) error {
	return t.engine.Write(batch)
}
