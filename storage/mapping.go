// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/deoxys-node/deoxysdb/column"
	"github.com/deoxys-node/deoxysdb/dbhash"
	"github.com/deoxys-node/deoxysdb/engine"
	"github.com/deoxys-node/deoxysdb/fault"
)

// BlockMapping - one domain block and the outer block that carried it
type BlockMapping struct {
	DomainHash        dbhash.Hash
	OuterHash         dbhash.Hash
	Number            uint64
	TransactionHashes []dbhash.Hash
}

// synced marker for an outer block without a domain block
var noDomainBlock = []byte{0x00}

const blockMappingRecordLength = dbhash.Length + uint64Length

// MappingStore - block and transaction hash mappings
type MappingStore struct {
	engine            engine.Engine
	cacheTransactions bool
	log               *logger.L
}

func newMappingStore(e engine.Engine, cacheTransactions bool) *MappingStore {
	return &MappingStore{
		engine:            e,
		cacheTransactions: cacheTransactions,
		log:               logger.New("mapping"),
	}
}

// WriteBlockMapping - record a block using the backend transaction
// caching setting
func (m *MappingStore) WriteBlockMapping(bm BlockMapping) error {
	return m.WriteBlockMappingWithCache(bm, m.cacheTransactions)
}

// WriteBlockMappingWithCache - record a block, every column in one batch
//
// the transaction list is only stored in the hashes cache column when
// cacheTransactions is set
func (m *MappingStore) WriteBlockMappingWithCache(bm BlockMapping, cacheTransactions bool) error {
	b := engine.NewBatch()

	record := make([]byte, 0, blockMappingRecordLength)
	record = append(record, bm.OuterHash[:]...)
	record = append(record, uint64ToBytes(bm.Number)...)

	b.Put(column.BlockMapping, bm.DomainHash[:], record)
	b.Put(column.SyncedMapping, bm.OuterHash[:], bm.DomainHash[:])
	for _, tx := range bm.TransactionHashes {
		b.Put(column.TransactionMapping, tx[:], bm.DomainHash[:])
	}
	if cacheTransactions {
		b.Put(column.TransactionHashesCache, bm.DomainHash[:], packHashes(bm.TransactionHashes))
	}

	if err := m.engine.Write(b); nil != err {
		m.log.Errorf("write block: %d  domain: %v  error: %s", bm.Number, bm.DomainHash, err)
		return err
	}
	m.log.Debugf("block: %d  domain: %v  outer: %v  transactions: %d", bm.Number, bm.DomainHash, bm.OuterHash, len(bm.TransactionHashes))
	return nil
}

// WriteNone - mark an outer block as synced when it carries no domain block
func (m *MappingStore) WriteNone(outer dbhash.Hash) error {
	b := engine.NewBatch()
	b.Put(column.SyncedMapping, outer[:], noDomainBlock)
	return m.engine.Write(b)
}

// IsSynced - true once an outer block has been recorded
func (m *MappingStore) IsSynced(outer dbhash.Hash) (bool, error) {
	return m.engine.Has(column.SyncedMapping, outer[:])
}

// DomainHash - the domain block carried by an outer block
//
// found is false both for unknown blocks and for blocks written with WriteNone
func (m *MappingStore) DomainHash(outer dbhash.Hash) (dbhash.Hash, bool, error) {
	value, found, err := get(m.engine, column.SyncedMapping, outer[:])
	if !found || nil != err {
		return dbhash.Hash{}, false, err
	}
	if 1 == len(value) && noDomainBlock[0] == value[0] {
		return dbhash.Hash{}, false, nil
	}

	h, err := bytesToHash(value)
	if nil != err {
		return dbhash.Hash{}, false, err
	}
	return h, true, nil
}

func (m *MappingStore) blockRecord(domain dbhash.Hash) ([]byte, bool, error) {
	value, found, err := get(m.engine, column.BlockMapping, domain[:])
	if !found || nil != err {
		return nil, false, err
	}
	if blockMappingRecordLength != len(value) {
		return nil, false, fmt.Errorf("%w: block mapping: %v  length: %d", fault.ErrCorruptedRecord, domain, len(value))
	}
	return value, true, nil
}

// BlockHash - the outer hash of a domain block
func (m *MappingStore) BlockHash(domain dbhash.Hash) (dbhash.Hash, bool, error) {
	value, found, err := m.blockRecord(domain)
	if !found || nil != err {
		return dbhash.Hash{}, false, err
	}
	var h dbhash.Hash
	copy(h[:], value[:dbhash.Length])
	return h, true, nil
}

// BlockNumber - the number of a domain block
func (m *MappingStore) BlockNumber(domain dbhash.Hash) (uint64, bool, error) {
	value, found, err := m.blockRecord(domain)
	if !found || nil != err {
		return 0, false, err
	}
	n, err := bytesToUint64(value[dbhash.Length:])
	if nil != err {
		return 0, false, err
	}
	return n, true, nil
}

// TransactionHashes - the cached transaction list of a domain block
//
// not found when the block was written without transaction caching
func (m *MappingStore) TransactionHashes(domain dbhash.Hash) ([]dbhash.Hash, bool, error) {
	value, found, err := get(m.engine, column.TransactionHashesCache, domain[:])
	if !found || nil != err {
		return nil, false, err
	}
	hashes, err := unpackHashes(value)
	if nil != err {
		return nil, false, err
	}
	return hashes, true, nil
}

// TransactionBlockHash - the domain block containing a transaction
func (m *MappingStore) TransactionBlockHash(tx dbhash.Hash) (dbhash.Hash, bool, error) {
	value, found, err := get(m.engine, column.TransactionMapping, tx[:])
	if !found || nil != err {
		return dbhash.Hash{}, false, err
	}
	h, err := bytesToHash(value)
	if nil != err {
		return dbhash.Hash{}, false, err
	}
	return h, true, nil
}
