// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/deoxys-node/deoxysdb/column"
	"github.com/deoxys-node/deoxysdb/dbhash"
	"github.com/deoxys-node/deoxysdb/engine"
	"github.com/deoxys-node/deoxysdb/fault"
)

// MetaStore - chain wide singleton values
//
// the node cannot continue with damaged metadata, so a record that
// does not decode is fatal
type MetaStore struct {
	engine engine.Engine
}

// SyncingTips - the current syncing tips, empty if never set
func (m *MetaStore) SyncingTips() ([]dbhash.Hash, error) {
	value, found, err := get(m.engine, column.Meta, column.CurrentSyncingTips)
	if !found || nil != err {
		return []dbhash.Hash{}, err
	}

	tips, err := unpackHashes(value)
	if nil != err {
		fault.Panicf("meta: syncing tips: %s", err)
	}
	return tips, nil
}

// SetSyncingTips - replace the syncing tips
func (m *MetaStore) SetSyncingTips(tips []dbhash.Hash) error {
	b := engine.NewBatch()
	b.Put(column.Meta, column.CurrentSyncingTips, packHashes(tips))
	return m.engine.Write(b)
}

// LastProvedBlock - the most recent block with a settled proof
func (m *MetaStore) LastProvedBlock() (uint64, bool, error) {
	value, found, err := get(m.engine, column.Meta, column.LastProvedBlock)
	if !found || nil != err {
		return 0, false, err
	}

	n, err := bytesToUint64(value)
	if nil != err {
		fault.Panicf("meta: last proved block: %s", err)
	}
	return n, true, nil
}

// SetLastProvedBlock - record the last proved block
//
// no ordering is enforced, a lower number simply replaces the old one
func (m *MetaStore) SetLastProvedBlock(n uint64) error {
	b := engine.NewBatch()
	b.Put(column.Meta, column.LastProvedBlock, uint64ToBytes(n))
	return m.engine.Write(b)
}
