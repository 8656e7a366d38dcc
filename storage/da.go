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

// DAStore - state diff facts waiting to be published
type DAStore struct {
	engine engine.Engine
}

// Stage - keep the fact of a block until it is cleared
func (d *DAStore) Stage(block dbhash.Hash, fact []byte) error {
	if 0 == len(fact) {
		return fault.ErrEmptyValue
	}
	b := engine.NewBatch()
	b.Put(column.DA, block[:], fact)
	return d.engine.Write(b)
}

// Get - the staged fact of a block
func (d *DAStore) Get(block dbhash.Hash) ([]byte, bool, error) {
	return get(d.engine, column.DA, block[:])
}

// Clear - drop a fact once published, clearing an absent block is not an error
func (d *DAStore) Clear(block dbhash.Hash) error {
	return d.engine.Delete(column.DA, block[:])
}

// Pending - visit every staged fact in block hash order
func (d *DAStore) Pending(f func(block dbhash.Hash, fact []byte) error) error {
	return d.engine.Iterate(column.DA, nil, nil, func(key []byte, value []byte) error {
		block, err := bytesToHash(key)
		if nil != err {
			return err
		}
		return f(block, value)
	})
}
