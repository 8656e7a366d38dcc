// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"github.com/deoxys-node/deoxysdb/column"
	"github.com/deoxys-node/deoxysdb/fault"
)

type operation int

const (
	opPut operation = iota
	opDelete
)

type batchItem struct {
	op     operation
	column column.Column
	key    []byte
	value  []byte
}

// Batch - a set of writes across any columns applied as one unit
//
// not safe for concurrent use; keys and values are copied on entry
type Batch struct {
	items []batchItem
}

// NewBatch - create an empty batch
func NewBatch() *Batch {
	return &Batch{}
}

// Put - add a store operation
func (b *Batch) Put(c column.Column, key []byte, value []byte) {
	mustBeValid(c)
	b.items = append(b.items, batchItem{
		op:     opPut,
		column: c,
		key:    clone(key),
		value:  clone(value),
	})
}

// Delete - add a remove operation
func (b *Batch) Delete(c column.Column, key []byte) {
	mustBeValid(c)
	b.items = append(b.items, batchItem{
		op:     opDelete,
		column: c,
		key:    clone(key),
	})
}

// Append - move all operations of another batch to the end of this one
func (b *Batch) Append(other *Batch) {
	if nil == other {
		return
	}
	b.items = append(b.items, other.items...)
	other.Reset()
}

// Len - number of operations
func (b *Batch) Len() int {
	if nil == b {
		return 0
	}
	return len(b.items)
}

// Reset - discard all operations
func (b *Batch) Reset() {
	b.items = b.items[:0]
}

// every operation needs a key; bolt cannot store an empty one
func (b *Batch) validate() error {
	for _, item := range b.items {
		if 0 == len(item.key) {
			return fault.ErrEmptyKey
		}
	}
	return nil
}

func clone(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
