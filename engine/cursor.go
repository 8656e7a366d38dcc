// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"errors"

	"github.com/deoxys-node/deoxysdb/column"
	"github.com/deoxys-node/deoxysdb/fault"
)

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// Cursor - pages through the keys of one column
type Cursor struct {
	engine Engine
	column column.Column
	prefix []byte
	start  []byte
}

// used to stop an iteration once a page is full
var errPageFull = errors.New("page full")

// page buffers grow beyond this on demand
const maxPreallocate = 1024

// NewCursor - initialise a cursor to the start of a column
func NewCursor(e Engine, c column.Column) *Cursor {
	mustBeValid(c)
	return &Cursor{
		engine: e,
		column: c,
	}
}

// Prefix - restrict the cursor to keys beginning with prefix
func (cursor *Cursor) Prefix(prefix []byte) *Cursor {
	cursor.prefix = clone(prefix)
	return cursor
}

// Seek - move cursor to specific key position
func (cursor *Cursor) Seek(key []byte) *Cursor {
	cursor.start = clone(key)
	return cursor
}

// Fetch - return up to count elements from the current position and
// advance past them
func (cursor *Cursor) Fetch(count int) ([]Element, error) {
	if nil == cursor || nil == cursor.engine {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	capacity := count
	if capacity > maxPreallocate {
		capacity = maxPreallocate
	}
	results := make([]Element, 0, capacity)
	err := cursor.engine.Iterate(cursor.column, cursor.prefix, cursor.start, func(key []byte, value []byte) error {
		results = append(results, Element{
			Key:   key,
			Value: value,
		})
		if len(results) >= count {
			return errPageFull
		}
		return nil
	})
	if nil != err && errPageFull != err {
		return nil, err
	}

	if n := len(results); n > 0 {
		// the smallest key after the last one returned
		cursor.start = append(clone(results[n-1].Key), 0x00)
	}
	return results, nil
}

// Map - run a function on all remaining elements
func (cursor *Cursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor || nil == cursor.engine {
		return fault.ErrInvalidCursor
	}
	return cursor.engine.Iterate(cursor.column, cursor.prefix, cursor.start, f)
}
