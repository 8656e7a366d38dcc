// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deoxys-node/deoxysdb/dbhash"
	"github.com/deoxys-node/deoxysdb/engine"
	"github.com/deoxys-node/deoxysdb/fault"
	"github.com/deoxys-node/deoxysdb/storage"
)

func TestDAStageGetClear(t *testing.T) {
	forEachBackend(t, false, func(t *testing.T, kind engine.Kind, dir string, b *storage.Backend) {
		da := b.DA()
		block := hashOf("H1")

		assert.Nil(t, da.Stage(block, []byte("fact-one")), "stage error")

		fact, found, err := da.Get(block)
		assert.Nil(t, err, "get error")
		assert.True(t, found, "fact not found")
		assert.Equal(t, []byte("fact-one"), fact, "wrong fact")

		assert.Nil(t, da.Clear(block), "clear error")
		_, found, err = da.Get(block)
		assert.Nil(t, err, "get error")
		assert.False(t, found, "fact not cleared")

		assert.Nil(t, da.Clear(block), "second clear error")

		assert.Equal(t, fault.ErrEmptyValue, da.Stage(block, nil), "empty fact accepted")
	})
}

func TestDAPending(t *testing.T) {
	forEachBackend(t, false, func(t *testing.T, kind engine.Kind, dir string, b *storage.Backend) {
		da := b.DA()
		staged := map[dbhash.Hash][]byte{
			hashOf("H1"): []byte("fact-1"),
			hashOf("H2"): []byte("fact-2"),
			hashOf("H3"): []byte("fact-3"),
		}
		for block, fact := range staged {
			assert.Nil(t, da.Stage(block, fact), "stage error")
		}
		assert.Nil(t, da.Clear(hashOf("H2")), "clear error")
		delete(staged, hashOf("H2"))

		seen := map[dbhash.Hash][]byte{}
		var previous []byte
		err := da.Pending(func(block dbhash.Hash, fact []byte) error {
			assert.True(t, bytes.Compare(previous, block[:]) < 0, "out of order")
			previous = block.Bytes()
			seen[block] = fact
			return nil
		})
		assert.Nil(t, err, "pending error")
		assert.Equal(t, staged, seen, "wrong pending facts")
	})
}
