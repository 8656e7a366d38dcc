// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package column_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deoxys-node/deoxysdb/column"
)

// the ordinals are an on-disk format and must never change
func TestOrdinals(t *testing.T) {
	expected := []struct {
		c column.Column
		n uint32
	}{
		{column.Meta, 0},
		{column.BlockMapping, 1},
		{column.TransactionMapping, 2},
		{column.SyncedMapping, 3},
		{column.DA, 4},
		{column.TransactionHashesCache, 5},
		{column.Messaging, 6},
		{column.CompiledClasses, 7},
		{column.L1HandlerPaidFee, 8},
		{column.TrieContracts, 9},
		{column.FlatContracts, 10},
		{column.LogContracts, 11},
		{column.TrieClasses, 12},
		{column.FlatClasses, 13},
		{column.LogClasses, 14},
		{column.TrieStorage, 15},
		{column.FlatStorage, 16},
		{column.LogStorage, 17},
	}
	assert.Equal(t, column.Count, len(expected), "column count changed without updating test")
	for _, e := range expected {
		assert.Equal(t, e.n, uint32(e.c), "wrong ordinal for: %s", e.c)
	}
}

func TestNamesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range column.All() {
		assert.True(t, c.Valid(), "invalid: %d", c)
		assert.NotEmpty(t, c.Name(), "empty name: %d", c)
		assert.False(t, seen[c.Name()], "duplicate name: %s", c.Name())
		seen[c.Name()] = true
	}
}

func TestByName(t *testing.T) {
	c, ok := column.ByName("messaging")
	assert.True(t, ok, "name not found")
	assert.Equal(t, column.Messaging, c, "wrong column")

	c, ok = column.ByName("15")
	assert.True(t, ok, "number not found")
	assert.Equal(t, column.TrieStorage, c, "wrong column")

	_, ok = column.ByName("18")
	assert.False(t, ok, "out of range accepted")

	_, ok = column.ByName("nonexistent")
	assert.False(t, ok, "unknown name accepted")
}

func TestInvalidColumnName(t *testing.T) {
	c := column.Column(column.Count)
	assert.False(t, c.Valid(), "count should be out of range")
	assert.Equal(t, "column(18)", c.Name(), "wrong placeholder name")
}
