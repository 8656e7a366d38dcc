// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package column

import (
	"fmt"
)

// Column - identifier of a logical namespace on the single physical engine
//
// the numeric values are part of the on-disk format: never renumber,
// only append and bump Count
type Column uint32

// Count - total number of columns
//
// MUST BE INCREMENTED WHEN A NEW COLUMN IS ADDED
const Count = 18

// the column scheme - keep in numeric order
const (
	Meta               Column = 0
	BlockMapping       Column = 1 // domain block hash → outer hash ++ number
	TransactionMapping Column = 2 // transaction hash → domain block hash
	SyncedMapping      Column = 3 // outer block hash → domain block hash (0x00 if none)
	DA                 Column = 4

	// domain block hash → list of transaction hashes
	// only populated when transaction caching is enabled
	TransactionHashesCache Column = 5

	// last synchronised L1 block containing messaging events
	Messaging Column = 6

	CompiledClasses  Column = 7
	L1HandlerPaidFee Column = 8

	// the trie columns are triplicated, one trie/flat/log set for each
	// of the contract, class and storage tries
	TrieContracts Column = 9
	FlatContracts Column = 10
	LogContracts  Column = 11
	TrieClasses   Column = 12
	FlatClasses   Column = 13
	LogClasses    Column = 14
	TrieStorage   Column = 15
	FlatStorage   Column = 16
	LogStorage    Column = 17
)

var names = [Count]string{
	Meta:                   "meta",
	BlockMapping:           "block_mapping",
	TransactionMapping:     "transaction_mapping",
	SyncedMapping:          "synced_mapping",
	DA:                     "da",
	TransactionHashesCache: "starknet_transaction_hashes_cache",
	Messaging:              "messaging",
	CompiledClasses:        "sierra_contract_classes",
	L1HandlerPaidFee:       "l1_handler_paid_fee",
	TrieContracts:          "trie_bonsai_contracts",
	FlatContracts:          "flat_bonsai_contracts",
	LogContracts:           "log_bonsai_contracts",
	TrieClasses:            "trie_bonsai_classes",
	FlatClasses:            "flat_bonsai_classes",
	LogClasses:             "log_bonsai_classes",
	TrieStorage:            "trie_bonsai_storage",
	FlatStorage:            "flat_bonsai_storage",
	LogStorage:             "log_bonsai_storage",
}

// Valid - true if the column is part of the compiled-in scheme
func (c Column) Valid() bool {
	return c < Count
}

// Name - the stable textual name of a column
func (c Column) Name() string {
	if !c.Valid() {
		return fmt.Sprintf("column(%d)", uint32(c))
	}
	return names[c]
}

// String - for the fmt package
func (c Column) String() string {
	return c.Name()
}

// All - every column in numeric order
func All() []Column {
	all := make([]Column, Count)
	for i := range all {
		all[i] = Column(i)
	}
	return all
}

// ByName - look up a column by its name or by its number
func ByName(name string) (Column, bool) {
	for i, n := range names {
		if n == name {
			return Column(i), true
		}
	}
	var n uint32
	if _, err := fmt.Sscanf(name, "%d", &n); nil == err && Column(n).Valid() {
		return Column(n), true
	}
	return 0, false
}
