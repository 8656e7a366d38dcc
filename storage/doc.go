// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - the typed stores of a Starknet client database
//
// A Backend owns one engine and hands out stores that each work on
// their own columns of it:
//
//	Mapping()          domain <-> outer block hashes and transactions
//	Meta()             syncing tips and last proved block
//	DA()               data availability facts awaiting settlement
//	Messaging()        L1 event cursor
//	L1HandlerPaidFee() paid fee per L1 handler nonce
//	CompiledClasses()  compiled class bytes by class hash
//	TrieContract()     contract trie columns
//	TrieClass()        class trie columns
//	TrieStorage()      storage trie columns
//
// All stores are safe for concurrent use.
package storage
