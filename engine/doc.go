// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package engine - uniform key/value access over an embedded engine
//
// Two engines are supported, selected when the database is opened:
//
//	leveldb - log-structured merge tree; the columns are multiplexed
//	          onto a single key space by a one byte prefix so a key
//	          in column C is stored as: byte(C) ++ key
//
//	bolt    - paged B+tree with transactions; each column is a
//	          bucket named by the big endian uint32 column number,
//	          the data lives in a single file: <path>/data.db
//
//	auto    - use leveldb if one already exists, otherwise bolt
//
// All operations are synchronous.  A Batch is applied atomically: after
// a crash either every operation in it is visible or none is.
//
// The meta column holds a schema record: 0x00 ++ "SCHEMA" → the column
// count (big endian uint32) of the build that last opened the database.
// A database written by a build with more columns is refused.
package engine
