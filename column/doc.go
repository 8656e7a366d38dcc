// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package column - the fixed column scheme multiplexed onto one engine
//
// Column numbers are stored on disk (as a key prefix byte for LevelDB
// and as a bucket name for Bolt) so they must be reproduced exactly:
//
//	0      meta
//	1      block mapping
//	2      transaction mapping
//	3      synced mapping
//	4      data availability
//	5      transaction hashes cache
//	6      messaging
//	7      compiled (sierra) classes
//	8      l1 handler paid fee
//	9..11  contract trie / flat / log
//	12..14 class trie / flat / log
//	15..17 storage trie / flat / log
package column
