// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dbhash - the 32 byte hash used as key by every store
//
// Starknet block, transaction and class hashes as well as the hashes
// of the outer block envelopes all share this single opaque type.
package dbhash
