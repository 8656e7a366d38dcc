// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package column

// singleton keys inside the meta and messaging columns
var (
	CurrentSyncingTips     = []byte("CURRENT_SYNCING_TIPS")
	LastProvedBlock        = []byte("LAST_PROVED_BLOCK")
	LastSyncedL1EventBlock = []byte("LAST_SYNCED_L1_EVENT_BLOCK")
)

// SchemaKey - records the column count the database was written with
//
// the leading zero byte keeps it apart from the printable static keys
var SchemaKey = []byte{0x00, 'S', 'C', 'H', 'E', 'M', 'A'}
