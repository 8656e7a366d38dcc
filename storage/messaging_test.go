// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deoxys-node/deoxysdb/column"
	"github.com/deoxys-node/deoxysdb/engine"
	"github.com/deoxys-node/deoxysdb/fault"
	"github.com/deoxys-node/deoxysdb/storage"
)

func TestMessagingCursor(t *testing.T) {
	forEachBackend(t, false, func(t *testing.T, kind engine.Kind, dir string, b *storage.Backend) {
		messaging := b.Messaging()

		_, found, err := messaging.LastSyncedEventBlock()
		assert.Nil(t, err, "cursor error")
		assert.False(t, found, "cursor before first write")

		assert.Nil(t, messaging.SetLastSyncedEvent(storage.EventCursor{BlockNumber: 19, EventIndex: 4}), "set error")

		n, found, err := messaging.LastSyncedEventBlock()
		assert.Nil(t, err, "cursor error")
		assert.True(t, found, "cursor not found")
		assert.Equal(t, uint64(19), n, "wrong block")

		cursor, _, err := messaging.LastSyncedEvent()
		assert.Nil(t, err, "cursor error")
		assert.Equal(t, storage.EventCursor{BlockNumber: 19, EventIndex: 4}, cursor, "wrong cursor")

		assert.Nil(t, messaging.SetLastSyncedEventBlock(7), "set error")
		cursor, _, err = messaging.LastSyncedEvent()
		assert.Nil(t, err, "cursor error")
		assert.Equal(t, storage.EventCursor{BlockNumber: 7}, cursor, "block only write kept event index")
	})
}

func TestMessagingCursorSurvivesReopen(t *testing.T) {
	for _, kind := range []engine.Kind{engine.LevelDB, engine.Bolt} {
		dir := tempDirectory(t)

		b := openBackend(t, kind, dir, false)
		assert.Nil(t, b.Messaging().SetLastSyncedEventBlock(100), "%s: set error", kind)
		assert.Nil(t, b.Close(), "close error")

		b = openBackend(t, kind, dir, false)
		n, found, err := b.Messaging().LastSyncedEventBlock()
		assert.Nil(t, err, "%s: cursor error", kind)
		assert.True(t, found, "%s: cursor lost", kind)
		assert.Equal(t, uint64(100), n, "%s: wrong block", kind)
		assert.Nil(t, b.Close(), "close error")

		os.RemoveAll(dir)
	}
}

func TestMessagingLegacyRecord(t *testing.T) {
	forEachBackend(t, false, func(t *testing.T, kind engine.Kind, dir string, b *storage.Backend) {
		batch := b.NewBatch()
		batch.Put(column.Messaging, column.LastSyncedL1EventBlock, []byte{0, 0, 0, 0, 0, 0, 0x01, 0x00})
		assert.Nil(t, b.Commit(batch), "commit error")

		cursor, found, err := b.Messaging().LastSyncedEvent()
		assert.Nil(t, err, "cursor error")
		assert.True(t, found, "cursor not found")
		assert.Equal(t, storage.EventCursor{BlockNumber: 256}, cursor, "wrong cursor")

		batch = b.NewBatch()
		batch.Put(column.Messaging, column.LastSyncedL1EventBlock, []byte{0x01, 0x02, 0x03})
		assert.Nil(t, b.Commit(batch), "commit error")

		_, _, err = b.Messaging().LastSyncedEventBlock()
		assert.True(t, fault.IsErrRecord(err), "wrong error: %v", err)
	})
}
