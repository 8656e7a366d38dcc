// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/deoxys-node/deoxysdb/column"
	"github.com/deoxys-node/deoxysdb/engine"
	"github.com/deoxys-node/deoxysdb/fault"
)

// EventCursor - position of the last processed L1 message event
type EventCursor struct {
	BlockNumber uint64
	EventIndex  uint64
}

const eventCursorLength = 2 * uint64Length

// MessagingStore - L1 to L2 message sync progress
type MessagingStore struct {
	engine engine.Engine
}

// LastSyncedEventBlock - the L1 block of the last processed event
func (m *MessagingStore) LastSyncedEventBlock() (uint64, bool, error) {
	cursor, found, err := m.LastSyncedEvent()
	return cursor.BlockNumber, found, err
}

// SetLastSyncedEventBlock - record a block with event index zero
func (m *MessagingStore) SetLastSyncedEventBlock(n uint64) error {
	return m.SetLastSyncedEvent(EventCursor{BlockNumber: n})
}

// LastSyncedEvent - the full event cursor
//
// a record holding only a block number has event index zero
func (m *MessagingStore) LastSyncedEvent() (EventCursor, bool, error) {
	value, found, err := get(m.engine, column.Messaging, column.LastSyncedL1EventBlock)
	if !found || nil != err {
		return EventCursor{}, false, err
	}

	switch len(value) {
	case uint64Length:
		return EventCursor{BlockNumber: binary.BigEndian.Uint64(value)}, true, nil
	case eventCursorLength:
		return EventCursor{
			BlockNumber: binary.BigEndian.Uint64(value[:uint64Length]),
			EventIndex:  binary.BigEndian.Uint64(value[uint64Length:]),
		}, true, nil
	default:
		return EventCursor{}, false, fmt.Errorf("%w: event cursor length: %d", fault.ErrCorruptedRecord, len(value))
	}
}

// SetLastSyncedEvent - record the event cursor
func (m *MessagingStore) SetLastSyncedEvent(cursor EventCursor) error {
	value := make([]byte, 0, eventCursorLength)
	value = append(value, uint64ToBytes(cursor.BlockNumber)...)
	value = append(value, uint64ToBytes(cursor.EventIndex)...)

	b := engine.NewBatch()
	b.Put(column.Messaging, column.LastSyncedL1EventBlock, value)
	return m.engine.Write(b)
}
