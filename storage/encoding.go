// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/deoxys-node/deoxysdb/dbhash"
	"github.com/deoxys-node/deoxysdb/fault"
	"github.com/deoxys-node/deoxysdb/util"
)

const uint64Length = 8

func uint64ToBytes(n uint64) []byte {
	buffer := make([]byte, uint64Length)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}

func bytesToUint64(buffer []byte) (uint64, error) {
	if uint64Length != len(buffer) {
		return 0, fmt.Errorf("%w: integer: expected: %d  actual: %d", fault.ErrCorruptedRecord, uint64Length, len(buffer))
	}
	return binary.BigEndian.Uint64(buffer), nil
}

// varint count followed by the packed hashes
func packHashes(hashes []dbhash.Hash) []byte {
	buffer := util.ToVarint64(uint64(len(hashes)))
	for _, h := range hashes {
		buffer = append(buffer, h[:]...)
	}
	return buffer
}

func unpackHashes(buffer []byte) ([]dbhash.Hash, error) {
	count, n := util.FromVarint64(buffer)
	if 0 == n {
		return nil, fmt.Errorf("%w: hash list: truncated count", fault.ErrCorruptedRecord)
	}
	buffer = buffer[n:]
	if count > uint64(len(buffer))/dbhash.Length || uint64(len(buffer)) != count*dbhash.Length {
		return nil, fmt.Errorf("%w: hash list: count: %d  bytes: %d", fault.ErrCorruptedRecord, count, len(buffer))
	}

	hashes := make([]dbhash.Hash, count)
	for i := range hashes {
		copy(hashes[i][:], buffer[i*dbhash.Length:])
	}
	return hashes, nil
}

func bytesToHash(buffer []byte) (dbhash.Hash, error) {
	var h dbhash.Hash
	if err := dbhash.FromBytes(&h, buffer); nil != err {
		return h, fmt.Errorf("%w: %v", fault.ErrCorruptedRecord, err)
	}
	return h, nil
}
