// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dbhash_test

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deoxys-node/deoxysdb/dbhash"
	"github.com/deoxys-node/deoxysdb/fault"
)

const stringHash = "0x047c3637b57c2b079b93c61539950c17e868a28f46cdef28f88521067f21e943"

func TestScanFmt(t *testing.T) {
	var h dbhash.Hash
	n, err := fmt.Sscan(stringHash, &h)
	assert.Nil(t, err, "scan error")
	assert.Equal(t, 1, n, "wrong item count")

	assert.Equal(t, byte(0x04), h[0], "wrong first byte")
	assert.Equal(t, byte(0x43), h[dbhash.Length-1], "wrong last byte")

	assert.Equal(t, stringHash, fmt.Sprintf("%s", h), "wrong string")
	assert.Equal(t, "<Hash:"+stringHash[2:]+">", fmt.Sprintf("%#v", h), "wrong go string")
}

func TestFromHexPadsShortValues(t *testing.T) {
	h, err := dbhash.FromHex("0x7")
	assert.Nil(t, err, "parse error")

	expected := dbhash.Hash{}
	expected[dbhash.Length-1] = 7
	assert.Equal(t, expected, h, "wrong padded hash")
	assert.False(t, h.IsZero(), "should not be zero")
	assert.True(t, dbhash.Hash{}.IsZero(), "should be zero")
}

func TestFromHexTooLong(t *testing.T) {
	_, err := dbhash.FromHex(stringHash + "00")
	assert.Equal(t, fault.ErrInvalidHashLength, err, "wrong error")
}

func TestFromBytes(t *testing.T) {
	var h dbhash.Hash
	err := dbhash.FromBytes(&h, []byte{1, 2, 3})
	assert.Equal(t, fault.ErrInvalidHashLength, err, "short buffer accepted")

	buffer := make([]byte, dbhash.Length)
	buffer[0] = 0xaa
	err = dbhash.FromBytes(&h, buffer)
	assert.Nil(t, err, "valid buffer rejected")
	assert.Equal(t, buffer, h.Bytes(), "wrong bytes")
}

func TestJSON(t *testing.T) {
	h, _ := dbhash.FromHex(stringHash)

	buffer, err := json.Marshal(h)
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, `"`+stringHash+`"`, string(buffer), "wrong json")

	var decoded dbhash.Hash
	err = json.Unmarshal(buffer, &decoded)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, h, decoded, "round trip mismatch")
}
