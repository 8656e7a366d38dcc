// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dbhash

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/deoxys-node/deoxysdb/fault"
)

// Length - number of bytes in a hash
const Length = 32

// Hash - stored big endian, the same order as a felt
type Hash [Length]byte

// FromBytes - convert and validate a binary byte slice to a hash
func FromBytes(hash *Hash, buffer []byte) error {
	if Length != len(buffer) {
		return fault.ErrInvalidHashLength
	}
	copy(hash[:], buffer)
	return nil
}

// FromHex - parse a hex string, with or without 0x prefix
//
// short values are left padded with zeros as felts usually are
func FromHex(s string) (Hash, error) {
	var hash Hash
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s) > 2*Length {
		return hash, fault.ErrInvalidHashLength
	}
	if 1 == len(s)%2 {
		s = "0" + s
	}
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return hash, err
	}
	copy(hash[Length-len(buffer):], buffer)
	return hash, nil
}

// Bytes - a copy of the hash as a slice
func (hash Hash) Bytes() []byte {
	b := make([]byte, Length)
	copy(b, hash[:])
	return b
}

// IsZero - true for the all zero hash
func (hash Hash) IsZero() bool {
	return hash == Hash{}
}

// String - convert a binary hash to 0x hex string for use by the fmt package (for %s)
func (hash Hash) String() string {
	return "0x" + hex.EncodeToString(hash[:])
}

// GoString - for %#v
func (hash Hash) GoString() string {
	return "<Hash:" + hex.EncodeToString(hash[:]) + ">"
}

// Scan - convert a hex representation to a hash for use by the format package scan routines
func (hash *Hash) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		switch {
		case c >= '0' && c <= '9':
			return true
		case c >= 'A' && c <= 'F':
			return true
		case c >= 'a' && c <= 'f':
			return true
		case 'x' == c || 'X' == c:
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	h, err := FromHex(string(token))
	if nil != err {
		return err
	}
	*hash = h
	return nil
}

// MarshalText - convert hash to 0x hex text
func (hash Hash) MarshalText() ([]byte, error) {
	return []byte(hash.String()), nil
}

// UnmarshalText - convert hex text into a hash
func (hash *Hash) UnmarshalText(s []byte) error {
	h, err := FromHex(string(s))
	if nil != err {
		return err
	}
	*hash = h
	return nil
}
