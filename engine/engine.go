// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"path/filepath"

	"github.com/deoxys-node/deoxysdb/column"
	"github.com/deoxys-node/deoxysdb/fault"
)

// Kind - the engine selector
type Kind string

// supported engines
const (
	LevelDB Kind = "leveldb"
	Bolt    Kind = "bolt"
	Auto    Kind = "auto"
)

// directory names below <config>/starknet
const (
	chainDirectory   = "starknet"
	LevelDBDirectory = "leveldb"
	BoltDirectory    = "bolt"
)

// Engine - the capability set shared by both engines
//
// Get returns fault.ErrKeyNotFound for an absent key.  Returned slices
// are copies and may be retained by the caller.
type Engine interface {
	Kind() Kind
	Get(column.Column, []byte) ([]byte, error)
	Has(column.Column, []byte) (bool, error)
	Write(*Batch) error
	Delete(column.Column, []byte) error

	// visit every key with the prefix, starting at start (nil for
	// the first key), in ascending byte order; an error from the
	// callback stops the iteration and is returned
	Iterate(c column.Column, prefix []byte, start []byte, f func(key []byte, value []byte) error) error

	Close() error
}

// Settings - how to open an engine
//
//	LevelDB: LevelDBPath, CacheSize
//	Bolt:    BoltPath
//	Auto:    LevelDBPath, BoltPath, CacheSize
type Settings struct {
	Kind        Kind
	LevelDBPath string
	BoltPath    string
	CacheSize   int // MiB, leveldb block cache; zero for the engine default
}

// ParseKind - convert a configuration string to a Kind
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case LevelDB, Bolt, Auto:
		return k, nil
	default:
		return "", fault.ErrUnsupportedBackend
	}
}

// DatabaseDir - the directory convention: <configDir>/starknet/<name>
func DatabaseDir(configDir string, name string) string {
	return filepath.Join(configDir, chainDirectory, name)
}

// DefaultSettings - settings for a kind using the directory convention
func DefaultSettings(kind Kind, configDir string, cacheSize int) Settings {
	return Settings{
		Kind:        kind,
		LevelDBPath: DatabaseDir(configDir, LevelDBDirectory),
		BoltPath:    DatabaseDir(configDir, BoltDirectory),
		CacheSize:   cacheSize,
	}
}

// a column outside the scheme is a programming error
func mustBeValid(c column.Column) {
	if !c.Valid() {
		fault.Panicf("engine: column: %d out of range 0..%d", uint32(c), column.Count-1)
	}
}
