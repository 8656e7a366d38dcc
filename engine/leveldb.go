// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_opt "github.com/syndtr/goleveldb/leveldb/opt"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/deoxys-node/deoxysdb/column"
	"github.com/deoxys-node/deoxysdb/fault"
	"github.com/deoxys-node/deoxysdb/util"
)

// leveldb always writes this file
const levelDBCurrentFile = "CURRENT"

type levelDB struct {
	sync.RWMutex
	path string
	db   *leveldb.DB

	// fault injection for tests: called after each operation is
	// staged, a non-nil error abandons the write
	interrupt func(applied int) error
}

// check for an existing leveldb database
func levelDBExists(path string) bool {
	return util.EnsureFileExists(filepath.Join(path, levelDBCurrentFile))
}

func openLevelDB(path string, cacheSize int) (*levelDB, error) {
	if "" == path {
		return nil, fmt.Errorf("%w: leveldb: empty path", fault.ErrOpenFailed)
	}
	if err := util.EnsureDirectory(filepath.Dir(path)); nil != err {
		return nil, fmt.Errorf("%w: leveldb: %s: %v", fault.ErrOpenFailed, path, err)
	}

	opt := &ldb_opt.Options{
		ErrorIfExist:   false,
		ErrorIfMissing: false,
	}
	if cacheSize > 0 {
		opt.BlockCacheCapacity = cacheSize * ldb_opt.MiB
	}

	db, err := leveldb.OpenFile(path, opt)
	if nil != err {
		return nil, fmt.Errorf("%w: leveldb: %s: %v", fault.ErrOpenFailed, path, err)
	}
	return &levelDB{
		path: path,
		db:   db,
	}, nil
}

// prepend the column prefix onto the key
func prefixKey(c column.Column, key []byte) []byte {
	mustBeValid(c)
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = byte(c)
	return append(prefixedKey, key...)
}

func (l *levelDB) Kind() Kind {
	return LevelDB
}

func (l *levelDB) Get(c column.Column, key []byte) ([]byte, error) {
	if 0 == len(key) {
		return nil, fault.ErrEmptyKey
	}
	l.RLock()
	defer l.RUnlock()
	if nil == l.db {
		return nil, leveldb.ErrClosed
	}

	value, err := l.db.Get(prefixKey(c, key), nil)
	if leveldb.ErrNotFound == err {
		return nil, fault.ErrKeyNotFound
	}
	return value, err
}

func (l *levelDB) Has(c column.Column, key []byte) (bool, error) {
	if 0 == len(key) {
		return false, fault.ErrEmptyKey
	}
	l.RLock()
	defer l.RUnlock()
	if nil == l.db {
		return false, leveldb.ErrClosed
	}
	return l.db.Has(prefixKey(c, key), nil)
}

// Write - a leveldb batch is a single journal record so it is applied
// completely or not at all
func (l *levelDB) Write(b *Batch) error {
	if 0 == b.Len() {
		return nil
	}
	if err := b.validate(); nil != err {
		return err
	}

	trx := new(leveldb.Batch)
	for i, item := range b.items {
		switch item.op {
		case opPut:
			trx.Put(prefixKey(item.column, item.key), item.value)
		case opDelete:
			trx.Delete(prefixKey(item.column, item.key))
		}
		if nil != l.interrupt {
			if err := l.interrupt(i + 1); nil != err {
				return err
			}
		}
	}

	l.RLock()
	defer l.RUnlock()
	if nil == l.db {
		return leveldb.ErrClosed
	}
	return l.db.Write(trx, nil)
}

func (l *levelDB) Delete(c column.Column, key []byte) error {
	b := NewBatch()
	b.Delete(c, key)
	return l.Write(b)
}

func (l *levelDB) Iterate(c column.Column, prefix []byte, start []byte, f func(key []byte, value []byte) error) error {
	searchRange := ldb_util.BytesPrefix(prefixKey(c, prefix))
	if nil != start {
		if s := prefixKey(c, start); bytes.Compare(s, searchRange.Start) > 0 {
			searchRange.Start = s
		}
	}

	l.RLock()
	defer l.RUnlock()
	if nil == l.db {
		return leveldb.ErrClosed
	}

	iter := l.db.NewIterator(searchRange, nil)
	defer iter.Release()

	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		if err := f(dataKey, clone(value)); nil != err {
			return err
		}
	}
	return iter.Error()
}

func (l *levelDB) Close() error {
	l.Lock()
	defer l.Unlock()
	if nil == l.db {
		return nil
	}
	err := l.db.Close()
	l.db = nil
	return err
}
