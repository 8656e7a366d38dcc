// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/deoxys-node/deoxysdb/column"
	"github.com/deoxys-node/deoxysdb/fault"
	"github.com/deoxys-node/deoxysdb/util"
)

const (
	boltFileName    = "data.db"
	boltOpenTimeout = 5 * time.Second

	// entries read per read transaction while iterating, the
	// transaction is released before the callback runs so that the
	// callback may write
	boltIteratePage = 1024
)

type boltDB struct {
	path string
	db   *bolt.DB

	// fault injection for tests: called after each operation is
	// applied inside the update, a non-nil error rolls it back
	interrupt func(applied int) error
}

// the bucket holding a column
func bucketName(c column.Column) []byte {
	mustBeValid(c)
	name := make([]byte, 4)
	binary.BigEndian.PutUint32(name, uint32(c))
	return name
}

func openBolt(path string) (*boltDB, error) {
	if "" == path {
		return nil, fmt.Errorf("%w: bolt: empty path", fault.ErrOpenFailed)
	}
	if err := util.EnsureDirectory(path); nil != err {
		return nil, fmt.Errorf("%w: bolt: %s: %v", fault.ErrOpenFailed, path, err)
	}

	db, err := bolt.Open(filepath.Join(path, boltFileName), 0600, &bolt.Options{Timeout: boltOpenTimeout})
	if nil != err {
		return nil, fmt.Errorf("%w: bolt: %s: %v", fault.ErrOpenFailed, path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, c := range column.All() {
			if _, err := tx.CreateBucketIfNotExists(bucketName(c)); nil != err {
				return err
			}
		}
		return nil
	})
	if nil != err {
		db.Close()
		return nil, fmt.Errorf("%w: bolt: %s: create columns: %v", fault.ErrOpenFailed, path, err)
	}

	return &boltDB{
		path: path,
		db:   db,
	}, nil
}

func (b *boltDB) Kind() Kind {
	return Bolt
}

func (b *boltDB) Get(c column.Column, key []byte) ([]byte, error) {
	if 0 == len(key) {
		return nil, fault.ErrEmptyKey
	}
	var value []byte
	err := b.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName(c)).Get(key)
		if nil == v {
			return fault.ErrKeyNotFound
		}
		// only valid for the life of the transaction
		value = clone(v)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return value, nil
}

func (b *boltDB) Has(c column.Column, key []byte) (bool, error) {
	if 0 == len(key) {
		return false, fault.ErrEmptyKey
	}
	found := false
	err := b.db.View(func(tx *bolt.Tx) error {
		found = nil != tx.Bucket(bucketName(c)).Get(key)
		return nil
	})
	return found, err
}

// Write - all operations run inside one update transaction; any error
// rolls the whole transaction back
func (b *boltDB) Write(batch *Batch) error {
	if 0 == batch.Len() {
		return nil
	}
	if err := batch.validate(); nil != err {
		return err
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		for i, item := range batch.items {
			bucket := tx.Bucket(bucketName(item.column))
			var err error
			switch item.op {
			case opPut:
				err = bucket.Put(item.key, item.value)
			case opDelete:
				err = bucket.Delete(item.key)
			}
			if nil != err {
				return err
			}
			if nil != b.interrupt {
				if err := b.interrupt(i + 1); nil != err {
					return err
				}
			}
		}
		return nil
	})
}

func (b *boltDB) Delete(c column.Column, key []byte) error {
	batch := NewBatch()
	batch.Delete(c, key)
	return b.Write(batch)
}

type boltElement struct {
	key   []byte
	value []byte
}

func (b *boltDB) Iterate(c column.Column, prefix []byte, start []byte, f func(key []byte, value []byte) error) error {
	seek := prefix
	if nil != start && bytes.Compare(start, prefix) > 0 {
		seek = start
	}
	name := bucketName(c)

	for {
		page := make([]boltElement, 0, boltIteratePage)
		err := b.db.View(func(tx *bolt.Tx) error {
			cursor := tx.Bucket(name).Cursor()
			for k, v := cursor.Seek(seek); nil != k && bytes.HasPrefix(k, prefix); k, v = cursor.Next() {
				page = append(page, boltElement{key: clone(k), value: clone(v)})
				if len(page) == cap(page) {
					break
				}
			}
			return nil
		})
		if nil != err {
			return err
		}

		for _, e := range page {
			if err := f(e.key, e.value); nil != err {
				return err
			}
		}
		if len(page) < boltIteratePage {
			return nil
		}

		// the smallest key after the last one returned
		last := page[len(page)-1].key
		seek = append(clone(last), 0x00)
	}
}

func (b *boltDB) Close() error {
	return b.db.Close()
}
