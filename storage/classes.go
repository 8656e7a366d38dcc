// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/deoxys-node/deoxysdb/column"
	"github.com/deoxys-node/deoxysdb/dbhash"
	"github.com/deoxys-node/deoxysdb/engine"
	"github.com/deoxys-node/deoxysdb/fault"
)

// classes are content addressed so a cached entry is never stale, it
// only expires to bound memory
const (
	classCacheExpiration = 10 * time.Minute
	classCacheCleanup    = 5 * time.Minute
)

// ClassStore - compiled classes by class hash
type ClassStore struct {
	engine engine.Engine
	cache  *cache.Cache
}

func newClassStore(e engine.Engine) *ClassStore {
	return &ClassStore{
		engine: e,
		cache:  cache.New(classCacheExpiration, classCacheCleanup),
	}
}

func classCacheKey(classHash dbhash.Hash) string {
	return string(classHash[:])
}

// Get - the compiled class, the result may be modified by the caller
func (c *ClassStore) Get(classHash dbhash.Hash) ([]byte, bool, error) {
	key := classCacheKey(classHash)
	if obj, found := c.cache.Get(key); found {
		return cloneBytes(obj.([]byte)), true, nil
	}

	value, found, err := get(c.engine, column.CompiledClasses, classHash[:])
	if !found || nil != err {
		return nil, false, err
	}
	c.cache.SetDefault(key, cloneBytes(value))
	return value, true, nil
}

// Contains - true if the class is stored
func (c *ClassStore) Contains(classHash dbhash.Hash) (bool, error) {
	if _, found := c.cache.Get(classCacheKey(classHash)); found {
		return true, nil
	}
	return c.engine.Has(column.CompiledClasses, classHash[:])
}

// Put - store a compiled class
func (c *ClassStore) Put(classHash dbhash.Hash, class []byte) error {
	if 0 == len(class) {
		return fault.ErrEmptyValue
	}
	b := engine.NewBatch()
	b.Put(column.CompiledClasses, classHash[:], class)
	if err := c.engine.Write(b); nil != err {
		return err
	}
	c.cache.SetDefault(classCacheKey(classHash), cloneBytes(class))
	return nil
}

func cloneBytes(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
