// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/deoxys-node/deoxysdb/column"
	"github.com/deoxys-node/deoxysdb/engine"
	"github.com/deoxys-node/deoxysdb/fault"
	"github.com/deoxys-node/deoxysdb/storage"
)

func TestCompiledClasses(t *testing.T) {
	forEachBackend(t, false, func(t *testing.T, kind engine.Kind, dir string, b *storage.Backend) {
		classes := b.CompiledClasses()
		classHash := hashOf("C1")

		_, found, err := classes.Get(classHash)
		assert.Nil(t, err, "get error")
		assert.False(t, found, "class before put")

		ok, err := classes.Contains(classHash)
		assert.Nil(t, err, "contains error")
		assert.False(t, ok, "class before put")

		assert.Nil(t, classes.Put(classHash, []byte("compiled-class")), "put error")

		class, found, err := classes.Get(classHash)
		assert.Nil(t, err, "get error")
		assert.True(t, found, "class not found")
		assert.Equal(t, []byte("compiled-class"), class, "wrong class")

		// a caller modifying the result must not affect later reads
		class[0] = 'X'
		class, _, err = classes.Get(classHash)
		assert.Nil(t, err, "get error")
		assert.Equal(t, []byte("compiled-class"), class, "cached value modified")

		ok, err = classes.Contains(classHash)
		assert.Nil(t, err, "contains error")
		assert.True(t, ok, "class not contained")

		assert.Equal(t, fault.ErrEmptyValue, classes.Put(hashOf("C2"), nil), "empty class accepted")
	})
}

func TestCompiledClassesReadFromEngine(t *testing.T) {
	forEachBackend(t, false, func(t *testing.T, kind engine.Kind, dir string, b *storage.Backend) {
		classHash := hashOf("C3")

		// written behind the store's back so only the engine has it
		batch := b.NewBatch()
		batch.Put(column.CompiledClasses, classHash[:], []byte("raw-class"))
		assert.Nil(t, b.Commit(batch), "commit error")

		class, found, err := b.CompiledClasses().Get(classHash)
		assert.Nil(t, err, "get error")
		assert.True(t, found, "class not found")
		assert.Equal(t, []byte("raw-class"), class, "wrong class")
	})
}
