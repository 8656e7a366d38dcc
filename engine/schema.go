// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"encoding/binary"
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/deoxys-node/deoxysdb/column"
	"github.com/deoxys-node/deoxysdb/fault"
)

const schemaRecordLength = 4

// read the column count recorded on disk, zero for a new database
func getSchema(e Engine) (uint32, error) {
	value, err := e.Get(column.Meta, column.SchemaKey)
	if fault.ErrKeyNotFound == err {
		return 0, nil
	} else if nil != err {
		return 0, err
	}

	if schemaRecordLength != len(value) {
		return 0, fmt.Errorf("%w: schema record: expected: %d  actual: %d", fault.ErrRecordLength, schemaRecordLength, len(value))
	}
	return binary.BigEndian.Uint32(value), nil
}

func putSchema(e Engine, count uint32) error {
	value := make([]byte, schemaRecordLength)
	binary.BigEndian.PutUint32(value, count)

	b := NewBatch()
	b.Put(column.Meta, column.SchemaKey, value)
	return e.Write(b)
}

// ensure the database column count is compatible with this build
//
// an older database only lacks columns so it is upgraded in place; a
// newer database may hold data this build cannot see
func checkSchema(e Engine, log *logger.L) error {
	count, err := getSchema(e)
	if nil != err {
		return err
	}

	switch {
	case count > column.Count:
		log.Criticalf("database column count: %d > current column count: %d", count, column.Count)
		return fmt.Errorf("%w: database: %d columns  build: %d columns", fault.ErrSchemaTooNew, count, column.Count)

	case 0 == count:
		log.Infof("new database: tag with column count: %d", column.Count)
		return putSchema(e, column.Count)

	case count < column.Count:
		log.Warnf("upgrade database column count: %d → %d", count, column.Count)
		return putSchema(e, column.Count)
	}
	return nil
}
