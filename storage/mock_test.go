// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/deoxys-node/deoxysdb/column"
	"github.com/deoxys-node/deoxysdb/dbhash"
	"github.com/deoxys-node/deoxysdb/engine"
	"github.com/deoxys-node/deoxysdb/engine/mocks"
	"github.com/deoxys-node/deoxysdb/fault"
	"github.com/deoxys-node/deoxysdb/storage"
)

func newMockBackend(t *testing.T) (*gomock.Controller, *mocks.MockEngine, *storage.Backend) {
	ctl := gomock.NewController(t)
	e := mocks.NewMockEngine(ctl)
	e.EXPECT().Kind().Return(engine.LevelDB).AnyTimes()
	return ctl, e, storage.New(e, true)
}

func TestReadErrorsPropagate(t *testing.T) {
	ctl, e, b := newMockBackend(t)
	defer ctl.Finish()

	failure := fault.ProcessError("disk on fire")
	e.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, failure).AnyTimes()
	e.EXPECT().Has(gomock.Any(), gomock.Any()).Return(false, failure).AnyTimes()

	h := hashOf("H1")

	_, found, err := b.Mapping().BlockHash(h)
	assert.Equal(t, failure, err, "block hash error lost")
	assert.False(t, found, "found despite error")

	_, _, err = b.Mapping().TransactionHashes(h)
	assert.Equal(t, failure, err, "transaction hashes error lost")

	_, err = b.Mapping().IsSynced(h)
	assert.Equal(t, failure, err, "synced error lost")

	_, err = b.Meta().SyncingTips()
	assert.Equal(t, failure, err, "tips error lost")

	_, _, err = b.Meta().LastProvedBlock()
	assert.Equal(t, failure, err, "last proved error lost")

	_, _, err = b.DA().Get(h)
	assert.Equal(t, failure, err, "DA error lost")

	_, _, err = b.Messaging().LastSyncedEventBlock()
	assert.Equal(t, failure, err, "messaging error lost")

	_, _, err = b.CompiledClasses().Get(h)
	assert.Equal(t, failure, err, "class error lost")

	_, err = b.L1HandlerPaidFee().IsFeePaid(1)
	assert.Equal(t, failure, err, "fee paid error lost")

	// the dedup check failing must not lead to a write
	err = b.L1HandlerPaidFee().RecordPaidFee(1, uint256.NewInt(1))
	assert.Equal(t, failure, err, "fee record error lost")
}

func TestWriteErrorsPropagate(t *testing.T) {
	ctl, e, b := newMockBackend(t)
	defer ctl.Finish()

	failure := fault.ErrWriteInterrupted
	e.EXPECT().Write(gomock.Any()).Return(failure).Times(5)
	e.EXPECT().Has(column.L1HandlerPaidFee, gomock.Any()).Return(false, nil)

	h := hashOf("H1")

	err := b.Mapping().WriteBlockMapping(storage.BlockMapping{DomainHash: h, OuterHash: hashOf("S1")})
	assert.Equal(t, failure, err, "mapping write error lost")

	err = b.Meta().SetLastProvedBlock(3)
	assert.Equal(t, failure, err, "meta write error lost")

	err = b.L1HandlerPaidFee().RecordPaidFee(1, uint256.NewInt(1))
	assert.Equal(t, failure, err, "fee write error lost")

	err = b.CompiledClasses().Put(h, []byte("class"))
	assert.Equal(t, failure, err, "class write error lost")

	// a failed put must not be served from the class cache
	e.EXPECT().Get(column.CompiledClasses, h[:]).Return(nil, fault.ErrKeyNotFound)
	_, found, err := b.CompiledClasses().Get(h)
	assert.Nil(t, err, "get error")
	assert.False(t, found, "failed class write is cached")

	err = b.Commit(b.NewBatch())
	assert.Equal(t, failure, err, "commit error lost")
}

func TestMappingBatchContents(t *testing.T) {
	ctl, e, b := newMockBackend(t)
	defer ctl.Finish()

	// block, synced and two transactions plus the cached list
	e.EXPECT().Write(gomock.Any()).DoAndReturn(func(batch *engine.Batch) error {
		assert.Equal(t, 5, batch.Len(), "wrong operation count")
		return nil
	})

	err := b.Mapping().WriteBlockMapping(storage.BlockMapping{
		DomainHash:        hashOf("H1"),
		OuterHash:         hashOf("S1"),
		Number:            1,
		TransactionHashes: []dbhash.Hash{hashOf("T1"), hashOf("T2")},
	})
	assert.Nil(t, err, "write error")
}

func TestCloseOnce(t *testing.T) {
	ctl, e, b := newMockBackend(t)
	defer ctl.Finish()

	e.EXPECT().Close().Return(nil).Times(1)

	assert.Nil(t, b.Close(), "close error")
	assert.Nil(t, b.Close(), "second close error")
}
