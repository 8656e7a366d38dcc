// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"sync"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"

	"github.com/deoxys-node/deoxysdb/engine"
	"github.com/deoxys-node/deoxysdb/fault"
	"github.com/deoxys-node/deoxysdb/storage"
)

func TestFeeRecordedOnce(t *testing.T) {
	forEachBackend(t, false, func(t *testing.T, kind engine.Kind, dir string, b *storage.Backend) {
		fees := b.L1HandlerPaidFee()

		paid, err := fees.IsFeePaid(7)
		assert.Nil(t, err, "paid error")
		assert.False(t, paid, "fee paid before record")

		assert.Nil(t, fees.RecordPaidFee(7, uint256.NewInt(10)), "record error")

		paid, err = fees.IsFeePaid(7)
		assert.Nil(t, err, "paid error")
		assert.True(t, paid, "fee not paid")

		err = fees.RecordPaidFee(7, uint256.NewInt(99))
		assert.Equal(t, fault.ErrAlreadyPaid, err, "duplicate accepted")
		assert.True(t, fault.IsErrExists(err), "duplicate not an exists error")

		fee, found, err := fees.PaidFee(7)
		assert.Nil(t, err, "fee error")
		assert.True(t, found, "fee not found")
		assert.Equal(t, uint256.NewInt(10), fee, "fee overwritten")

		_, found, err = fees.PaidFee(8)
		assert.Nil(t, err, "fee error")
		assert.False(t, found, "fee found for unknown nonce")

		assert.Equal(t, fault.ErrNilFee, fees.RecordPaidFee(9, nil), "nil fee accepted")
	})
}

func TestFeeLargeValue(t *testing.T) {
	forEachBackend(t, false, func(t *testing.T, kind engine.Kind, dir string, b *storage.Backend) {
		fees := b.L1HandlerPaidFee()

		large, err := uint256.FromHex("0x123456789abcdef0123456789abcdef0123456789abcdef")
		assert.Nil(t, err, "hex error")

		assert.Nil(t, fees.RecordPaidFee(0, large), "record error")
		fee, found, err := fees.PaidFee(0)
		assert.Nil(t, err, "fee error")
		assert.True(t, found, "fee not found")
		assert.Equal(t, large, fee, "wrong fee")
	})
}

func TestFeeConcurrentRecord(t *testing.T) {
	const writers = 16

	forEachBackend(t, false, func(t *testing.T, kind engine.Kind, dir string, b *storage.Backend) {
		fees := b.L1HandlerPaidFee()

		var wg sync.WaitGroup
		results := make(chan error, writers)
		for i := 0; i < writers; i += 1 {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results <- fees.RecordPaidFee(42, uint256.NewInt(uint64(i+1)))
			}(i)
		}
		wg.Wait()
		close(results)

		succeeded := 0
		for err := range results {
			if nil == err {
				succeeded += 1
			} else {
				assert.Equal(t, fault.ErrAlreadyPaid, err, "unexpected error")
			}
		}
		assert.Equal(t, 1, succeeded, "wrong number of recorded fees")
	})
}
