// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"fmt"
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/holiman/uint256"

	"github.com/deoxys-node/deoxysdb/column"
	"github.com/deoxys-node/deoxysdb/engine"
	"github.com/deoxys-node/deoxysdb/fault"
)

const feeRecordLength = 32

// FeeStore - fees paid by L1 handler transactions, one per nonce
type FeeStore struct {
	sync.Mutex
	engine engine.Engine
	log    *logger.L
}

func newFeeStore(e engine.Engine) *FeeStore {
	return &FeeStore{
		engine: e,
		log:    logger.New("fee"),
	}
}

// IsFeePaid - true if a fee was already recorded for the nonce
func (f *FeeStore) IsFeePaid(nonce uint64) (bool, error) {
	return f.engine.Has(column.L1HandlerPaidFee, uint64ToBytes(nonce))
}

// RecordPaidFee - record the fee of a nonce exactly once
//
// a second record for the same nonce fails with fault.ErrAlreadyPaid and
// leaves the first fee in place
func (f *FeeStore) RecordPaidFee(nonce uint64, fee *uint256.Int) error {
	if nil == fee {
		return fault.ErrNilFee
	}

	key := uint64ToBytes(nonce)

	f.Lock()
	defer f.Unlock()

	paid, err := f.engine.Has(column.L1HandlerPaidFee, key)
	if nil != err {
		return err
	}
	if paid {
		f.log.Warnf("nonce: %d  fee: %s  already paid", nonce, fee.Hex())
		return fault.ErrAlreadyPaid
	}

	value := fee.Bytes32()
	b := engine.NewBatch()
	b.Put(column.L1HandlerPaidFee, key, value[:])
	if err := f.engine.Write(b); nil != err {
		return err
	}
	f.log.Debugf("nonce: %d  fee: %s", nonce, fee.Hex())
	return nil
}

// PaidFee - the fee recorded for a nonce
func (f *FeeStore) PaidFee(nonce uint64) (*uint256.Int, bool, error) {
	value, found, err := get(f.engine, column.L1HandlerPaidFee, uint64ToBytes(nonce))
	if !found || nil != err {
		return nil, false, err
	}
	if feeRecordLength != len(value) {
		return nil, false, fmt.Errorf("%w: nonce: %d  fee length: %d", fault.ErrCorruptedRecord, nonce, len(value))
	}
	return new(uint256.Int).SetBytes(value), true, nil
}
