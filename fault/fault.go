// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrAlreadyPaid          = ExistsError("l1 handler fee already paid")
	ErrCorruptedRecord      = RecordError("corrupted record")
	ErrEmptyKey             = InvalidError("key cannot be empty")
	ErrEmptyValue           = InvalidError("value cannot be empty")
	ErrInvalidColumn        = InvalidError("invalid column")
	ErrInvalidNamespace     = InvalidError("invalid trie namespace")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidCursor        = InvalidError("invalid cursor")
	ErrInvalidHashLength    = LengthError("invalid hash length")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrKeyNotFound          = NotFoundError("key not found")
	ErrMissingConfigDir     = InvalidError("database configuration directory is required")
	ErrNilFee               = InvalidError("fee cannot be nil")
	ErrOpenFailed           = ProcessError("database open failed")
	ErrRecordLength         = LengthError("record length is invalid")
	ErrSchemaTooNew         = InvalidError("database schema is newer than this build")
	ErrUnsupportedBackend   = InvalidError("supported database engines: leveldb | bolt | auto")
	ErrWriteInterrupted     = ProcessError("write interrupted")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error, wrapped errors are unwrapped
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrLength(e error) bool   { var x LengthError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
func IsErrRecord(e error) bool   { var x RecordError; return errors.As(e, &x) }
