// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// the channel used for the last attempt to log something
var panicLog struct {
	sync.Mutex
	log *logger.L
}

// delay to allow the log file to be written before a panic unwinds
const panicFlushDelay = 100 * time.Millisecond

// Initialise - setup a log channel for fatal messages
//
// must be called after logger.Initialise
func Initialise() error {
	panicLog.Lock()
	defer panicLog.Unlock()

	if nil != panicLog.log {
		return ErrAlreadyInitialised
	}
	panicLog.log = logger.New("PANIC")
	if nil == panicLog.log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	panicLog.Lock()
	defer panicLog.Unlock()

	if nil != panicLog.log {
		panicLog.log.Flush()
		panicLog.log = nil
	}
}

// Criticalf - log a formatted string with the caller position prefixed
func Criticalf(format string, arguments ...interface{}) {
	internalCriticalf(withCaller(format, arguments...))
}

// Panicf - log a formatted message then panic
//
// used for conditions that indicate a broken build or unusable
// critical data, never for expected runtime errors
func Panicf(format string, arguments ...interface{}) {
	message := withCaller(format, arguments...)
	internalCriticalf(message)
	time.Sleep(panicFlushDelay)
	panic(message)
}

func withCaller(format string, arguments ...interface{}) string {
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(2); ok {
		return fmt.Sprintf("(%q:%d) %s", file, line, message)
	}
	return message
}

// handle an uninitialised logger channel
func internalCriticalf(message string) {
	panicLog.Lock()
	defer panicLog.Unlock()

	if nil == panicLog.log {
		fmt.Printf("*** %s\n", message)
		return
	}
	panicLog.log.Critical(message)
	panicLog.log.Flush()
}
