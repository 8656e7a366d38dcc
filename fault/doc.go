// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches.  Errors are
// grouped in classes so callers can decide between retry, skip and
// abort: NotFound and Exists are expected, Record means a single
// stored value is unusable, Process and Invalid at open are fatal.
package fault
