// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/deoxys-node/deoxysdb/fault"
)

// Open - open (creating if necessary) the engine chosen by the settings
//
// an unknown kind fails with fault.ErrUnsupportedBackend before
// anything is touched on disk; every other failure wraps
// fault.ErrOpenFailed
func Open(settings Settings) (Engine, error) {
	kind, err := ParseKind(string(settings.Kind))
	if nil != err {
		return nil, err
	}

	log := logger.New("engine")

	if Auto == kind {
		kind = resolveAuto(settings)
		log.Infof("auto selected: %s", kind)
	}

	var e Engine
	switch kind {
	case LevelDB:
		log.Infof("open leveldb: %s  cache: %d MiB", settings.LevelDBPath, settings.CacheSize)
		l, err := openLevelDB(settings.LevelDBPath, settings.CacheSize)
		if nil != err {
			log.Criticalf("open leveldb error: %s", err)
			return nil, err
		}
		e = l
	case Bolt:
		log.Infof("open bolt: %s", settings.BoltPath)
		b, err := openBolt(settings.BoltPath)
		if nil != err {
			log.Criticalf("open bolt error: %s", err)
			return nil, err
		}
		e = b
	}

	if err := checkSchema(e, log); nil != err {
		e.Close()
		return nil, fmt.Errorf("%w: %v", fault.ErrOpenFailed, err)
	}
	return e, nil
}

// an existing leveldb wins, otherwise bolt is opened (and created if
// it does not exist yet)
func resolveAuto(settings Settings) Kind {
	if "" != settings.LevelDBPath && levelDBExists(settings.LevelDBPath) {
		return LevelDB
	}
	return Bolt
}
