// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/deoxys-node/deoxysdb/engine"
	"github.com/deoxys-node/deoxysdb/storage"
	"github.com/deoxys-node/deoxysdb/util"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultEngine    = string(engine.Auto)
	defaultCacheSize = 128 // MiB

	defaultLogDirectory = "log"
	defaultLogFile      = "deoxysdb.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// a fresh map each time as the file's levels are merged into it
func defaultLogLevels() map[string]string {
	return map[string]string{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
}

// DatabaseType - database section
type DatabaseType struct {
	Engine            string `gluamapper:"engine" json:"engine"`
	Directory         string `gluamapper:"directory" json:"directory"`
	CacheSize         int    `gluamapper:"cache_size" json:"cache_size"`
	CacheTransactions bool   `gluamapper:"cache_transactions" json:"cache_transactions"`
}

// Configuration - the complete file
type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	Database      DatabaseType         `gluamapper:"database" json:"database"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// GetConfiguration - read decode and verify the configuration
func GetConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{
		DataDirectory: defaultDataDirectory,

		Database: DatabaseType{
			Engine:    defaultEngine,
			Directory: "", // the data directory
			CacheSize: defaultCacheSize,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels(),
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	options.Database.Engine = strings.ToLower(options.Database.Engine)
	if _, err := engine.ParseKind(options.Database.Engine); nil != err {
		return nil, fmt.Errorf("engine: %q: %w", options.Database.Engine, err)
	}
	if options.Database.CacheSize < 0 {
		options.Database.CacheSize = defaultCacheSize
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// fail if the log file is not a simple file name
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	} {
		*d = util.EnsureAbsolute(options.DataDirectory, *d)
		if err := util.EnsureDirectory(*d); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// StorageConfig - the backend settings from the database section
func (c *Configuration) StorageConfig() storage.Config {
	return storage.Config{
		Engine:            engine.Kind(c.Database.Engine),
		ConfigDirectory:   c.Database.Directory,
		CacheSize:         c.Database.CacheSize,
		CacheTransactions: c.Database.CacheTransactions,
	}
}
