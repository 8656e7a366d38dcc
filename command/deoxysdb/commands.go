// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/deoxys-node/deoxysdb/column"
	"github.com/deoxys-node/deoxysdb/configuration"
	"github.com/deoxys-node/deoxysdb/dbhash"
	"github.com/deoxys-node/deoxysdb/engine"
	"github.com/deoxys-node/deoxysdb/fault"
	"github.com/deoxys-node/deoxysdb/storage"
)

const defaultDumpCount = 20

// setup command handler
//
// commands that do not need the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := ""
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "version", "v":
		fmt.Printf("%s\n", version)

	case "columns", "cols":
		listColumns(os.Stdout)

	case "help", "h", "?", "":
		if "" == command {
			fmt.Printf("error: missing command\n")
		}
		fmt.Printf("usage: %s [--help] [--version] --config-file=FILE command [arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")
		fmt.Printf("  columns                    (cols)   - list the column scheme\n\n")
		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n\n")
		fmt.Printf("  status                     (s)      - show syncing tips, proved block and L1 cursor\n\n")
		fmt.Printf("  dump COLUMN [COUNT [KEY]]  (d)      - hex dump COUNT (default %d) entries of a column\n", defaultDumpCount)
		fmt.Printf("                                        starting at hex KEY\n\n")
		fmt.Printf("  mapping HASH               (m)      - show the mapping of a domain block hash\n\n")
		fmt.Printf("  fee NONCE                  (f)      - show the paid fee of an L1 handler nonce\n\n")
		if "" == command {
			exitwithstatus.Exit(1)
		}

	default:
		return false
	}
	return true
}

// configuration file enquiry commands
func processConfigCommand(w io.Writer, arguments []string, options *configuration.Configuration) bool {
	if 0 == len(arguments) {
		return false
	}

	switch arguments[0] {
	case "config-test", "cfg":
		data, err := json.MarshalIndent(options, "", "  ")
		if nil != err {
			exitwithstatus.Message("configuration error: %s", err)
		}
		fmt.Fprintf(w, "%s\n", data)
		return true
	}
	return false
}

// commands that read the database
func processDataCommand(w io.Writer, arguments []string, backend *storage.Backend) error {
	command := arguments[0]
	arguments = arguments[1:]

	switch command {
	case "status", "s":
		return showStatus(w, backend)

	case "dump", "d":
		if len(arguments) < 1 {
			return fault.ErrInvalidColumn
		}
		c, ok := column.ByName(arguments[0])
		if !ok {
			return fmt.Errorf("%w: %q", fault.ErrInvalidColumn, arguments[0])
		}
		count := defaultDumpCount
		if len(arguments) > 1 {
			n, err := strconv.Atoi(arguments[1])
			if nil != err || n <= 0 {
				return fmt.Errorf("%w: %q", fault.ErrInvalidCount, arguments[1])
			}
			count = n
		}
		var start []byte
		if len(arguments) > 2 {
			k, err := parseHexKey(arguments[2])
			if nil != err {
				return err
			}
			start = k
		}
		return dumpColumn(w, backend.Engine(), c, count, start)

	case "mapping", "m":
		if len(arguments) < 1 {
			return fault.ErrInvalidHashLength
		}
		h, err := dbhash.FromHex(arguments[0])
		if nil != err {
			return err
		}
		return showMapping(w, backend.Mapping(), h)

	case "fee", "f":
		if len(arguments) < 1 {
			return fault.ErrInvalidCount
		}
		nonce, err := strconv.ParseUint(arguments[0], 0, 64)
		if nil != err {
			return err
		}
		return showFee(w, backend.L1HandlerPaidFee(), nonce)

	default:
		return fmt.Errorf("no such command: %q", command)
	}
}

func listColumns(w io.Writer) {
	for _, c := range column.All() {
		fmt.Fprintf(w, "%2d  %s\n", uint32(c), c)
	}
}

func showStatus(w io.Writer, backend *storage.Backend) error {
	fmt.Fprintf(w, "engine:              %s\n", backend.Engine().Kind())

	tips, err := backend.Meta().SyncingTips()
	if nil != err {
		return err
	}
	fmt.Fprintf(w, "syncing tips:        %d\n", len(tips))
	for _, tip := range tips {
		fmt.Fprintf(w, "  %s\n", tip)
	}

	proved, found, err := backend.Meta().LastProvedBlock()
	if nil != err {
		return err
	}
	if found {
		fmt.Fprintf(w, "last proved block:   %d\n", proved)
	} else {
		fmt.Fprintf(w, "last proved block:   none\n")
	}

	cursor, found, err := backend.Messaging().LastSyncedEvent()
	if nil != err {
		return err
	}
	if found {
		fmt.Fprintf(w, "last L1 event:       block: %d  index: %d\n", cursor.BlockNumber, cursor.EventIndex)
	} else {
		fmt.Fprintf(w, "last L1 event:       none\n")
	}
	return nil
}

func dumpColumn(w io.Writer, e engine.Engine, c column.Column, count int, start []byte) error {
	cursor := engine.NewCursor(e, c)
	if nil != start {
		cursor.Seek(start)
	}

	elements, err := cursor.Fetch(count)
	if nil != err {
		return err
	}
	fmt.Fprintf(w, "column: %s  entries: %d\n", c, len(elements))
	for _, element := range elements {
		fmt.Fprintf(w, "%x: %x\n", element.Key, element.Value)
	}
	return nil
}

func showMapping(w io.Writer, m *storage.MappingStore, domain dbhash.Hash) error {
	outer, found, err := m.BlockHash(domain)
	if nil != err {
		return err
	}
	if !found {
		fmt.Fprintf(w, "block: %s  not found\n", domain)
		return nil
	}
	number, _, err := m.BlockNumber(domain)
	if nil != err {
		return err
	}
	fmt.Fprintf(w, "block:   %s\n", domain)
	fmt.Fprintf(w, "number:  %d\n", number)
	fmt.Fprintf(w, "outer:   %s\n", outer)

	txs, found, err := m.TransactionHashes(domain)
	if nil != err {
		return err
	}
	if !found {
		fmt.Fprintf(w, "transactions: not cached\n")
		return nil
	}
	fmt.Fprintf(w, "transactions: %d\n", len(txs))
	for _, tx := range txs {
		fmt.Fprintf(w, "  %s\n", tx)
	}
	return nil
}

func showFee(w io.Writer, fees *storage.FeeStore, nonce uint64) error {
	fee, found, err := fees.PaidFee(nonce)
	if nil != err {
		return err
	}
	if !found {
		fmt.Fprintf(w, "nonce: %d  not paid\n", nonce)
		return nil
	}
	fmt.Fprintf(w, "nonce: %d  fee: %s\n", nonce, fee.Hex())
	return nil
}

// a start key for dump, with or without 0x prefix
func parseHexKey(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(s, "0x"))
}
