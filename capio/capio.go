// Copyright 2026 Wes Koerber.
// SPDX-License-Identifier: BSD-3-Clause

// Package capio provides size-capped draining of byte sources into memory.
//
// The functions in this package read an entire source up front and refuse
// sources larger than a caller-supplied cap, so that a misbehaving file or
// stream cannot exhaust memory.
package capio

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrTooLarge is returned when a source holds more bytes than the cap
// passed to ReadAll or ReadFile.
var ErrTooLarge = errors.New("capio: source exceeds size cap")

// ReadAll drains r into a new buffer holding at most max bytes. It fails
// with ErrTooLarge if r yields more than max bytes, and otherwise surfaces
// r's error verbatim. Unlike io.ReadAll, a nil error guarantees the entire
// source was consumed. ReadAll panics if max is not positive.
func ReadAll(r io.Reader, max int) ([]byte, error) {
	if r == nil {
		panic("capio.ReadAll(nil, ...)")
	}
	if max <= 0 {
		panic("capio.ReadAll(..., <non-positive max>)")
	}
	// Read one byte past the cap so that a source of exactly max bytes
	// passes while anything larger fails without being drained in full.
	buf, err := io.ReadAll(io.LimitReader(r, int64(max)+1))
	if err != nil {
		return nil, err
	}
	if len(buf) > max {
		return nil, ErrTooLarge
	}
	return buf, nil
}

// ReadFile reads the file at path, applying the same cap as ReadAll.
// The error for an oversized or unreadable file names the path.
func ReadFile(path string, max int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() // Close errors irrelevant; the file is only read.
	buf, err := ReadAll(f, max)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return buf, nil
}
