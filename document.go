// Copyright 2026 Wes Koerber.
// SPDX-License-Identifier: BSD-3-Clause

package inez

import (
	"errors"
	"strings"
)

// ErrNotFound is returned by lookups when no entry matches the given
// section and key. It is an expected outcome, not a fault.
var ErrNotFound = errors.New("inez: entry not found")

// ErrKeyExists is returned by Put when the document already holds an entry
// for the given section and key.
var ErrKeyExists = errors.New("inez: key already exists")

// An Entry is one section/key/value triple. For entries produced by Parse
// the three fields are sub-slices of the source buffer; entries added
// through Put and PutOrUpdate hold their own copies.
type Entry struct {
	Section []byte
	Key     []byte
	Value   []byte
}

// A Document is an insertion-ordered collection of entries. The zero value
// is an empty document. Documents can be read by multiple concurrent
// goroutines, but mutation requires external serialization.
//
// Duplicate (section, key) pairs may coexist when produced by Parse;
// lookups always resolve to the first matching entry in document order.
type Document struct {
	entries []Entry
}

// Get returns the value of the first entry matching the given section and
// key, with leading and trailing ASCII spaces removed. Sections and keys
// are compared after the same trimming of both the stored field and the
// argument. Get fails with ErrNotFound if no entry matches.
func (d *Document) Get(section, key string) (string, error) {
	e := d.lookup(section, key)
	if e == nil {
		return "", ErrNotFound
	}
	return string(trimSpaces(e.Value)), nil
}

func (d *Document) lookup(section, key string) *Entry {
	if d == nil {
		return nil
	}
	section = strings.Trim(section, " ")
	key = strings.Trim(key, " ")
	for i := range d.entries {
		e := &d.entries[i]
		if string(trimSpaces(e.Section)) != section {
			continue
		}
		if string(trimSpaces(e.Key)) == key {
			return e
		}
	}
	return nil
}

// Put appends a new entry with the given section, key, and value, stored as
// given. Unlike Parse, Put rejects duplicates: if the document already has
// a matching entry, Put fails with ErrKeyExists and the document is
// unchanged.
func (d *Document) Put(section, key, value string) error {
	if d.lookup(section, key) != nil {
		return ErrKeyExists
	}
	d.append(section, key, value)
	return nil
}

// PutOrUpdate replaces the value of the first entry matching the given
// section and key, leaving that entry's section and key untouched. If no
// entry matches, PutOrUpdate appends a new one like Put. It never fails.
func (d *Document) PutOrUpdate(section, key, value string) {
	if e := d.lookup(section, key); e != nil {
		e.Value = []byte(value)
		return
	}
	// Absence was just confirmed, so skip Put's existence re-check.
	d.append(section, key, value)
}

func (d *Document) append(section, key, value string) {
	d.entries = append(d.entries, Entry{
		Section: []byte(section),
		Key:     []byte(key),
		Value:   []byte(value),
	})
}

// Len returns the number of entries in the document, counting duplicates.
func (d *Document) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Entries returns the document's entries in insertion order. The returned
// slice is shared with the document: it is valid until the next mutation,
// and its fields may alias the parsed buffer.
func (d *Document) Entries() []Entry {
	if d == nil {
		return nil
	}
	return d.entries
}

// Close releases the entry storage. It does not touch the bytes the entries
// point into; those belong to the loading Session or to the caller. Close
// is safe to call more than once, and a closed document reads as empty.
func (d *Document) Close() {
	d.entries = nil
}
