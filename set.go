// Copyright 2026 Wes Koerber.
// SPDX-License-Identifier: BSD-3-Clause

package inez

import (
	"errors"
	"fmt"
	"io/fs"
)

// A DocumentSet is a list of documents to obtain configuration from in
// descending order of precedence.
type DocumentSet []*Document

// ParseFiles loads and parses the files at the given paths and returns a
// DocumentSet. If the returned error is nil, the returned set's length will
// be the same as the number of arguments. ParseFiles stops on the first
// error, but ignores missing file errors, instead filling the corresponding
// element of the set with a nil *Document.
func ParseFiles(opts *Options, paths ...string) (DocumentSet, error) {
	set := make(DocumentSet, 0, len(paths))
	s := NewSession(opts)
	defer s.Close()
	for _, p := range paths {
		err := s.LoadFile(p)
		if errors.Is(err, fs.ErrNotExist) {
			set = append(set, nil)
			continue
		}
		if err != nil {
			return set, fmt.Errorf("parse ini files: %w", err)
		}
		d, err := s.Parse()
		if err != nil {
			return set, fmt.Errorf("parse ini files: %s: %w", p, err)
		}
		set = append(set, d)
	}
	return set, nil
}

// Get returns the value for the given section and key from the first
// document in the set that has a matching entry. It fails with ErrNotFound
// if no document matches. Nil elements of the set are ignored.
func (set DocumentSet) Get(section, key string) (string, error) {
	for _, d := range set {
		if v, err := d.Get(section, key); err == nil {
			return v, nil
		}
	}
	return "", ErrNotFound
}

// Put appends the entry to the first document in the set, following
// Document.Put semantics for that document only. Put will panic if the set
// is empty. If set[0] == nil, Put allocates a new Document.
func (set DocumentSet) Put(section, key, value string) error {
	if set[0] == nil {
		set[0] = new(Document)
	}
	return set[0].Put(section, key, value)
}

// PutOrUpdate updates or appends the entry on the first document in the
// set. PutOrUpdate will panic if the set is empty. If set[0] == nil,
// PutOrUpdate allocates a new Document.
func (set DocumentSet) PutOrUpdate(section, key, value string) {
	if set[0] == nil {
		set[0] = new(Document)
	}
	set[0].PutOrUpdate(section, key, value)
}

// Close closes every document in the set. Nil elements are ignored.
func (set DocumentSet) Close() {
	for _, d := range set {
		if d != nil {
			d.Close()
		}
	}
}
