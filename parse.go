// Copyright 2026 Wes Koerber.
// SPDX-License-Identifier: BSD-3-Clause

package inez

import "fmt"

// A SyntaxError describes a malformed line encountered during parsing.
// Line is the 1-based physical line number within the source buffer.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// parserState tracks whether a section header has been seen yet.
// Declaration lines are only legal in stateSection.
type parserState int

const (
	stateNoSection parserState = iota
	stateSection
)

// A parser consumes scanned lines one at a time, tracking the current
// section and accumulating entries.
type parser struct {
	state   parserState
	section []byte
	entries []Entry
}

// line applies the transition rules to one scanned line, which must be
// non-empty. lineno is used only for error reporting.
func (p *parser) line(ln []byte, lineno int) error {
	switch ln[0] {
	case ';':
		// Full-line comment. Only the first byte is examined; the rest of
		// the line is ignored even if it contains '=' or brackets.
		return nil
	case '[':
		// The bracket check runs against the raw line: surrounding spaces
		// make the header malformed rather than tolerated.
		if ln[len(ln)-1] != ']' {
			return &SyntaxError{Line: lineno, Msg: "missing section closing bracket"}
		}
		p.section = ln[1 : len(ln)-1]
		p.state = stateSection
		return nil
	default:
		if p.state == stateNoSection {
			return &SyntaxError{Line: lineno, Msg: "property before any section header"}
		}
		key, value, ok := splitPair(ln)
		if !ok {
			return &SyntaxError{Line: lineno, Msg: "could not find '='"}
		}
		p.entries = append(p.entries, Entry{Section: p.section, Key: key, Value: value})
		return nil
	}
}

// Parse parses buf as INI text. The returned Document's entries are
// sub-slices of buf: they remain valid only while buf does, and the caller
// must not modify buf while the Document is in use. A nil or empty buffer
// yields an empty Document.
//
// Parsing is atomic. On a malformed line Parse fails with an error wrapping
// a *SyntaxError and returns no partial Document.
//
// See the Syntax section in the package documentation for the format
// recognized by Parse.
func Parse(buf []byte) (*Document, error) {
	s := &lineScanner{buf: buf}
	p := new(parser)
	for {
		ln, ok := s.next()
		if !ok {
			break
		}
		if err := p.line(ln, s.line); err != nil {
			return nil, fmt.Errorf("parse ini: %w", err)
		}
	}
	return &Document{entries: p.entries}, nil
}
