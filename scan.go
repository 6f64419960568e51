// Copyright 2026 Wes Koerber.
// SPDX-License-Identifier: BSD-3-Clause

package inez

import "bytes"

// A lineScanner splits a buffer into lines on '\n', skipping the empty
// tokens between consecutive separators. It does no trimming: carriage
// returns and surrounding spaces remain part of the line.
type lineScanner struct {
	buf  []byte
	off  int
	line int // 1-based physical line number of the last line returned
}

// next returns the next non-empty line. It reports false once the buffer is
// exhausted.
func (s *lineScanner) next() ([]byte, bool) {
	for s.off < len(s.buf) {
		s.line++
		ln := s.buf[s.off:]
		if i := bytes.IndexByte(ln, '\n'); i >= 0 {
			ln = ln[:i]
			s.off += i + 1
		} else {
			s.off = len(s.buf)
		}
		if len(ln) > 0 {
			return ln, true
		}
	}
	return nil, false
}

// reset rewinds the scanner to the start of its buffer.
func (s *lineScanner) reset() {
	s.off = 0
	s.line = 0
}

// splitPair splits a declaration line on its first '='. Any further '='
// bytes remain part of the value.
func splitPair(line []byte) (key, value []byte, ok bool) {
	i := bytes.IndexByte(line, '=')
	if i < 0 {
		return nil, nil, false
	}
	return line[:i], line[i+1:], true
}

// trimSpaces slices leading and trailing ASCII space characters off b.
// Other whitespace is significant in this dialect.
func trimSpaces(b []byte) []byte {
	for len(b) > 0 && b[0] == ' ' {
		b = b[1:]
	}
	for len(b) > 0 && b[len(b)-1] == ' ' {
		b = b[:len(b)-1]
	}
	return b
}
