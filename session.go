// Copyright 2026 Wes Koerber.
// SPDX-License-Identifier: BSD-3-Clause

package inez

import (
	"fmt"
	"io"

	"github.com/weskoerber/inez/capio"
)

// DefaultMaxReadSize caps how many bytes LoadFile and LoadStream drain from
// a source when Options.MaxReadSize is unset.
const DefaultMaxReadSize = 10 << 20 // 10 MiB

// Options holds optional parameters for NewSession.
type Options struct {
	// MaxReadSize bounds the number of bytes LoadFile and LoadStream accept
	// from a source. Zero means DefaultMaxReadSize.
	MaxReadSize int
}

// A Session holds the source buffer that documents are parsed from: at most
// one buffer at a time, either borrowed from the caller or owned by the
// session. Sessions are not safe for concurrent use.
type Session struct {
	maxReadSize int
	buf         []byte
	owned       bool
}

// NewSession returns an empty session. Nil options are treated identically
// to passing the zero value.
func NewSession(opts *Options) *Session {
	s := &Session{maxReadSize: DefaultMaxReadSize}
	if opts != nil && opts.MaxReadSize > 0 {
		s.maxReadSize = opts.MaxReadSize
	}
	return s
}

// LoadBuffer points the session at caller-owned bytes without copying.
// Documents parsed from the session alias buf, so the caller must keep buf
// unmodified for as long as the session and any derived Document are in
// use. Any previously loaded buffer is released.
func (s *Session) LoadBuffer(buf []byte) {
	s.release()
	s.buf = buf
}

// LoadBufferOwned copies buf into a buffer owned by the session. The caller
// may reuse buf immediately. Any previously loaded buffer is released.
func (s *Session) LoadBufferOwned(buf []byte) {
	s.release()
	s.buf = append([]byte(nil), buf...)
	s.owned = true
}

// LoadFile reads the file at path into an owned buffer, enforcing the
// session's maximum read size. File system errors are surfaced verbatim;
// an oversized file fails with an error wrapping capio.ErrTooLarge.
func (s *Session) LoadFile(path string) error {
	buf, err := capio.ReadFile(path, s.maxReadSize)
	if err != nil {
		return fmt.Errorf("load ini file: %w", err)
	}
	s.release()
	s.buf = buf
	s.owned = true
	return nil
}

// LoadStream drains r into an owned buffer, enforcing the session's maximum
// read size. Read errors are surfaced verbatim; an oversized stream fails
// with an error wrapping capio.ErrTooLarge.
func (s *Session) LoadStream(r io.Reader) error {
	buf, err := capio.ReadAll(r, s.maxReadSize)
	if err != nil {
		return fmt.Errorf("load ini stream: %w", err)
	}
	s.release()
	s.buf = buf
	s.owned = true
	return nil
}

// Parse scans the currently loaded buffer and returns a fresh Document.
// A session with no buffer loaded yields an empty Document. Each call
// rescans the buffer; earlier Documents are unaffected and live
// independently of the session.
func (s *Session) Parse() (*Document, error) {
	return Parse(s.buf)
}

// BufferInfo reports the size of the currently loaded buffer and whether
// the session owns it, as opposed to borrowing it from the caller.
func (s *Session) BufferInfo() (size int, owned bool) {
	return len(s.buf), s.owned
}

// Close releases the session's buffer, if any. Documents parsed from an
// owned buffer keep that memory reachable on their own; Close only severs
// the session's reference. Close is safe to call more than once.
func (s *Session) Close() {
	s.release()
}

func (s *Session) release() {
	s.buf = nil
	s.owned = false
}
