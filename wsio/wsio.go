// Copyright 2026 Wes Koerber.
// SPDX-License-Identifier: BSD-3-Clause

// Package wsio exposes a WebSocket connection as a byte stream, so that
// configuration served by a remote peer can be loaded with
// Session.LoadStream.
package wsio

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/weskoerber/inez/retry"
)

// Dial connects to the WebSocket endpoint at url and returns a Source that
// reads the messages the peer sends. If strategy is non-nil, dial failures
// are retried with the given backoff until ctx is done.
func Dial(ctx context.Context, url string, strategy retry.BackoffStrategy) (*Source, error) {
	var conn *websocket.Conn
	dial := func() error {
		var resp *http.Response
		var err error
		conn, resp, err = websocket.DefaultDialer.DialContext(ctx, url, nil)
		if err != nil {
			if resp != nil {
				resp.Body.Close()
			}
			return err
		}
		return nil
	}
	var err error
	if strategy == nil {
		err = dial()
	} else {
		err = retry.Do(ctx, "dialing "+url, strategy, dial)
	}
	if err != nil {
		return nil, fmt.Errorf("dial websocket: %w", err)
	}
	return NewSource(conn), nil
}

// NewSource wraps an established connection. The Source assumes sole
// ownership of reads on conn.
func NewSource(conn *websocket.Conn) *Source {
	if conn == nil {
		panic("wsio.NewSource(nil)")
	}
	return &Source{conn: conn}
}

// A Source adapts a WebSocket connection to io.Reader by concatenating the
// payloads of incoming text and binary messages. A normal close frame from
// the peer reads as io.EOF.
type Source struct {
	conn *websocket.Conn
	r    io.Reader
}

// Read implements io.Reader.
func (s *Source) Read(p []byte) (int, error) {
	for {
		if s.r == nil {
			_, r, err := s.conn.NextReader()
			if err != nil {
				if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					return 0, io.EOF
				}
				return 0, err
			}
			s.r = r
		}
		n, err := s.r.Read(p)
		if err == io.EOF {
			// Message exhausted; move on to the next one.
			s.r = nil
			if n > 0 {
				return n, nil
			}
			continue
		}
		return n, err
	}
}

// Close closes the underlying connection.
func (s *Source) Close() error {
	return s.conn.Close()
}
