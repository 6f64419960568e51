// Copyright 2026 Wes Koerber.
// SPDX-License-Identifier: BSD-3-Clause

// Package retry provides a function for retrying an operation.
package retry

import (
	"context"
	"time"

	"zombiezen.com/go/log"
)

// A BackoffStrategy can be called repeatedly to obtain (presumably)
// increasing durations to wait between retries.
type BackoffStrategy interface {
	Duration() time.Duration
}

// Do calls a function repeatedly with backoff until it returns a nil error.
// Do returns an error only if the passed-in function does not return nil
// before the Context is Done. The function is guaranteed to be called at
// least once.
//
// The operation should be a verb phrase like "talking to Alice" for logging.
func Do(ctx context.Context, operation string, strategy BackoffStrategy, f func() error) error {
	var t *time.Timer
	for {
		err := f()
		if err == nil {
			return nil
		}
		d := strategy.Duration()
		if d > 0 {
			log.Warnf(ctx, "Error %s (will retry in %v): %v", operation, d, err)
			if t == nil {
				t = time.NewTimer(d)
				defer t.Stop()
			} else {
				t.Reset(d)
			}
			select {
			case <-t.C:
			case <-ctx.Done():
				return err
			}
		} else {
			log.Warnf(ctx, "Error %s (will retry): %v", operation, err)
			select {
			case <-ctx.Done():
				return err
			default:
			}
		}
	}
}

// An Exponential is a BackoffStrategy that multiplies the wait duration
// after every call, up to a maximum. The zero value starts at 100ms and
// doubles on every retry. Exponential is stateful and must not be shared
// between concurrent calls to Do.
type Exponential struct {
	// Initial is the duration returned by the first call to Duration.
	// Zero means 100ms.
	Initial time.Duration
	// Multiplier scales the duration on every subsequent call. Values less
	// than or equal to 1 mean 2.
	Multiplier float64
	// Max, if positive, clamps the returned duration.
	Max time.Duration

	d time.Duration
}

// Duration implements BackoffStrategy.
func (e *Exponential) Duration() time.Duration {
	if e.d == 0 {
		e.d = e.Initial
		if e.d <= 0 {
			e.d = 100 * time.Millisecond
		}
	} else {
		m := e.Multiplier
		if m <= 1 {
			m = 2
		}
		e.d = time.Duration(float64(e.d) * m)
	}
	if e.Max > 0 && e.d > e.Max {
		e.d = e.Max
	}
	return e.d
}
