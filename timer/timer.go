// SPDX-License-Identifier: MIT

// Package timer measures wall-clock time of a single operation.
//
// A Timer is started once and read any number of times; it uses the
// monotonic clock reading carried by time.Time, so it is unaffected by
// wall-clock adjustments.
package timer

import "time"

// Timer records a start instant. The zero value is not started; use Start.
type Timer struct {
	epoch time.Time
	now   func() time.Time
}

// Start returns a Timer started at the current instant.
func Start() *Timer {
	t := &Timer{now: time.Now}
	t.Restart()

	return t
}

// Restart resets the start instant to now.
func (t *Timer) Restart() {
	if t.now == nil {
		t.now = time.Now
	}
	t.epoch = t.now()
}

// Elapsed returns the exact duration since the start instant.
func (t *Timer) Elapsed() time.Duration {
	if t.now == nil {
		return 0
	}

	return t.now().Sub(t.epoch)
}

// Seconds returns the elapsed time in seconds at microsecond resolution.
func (t *Timer) Seconds() float64 {
	return float64(t.Elapsed().Microseconds()) / 1e6
}
