// SPDX-License-Identifier: MIT

package timer

import "time"

// WithClock replaces the clock of t; test-only.
func (t *Timer) WithClock(now func() time.Time) *Timer {
	t.now = now

	return t
}
