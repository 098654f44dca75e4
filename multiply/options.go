// SPDX-License-Identifier: MIT

// Package multiply: functional configuration for the recursive algorithms.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants,
//   - Stats, an optional per-call collector of recursion counters.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package multiply

import (
	"github.com/sirupsen/logrus"
)

// ---------- Defaults (single source of truth) ----------

// DefaultThreshold is the dimension at or below which every recursive
// algorithm falls back to Classic.
const DefaultThreshold = 200

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicThresholdInvalid = "multiply: WithThreshold: threshold must be >= 1"
	panicLoggerNil        = "multiply: WithLogger: logger must be non-nil"
	panicStatsNil         = "multiply: WithStats: stats must be non-nil"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	threshold int                // >= 1; DefaultThreshold
	logger    logrus.FieldLogger // nil ⇒ silent
	stats     *Stats             // nil ⇒ not collected
}

// Stats collects counters for a single multiplication call. It is not safe
// for concurrent use; pass a fresh (or Reset) value per call.
type Stats struct {
	// Products counts recursive block products issued by split steps.
	Products int
	// BaseCases counts products handed to the classic kernel as a recursion
	// base case, including a top-level fallback for small inputs.
	BaseCases int
	// Peels counts peeling corrections applied (at most three per split step).
	Peels int
	// MaxDepth is the deepest recursion level reached (0 = top-level call only).
	MaxDepth int
}

// Reset zeroes all counters.
func (s *Stats) Reset() { *s = Stats{} }

// ---------- Constructors (WithX) ----------

// WithThreshold sets the recursion cutoff n.
// Implementation:
//   - Stage 1: validate n >= 1.
//   - Stage 2: return a setter that writes n into Options.
//
// Behavior highlights:
//   - A subproblem whose relevant dimension is ≤ n is computed classically.
//   - Low thresholds (1..5) force deep recursion and peeling; useful in tests.
//
// Errors:
//   - Panics with a stable message when n < 1.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithThreshold(n int) Option {
	if n < 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *Options) { o.threshold = n }
}

// WithLogger enables a Debug-level trace of every split step with fields
// algorithm, depth, rows, inner and cols.
// Panics when l is nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *Options) { o.logger = l }
}

// WithStats makes the call record its recursion counters into s.
// Counters accumulate; s is not reset by the call.
// Panics when s is nil.
func WithStats(s *Stats) Option {
	if s == nil {
		panic(panicStatsNil)
	}

	return func(o *Options) { o.stats = s }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{threshold: DefaultThreshold}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ---------- recursion tracing ----------

// tracer feeds the optional logger and stats collector of one call.
type tracer struct {
	name string
	o    Options
}

func newTracer(name string, o Options) tracer {
	return tracer{name: name, o: o}
}

// split records a recursive step of an a.r×a.c · a.c×cols product.
func (t tracer) split(depth, rows, inner, cols, products int) {
	if t.o.stats != nil {
		t.o.stats.Products += products
		if depth+1 > t.o.stats.MaxDepth {
			t.o.stats.MaxDepth = depth + 1
		}
	}
	if t.o.logger != nil {
		t.o.logger.WithFields(logrus.Fields{
			"algorithm": t.name,
			"depth":     depth,
			"rows":      rows,
			"inner":     inner,
			"cols":      cols,
		}).Debug("split")
	}
}

// base records a classic base-case product.
func (t tracer) base() {
	if t.o.stats != nil {
		t.o.stats.BaseCases++
	}
}

// peeled records n applied peeling corrections.
func (t tracer) peeled(n int) {
	if t.o.stats != nil {
		t.o.stats.Peels += n
	}
}
