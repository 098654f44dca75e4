// SPDX-License-Identifier: MIT

package multiply

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fastmul/matrix"
)

// Algorithm identifies one of the multiplication algorithms of this package
// so callers (benchmarks, the command line) can iterate them uniformly.
type Algorithm int

// Registered algorithms, in benchmark order.
const (
	AlgClassic Algorithm = iota
	AlgStrassenStatic
	AlgStrassenDynamic
	AlgLaderman
	AlgBiniExact
	AlgBiniApprox
	AlgSchonhageExact
	AlgSchonhageApprox
)

var algorithmNames = [...]string{
	AlgClassic:         "classic",
	AlgStrassenStatic:  "strassen-static",
	AlgStrassenDynamic: "strassen-dynamic",
	AlgLaderman:        "laderman",
	AlgBiniExact:       "bini-exact",
	AlgBiniApprox:      "bini-approx",
	AlgSchonhageExact:  "schonhage-exact",
	AlgSchonhageApprox: "schonhage-approx",
}

// Algorithms returns every registered algorithm in declaration order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(algorithmNames))
	for i := range out {
		out[i] = Algorithm(i)
	}

	return out
}

// String returns the stable lower-case name, e.g. "strassen-dynamic".
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}

	return algorithmNames[a]
}

// Exact reports whether the algorithm must reproduce Classic exactly.
// Only the numeric-ε variants are approximate.
func (a Algorithm) Exact() bool {
	return a != AlgBiniApprox && a != AlgSchonhageApprox
}

// ParseAlgorithm resolves a name as printed by String (case-insensitive,
// '_' accepted for '-').
// Errors: ErrUnknownAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for i, n := range algorithmNames {
		if n == key {
			return Algorithm(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", name, ErrUnknownAlgorithm)
}

// Run multiplies float64 matrices with alg. eps is used only by the
// approximate variants.
//
// Errors: ErrUnknownAlgorithm, ErrInvalidEpsilon, matrix.ErrNilMatrix,
// matrix.ErrDimensionMismatch.
func Run(alg Algorithm, a, b *matrix.Dense[float64], eps float64, opts ...Option) (*matrix.Dense[float64], error) {
	switch alg {
	case AlgClassic:
		return Classic(a, b, opts...)
	case AlgStrassenStatic:
		return StrassenStatic(a, b, opts...)
	case AlgStrassenDynamic:
		return StrassenDynamic(a, b, opts...)
	case AlgLaderman:
		return Laderman(a, b, opts...)
	case AlgBiniExact:
		return BiniExact(a, b, opts...)
	case AlgBiniApprox:
		return BiniApprox(a, b, eps, opts...)
	case AlgSchonhageExact:
		return SchonhageExact(a, b, opts...)
	case AlgSchonhageApprox:
		return SchonhageApprox(a, b, eps, opts...)
	default:
		return nil, fmt.Errorf("%s(%v): %w", opRun, alg, ErrUnknownAlgorithm)
	}
}
