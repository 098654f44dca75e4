// SPDX-License-Identifier: MIT

package multiply

import "github.com/katalvlaran/fastmul/matrix"

// Operation tags for unified error wrapping.
const (
	opClassic         = "Classic"
	opPeel            = "Peel"
	opStrassenStatic  = "StrassenStatic"
	opStrassenDynamic = "StrassenDynamic"
	opLaderman        = "Laderman"
	opBini            = "Bini"
	opSchonhage       = "Schonhage"
	opRun             = "Run"
)

// Classic computes a·b with the textbook triple loop.
// Implementation:
//   - Stage 1: validate a, b non-nil and a.Cols() == b.Rows().
//   - Stage 2: i→k→j loop: for each a[i,k], sweep row k of b into row i of c.
//
// Behavior highlights:
//   - Accumulates from ring.Zero(); an empty inner dimension yields a zero matrix.
//   - The reference every other algorithm is checked against, and the base
//     case of every recursion.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n·k·m) ring operations, Space O(n·m).
func Classic[T any](a, b *matrix.Dense[T], opts ...Option) (*matrix.Dense[T], error) {
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, multiplyErrorf(opClassic, err)
	}
	newTracer(opClassic, gatherOptions(opts...)).base()

	return classic(a, b), nil
}

// classic is the unchecked kernel; shapes must already be compatible.
func classic[T any](a, b *matrix.Dense[T]) *matrix.Dense[T] {
	ring := a.Ring()
	n, k, m := a.Rows(), a.Cols(), b.Cols()
	ad, bd := a.Data(), b.Data()

	out := make([]T, n*m)
	z := ring.Zero()
	for idx := range out {
		out[idx] = z
	}

	var (
		i, p, j   int
		aik       T
		row, brow []T
	)
	for i = 0; i < n; i++ {
		row = out[i*m : (i+1)*m]
		for p = 0; p < k; p++ {
			aik = ad[i*k+p]
			brow = bd[p*m : (p+1)*m]
			for j = 0; j < m; j++ {
				row[j] = ring.Add(row[j], ring.Mul(aik, brow[j]))
			}
		}
	}

	return matrix.FromData(ring, out, n, m)
}
