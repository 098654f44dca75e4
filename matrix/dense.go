// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Subblock/BlockAdd return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Copy-based block extraction (Subblock): a block never aliases its source.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Subblock: O(r'*c'); BlockAdd: O(r'*c').

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxSubblock = "Subblock" // method tag used in error wrappers
	ctxBlockAdd = "BlockAdd"
	ctxBlockSub = "BlockSubtract"
	ctxAdd      = "Add"
	ctxSub      = "Sub"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix over the scalar ring T.
//   - r,c hold dimensions (rows, cols); zero is legal (0×0 is the empty matrix).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - ring supplies the arithmetic used by block accumulation and equality.
type Dense[T any] struct {
	r, c int     // row and column counts (>=0)
	data []T     // contiguous row-major storage (len == r*c)
	ring Ring[T] // scalar arithmetic
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense[int])(nil)

// NewDense creates an r×c matrix filled with ring.Zero().
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate the buffer and fill it with the additive identity.
//
// Behavior highlights:
//   - 0×0, 0×k and k×0 shapes are legal; recursion produces them for tiny inputs.
//   - No panics on user errors; returns sentinel errors.
//
// Inputs:
//   - ring: scalar arithmetic (non-nil).
//   - rows, cols: non-negative dimensions.
//
// Returns:
//   - *Dense[T]: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (negative shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T any](ring Ring[T], rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return zeros(ring, rows, cols), nil
}

// zeros is the unchecked constructor used internally once shapes are known valid.
func zeros[T any](ring Ring[T], rows, cols int) *Dense[T] {
	buf := make([]T, rows*cols)
	z := ring.Zero()
	for i := range buf {
		buf[i] = z
	}

	return &Dense[T]{r: rows, c: cols, data: buf, ring: ring}
}

// Empty returns the 0×0 matrix.
func Empty[T any](ring Ring[T]) *Dense[T] {
	return &Dense[T]{ring: ring, data: []T{}}
}

// Filled creates an r×c matrix whose every entry is v.
// Errors: ErrInvalidDimensions on negative shape.
// Complexity: O(r*c).
func Filled[T any](ring Ring[T], rows, cols int, v T) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("Filled(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	buf := make([]T, rows*cols)
	for i := range buf {
		buf[i] = v
	}

	return &Dense[T]{r: rows, c: cols, data: buf, ring: ring}, nil
}

// FromData wraps an externally supplied row-major buffer.
// No validation is performed: the caller guarantees len(data) == rows*cols.
// The buffer is adopted, not copied.
// Complexity: O(1).
func FromData[T any](ring Ring[T], data []T, rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: data, ring: ring}
}

// NewNumeric wraps data for a built-in number type using the Numeric ring.
// Like FromData, it performs no validation.
func NewNumeric[T Number](data []T, rows, cols int) *Dense[T] {
	return FromData[T](Numeric[T]{}, data, rows, cols)
}

// Identity returns the n×n identity, using one as the multiplicative unit.
// Errors: ErrInvalidDimensions when n < 0.
func Identity[T any](ring Ring[T], one T, n int) (*Dense[T], error) {
	m, err := NewDense(ring, n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = one
	}

	return m, nil
}

// Rows returns the row count. No side effects.
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Ring returns the scalar arithmetic carried by the matrix.
func (m *Dense[T]) Ring() Ring[T] { return m.ring }

// Data returns a copy of the row-major buffer.
// Complexity: O(r*c).
func (m *Dense[T]) Data() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// indexOf bound-checks (row,col) and computes the flat offset.
// Returns ErrOutOfRange without context; public methods wrap it.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T

		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same ring).
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp, ring: m.ring}
}

// fits reports whether a rows×cols window anchored at (r0,c0) lies inside m.
func (m *Dense[T]) fits(r0, c0, rows, cols int) bool {
	return r0 >= 0 && c0 >= 0 && rows >= 0 && cols >= 0 && r0+rows <= m.r && c0+cols <= m.c
}

// Subblock materializes the rows×cols window anchored at (r0,c0) as a new matrix.
// Implementation:
//   - Stage 1: validate that the window lies inside m (zero-area windows are legal).
//   - Stage 2: allocate the result and copy row slices.
//
// Behavior highlights:
//   - The result is independently owned: mutating it never affects m, and vice versa.
//   - The ring is inherited from m.
//
// Inputs:
//   - r0,c0: top-left offsets; rows, cols: window size (>=0).
//
// Returns:
//   - *Dense[T]: fresh copy of the window.
//
// Errors:
//   - ErrOutOfRange when r0+rows > Rows() or c0+cols > Cols() (or any value is negative).
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *Dense[T]) Subblock(r0, c0, rows, cols int) (*Dense[T], error) {
	if !m.fits(r0, c0, rows, cols) {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxSubblock, r0, c0, rows, cols, ErrOutOfRange)
	}

	out := &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols), ring: m.ring}
	var i, src int
	for i = 0; i < rows; i++ {
		src = (r0+i)*m.c + c0
		copy(out.data[i*cols:(i+1)*cols], m.data[src:src+cols])
	}

	return out, nil
}

// BlockAdd accumulates blk into m at offset (r0,c0): m[r0+i, c0+j] += blk[i,j].
// Implementation:
//   - Stage 1: validate that blk fits inside m at the offset.
//   - Stage 2: walk blk row by row, adding into m's buffer in place.
//
// Errors:
//   - ErrNilMatrix for a nil block; ErrOutOfRange when the block does not fit.
//
// Complexity:
//   - Time O(blk.r*blk.c), Space O(1).
func (m *Dense[T]) BlockAdd(r0, c0 int, blk *Dense[T]) error {
	return m.accumulate(ctxBlockAdd, r0, c0, blk, m.ring.Add)
}

// BlockSubtract is BlockAdd with subtraction: m[r0+i, c0+j] -= blk[i,j].
func (m *Dense[T]) BlockSubtract(r0, c0 int, blk *Dense[T]) error {
	return m.accumulate(ctxBlockSub, r0, c0, blk, m.ring.Sub)
}

// accumulate is the shared row-by-row kernel behind BlockAdd/BlockSubtract.
func (m *Dense[T]) accumulate(tag string, r0, c0 int, blk *Dense[T], op func(a, b T) T) error {
	if blk == nil {
		return denseErrorf(tag, r0, c0, ErrNilMatrix)
	}
	if !m.fits(r0, c0, blk.r, blk.c) {
		return denseErrorf(tag, r0, c0, ErrOutOfRange)
	}

	var i, j, dst, src int
	for i = 0; i < blk.r; i++ {
		dst = (r0+i)*m.c + c0
		src = i * blk.c
		for j = 0; j < blk.c; j++ {
			m.data[dst+j] = op(m.data[dst+j], blk.data[src+j])
		}
	}

	return nil
}

// Add returns m + o as a new matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func (m *Dense[T]) Add(o *Dense[T]) (*Dense[T], error) {
	return m.elementwise(ctxAdd, o, m.ring.Add)
}

// Sub returns m − o as a new matrix.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c).
func (m *Dense[T]) Sub(o *Dense[T]) (*Dense[T], error) {
	return m.elementwise(ctxSub, o, m.ring.Sub)
}

func (m *Dense[T]) elementwise(tag string, o *Dense[T], op func(a, b T) T) (*Dense[T], error) {
	if err := ValidateSameShape(m, o); err != nil {
		return nil, fmt.Errorf("Dense.%s: %w", tag, err)
	}
	out := &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data)), ring: m.ring}
	for idx := range m.data { // deterministic 0..n-1
		out.data[idx] = op(m.data[idx], o.data[idx])
	}

	return out, nil
}

// Scale returns s·m as a new matrix (each entry computed as ring.Mul(s, v)).
// Complexity: O(r*c).
func (m *Dense[T]) Scale(s T) *Dense[T] {
	out := &Dense[T]{r: m.r, c: m.c, data: make([]T, len(m.data)), ring: m.ring}
	for idx, v := range m.data {
		out.data[idx] = m.ring.Mul(s, v)
	}

	return out
}

// Transpose returns mᵀ as a new matrix.
// Complexity: O(r*c).
func (m *Dense[T]) Transpose() *Dense[T] {
	out := &Dense[T]{r: m.c, c: m.r, data: make([]T, len(m.data)), ring: m.ring}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return out
}

// Apply replaces each element with f(i,j,v) in place, in row-major order.
// Complexity: O(r*c).
func (m *Dense[T]) Apply(f func(i, j int, v T) T) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			m.data[base+j] = f(i, j, m.data[base+j])
		}
	}
}

// Equal reports whether o has the same shape and ring-equal entries.
// A nil operand is only equal to another nil.
// Complexity: O(r*c) worst case; stops at the first difference.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for idx := range m.data {
		if !m.ring.Equal(m.data[idx], o.data[idx]) {
			return false
		}
	}

	return true
}

// String renders rows as lines with comma-separated values.
// Intended for debugging; not for hot paths.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprint(m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
