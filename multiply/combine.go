// SPDX-License-Identifier: MIT

package multiply

import (
	"fmt"

	"github.com/katalvlaran/fastmul/matrix"
)

// term is one summand ±ε^pow·X[i][j] of a block linear combination, or,
// in an output list, the block C[i][j] that receives ±ε^pow·P.
// Indices are 0-based; pow 0 means no ε factor.
type term struct {
	i, j int
	neg  bool
	pow  int
}

// pos and neg build terms from the 1-based block names used in the
// literature (A11, B23, ...).
func pos(i, j int) term { return term{i: i - 1, j: j - 1} }
func neg(i, j int) term { return term{i: i - 1, j: j - 1, neg: true} }

// eps returns t scaled by ε^p.
func (t term) eps(p int) term {
	t.pow = p

	return t
}

// comb groups terms into a linear combination.
func comb(ts ...term) []term { return ts }

// product is one bilinear product P = (Σ left)·(Σ right) of a block scheme,
// accumulated into every block listed in out.
//
// When transposed is set the product is evaluated through the transpose
// identity: left combines transposed B blocks, right combines transposed A
// blocks, and P is transposed back before accumulation.
type product struct {
	left, right []term
	out         []term
	transposed  bool
}

// scheme is a bilinear algorithm for an ⟨n,k,m⟩ block product: A is split
// into n×k blocks, B into k×m blocks, C into n×m blocks.
type scheme struct {
	name     string
	n, k, m  int
	products []product
}

// transposes reports whether any product needs transposed block grids.
func (s *scheme) transposes() bool {
	for _, p := range s.products {
		if p.transposed {
			return true
		}
	}

	return false
}

// grid is a rows×cols array of equally sized blocks.
type grid[T any] [][]*matrix.Dense[T]

// splitGrid copies x into rows×cols blocks of size ⌊x.r/rows⌋×⌊x.c/cols⌋.
// Rows and columns beyond the last full block are left for peeling.
func splitGrid[T any](x *matrix.Dense[T], rows, cols int) (grid[T], error) {
	h, w := x.Rows()/rows, x.Cols()/cols
	g := make(grid[T], rows)
	var (
		i, j int
		err  error
	)
	for i = 0; i < rows; i++ {
		g[i] = make([]*matrix.Dense[T], cols)
		for j = 0; j < cols; j++ {
			if g[i][j], err = x.Subblock(i*h, j*w, h, w); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

// transpose returns the grid of individually transposed blocks; block
// positions are unchanged.
func (g grid[T]) transpose() grid[T] {
	out := make(grid[T], len(g))
	for i := range g {
		out[i] = make([]*matrix.Dense[T], len(g[i]))
		for j := range g[i] {
			out[i][j] = g[i][j].Transpose()
		}
	}

	return out
}

// combine evaluates Σ ±ε^pow·g[i][j] over terms. A single unscaled positive
// term returns the block itself; callers never mutate operands.
// powers[p] must hold ε^p for every pow used.
func combine[T any](g grid[T], terms []term, powers []T) (*matrix.Dense[T], error) {
	first := g[terms[0].i][terms[0].j]
	if len(terms) == 1 && !terms[0].neg && terms[0].pow == 0 {
		return first, nil
	}

	out, err := matrix.NewDense(first.Ring(), first.Rows(), first.Cols())
	if err != nil {
		return nil, err
	}
	for _, t := range terms {
		if err = accumulate(out, 0, 0, g[t.i][t.j], t, powers); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// accumulate adds ±ε^t.pow·blk into dst at (r0, c0).
func accumulate[T any](dst *matrix.Dense[T], r0, c0 int, blk *matrix.Dense[T], t term, powers []T) error {
	if t.pow > 0 {
		blk = blk.Scale(powers[t.pow])
	}
	if t.neg {
		return dst.BlockSubtract(r0, c0, blk)
	}

	return dst.BlockAdd(r0, c0, blk)
}

// mulFunc is the recursive product used for the sub-products of a step.
type mulFunc[T any] func(x, y *matrix.Dense[T]) (*matrix.Dense[T], error)

// runScheme performs one block step of s: it splits a and b, evaluates every
// product through mul and accumulates the results into a fresh
// a.Rows()×b.Cols() matrix. Parts outside the full blocks stay zero.
func runScheme[T any](s *scheme, a, b *matrix.Dense[T], powers []T, mul mulFunc[T]) (*matrix.Dense[T], error) {
	ga, err := splitGrid(a, s.n, s.k)
	if err != nil {
		return nil, fmt.Errorf("%s: split A: %w", s.name, err)
	}
	gb, err := splitGrid(b, s.k, s.m)
	if err != nil {
		return nil, fmt.Errorf("%s: split B: %w", s.name, err)
	}
	var gaT, gbT grid[T]
	if s.transposes() {
		gaT, gbT = ga.transpose(), gb.transpose()
	}

	c, err := matrix.NewDense(a.Ring(), a.Rows(), b.Cols())
	if err != nil {
		return nil, err
	}
	h, bw := a.Rows()/s.n, b.Cols()/s.m

	var x, y, p *matrix.Dense[T]
	for idx, pr := range s.products {
		left, right := ga, gb
		if pr.transposed {
			left, right = gbT, gaT
		}
		if x, err = combine(left, pr.left, powers); err != nil {
			return nil, fmt.Errorf("%s: P%d: %w", s.name, idx+1, err)
		}
		if y, err = combine(right, pr.right, powers); err != nil {
			return nil, fmt.Errorf("%s: P%d: %w", s.name, idx+1, err)
		}
		if p, err = mul(x, y); err != nil {
			return nil, err
		}
		if pr.transposed {
			p = p.Transpose()
		}
		for _, t := range pr.out {
			if err = accumulate(c, t.i*h, t.j*bw, p, t, powers); err != nil {
				return nil, fmt.Errorf("%s: P%d: %w", s.name, idx+1, err)
			}
		}
	}

	return c, nil
}
