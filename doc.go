// Package fastmul is a playground for fast dense matrix multiplication:
// from the classic triple loop to Strassen, Laderman and the border-rank
// schemes of Bini and Schönhage.
//
// What is inside?
//
//	A generic, dependency-light toolkit that brings together:
//		• Dense matrices over any scalar ring, with block copy-out / accumulate-in
//		• Classic multiplication, the reference for everything else
//		• Strassen ⟨2,2,2⟩ on padded squares (static) or with dynamic peeling
//		• Laderman ⟨3,3,3⟩ with 23 products
//		• Bini ⟨2,2,3⟩ and Schönhage ⟨3,3,3⟩, exact through polynomial ε or
//		  approximate with a small numeric ε
//		• Random inputs, timing, and a `fastmul` command for demos and benchmarks
//
// Packages:
//
//	matrix/    - Dense[T], Ring[T], validators, conversions, printer, error metrics
//	poly/      - truncated polynomials in ε and their ring
//	multiply/  - the algorithms, dynamic peeling, options and stats
//	generate/  - seeded random matrices
//	timer/     - start / elapsed seconds
//	cmd/fastmul - demo, bench and version commands
//
// Quick example:
//
//	a := matrix.NewNumeric([]int{1, 2, 3, 4}, 2, 2)
//	b := matrix.NewNumeric([]int{4, 3, 2, 1}, 2, 2)
//	c, _ := multiply.StrassenDynamic(a, b, multiply.WithThreshold(1))
//	// c = [8 5; 20 13]
//
//	go get github.com/katalvlaran/fastmul
package fastmul
