// SPDX-License-Identifier: MIT

// Package multiply implements classic and fast algorithms for the product
// of two dense matrices over a generic scalar ring.
//
// The multiply package provides:
//
//   - Classic: the i→k→j triple loop; the base case of every recursion and
//     the reference every other algorithm is checked against.
//   - StrassenStatic / StrassenDynamic: Strassen's 7-product 2×2 scheme,
//     either on zero-padded power-of-two squares or on floor halves with
//     dynamic peeling.
//   - Laderman: 23 products on a 3×3 block split.
//   - Bini (⟨2,2,3⟩, 10 products) and Schönhage (⟨3,3,3⟩, 21 products):
//     border-rank algorithms that are exact only in the limit ε → 0. Each
//     runs in exact mode (BiniExact, SchonhageExact: formal ε through
//     package poly) or approximate mode (BiniApprox, SchonhageApprox: a
//     small float ε). The generic *WithRing entry points accept any
//     EpsilonRing.
//   - Peel: the dynamic peeling correction for dimensions not divisible by a
//     block factor.
//   - Algorithm, ParseAlgorithm and Run for iterating algorithms uniformly.
//
// Every recursive algorithm falls back to Classic once a subproblem is at
// or below the threshold (DefaultThreshold, see WithThreshold). The work is
// sequential and allocation-based: each recursion level copies its blocks
// and releases them on return. No function panics on user input; only
// invalid option values panic.
//
// Example:
//
//	c, err := multiply.StrassenDynamic(a, b, multiply.WithThreshold(64))
package multiply
