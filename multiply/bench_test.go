// SPDX-License-Identifier: MIT
package multiply_test

import (
	"testing"

	"github.com/katalvlaran/fastmul/multiply"
)

const benchSize = 256

// BenchmarkAlgorithms runs every registered algorithm on the same
// benchSize² float64 operands with threshold 32.
func BenchmarkAlgorithms(b *testing.B) {
	x, y := floatPair(b, 1, benchSize, benchSize, benchSize)
	for _, alg := range multiply.Algorithms() {
		b.Run(alg.String(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := multiply.Run(alg, x, y, 1e-4, multiply.WithThreshold(32)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
