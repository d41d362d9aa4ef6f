// Package matrix_test provides benchmarks for the matrix kernels.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/matcalc/matrix"
)

// benchSizes are the matrix sizes to benchmark.
var benchSizes = []int{2, 32, 128}

// sink to defeat dead-code elimination
var sinkM matrix.Matrix

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := MustDense(b, n, n), MustDense(b, n, n)
			fillSeq(b, A)
			fillSeq(b, B)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Add(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A, B := MustDense(b, n, n), MustDense(b, n, n)
			fillSeq(b, A)
			fillSeq(b, B)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
