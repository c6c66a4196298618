/*
Package ldltest generates random quasi-definite sparse matrices for
property-based tests and benchmarks of the ldl package. Sparsity patterns
are drawn with math/rand and gonum.org/v1/gonum/stat/sampleuv (whose
WithoutReplacement takes a *math/rand.Rand, not the x/exp/rand variant
gonum uses elsewhere), sampling random upper-triangle positions without
replacement, and diagonal dominance is used as a cheap sufficient
condition for factorability without pivoting.
*/
package ldltest

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/sampleuv"
)

// QD is a random quasi-definite matrix's strict upper triangle in CSC
// form, ready to pass to ldl.Etree/ldl.Factor, plus the dense symmetric
// matrix it was built from for golden-value comparisons.
type QD struct {
	N      int
	Ap, Ai []int
	Ax     []float64
	Dense  [][]float64 // full symmetric n x n matrix, row-major
}

// Generate builds a random n x n quasi-definite matrix with off-diagonal
// density frac (0 < frac <= 1, fraction of the strict upper triangle
// that is non-zero) and diagonally-dominant (hence non-singular,
// pivoting-free factorable) diagonal entries.
func Generate(n int, frac float64, rnd *rand.Rand) *QD {
	dense := make([][]float64, n)
	for i := range dense {
		dense[i] = make([]float64, n)
	}

	pairs := n * (n - 1) / 2
	nnzOffDiag := int(frac * float64(pairs))
	if nnzOffDiag > 0 {
		idx := make([]int, nnzOffDiag)
		sampleuv.WithoutReplacement(idx, pairs, rnd)
		for _, lin := range idx {
			i, j := unpackUpper(n, lin)
			v := rnd.Float64()*2 - 1
			dense[i][j] = v
			dense[j][i] = v
		}
	}

	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < n; j++ {
			if j != i {
				sum += math.Abs(dense[i][j])
			}
		}
		sign := 1.0
		if i%2 == 1 {
			// alternate the diagonal sign row by row (even rows positive,
			// odd rows negative) to exercise indefinite (not just positive
			// definite) factorizations.
			sign = -1.0
		}
		dense[i][i] = sign * (sum + 1 + rnd.Float64())
	}

	Ap, Ai, Ax := toTriuCSC(dense)
	return &QD{N: n, Ap: Ap, Ai: Ai, Ax: Ax, Dense: dense}
}

// unpackUpper maps a linear index in [0, n*(n-1)/2) to a strict
// upper-triangle coordinate (i, j), i < j, in row-major triangular order.
func unpackUpper(n, lin int) (i, j int) {
	for i = 0; i < n; i++ {
		rowLen := n - i - 1
		if lin < rowLen {
			return i, i + 1 + lin
		}
		lin -= rowLen
	}
	panic("ldltest: index out of range")
}

// toTriuCSC converts a dense symmetric matrix to CSC storage of its
// strict upper triangle plus diagonal, with row indices sorted ascending
// within each column (the diagonal, having the largest valid row index
// in a triu column, lands last automatically).
func toTriuCSC(dense [][]float64) (Ap, Ai []int, Ax []float64) {
	n := len(dense)
	Ap = make([]int, n+1)
	for j := 0; j < n; j++ {
		for i := 0; i <= j; i++ {
			if dense[i][j] != 0 {
				Ap[j+1]++
			}
		}
	}
	for j := 0; j < n; j++ {
		Ap[j+1] += Ap[j]
	}

	Ai = make([]int, Ap[n])
	Ax = make([]float64, Ap[n])
	next := append([]int(nil), Ap[:n]...)
	for j := 0; j < n; j++ {
		for i := 0; i <= j; i++ {
			if dense[i][j] != 0 {
				Ai[next[j]] = i
				Ax[next[j]] = dense[i][j]
				next[j]++
			}
		}
	}
	return Ap, Ai, Ax
}
