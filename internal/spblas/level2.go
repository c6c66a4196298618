package spblas

// DuscscmvUpper computes y <- y + A*x for a symmetric matrix A given in
// CSC form holding only the upper triangle (including the diagonal), as
// produced by a CSC column layout (indptr, ind, data). This is the
// matrix/vector product needed to reconstruct a symmetric matrix from
// its stored triangle without materialising the other half: each stored
// entry (row, col, v) contributes v*x[col] to y[row], and, when row !=
// col, also contributes v*x[row] to y[col].
func DuscscmvUpper(n int, indptr, ind []int, data []float64, x, y []float64) {
	for j := 0; j < n; j++ {
		xj := x[j]
		for p := indptr[j]; p < indptr[j+1]; p++ {
			i := ind[p]
			v := data[p]
			y[i] += v * xj
			if i != j {
				y[j] += v * x[i]
			}
		}
	}
}

// DuscscmvLowerUnit computes y <- y + T*x where T = L or T = L^T for a
// strict lower triangular CSC matrix L with implicit unit diagonal (the
// factor produced by Factor). trans selects L^T.
func DuscscmvLowerUnit(n int, indptr, ind []int, data []float64, x, y []float64, trans bool) {
	for j := 0; j < n; j++ {
		y[j] += x[j] // unit diagonal
		for p := indptr[j]; p < indptr[j+1]; p++ {
			i := ind[p]
			v := data[p]
			if trans {
				y[j] += v * x[i]
			} else {
				y[i] += v * x[j]
			}
		}
	}
}
