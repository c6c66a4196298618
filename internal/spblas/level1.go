package spblas

// Dusga (sparse gather, x <- y|indx) gathers entries from the dense
// vector y into the sparse vector x using indx as the index values to
// gather.
func Dusga(y []float64, indx []int, x []float64) {
	for i, index := range indx {
		x[i] = y[index]
	}
}

// Dusgz (sparse gather and zero, x <- y|indx, y|indx <- 0) gathers
// entries from the dense vector y into x (as Dusga) and then zeroes the
// gathered positions of y.
func Dusgz(y []float64, indx []int, x []float64) {
	for i, index := range indx {
		x[i] = y[index]
		y[index] = 0
	}
}

// Dussc (sparse scatter, y|indx <- x) scatters the entries of the sparse
// vector x into the dense vector y at the positions given by indx.
func Dussc(x []float64, y []float64, indx []int) {
	for i, index := range indx {
		y[index] = x[i]
	}
}

// Dusaxpy (sparse update, y|indx <- alpha*x + y|indx) scales the sparse
// vector x by alpha and adds the result into the dense vector y at the
// positions given by indx.
func Dusaxpy(alpha float64, x []float64, indx []int, y []float64) {
	for i, index := range indx {
		y[index] += alpha * x[i]
	}
}

// Dusdot (sparse dot product, r <- x^T * y) returns the dot product of
// the sparse vector x and the dense vector y, indexed by indx.
func Dusdot(x []float64, indx []int, y []float64) (dot float64) {
	for i, index := range indx {
		dot += x[i] * y[index]
	}
	return dot
}
