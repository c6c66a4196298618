package ldl

// Lsolve solves (L+I) x = b in place: x is passed in holding b and is
// overwritten with the solution. Lp/Li/Lx describe L, a unit lower
// triangular CSC matrix (the implicit unit diagonal is never stored).
// Lsolve performs no validation; calling it with factors that did not
// come from a successful Factor is undefined behaviour by contract.
func Lsolve(n int, Lp, Li []int, Lx []float64, x []float64) {
	for i := 0; i < n; i++ {
		v := x[i]
		for j := Lp[i]; j < Lp[i+1]; j++ {
			x[Li[j]] -= Lx[j] * v
		}
	}
}

// Ltsolve solves (L+I)^T x = b in place: x is passed in holding b and is
// overwritten with the solution.
func Ltsolve(n int, Lp, Li []int, Lx []float64, x []float64) {
	for i := n - 1; i >= 0; i-- {
		v := x[i]
		for j := Lp[i]; j < Lp[i+1]; j++ {
			v -= Lx[j] * x[Li[j]]
		}
		x[i] = v
	}
}

// Solve solves A x = b in place given the LDL^T factors of A: x is passed
// in holding b and is overwritten with the solution. It composes Lsolve,
// an elementwise scale by Dinv, and Ltsolve, exactly as spec requires.
// Solve assumes the factorization that produced Lp/Li/Lx/Dinv succeeded;
// it performs no validation of its own.
func Solve(n int, Lp, Li []int, Lx []float64, Dinv []float64, x []float64) {
	Lsolve(n, Lp, Li, Lx, x)
	for i := 0; i < n; i++ {
		x[i] *= Dinv[i]
	}
	Ltsolve(n, Lp, Li, Lx, x)
}
