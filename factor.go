package ldl

import "github.com/james-bowman/ldl/internal/spblas"

// Factor computes the numeric LDL^T factorization of a quasi-definite (or
// more generally symmetric indefinite, no-pivoting) matrix A given its
// strict upper triangle triu(A) in CSC form (Ap, Ai, Ax), the per-column
// fill counts Lnz and elimination tree etree returned by Etree for the
// same sparsity pattern.
//
// Factor allocates L as CSC slices Lp, Li, Lx sized from Lnz
// (Lp[j+1] = Lp[j]+Lnz[j], len(Li) = len(Lx) = Lp[n]) and D and Dinv of
// length n, then fills them through FactorInto. ws provides the scratch buffers described by
// Workspace; it must be sized to at least n and is left fully cleared
// (YMarkers all false, YVals all zero) on every return, success or
// failure.
//
// Factor returns the number of strictly positive entries of D (the
// inertia's positive count) on success, or ErrZeroPivot if some pivot
// evaluates to exactly zero - the matrix is not factorable as LDL^T in
// the given column order. Factor performs no other validation: it trusts
// that Ap/Ai/Lnz/etree satisfy the invariants Etree establishes. A pivot
// that becomes +/-Inf or NaN is not caught by the zero test and will
// propagate; callers who need to detect that should inspect D themselves.
func Factor(n int, Ap, Ai []int, Ax []float64, Lnz, etree []int, ws *Workspace) (Lp []int, Li []int, Lx []float64, D []float64, Dinv []float64, positiveD int, err error) {
	Lp = make([]int, n+1)
	for i := 0; i < n; i++ {
		Lp[i+1] = Lp[i] + Lnz[i]
	}
	Li = make([]int, Lp[n])
	Lx = make([]float64, Lp[n])
	D = make([]float64, n)
	Dinv = make([]float64, n)

	positiveD, err = FactorInto(n, Ap, Ai, Ax, Lp, Li, Lx, D, Dinv, Lnz, etree, ws)
	return Lp, Li, Lx, D, Dinv, positiveD, err
}

// FactorInto is the allocation-free form of Factor: L (Lp, Li, Lx), D and
// Dinv are all caller-provided and populated in place. Lp must already
// hold the prefix sum of Lnz (Lp[n] == sum(Lnz)); Li and Lx must have
// length Lp[n]. See Factor for the return-value contract.
func FactorInto(n int, Ap, Ai []int, Ax []float64, Lp, Li []int, Lx []float64, D, Dinv []float64, Lnz, etree []int, ws *Workspace) (positiveD int, err error) {
	yMarkers := ws.YMarkers
	yIdx := ws.YIdx
	elimBuffer := ws.ElimBuffer
	lNextSpaceInCol := ws.LNextSpaceInCol
	yVals := ws.YVals

	for i := 0; i < n; i++ {
		lNextSpaceInCol[i] = Lp[i]
	}

	D[0] = Ax[Ap[0]]
	if D[0] == 0 {
		return 0, ErrZeroPivot
	}
	Dinv[0] = 1 / D[0]
	if D[0] > 0 {
		positiveD++
	}

	for k := 1; k < n; k++ {
		D[k] = Ax[Ap[k+1]-1]

		nnzY := 0
		lastEntry := Ap[k+1] - 1
		for p := Ap[k]; p < lastEntry; p++ {
			bidx := Ai[p]
			yVals[bidx] = Ax[p]

			if !yMarkers[bidx] {
				yMarkers[bidx] = true
				elimBuffer[0] = bidx
				nnzE := 1

				next := etree[bidx]
				for next != unknown && next < k {
					if yMarkers[next] {
						break
					}
					yMarkers[next] = true
					elimBuffer[nnzE] = next
					nnzE++
					next = etree[next]
				}

				for nnzE > 0 {
					nnzE--
					yIdx[nnzY] = elimBuffer[nnzE]
					nnzY++
				}
			}
		}

		for i := nnzY - 1; i >= 0; i-- {
			cidx := yIdx[i]

			colStart, colEnd := Lp[cidx], lNextSpaceInCol[cidx]
			spblas.Dusaxpy(-yVals[cidx], Lx[colStart:colEnd], Li[colStart:colEnd], yVals)

			t := lNextSpaceInCol[cidx]
			Li[t] = k
			Lx[t] = yVals[cidx] * Dinv[cidx]
			D[k] -= yVals[cidx] * Lx[t]
			lNextSpaceInCol[cidx] = t + 1

			yVals[cidx] = 0
			yMarkers[cidx] = false
		}

		if D[k] == 0 {
			return 0, ErrZeroPivot
		}
		if D[k] > 0 {
			positiveD++
		}
		Dinv[k] = 1 / D[k]
	}

	return positiveD, nil
}
