/*
Package ldl provides a sparse direct solver for symmetric quasi-definite and,
more broadly, symmetric indefinite linear systems A x = b via the
factorization A = L D L^T, where L is unit lower triangular with a sparse
pattern and D is a real diagonal (no 2x2 pivots).

The solver takes the strict upper triangle of A in Compressed Sparse Column
(CSC) form and produces L (CSC, strict lower triangle), the diagonal D, its
elementwise reciprocal Dinv, and solutions to A x = b via forward/backward
sparse triangular solves.

FactorInto, Lsolve, Ltsolve and Solve are allocation-free: every buffer they
touch is supplied by the caller. Etree allocates its outputs (Lnz, etree)
and its n-length scratch array on each call, and Factor allocates Lp, Li,
Lx, D and Dinv before filling them through FactorInto. The Workspace and Pool
types in this package are an optional convenience layered on top for
callers who don't want to manage the Factor scratch buffers by hand; none
of the kernel functions calls into them.

A typical sequence, using the Factorize wrapper that composes Etree and
Factor and allocates their outputs:

	f, err := Factorize(n, Ap, Ai, Ax, nil)
	x := append([]float64(nil), b...)
	f.Solve(x)

Callers who want to manage the buffers themselves can call Etree and
Factor directly:

	lnz, et, sumLnz, err := Etree(n, Ap, Ai)
	// allocate a Workspace sized to n; Factor allocates Lp, Li, Lx, D and
	// Dinv itself (FactorInto takes them preallocated instead)
	Lp, Li, Lx, D, Dinv, positiveD, err := Factor(n, Ap, Ai, Ax, lnz, et, ws)
*/
package ldl
