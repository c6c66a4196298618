package ldl

import (
	"math"

	"github.com/james-bowman/ldl/internal/spblas"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Factorization is the composed result of Etree followed by Factor: the
// sparse factors L, D, Dinv together with the symbolic data (Lnz, Etree)
// that produced them, playing the same wrapper role for L D L^T that a
// Cholesky type plays for L L^T, generalized with an extra diagonal
// factor.
type Factorization struct {
	n int

	// Ap, Ai, Ax are the triu(A) this factorization was computed from,
	// retained only so Residual can evaluate A*x without asking the
	// caller to keep their own copy around.
	Ap, Ai []int
	Ax     []float64

	Lnz   []int
	Etree []int

	Lp []int
	Li []int
	Lx []float64

	D    []float64
	Dinv []float64

	positiveD int
}

// Factorize runs Etree followed by Factor over triu(A) and returns the
// composed result. If ws is nil a Workspace is allocated for the call;
// pass a reused Workspace (or one obtained from a Pool) to avoid that
// allocation across repeated factorizations of same-sized matrices.
func Factorize(n int, Ap, Ai []int, Ax []float64, ws *Workspace) (*Factorization, error) {
	Lnz, etree, _, err := Etree(n, Ap, Ai)
	if err != nil {
		return nil, err
	}

	if ws == nil {
		ws = NewWorkspace(n)
	}

	Lp, Li, Lx, D, Dinv, positiveD, err := Factor(n, Ap, Ai, Ax, Lnz, etree, ws)
	if err != nil {
		return nil, err
	}

	return &Factorization{
		n: n, Ap: Ap, Ai: Ai, Ax: Ax,
		Lnz: Lnz, Etree: etree,
		Lp: Lp, Li: Li, Lx: Lx,
		D: D, Dinv: Dinv,
		positiveD: positiveD,
	}, nil
}

// FactorizeCSC is a convenience wrapper over Factorize taking triu(A) as
// a *CSC rather than raw Ap/Ai/Ax slices.
func FactorizeCSC(a *CSC, ws *Workspace) (*Factorization, error) {
	n, c := a.Dims()
	if n != c {
		panic(mat.ErrShape)
	}
	return Factorize(n, a.Indptr, a.Ind, a.Data, ws)
}

// Dims returns the order of the factored matrix, (n, n).
func (f *Factorization) Dims() (r, c int) { return f.n, f.n }

// Symmetric returns the order of the factored matrix, matching gonum's
// mat.Symmetric interface.
func (f *Factorization) Symmetric() int { return f.n }

// L returns the strict lower triangular factor as a CSC matrix sharing
// storage with the receiver. The implicit unit diagonal is not stored.
func (f *Factorization) L() *CSC {
	return &CSC{rows: f.n, cols: f.n, Indptr: f.Lp, Ind: f.Li, Data: f.Lx}
}

// LTo copies the factor L into dst, which must already be sized to n x n
// (dst.Indptr/Ind/Data are overwritten, not appended to).
func (f *Factorization) LTo(dst *CSC) {
	if dst.rows != f.n || dst.cols != f.n {
		panic(mat.ErrShape)
	}
	dst.Indptr = append(dst.Indptr[:0], f.Lp...)
	dst.Ind = append(dst.Ind[:0], f.Li...)
	dst.Data = append(dst.Data[:0], f.Lx...)
}

// DiagD returns the diagonal factor D as a DIA matrix sharing storage with
// the receiver.
func (f *Factorization) DiagD() *DIA { return NewDIA(f.D) }

// DiagDinv returns the reciprocal diagonal factor Dinv as a DIA matrix
// sharing storage with the receiver.
func (f *Factorization) DiagDinv() *DIA { return NewDIA(f.Dinv) }

// Inertia returns the count of strictly positive, exactly zero, and
// strictly negative entries of D. For a successful factorization zero is
// always 0 - a zero pivot is the condition Factor itself rejects - but
// the method scans D rather than assuming that, so it stays meaningful
// if a Factorization is ever constructed by hand from untrusted D.
func (f *Factorization) Inertia() (positive, zero, negative int) {
	for _, d := range f.D {
		switch {
		case d > 0:
			positive++
		case d == 0:
			zero++
		default:
			negative++
		}
	}
	return positive, zero, negative
}

// LogDet returns the natural log of |det(A)| and the sign of det(A).
// Because det(L) = det(L^T) = 1 (unit triangular), det(A) = det(D) = the
// product of the pivots; an indefinite factorization can have a negative
// determinant, unlike a Cholesky factorization, hence the explicit sign.
func (f *Factorization) LogDet() (logDet, sign float64) {
	sign = 1
	for _, d := range f.D {
		if d < 0 {
			sign = -sign
			logDet += math.Log(-d)
		} else {
			logDet += math.Log(d)
		}
	}
	return logDet, sign
}

// Det returns det(A) = prod(D).
func (f *Factorization) Det() float64 {
	logDet, sign := f.LogDet()
	return sign * math.Exp(logDet)
}

// Solve solves A x = b in place over a raw slice: x holds b on entry and
// the solution on return.
func (f *Factorization) Solve(x []float64) {
	Solve(f.n, f.Lp, f.Li, f.Lx, f.Dinv, x)
}

// SolveVecTo solves A x = b for the gonum vector b, writing the result
// into dst, which is resized if empty. Shaped like gonum's
// Cholesky.SolveVecTo.
func (f *Factorization) SolveVecTo(dst *mat.VecDense, b mat.Vector) error {
	if dst.IsEmpty() {
		*dst = *mat.NewVecDense(f.n, nil)
	}
	if dst.Len() != f.n {
		panic(mat.ErrShape)
	}
	x := make([]float64, f.n)
	for i := 0; i < f.n; i++ {
		x[i] = b.AtVec(i)
	}
	f.Solve(x)
	for i := 0; i < f.n; i++ {
		dst.SetVec(i, x[i])
	}
	return nil
}

// SolveTo solves A X = B column by column, writing the result into dst.
// Shaped like gonum's Cholesky.SolveTo.
func (f *Factorization) SolveTo(dst *mat.Dense, b mat.Matrix) error {
	rows, cols := b.Dims()
	if dst.IsEmpty() {
		dst.ReuseAs(f.n, cols)
	}
	for c := 0; c < cols; c++ {
		x := make([]float64, f.n)
		for r := 0; r < rows; r++ {
			x[r] = b.At(r, c)
		}
		f.Solve(x)
		for r := 0; r < f.n; r++ {
			dst.Set(r, c, x[r])
		}
	}
	return nil
}

// ToDense reconstructs A = L D L^T (with L's implicit unit diagonal) as
// a dense matrix, for testing and inspection. It does not read the
// stored Ap/Ai/Ax - it rebuilds purely from the factors, so it also
// serves as a check that the factorization is self-consistent.
func (f *Factorization) ToDense() *mat.Dense {
	out := mat.NewDense(f.n, f.n, nil)
	e := make([]float64, f.n)
	w := make([]float64, f.n)
	col := make([]float64, f.n)
	for j := 0; j < f.n; j++ {
		e[j] = 1
		for i := range w {
			w[i] = 0
		}
		spblas.DuscscmvLowerUnit(f.n, f.Lp, f.Li, f.Lx, e, w, true)
		for i := range w {
			w[i] *= f.D[i]
		}
		for i := range col {
			col[i] = 0
		}
		spblas.DuscscmvLowerUnit(f.n, f.Lp, f.Li, f.Lx, w, col, false)
		for i := 0; i < f.n; i++ {
			out.Set(i, j, col[i])
		}
		e[j] = 0
	}
	return out
}

// Residual returns ||A*x - b||_inf / ||b||_inf for the original triu(A)
// this factorization was computed from, using the sparse matrix/vector
// product in internal/spblas rather than materialising A densely. A
// ||b||_inf of zero is treated as 1 to keep the ratio defined.
func (f *Factorization) Residual(x, b []float64) float64 {
	Ax := make([]float64, f.n)
	spblas.DuscscmvUpper(f.n, f.Ap, f.Ai, f.Ax, x, Ax)
	resid := make([]float64, f.n)
	floats.SubTo(resid, Ax, b)

	denom := floats.Norm(b, math.Inf(1))
	if denom == 0 {
		denom = 1
	}
	return floats.Norm(resid, math.Inf(1)) / denom
}
