package ldl

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func basicQD() (n int, Ap, Ai []int, Ax []float64) {
	return 10,
		[]int{0, 1, 2, 4, 5, 6, 8, 10, 12, 14, 17},
		[]int{0, 1, 1, 2, 3, 4, 1, 5, 0, 6, 3, 7, 6, 8, 1, 2, 9},
		[]float64{
			1.0, 0.460641, -0.121189, 0.417928, 0.177828, 0.1,
			-0.0290058, -1.0, 0.350321, -0.441092, -0.0845395, -0.316228,
			0.178663, -0.299077, 0.182452, -1.56506, -0.1,
		}
}

func TestFactorizeCSC(t *testing.T) {
	n, Ap, Ai, Ax := basicQD()
	a := NewCSC(n, n, Ap, Ai, Ax)

	f, err := FactorizeCSC(a, nil)
	require.NoError(t, err)

	r, c := f.Dims()
	assert.Equal(t, n, r)
	assert.Equal(t, n, c)
	assert.Equal(t, n, f.Symmetric())
}

func TestFactorizeCSCRejectsNonSquare(t *testing.T) {
	a := NewCSC(2, 3, []int{0, 0, 0, 0}, nil, nil)
	assert.Panics(t, func() { FactorizeCSC(a, nil) })
}

func TestFactorizationToDenseReconstructsA(t *testing.T) {
	n, Ap, Ai, Ax := basicQD()
	f, err := Factorize(n, Ap, Ai, Ax, nil)
	require.NoError(t, err)

	a := NewCSC(n, n, Ap, Ai, Ax)
	aSym := a.ToDense()
	// triu(A) only stores the upper triangle; mirror it to get the full
	// symmetric matrix for comparison against the reconstructed product.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			aSym.Set(j, i, aSym.At(i, j))
		}
	}

	got := f.ToDense()
	assert.True(t, mat.EqualApprox(aSym, got, 1e-8))
}

func TestFactorizationLMatchesLp(t *testing.T) {
	n, Ap, Ai, Ax := basicQD()
	f, err := Factorize(n, Ap, Ai, Ax, nil)
	require.NoError(t, err)

	l := f.L()
	r, c := l.Dims()
	assert.Equal(t, n, r)
	assert.Equal(t, n, c)
	assert.Equal(t, len(f.Lx), l.NNZ())

	for j := 0; j < n; j++ {
		rowIdx, _ := l.Col(j)
		for _, i := range rowIdx {
			assert.Greater(t, i, j)
		}
	}
}

func TestFactorizationLTo(t *testing.T) {
	n, Ap, Ai, Ax := basicQD()
	f, err := Factorize(n, Ap, Ai, Ax, nil)
	require.NoError(t, err)

	dst := NewCSC(n, n, nil, nil, nil)
	f.LTo(dst)
	assert.Equal(t, f.Lp, dst.Indptr)
	assert.Equal(t, f.Li, dst.Ind)
	assert.Equal(t, f.Lx, dst.Data)
}

func TestFactorizationInertiaAndDet(t *testing.T) {
	n, Ap, Ai, Ax := basicQD()
	f, err := Factorize(n, Ap, Ai, Ax, nil)
	require.NoError(t, err)

	pos, zero, neg := f.Inertia()
	assert.Equal(t, n, pos+zero+neg)
	assert.Zero(t, zero)

	logDet, sign := f.LogDet()
	det := f.Det()
	assert.InDelta(t, sign*math.Exp(logDet), det, 1e-6)
}

func TestFactorizationSolveVecTo(t *testing.T) {
	n, Ap, Ai, Ax := basicQD()
	f, err := Factorize(n, Ap, Ai, Ax, nil)
	require.NoError(t, err)

	b := mat.NewVecDense(n, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10})
	var x mat.VecDense
	require.NoError(t, f.SolveVecTo(&x, b))

	bs := make([]float64, n)
	xs := make([]float64, n)
	for i := 0; i < n; i++ {
		bs[i] = b.AtVec(i)
		xs[i] = x.AtVec(i)
	}
	assert.LessOrEqual(t, f.Residual(xs, bs), 1e-4)
}

func TestFactorizationSolveTo(t *testing.T) {
	n, Ap, Ai, Ax := basicQD()
	f, err := Factorize(n, Ap, Ai, Ax, nil)
	require.NoError(t, err)

	b := mat.NewDense(n, 2, nil)
	for i := 0; i < n; i++ {
		b.Set(i, 0, float64(i+1))
		b.Set(i, 1, float64(2*(i+1)))
	}

	var x mat.Dense
	require.NoError(t, f.SolveTo(&x, b))

	for col := 0; col < 2; col++ {
		xs := make([]float64, n)
		bs := make([]float64, n)
		for i := 0; i < n; i++ {
			xs[i] = x.At(i, col)
			bs[i] = b.At(i, col)
		}
		assert.LessOrEqual(t, f.Residual(xs, bs), 1e-4)
	}
}

func TestFactorizationResidualZeroRHS(t *testing.T) {
	n, Ap, Ai, Ax := basicQD()
	f, err := Factorize(n, Ap, Ai, Ax, nil)
	require.NoError(t, err)

	b := make([]float64, n)
	x := make([]float64, n)
	assert.Equal(t, 0.0, f.Residual(x, b))
}
