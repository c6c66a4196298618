package ldl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFactorEndToEnd runs the worked examples: factor triu(A), solve A x = b,
// and check x against the expected solution to a loose tolerance (the
// expected values themselves are only given to five or six significant
// figures).
func TestFactorEndToEnd(t *testing.T) {
	const tol = 1e-3

	tests := []struct {
		name string
		n    int
		Ap   []int
		Ai   []int
		Ax   []float64
		b    []float64
		want []float64
	}{
		{
			name: "singleton",
			n:    1,
			Ap:   []int{0, 1},
			Ai:   []int{0},
			Ax:   []float64{0.2},
			b:    []float64{2},
			want: []float64{10.0},
		},
		{
			name: "basic 10x10 QD",
			n:    10,
			Ap:   []int{0, 1, 2, 4, 5, 6, 8, 10, 12, 14, 17},
			Ai:   []int{0, 1, 1, 2, 3, 4, 1, 5, 0, 6, 3, 7, 6, 8, 1, 2, 9},
			Ax: []float64{
				1.0, 0.460641, -0.121189, 0.417928, 0.177828, 0.1,
				-0.0290058, -1.0, 0.350321, -0.441092, -0.0845395, -0.316228,
				0.178663, -0.299077, 0.182452, -1.56506, -0.1,
			},
			b:    []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			want: []float64{10.2171, 3.9416, -5.69096, 9.28661, 50.0, -6.11433, -26.3104, -27.7809, -45.8099, -3.74178},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Factorize(tt.n, tt.Ap, tt.Ai, tt.Ax, nil)
			require.NoError(t, err)

			x := append([]float64(nil), tt.b...)
			f.Solve(x)

			for i := range tt.want {
				assert.InDelta(t, tt.want[i], x[i], tol*max1(abs(tt.want[i])), "component %d", i)
			}
			assert.LessOrEqual(t, f.Residual(x, tt.b), 1e-4)
		})
	}
}

func TestFactorRankDeficientReturnsZeroPivot(t *testing.T) {
	n := 2
	Ap := []int{0, 1, 3}
	Ai := []int{0, 0, 1}
	Ax := []float64{1, 1, 1}

	_, err := Factorize(n, Ap, Ai, Ax, nil)
	assert.ErrorIs(t, err, ErrZeroPivot)
}

func TestFactorZeroOnDiagonalRejectedByEtree(t *testing.T) {
	n := 3
	Ap := []int{0, 1, 2, 5}
	Ai := []int{0, 0, 0, 1, 2}
	Ax := []float64{4, 1, 2, 1, -3}

	_, err := Factorize(n, Ap, Ai, Ax, nil)
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestFactorIdentity(t *testing.T) {
	n := 5
	Ap := make([]int, n+1)
	Ai := make([]int, n)
	Ax := make([]float64, n)
	for i := 0; i < n; i++ {
		Ap[i+1] = i + 1
		Ai[i] = i
		Ax[i] = 1
	}

	f, err := Factorize(n, Ap, Ai, Ax, nil)
	require.NoError(t, err)
	assert.Zero(t, len(f.Li))
	assert.Zero(t, f.Lp[n])
	for _, d := range f.D {
		assert.Equal(t, 1.0, d)
	}

	b := []float64{1, 2, 3, 4, 5}
	x := append([]float64(nil), b...)
	f.Solve(x)
	for i := range b {
		assert.InDelta(t, b[i], x[i], 1e-12)
	}
}

func TestFactorWorkspaceCleanAfterReturn(t *testing.T) {
	Ap := []int{0, 1, 2, 4, 5, 6, 8, 10, 12, 14, 17}
	Ai := []int{0, 1, 1, 2, 3, 4, 1, 5, 0, 6, 3, 7, 6, 8, 1, 2, 9}
	Ax := []float64{
		1.0, 0.460641, -0.121189, 0.417928, 0.177828, 0.1,
		-0.0290058, -1.0, 0.350321, -0.441092, -0.0845395, -0.316228,
		0.178663, -0.299077, 0.182452, -1.56506, -0.1,
	}

	ws := NewWorkspace(10)
	Lnz, etree, _, err := Etree(10, Ap, Ai)
	require.NoError(t, err)
	_, _, _, _, _, _, err = Factor(10, Ap, Ai, Ax, Lnz, etree, ws)
	require.NoError(t, err)

	for i, v := range ws.YVals {
		assert.Zero(t, v, "yVals[%d]", i)
		assert.False(t, ws.YMarkers[i], "yMarkers[%d]", i)
	}
}

func TestFactorWorkspaceCleanAfterZeroPivot(t *testing.T) {
	Ap := []int{0, 1, 3}
	Ai := []int{0, 0, 1}
	Ax := []float64{1, 1, 1}

	ws := NewWorkspace(2)
	Lnz, etree, _, err := Etree(2, Ap, Ai)
	require.NoError(t, err)
	_, _, _, _, _, _, err = Factor(2, Ap, Ai, Ax, Lnz, etree, ws)
	require.ErrorIs(t, err, ErrZeroPivot)

	for i, v := range ws.YVals {
		assert.Zero(t, v, "yVals[%d]", i)
		assert.False(t, ws.YMarkers[i], "yMarkers[%d]", i)
	}
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func max1(x float64) float64 {
	if x < 1 {
		return 1
	}
	return x
}
