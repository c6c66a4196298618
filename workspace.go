package ldl

import "sync"

// Workspace holds the caller-owned scratch buffers Factor needs: the
// boolean markers (bwork), the three n-wide integer regions (iwork,
// split here into three named slices rather than one partitioned buffer),
// and the dense accumulator (fwork).
// Factor and FactorInto never allocate these buffers themselves; a
// Workspace must be sized to n by the caller (or via NewWorkspace/Pool)
// before use.
//
// Factor leaves YMarkers all false and YVals all zero on return (the
// integer regions are overwritten on each call and need no clearing), so a
// Workspace may be reused across repeated factorizations of matrices of the
// same order without re-zeroing.
type Workspace struct {
	YMarkers        []bool    // bwork: USED/UNUSED markers, length n
	YIdx            []int     // iwork[0:n]: topological row pattern of current row of L
	ElimBuffer      []int     // iwork[n:2n]: scratch path up the etree
	LNextSpaceInCol []int     // iwork[2n:3n]: write cursor into each column of L
	YVals           []float64 // fwork: dense accumulator, length n
}

// NewWorkspace allocates a Workspace sized for an n x n factorization.
func NewWorkspace(n int) *Workspace {
	return &Workspace{
		YMarkers:        make([]bool, n),
		YIdx:            make([]int, n),
		ElimBuffer:      make([]int, n),
		LNextSpaceInCol: make([]int, n),
		YVals:           make([]float64, n),
	}
}

// reset restores a Workspace to the all-clear state Factor expects on
// entry. Factor itself already leaves a Workspace in this state after a
// successful or failed run, so reset only matters for a freshly-obtained
// or foreign buffer.
func (w *Workspace) reset(n int) {
	for i := 0; i < n; i++ {
		w.YMarkers[i] = false
		w.YVals[i] = 0
	}
}

func (w *Workspace) fits(n int) bool {
	return len(w.YMarkers) >= n && len(w.YIdx) >= n && len(w.ElimBuffer) >= n &&
		len(w.LNextSpaceInCol) >= n && len(w.YVals) >= n
}

// Pool hands out Workspace buffers sized to n, reusing previously
// released ones where possible rather than allocating afresh for every
// factorization. Workspace allocation policy is deliberately kept out of
// the kernel functions themselves; Pool is an opt-in convenience layered
// on top for callers that factor many same-sized matrices, backed by a
// sync.Pool.
type Pool struct {
	pool sync.Pool
}

// Get returns a Workspace with every slice at least length n, with
// YMarkers and YVals cleared over [0, n), ready for Factor. The Workspace should be returned via Put when the
// caller is done with it.
func (p *Pool) Get(n int) *Workspace {
	v := p.pool.Get()
	if v == nil {
		return NewWorkspace(n)
	}
	w := v.(*Workspace)
	if !w.fits(n) {
		return NewWorkspace(n)
	}
	w.reset(n)
	return w
}

// Put returns a Workspace to the pool for reuse. The caller must not
// retain or mutate ws after calling Put.
func (p *Pool) Put(ws *Workspace) {
	p.pool.Put(ws)
}
