package ldl

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Sparser is the interface common to the sparse matrix formats in this
// package. It embeds mat.Matrix so any of them can be used anywhere the
// gonum mat package accepts a mat.Matrix.
type Sparser interface {
	mat.Matrix

	// NNZ returns the number of structurally non-zero elements stored.
	NNZ() int
}

var (
	_ Sparser = (*CSC)(nil)
	_ Sparser = (*CSR)(nil)
	_ Sparser = (*COO)(nil)
	_ Sparser = (*DIA)(nil)
)

// CSC is a Compressed Sparse Column matrix. It is the sole input format
// accepted by Etree/Factor (the strict upper triangle of A, diagonal
// included) and the sole output format of Factor (the strict lower
// triangle of L). Column j occupies Ind[Indptr[j]:Indptr[j+1]] and the
// corresponding Data slice; row indices within a column must be strictly
// increasing, matching the layout both triu(A) and L require.
type CSC struct {
	rows, cols int
	Indptr     []int // length cols+1; Indptr[0]=0, Indptr[cols]=nnz
	Ind        []int // row indices, length nnz, strictly increasing per column
	Data       []float64
}

// NewCSC creates a CSC matrix of the given dimensions over the supplied
// backing slices. The slices are used directly, so later writes through
// indptr/ind/data are reflected in the matrix and vice versa.
func NewCSC(rows, cols int, indptr, ind []int, data []float64) *CSC {
	if rows < 0 || cols < 0 {
		panic(mat.ErrRowAccess)
	}
	return &CSC{rows: rows, cols: cols, Indptr: indptr, Ind: ind, Data: data}
}

// Dims returns the size of the matrix.
func (c *CSC) Dims() (r, col int) { return c.rows, c.cols }

// NNZ returns the number of stored entries.
func (c *CSC) NNZ() int { return len(c.Data) }

// At returns A[i,j]. At will panic if i or j fall outside the matrix
// dimensions. Lookup is a binary search over the column's sorted row
// indices.
func (c *CSC) At(i, j int) float64 {
	if uint(i) >= uint(c.rows) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(c.cols) {
		panic(mat.ErrColAccess)
	}
	lo, hi := c.Indptr[j], c.Indptr[j+1]
	rowSlice := c.Ind[lo:hi]
	k := sort.SearchInts(rowSlice, i)
	if k < len(rowSlice) && rowSlice[k] == i {
		return c.Data[lo+k]
	}
	return 0
}

// T returns the transpose of the receiver as a CSR sharing the same
// backing storage - rows become columns with no data movement required,
// since CSR and CSC are the same physical layout read the other way.
func (c *CSC) T() mat.Matrix {
	return &CSR{rows: c.cols, cols: c.rows, Indptr: c.Indptr, Ind: c.Ind, Data: c.Data}
}

// Col returns the row indices and values of column j as subslices of Ind
// and Data, sharing storage with the receiver. It is a thin convenience
// over the Indptr/Ind/Data layout used throughout the kernel.
func (c *CSC) Col(j int) (rowIdx []int, data []float64) {
	lo, hi := c.Indptr[j], c.Indptr[j+1]
	return c.Ind[lo:hi], c.Data[lo:hi]
}

// ToDense returns a dense copy of the receiver.
func (c *CSC) ToDense() *mat.Dense {
	d := mat.NewDense(c.rows, c.cols, nil)
	for j := 0; j < c.cols; j++ {
		for p := c.Indptr[j]; p < c.Indptr[j+1]; p++ {
			d.Set(c.Ind[p], j, c.Data[p])
		}
	}
	return d
}

// CSR is a Compressed Sparse Row matrix. Within this package it exists
// only as the T() view of a CSC (a row-major read of the same storage).
type CSR struct {
	rows, cols int
	Indptr     []int
	Ind        []int
	Data       []float64
}

// Dims returns the size of the matrix.
func (c *CSR) Dims() (r, col int) { return c.rows, c.cols }

// NNZ returns the number of stored entries.
func (c *CSR) NNZ() int { return len(c.Data) }

// At returns A[i,j].
func (c *CSR) At(i, j int) float64 {
	if uint(i) >= uint(c.rows) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(c.cols) {
		panic(mat.ErrColAccess)
	}
	colSlice := c.Ind[c.Indptr[i]:c.Indptr[i+1]]
	k := sort.SearchInts(colSlice, j)
	if k < len(colSlice) && colSlice[k] == j {
		return c.Data[c.Indptr[i]+k]
	}
	return 0
}

// T returns the transpose of the receiver as a CSC sharing storage.
func (c *CSR) T() mat.Matrix {
	return &CSC{rows: c.cols, cols: c.rows, Indptr: c.Indptr, Ind: c.Ind, Data: c.Data}
}

// COO is a COOrdinate (triplet) format matrix, the natural format for
// building up triu(A) entry by entry before converting to CSC. Duplicate
// (row,col) pairs are permitted and are summed by At and by ToCSC.
type COO struct {
	rows, cols int
	RowIdx     []int
	ColIdx     []int
	Data       []float64
}

// NewCOO creates a triplet matrix of the given dimensions. rowIdx, colIdx
// and data may be nil to start from empty; if non-nil they must all be the
// same length.
func NewCOO(rows, cols int, rowIdx, colIdx []int, data []float64) *COO {
	if rows < 0 || cols < 0 {
		panic(mat.ErrRowAccess)
	}
	return &COO{rows: rows, cols: cols, RowIdx: rowIdx, ColIdx: colIdx, Data: data}
}

// Dims returns the size of the matrix.
func (c *COO) Dims() (r, col int) { return c.rows, c.cols }

// NNZ returns the number of stored triplets, which may exceed rows*cols
// if duplicate coordinates are present.
func (c *COO) NNZ() int { return len(c.Data) }

// At returns A[i,j], the sum of all stored triplets at that coordinate.
func (c *COO) At(i, j int) float64 {
	if uint(i) >= uint(c.rows) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(c.cols) {
		panic(mat.ErrColAccess)
	}
	var v float64
	for k := range c.Data {
		if c.RowIdx[k] == i && c.ColIdx[k] == j {
			v += c.Data[k]
		}
	}
	return v
}

// T returns the transpose of the receiver as a new COO sharing no
// storage with it.
func (c *COO) T() mat.Matrix {
	rows := append([]int(nil), c.ColIdx...)
	cols := append([]int(nil), c.RowIdx...)
	data := append([]float64(nil), c.Data...)
	return NewCOO(c.cols, c.rows, rows, cols, data)
}

// Set appends a new triplet entry. It does not check for or merge
// duplicates; duplicates are resolved on read (At) or on conversion
// (ToCSC).
func (c *COO) Set(i, j int, v float64) {
	if uint(i) >= uint(c.rows) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(c.cols) {
		panic(mat.ErrColAccess)
	}
	c.RowIdx = append(c.RowIdx, i)
	c.ColIdx = append(c.ColIdx, j)
	c.Data = append(c.Data, v)
}

// DoNonZero calls fn once for every stored triplet, in storage order.
// Duplicate coordinates are visited once per stored triplet, not merged.
func (c *COO) DoNonZero(fn func(i, j int, v float64)) {
	for k := range c.Data {
		fn(c.RowIdx[k], c.ColIdx[k], c.Data[k])
	}
}

// ToCSC converts the receiver to CSC form, merging duplicate coordinates
// by summation and sorting row indices ascending within each column - the
// layout both triu(A) and L require.
func (c *COO) ToCSC() *CSC {
	indptr := make([]int, c.cols+1)
	for k := range c.ColIdx {
		indptr[c.ColIdx[k]+1]++
	}
	for j := 0; j < c.cols; j++ {
		indptr[j+1] += indptr[j]
	}

	nnzUpper := indptr[c.cols]
	ind := make([]int, nnzUpper)
	data := make([]float64, nnzUpper)
	next := append([]int(nil), indptr[:c.cols]...)
	for k := range c.ColIdx {
		j := c.ColIdx[k]
		p := next[j]
		ind[p] = c.RowIdx[k]
		data[p] = c.Data[k]
		next[j]++
	}

	for j := 0; j < c.cols; j++ {
		lo, hi := indptr[j], indptr[j+1]
		sortColumn(ind[lo:hi], data[lo:hi])
		// merge duplicates produced by repeated Set calls at the same (i,j)
		w := lo
		for p := lo; p < hi; p++ {
			if w > lo && ind[w-1] == ind[p] {
				data[w-1] += data[p]
				continue
			}
			ind[w] = ind[p]
			data[w] = data[p]
			w++
		}
		if w < hi {
			copy(ind[w:], ind[hi:])
			copy(data[w:], data[hi:])
			removed := hi - w
			for jj := j + 1; jj <= c.cols; jj++ {
				indptr[jj] -= removed
			}
			ind = ind[:len(ind)-removed]
			data = data[:len(data)-removed]
		}
	}

	return &CSC{rows: c.rows, cols: c.cols, Indptr: indptr, Ind: ind, Data: data}
}

// sortColumn sorts ind (and data in lockstep) ascending. Column counts in
// a quasi-definite KKT matrix are small, so a simple insertion sort beats
// the overhead of sort.Sort's interface dispatch.
func sortColumn(ind []int, data []float64) {
	for i := 1; i < len(ind); i++ {
		ri, di := ind[i], data[i]
		j := i - 1
		for j >= 0 && ind[j] > ri {
			ind[j+1] = ind[j]
			data[j+1] = data[j]
			j--
		}
		ind[j+1] = ri
		data[j+1] = di
	}
}

// DIA is a diagonal matrix view, used to present D and Dinv (the output
// of Factor) as a mat.Matrix / Sparser without copying them into a denser
// format.
type DIA struct {
	Data []float64
}

// NewDIA wraps diagonal as a DIA matrix. The slice is used directly.
func NewDIA(diagonal []float64) *DIA {
	return &DIA{Data: diagonal}
}

// Dims returns (n, n).
func (d *DIA) Dims() (r, c int) { return len(d.Data), len(d.Data) }

// NNZ returns n, the number of diagonal entries (zero diagonal entries,
// if any, are still counted - DIA always stores every diagonal position).
func (d *DIA) NNZ() int { return len(d.Data) }

// At returns the (i,j) element: Data[i] if i==j, else 0.
func (d *DIA) At(i, j int) float64 {
	n := len(d.Data)
	if uint(i) >= uint(n) {
		panic(mat.ErrRowAccess)
	}
	if uint(j) >= uint(n) {
		panic(mat.ErrColAccess)
	}
	if i == j {
		return d.Data[i]
	}
	return 0
}

// T returns the receiver: a diagonal matrix is its own transpose.
func (d *DIA) T() mat.Matrix { return d }

// Diagonal returns the diagonal values, backed by the same array as the
// receiver.
func (d *DIA) Diagonal() []float64 { return d.Data }
