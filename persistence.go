package ldl

import (
	"encoding"
	"encoding/binary"
	"errors"
	"math"
)

var (
	sizeInt64   = binary.Size(int64(0))
	sizeFloat64 = binary.Size(float64(0))

	_ encoding.BinaryMarshaler   = (*Factorization)(nil)
	_ encoding.BinaryUnmarshaler = (*Factorization)(nil)
)

// MarshalBinary serialises a Factorization's factors (not the original
// A) so it can be cached and reused without refactoring, using a
// little-endian int64-header-then-float64-data layout:
//
//	 0 -  7  n                               (int64)
//	 8 - 15  nnz(L)                          (int64)
//	16 - ..  Lp (n+1 int64s)
//	 ..- ..  Li (nnz int64s)
//	 ..- ..  Lx (nnz float64s)
//	 ..- ..  D  (n float64s)
//	 ..- ..  Dinv (n float64s)
func (f *Factorization) MarshalBinary() ([]byte, error) {
	nnz := len(f.Lx)
	bufLen := int64(2*sizeInt64) + int64(f.n+1)*int64(sizeInt64) + int64(nnz)*int64(sizeInt64) +
		int64(nnz)*int64(sizeFloat64) + 2*int64(f.n)*int64(sizeFloat64)
	if bufLen <= 0 {
		return nil, errors.New("ldl: buffer for factorization is too big")
	}

	buf := make([]byte, bufLen)
	p := 0
	putInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(v))
		p += sizeInt64
	}
	putFloat := func(v float64) {
		binary.LittleEndian.PutUint64(buf[p:p+sizeFloat64], math.Float64bits(v))
		p += sizeFloat64
	}

	putInt(f.n)
	putInt(nnz)
	for _, v := range f.Lp {
		putInt(v)
	}
	for _, v := range f.Li {
		putInt(v)
	}
	for _, v := range f.Lx {
		putFloat(v)
	}
	for _, v := range f.D {
		putFloat(v)
	}
	for _, v := range f.Dinv {
		putFloat(v)
	}

	return buf, nil
}

// UnmarshalBinary populates the receiver's factors from data produced by
// MarshalBinary. It does not restore Ap/Ai/Ax/Lnz/Etree (the symbolic
// inputs), so Residual is unavailable on a Factorization rehydrated this
// way; Solve, SolveVecTo, SolveTo, ToDense and L/D/Dinv access work
// normally since they depend only on the stored factors.
func (f *Factorization) UnmarshalBinary(data []byte) error {
	if len(data) < 2*sizeInt64 {
		return errors.New("ldl: buffer too small for factorization header")
	}

	p := 0
	getInt := func() int {
		v := int(binary.LittleEndian.Uint64(data[p : p+sizeInt64]))
		p += sizeInt64
		return v
	}
	getFloat := func() float64 {
		v := math.Float64frombits(binary.LittleEndian.Uint64(data[p : p+sizeFloat64]))
		p += sizeFloat64
		return v
	}

	n := getInt()
	nnz := getInt()
	if n < 0 || nnz < 0 {
		return errors.New("ldl: corrupt factorization header")
	}

	want := 2*sizeInt64 + (n+1)*sizeInt64 + nnz*sizeInt64 + nnz*sizeFloat64 + 2*n*sizeFloat64
	if len(data) != want {
		return errors.New("ldl: factorization buffer has unexpected length")
	}

	f.n = n
	f.Lp = make([]int, n+1)
	for i := range f.Lp {
		f.Lp[i] = getInt()
	}
	f.Li = make([]int, nnz)
	for i := range f.Li {
		f.Li[i] = getInt()
	}
	f.Lx = make([]float64, nnz)
	for i := range f.Lx {
		f.Lx[i] = getFloat()
	}
	f.D = make([]float64, n)
	for i := range f.D {
		f.D[i] = getFloat()
	}
	f.Dinv = make([]float64, n)
	for i := range f.Dinv {
		f.Dinv[i] = getFloat()
	}

	f.positiveD = 0
	for _, d := range f.D {
		if d > 0 {
			f.positiveD++
		}
	}

	return nil
}
