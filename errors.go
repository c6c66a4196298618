package ldl

import "errors"

// Sentinel errors returned by the kernel operations, mirroring the flat
// error taxonomy of the reference implementation: malformed input and
// count overflow are detected by Etree, a zero pivot is detected by
// Factor. All three are reported by value, never by panic, so callers can
// distinguish them with errors.Is.
var (
	// ErrMalformedInput is returned by Etree when a column of triu(A) is
	// empty or contains a row index in the strict lower triangle.
	ErrMalformedInput = errors.New("ldl: malformed input matrix")

	// ErrOverflow is returned by Etree when the running sum of Lnz would
	// exceed the range of Int.
	ErrOverflow = errors.New("ldl: nnz(L) overflows int")

	// ErrZeroPivot is returned by Factor when a diagonal pivot evaluates
	// to exactly zero; the matrix is not factorable as LDL^T in the given
	// elimination order.
	ErrZeroPivot = errors.New("ldl: zero pivot, matrix not factorable in given order")
)
