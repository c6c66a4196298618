package ldl

import "math"

const unknown = -1

// Etree computes the elimination tree of triu(A) and the per-column
// count of strict-lower-triangle nonzeros of L, without computing any
// numeric values. n is the matrix order; Ap/Ai are the CSC column
// pointers and row indices of triu(A) (the diagonal entry must be the
// last entry of each column; row indices within a column must be
// strictly increasing).
//
// Etree returns the per-column fill count Lnz, the elimination tree
// etree (etree[i] is the parent of column i, or unknown for a root), and
// the total nnz(L) = sum(Lnz). It returns ErrMalformedInput if any
// column is empty or contains an entry below the diagonal, and
// ErrOverflow if the running total of Lnz would overflow int.
//
// Etree requires the diagonal entry (j,j) to be present and to be the
// last (highest row index) entry stored in column j; a column missing
// its diagonal, or one whose last entry is strictly above the diagonal,
// is rejected here rather than deferred to Factor, since a missing
// diagonal can silently masquerade as an off-diagonal seed value during
// elimination and produce a wrong, undetected answer instead of a clean
// failure.
func Etree(n int, Ap, Ai []int) (Lnz []int, etree []int, sumLnz int, err error) {
	Lnz = make([]int, n)
	etree = make([]int, n)
	work := make([]int, n)

	for i := 0; i < n; i++ {
		etree[i] = unknown
		if Ap[i] == Ap[i+1] {
			return nil, nil, 0, ErrMalformedInput
		}
	}

	for j := 0; j < n; j++ {
		work[j] = j
		lastRow := -1
		for p := Ap[j]; p < Ap[j+1]; p++ {
			i := Ai[p]
			if i > j || i <= lastRow {
				return nil, nil, 0, ErrMalformedInput
			}
			lastRow = i
			for work[i] != j {
				if etree[i] == unknown {
					etree[i] = j
				}
				Lnz[i]++
				work[i] = j
				i = etree[i]
			}
		}
		if lastRow != j {
			return nil, nil, 0, ErrMalformedInput
		}
	}

	for i := 0; i < n; i++ {
		if Lnz[i] > math.MaxInt-sumLnz {
			return nil, nil, 0, ErrOverflow
		}
		sumLnz += Lnz[i]
	}

	return Lnz, etree, sumLnz, nil
}
