/*
Package spblas provides the small set of sparse BLAS Level 1/2 primitives
the ldl kernel and its tests build on: gather, gather-and-zero, scatter,
sparse-update and sparse dot product over a dense vector, plus a sparse
matrix / dense vector multiply.

See http://www.netlib.org/blas/blast-forum/chapter3.pdf for background on
the naming convention (Dus- prefix: Double precision, Unstructured Sparse).
*/
package spblas
