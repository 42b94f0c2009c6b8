// Package sparse implements an integer-valued sparse matrix stored as a
// coordinate-to-value map.
//
// Only non-zero entries are kept: the logical value of any absent coordinate
// is 0, and setting an entry to 0 removes it. This keeps memory proportional
// to the number of non-zero entries rather than rows*cols.
//
// # Construction
//
// Matrices are built either empty with explicit dimensions:
//
//	m, err := sparse.New(3, 2)
//
// or by parsing the line-oriented text format:
//
//	rows=3
//	cols=2
//	(0, 0, 5)
//	(2, 1, -7)
//
// Parsing is strict and atomic: any malformed header, malformed entry, or
// out-of-bounds coordinate fails the whole construction with a sentinel
// error, and no partially populated matrix is returned.
//
// # Arithmetic
//
// Add, Sub, and Mul are pure functions over two matrices. They validate
// operand shapes, never mutate their inputs, and always allocate a fresh
// result. Entries that cancel to zero disappear from the result.
//
// # Serialization
//
// Write, Export, and Matrix.String produce the same text format the parser
// accepts, with entries ordered by ascending (row, col), so output is
// deterministic and round-trips through Read.
//
// Matrix is not safe for concurrent use without external synchronization.
package sparse
