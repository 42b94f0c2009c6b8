package sparse

import "fmt"

// shapeErr builds the dimension-mismatch error for a binary operation.
func shapeErr(op string, a, b *Matrix) error {
	return fmt.Errorf("%w: cannot %s %dx%d and %dx%d", ErrDimensionMismatch, op, a.rows, a.cols, b.rows, b.cols)
}

// Add returns a + b as a new matrix.
// Returns ErrDimensionMismatch unless both operands have identical shapes.
// Neither operand is modified. Entries whose sum is zero are absent from
// the result. Runs in O(NNZ(a) + NNZ(b)).
func Add(a, b *Matrix) (*Matrix, error) {
	if a.rows != b.rows || a.cols != b.cols {
		return nil, shapeErr("add", a, b)
	}
	return combine(a, b, func(cur, v int64) int64 { return cur + v }), nil
}

// Sub returns a - b as a new matrix.
// Returns ErrDimensionMismatch unless both operands have identical shapes.
// Neither operand is modified. Entries that cancel to zero are absent from
// the result; in particular Sub(m, m) has an empty entry set.
// Runs in O(NNZ(a) + NNZ(b)).
func Sub(a, b *Matrix) (*Matrix, error) {
	if a.rows != b.rows || a.cols != b.cols {
		return nil, shapeErr("subtract", a, b)
	}
	return combine(a, b, func(cur, v int64) int64 { return cur - v }), nil
}

// combine starts from a copy of a's entries and folds each entry of b into
// it with fold(current, value), deleting slots that reach zero. Shapes must
// already be validated by the caller.
func combine(a, b *Matrix, fold func(cur, v int64) int64) *Matrix {
	out := a.Clone()
	for k, v := range b.entries {
		next := fold(out.entries[k], v)
		if next == 0 {
			delete(out.entries, k)
			continue
		}
		out.entries[k] = next
	}
	return out
}

// Mul returns the matrix product a * b as a new matrix of shape
// a.Rows() x b.Cols().
// Returns ErrDimensionMismatch unless a.Cols() == b.Rows().
// Neither operand is modified.
//
// The implementation is the naive sparse triple-product scan: every pair of
// non-zero entries (r1,c1,v1) in a and (r2,c2,v2) in b with c1 == r2
// contributes v1*v2 to the result at (r1,c2). This is O(NNZ(a) * NNZ(b)) in
// the worst case, which is fine for the small, sparse inputs this package
// targets. Accumulation is exact int64 arithmetic.
func Mul(a, b *Matrix) (*Matrix, error) {
	if a.cols != b.rows {
		return nil, fmt.Errorf("%w: cannot multiply %dx%d by %dx%d", ErrDimensionMismatch, a.rows, a.cols, b.rows, b.cols)
	}
	out := &Matrix{
		rows:    a.rows,
		cols:    b.cols,
		entries: make(map[coord]int64),
	}
	for ka, va := range a.entries {
		for kb, vb := range b.entries {
			if ka.col != kb.row {
				continue
			}
			k := coord{ka.row, kb.col}
			next := out.entries[k] + va*vb
			if next == 0 {
				delete(out.entries, k)
				continue
			}
			out.entries[k] = next
		}
	}
	return out, nil
}
