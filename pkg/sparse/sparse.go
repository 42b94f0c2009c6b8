package sparse

import (
	"fmt"
	"slices"
)

// coord identifies a single matrix cell. Using a struct key keeps the map
// hash-friendly without packing row and col into one integer.
type coord struct {
	row, col int
}

// Entry is a single non-zero matrix cell as a (row, col, value) triple.
type Entry struct {
	Row, Col int
	Val      int64
}

// Matrix is an integer matrix that stores only its non-zero entries, keyed
// by coordinate. The dimensions are fixed at construction and define the
// valid coordinate domain [0,rows) x [0,cols).
//
// The zero value is not usable - use New, Read, or Import to create a valid
// Matrix. A Matrix exclusively owns its entry map; arithmetic functions
// allocate fresh results rather than sharing or mutating operands.
type Matrix struct {
	rows, cols int
	entries    map[coord]int64
}

// New creates an empty rows x cols matrix.
// Returns ErrInvalidDimensions if either dimension is not positive.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	return &Matrix{
		rows:    rows,
		cols:    cols,
		entries: make(map[coord]int64),
	}, nil
}

// Dims returns the matrix dimensions as (rows, cols).
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of stored (non-zero) entries.
func (m *Matrix) NNZ() int { return len(m.entries) }

// inBounds reports whether (row, col) lies inside the coordinate domain.
func (m *Matrix) inBounds(row, col int) bool {
	return row >= 0 && row < m.rows && col >= 0 && col < m.cols
}

// boundsErr builds the out-of-bounds error for a coordinate, naming both
// the coordinate and the matrix size.
func (m *Matrix) boundsErr(row, col int) error {
	return fmt.Errorf("%w: (%d, %d) outside %dx%d matrix", ErrIndexOutOfBounds, row, col, m.rows, m.cols)
}

// At returns the value at (row, col), or 0 if no entry is stored there.
// Returns ErrIndexOutOfBounds if the coordinate is outside the matrix.
// At never modifies the matrix.
func (m *Matrix) At(row, col int) (int64, error) {
	if !m.inBounds(row, col) {
		return 0, m.boundsErr(row, col)
	}
	return m.entries[coord{row, col}], nil
}

// Set assigns v at (row, col). A non-zero v inserts or overwrites the entry;
// v == 0 removes any stored entry so that zero cells are always represented
// by absence. Removing an absent entry is a no-op.
// Returns ErrIndexOutOfBounds if the coordinate is outside the matrix.
func (m *Matrix) Set(row, col int, v int64) error {
	if !m.inBounds(row, col) {
		return m.boundsErr(row, col)
	}
	k := coord{row, col}
	if v == 0 {
		delete(m.entries, k)
		return nil
	}
	m.entries[k] = v
	return nil
}

// Clone returns a deep copy of the matrix. The copy owns its own entry map
// and is independent of the original.
func (m *Matrix) Clone() *Matrix {
	entries := make(map[coord]int64, len(m.entries))
	for k, v := range m.entries {
		entries[k] = v
	}
	return &Matrix{rows: m.rows, cols: m.cols, entries: entries}
}

// Entries returns all non-zero entries ordered by ascending (row, col).
// The returned slice is freshly allocated; modifying it does not affect
// the matrix.
func (m *Matrix) Entries() []Entry {
	out := make([]Entry, 0, len(m.entries))
	for k, v := range m.entries {
		out = append(out, Entry{Row: k.row, Col: k.col, Val: v})
	}
	slices.SortFunc(out, func(a, b Entry) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
	return out
}

// Equal reports whether two matrices have identical dimensions and an
// identical non-zero entry set.
func Equal(a, b *Matrix) bool {
	if a.rows != b.rows || a.cols != b.cols || len(a.entries) != len(b.entries) {
		return false
	}
	for k, v := range a.entries {
		if b.entries[k] != v {
			return false
		}
	}
	return true
}
