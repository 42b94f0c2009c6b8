package sparse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Write serializes m to w in the same text format [Read] accepts: the
// rows= and cols= header lines followed by one "(row, col, value)" line per
// non-zero entry in ascending (row, col) order. The ordering makes the
// output deterministic so it can be compared byte-for-byte and re-imported
// for round-trip processing.
func Write(m *Matrix, w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "rows=%d\ncols=%d\n", m.rows, m.cols); err != nil {
		return fmt.Errorf("write matrix: %w", err)
	}
	for _, e := range m.Entries() {
		if _, err := fmt.Fprintf(bw, "(%d, %d, %d)\n", e.Row, e.Col, e.Val); err != nil {
			return fmt.Errorf("write matrix: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write matrix: %w", err)
	}
	return nil
}

// Export writes m to a text file at path, overwriting any existing file.
// This is a convenience wrapper around [Write] for file-based output.
func Export(m *Matrix, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(m, f)
}

// String returns the serialized text form of the matrix.
// It implements fmt.Stringer.
func (m *Matrix) String() string {
	var b strings.Builder
	// Writing to a strings.Builder cannot fail.
	_ = Write(m, &b)
	return b.String()
}
