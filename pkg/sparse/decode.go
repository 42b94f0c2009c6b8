package sparse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Read parses the line-oriented matrix format from r:
//
//	rows=<positive int>
//	cols=<positive int>
//	(<row>, <col>, <value>)
//	...
//
// The first two lines must be exactly the rows= and cols= headers; any
// deviation (missing line, wrong prefix, non-integer, non-positive value)
// returns ErrMalformedHeader. Every subsequent non-blank line must match
// the literal pattern "(<int>, <int>, <int>)" with fields trimmed of
// surrounding whitespace; violations return ErrMalformedEntry with the
// offending line number. Coordinates outside the declared dimensions return
// ErrEntryOutOfBounds naming the coordinate and the matrix size.
//
// Blank lines among the entries are skipped. A zero value is parsed but not
// stored, and a duplicate coordinate overwrites an earlier one (plain map
// insertion semantics). Parsing is atomic: on any error no matrix is
// returned. Read does not close r.
func Read(r io.Reader) (*Matrix, error) {
	sc := bufio.NewScanner(r)

	rows, err := headerValue(sc, "rows=")
	if err != nil {
		return nil, err
	}
	cols, err := headerValue(sc, "cols=")
	if err != nil {
		return nil, err
	}

	m := &Matrix{rows: rows, cols: cols, entries: make(map[coord]int64)}

	for lineNo := 3; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		row, col, val, err := parseEntry(line, lineNo)
		if err != nil {
			return nil, err
		}
		if !m.inBounds(row, col) {
			return nil, fmt.Errorf("%w: line %d: (%d, %d) outside %dx%d matrix",
				ErrEntryOutOfBounds, lineNo, row, col, rows, cols)
		}
		if val != 0 {
			m.entries[coord{row, col}] = val
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read matrix: %w", err)
	}
	return m, nil
}

// headerValue consumes the next line and parses it as "<prefix><positive int>".
func headerValue(sc *bufio.Scanner, prefix string) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, fmt.Errorf("read matrix: %w", err)
		}
		return 0, fmt.Errorf("%w: missing %q line", ErrMalformedHeader, strings.TrimSuffix(prefix, "="))
	}
	line := strings.TrimSpace(sc.Text())
	rest, ok := strings.CutPrefix(line, prefix)
	if !ok {
		return 0, fmt.Errorf("%w: expected %q prefix, got %q", ErrMalformedHeader, prefix, line)
	}
	n, err := strconv.Atoi(strings.TrimSpace(rest))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrMalformedHeader, rest)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: %s%d is not positive", ErrMalformedHeader, prefix, n)
	}
	return n, nil
}

// parseEntry parses one trimmed entry line of the form "(<int>, <int>, <int>)".
func parseEntry(line string, lineNo int) (row, col int, val int64, err error) {
	if !strings.HasPrefix(line, "(") || !strings.HasSuffix(line, ")") {
		return 0, 0, 0, fmt.Errorf("%w: line %d: entry not enclosed in parentheses", ErrMalformedEntry, lineNo)
	}
	fields := strings.Split(line[1:len(line)-1], ",")
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: line %d: expected 3 comma-separated fields, got %d",
			ErrMalformedEntry, lineNo, len(fields))
	}
	row, err = strconv.Atoi(strings.TrimSpace(fields[0]))
	if err == nil {
		col, err = strconv.Atoi(strings.TrimSpace(fields[1]))
	}
	if err == nil {
		val, err = strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	}
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: line %d: row, col, or value is not an integer", ErrMalformedEntry, lineNo)
	}
	return row, col, val, nil
}

// Parse decodes a matrix from an in-memory string. It accepts exactly the
// format documented on [Read].
func Parse(src string) (*Matrix, error) {
	return Read(strings.NewReader(src))
}

// Import reads the matrix file at path and returns the decoded matrix.
// If the file does not exist or cannot be opened, Import returns
// ErrSourceNotFound wrapping the underlying OS error. Decoding errors are
// the same as those of [Read], wrapped with the file path for context.
func Import(path string) (*Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceNotFound, path, err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
