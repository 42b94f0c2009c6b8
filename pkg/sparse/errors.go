package sparse

import "errors"

var (
	// ErrInvalidDimensions is returned by [New] when rows or cols is not a
	// positive integer. A matrix must have a non-empty coordinate domain.
	ErrInvalidDimensions = errors.New("rows and cols must be positive")

	// ErrSourceNotFound is returned by [Import] when the source file does
	// not exist or cannot be opened. It wraps the underlying OS error.
	ErrSourceNotFound = errors.New("matrix source not found")

	// ErrMalformedHeader is returned by [Read] when the first two lines are
	// not exactly "rows=<int>" and "cols=<int>" with positive values.
	ErrMalformedHeader = errors.New("malformed header")

	// ErrMalformedEntry is returned by [Read] when an entry line violates
	// the "(<int>, <int>, <int>)" grammar: missing parentheses, a field
	// count other than three, or a non-integer field.
	ErrMalformedEntry = errors.New("malformed entry")

	// ErrEntryOutOfBounds is returned by [Read] when a parsed entry names a
	// coordinate outside the declared dimensions. The error message
	// identifies the offending coordinate and the matrix size.
	ErrEntryOutOfBounds = errors.New("entry out of bounds")

	// ErrIndexOutOfBounds is returned by [Matrix.At] and [Matrix.Set] when
	// the requested coordinate is outside [0,rows) x [0,cols).
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrDimensionMismatch is returned by [Add] and [Sub] when the operand
	// shapes differ, and by [Mul] when the left operand's column count does
	// not equal the right operand's row count.
	ErrDimensionMismatch = errors.New("dimension mismatch")
)
