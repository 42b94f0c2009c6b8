package sparse

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Entry
		rows  int
		cols  int
	}{
		{
			name:  "Basic",
			input: "rows=3\ncols=2\n(0, 0, 5)\n(2, 1, -7)\n",
			rows:  3, cols: 2,
			want: []Entry{{0, 0, 5}, {2, 1, -7}},
		},
		{
			name:  "NoEntries",
			input: "rows=2\ncols=2\n",
			rows:  2, cols: 2,
		},
		{
			name:  "NoTrailingNewline",
			input: "rows=2\ncols=2\n(1, 1, 4)",
			rows:  2, cols: 2,
			want: []Entry{{1, 1, 4}},
		},
		{
			name:  "BlankLinesSkipped",
			input: "rows=2\ncols=2\n\n(0, 1, 3)\n\n\n(1, 0, 2)\n",
			rows:  2, cols: 2,
			want: []Entry{{0, 1, 3}, {1, 0, 2}},
		},
		{
			name:  "FieldWhitespaceTrimmed",
			input: "rows=2\ncols=2\n(  1 ,\t0 ,  -9 )\n",
			rows:  2, cols: 2,
			want: []Entry{{1, 0, -9}},
		},
		{
			name:  "ZeroValueNotStored",
			input: "rows=2\ncols=2\n(0, 0, 0)\n",
			rows:  2, cols: 2,
		},
		{
			name:  "DuplicateLastWriteWins",
			input: "rows=2\ncols=2\n(0, 0, 1)\n(0, 0, 8)\n",
			rows:  2, cols: 2,
			want: []Entry{{0, 0, 8}},
		},
		{
			name: "LaterZeroDoesNotDelete",
			// Plain map insertion semantics: a zero value is skipped, it
			// does not remove the earlier entry for the same coordinate.
			input: "rows=2\ncols=2\n(0, 0, 1)\n(0, 0, 0)\n",
			rows:  2, cols: 2,
			want: []Entry{{0, 0, 1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if r, c := m.Dims(); r != tt.rows || c != tt.cols {
				t.Errorf("Dims() = %dx%d, want %dx%d", r, c, tt.rows, tt.cols)
			}
			got := m.Entries()
			if len(got) != len(tt.want) {
				t.Fatalf("entries = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("entries[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "Empty", input: "", wantErr: ErrMalformedHeader},
		{name: "MissingCols", input: "rows=3\n", wantErr: ErrMalformedHeader},
		{name: "WrongRowsPrefix", input: "rws=3\ncols=2\n", wantErr: ErrMalformedHeader},
		{name: "WrongColsPrefix", input: "rows=3\ncolumns=2\n", wantErr: ErrMalformedHeader},
		{name: "SwappedHeaders", input: "cols=2\nrows=3\n", wantErr: ErrMalformedHeader},
		{name: "NonIntegerRows", input: "rows=three\ncols=2\n", wantErr: ErrMalformedHeader},
		{name: "FloatCols", input: "rows=3\ncols=2.5\n", wantErr: ErrMalformedHeader},
		{name: "ZeroRows", input: "rows=0\ncols=2\n", wantErr: ErrMalformedHeader},
		{name: "NegativeCols", input: "rows=3\ncols=-1\n", wantErr: ErrMalformedHeader},
		{name: "NoParens", input: "rows=3\ncols=2\n1, 1, 4\n", wantErr: ErrMalformedEntry},
		{name: "MissingCloseParen", input: "rows=3\ncols=2\n(1, 1, 4\n", wantErr: ErrMalformedEntry},
		{name: "TwoFields", input: "rows=3\ncols=2\n(1,2)\n", wantErr: ErrMalformedEntry},
		{name: "FourFields", input: "rows=3\ncols=2\n(1, 1, 4, 9)\n", wantErr: ErrMalformedEntry},
		{name: "NonIntegerValue", input: "rows=3\ncols=2\n(1, 1, x)\n", wantErr: ErrMalformedEntry},
		{name: "FloatValue", input: "rows=3\ncols=2\n(1, 1, 4.5)\n", wantErr: ErrMalformedEntry},
		{name: "RowOutOfBounds", input: "rows=3\ncols=2\n(5, 0, 1)\n", wantErr: ErrEntryOutOfBounds},
		{name: "ColOutOfBounds", input: "rows=3\ncols=2\n(0, 2, 1)\n", wantErr: ErrEntryOutOfBounds},
		{name: "NegativeRow", input: "rows=3\ncols=2\n(-1, 0, 1)\n", wantErr: ErrEntryOutOfBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Parse error = %v, want %v", err, tt.wantErr)
			}
			if m != nil {
				t.Error("Parse returned a matrix alongside an error")
			}
		})
	}
}

func TestImport(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "a.txt")
	if err := os.WriteFile(path, []byte("rows=2\ncols=2\n(0, 1, 6)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Import(path)
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if v, _ := m.At(0, 1); v != 6 {
		t.Errorf("At(0, 1) = %d, want 6", v)
	}

	t.Run("Missing", func(t *testing.T) {
		_, err := Import(filepath.Join(dir, "nope.txt"))
		if !errors.Is(err, ErrSourceNotFound) {
			t.Errorf("error = %v, want ErrSourceNotFound", err)
		}
	})

	t.Run("MalformedWrapsPath", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.txt")
		if err := os.WriteFile(bad, []byte("oops\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Import(bad)
		if !errors.Is(err, ErrMalformedHeader) {
			t.Errorf("error = %v, want ErrMalformedHeader", err)
		}
	})
}
