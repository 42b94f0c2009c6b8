package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/jharmer/spmat/pkg/sparse"
)

// testContext returns a context carrying a silent logger and a config whose
// input and output directories both point at dir.
func testContext(t *testing.T, dir string) context.Context {
	t.Helper()
	cfg := defaultConfig()
	cfg.InputDir = dir
	cfg.OutputDir = dir

	ctx := withLogger(context.Background(), log.New(io.Discard))
	return withConfig(ctx, &cfg)
}

func writeMatrix(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func opByName(t *testing.T, name string) operation {
	t.Helper()
	for _, op := range operations {
		if op.name == name {
			return op
		}
	}
	t.Fatalf("unknown operation %q", name)
	return operation{}
}

func TestRunOp(t *testing.T) {
	matA := "rows=2\ncols=2\n(0, 0, 1)\n(1, 1, 2)\n"
	matB := "rows=2\ncols=2\n(0, 0, 3)\n(0, 1, 4)\n"

	tests := []struct {
		name     string
		op       string
		wantFile string
		want     string
	}{
		{
			name:     "Add",
			op:       "add",
			wantFile: "result_addition_matrix1_matrix2.txt",
			want:     "rows=2\ncols=2\n(0, 0, 4)\n(0, 1, 4)\n(1, 1, 2)\n",
		},
		{
			name:     "Subtract",
			op:       "subtract",
			wantFile: "result_subtraction_matrix1_matrix2.txt",
			want:     "rows=2\ncols=2\n(0, 0, -2)\n(0, 1, -4)\n(1, 1, 2)\n",
		},
		{
			name:     "Multiply",
			op:       "multiply",
			wantFile: "result_multiplication_matrix1_matrix2.txt",
			want:     "rows=2\ncols=2\n(0, 0, 3)\n(0, 1, 4)\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			t.Setenv("XDG_CACHE_HOME", t.TempDir())
			writeMatrix(t, dir, "matrix1.txt", matA)
			writeMatrix(t, dir, "matrix2.txt", matB)

			ctx := testContext(t, dir)
			if err := runOp(ctx, opByName(t, tt.op), "matrix1.txt", "matrix2.txt", "", false); err != nil {
				t.Fatalf("runOp: %v", err)
			}

			got, err := os.ReadFile(filepath.Join(dir, tt.wantFile))
			if err != nil {
				t.Fatalf("read result: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("result = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunOpExplicitOutput(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	writeMatrix(t, dir, "a.txt", "rows=1\ncols=1\n(0, 0, 2)\n")
	writeMatrix(t, dir, "b.txt", "rows=1\ncols=1\n(0, 0, 3)\n")

	out := filepath.Join(dir, "nested", "out.txt")
	ctx := testContext(t, dir)
	if err := runOp(ctx, opByName(t, "multiply"), "a.txt", "b.txt", out, true); err != nil {
		t.Fatalf("runOp: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read result: %v", err)
	}
	want := "rows=1\ncols=1\n(0, 0, 6)\n"
	if string(got) != want {
		t.Errorf("result = %q, want %q", got, want)
	}
}

func TestRunOpMissingSource(t *testing.T) {
	dir := t.TempDir()
	ctx := testContext(t, dir)

	err := runOp(ctx, opByName(t, "add"), "missing.txt", "also-missing.txt", "", true)
	if !errors.Is(err, sparse.ErrSourceNotFound) {
		t.Errorf("err = %v, want ErrSourceNotFound", err)
	}
}

func TestRunOpDimensionMismatch(t *testing.T) {
	dir := t.TempDir()
	writeMatrix(t, dir, "a.txt", "rows=2\ncols=2\n")
	writeMatrix(t, dir, "b.txt", "rows=3\ncols=3\n")

	ctx := testContext(t, dir)
	err := runOp(ctx, opByName(t, "add"), "a.txt", "b.txt", "", true)
	if !errors.Is(err, sparse.ErrDimensionMismatch) {
		t.Errorf("err = %v, want ErrDimensionMismatch", err)
	}
}

func TestRunOpUsesCache(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	writeMatrix(t, dir, "a.txt", "rows=1\ncols=1\n(0, 0, 2)\n")
	writeMatrix(t, dir, "b.txt", "rows=1\ncols=1\n(0, 0, 3)\n")

	ctx := testContext(t, dir)
	op := opByName(t, "add")

	if err := runOp(ctx, op, "a.txt", "b.txt", "", false); err != nil {
		t.Fatalf("first run: %v", err)
	}

	cdir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(cdir)
	if err != nil {
		t.Fatalf("read cache dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("cache holds %d entries after first run, want 1", len(entries))
	}

	// A second run must produce the same result from the cached entry.
	if err := runOp(ctx, op, "a.txt", "b.txt", "", false); err != nil {
		t.Fatalf("second run: %v", err)
	}
	got, err := os.ReadFile(filepath.Join(dir, "result_addition_a_b.txt"))
	if err != nil {
		t.Fatal(err)
	}
	want := "rows=1\ncols=1\n(0, 0, 5)\n"
	if string(got) != want {
		t.Errorf("result = %q, want %q", got, want)
	}
}

func TestDefaultOutputPath(t *testing.T) {
	cfg := Config{OutputDir: "/out"}
	got := defaultOutputPath(&cfg, opByName(t, "add"), "/in/matrix1.txt", "rel/matrix2.txt")
	want := filepath.Join("/out", "result_addition_matrix1_matrix2.txt")
	if got != want {
		t.Errorf("defaultOutputPath = %q, want %q", got, want)
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/a/b/matrix1.txt", "matrix1"},
		{"matrix2.txt", "matrix2"},
		{"no-extension", "no-extension"},
		{"dir/with.dots.txt", "with.dots"},
	}
	for _, tt := range tests {
		if got := baseName(tt.path); got != tt.want {
			t.Errorf("baseName(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
