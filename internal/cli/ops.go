package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jharmer/spmat/pkg/cache"
	"github.com/jharmer/spmat/pkg/sparse"
)

// operation describes one of the binary matrix operations exposed as a
// subcommand. The noun is used in result file names (result_addition_...),
// matching the naming convention of the classic workflow.
type operation struct {
	name  string // subcommand name
	noun  string // noun form used in output file names
	short string
	apply func(a, b *sparse.Matrix) (*sparse.Matrix, error)
}

var operations = []operation{
	{
		name:  "add",
		noun:  "addition",
		short: "Add two sparse matrices",
		apply: sparse.Add,
	},
	{
		name:  "subtract",
		noun:  "subtraction",
		short: "Subtract the second sparse matrix from the first",
		apply: sparse.Sub,
	},
	{
		name:  "multiply",
		noun:  "multiplication",
		short: "Multiply two sparse matrices",
		apply: sparse.Mul,
	},
}

// newOpCmd builds the cobra command for a single operation.
func newOpCmd(op operation, opts *rootOpts) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   fmt.Sprintf("%s <matrix-a> <matrix-b>", op.name),
		Short: op.short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOp(cmd.Context(), op, args[0], args[1], output, opts.noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "result file path (default <output_dir>/result_<op>_<a>_<b>.txt)")
	return cmd
}

// runOp loads both operand files, computes the operation (consulting the
// result cache first), writes the result file, and prints a styled summary.
func runOp(ctx context.Context, op operation, fileA, fileB, output string, noCache bool) error {
	logger := loggerFromContext(ctx)
	cfg := configFromContext(ctx)

	pathA := cfg.resolveInput(fileA)
	pathB := cfg.resolveInput(fileB)

	p := newProgress(logger)
	a, err := sparse.Import(pathA)
	if err != nil {
		return err
	}
	b, err := sparse.Import(pathB)
	if err != nil {
		return err
	}
	p.done("Loaded operands")

	c := openCache(logger, cfg, noCache)
	defer c.Close()

	result, hit, err := computeOp(ctx, c, cfg, op, a, b)
	if err != nil {
		return err
	}

	if output == "" {
		output = defaultOutputPath(cfg, op, pathA, pathB)
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}
	if err := sparse.Export(result, output); err != nil {
		return err
	}

	printSuccess("Computed %s", op.noun)
	printMatrixStats(result.Rows(), result.Cols(), result.NNZ(), hit)
	printFile(output)
	return nil
}

// computeOp returns the result of op on a and b, reporting whether it was
// served from the cache. Cache failures are logged and degrade to a fresh
// computation rather than failing the command.
func computeOp(ctx context.Context, c cache.Cache, cfg *Config, op operation, a, b *sparse.Matrix) (*sparse.Matrix, bool, error) {
	key := cache.OpKey(op.name, []byte(a.String()), []byte(b.String()))

	logger := loggerFromContext(ctx)
	if data, ok, err := c.Get(ctx, key); err != nil {
		logger.Debugf("cache lookup failed: %v", err)
	} else if ok {
		m, err := sparse.Parse(string(data))
		if err == nil {
			logger.Debug("cache hit", "key", key)
			return m, true, nil
		}
		logger.Debugf("cached result unreadable, recomputing: %v", err)
	}

	p := newProgress(logger)
	result, err := op.apply(a, b)
	if err != nil {
		return nil, false, err
	}
	p.done("Computed " + op.noun)

	ttl := time.Duration(cfg.Cache.TTLHours) * time.Hour
	if err := c.Set(ctx, key, []byte(result.String()), ttl); err != nil {
		logger.Debugf("cache store failed: %v", err)
	}
	return result, false, nil
}

// openCache returns the result cache, or a no-op cache when caching is
// disabled or the cache directory cannot be determined.
func openCache(logger *log.Logger, cfg *Config, noCache bool) cache.Cache {
	if noCache || cfg.Cache.Disabled {
		return cache.NullCache{}
	}
	dir, err := cacheDir()
	if err != nil {
		logger.Debugf("cache unavailable: %v", err)
		return cache.NullCache{}
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		logger.Debugf("cache unavailable: %v", err)
		return cache.NullCache{}
	}
	return fc
}

// defaultOutputPath builds the conventional result file name from the
// operation noun and the base names of both operand files, for example
// result_addition_matrix1_matrix2.txt.
func defaultOutputPath(cfg *Config, op operation, pathA, pathB string) string {
	name := fmt.Sprintf("result_%s_%s_%s.txt", op.noun, baseName(pathA), baseName(pathB))
	return filepath.Join(cfg.OutputDir, name)
}

// baseName strips the directory and extension from a file path.
func baseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
