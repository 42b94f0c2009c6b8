package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jharmer/spmat/pkg/sparse"
)

// newCheckCmd builds the check command, which validates a matrix file and
// prints its shape and sparsity.
func newCheckCmd() *cobra.Command {
	var dump bool

	cmd := &cobra.Command{
		Use:   "check <matrix>",
		Short: "Validate a sparse matrix file and print its stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			path := cfg.resolveInput(args[0])

			m, err := sparse.Import(path)
			if err != nil {
				return err
			}

			printSuccess("Valid matrix file")
			printKeyValue("file", path)
			printKeyValue("rows", fmt.Sprintf("%d", m.Rows()))
			printKeyValue("cols", fmt.Sprintf("%d", m.Cols()))
			printKeyValue("non-zero", fmt.Sprintf("%d", m.NNZ()))
			printKeyValue("density", fmt.Sprintf("%.4f%%", density(m)))

			if dump {
				fmt.Print(m.String())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "print the canonical serialization after the stats")
	return cmd
}

// density returns the percentage of cells holding a non-zero value.
func density(m *sparse.Matrix) float64 {
	rows, cols := m.Dims()
	return 100 * float64(m.NNZ()) / (float64(rows) * float64(cols))
}
