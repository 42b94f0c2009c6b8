package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// newInteractiveCmd builds the interactive command: a menu-driven loop that
// asks for an operation and two operand files, runs the computation, and
// returns to the menu until the user exits.
func newInteractiveCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Pick operations from a menu and run them in a loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			for {
				p := tea.NewProgram(newMenuModel(), tea.WithContext(ctx))
				final, err := p.Run()
				if err != nil {
					return fmt.Errorf("run menu: %w", err)
				}

				m, ok := final.(menuModel)
				if !ok || !m.done || m.choice.op == nil {
					printInfo("Goodbye")
					return nil
				}

				if err := runOp(ctx, *m.choice.op, m.choice.fileA, m.choice.fileB, "", opts.noCache); err != nil {
					printError("%v", err)
				}
				fmt.Println()
			}
		},
	}
}
