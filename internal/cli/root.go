package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jharmer/spmat/pkg/buildinfo"
)

// rootOpts holds the persistent flags shared by all commands.
type rootOpts struct {
	verbose    bool   // enable debug logging
	configPath string // explicit config file path
	noCache    bool   // bypass the result cache
}

// Execute runs the spmat CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, loads the
// configuration, and attaches a logger to the command context based on the
// --verbose flag.
//
// Example:
//
//	func main() {
//	    if err := cli.Execute(ctx); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context) error {
	var opts rootOpts

	root := &cobra.Command{
		Use:          "spmat",
		Short:        "spmat runs arithmetic on sparse matrix files",
		Long:         `spmat is a CLI tool for adding, subtracting, and multiplying integer sparse matrices stored in a compact line-oriented text format, keeping only non-zero entries in memory.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			c := cmd.Context()
			c = withLogger(c, newLogger(os.Stderr, level))
			c = withConfig(c, &cfg)
			cmd.SetContext(c)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/spmat/config.toml)")
	root.PersistentFlags().BoolVar(&opts.noCache, "no-cache", false, "bypass the result cache")

	for _, op := range operations {
		root.AddCommand(newOpCmd(op, &opts))
	}
	root.AddCommand(newCheckCmd())
	root.AddCommand(newInteractiveCmd(&opts))
	root.AddCommand(newServeCmd())
	root.AddCommand(newCacheCmd())

	return root.ExecuteContext(ctx)
}
