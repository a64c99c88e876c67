package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "cadenza",
})

// newRootCommand creates the `cadenza` command.
func newRootCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "cadenza",
		Short: "Cadenza module compiler (method-definition pass)",
		Long: `Compile parsed Cadenza module manifests: activate method definitions
along the taken control-flow paths, expand default arguments, merge
pattern clauses per signature, and drain the per-module export sets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel(log.DebugLevel)
			}
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newCompileCommand())
	cmd.AddCommand(newIndexCommand())
	return cmd
}
