package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cadenza-lang/cadenza/internal/config"
	"github.com/cadenza-lang/cadenza/internal/index"
)

// newIndexCommand creates the `cadenza index` command.
func newIndexCommand() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "index [module]",
		Short: "List signatures recorded in the export index",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module := ""
			if len(args) == 1 {
				module = args[0]
			}
			return runIndex(dbPath, module)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", config.DefaultIndexFile, "export index database path")
	return cmd
}

func runIndex(dbPath, module string) error {
	ix, err := index.Open(dbPath)
	if err != nil {
		return err
	}
	defer ix.Close()

	rows, err := ix.Exports(module)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		logger.Info("no entries", "db", dbPath, "module", module)
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MODULE\tSIGNATURE\tVISIBILITY\tLINE\tCLAUSES\tSESSION")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s/%d\t%s\t%d\t%d\t%s\n",
			r.Module, r.Name, r.Arity, r.Visibility, r.Line, r.Clauses, r.Session)
	}
	return tw.Flush()
}
