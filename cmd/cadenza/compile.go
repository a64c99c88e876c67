package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cadenza-lang/cadenza/internal/backend"
	"github.com/cadenza-lang/cadenza/internal/defs"
	"github.com/cadenza-lang/cadenza/internal/diagnostics"
	"github.com/cadenza-lang/cadenza/internal/index"
	"github.com/cadenza-lang/cadenza/internal/manifest"
	"github.com/cadenza-lang/cadenza/internal/modules"
	"github.com/cadenza-lang/cadenza/internal/pipeline"
)

// newCompileCommand creates the `cadenza compile` command.
func newCompileCommand() *cobra.Command {
	var indexPath string

	cmd := &cobra.Command{
		Use:   "compile <manifest>...",
		Short: "Compile module manifests and print their export artifacts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false
			for _, path := range args {
				if !compileOne(path, indexPath) {
					failed = true
				}
			}
			if failed {
				return fmt.Errorf("compilation failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&indexPath, "index", "", "record artifacts into this export index database")
	return cmd
}

func compileOne(path, indexPath string) bool {
	logger.Debug("compiling", "manifest", path)

	ctx := pipeline.NewContext(path)
	ctx.IndexPath = indexPath

	processingPipeline := pipeline.New(
		&manifest.Processor{},
		&backend.CompileProcessor{},
		&index.Processor{},
	)
	finalContext := processingPipeline.Run(ctx)

	diagnostics.Render(os.Stderr, finalContext.Diags.All())
	if finalContext.Diags.HasErrors() || finalContext.Artifact == nil {
		return false
	}

	printArtifact(os.Stdout, finalContext.Artifact)
	return true
}

func printArtifact(w *os.File, a *modules.Artifact) {
	fmt.Fprintf(w, "module %s (%s)\n", a.Module, a.File)
	fmt.Fprintf(w, "  exported:")
	for _, sig := range a.Exported {
		fmt.Fprintf(w, " %s", sig)
	}
	fmt.Fprintln(w)
	if len(a.Callbacks) > 0 {
		fmt.Fprintf(w, "  callbacks:")
		for _, sig := range a.Callbacks {
			fmt.Fprintf(w, " %s", sig)
		}
		fmt.Fprintln(w)
	}
	for _, e := range a.Entries {
		sig := defs.Signature{Name: e.Name, Arity: e.Arity}
		fmt.Fprintf(w, "  %-20s line %-4d %-9s %d clause(s)\n",
			sig, e.Line, a.VisibilityOf(sig), len(e.Clauses))
	}
}
