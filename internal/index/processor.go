package index

import (
	"github.com/cadenza-lang/cadenza/internal/diagnostics"
	"github.com/cadenza-lang/cadenza/internal/pipeline"
	"github.com/cadenza-lang/cadenza/internal/token"
)

// Processor is the optional pipeline stage recording the artifact.
// It only runs when an index path is configured and the earlier stages
// produced a clean artifact.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.IndexPath == "" || ctx.Artifact == nil || ctx.Diags.HasErrors() {
		return ctx
	}
	ix, err := Open(ctx.IndexPath)
	if err != nil {
		ctx.Diags.Report(diagnostics.NewError(diagnostics.ErrM001, token.Token{}, "%v", err))
		return ctx
	}
	defer ix.Close()

	if err := ix.Record(ctx.Artifact); err != nil {
		ctx.Diags.Report(diagnostics.NewError(diagnostics.ErrM001, token.Token{}, "record %s: %v", ctx.Artifact.Module, err))
	}
	return ctx
}
