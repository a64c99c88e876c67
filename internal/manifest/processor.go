package manifest

import (
	"github.com/cadenza-lang/cadenza/internal/pipeline"
)

// Processor is the pipeline stage that loads the manifest.
type Processor struct{}

func (p *Processor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.ManifestPath == "" {
		return ctx
	}
	mod, errs := Load(ctx.ManifestPath)
	for _, e := range errs {
		ctx.Diags.Report(e)
	}
	ctx.Module = mod
	return ctx
}
