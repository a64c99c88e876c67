// Package backend wires the method-definition pass into the pipeline
// and hands the drained artifacts to whatever consumes them next (the
// code generator, the export index, the CLI printer).
package backend

import (
	"github.com/cadenza-lang/cadenza/internal/modules"
	"github.com/cadenza-lang/cadenza/internal/pipeline"
)

// CompileProcessor runs the definition pass for the loaded module.
type CompileProcessor struct{}

func (p *CompileProcessor) Process(ctx *pipeline.PipelineContext) *pipeline.PipelineContext {
	if ctx.Module == nil || ctx.Diags.HasErrors() {
		return ctx
	}
	compiler := modules.NewCompiler(ctx.Diags)
	ctx.Artifact = compiler.Compile(ctx.Module)
	return ctx
}
