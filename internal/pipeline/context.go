package pipeline

import (
	"github.com/cadenza-lang/cadenza/internal/diagnostics"
	"github.com/cadenza-lang/cadenza/internal/modules"
)

// Processor is one pipeline stage.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}

// PipelineContext is the state threaded through the stages of one
// compilation: manifest loading fills Module, the definition pass fills
// Artifact, the index stage records it.
type PipelineContext struct {
	ManifestPath string
	IndexPath    string // empty disables the index stage

	Module   *modules.Module
	Artifact *modules.Artifact

	Diags *diagnostics.Collector
}

// NewContext creates a context for compiling one manifest.
func NewContext(manifestPath string) *PipelineContext {
	return &PipelineContext{
		ManifestPath: manifestPath,
		Diags:        diagnostics.NewCollector(),
	}
}
