package modules

import (
	"github.com/google/uuid"

	"github.com/cadenza-lang/cadenza/internal/defs"
	"github.com/cadenza-lang/cadenza/internal/diagnostics"
)

// Compiler runs the method-definition pass for whole modules. Each
// Compile call owns its table: the table is created at module open,
// mutated only by applying that module's effects in body order, and
// drained at close. Modules never share tables, so compiling
// independent modules from separate Compilers is safe without locking.
type Compiler struct {
	reporter diagnostics.Reporter
	session  string
}

// NewCompiler creates a compiler reporting diagnostics to rep. One
// compile session id covers every module compiled through it.
func NewCompiler(rep diagnostics.Reporter) *Compiler {
	return &Compiler{
		reporter: rep,
		session:  uuid.NewString(),
	}
}

// Session returns the compile session id.
func (c *Compiler) Session() string {
	return c.session
}

// Compile turns one parsed module into its export artifact.
//
// Phase 1 walks the body statements, following only branches whose
// conditions hold, and collects definition effects in execution order.
// Phase 2 applies the effects to a fresh table. The table is then
// drained exactly once.
func (c *Compiler) Compile(mod *Module) *Artifact {
	effects := c.evalBody(mod)

	table := defs.New(mod.Name)
	for _, eff := range effects {
		eff.Apply(table, c.reporter)
	}

	export := table.Drain(c.reporter)
	return &Artifact{
		Module:                mod.Name,
		File:                  mod.File,
		Session:               c.session,
		Callbacks:             export.Callbacks,
		Exported:              export.Exported,
		ProtectedAndCallbacks: export.ProtectedAndCallbacks,
		Entries:               export.Entries,
	}
}
