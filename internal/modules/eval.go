package modules

import (
	"github.com/cadenza-lang/cadenza/internal/ast"
	"github.com/cadenza-lang/cadenza/internal/defs"
	"github.com/cadenza-lang/cadenza/internal/diagnostics"
)

// evalBody is phase 1: evaluate the module body as a statement
// sequence, producing definition effects only for branches actually
// taken. Effects come out in the exact order the body would execute.
func (c *Compiler) evalBody(mod *Module) []defs.Effect {
	var effects []defs.Effect
	c.evalStatements(mod, mod.Body, &effects)
	return effects
}

func (c *Compiler) evalStatements(mod *Module, stmts []ast.Statement, effects *[]defs.Effect) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.FunctionStatement:
			c.evalFunction(mod, s, effects)
		case *ast.VisibilityStatement:
			c.evalVisibility(mod, s, effects)
		case *ast.IfStatement:
			c.evalIf(mod, s, effects)
		case *ast.BlockStatement:
			c.evalStatements(mod, s.Statements, effects)
		case *ast.ExpressionStatement:
			// Top-level expressions have no definition effect.
		default:
			c.report(diagnostics.NewError(
				diagnostics.ErrD004,
				stmt.GetToken(),
				"unsupported module body statement",
			).WithFile(mod.File))
		}
	}
}

func (c *Compiler) evalFunction(mod *Module, fn *ast.FunctionStatement, effects *[]defs.Effect) {
	clause := defs.Clause{
		Line:       fn.Token.Line,
		Parameters: fn.Parameters,
		Guard:      fn.Guard,
		Body:       fn.Body,
	}
	full, wrappers, ok := defs.ExpandDefaults(c.reporter, mod.File, fn.Name.Value, clause)
	if !ok {
		return
	}
	*effects = append(*effects, defs.Wrap(fn.Name.Value, fn.Token.Line, mod.File, full, wrappers))
}

func (c *Compiler) evalVisibility(mod *Module, vs *ast.VisibilityStatement, effects *[]defs.Effect) {
	vis, ok := defs.ParseVisibility(vs.Mode)
	if !ok {
		c.report(diagnostics.NewError(
			diagnostics.ErrM002,
			vs.Token,
			"unknown visibility %q", vs.Mode,
		).WithFile(mod.File))
		return
	}
	*effects = append(*effects, defs.SetVisibilityEffect{Line: vs.Token.Line, Visibility: vis})
}

func (c *Compiler) evalIf(mod *Module, is *ast.IfStatement, effects *[]defs.Effect) {
	cond, ok := c.evalCondition(mod, is.Condition)
	if !ok {
		return
	}
	if cond {
		if is.Consequence != nil {
			c.evalStatements(mod, is.Consequence.Statements, effects)
		}
	} else if is.Alternative != nil {
		c.evalStatements(mod, is.Alternative.Statements, effects)
	}
}

func (c *Compiler) report(d *diagnostics.DiagnosticError) {
	if c.reporter != nil {
		c.reporter.Report(d)
	}
}
