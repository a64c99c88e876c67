package modules

import (
	"github.com/cadenza-lang/cadenza/internal/ast"
	"github.com/cadenza-lang/cadenza/internal/diagnostics"
)

// Branch conditions in module bodies are restricted to constant
// expressions: literals, !, ==/!=, &&/|| and integer comparisons. The
// evaluation happens ahead of time, so anything runtime-dependent is a
// D004 error and the whole if is skipped.

func (c *Compiler) evalCondition(mod *Module, expr ast.Expression) (bool, bool) {
	v, ok := c.evalConst(mod, expr)
	if !ok {
		return false, false
	}
	b, isBool := v.(bool)
	if !isBool {
		c.report(diagnostics.NewError(
			diagnostics.ErrD004,
			expr.GetToken(),
			"condition is not a boolean constant",
		).WithFile(mod.File))
		return false, false
	}
	return b, true
}

func (c *Compiler) evalConst(mod *Module, expr ast.Expression) (interface{}, bool) {
	switch e := expr.(type) {
	case *ast.BooleanLiteral:
		return e.Value, true
	case *ast.IntegerLiteral:
		return e.Value, true
	case *ast.StringLiteral:
		return e.Value, true
	case *ast.PrefixExpression:
		return c.evalConstPrefix(mod, e)
	case *ast.InfixExpression:
		return c.evalConstInfix(mod, e)
	}
	c.report(diagnostics.NewError(
		diagnostics.ErrD004,
		expr.GetToken(),
		"expression is not constant",
	).WithFile(mod.File))
	return nil, false
}

func (c *Compiler) evalConstPrefix(mod *Module, e *ast.PrefixExpression) (interface{}, bool) {
	v, ok := c.evalConst(mod, e.Right)
	if !ok {
		return nil, false
	}
	switch e.Operator {
	case "!":
		if b, isBool := v.(bool); isBool {
			return !b, true
		}
	case "-":
		if n, isInt := v.(int64); isInt {
			return -n, true
		}
	}
	c.report(diagnostics.NewError(
		diagnostics.ErrD004,
		e.Token,
		"operator %s is not applicable here", e.Operator,
	).WithFile(mod.File))
	return nil, false
}

func (c *Compiler) evalConstInfix(mod *Module, e *ast.InfixExpression) (interface{}, bool) {
	left, ok := c.evalConst(mod, e.Left)
	if !ok {
		return nil, false
	}
	right, ok := c.evalConst(mod, e.Right)
	if !ok {
		return nil, false
	}

	switch e.Operator {
	case "==":
		return left == right, true
	case "!=":
		return left != right, true
	case "&&":
		lb, lok := left.(bool)
		rb, rok := right.(bool)
		if lok && rok {
			return lb && rb, true
		}
	case "||":
		lb, lok := left.(bool)
		rb, rok := right.(bool)
		if lok && rok {
			return lb || rb, true
		}
	case "<", "<=", ">", ">=":
		ln, lok := left.(int64)
		rn, rok := right.(int64)
		if lok && rok {
			switch e.Operator {
			case "<":
				return ln < rn, true
			case "<=":
				return ln <= rn, true
			case ">":
				return ln > rn, true
			case ">=":
				return ln >= rn, true
			}
		}
	}
	c.report(diagnostics.NewError(
		diagnostics.ErrD004,
		e.Token,
		"operator %s is not applicable here", e.Operator,
	).WithFile(mod.File))
	return nil, false
}
