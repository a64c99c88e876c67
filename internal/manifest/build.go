package manifest

import (
	"github.com/cadenza-lang/cadenza/internal/ast"
	"github.com/cadenza-lang/cadenza/internal/diagnostics"
	"github.com/cadenza-lang/cadenza/internal/token"
)

// builder turns decoded manifest records into the AST the definition
// subsystem operates on, validating as it goes.
type builder struct {
	file string
	errs []*diagnostics.DiagnosticError
}

func (b *builder) errorf(line int, format string, args ...interface{}) {
	b.errs = append(b.errs,
		diagnostics.NewError(diagnostics.ErrM002, token.At(line, 0), format, args...).WithFile(b.file))
}

func (b *builder) buildStatements(stmts []Statement) []ast.Statement {
	out := make([]ast.Statement, 0, len(stmts))
	for _, s := range stmts {
		if node := b.buildStatement(s); node != nil {
			out = append(out, node)
		}
	}
	return out
}

func (b *builder) buildStatement(s Statement) ast.Statement {
	set := 0
	if s.Visibility != "" {
		set++
	}
	if s.Fun != nil {
		set++
	}
	if s.If != nil {
		set++
	}
	if set != 1 {
		b.errorf(s.Line, "statement must have exactly one of visibility, fun, if")
		return nil
	}

	switch {
	case s.Visibility != "":
		return &ast.VisibilityStatement{Token: token.At(s.Line, 0), Mode: s.Visibility}
	case s.Fun != nil:
		return b.buildFunction(s.Fun)
	default:
		return b.buildConditional(s.If)
	}
}

func (b *builder) buildFunction(f *Function) ast.Statement {
	if f.Name == "" {
		b.errorf(f.Line, "method definition is missing a name")
		return nil
	}
	pos := token.At(f.Line, 0)

	params := make([]*ast.Parameter, 0, len(f.Params))
	for i, p := range f.Params {
		params = append(params, b.buildParam(f, i, p))
	}

	var guard ast.Expression
	if f.Guard != nil {
		guard = b.buildExpression(f.Line, *f.Guard)
	}

	body := &ast.BlockStatement{Token: pos}
	for _, e := range f.Body {
		expr := b.buildExpression(f.Line, e)
		if expr != nil {
			body.Statements = append(body.Statements, &ast.ExpressionStatement{Token: pos, Expression: expr})
		}
	}

	return &ast.FunctionStatement{
		Token:      token.Token{Type: token.FUN, Lexeme: "fun", Line: f.Line},
		Name:       &ast.Identifier{Token: pos, Value: f.Name},
		Parameters: params,
		Guard:      guard,
		Body:       body,
	}
}

func (b *builder) buildParam(f *Function, i int, p Param) *ast.Parameter {
	pos := token.At(f.Line, 0)
	var pattern ast.Expression
	switch {
	case p.Name != "" && p.Pattern != nil:
		b.errorf(f.Line, "parameter %d of %s has both a name and a pattern", i+1, f.Name)
	case p.Name != "":
		pattern = &ast.Identifier{Token: pos, Value: p.Name}
	case p.Pattern != nil:
		pattern = b.buildExpression(f.Line, *p.Pattern)
	default:
		b.errorf(f.Line, "parameter %d of %s has neither a name nor a pattern", i+1, f.Name)
	}

	var def ast.Expression
	if p.Default != nil {
		def = b.buildExpression(f.Line, *p.Default)
	}
	return &ast.Parameter{Token: pos, Pattern: pattern, Default: def}
}

func (b *builder) buildConditional(c *Conditional) ast.Statement {
	pos := token.Token{Type: token.IF, Lexeme: "if", Line: c.Line}
	stmt := &ast.IfStatement{
		Token:       pos,
		Condition:   b.buildExpression(c.Line, c.Cond),
		Consequence: &ast.BlockStatement{Token: token.At(c.Line, 0), Statements: b.buildStatements(c.Then)},
	}
	if len(c.Else) > 0 {
		stmt.Alternative = &ast.BlockStatement{Token: token.At(c.Line, 0), Statements: b.buildStatements(c.Else)}
	}
	return stmt
}

func (b *builder) buildExpression(line int, e Expression) ast.Expression {
	pos := token.At(line, 0)
	set := 0
	if e.Int != nil {
		set++
	}
	if e.Str != nil {
		set++
	}
	if e.Bool != nil {
		set++
	}
	if e.Ref != "" {
		set++
	}
	if e.Call != nil {
		set++
	}
	if e.Op != nil {
		set++
	}
	if set != 1 {
		b.errorf(line, "expression must have exactly one of int, str, bool, ref, call, op")
		return nil
	}

	switch {
	case e.Int != nil:
		return &ast.IntegerLiteral{Token: pos, Value: *e.Int}
	case e.Str != nil:
		return &ast.StringLiteral{Token: pos, Value: *e.Str}
	case e.Bool != nil:
		return &ast.BooleanLiteral{Token: pos, Value: *e.Bool}
	case e.Ref != "":
		return &ast.Identifier{Token: pos, Value: e.Ref}
	case e.Call != nil:
		args := make([]ast.Expression, 0, len(e.Call.Args))
		for _, a := range e.Call.Args {
			if expr := b.buildExpression(line, a); expr != nil {
				args = append(args, expr)
			}
		}
		return &ast.CallExpression{
			Token:     pos,
			Function:  &ast.Identifier{Token: pos, Value: e.Call.Fun},
			Arguments: args,
		}
	default:
		if e.Op.Right == nil {
			b.errorf(line, "operation %q is missing its operand", e.Op.Operator)
			return nil
		}
		right := b.buildExpression(line, *e.Op.Right)
		if e.Op.Left == nil {
			return &ast.PrefixExpression{Token: pos, Operator: e.Op.Operator, Right: right}
		}
		return &ast.InfixExpression{
			Token:    pos,
			Left:     b.buildExpression(line, *e.Op.Left),
			Operator: e.Op.Operator,
			Right:    right,
		}
	}
}
