package defs

import (
	"fmt"

	"github.com/cadenza-lang/cadenza/internal/ast"
	"github.com/cadenza-lang/cadenza/internal/config"
	"github.com/cadenza-lang/cadenza/internal/diagnostics"
	"github.com/cadenza-lang/cadenza/internal/token"
)

// ExpandDefaults rewrites one clause with trailing defaulted parameters
// into the full-arity clause (defaults stripped) plus one wrapper
// clause per omitted-defaults prefix length.
//
// Wrapper j (j = n-k .. n-1 for k defaulted parameters out of n) takes
// j fresh placeholder parameters and forwards to name/n, passing the
// placeholders followed by the recorded default of every parameter
// beyond position j. Wrappers are returned in increasing-arity order.
// Each one registers later as an independent single-clause method at
// its own arity, sharing the name and visibility of the full-arity
// method.
//
// Defaulted parameters must form a contiguous trailing run. A default
// followed by a required parameter is rejected with D002 and the
// definition is dropped (ok = false); compilation continues.
func ExpandDefaults(rep diagnostics.Reporter, file, name string, clause Clause) (full Clause, wrappers []Clause, ok bool) {
	n := len(clause.Parameters)

	seenDefault := false
	for _, p := range clause.Parameters {
		if p.Default != nil {
			seenDefault = true
		} else if seenDefault {
			if rep != nil {
				rep.Report(diagnostics.NewError(
					diagnostics.ErrD002,
					token.At(clause.Line, 0),
					"definition of %s/%d has a required parameter after a defaulted one: default values must be trailing",
					name, n,
				).WithFile(file))
			}
			return Clause{}, nil, false
		}
	}

	stripped := make([]*ast.Parameter, n)
	for i, p := range clause.Parameters {
		if p.Default == nil {
			stripped[i] = p
			continue
		}
		stripped[i] = &ast.Parameter{Token: p.Token, Pattern: p.Pattern}

		// One wrapper per defaulted parameter: arity i, forwarding the
		// placeholders plus the defaults of every remaining parameter.
		wrappers = append(wrappers, wrapperClause(name, clause, i))
	}

	full = Clause{
		Line:       clause.Line,
		Parameters: stripped,
		Guard:      clause.Guard,
		Body:       clause.Body,
	}
	return full, wrappers, true
}

// wrapperClause builds the arity-j forwarder for a clause of full arity n.
func wrapperClause(name string, clause Clause, j int) Clause {
	pos := token.At(clause.Line, 0)

	params := make([]*ast.Parameter, j)
	args := make([]ast.Expression, 0, len(clause.Parameters))
	for i := 0; i < j; i++ {
		ph := &ast.Identifier{Token: pos, Value: placeholderName(i)}
		params[i] = &ast.Parameter{Token: pos, Pattern: ph}
		args = append(args, ph)
	}
	for _, p := range clause.Parameters[j:] {
		args = append(args, p.Default)
	}

	call := &ast.CallExpression{
		Token:     pos,
		Function:  &ast.Identifier{Token: pos, Value: name},
		Arguments: args,
	}
	return Clause{
		Line: clause.Line,
		Parameters: params,
		Body: &ast.BlockStatement{
			Token:      pos,
			Statements: []ast.Statement{&ast.ExpressionStatement{Token: pos, Expression: call}},
		},
	}
}

func placeholderName(i int) string {
	return fmt.Sprintf("%s%d", config.PlaceholderPrefix, i+1)
}
