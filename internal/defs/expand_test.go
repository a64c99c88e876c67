package defs

import (
	"testing"

	"github.com/cadenza-lang/cadenza/internal/ast"
	"github.com/cadenza-lang/cadenza/internal/diagnostics"
)

// wrapperCall digs the forwarding call out of a wrapper clause body.
func wrapperCall(t *testing.T, c Clause) *ast.CallExpression {
	t.Helper()
	if c.Body == nil || len(c.Body.Statements) != 1 {
		t.Fatalf("wrapper body has %d statements, want exactly 1", len(c.Body.Statements))
	}
	es, ok := c.Body.Statements[0].(*ast.ExpressionStatement)
	if !ok {
		t.Fatalf("wrapper body statement is %T, want *ast.ExpressionStatement", c.Body.Statements[0])
	}
	call, ok := es.Expression.(*ast.CallExpression)
	if !ok {
		t.Fatalf("wrapper body expression is %T, want *ast.CallExpression", es.Expression)
	}
	return call
}

func TestExpandDefaultsTwoTrailing(t *testing.T) {
	// pad(a, b = 10, c = 20)
	defB := intLit(10)
	defC := intLit(20)
	in := clause(5, param("a"), defaulted("b", defB), defaulted("c", defC))

	full, wrappers, ok := ExpandDefaults(nil, "m.cza", "pad", in)
	if !ok {
		t.Fatalf("ExpandDefaults failed on a valid trailing run")
	}

	if full.Arity() != 3 {
		t.Fatalf("full clause arity = %d, want 3", full.Arity())
	}
	for i, p := range full.Parameters {
		if p.Default != nil {
			t.Errorf("full clause parameter %d still carries a default", i)
		}
	}

	if len(wrappers) != 2 {
		t.Fatalf("got %d wrappers, want 2", len(wrappers))
	}

	// Wrapper 1: pad(ph) -> pad(ph, 10, 20)
	w1 := wrappers[0]
	if w1.Arity() != 1 {
		t.Errorf("first wrapper arity = %d, want 1 (increasing-arity order)", w1.Arity())
	}
	call := wrapperCall(t, w1)
	if fn, ok := call.Function.(*ast.Identifier); !ok || fn.Value != "pad" {
		t.Errorf("wrapper forwards to %v, want pad", call.Function)
	}
	if len(call.Arguments) != 3 {
		t.Fatalf("wrapper/1 forwards %d arguments, want 3", len(call.Arguments))
	}
	ph, ok := call.Arguments[0].(*ast.Identifier)
	if !ok {
		t.Fatalf("wrapper/1 first argument is %T, want placeholder identifier", call.Arguments[0])
	}
	if p1, ok := w1.Parameters[0].Pattern.(*ast.Identifier); !ok || p1.Value != ph.Value {
		t.Errorf("wrapper/1 parameter %v is not forwarded as first argument %q", w1.Parameters[0].Pattern, ph.Value)
	}
	if call.Arguments[1] != ast.Expression(defB) || call.Arguments[2] != ast.Expression(defC) {
		t.Errorf("wrapper/1 omitted arguments are not the recorded defaults")
	}

	// Wrapper 2: pad(ph1, ph2) -> pad(ph1, ph2, 20)
	w2 := wrappers[1]
	if w2.Arity() != 2 {
		t.Errorf("second wrapper arity = %d, want 2", w2.Arity())
	}
	call = wrapperCall(t, w2)
	if len(call.Arguments) != 3 {
		t.Fatalf("wrapper/2 forwards %d arguments, want 3", len(call.Arguments))
	}
	if call.Arguments[2] != ast.Expression(defC) {
		t.Errorf("wrapper/2 last argument is not the default of c")
	}
}

func TestExpandDefaultsNone(t *testing.T) {
	in := clause(3, param("a"), param("b"))

	full, wrappers, ok := ExpandDefaults(nil, "m.cza", "area", in)
	if !ok {
		t.Fatalf("ExpandDefaults failed on a clause without defaults")
	}
	if len(wrappers) != 0 {
		t.Errorf("got %d wrappers, want 0", len(wrappers))
	}
	if full.Arity() != 2 || full.Line != 3 {
		t.Errorf("full clause changed: arity %d line %d, want 2 and 3", full.Arity(), full.Line)
	}
	for i := range in.Parameters {
		if full.Parameters[i] != in.Parameters[i] {
			t.Errorf("parameter %d was rebuilt although no default was present", i)
		}
	}
}

func TestExpandDefaultsAllDefaulted(t *testing.T) {
	in := clause(4, defaulted("a", intLit(1)), defaulted("b", intLit(2)))

	full, wrappers, ok := ExpandDefaults(nil, "m.cza", "f", in)
	if !ok {
		t.Fatalf("ExpandDefaults failed")
	}
	if full.Arity() != 2 {
		t.Errorf("full arity = %d, want 2", full.Arity())
	}
	if len(wrappers) != 2 {
		t.Fatalf("got %d wrappers, want 2", len(wrappers))
	}
	if wrappers[0].Arity() != 0 || wrappers[1].Arity() != 1 {
		t.Errorf("wrapper arities = %d, %d, want 0, 1", wrappers[0].Arity(), wrappers[1].Arity())
	}
	call := wrapperCall(t, wrappers[0])
	if len(call.Arguments) != 2 {
		t.Errorf("zero-arity wrapper forwards %d arguments, want both defaults", len(call.Arguments))
	}
}

func TestExpandDefaultsNonTrailingRejected(t *testing.T) {
	collector := diagnostics.NewCollector()
	// f(a = 1, b) - default followed by a required parameter
	in := clause(7, defaulted("a", intLit(1)), param("b"))

	_, _, ok := ExpandDefaults(collector, "m.cza", "f", in)
	if ok {
		t.Fatalf("ExpandDefaults accepted a non-trailing default run")
	}
	errs := collector.Errors()
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if errs[0].Code != diagnostics.ErrD002 {
		t.Errorf("error code = %s, want %s", errs[0].Code, diagnostics.ErrD002)
	}
	if errs[0].Token.Line != 7 {
		t.Errorf("error line = %d, want 7", errs[0].Token.Line)
	}
}
