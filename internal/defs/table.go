package defs

import (
	"fmt"

	"github.com/cadenza-lang/cadenza/internal/ast"
)

// Signature identifies one dispatch target within a module: a
// (name, argument count) pair.
type Signature struct {
	Name  string
	Arity int
}

func (s Signature) String() string {
	return fmt.Sprintf("%s/%d", s.Name, s.Arity)
}

// Clause is one pattern-matching alternative for a signature.
type Clause struct {
	Line       int
	Parameters []*ast.Parameter
	Guard      ast.Expression // nil when absent
	Body       *ast.BlockStatement
}

// Arity returns the clause's parameter count.
func (c Clause) Arity() int {
	return len(c.Parameters)
}

type entry struct {
	line    int // line of the first declaration
	clauses []Clause
}

// Table is the per-module method table. One table exists per
// compilation unit, exclusively owned by the pass compiling that
// module: it is created at module open, mutated by applying definition
// effects in body order, and drained exactly once at module close.
// Besides user signatures it carries four reserved pieces of state: the
// current visibility mode and the accumulated public, protected, and
// callback name lists.
//
// Visibility per signature is kept as a direct map, with the three
// export lists maintained incrementally as insertion-ordered
// projections.
type Table struct {
	module string

	visibility Visibility // current mode, public until switched
	public     []Signature
	protected  []Signature
	callback   []Signature

	byName  map[Signature]Visibility
	entries map[Signature]*entry
	order   []Signature // first-registration order

	drained bool
}

// New creates the method table for one module compilation unit. The
// current visibility mode defaults to public.
func New(module string) *Table {
	return &Table{
		module:  module,
		byName:  make(map[Signature]Visibility),
		entries: make(map[Signature]*entry),
	}
}

// Module returns the identifier of the compilation unit owning this table.
func (t *Table) Module() string {
	return t.module
}

// IsEmpty reports whether no user signature has been registered yet.
// The reserved visibility state does not count.
func (t *Table) IsEmpty() bool {
	return len(t.entries) == 0
}

// Visibility returns the current visibility mode.
func (t *Table) Visibility() Visibility {
	return t.visibility
}

// SetVisibility switches the current visibility mode. Definitions
// registered afterwards pick it up.
func (t *Table) SetVisibility(v Visibility) {
	t.visibility = v
}

// VisibilityOf returns the recorded visibility of a signature.
func (t *Table) VisibilityOf(sig Signature) (Visibility, bool) {
	v, ok := t.byName[sig]
	return v, ok
}
