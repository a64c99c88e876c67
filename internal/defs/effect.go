package defs

import (
	"github.com/cadenza-lang/cadenza/internal/diagnostics"
)

// Effect is one suspended registration step. Method definitions must
// reflect only code paths actually taken, so registration is split in
// two phases: phase 1 evaluates the module body and emits an ordered
// effect list only for statements reached, phase 2 applies the effects
// to the table in that order. Effects are plain values; applying them
// is the only thing that mutates a table.
type Effect interface {
	Apply(t *Table, rep diagnostics.Reporter)
}

// DefineEffect registers one method definition: the full-arity clause
// plus the wrapper clauses synthesized for its defaulted parameters.
type DefineEffect struct {
	Name     string
	Line     int
	File     string
	Clause   Clause
	Wrappers []Clause
}

// Wrap suspends a definition into an effect to be applied against
// whichever module's table is active when phase 2 runs.
func Wrap(name string, line int, file string, clause Clause, wrappers []Clause) DefineEffect {
	return DefineEffect{Name: name, Line: line, File: file, Clause: clause, Wrappers: wrappers}
}

// Apply registers the full-arity method and then each wrapper as an
// independent, single-clause, lower-arity method under the same name.
// All of them take the table's current visibility mode.
func (e DefineEffect) Apply(t *Table, rep diagnostics.Reporter) {
	vis := t.Visibility()
	t.Register(rep, e.File, vis, Signature{Name: e.Name, Arity: e.Clause.Arity()}, e.Line, []Clause{e.Clause})
	for _, w := range e.Wrappers {
		t.Register(rep, e.File, vis, Signature{Name: e.Name, Arity: w.Arity()}, w.Line, []Clause{w})
	}
}

// SetVisibilityEffect switches the table's current visibility mode.
type SetVisibilityEffect struct {
	Line       int
	Visibility Visibility
}

func (e SetVisibilityEffect) Apply(t *Table, rep diagnostics.Reporter) {
	t.SetVisibility(e.Visibility)
}
