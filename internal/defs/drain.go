package defs

import (
	"github.com/cadenza-lang/cadenza/internal/diagnostics"
	"github.com/cadenza-lang/cadenza/internal/token"
)

// MethodEntry is one finalized dispatch target: the ordered clause
// sequence for a signature, ready for code generation.
type MethodEntry struct {
	Name    string
	Line    int // line of the first declaration
	Arity   int
	Clauses []Clause
}

// Export is the drained artifact of one module: the exported-name sets
// and the per-signature clause lists in source declaration order.
type Export struct {
	// Callbacks lists the callback signatures, reported separately.
	Callbacks []Signature
	// Exported is the union of public, protected and callback
	// signatures. Private signatures never appear.
	Exported []Signature
	// ProtectedAndCallbacks lists protected plus callback signatures.
	ProtectedAndCallbacks []Signature
	// Entries holds every registered signature (private included) with
	// clauses in declaration order, ordered by first declaration.
	Entries []MethodEntry
}

// Drain empties the table into its final export artifact and removes
// the reserved visibility state. It is a one-time, irreversible
// operation: draining an already-drained table is reported as a D003
// misuse warning and yields a zero Export.
func (t *Table) Drain(rep diagnostics.Reporter) Export {
	if t.drained {
		if rep != nil {
			rep.Report(diagnostics.NewWarning(
				diagnostics.WarnD003,
				token.Token{},
				"method table for module %s drained twice", t.module,
			))
		}
		return Export{}
	}
	t.drained = true

	out := Export{
		Callbacks:             t.callback,
		Exported:              make([]Signature, 0, len(t.public)+len(t.protected)+len(t.callback)),
		ProtectedAndCallbacks: make([]Signature, 0, len(t.protected)+len(t.callback)),
	}
	out.Exported = append(out.Exported, t.public...)
	out.Exported = append(out.Exported, t.protected...)
	out.Exported = append(out.Exported, t.callback...)
	out.ProtectedAndCallbacks = append(out.ProtectedAndCallbacks, t.protected...)
	out.ProtectedAndCallbacks = append(out.ProtectedAndCallbacks, t.callback...)

	out.Entries = make([]MethodEntry, 0, len(t.order))
	for _, sig := range t.order {
		e := t.entries[sig]
		// Stored order is newest-first; one reversal restores source order.
		clauses := make([]Clause, len(e.clauses))
		for i, c := range e.clauses {
			clauses[len(e.clauses)-1-i] = c
		}
		out.Entries = append(out.Entries, MethodEntry{
			Name:    sig.Name,
			Line:    e.line,
			Arity:   sig.Arity,
			Clauses: clauses,
		})
	}

	t.visibility = VisibilityPublic
	t.public = nil
	t.protected = nil
	t.callback = nil
	t.byName = make(map[Signature]Visibility)
	t.entries = make(map[Signature]*entry)
	t.order = nil

	return out
}

// Drained reports whether the table has already been drained.
func (t *Table) Drained() bool {
	return t.drained
}
