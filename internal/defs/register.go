package defs

import (
	"github.com/cadenza-lang/cadenza/internal/diagnostics"
	"github.com/cadenza-lang/cadenza/internal/token"
)

// Register merges clauses for a signature into the table.
//
// The first registration fixes the signature's visibility. Later
// registrations with a different visibility raise a non-fatal D001
// warning through rep and keep the originally recorded visibility;
// registration proceeds either way.
//
// Storage is newest-registration-first: each registration prepends its
// clauses (in reverse) ahead of the stored ones, and Drain reverses the
// whole sequence once, so the exported order is source declaration
// order across any number of registrations.
func (t *Table) Register(rep diagnostics.Reporter, file string, vis Visibility, sig Signature, line int, clauses []Clause) {
	e, known := t.entries[sig]
	if !known {
		t.byName[sig] = vis
		switch vis {
		case VisibilityPublic:
			t.public = append(t.public, sig)
		case VisibilityProtected:
			t.protected = append(t.protected, sig)
		case VisibilityCallback:
			t.callback = append(t.callback, sig)
		case VisibilityPrivate:
			// Private signatures never join an export list.
		}
		e = &entry{line: line}
		t.entries[sig] = e
		t.order = append(t.order, sig)
	} else if prev := t.byName[sig]; prev != vis && rep != nil {
		rep.Report(diagnostics.NewWarning(
			diagnostics.WarnD001,
			token.At(line, 0),
			"%s changed visibility: already defined as %s",
			sig, prev,
		).WithFile(file))
	}

	for _, c := range clauses {
		e.clauses = append([]Clause{c}, e.clauses...)
	}
}
