package defs

import (
	"testing"
)

func TestDefineEffectRegistersWrappersSeparately(t *testing.T) {
	// pad(s, n = 1) expands to pad/2 plus a pad/1 forwarder; applying
	// the effect must produce two independent signatures.
	in := clause(5, param("s"), defaulted("n", intLit(1)))
	full, wrappers, ok := ExpandDefaults(nil, "m.cza", "pad", in)
	if !ok {
		t.Fatalf("ExpandDefaults failed")
	}

	table := New("m")
	table.SetVisibility(VisibilityProtected)
	Wrap("pad", 5, "m.cza", full, wrappers).Apply(table, nil)

	export := table.Drain(nil)
	if len(export.Entries) != 2 {
		t.Fatalf("drained %d entries, want 2 (full arity plus wrapper)", len(export.Entries))
	}

	arities := map[int]int{}
	for _, e := range export.Entries {
		if e.Name != "pad" {
			t.Errorf("entry name = %q, want pad", e.Name)
		}
		arities[e.Arity] = len(e.Clauses)
	}
	if arities[2] != 1 || arities[1] != 1 {
		t.Errorf("clause counts by arity = %v, want one clause each at arity 1 and 2", arities)
	}

	// Wrappers share the visibility in force when the effect applied.
	for _, sig := range []Signature{{Name: "pad", Arity: 2}, {Name: "pad", Arity: 1}} {
		found := false
		for _, s := range export.ProtectedAndCallbacks {
			if s == sig {
				found = true
			}
		}
		if !found {
			t.Errorf("%s missing from protected exports", sig)
		}
	}
}

func TestSetVisibilityEffect(t *testing.T) {
	table := New("m")

	SetVisibilityEffect{Line: 1, Visibility: VisibilityCallback}.Apply(table, nil)
	if got := table.Visibility(); got != VisibilityCallback {
		t.Errorf("Visibility() = %s after effect, want callback", got)
	}

	// A later definition effect picks the mode up.
	Wrap("on_cast", 3, "m.cza", clause(3, param("msg")), nil).Apply(table, nil)
	sig := Signature{Name: "on_cast", Arity: 1}
	if vis, _ := table.VisibilityOf(sig); vis != VisibilityCallback {
		t.Errorf("VisibilityOf(%s) = %s, want callback", sig, vis)
	}
}
