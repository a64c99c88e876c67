package modules

import (
	"github.com/cadenza-lang/cadenza/internal/ast"
	"github.com/cadenza-lang/cadenza/internal/defs"
)

// Module is one compilation unit handed over by the parser: a module
// name, the originating file, and the parsed body statements.
type Module struct {
	Name string
	File string
	Body []ast.Statement
}

// Artifact is the final product of compiling one module: the drained
// export sets and ordered method entries, stamped with the compile
// session that produced them.
type Artifact struct {
	Module  string
	File    string
	Session string // compile session id, set by the compiler

	Callbacks             []defs.Signature
	Exported              []defs.Signature
	ProtectedAndCallbacks []defs.Signature
	Entries               []defs.MethodEntry
}

// Signatures returns every entry's signature, declaration-ordered.
func (a *Artifact) Signatures() []defs.Signature {
	sigs := make([]defs.Signature, len(a.Entries))
	for i, e := range a.Entries {
		sigs[i] = defs.Signature{Name: e.Name, Arity: e.Arity}
	}
	return sigs
}

// IsExported reports whether sig appears in the exported name list.
func (a *Artifact) IsExported(sig defs.Signature) bool {
	for _, s := range a.Exported {
		if s == sig {
			return true
		}
	}
	return false
}

// VisibilityOf reclassifies a drained signature from the export lists:
// callback and protected are listed explicitly, the rest of the
// exported set is public, everything else is private.
func (a *Artifact) VisibilityOf(sig defs.Signature) defs.Visibility {
	for _, s := range a.Callbacks {
		if s == sig {
			return defs.VisibilityCallback
		}
	}
	for _, s := range a.ProtectedAndCallbacks {
		if s == sig {
			return defs.VisibilityProtected
		}
	}
	if a.IsExported(sig) {
		return defs.VisibilityPublic
	}
	return defs.VisibilityPrivate
}
