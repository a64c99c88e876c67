package defs

import (
	"github.com/cadenza-lang/cadenza/internal/config"
)

// Visibility is the export classification of a signature. It is fixed
// by the first registered clause; later clauses must agree.
type Visibility int

const (
	VisibilityPublic Visibility = iota
	VisibilityProtected
	VisibilityCallback
	VisibilityPrivate
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return config.VisibilityPublicName
	case VisibilityProtected:
		return config.VisibilityProtectedName
	case VisibilityCallback:
		return config.VisibilityCallbackName
	case VisibilityPrivate:
		return config.VisibilityPrivateName
	}
	return "unknown"
}

// Exported reports whether signatures with this visibility appear in
// the drained export lists. Callback methods are exported alongside
// protected ones but tracked separately for reporting.
func (v Visibility) Exported() bool {
	return v != VisibilityPrivate
}

// ParseVisibility maps a visibility mode name to its value.
func ParseVisibility(name string) (Visibility, bool) {
	switch name {
	case config.VisibilityPublicName:
		return VisibilityPublic, true
	case config.VisibilityProtectedName:
		return VisibilityProtected, true
	case config.VisibilityCallbackName:
		return VisibilityCallback, true
	case config.VisibilityPrivateName:
		return VisibilityPrivate, true
	}
	return VisibilityPublic, false
}
