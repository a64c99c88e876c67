package diagnostics

import (
	"fmt"

	"github.com/cadenza-lang/cadenza/internal/token"
)

// Severity classifies a diagnostic. Nothing in this compiler slice is
// fatal: errors mark definitions that were skipped, warnings mark
// anomalies that were resolved with a deterministic fallback.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

// Diagnostic codes. D-codes come from the definition subsystem,
// M-codes from manifest loading.
const (
	// WarnD001: a signature was redeclared with a different visibility.
	// The originally recorded visibility wins.
	WarnD001 = "D001"
	// ErrD002: defaulted parameters interleaved with required ones.
	// Defaults must form a contiguous trailing run.
	ErrD002 = "D002"
	// WarnD003: Drain called on an already-drained table.
	WarnD003 = "D003"
	// ErrD004: a module body statement the evaluator does not understand.
	ErrD004 = "D004"
	// ErrM001: manifest could not be decoded.
	ErrM001 = "M001"
	// ErrM002: manifest contents are invalid (unknown visibility, missing name).
	ErrM002 = "M002"
)

// DiagnosticError is a single diagnostic with a stable code and the
// source position it refers to.
type DiagnosticError struct {
	Code     string
	Severity Severity
	Token    token.Token
	File     string
	Message  string
}

func (d *DiagnosticError) Error() string {
	pos := ""
	if d.File != "" {
		pos = d.File + ":"
	}
	if d.Token.Line > 0 {
		pos += fmt.Sprintf("%d:", d.Token.Line)
	}
	label := "warning"
	if d.Severity == SeverityError {
		label = "error"
	}
	if pos != "" {
		return fmt.Sprintf("%s %s[%s]: %s", pos, label, d.Code, d.Message)
	}
	return fmt.Sprintf("%s[%s]: %s", label, d.Code, d.Message)
}

// NewError builds an error-severity diagnostic.
func NewError(code string, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:     code,
		Severity: SeverityError,
		Token:    tok,
		Message:  fmt.Sprintf(format, args...),
	}
}

// NewWarning builds a warning-severity diagnostic.
func NewWarning(code string, tok token.Token, format string, args ...interface{}) *DiagnosticError {
	return &DiagnosticError{
		Code:     code,
		Severity: SeverityWarning,
		Token:    tok,
		Message:  fmt.Sprintf(format, args...),
	}
}

// WithFile returns a copy of the diagnostic carrying the originating file.
func (d *DiagnosticError) WithFile(file string) *DiagnosticError {
	c := *d
	c.File = file
	return &c
}

// Reporter is the sink the definition subsystem emits diagnostics to.
// Conflicts are surfaced immediately at the point of registration,
// never batched.
type Reporter interface {
	Report(d *DiagnosticError)
}

// Collector is the default Reporter: an append-only list.
type Collector struct {
	diags []*DiagnosticError
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Report(d *DiagnosticError) {
	c.diags = append(c.diags, d)
}

// All returns every collected diagnostic in report order.
func (c *Collector) All() []*DiagnosticError {
	return c.diags
}

// Warnings returns only the warning-severity diagnostics.
func (c *Collector) Warnings() []*DiagnosticError {
	var out []*DiagnosticError
	for _, d := range c.diags {
		if d.Severity == SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}

// Errors returns only the error-severity diagnostics.
func (c *Collector) Errors() []*DiagnosticError {
	var out []*DiagnosticError
	for _, d := range c.diags {
		if d.Severity == SeverityError {
			out = append(out, d)
		}
	}
	return out
}

// HasErrors reports whether any error-severity diagnostic was collected.
func (c *Collector) HasErrors() bool {
	for _, d := range c.diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
