// Package manifest loads parsed-module manifests. Parsing Cadenza
// source text is the front end's job; its output is interchanged as a
// YAML description of the module body, which is what the standalone
// compiler, the fixtures, and the tests consume.
package manifest

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cadenza-lang/cadenza/internal/diagnostics"
	"github.com/cadenza-lang/cadenza/internal/modules"
	"github.com/cadenza-lang/cadenza/internal/token"
)

// File is the root of one module manifest.
type File struct {
	Module string      `yaml:"module"`
	File   string      `yaml:"file"`
	Body   []Statement `yaml:"body"`
}

// Statement is one module-body statement. Exactly one field may be set.
type Statement struct {
	Visibility string       `yaml:"visibility,omitempty"`
	Fun        *Function    `yaml:"fun,omitempty"`
	If         *Conditional `yaml:"if,omitempty"`
	Line       int          `yaml:"line,omitempty"`
}

// Function is one method definition clause.
type Function struct {
	Name   string       `yaml:"name"`
	Line   int          `yaml:"line"`
	Params []Param      `yaml:"params"`
	Guard  *Expression  `yaml:"guard,omitempty"`
	Body   []Expression `yaml:"body,omitempty"`
}

// Param is one parameter: a plain name or a literal pattern, optionally
// with a default value.
type Param struct {
	Name    string      `yaml:"name,omitempty"`
	Pattern *Expression `yaml:"pattern,omitempty"`
	Default *Expression `yaml:"default,omitempty"`
}

// Conditional is an if/else over a constant condition.
type Conditional struct {
	Line int         `yaml:"line"`
	Cond Expression  `yaml:"cond"`
	Then []Statement `yaml:"then,omitempty"`
	Else []Statement `yaml:"else,omitempty"`
}

// Expression is a tagged union; exactly one field may be set.
type Expression struct {
	Int  *int64  `yaml:"int,omitempty"`
	Str  *string `yaml:"str,omitempty"`
	Bool *bool   `yaml:"bool,omitempty"`
	Ref  string  `yaml:"ref,omitempty"`
	Call *Call   `yaml:"call,omitempty"`
	Op   *Op     `yaml:"op,omitempty"`
}

// Call is a method call expression.
type Call struct {
	Fun  string       `yaml:"fun"`
	Args []Expression `yaml:"args,omitempty"`
}

// Op is a prefix (Left absent) or infix operation.
type Op struct {
	Operator string      `yaml:"operator"`
	Left     *Expression `yaml:"left,omitempty"`
	Right    *Expression `yaml:"right"`
}

// Load reads and decodes one manifest file into a parsed module. All
// problems are reported as diagnostics; a nil module means the manifest
// was unusable.
func Load(path string) (*modules.Module, []*diagnostics.DiagnosticError) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, []*diagnostics.DiagnosticError{
			diagnostics.NewError(diagnostics.ErrM001, token.Token{}, "cannot read manifest: %v", err).WithFile(path),
		}
	}
	return Parse(path, data)
}

// Parse decodes manifest bytes into a parsed module.
func Parse(path string, data []byte) (*modules.Module, []*diagnostics.DiagnosticError) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, []*diagnostics.DiagnosticError{
			diagnostics.NewError(diagnostics.ErrM001, token.Token{}, "cannot decode manifest: %v", err).WithFile(path),
		}
	}
	if f.Module == "" {
		return nil, []*diagnostics.DiagnosticError{
			diagnostics.NewError(diagnostics.ErrM002, token.Token{}, "manifest is missing a module name").WithFile(path),
		}
	}
	if f.File == "" {
		f.File = path
	}

	b := &builder{file: f.File}
	body := b.buildStatements(f.Body)
	if len(b.errs) > 0 {
		return nil, b.errs
	}
	return &modules.Module{Name: f.Module, File: f.File, Body: body}, nil
}
