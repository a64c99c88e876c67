package diagnostics

import (
	"strings"
	"testing"

	"github.com/cadenza-lang/cadenza/internal/token"
)

func TestDiagnosticErrorFormat(t *testing.T) {
	tests := []struct {
		name string
		diag *DiagnosticError
		want string
	}{
		{
			name: "warning with file and line",
			diag: NewWarning(WarnD001, token.At(9, 0), "resize/1 changed visibility").WithFile("m.cza"),
			want: "m.cza:9: warning[D001]: resize/1 changed visibility",
		},
		{
			name: "error without position",
			diag: NewError(ErrM001, token.Token{}, "cannot read manifest"),
			want: "error[M001]: cannot read manifest",
		},
		{
			name: "error with line only",
			diag: NewError(ErrD002, token.At(7, 0), "default values must be trailing"),
			want: "7: error[D002]: default values must be trailing",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.diag.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCollectorSeverities(t *testing.T) {
	c := NewCollector()
	c.Report(NewWarning(WarnD001, token.Token{}, "w1"))
	c.Report(NewError(ErrD002, token.Token{}, "e1"))
	c.Report(NewWarning(WarnD003, token.Token{}, "w2"))

	if got := len(c.All()); got != 3 {
		t.Errorf("All() has %d diagnostics, want 3", got)
	}
	if got := len(c.Warnings()); got != 2 {
		t.Errorf("Warnings() has %d diagnostics, want 2", got)
	}
	if got := len(c.Errors()); got != 1 {
		t.Errorf("Errors() has %d diagnostics, want 1", got)
	}
	if !c.HasErrors() {
		t.Errorf("HasErrors() = false, want true")
	}

	empty := NewCollector()
	if empty.HasErrors() {
		t.Errorf("HasErrors() = true on an empty collector")
	}
}

func TestRenderPlain(t *testing.T) {
	var sb strings.Builder
	Render(&sb, []*DiagnosticError{
		NewWarning(WarnD001, token.At(9, 0), "w").WithFile("m.cza"),
		NewError(ErrD002, token.At(2, 0), "e").WithFile("m.cza"),
	})
	out := sb.String()
	if strings.Contains(out, "\033[") {
		t.Errorf("non-TTY output contains ANSI escapes: %q", out)
	}
	if !strings.Contains(out, "warning[D001]") || !strings.Contains(out, "error[D002]") {
		t.Errorf("rendered output missing diagnostics: %q", out)
	}
}
