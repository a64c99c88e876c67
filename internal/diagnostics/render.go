package diagnostics

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiYellow = "\033[33m"
	ansiRed    = "\033[31m"
	ansiReset  = "\033[0m"
)

// Render writes diagnostics to w, one per line, colorized when w is a
// terminal.
func Render(w io.Writer, diags []*DiagnosticError) {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	for _, d := range diags {
		if !color {
			fmt.Fprintf(w, "- %s\n", d.Error())
			continue
		}
		code := ansiYellow
		if d.Severity == SeverityError {
			code = ansiRed
		}
		fmt.Fprintf(w, "- %s%s%s\n", code, d.Error(), ansiReset)
	}
}
