package submit

import (
	"fmt"
	"io"
	"os"
	"strings"

	"codepdf/pkg/layout"

	"github.com/muesli/reflow/wordwrap"
	"go.uber.org/multierr"
	"golang.org/x/term"
)

// Summary reports what a run produced.
type Summary struct {
	Output  string             // Absolute path of the written PDF.
	Files   []layout.FileStats // Rendered files, in document order.
	Pages   int                // Pages in the written document.
	Skipped error              // Everything that was left out, combined with multierr.
}

// SkippedCount is the number of skipped entries.
func (s Summary) SkippedCount() int {
	return len(multierr.Errors(s.Skipped))
}

// ShrunkFiles returns the files rendered below baseSize.
func (s Summary) ShrunkFiles(baseSize int) []layout.FileStats {
	var out []layout.FileStats
	for _, f := range s.Files {
		if f.FontSize < baseSize {
			out = append(out, f)
		}
	}
	return out
}

// Print writes a human-readable report to w. When w is a terminal the report
// is wrapped to its width; the final "Wrote PDF:" line never is.
func (s Summary) Print(w io.Writer) {
	var b strings.Builder
	fmt.Fprintf(&b, "Rendered %d files on %d pages.\n", len(s.Files), s.Pages)

	base := layout.DefaultConfig().BaseSize
	if shrunk := s.ShrunkFiles(base); len(shrunk) > 0 {
		fmt.Fprintf(&b, "Shrunk to fit long lines (%d):\n", len(shrunk))
		for _, f := range shrunk {
			fmt.Fprintf(&b, "  %s at %dpt\n", f.Path, f.FontSize)
		}
	}
	if n := s.SkippedCount(); n > 0 {
		fmt.Fprintf(&b, "Skipped (%d):\n", n)
		for _, err := range multierr.Errors(s.Skipped) {
			fmt.Fprintf(&b, "  %v\n", err)
		}
	}
	report := b.String()
	if width, ok := terminalWidth(w); ok {
		report = wordwrap.String(report, width)
	}
	fmt.Fprint(w, report)
	if s.Output != "" {
		fmt.Fprintf(w, "Wrote PDF: %s\n", s.Output)
	}
}

// terminalWidth returns the column count of w when it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}
