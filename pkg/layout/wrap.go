package layout

import (
	"strings"

	"codepdf/pkg/source"
)

// WrapText breaks text into rows no wider than maxWidth. Input lines are
// split on spaces and words are added greedily; a word that would overflow
// starts the next row. Blank input lines become empty rows. A word wider
// than maxWidth is never split; when it opens a line the row before it is
// emitted empty.
func WrapText(text string, maxWidth float64, m Metrics, f Font) []string {
	var rows []string
	for _, raw := range source.SplitLines(text) {
		if strings.TrimSpace(raw) == "" {
			rows = append(rows, "")
			continue
		}

		line := ""
		for _, w := range strings.Split(raw, " ") {
			candidate := strings.TrimSpace(line + " " + w)
			if m.StringWidth(candidate, f) <= maxWidth {
				line = candidate
				continue
			}
			rows = append(rows, line)
			line = w
		}
		if line != "" {
			rows = append(rows, line)
		}
	}
	return rows
}
