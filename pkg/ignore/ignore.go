// Package ignore matches slash-separated relative paths against
// gitignore-style patterns loaded from ignore files.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// FileName is the per-project ignore file looked up in the project root.
const FileName = ".codepdfignore"

// Pattern is one compiled ignore line.
type Pattern struct {
	Regexp  *regexp.Regexp // Compiled form of the line.
	Negate  bool           // Line started with '!'.
	DirOnly bool           // Line ended with '/'; matches directories and their contents only.
	Source  string         // File the line came from, empty for inline patterns.
	LineNo  int            // Line number in the source (1-based).
	Line    string         // Original pattern line.
}

// Matcher holds an ordered list of patterns; the last matching pattern wins.
type Matcher struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// New returns an empty Matcher. A nil logger is replaced by a no-op logger.
func New(logger *zap.Logger) *Matcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Matcher{logger: logger}
}

// Load compiles every existing file in paths, in order. Empty paths and
// missing files are skipped; any other read error is returned.
func Load(logger *zap.Logger, paths ...string) (*Matcher, error) {
	m := New(logger)
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := m.AddFile(p); err != nil {
			return nil, err
		}
	}
	m.logger.Debug("Finished loading ignore files", zap.Int("totalPatterns", len(m.patterns)))
	return m, nil
}

// Len reports the number of compiled patterns.
func (m *Matcher) Len() int {
	return len(m.patterns)
}

// AddLines compiles inline pattern lines.
func (m *Matcher) AddLines(lines ...string) {
	m.addLines("", lines)
}

// AddFile reads an ignore file and compiles its lines. A missing file is not an error.
func (m *Matcher) AddFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			m.logger.Debug("Ignore file does not exist and will be skipped", zap.String("filePath", path))
			return nil
		}
		m.logger.Error("Failed to read ignore file", zap.String("filePath", path), zap.Error(err))
		return fmt.Errorf("failed to read ignore file %s: %w", path, err)
	}

	lines := strings.Split(strings.ReplaceAll(string(content), "\r\n", "\n"), "\n")
	before := len(m.patterns)
	m.addLines(path, lines)
	m.logger.Debug("Compiled ignore patterns from file",
		zap.String("filePath", path),
		zap.Int("patternCount", len(m.patterns)-before))
	return nil
}

func (m *Matcher) addLines(source string, lines []string) {
	for i, line := range lines {
		p := parsePatternLine(line)
		if p == nil {
			continue
		}
		p.Source = source
		p.LineNo = i + 1
		m.patterns = append(m.patterns, p)
		m.logger.Debug("Compiled ignore pattern",
			zap.String("source", source),
			zap.Int("lineNo", p.LineNo),
			zap.String("pattern", p.Line),
			zap.Bool("negate", p.Negate))
	}
}

// Match reports whether the relative path is ignored. isDir marks directory
// entries, which is what DirOnly patterns require.
func (m *Matcher) Match(path string, isDir bool) bool {
	matched, _ := m.MatchWithPattern(path, isDir)
	return matched
}

// MatchWithPattern is Match that also returns the deciding pattern, if any.
func (m *Matcher) MatchWithPattern(path string, isDir bool) (bool, *Pattern) {
	if m == nil || len(m.patterns) == 0 {
		return false, nil
	}
	normalized := strings.TrimSuffix(filepath.ToSlash(path), "/")
	if isDir {
		normalized += "/"
	}

	matched := false
	var decided *Pattern
	for _, p := range m.patterns {
		if p.Regexp.MatchString(normalized) {
			matched = !p.Negate
			decided = p
		}
	}
	return matched, decided
}

// parsePatternLine compiles one ignore line. Blank lines and comments yield nil.
func parsePatternLine(line string) *Pattern {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil
	}

	p := &Pattern{Line: line}
	if strings.HasPrefix(trimmed, "!") {
		p.Negate = true
		trimmed = trimmed[1:]
	} else if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}
	if strings.HasSuffix(trimmed, "/") {
		p.DirOnly = true
		trimmed = strings.TrimRight(trimmed, "/")
	}
	if trimmed == "" {
		return nil
	}

	// A slash anywhere but the end anchors the pattern to the root.
	anchored := strings.Contains(trimmed, "/")
	trimmed = strings.TrimPrefix(trimmed, "/")

	var expr strings.Builder
	if anchored {
		expr.WriteString("^")
	} else {
		expr.WriteString("^(|.*/)")
	}
	expr.WriteString(globToRegex(trimmed))
	if p.DirOnly {
		expr.WriteString("/.*$")
	} else {
		expr.WriteString("(/.*)?$")
	}

	re, err := regexp.Compile(expr.String())
	if err != nil {
		return nil
	}
	p.Regexp = re
	return p
}

// globToRegex converts '**', '*' and '?' wildcards and quotes everything else.
func globToRegex(glob string) string {
	var b strings.Builder
	for i := 0; i < len(glob); i++ {
		rest := glob[i:]
		switch {
		case strings.HasPrefix(rest, "**/"):
			b.WriteString("(.*/)?")
			i += 2
		case rest == "/**":
			b.WriteString("(/.*)?")
			i += 2
		case strings.HasPrefix(rest, "**"):
			b.WriteString(".*")
			i++
		case glob[i] == '*':
			b.WriteString("[^/]*")
		case glob[i] == '?':
			b.WriteString("[^/]")
		default:
			b.WriteString(regexp.QuoteMeta(glob[i : i+1]))
		}
	}
	return b.String()
}
