package selector

import (
	"path"
	"strings"
)

// Predicate decides whether a slash-separated relative file path is included.
type Predicate func(relPath string) bool

// Rules is the include predicate: a file is included when its base name is one
// of Names, ends with one of Suffixes, or has one of Extensions.
type Rules struct {
	Names      []string // Exact base names, e.g. "Dockerfile".
	Suffixes   []string // Compound suffixes matched against the base name, e.g. ".env.example".
	Extensions []string // Simple extensions with leading dot, compared case-insensitively.
}

// DefaultRules returns the rule set for a Node/Docker style project.
func DefaultRules() Rules {
	return Rules{
		Names:      []string{"Dockerfile", "docker-compose.yml"},
		Suffixes:   []string{".env.example"},
		Extensions: []string{".js", ".json", ".md", ".yml", ".yaml"},
	}
}

// DefaultExcludedDirs returns the directory names that are never descended into.
func DefaultExcludedDirs() []string {
	return []string{"node_modules", ".git", "coverage", "dist", "build", ".next", ".venv", "venv"}
}

// WithExtensions returns a copy of r with the extra extensions appended.
// Extensions are normalized to a lower-case ".ext" form.
func (r Rules) WithExtensions(exts ...string) Rules {
	out := Rules{
		Names:      append([]string(nil), r.Names...),
		Suffixes:   append([]string(nil), r.Suffixes...),
		Extensions: append([]string(nil), r.Extensions...),
	}
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out.Extensions = append(out.Extensions, e)
	}
	return out
}

// Include implements Predicate.
func (r Rules) Include(relPath string) bool {
	name := path.Base(relPath)
	for _, n := range r.Names {
		if name == n {
			return true
		}
	}
	for _, s := range r.Suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	ext := strings.ToLower(extension(name))
	if ext == "" {
		return false
	}
	for _, e := range r.Extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}

// extension returns the final ".ext" of name. Dot files without a second dot
// (".json") and names ending in a dot have no extension.
func extension(name string) string {
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}
