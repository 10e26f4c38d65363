package ignore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchBasename(t *testing.T) {
	m := New(nil)
	m.AddLines("*.log", "# comment", "", "secret.json")

	assert.True(t, m.Match("app.log", false))
	assert.True(t, m.Match("deep/dir/app.log", false))
	assert.True(t, m.Match("config/secret.json", false))
	assert.False(t, m.Match("app.js", false))
	assert.False(t, m.Match("logs/app.logx", false))
	assert.Equal(t, 2, m.Len())
}

func TestMatchDirOnly(t *testing.T) {
	m := New(nil)
	m.AddLines("fixtures/")

	assert.True(t, m.Match("fixtures", true))
	assert.True(t, m.Match("test/fixtures", true))
	assert.True(t, m.Match("test/fixtures/a.json", false))
	assert.False(t, m.Match("fixtures", false), "a file named like a dir-only pattern is kept")
}

func TestMatchAnchored(t *testing.T) {
	m := New(nil)
	m.AddLines("/README.md", "docs/internal/*.md")

	assert.True(t, m.Match("README.md", false))
	assert.False(t, m.Match("sub/README.md", false))
	assert.True(t, m.Match("docs/internal/notes.md", false))
	assert.False(t, m.Match("docs/internal/deep/notes.md", false))
	assert.False(t, m.Match("other/docs/internal/notes.md", false))
}

func TestMatchDoubleStar(t *testing.T) {
	m := New(nil)
	m.AddLines("**/generated/**", "scripts/**/tmp.js")

	assert.True(t, m.Match("generated/a.js", false))
	assert.True(t, m.Match("src/generated/x/y.js", false))
	assert.True(t, m.Match("scripts/tmp.js", false))
	assert.True(t, m.Match("scripts/a/b/tmp.js", false))
	assert.False(t, m.Match("scripts/a/b/keep.js", false))
}

func TestNegationLastMatchWins(t *testing.T) {
	m := New(nil)
	m.AddLines("*.md", "!CHANGELOG.md")

	matched, p := m.MatchWithPattern("CHANGELOG.md", false)
	assert.False(t, matched)
	require.NotNil(t, p)
	assert.True(t, p.Negate)
	assert.Equal(t, 2, p.LineNo)

	assert.True(t, m.Match("NOTES.md", false))
}

func TestEscapedLiteralHash(t *testing.T) {
	m := New(nil)
	m.AddLines(`\#notes.md`)
	assert.True(t, m.Match("#notes.md", false))
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	global := filepath.Join(dir, "global")
	local := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(global, []byte("*.md\r\n"), 0o644))
	require.NoError(t, os.WriteFile(local, []byte("!keep.md\n"), 0o644))

	m, err := Load(nil, global, "", filepath.Join(dir, "missing"), local)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Len())
	assert.True(t, m.Match("drop.md", false))
	assert.False(t, m.Match("keep.md", false))

	_, p := m.MatchWithPattern("keep.md", false)
	require.NotNil(t, p)
	assert.Equal(t, local, p.Source)
}

func TestNilMatcher(t *testing.T) {
	var m *Matcher
	assert.False(t, m.Match("anything", false))
}
