package selector

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"codepdf/pkg/ignore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func selectDefault(t *testing.T, root string, opts Options) Selection {
	t.Helper()
	sel, err := Select(root, DefaultExcludedDirs(), DefaultRules().Include, opts, nil)
	require.NoError(t, err)
	return sel
}

func TestSelectScenario(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.JSON", strings.Repeat("{}\n", 10))
	writeFile(t, root, "b/node_modules/x.js", "module.exports = 1\n")
	writeFile(t, root, "b/c.md", strings.Repeat("x", 500))

	sel := selectDefault(t, root, Options{})
	assert.Equal(t, []string{"a.JSON", "b/c.md"}, sel.Files)
	assert.NoError(t, sel.Skipped)
}

func TestSelectRules(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{
		"Dockerfile",
		"docker-compose.yml",
		"services/api/.env.example",
		"services/api/src/server.js",
		"services/api/package.json",
		"services/api/README.md",
		"services/api/config.yaml",
		"services/api/.json",
		"services/api/main.go",
		"services/api/.env",
		"services/api/image.png",
		"services/api/Dockerfile.dev",
	} {
		writeFile(t, root, rel, "x\n")
	}

	sel := selectDefault(t, root, Options{})
	assert.Equal(t, []string{
		"docker-compose.yml",
		"Dockerfile",
		"services/api/.env.example",
		"services/api/config.yaml",
		"services/api/package.json",
		"services/api/README.md",
		"services/api/src/server.js",
	}, sel.Files)
}

func TestSelectExcludesEverySegment(t *testing.T) {
	root := t.TempDir()
	for _, dir := range DefaultExcludedDirs() {
		writeFile(t, root, "pkg/"+dir+"/deep/file.js", "x\n")
	}
	writeFile(t, root, "pkg/keep.js", "x\n")
	writeFile(t, root, "pkg/builder/keep.js", "x\n")

	sel := selectDefault(t, root, Options{})
	assert.Equal(t, []string{"pkg/builder/keep.js", "pkg/keep.js"}, sel.Files)
}

func TestSelectWithIgnore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "src/a.js", "x\n")
	writeFile(t, root, "src/a.test.js", "x\n")
	writeFile(t, root, "fixtures/data.json", "{}\n")

	m := ignore.New(nil)
	m.AddLines("*.test.js", "fixtures/")

	sel := selectDefault(t, root, Options{Ignore: m, Verbose: true})
	assert.Equal(t, []string{"src/a.js"}, sel.Files)
}

func TestSelectDeterministic(t *testing.T) {
	root := t.TempDir()
	for _, rel := range []string{"B.md", "a.md", "c/Z.js", "c/y.js", "C.json"} {
		writeFile(t, root, rel, "x\n")
	}

	first := selectDefault(t, root, Options{})
	second := selectDefault(t, root, Options{})
	assert.Equal(t, first.Files, second.Files)
	assert.Equal(t, []string{"a.md", "B.md", "C.json", "c/y.js", "c/Z.js"}, first.Files)
}

func TestSortPathsCaseTies(t *testing.T) {
	paths := []string{"b.md", "a.md", "A.md", "B.md"}
	SortPaths(paths)
	assert.Equal(t, []string{"A.md", "a.md", "B.md", "b.md"}, paths)
}

func TestSelectBrokenSymlinkIsSkipped(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := t.TempDir()
	writeFile(t, root, "ok.js", "x\n")
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.js"), filepath.Join(root, "dangling.js")))

	sel := selectDefault(t, root, Options{})
	assert.Equal(t, []string{"ok.js"}, sel.Files)
	assert.Error(t, sel.Skipped)
}

func TestSelectSkipsUnreadableDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores permission bits")
	}
	root := t.TempDir()
	writeFile(t, root, "readable.js", "x\n")
	writeFile(t, root, "locked/hidden.js", "x\n")
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	sel := selectDefault(t, root, Options{})
	assert.Equal(t, []string{"readable.js"}, sel.Files)
	require.Error(t, sel.Skipped)
	assert.ErrorIs(t, sel.Skipped, fs.ErrPermission)
}

func TestSelectSkipsBinaryFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "app.js", "console.log(1)\n")
	writeFile(t, root, "data.json", "\x89PNG\x00\x01\x02")
	writeFile(t, root, "legacy.md", "caf\xe9 cr\xe8me\n")

	sel := selectDefault(t, root, Options{})
	assert.Equal(t, []string{"app.js", "legacy.md"}, sel.Files)
	assert.ErrorIs(t, sel.Skipped, ErrBinary)
}

func TestLooksBinary(t *testing.T) {
	assert.False(t, looksBinary(nil))
	assert.False(t, looksBinary([]byte("plain text\n")))
	assert.True(t, looksBinary([]byte{'a', 0, 'b'}))
	assert.True(t, looksBinary([]byte{0x01, 0x02, 0x03, 'a'}))
	assert.False(t, looksBinary([]byte("na\xefve caf\xe9")))
}

func TestSelectRootErrors(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "file.js", "x\n")

	_, err := Select(filepath.Join(root, "nope"), nil, DefaultRules().Include, Options{}, nil)
	assert.Error(t, err)

	_, err = Select(filepath.Join(root, "file.js"), nil, DefaultRules().Include, Options{}, nil)
	assert.Error(t, err)
}

func TestRulesWithExtensions(t *testing.T) {
	r := DefaultRules().WithExtensions("go", ".TS", " ")
	assert.True(t, r.Include("cmd/main.go"))
	assert.True(t, r.Include("web/app.ts"))
	assert.False(t, r.Include("web/app.tsx"))
	assert.False(t, DefaultRules().Include("cmd/main.go"), "defaults are not modified")
}

func TestExtension(t *testing.T) {
	assert.Equal(t, ".json", extension("a.json"))
	assert.Equal(t, ".gz", extension("a.tar.gz"))
	assert.Equal(t, "", extension(".json"))
	assert.Equal(t, "", extension("Makefile"))
	assert.Equal(t, "", extension("trailing."))
}

func TestTree(t *testing.T) {
	got := Tree([]string{"Dockerfile", "services/api/server.js", "services/api/package.json", "README.md", "services/web/index.js"})
	assert.Equal(t, []string{
		"|-- services/",
		"|   |-- api/",
		"|   |   |-- package.json",
		"|   |   `-- server.js",
		"|   `-- web/",
		"|       `-- index.js",
		"|-- Dockerfile",
		"`-- README.md",
	}, got)
	assert.Empty(t, Tree(nil))
}
