package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"single no terminator", "abc", []string{"abc"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
		{"bare cr", "a\rb", []string{"a", "b"}},
		{"blank lines kept", "a\n\n\nb", []string{"a", "", "", "b"}},
		{"form feed", "a\fb", []string{"a", "b"}},
		{"unicode separators", "a\u2028b\u0085c", []string{"a", "b", "c"}},
		{"lone newline", "\n", []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.in))
		})
	}
}

func TestDecode(t *testing.T) {
	text, enc, err := Decode([]byte("héllo"))
	require.NoError(t, err)
	assert.Equal(t, EncodingUTF8, enc)
	assert.Equal(t, "héllo", text)

	text, enc, err = Decode([]byte("\xef\xbb\xbfbom"))
	require.NoError(t, err)
	assert.Equal(t, EncodingUTF8, enc)
	assert.Equal(t, "bom", text)

	text, enc, err = Decode([]byte("caf\xe9 cr\xe8me"))
	require.NoError(t, err)
	assert.Equal(t, EncodingLatin1, enc)
	assert.Equal(t, "café crème", text)

	text, enc, err = Decode([]byte("x = '\xe9';\x00\n"))
	require.NoError(t, err, "Latin-1 accepts every byte, NUL included")
	assert.Equal(t, EncodingLatin1, enc)
	assert.Equal(t, "x = 'é';\x00\n", text)
}

func TestDecodeValidUTF8WithNulIsText(t *testing.T) {
	text, enc, err := Decode([]byte("a\x00b"))
	require.NoError(t, err)
	assert.Equal(t, EncodingUTF8, enc)
	assert.Equal(t, "a\x00b", text)
}

func TestLoad(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "src", "a.js"), []byte("const a = 1;\r\n\r\nexport default a;\n"), 0o644))

	f, err := Load(root, "src/a.js", nil)
	require.NoError(t, err)
	assert.Equal(t, "src/a.js", f.Path)
	assert.Equal(t, EncodingUTF8, f.Encoding)
	assert.Equal(t, []string{"const a = 1;", "", "export default a;"}, f.Lines)
}

func TestLoadErrors(t *testing.T) {
	root := t.TempDir()
	_, err := Load(root, "missing.js", nil)
	assert.Error(t, err)
}

func TestLoadLatin1WithNul(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "legacy.js"), []byte("// caf\xe9\nvar s = '\x00';\n"), 0o644))

	f, err := Load(root, "legacy.js", nil)
	require.NoError(t, err)
	assert.Equal(t, EncodingLatin1, f.Encoding)
	assert.Equal(t, []string{"// café", "var s = '\x00';"}, f.Lines)
}
