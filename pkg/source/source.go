// Package source reads project files as text for rendering.
//
// Content is decoded as UTF-8; files that are not valid UTF-8 are decoded as
// ISO-8859-1 instead, whole file at a time.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
)

// Encoding names reported in File.Encoding.
const (
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin-1"
)

const utf8BOM = "\uFEFF"

// File is one source file ready for layout.
type File struct {
	Path     string   // Slash-separated path relative to the project root.
	Lines    []string // Content split on line boundaries, terminators removed.
	Encoding string   // EncodingUTF8 or EncodingLatin1.
}

// Load reads root/relPath and decodes it into a File.
func Load(root, relPath string, logger *zap.Logger) (File, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fullPath := filepath.Join(root, filepath.FromSlash(relPath))
	text, enc, err := ReadText(fullPath)
	if err != nil {
		logger.Warn("Failed to load source file", zap.String("filePath", relPath), zap.Error(err))
		return File{}, err
	}
	if enc != EncodingUTF8 {
		logger.Debug("Decoded file with fallback encoding",
			zap.String("filePath", relPath),
			zap.String("encoding", enc))
	}

	f := File{Path: relPath, Lines: SplitLines(text), Encoding: enc}
	logger.Debug("Loaded source file",
		zap.String("filePath", relPath),
		zap.Int("lines", len(f.Lines)))
	return f, nil
}

// ReadText reads the file at path and decodes it, returning the text and the
// encoding that was used.
func ReadText(path string) (string, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("error reading file %s: %w", path, err)
	}
	text, enc, err := Decode(data)
	if err != nil {
		return "", "", fmt.Errorf("cannot decode %s: %w", path, err)
	}
	return text, enc, nil
}

// Decode converts raw bytes to text, trying UTF-8 first and ISO-8859-1 second.
// A leading UTF-8 byte order mark is dropped.
func Decode(data []byte) (string, string, error) {
	if utf8.Valid(data) {
		return strings.TrimPrefix(string(data), utf8BOM), EncodingUTF8, nil
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", "", fmt.Errorf("latin-1 decode: %w", err)
	}
	return string(decoded), EncodingLatin1, nil
}

// SplitLines splits text on line boundaries and drops the terminators. Besides
// "\n", "\r\n" and "\r" it recognizes the vertical tab, form feed, the
// information separators U+001C..U+001E, NEL, and U+2028/U+2029. A trailing
// terminator does not produce an empty final line; empty text has no lines.
func SplitLines(text string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch r {
		case '\r':
			lines = append(lines, text[start:i])
			if i+1 < len(text) && text[i+1] == '\n' {
				size++
			}
			start = i + size
		case '\n', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
			lines = append(lines, text[start:i])
			start = i + size
		}
		i += size
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}
	return lines
}
