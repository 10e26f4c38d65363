package selector

import (
	"bytes"
	"errors"
	"io"
	"os"
)

// ErrBinary marks a selected file whose content looks binary.
var ErrBinary = errors.New("content looks binary")

// sniffLen is how much of a file is inspected by looksBinary.
const sniffLen = 512

// isBinaryFile reads the start of the file at path and applies looksBinary.
func isBinaryFile(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	buffer := make([]byte, sniffLen)
	n, err := io.ReadFull(file, buffer)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return false, err
	}
	return looksBinary(buffer[:n]), nil
}

// looksBinary reports whether data is likely binary: it contains a NUL byte,
// or more than 30% of its bytes are neither printable ASCII, common
// whitespace, nor printable Latin-1.
func looksBinary(data []byte) bool {
	if len(data) > sniffLen {
		data = data[:sniffLen]
	}
	if len(data) == 0 {
		return false
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return true
	}

	nonPrintable := 0
	for _, b := range data {
		if !isPrintable(b) {
			nonPrintable++
		}
	}
	return float64(nonPrintable)/float64(len(data)) > 0.3
}

func isPrintable(b byte) bool {
	return (b >= 32 && b <= 126) || b >= 0xA0 || b == '\n' || b == '\r' || b == '\t' || b == '\f'
}
