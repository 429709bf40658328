package core

// streaming.go provides the reader wrappers applied to delimited input:
//
//   - skipBOM: removes a leading UTF-8 BOM (0xEF 0xBB 0xBF) from Windows exports
//   - CountingReader: tracks bytes read for the run summary
//
// Use wrapInput to apply both in the correct order.

import (
	"bufio"
	"bytes"
	"io"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// skipBOM returns a reader positioned after a leading UTF-8 BOM, if any.
// Inputs shorter than a BOM pass through untouched. The BOM is dropped
// whatever encoding the input is later decoded with, latin-1 included.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}

// CountingReader wraps an io.Reader to track bytes read.
type CountingReader struct {
	reader    io.Reader
	BytesRead int64
}

// NewCountingReader creates a counting reader.
func NewCountingReader(r io.Reader) *CountingReader {
	return &CountingReader{reader: r}
}

// Read implements io.Reader.
func (r *CountingReader) Read(p []byte) (int, error) {
	n, err := r.reader.Read(p)
	r.BytesRead += int64(n)
	return n, err
}

// wrapInput counts raw bytes from disk, then strips the BOM.
// Counting sits underneath so the total matches the file size.
func wrapInput(r io.Reader) (io.Reader, *CountingReader) {
	counter := NewCountingReader(r)
	return skipBOM(counter), counter
}
