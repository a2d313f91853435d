// core/seq/source.go
package seq

import (
	"bytes"
	"io"
	"os"
)

// Source is a readable input that can be opened once per pass. Sniffing,
// validation, and reading are independent passes over the same data, so
// every adapter must replay from the start on each Open.
type Source interface {
	Open() (io.ReadCloser, error)
	Name() string
}

// FileSource reopens a file path for each pass.
type FileSource struct{ Path string }

func (s FileSource) Open() (io.ReadCloser, error) { return os.Open(s.Path) }
func (s FileSource) Name() string                 { return s.Path }

// ReaderSource adapts a non-seekable stream. The stream is slurped on the
// first Open so later passes replay the same bytes; nothing consumed by a
// sniff pass is lost.
type ReaderSource struct {
	Label string
	R     io.Reader

	buf  []byte
	read bool
}

func (s *ReaderSource) Open() (io.ReadCloser, error) {
	if !s.read {
		b, err := io.ReadAll(s.R)
		if err != nil {
			return nil, err
		}
		s.buf = b
		s.read = true
	}
	return io.NopCloser(bytes.NewReader(s.buf)), nil
}

func (s *ReaderSource) Name() string { return s.Label }
