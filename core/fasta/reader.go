// core/fasta/reader.go
package fasta

import (
	"bufio"
	"io"
	"strings"

	"bioseq-core/seq"
)

// allow very long single-line sequences (64 MiB)
const maxLine = 64 * 1024 * 1024

// Reader lazily yields records from input assumed to have passed Validate.
// It does no re-validation, only the structural parsing needed to delimit
// records; multi-line sequences are concatenated. Read returns io.EOF
// after the last record.
type Reader struct {
	sc      *bufio.Scanner
	pending string
	started bool
	done    bool
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)
	return &Reader{sc: sc}
}

func (r *Reader) Read() (seq.Record, error) {
	if r.done {
		return seq.Record{}, io.EOF
	}
	if !r.started {
		r.started = true
		hdr, err := r.nextHeader()
		if err != nil {
			r.done = true
			return seq.Record{}, err
		}
		r.pending = hdr
	}

	name := r.pending
	var b strings.Builder
	for r.sc.Scan() {
		line := strings.TrimSpace(r.sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			r.pending = headerName(line)
			return seq.Record{Name: name, Seq: b.String()}, nil
		}
		b.WriteString(line)
	}
	r.done = true
	if err := r.sc.Err(); err != nil {
		return seq.Record{}, err
	}
	return seq.Record{Name: name, Seq: b.String()}, nil
}

// nextHeader skips to the first header line.
func (r *Reader) nextHeader() (string, error) {
	for r.sc.Scan() {
		line := strings.TrimSpace(r.sc.Text())
		if line == "" {
			continue
		}
		if line[0] == '>' {
			return headerName(line), nil
		}
	}
	if err := r.sc.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

// headerName extracts the first whitespace-delimited token after '>'.
func headerName(line string) string {
	rest := strings.TrimSpace(line[1:])
	if i := strings.IndexAny(rest, " \t"); i >= 0 {
		return rest[:i]
	}
	return rest
}
