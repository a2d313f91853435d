// core/fastq/reader.go
package fastq

import (
	"bufio"
	"io"
	"strings"

	"bioseq-core/seq"
)

// allow very long single-line sequences (64 MiB)
const maxLine = 64 * 1024 * 1024

// Phred+33 printable range.
const (
	qualMin = 33
	qualMax = 126
)

// Reader lazily yields records from input assumed to have passed Validate.
// Records are delimited purely by the 4-line grouping; no re-validation.
// Read returns io.EOF at a clean record boundary and ErrTruncatedRecord
// if the input ends mid-record.
type Reader struct {
	sc   *bufio.Scanner
	ln   int
	done bool
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

	var hdr string
	for {
		if !r.sc.Scan() {
			r.done = true
			if err := r.sc.Err(); err != nil {
				return seq.Record{}, err
			}
			return seq.Record{}, io.EOF
		}
		r.ln++
		hdr = strings.TrimSpace(r.sc.Text())
		if hdr != "" {
			break
		}
	}

	name := hdr
	if name[0] == '@' {
		name = name[1:]
	}
	if i := strings.IndexAny(name, " \t"); i >= 0 {
		name = name[:i]
	}

	var body [3]string
	for i := range body {
		if !r.sc.Scan() {
			r.done = true
			if err := r.sc.Err(); err != nil {
				return seq.Record{}, err
			}
			return seq.Record{}, seq.ErrAt(r.ln, seq.ErrTruncatedRecord, "%q", name)
		}
		r.ln++
		body[i] = strings.TrimSpace(r.sc.Text())
	}

	return seq.Record{Name: name, Seq: body[0], Qual: body[2]}, nil
}
