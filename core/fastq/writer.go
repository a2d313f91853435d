// core/fastq/writer.go
package fastq

import (
	"fmt"
	"io"

	"bioseq-core/seq"
)

// Writer serializes records as the 4-line FASTQ form: "@"+name, sequence,
// "+", quality. No validation; callers supply well-formed records.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

func (w *Writer) Write(rec seq.Record) error {
	_, err := fmt.Fprintf(w.w, "@%s\n%s\n+\n%s\n", rec.Name, rec.Seq, rec.Qual)
	return err
}
