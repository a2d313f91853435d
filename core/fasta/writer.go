// core/fasta/writer.go
package fasta

import (
	"fmt"
	"io"

	"bioseq-core/seq"
)

// Writer serializes records as ">"+name, then the sequence. Wrap > 0
// breaks the sequence into lines of that width. No validation is
// performed; callers supply well-formed records.
type Writer struct {
	w    io.Writer
	Wrap int
}

func NewWriter(w io.Writer) *Writer { return &Writer{w: w} }

func (w *Writer) Write(rec seq.Record) error {
	if _, err := fmt.Fprintf(w.w, ">%s\n", rec.Name); err != nil {
		return err
	}
	s := rec.Seq
	if w.Wrap <= 0 || w.Wrap >= len(s) {
		_, err := fmt.Fprintf(w.w, "%s\n", s)
		return err
	}
	for off := 0; off < len(s); off += w.Wrap {
		end := off + w.Wrap
		if end > len(s) {
			end = len(s)
		}
		if _, err := fmt.Fprintf(w.w, "%s\n", s[off:end]); err != nil {
			return err
		}
	}
	return nil
}
