// core/seq/record.go
package seq

import (
	"errors"
	"io"
)

// Record is one parsed sequence. Qual is empty for FASTA records.
type Record struct {
	Name string
	Seq  string
	Qual string
}

// RecordReader is a lazy, single-pass record source. Read returns io.EOF
// after the last record.
type RecordReader interface {
	Read() (Record, error)
}

// RecordWriter serializes records one at a time.
type RecordWriter interface {
	Write(Record) error
}

// ReadAll drains r into a slice.
func ReadAll(r RecordReader) ([]Record, error) {
	var out []Record
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, err
		}
		out = append(out, rec)
	}
}

// WriteAll writes every record in order.
func WriteAll(w RecordWriter, recs []Record) error {
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
