package fasta

import (
	"bytes"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"bioseq-core/seq"
)

func TestReaderYieldsRecords(t *testing.T) {
	r := NewReader(strings.NewReader(">seq1\nACGT\n>seq2 desc\nACG\nGT\n"))
	want := []seq.Record{
		{Name: "seq1", Seq: "ACGT"},
		{Name: "seq2", Seq: "ACGGT"},
	}
	got, err := seq.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestReaderMultiLineConcat(t *testing.T) {
	r := NewReader(strings.NewReader(">s\nAC\nGT\nTT\n"))
	rec, err := r.Read()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if rec.Seq != "ACGTTT" {
		t.Fatalf("seq = %q", rec.Seq)
	}
	if _, err := r.Read(); !errors.Is(err, io.EOF) {
		t.Fatalf("want EOF, got %v", err)
	}
}

func TestReaderEmptyInputIsEOF(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	if _, err := r.Read(); !errors.Is(err, io.EOF) {
		t.Fatalf("want EOF, got %v", err)
	}
	// Read past the end stays EOF.
	if _, err := r.Read(); !errors.Is(err, io.EOF) {
		t.Fatalf("want EOF again, got %v", err)
	}
}

func TestRoundTrip(t *testing.T) {
	const in = ">seq1\nACGT\n>seq2\nACGGT\n"
	first, err := seq.ReadAll(NewReader(strings.NewReader(in)))
	if err != nil {
		t.Fatalf("first read: %v", err)
	}

	var buf bytes.Buffer
	if err := seq.WriteAll(NewWriter(&buf), first); err != nil {
		t.Fatalf("write: %v", err)
	}
	second, err := seq.ReadAll(NewReader(&buf))
	if err != nil {
		t.Fatalf("second read: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("round trip changed records: %v vs %v", first, second)
	}
}

func TestRoundTripWithWrap(t *testing.T) {
	recs := []seq.Record{{Name: "s", Seq: strings.Repeat("ACGT", 30)}}
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Wrap = 7
	if err := seq.WriteAll(w, recs); err != nil {
		t.Fatalf("write: %v", err)
	}
	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")[1:] {
		if len(line) > 7 {
			t.Fatalf("line %q exceeds wrap width", line)
		}
	}
	got, err := seq.ReadAll(NewReader(&buf))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !reflect.DeepEqual(got, recs) {
		t.Fatalf("wrap changed content: %v", got)
	}
}

func TestWriterNoWrapSingleLine(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf).Write(seq.Record{Name: "x", Seq: "ACGT"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if buf.String() != ">x\nACGT\n" {
		t.Fatalf("output %q", buf.String())
	}
}
