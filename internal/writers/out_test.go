package writers

import (
	"testing"

	"bioseq-core/sniff"
)

func TestDefaultOutName(t *testing.T) {
	cases := []struct {
		input, tag string
		f          sniff.Format
		want       string
	}{
		{"reads.fastq", "extract", sniff.FASTQ, "reads.extract.fastq"},
		{"genome.fa", "filter_ge50", sniff.FASTA, "genome.filter_ge50.fasta"},
		{"noext", "extract", sniff.FASTA, "noext.extract.fasta"},
		{"dir.v2/noext", "extract", sniff.FASTA, "dir.v2/noext.extract.fasta"},
	}
	for _, c := range cases {
		if got := DefaultOutName(c.input, c.f, c.tag); got != c.want {
			t.Fatalf("DefaultOutName(%q,%v,%q) = %q, want %q", c.input, c.f, c.tag, got, c.want)
		}
	}
}

func TestConvertOutName(t *testing.T) {
	if got := ConvertOutName("reads.fastq"); got != "reads.fasta" {
		t.Fatalf("ConvertOutName = %q", got)
	}
	if got := ConvertOutName("noext"); got != "noext.fasta" {
		t.Fatalf("ConvertOutName = %q", got)
	}
}
