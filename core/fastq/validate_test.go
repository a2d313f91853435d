package fastq

import (
	"errors"
	"strings"
	"testing"

	"bioseq-core/seq"
)

func validate(in string) error {
	return Validate(strings.NewReader(in), seq.FastqAlphabet())
}

func TestValidateAccepts(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"single record", "@r1\nACGT\n+\n!!!!\n"},
		{"lowest quality code", "@r1\nACGT\n+\n!!!!\n"},
		{"highest quality code", "@r1\nAC\n+\n~~\n"},
		{"plus with free text", "@r1\nACGT\n+r1 extra\nIIII\n"},
		{"rna and ambiguity codes", "@r1\nacguN\n+\nIIIII\n"},
		{"two records", "@r1\nAC\n+\n!!\n@r2\nGGT\n+\nIII\n"},
		{"header with description", "@r1 lane=3\nAC\n+\n!!\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := validate(c.in); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
		line int
	}{
		{"blank header line", "\n@r1\nAC\n+\n!!\n", seq.ErrBlankLine, 1},
		{"blank sequence line", "@r1\n\n+\n!!\n", seq.ErrBlankLine, 2},
		{"blank plus line", "@r1\nAC\n\n!!\n", seq.ErrBlankLine, 3},
		{"blank quality line", "@r1\nAC\n+\n\n", seq.ErrBlankLine, 4},
		{"missing prefix", "r1\nAC\n+\n!!\n", seq.ErrHeaderPrefix, 1},
		{"fasta header", ">r1\nAC\n+\n!!\n", seq.ErrHeaderPrefix, 1},
		{"empty header", "@\nAC\n+\n!!\n", seq.ErrEmptyHeader, 1},
		{"duplicate name", "@r1\nAC\n+\n!!\n@r1\nGG\n+\nII\n", seq.ErrDuplicateName, 5},
		{"whitespace in sequence", "@r1\nA C\n+\n!!!\n", seq.ErrWhitespaceInSequence, 2},
		{"whitespace-only sequence", "@r1\n \n+\n!!\n", seq.ErrEmptySequence, 2},
		{"invalid residue", "@r1\nACXT\n+\n!!!!\n", seq.ErrInvalidResidue, 2},
		{"bad plus line", "@r1\nAC\n*\n!!\n", seq.ErrPlusPrefix, 3},
		{"length mismatch", "@r1\nACGT\n+\n!!!\n", seq.ErrLengthMismatch, 4},
		{"quality out of range high", "@r1\nAC\n+\n!\x7f\n", seq.ErrQualityRange, 4},
		{"quality tab is whitespace", "@r1\nACG\n+\n!\t!\n", seq.ErrWhitespaceInQuality, 4},
		{"truncated after header", "@r1\n", seq.ErrTruncatedRecord, 1},
		{"truncated after sequence", "@r1\nAC\n", seq.ErrTruncatedRecord, 2},
		{"truncated after plus", "@r1\nAC\n+\n", seq.ErrTruncatedRecord, 3},
		{"empty input", "", seq.ErrNoRecords, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := validate(c.in)
			if !errors.Is(err, c.want) {
				t.Fatalf("err = %v, want %v", err, c.want)
			}
			if got := seq.Line(err); got != c.line {
				t.Fatalf("line = %d, want %d", got, c.line)
			}
		})
	}
}
