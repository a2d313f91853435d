// core/fasta/validate.go
package fasta

import (
	"bufio"
	"io"
	"strings"

	"bioseq-core/seq"
)

// Validate runs a strict single-pass structural check over FASTA input.
// It fails on the first violation with an error wrapping one of the
// seq sentinels and carrying the 1-based line number.
//
// Blank-line policy: blank lines are tolerated between records (leading
// blanks, and a blank after a record that already has sequence closes
// that record); a blank between a header and its first sequence line is
// an error, as is sequence data after a closing blank with no new header.
func Validate(r io.Reader, ab seq.Alphabet) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	var (
		ln       int
		names    = map[string]int{}
		records  int
		inRecord bool
		seqLen   int
		curName  string
	)

	for sc.Scan() {
		ln++
		line := sc.Text()

		if strings.TrimSpace(line) == "" {
			if inRecord && seqLen == 0 {
				return seq.ErrAt(ln, seq.ErrBlankLine, "blank line splits %q from its sequence", curName)
			}
			inRecord = false
			continue
		}

		if line[0] == '>' {
			if strings.TrimSpace(line[1:]) == "" {
				return seq.ErrAt(ln, seq.ErrEmptyHeader, "")
			}
			name := strings.Fields(line[1:])[0]
			if first, ok := names[name]; ok {
				return seq.ErrAt(ln, seq.ErrDuplicateName, "%q first seen at line %d", name, first)
			}
			if inRecord && seqLen == 0 {
				return seq.ErrAt(ln, seq.ErrEmptyRecord, "%q has no sequence", curName)
			}
			names[name] = ln
			records++
			inRecord = true
			seqLen = 0
			curName = name
			continue
		}

		if !inRecord {
			return seq.ErrAt(ln, seq.ErrUnexpectedSequence, "")
		}
		if strings.ContainsAny(line, " \t") {
			return seq.ErrAt(ln, seq.ErrWhitespaceInSequence, "in %q", curName)
		}
		for i := 0; i < len(line); i++ {
			if !ab.Contains(line[i]) {
				return seq.ErrAt(ln, seq.ErrInvalidResidue, "%q in %q", line[i], curName)
			}
		}
		seqLen += len(line)
	}
	if err := sc.Err(); err != nil {
		return err
	}

	if inRecord && seqLen == 0 {
		return seq.ErrAt(ln, seq.ErrEmptyRecord, "%q has no sequence", curName)
	}
	if records == 0 {
		return seq.ErrAt(max(ln, 1), seq.ErrNoRecords, "")
	}
	return nil
}

// ValidateSource opens src for a validation pass and closes it afterward.
func ValidateSource(src seq.Source, ab seq.Alphabet) error {
	rc, err := src.Open()
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	return Validate(rc, ab)
}
