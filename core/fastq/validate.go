// core/fastq/validate.go
package fastq

import (
	"bufio"
	"io"
	"strings"

	"bioseq-core/seq"
)

// Validate runs a strict single-pass check over FASTQ input. The 4-line
// record cadence (header / sequence / plus / quality) is enforced
// explicitly: clean end-of-file is accepted only at a record boundary.
// Fails on the first violation with an error wrapping a seq sentinel and
// carrying the 1-based line number.
func Validate(r io.Reader, ab seq.Alphabet) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	ln := 0
	next := func() (string, bool) {
		if sc.Scan() {
			ln++
			return sc.Text(), true
		}
		return "", false
	}

	names := map[string]int{}
	records := 0

	for {
		hdr, ok := next()
		if !ok {
			break
		}
		if strings.TrimSpace(hdr) == "" {
			return seq.ErrAt(ln, seq.ErrBlankLine, "")
		}
		if hdr[0] != '@' {
			return seq.ErrAt(ln, seq.ErrHeaderPrefix, "line starts with %q", hdr[0])
		}
		if strings.TrimSpace(hdr[1:]) == "" {
			return seq.ErrAt(ln, seq.ErrEmptyHeader, "")
		}
		name := strings.Fields(hdr[1:])[0]
		if first, ok := names[name]; ok {
			return seq.ErrAt(ln, seq.ErrDuplicateName, "%q first seen at line %d", name, first)
		}
		names[name] = ln

		raw, ok := next()
		if !ok {
			return seq.ErrAt(ln, seq.ErrTruncatedRecord, "%q ends before its sequence", name)
		}
		if raw == "" {
			return seq.ErrAt(ln, seq.ErrBlankLine, "in record %q", name)
		}
		s := strings.TrimSpace(raw)
		if s == "" {
			return seq.ErrAt(ln, seq.ErrEmptySequence, "in record %q", name)
		}
		if strings.ContainsAny(s, " \t") {
			return seq.ErrAt(ln, seq.ErrWhitespaceInSequence, "in record %q", name)
		}
		for i := 0; i < len(s); i++ {
			if !ab.Contains(s[i]) {
				return seq.ErrAt(ln, seq.ErrInvalidResidue, "%q in record %q", s[i], name)
			}
		}

		plus, ok := next()
		if !ok {
			return seq.ErrAt(ln, seq.ErrTruncatedRecord, "%q ends before its separator", name)
		}
		if strings.TrimSpace(plus) == "" {
			return seq.ErrAt(ln, seq.ErrBlankLine, "in record %q", name)
		}
		if plus[0] != '+' {
			return seq.ErrAt(ln, seq.ErrPlusPrefix, "in record %q", name)
		}

		rawQ, ok := next()
		if !ok {
			return seq.ErrAt(ln, seq.ErrTruncatedRecord, "%q ends before its quality", name)
		}
		if rawQ == "" {
			return seq.ErrAt(ln, seq.ErrBlankLine, "in record %q", name)
		}
		q := strings.TrimSpace(rawQ)
		if len(q) != len(s) {
			return seq.ErrAt(ln, seq.ErrLengthMismatch, "%q: sequence %d vs quality %d", name, len(s), len(q))
		}
		if strings.ContainsAny(q, " \t") {
			return seq.ErrAt(ln, seq.ErrWhitespaceInQuality, "in record %q", name)
		}
		for i := 0; i < len(q); i++ {
			if q[i] < qualMin || q[i] > qualMax {
				return seq.ErrAt(ln, seq.ErrQualityRange, "code point %d in record %q", q[i], name)
			}
		}

		records++
	}
	if err := sc.Err(); err != nil {
		return err
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
