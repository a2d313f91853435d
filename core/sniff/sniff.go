// core/sniff/sniff.go
package sniff

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"bioseq-core/seq"
)

// Format is the classified on-disk layout of a sequence file.
type Format int

const (
	Unknown Format = iota
	FASTA
	FASTQ
)

func (f Format) String() string {
	switch f {
	case FASTA:
		return "fasta"
	case FASTQ:
		return "fastq"
	}
	return "unknown"
}

// Detect scans past blank lines to the first non-blank line and classifies
// by its leading character ('>' FASTA, '@' FASTQ). The reader is consumed;
// callers reopen their seq.Source for the next pass.
func Detect(r io.Reader) (Format, error) {
	sc := bufio.NewScanner(r)
	ln := 0
	sawAny := false
	for sc.Scan() {
		ln++
		sawAny = true
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		switch line[0] {
		case '>':
			return FASTA, nil
		case '@':
			return FASTQ, nil
		}
		return Unknown, seq.ErrAt(ln, seq.ErrFormatUndetermined, "line starts with %q", line[0])
	}
	if err := sc.Err(); err != nil {
		return Unknown, err
	}
	if !sawAny {
		return Unknown, seq.ErrEmptyFile
	}
	return Unknown, seq.ErrFormatUndetermined
}

// DetectSource opens src for a sniff pass and closes it afterward.
func DetectSource(src seq.Source) (Format, error) {
	rc, err := src.Open()
	if err != nil {
		return Unknown, err
	}
	defer func() { _ = rc.Close() }()
	return Detect(rc)
}

// Typical extensions per format. ".txt" is accepted for FASTA because the
// original data sets shipped that way.
var (
	fastaExts = map[string]bool{".fasta": true, ".fa": true, ".fna": true, ".ffn": true, ".faa": true, ".txt": true}
	fastqExts = map[string]bool{".fastq": true, ".fq": true}
)

// ExtensionWarning reports a non-fatal mismatch between a path's extension
// and the sniffed format. Returns "" when the extension is typical (or the
// path has none, e.g. stdin).
func ExtensionWarning(path string, f Format) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return ""
	}
	switch f {
	case FASTA:
		if !fastaExts[ext] {
			return fmt.Sprintf("detected FASTA content but extension %q is uncommon for FASTA", ext)
		}
	case FASTQ:
		if !fastqExts[ext] {
			return fmt.Sprintf("detected FASTQ content but extension %q is uncommon for FASTQ", ext)
		}
	}
	return ""
}
