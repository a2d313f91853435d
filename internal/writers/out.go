// internal/writers/out.go
package writers

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"bioseq-core/sniff"
)

// Create opens the operation output. "-" means stdout, which must not be
// closed by the caller's defer.
func Create(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// DefaultOutName derives an operation's output path from the input,
// preserving the input's format: "reads.fastq" plus tag "filter_ge50"
// yields "reads.filter_ge50.fastq". Conversion output swaps the format.
func DefaultOutName(input string, f sniff.Format, tag string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + tag + "." + f.String()
}

// ConvertOutName is the conversion default: the input path with its
// extension swapped for ".fasta".
func ConvertOutName(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + ".fasta"
}
