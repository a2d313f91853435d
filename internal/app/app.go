// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"bioseq-core/fasta"
	"bioseq-core/fastq"
	"bioseq-core/ops"
	"bioseq-core/seq"
	"bioseq-core/sniff"
	"bioseq-core/stats"

	"bioseq/internal/alphacfg"
	"bioseq/internal/cli"
	"bioseq/internal/menu"
	"bioseq/internal/report"
	"bioseq/internal/version"
	"bioseq/internal/writers"
)

// Exit codes: 0 ok, 1 invalid input file, 2 usage error, 3 output/write
// failure, 130 canceled.
func RunContext(parent context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("bioseq")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return flushCode(outw, stderr)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "bioseq version %s\n", version.Version)
		return flushCode(outw, stderr)
	}

	if opts.NoColor {
		report.DisableColor()
	}

	var cfg alphacfg.Config
	if opts.AlphabetFile != "" {
		cfg, err = alphacfg.Load(opts.AlphabetFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	src, code := openSource(opts.Input, stdin, stderr)
	if code != 0 {
		return code
	}

	format, err := sniff.DetectSource(src)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error detecting file format: %v\n", err)
		return 1
	}
	if !opts.Quiet && opts.Input != "-" {
		if w := sniff.ExtensionWarning(opts.Input, format); w != "" {
			report.Warnf(stderr, "%s", w)
		}
	}

	if parent.Err() != nil {
		return 130
	}

	if err := validate(src, format, cfg); err != nil {
		_, _ = fmt.Fprintf(stderr, "invalid %s file: %v\n", format, err)
		return 1
	}

	summary, err := summarize(src, format)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error while reading sequences: %v\n", err)
		return 1
	}
	report.PrintSummary(outw, summary)

	if parent.Err() != nil {
		return 130
	}

	run := runner{src: src, format: format, opts: opts}
	if opts.Interactive {
		// Prompts must reach the terminal before each read.
		if code := flushCode(outw, stderr); code != 0 {
			return code
		}
		err = menu.Run(stdin, stdout, menu.Actions{
			LargestLen: summary.LargestLen,
			CanConvert: format == sniff.FASTQ,
			Sample:     run.sample,
			Filter:     run.filter,
			Convert:    run.convert,
		})
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		return flushCode(outw, stderr)
	}

	switch opts.Op {
	case cli.OpSample:
		dest, err := run.sample()
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		_, _ = fmt.Fprintf(outw, "Wrote random selection to: %s\n", dest)
	case cli.OpFilter:
		dest, kept, err := run.filter(opts.MinLen)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		_, _ = fmt.Fprintf(outw, "Wrote %d sequences (len >= %d) to: %s\n", kept, opts.MinLen, dest)
	case cli.OpConvert:
		if format != sniff.FASTQ {
			_, _ = fmt.Fprintln(stderr, "only FASTQ input can be converted to FASTA")
			return 2
		}
		dest, n, err := run.convert()
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		_, _ = fmt.Fprintf(outw, "Converted %d sequences FASTQ -> FASTA: %s\n", n, dest)
	}

	return flushCode(outw, stderr)
}

func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}

// openSource builds the per-pass source and applies the fail-fast checks
// for missing and empty files.
func openSource(input string, stdin io.Reader, stderr io.Writer) (seq.Source, int) {
	if input == "-" {
		return &seq.ReaderSource{Label: "-", R: stdin}, 0
	}
	st, err := os.Stat(input)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "error: input file not found: %s\n", input)
		return nil, 2
	}
	if st.Size() == 0 {
		_, _ = fmt.Fprintf(stderr, "error: %s: %v\n", input, seq.ErrEmptyFile)
		return nil, 1
	}
	return seq.FileSource{Path: input}, 0
}

func validate(src seq.Source, f sniff.Format, cfg alphacfg.Config) error {
	if f == sniff.FASTQ {
		return fastq.ValidateSource(src, cfg.Fastq())
	}
	return fasta.ValidateSource(src, cfg.Fasta())
}

func summarize(src seq.Source, f sniff.Format) (stats.Summary, error) {
	rc, err := src.Open()
	if err != nil {
		return stats.Summary{}, err
	}
	defer func() { _ = rc.Close() }()
	return stats.Summarize(newReader(f, rc))
}

func newReader(f sniff.Format, r io.Reader) seq.RecordReader {
	if f == sniff.FASTQ {
		return fastq.NewReader(r)
	}
	return fasta.NewReader(r)
}

// runner executes the operations over fresh read passes.
type runner struct {
	src    seq.Source
	format sniff.Format
	opts   cli.Options
}

func (r runner) outName(tag string, f sniff.Format) string {
	if r.opts.Output != "" {
		return r.opts.Output
	}
	if r.opts.Input == "-" {
		return "-"
	}
	if tag == "" {
		return writers.ConvertOutName(r.opts.Input)
	}
	return writers.DefaultOutName(r.opts.Input, f, tag)
}

func (r runner) newWriter(f sniff.Format, w io.Writer) seq.RecordWriter {
	if f == sniff.FASTQ {
		return fastq.NewWriter(w)
	}
	fw := fasta.NewWriter(w)
	fw.Wrap = r.opts.Wrap
	return fw
}

func (r runner) sample() (string, error) {
	rc, err := r.src.Open()
	if err != nil {
		return "", err
	}
	defer func() { _ = rc.Close() }()

	seed := r.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	chosen, err := ops.ExtractRandom(newReader(r.format, rc), r.opts.Count, rand.New(rand.NewSource(seed)))
	if err != nil {
		return "", err
	}

	dest := r.outName("extract", r.format)
	out, err := writers.Create(dest)
	if err != nil {
		return "", err
	}
	if err := seq.WriteAll(r.newWriter(r.format, out), chosen); err != nil {
		_ = out.Close()
		return "", err
	}
	return dest, out.Close()
}

func (r runner) filter(minLen int) (string, int, error) {
	rc, err := r.src.Open()
	if err != nil {
		return "", 0, err
	}
	defer func() { _ = rc.Close() }()

	dest := r.outName(fmt.Sprintf("filter_ge%d", minLen), r.format)
	out, err := writers.Create(dest)
	if err != nil {
		return "", 0, err
	}
	kept, err := ops.FilterMinLen(newReader(r.format, rc), r.newWriter(r.format, out), minLen)
	if err != nil {
		_ = out.Close()
		return "", 0, err
	}
	return dest, kept, out.Close()
}

func (r runner) convert() (string, int, error) {
	rc, err := r.src.Open()
	if err != nil {
		return "", 0, err
	}
	defer func() { _ = rc.Close() }()

	dest := r.outName("", sniff.FASTA)
	out, err := writers.Create(dest)
	if err != nil {
		return "", 0, err
	}
	n, err := ops.ConvertToFasta(fastq.NewReader(rc), r.newWriter(sniff.FASTA, out))
	if err != nil {
		_ = out.Close()
		return "", 0, err
	}
	return dest, n, out.Close()
}

// flushCode maps buffered-writer flush results onto exit codes; a broken
// pipe from a downstream `head` is success.
func flushCode(outw *bufio.Writer, stderr io.Writer) int {
	if err := outw.Flush(); writers.IsBrokenPipe(err) {
		return 0
	} else if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	return 0
}
