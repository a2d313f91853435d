// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"bioseq/internal/cliutil"
	"bioseq/internal/version"

	"bioseq-core/ops"
)

// Operations selectable with --op.
const (
	OpStats   = "stats"
	OpSample  = "sample"
	OpFilter  = "filter"
	OpConvert = "convert"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input / output
	Input  string
	Output string

	// Operation
	Op     string
	MinLen int
	Count  int
	Seed   int64
	Wrap   int

	// Configuration
	AlphabetFile string

	// Misc
	Interactive bool
	Quiet       bool
	NoColor     bool
	Version     bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: FASTA/FASTQ validation, statistics, and operations

Version: %s

Usage:
  %s [flags] <input | ->

The input is sniffed, validated, and summarized; --op (or --interactive)
then runs an operation on the parsed records.

`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options

	fs.StringVar(&opt.Input, "input", "", "input FASTA/FASTQ file, '-' for stdin [*]")
	fs.StringVar(&opt.Input, "i", "", "alias of --input")
	fs.StringVar(&opt.Output, "output", "", "output path for operations ('-' = stdout, default derived from input)")
	fs.StringVar(&opt.Output, "o", "", "alias of --output")

	fs.StringVar(&opt.Op, "op", OpStats, "operation: stats | sample | filter | convert [stats]")
	fs.IntVar(&opt.MinLen, "min-length", 0, "minimum sequence length kept by --op filter [0]")
	fs.IntVar(&opt.Count, "count", ops.DefaultSampleSize, "records drawn by --op sample [25]")
	fs.IntVar(&opt.Count, "k", ops.DefaultSampleSize, "alias of --count")
	fs.Int64Var(&opt.Seed, "seed", 0, "sampling seed (0 = time-based) [0]")
	fs.IntVar(&opt.Wrap, "wrap", 0, "wrap FASTA output at N columns (0 = no wrap) [0]")

	fs.StringVar(&opt.AlphabetFile, "alphabets", "", "YAML file overriding residue alphabets")

	fs.BoolVar(&opt.Interactive, "interactive", false, "offer the operations menu after the report [false]")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&opt.NoColor, "no-color", false, "disable ANSI colors in the report [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&opt.Version, "v", false, "alias of --version")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	pos, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	if len(pos) > 0 {
		if opt.Input != "" {
			return opt, errors.New("--input conflicts with a positional input")
		}
		if len(pos) > 1 {
			return opt, fmt.Errorf("expected one input, got %d", len(pos))
		}
		opt.Input = pos[0]
	}
	return opt, Validate(&opt)
}

// Validate runs the shared post-parse checks.
func Validate(o *Options) error {
	if o.Version {
		return nil
	}
	if o.Input == "" {
		return errors.New("an input file (or '-') is required")
	}
	switch o.Op {
	case OpStats, OpSample, OpFilter, OpConvert:
	default:
		return fmt.Errorf("unknown --op %q (stats | sample | filter | convert)", o.Op)
	}
	if o.MinLen < 0 {
		return errors.New("--min-length must be >= 0")
	}
	if o.Count <= 0 {
		return errors.New("--count must be > 0")
	}
	if o.Wrap < 0 {
		return errors.New("--wrap must be >= 0")
	}
	if o.Interactive && o.Op != OpStats {
		return errors.New("--interactive conflicts with --op")
	}
	return nil
}
