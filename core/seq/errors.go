// core/seq/errors.go
package seq

import (
	"errors"
	"fmt"
)

// Validation and sniffing failures. All are fatal to the current pass;
// validators wrap them in a LineError carrying the 1-based line number.
var (
	ErrFormatUndetermined   = errors.New("unable to determine format (expected FASTA or FASTQ)")
	ErrEmptyFile            = errors.New("file is empty")
	ErrBlankLine            = errors.New("blank line inside record")
	ErrEmptyHeader          = errors.New("header has no name")
	ErrDuplicateName        = errors.New("duplicate sequence name")
	ErrEmptyRecord          = errors.New("record has no sequence")
	ErrNoRecords            = errors.New("no records found")
	ErrUnexpectedSequence   = errors.New("sequence data outside a record")
	ErrWhitespaceInSequence = errors.New("whitespace inside sequence")
	ErrInvalidResidue       = errors.New("invalid residue")
	ErrHeaderPrefix         = errors.New(`header must start with "@"`)
	ErrEmptySequence        = errors.New("sequence line is empty")
	ErrPlusPrefix           = errors.New(`separator line must start with "+"`)
	ErrTruncatedRecord      = errors.New("truncated record")
	ErrLengthMismatch       = errors.New("sequence and quality lengths differ")
	ErrWhitespaceInQuality  = errors.New("whitespace inside quality")
	ErrQualityRange         = errors.New("quality character outside ASCII 33-126")
)

// LineError ties a failure to the line that triggered it.
type LineError struct {
	Line   int    // 1-based
	Err    error  // one of the sentinels above
	Detail string // optional context ("residue 'J' in seq7")
}

func (e *LineError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Detail)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// ErrAt wraps err with a line number and optional printf-style detail.
func ErrAt(line int, err error, format string, args ...any) error {
	detail := ""
	if format != "" {
		detail = fmt.Sprintf(format, args...)
	}
	return &LineError{Line: line, Err: err, Detail: detail}
}

// Line extracts the line number from a LineError, 0 if err carries none.
func Line(err error) int {
	var le *LineError
	if errors.As(err, &le) {
		return le.Line
	}
	return 0
}
