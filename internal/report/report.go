// internal/report/report.go
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"bioseq-core/stats"
)

var banner = strings.Repeat("=", 60)

// PrintSummary renders the file statistics block.
func PrintSummary(w io.Writer, s stats.Summary) {
	head := color.New(color.FgCyan, color.Bold)

	fmt.Fprintln(w, banner)
	_, _ = head.Fprintln(w, "File statistics")
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Total sequences         : %d\n", s.Count)
	fmt.Fprintf(w, "Average length          : %v\n", s.AvgLen)
	fmt.Fprintf(w, "Largest length          : %d\n", s.LargestLen)
	fmt.Fprintf(w, "Largest sequence name(s): %s\n", nameList(s.LargestNames))
	fmt.Fprintf(w, "Smallest length         : %d\n", s.SmallestLen)
	fmt.Fprintf(w, "Smallest sequence name(s): %s\n", nameList(s.SmallestNames))
	fmt.Fprintf(w, "Average GC-content (%%)  : %v\n", s.AvgGCPercent)
	fmt.Fprintf(w, "Average # of Ns/sequence: %v\n", s.AvgNsPerSeq)
	fmt.Fprintln(w, banner)
}

func nameList(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

// Warnf emits a non-fatal diagnostic.
func Warnf(w io.Writer, format string, args ...any) {
	_, _ = color.New(color.FgYellow).Fprintf(w, "warning: "+format+"\n", args...)
}

// DisableColor turns off ANSI sequences process-wide (--no-color, or when
// output is not a terminal the color package does this itself).
func DisableColor() { color.NoColor = true }
