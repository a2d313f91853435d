// internal/menu/menu.go
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Actions are the operations the menu can dispatch. Each callback runs
// the operation and reports where the output landed; the menu owns only
// the prompting loop.
type Actions struct {
	LargestLen int  // used to sanity-check filter thresholds
	CanConvert bool // false for FASTA inputs

	Sample  func() (out string, err error)
	Filter  func(minLen int) (out string, kept int, err error)
	Convert func() (out string, n int, err error)
}

// Run drives the interactive loop until one operation completes, the
// user exits, or the input ends.
func Run(in io.Reader, out io.Writer, a Actions) error {
	sc := bufio.NewScanner(in)

	for {
		fmt.Fprintln(out, "\nChoose an operation:")
		fmt.Fprintln(out, "  1: Extract random sequences")
		fmt.Fprintln(out, "  2: Filter by minimum length")
		fmt.Fprintln(out, "  3: Convert FASTQ to FASTA")
		fmt.Fprintln(out, "  4: Exit menu")
		fmt.Fprint(out, "Enter a number (1-4): ")

		line, ok := readLine(sc)
		if !ok {
			fmt.Fprintln(out)
			return sc.Err()
		}
		if line == "" {
			fmt.Fprintln(out, "Error: no input provided. Please enter a number.")
			continue
		}
		choice, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(out, "Error: unrecognized operation %q. Please enter a number (1-4).\n", line)
			continue
		}

		switch choice {
		case 1:
			dest, err := a.Sample()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote random selection to: %s\n", dest)
			return nil
		case 2:
			minLen, ok := askMinLen(sc, out)
			if !ok {
				fmt.Fprintln(out)
				return sc.Err()
			}
			if minLen > a.LargestLen {
				fmt.Fprintf(out, "Provided length is greater than the largest sequence length %d. Enter a valid length.\n", a.LargestLen)
				continue
			}
			dest, kept, err := a.Filter(minLen)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Wrote %d sequences (len >= %d) to: %s\n", kept, minLen, dest)
			return nil
		case 3:
			if !a.CanConvert {
				fmt.Fprintln(out, "FASTA file can't be converted to FASTQ file.")
				return nil
			}
			dest, n, err := a.Convert()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Converted %d sequences FASTQ -> FASTA: %s\n", n, dest)
			return nil
		case 4:
			fmt.Fprintln(out, "Exiting interactive menu.")
			return nil
		default:
			fmt.Fprintf(out, "Error: invalid choice %d. Please enter a number between 1 and 4.\n", choice)
		}
	}
}

// askMinLen prompts until it gets an integer >= 0.
func askMinLen(sc *bufio.Scanner, out io.Writer) (int, bool) {
	for {
		fmt.Fprint(out, "Enter minimum sequence length (integer >= 0): ")
		line, ok := readLine(sc)
		if !ok {
			return 0, false
		}
		v, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(out, "Please enter a valid integer.")
			continue
		}
		if v < 0 {
			fmt.Fprintln(out, "Length must be >= 0.")
			continue
		}
		return v, true
	}
}

func readLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}
