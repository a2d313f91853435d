// core/stats/stats.go
package stats

import (
	"errors"
	"io"
	"math"

	"bioseq-core/seq"
)

// MaxNames caps how many tied names the summary keeps per extreme.
const MaxNames = 10

// Summary is the aggregate over one file's records. Quality strings are
// ignored, so FASTA and FASTQ inputs summarize identically.
type Summary struct {
	Count         int
	AvgLen        float64
	LargestLen    int
	LargestNames  []string
	SmallestLen   int
	SmallestNames []string
	AvgGCPercent  float64
	AvgNsPerSeq   float64
}

// Summarize consumes r in one streaming pass. Returns ErrNoRecords when
// the reader yields nothing.
func Summarize(r seq.RecordReader) (Summary, error) {
	var (
		s        Summary
		totalLen int
		gcSum    float64
		nSum     int
	)

	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Summary{}, err
		}

		n := len(rec.Seq)
		s.Count++
		totalLen += n

		gc, atgc, ns := gcAndCounts(rec.Seq)
		if atgc > 0 {
			gcSum += float64(gc) / float64(atgc)
		}
		nSum += ns

		switch {
		case s.Count == 1 || n > s.LargestLen:
			s.LargestLen = n
			s.LargestNames = []string{rec.Name}
		case n == s.LargestLen && len(s.LargestNames) < MaxNames:
			s.LargestNames = append(s.LargestNames, rec.Name)
		}
		switch {
		case s.Count == 1 || n < s.SmallestLen:
			s.SmallestLen = n
			s.SmallestNames = []string{rec.Name}
		case n == s.SmallestLen && len(s.SmallestNames) < MaxNames:
			s.SmallestNames = append(s.SmallestNames, rec.Name)
		}
	}

	if s.Count == 0 {
		return Summary{}, seq.ErrNoRecords
	}

	c := float64(s.Count)
	s.AvgLen = round2(float64(totalLen) / c)
	s.AvgGCPercent = round2(gcSum / c * 100)
	s.AvgNsPerSeq = round2(float64(nSum) / c)
	return s, nil
}

// gcAndCounts returns (G+C, A+T+G+C, N) counts, case-insensitive. Ns are
// tracked separately and excluded from the GC denominator.
func gcAndCounts(s string) (gc, atgc, ns int) {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case 'G', 'g', 'C', 'c':
			gc++
			atgc++
		case 'A', 'a', 'T', 't':
			atgc++
		case 'N', 'n':
			ns++
		}
	}
	return
}

// round2 rounds half-up to 2 decimals. The epsilon counters
// round-to-even artifacts on exact halves stored just below them.
func round2(x float64) float64 {
	return math.Floor((x+1e-12)*100+0.5) / 100
}
