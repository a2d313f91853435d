// core/ops/ops.go
package ops

import (
	"errors"
	"io"
	"math/rand"

	"bioseq-core/seq"
)

// DefaultSampleSize matches the historical default for random extraction.
const DefaultSampleSize = 25

// ExtractRandom draws min(k, total) records without replacement. The
// whole input is materialized first; sampling order is the draw order.
// rng must be non-nil so callers control determinism.
func ExtractRandom(r seq.RecordReader, k int, rng *rand.Rand) ([]seq.Record, error) {
	all, err := seq.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if k > len(all) {
		k = len(all)
	}
	rng.Shuffle(len(all), func(i, j int) { all[i], all[j] = all[j], all[i] })
	return all[:k], nil
}

// FilterMinLen streams records from r to w, keeping those whose sequence
// length is >= minLen, and reports how many were kept.
func FilterMinLen(r seq.RecordReader, w seq.RecordWriter, minLen int) (kept int, err error) {
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return kept, nil
			}
			return kept, err
		}
		if len(rec.Seq) < minLen {
			continue
		}
		if err := w.Write(rec); err != nil {
			return kept, err
		}
		kept++
	}
}

// ConvertToFasta streams FASTQ records to w with quality dropped, and
// reports how many were converted.
func ConvertToFasta(r seq.RecordReader, w seq.RecordWriter) (n int, err error) {
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return n, nil
			}
			return n, err
		}
		if err := w.Write(seq.Record{Name: rec.Name, Seq: rec.Seq}); err != nil {
			return n, err
		}
		n++
	}
}
