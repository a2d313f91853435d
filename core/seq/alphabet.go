// core/seq/alphabet.go
package seq

import "strings"

// Alphabet is an immutable membership table over residue characters.
// Lookups are case-insensitive. Alphabets are plain values; composing or
// copying one never aliases mutable state, so a validator can be handed
// any alphabet without touching package globals.
type Alphabet struct {
	name    string
	letters string
	member  [256]bool
}

// NewAlphabet builds an alphabet from the uppercase letters of set.
func NewAlphabet(name, set string) Alphabet {
	a := Alphabet{name: name, letters: strings.ToUpper(set)}
	for i := 0; i < len(a.letters); i++ {
		c := a.letters[i]
		a.member[c] = true
		if c >= 'A' && c <= 'Z' {
			a.member[c+'a'-'A'] = true
		}
	}
	return a
}

func (a Alphabet) Name() string    { return a.name }
func (a Alphabet) Letters() string { return a.letters }

// Contains reports whether c is a member, folding case.
func (a Alphabet) Contains(c byte) bool { return a.member[c] }

// Union combines two alphabets under a new name.
func (a Alphabet) Union(name string, b Alphabet) Alphabet {
	return NewAlphabet(name, a.letters+b.letters)
}

// Residue classes. DNA and RNA carry the IUPAC ambiguity codes; protein
// carries the extended amino-acid letters plus stop.
var (
	DNA     = NewAlphabet("dna", "ACGTNRYSWKMBDHV")
	RNA     = NewAlphabet("rna", "ACGUNRYSWKMBDHV")
	Protein = NewAlphabet("protein", "ACDEFGHIKLMNPQRSTVWYXBZJUO*")
	Gap     = NewAlphabet("gap", "-")
)

// FastaAlphabet is the residue set accepted in FASTA sequence lines:
// nucleotides, amino acids, and the gap symbol.
func FastaAlphabet() Alphabet {
	return DNA.Union("fasta", RNA).Union("fasta", Protein).Union("fasta", Gap)
}

// FastqAlphabet is the residue set accepted in FASTQ sequence lines:
// nucleotides only.
func FastqAlphabet() Alphabet {
	return DNA.Union("fastq", RNA)
}
