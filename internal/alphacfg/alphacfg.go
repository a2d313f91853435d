// internal/alphacfg/alphacfg.go
package alphacfg

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bioseq-core/seq"
)

// Config overrides the residue classes used during validation. Empty
// fields keep the built-in class, so a file may override just one class:
//
//	protein: "ACDEFGHIKLMNPQRSTVWY"
type Config struct {
	DNA     string `yaml:"dna"`
	RNA     string `yaml:"rna"`
	Protein string `yaml:"protein"`
	Gap     string `yaml:"gap"`
}

// Load reads a YAML alphabet file. Unknown keys are rejected so typos
// don't silently fall back to defaults.
func Load(path string) (Config, error) {
	var c Config
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return c, fmt.Errorf("parse %s: %v", path, err)
	}
	return c, nil
}

// Alphabets materializes the configured (or default) classes.
func (c Config) alphabets() (dna, rna, protein, gap seq.Alphabet) {
	dna, rna, protein, gap = seq.DNA, seq.RNA, seq.Protein, seq.Gap
	if c.DNA != "" {
		dna = seq.NewAlphabet("dna", c.DNA)
	}
	if c.RNA != "" {
		rna = seq.NewAlphabet("rna", c.RNA)
	}
	if c.Protein != "" {
		protein = seq.NewAlphabet("protein", c.Protein)
	}
	if c.Gap != "" {
		gap = seq.NewAlphabet("gap", c.Gap)
	}
	return
}

// Fasta returns the FASTA validation alphabet under this config.
func (c Config) Fasta() seq.Alphabet {
	dna, rna, protein, gap := c.alphabets()
	return dna.Union("fasta", rna).Union("fasta", protein).Union("fasta", gap)
}

// Fastq returns the FASTQ validation alphabet under this config.
func (c Config) Fastq() seq.Alphabet {
	dna, rna, _, _ := c.alphabets()
	return dna.Union("fastq", rna)
}
