package alphacfg

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeCfg(t *testing.T, body string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "alphabets.yaml")
	if err := os.WriteFile(fn, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return fn
}

func TestDefaultsWhenFieldsOmitted(t *testing.T) {
	var c Config
	fa := c.Fasta()
	if !fa.Contains('M') || !fa.Contains('-') || !fa.Contains('U') {
		t.Fatal("default fasta alphabet incomplete")
	}
	fq := c.Fastq()
	if fq.Contains('E') {
		t.Fatal("default fastq alphabet should reject amino-acid letters")
	}
}

func TestLoadOverridesOneClass(t *testing.T) {
	fn := writeCfg(t, "dna: \"ACGT0\"\n")
	c, err := Load(fn)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	fq := c.Fastq()
	if !fq.Contains('0') {
		t.Fatal("dna override not applied")
	}
	// RNA and protein defaults stay intact.
	if !fq.Contains('U') {
		t.Fatal("rna default lost")
	}
	if !c.Fasta().Contains('M') {
		t.Fatal("protein default lost")
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	fn := writeCfg(t, "dna: \"ACGT\"\nprotien: \"XYZ\"\n")
	if _, err := Load(fn); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Fatalf("want parse error for unknown key, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("want error for missing file")
	}
}
