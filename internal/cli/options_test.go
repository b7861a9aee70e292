// internal/cli/options_test.go
package cli

import (
	"flag"
	"testing"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t,
		"--fasta", "in.fa",
		"--blast", "hits.tsv",
		"--blast-type", "blastn",
		"--output", "out.fa",
	)
	if o.MaxDiff != 0.10 || o.MaxQueryStart != 1 || o.MaxSubjectStart != 1 {
		t.Errorf("bad defaults: %+v", o)
	}
	if o.EntrezNames || o.Quiet {
		t.Errorf("bool defaults: %+v", o)
	}
}

func TestErrorMissingInputs(t *testing.T) {
	for _, args := range [][]string{
		{"--blast", "h.tsv", "--blast-type", "blastn", "--output", "o.fa"},
		{"--fasta", "i.fa", "--blast-type", "blastn", "--output", "o.fa"},
		{"--fasta", "i.fa", "--blast", "h.tsv", "--blast-type", "blastn"},
	} {
		if _, err := ParseArgs(newFS(), args); err == nil {
			t.Errorf("expected error for %v", args)
		}
	}
}

func TestErrorBadBlastType(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"--fasta", "i.fa", "--blast", "h.tsv", "--blast-type", "tblastx", "--output", "o.fa",
	})
	if err == nil {
		t.Fatalf("expected error for unsupported blast type")
	}
}

func TestErrorMaxDiffRange(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"--fasta", "i.fa", "--blast", "h.tsv", "--blast-type", "blastn", "--output", "o.fa",
		"--max-diff", "1.5",
	})
	if err == nil {
		t.Fatalf("expected error for --max-diff out of range")
	}
}

func TestErrorStartBounds(t *testing.T) {
	_, err := ParseArgs(newFS(), []string{
		"--fasta", "i.fa", "--blast", "h.tsv", "--blast-type", "blastn", "--output", "o.fa",
		"--max-query-start", "0",
	})
	if err == nil {
		t.Fatalf("expected error for --max-query-start < 1")
	}
}

func TestVersionShortCircuitsValidation(t *testing.T) {
	o, err := ParseArgs(newFS(), []string{"--version"})
	if err != nil || !o.Version {
		t.Fatalf("version parse: %+v %v", o, err)
	}
}
