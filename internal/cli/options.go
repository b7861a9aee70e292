// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"blastannot/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Input / output files
	FastaFile string
	BlastFile string
	BlastType string
	OutFile   string

	// Hit admissibility
	MaxDiff         float64
	MaxQueryStart   int
	MaxSubjectStart int

	// Post-processing
	EntrezNames bool

	Quiet   bool
	Version bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: annotate a FASTA file with its best BLAST hits

License: GPL-3.0
Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// Parse is the top-level call for CLI parsing.
func Parse() (Options, error) { return ParseArgs(flag.CommandLine, nil) }

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Files
	fs.StringVar(&opt.FastaFile, "fasta", "", "FASTA file to annotate (or '-' for stdin) [*]")
	fs.StringVar(&opt.BlastFile, "blast", "", "BLAST tabular output of the FASTA file [*]")
	fs.StringVar(&opt.BlastType, "blast-type", "", "blast program used: blastn | blastx [*]")
	fs.StringVar(&opt.OutFile, "output", "", "annotated FASTA output file (or '-' for stdout) [*]")

	// Hit admissibility
	fs.Float64Var(&opt.MaxDiff, "max-diff", 0.10, "max query/subject length difference as a fraction [0.10]")
	fs.IntVar(&opt.MaxQueryStart, "max-query-start", 1, "max start position of the alignment in the query [1]")
	fs.IntVar(&opt.MaxSubjectStart, "max-subject-start", 1, "max start position of the alignment in the subject [1]")

	// Post-processing
	fs.BoolVar(&opt.EntrezNames, "entrez-names", false, "translate accession numbers via entrez [false]")

	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	switch {
	case opt.FastaFile == "":
		return opt, errors.New("--fasta is required")
	case opt.BlastFile == "":
		return opt, errors.New("--blast is required")
	case opt.OutFile == "":
		return opt, errors.New("--output is required")
	}
	if opt.BlastType != "blastn" && opt.BlastType != "blastx" {
		return opt, fmt.Errorf("invalid --blast-type %q (want blastn or blastx)", opt.BlastType)
	}
	if opt.MaxDiff < 0 || opt.MaxDiff > 1 {
		return opt, fmt.Errorf("--max-diff %v not in range [0.0, 1.0]", opt.MaxDiff)
	}
	if opt.MaxQueryStart < 1 {
		return opt, errors.New("--max-query-start must be ≥ 1")
	}
	if opt.MaxSubjectStart < 1 {
		return opt, errors.New("--max-subject-start must be ≥ 1")
	}
	return opt, nil
}
