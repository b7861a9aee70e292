// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"blastannot/internal/annotate"
	"blastannot/internal/besthit"
	"blastannot/internal/blast"
	"blastannot/internal/cli"
	"blastannot/internal/entrez"
	"blastannot/internal/fasta"
	"blastannot/internal/version"
)

// RunContext drives one annotation run. Exit codes: 0 ok, 2 usage or
// input error, 3 runtime failure.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet("blastannot")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		fs.SetOutput(stdout)
		fs.Usage()
		return 0
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stdout)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "blastannot version %s\n", version.Version)
		return 0
	}

	mode, err := besthit.ParseMode(opts.BlastType)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	// Precondition: verified before any input is read.
	if opts.EntrezNames {
		if opts.OutFile == "-" {
			_, _ = fmt.Fprintln(stderr, "error: --entrez-names requires a file --output")
			return 2
		}
		if err := entrez.Require(); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}

	recs, err := fasta.ReadAll(opts.FastaFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}
	ix, err := blast.LoadTab(opts.BlastFile)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 2
	}

	// The subject-start cap is a protein coordinate under blastx, so scale
	// it into nucleotide units once, here.
	maxSubjectStart := opts.MaxSubjectStart
	if mode == besthit.ModeBlastX {
		maxSubjectStart *= 3
	}
	cfg := annotate.Config{
		Params: besthit.Params{
			Mode:            mode,
			MaxQueryStart:   opts.MaxQueryStart,
			MaxSubjectStart: maxSubjectStart,
			MaxDiff:         opts.MaxDiff,
		},
		Quiet: opts.Quiet,
	}

	out := stdout
	if opts.OutFile != "-" {
		fh, err := os.Create(opts.OutFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
		defer func() { _ = fh.Close() }()
		out = fh
	}
	outw := bufio.NewWriter(out)

	if err := annotate.Run(recs, ix, cfg, outw, stderr); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	if err := outw.Flush(); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	if opts.EntrezNames {
		if err := entrez.AnnotateNames(ctx, opts.OutFile); err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 3
		}
	}
	return 0
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
