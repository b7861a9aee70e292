// internal/annotate/annotate.go
package annotate

import (
	"fmt"
	"io"

	"blastannot/internal/besthit"
	"blastannot/internal/blast"
	"blastannot/internal/fasta"
)

// NoHit is the annotation used when a query has no qualifying hit.
const NoHit = "No hit"

// Config controls one annotation pass.
type Config struct {
	Params besthit.Params
	Quiet  bool
}

// Run rewrites each record's description to "<id> Annotation: <text>",
// where text is the best hit's annotation or "No hit", and writes the
// record to out. Queries with no candidate hits at all get a warning on
// errw; selector failures abort the pass. The index is never mutated.
func Run(recs []fasta.Record, ix blast.Index, cfg Config, out, errw io.Writer) error {
	for i := range recs {
		rec := &recs[i]
		text := NoHit
		hits := ix.Hits(rec.ID)
		if len(hits) == 0 {
			warnf(errw, cfg.Quiet, "no entries for %s", rec.ID)
		} else {
			res, err := besthit.Select(hits, cfg.Params)
			if err != nil {
				return err
			}
			if res.Found {
				text = res.Annotation()
			}
		}
		rec.Description = rec.ID + " Annotation: " + text
		if err := fasta.Write(out, *rec); err != nil {
			return err
		}
	}
	return nil
}

func warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}
