// internal/entrez/entrez.go
package entrez

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"regexp"
	"sort"
	"strings"

	"blastannot/internal/fasta"
)

// Output file names, kept stable for downstream scripts.
const (
	NamedFile = "Annotations_Named.fa"
	TableFile = "GeneID_Names.out"
)

const tool = "efetch"

// MissingToolError reports that the efetch utility is not installed.
type MissingToolError struct {
	Tool string
}

func (e *MissingToolError) Error() string {
	return fmt.Sprintf("%s utility needs to be installed to translate accession numbers", e.Tool)
}

// Require verifies efetch is on PATH. Called before any processing when
// name translation is requested.
func Require() error {
	if _, err := exec.LookPath(tool); err != nil {
		return &MissingToolError{Tool: tool}
	}
	return nil
}

var titleRe = regexp.MustCompile(`<Title>(.*?)</Title>`)

// FetchTitle resolves one accession to its protein docsum title, with
// spaces replaced by underscores for FASTA-header safety.
func FetchTitle(ctx context.Context, id string) (string, error) {
	out, err := exec.CommandContext(ctx, tool, "-id", id, "-db", "protein", "-format", "docsum").Output()
	if err != nil {
		return "", fmt.Errorf("efetch %s: %w", id, err)
	}
	title, ok := parseTitle(out)
	if !ok {
		return "", fmt.Errorf("efetch %s: no title in docsum", id)
	}
	return title, nil
}

func parseTitle(docsum []byte) (string, bool) {
	m := titleRe.FindSubmatch(docsum)
	if m == nil {
		return "", false
	}
	return strings.ReplaceAll(string(m[1]), " ", "_"), true
}

// FetchTitles resolves each id, skipping ones efetch cannot name.
func FetchTitles(ctx context.Context, ids []string) (map[string]string, error) {
	names := make(map[string]string, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		title, err := FetchTitle(ctx, id)
		if err != nil {
			continue
		}
		names[id] = title
	}
	return names, nil
}

// AnnotateNames writes a copy of the annotated FASTA at outputFile to
// Annotations_Named.fa with each "gi|<id>..." header tail replaced by the
// resolved protein title, and records the id,title pairs in
// GeneID_Names.out. The original output file is left untouched.
func AnnotateNames(ctx context.Context, outputFile string) error {
	recs, err := fasta.ReadAll(outputFile)
	if err != nil {
		return err
	}

	ids := collectGIs(recs)
	names, err := FetchTitles(ctx, ids)
	if err != nil {
		return err
	}
	if err := writeTable(TableFile, ids, names); err != nil {
		return err
	}

	for i := range recs {
		recs[i].Description = renameHeader(recs[i].Description, names)
	}
	fh, err := os.Create(NamedFile)
	if err != nil {
		return err
	}
	if err := fasta.WriteAll(fh, recs); err != nil {
		_ = fh.Close()
		return err
	}
	return fh.Close()
}

// collectGIs pulls the accession following "gi|" out of each header.
func collectGIs(recs []fasta.Record) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, rec := range recs {
		id, ok := giAccession(rec.Description)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func giAccession(desc string) (string, bool) {
	i := strings.Index(desc, "gi|")
	if i < 0 {
		return "", false
	}
	rest := desc[i+len("gi|"):]
	if j := strings.IndexAny(rest, "| \t"); j >= 0 {
		rest = rest[:j]
	}
	if rest == "" {
		return "", false
	}
	return rest, true
}

// renameHeader replaces everything from "gi|<id>" onward with the title.
func renameHeader(desc string, names map[string]string) string {
	id, ok := giAccession(desc)
	if !ok {
		return desc
	}
	name, ok := names[id]
	if !ok {
		return desc
	}
	i := strings.Index(desc, "gi|")
	return desc[:i] + name
}

func writeTable(path string, ids []string, names map[string]string) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	for _, id := range ids {
		name, ok := names[id]
		if !ok {
			continue
		}
		if _, err := fmt.Fprintf(fh, "%s,%s\n", id, name); err != nil {
			_ = fh.Close()
			return err
		}
	}
	return fh.Close()
}
