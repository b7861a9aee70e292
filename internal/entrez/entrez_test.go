// internal/entrez/entrez_test.go
package entrez

import (
	"errors"
	"testing"

	"blastannot/internal/fasta"
)

func TestRequireMissingTool(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	var mt *MissingToolError
	if err := Require(); !errors.As(err, &mt) {
		t.Fatalf("want MissingToolError, got %v", err)
	}
}

func TestParseTitle(t *testing.T) {
	docsum := []byte("<DocSum>\n<Title>hypothetical protein ABC_123</Title>\n</DocSum>")
	title, ok := parseTitle(docsum)
	if !ok || title != "hypothetical_protein_ABC_123" {
		t.Fatalf("title %q ok=%v", title, ok)
	}
	if _, ok := parseTitle([]byte("<DocSum></DocSum>")); ok {
		t.Fatalf("expected no title")
	}
}

func TestGIAccession(t *testing.T) {
	for _, tc := range []struct {
		desc string
		want string
		ok   bool
	}{
		{"q1 Annotation: gi|12345|ref|XP_1.1| Diff: 0.00", "12345", true},
		{"q1 Annotation: gi|999 Diff: 0.10", "999", true},
		{"q1 Annotation: No hit", "", false},
	} {
		got, ok := giAccession(tc.desc)
		if ok != tc.ok || got != tc.want {
			t.Errorf("giAccession(%q) = %q,%v want %q,%v", tc.desc, got, ok, tc.want, tc.ok)
		}
	}
}

func TestRenameHeader(t *testing.T) {
	names := map[string]string{"12345": "cytochrome_c_oxidase"}
	got := renameHeader("q1 Annotation: gi|12345|ref|XP_1.1| Diff: 0.00", names)
	if got != "q1 Annotation: cytochrome_c_oxidase" {
		t.Fatalf("renamed %q", got)
	}
	// Unresolved ids and plain headers pass through unchanged.
	if got := renameHeader("q2 Annotation: No hit", names); got != "q2 Annotation: No hit" {
		t.Fatalf("plain header changed: %q", got)
	}
}

func TestCollectGIs(t *testing.T) {
	recs := []fasta.Record{
		{Description: "q1 Annotation: gi|222|ref|A| Diff: 0.00"},
		{Description: "q2 Annotation: gi|111|ref|B| Diff: 0.05"},
		{Description: "q3 Annotation: gi|222|ref|A| Diff: 0.01"}, // duplicate
		{Description: "q4 Annotation: No hit"},
	}
	ids := collectGIs(recs)
	if len(ids) != 2 || ids[0] != "111" || ids[1] != "222" {
		t.Fatalf("ids %v", ids)
	}
}
