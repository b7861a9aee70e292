// internal/blast/index_test.go
package blast

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTab(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hits.tsv")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadTab(t *testing.T) {
	path := writeTab(t, strings.Join([]string{
		"# blastn output",
		"q1\ts1\t99.0\t300\t300\t0\t0\t1\t300\t1\t300\t1e-50\t550",
		"",
		"q2\ts2\t90.0\t200\t180\t5\t1\t1\t180\t1\t180\t2e-30\t210",
		"q1\ts3\t95.0\t300\t150\t2\t0\t1\t150\t1\t150\t1e-80\t300",
	}, "\n")+"\n")

	ix, err := LoadTab(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ix) != 2 {
		t.Fatalf("want 2 queries, got %d", len(ix))
	}
	q1 := ix.Hits("q1")
	if len(q1) != 2 || q1[0].SubjectSeqID != "s1" || q1[1].SubjectSeqID != "s3" {
		t.Fatalf("q1 hits out of order: %+v", q1)
	}
	if got := ix.Hits("q2"); len(got) != 1 || got[0].Mismatch != 5 {
		t.Fatalf("q2 hits: %+v", got)
	}
	if got := ix.Hits("never-seen"); got != nil {
		t.Fatalf("missing query must yield nil, got %+v", got)
	}
}

func TestLoadTabMalformedAborts(t *testing.T) {
	path := writeTab(t,
		"q1\ts1\t99.0\t300\t300\t0\t0\t1\t300\t1\t300\t1e-50\t550\n"+
			"q2\ts2\tnot-a-number\t200\t180\t5\t1\t1\t180\t1\t180\t2e-30\t210\n")

	_, err := LoadTab(path)
	if err == nil {
		t.Fatalf("expected error for malformed line")
	}
	if !strings.Contains(err.Error(), ":2:") {
		t.Fatalf("error should carry the line number, got %v", err)
	}
}

func TestLoadTabMissingFile(t *testing.T) {
	if _, err := LoadTab(filepath.Join(t.TempDir(), "absent.tsv")); err == nil {
		t.Fatalf("expected open error")
	}
}
