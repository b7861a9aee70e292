// internal/blast/index.go
package blast

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Index maps a query sequence id to its hits in encounter order.
// Built once by LoadTab and read-only afterward. A query that never
// appeared simply has no key; Hits returns nil for it.
type Index map[string][]Record

// Hits returns the candidate hits for one query id, in file order.
func (ix Index) Hits(queryID string) []Record { return ix[queryID] }

// LoadTab reads a BLAST tabular output file into an Index. Blank lines
// and '#' comment lines are skipped. Any line that fails to decode
// aborts the load with file:line context.
func LoadTab(path string) (Index, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	ix := make(Index)
	sc := bufio.NewScanner(fh)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		rec, err := ParseRecord(strings.Split(line, "\t"))
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, ln, err)
		}
		ix[rec.QuerySeqID] = append(ix[rec.QuerySeqID], rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ix, nil
}
