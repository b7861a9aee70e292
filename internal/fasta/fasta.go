// internal/fasta/fasta.go
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Record is one FASTA sequence. Description is the full header line after
// '>'; ID is its first whitespace-delimited token. Description is the only
// field the annotation pass mutates.
type Record struct {
	ID          string
	Description string
	Seq         []byte
}

// Read parses all FASTA records from r, in encounter order.
func Read(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		recs []Record
		cur  *Record
	)
	for sc.Scan() {
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			hdr := bytes.TrimSpace(line[1:])
			recs = append(recs, Record{ID: headerID(hdr), Description: string(hdr)})
			cur = &recs[len(recs)-1]
			continue
		}
		if cur == nil {
			return nil, fmt.Errorf("fasta: sequence data before first header")
		}
		cur.Seq = append(cur.Seq, bytes.TrimSpace(line)...)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fasta scan: %w", err)
	}
	return recs, nil
}

// ReadAll reads every record from path; plain, gzip, or "-" for stdin.
func ReadAll(path string) ([]Record, error) {
	rc, err := openReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return Read(rc)
}

// seqWidth is the column at which sequence lines wrap on output.
const seqWidth = 60

// Write serializes one record, wrapping the sequence at 60 columns.
func Write(w io.Writer, rec Record) error {
	if _, err := fmt.Fprintf(w, ">%s\n", rec.Description); err != nil {
		return err
	}
	for off := 0; off < len(rec.Seq); off += seqWidth {
		end := off + seqWidth
		if end > len(rec.Seq) {
			end = len(rec.Seq)
		}
		if _, err := fmt.Fprintf(w, "%s\n", rec.Seq[off:end]); err != nil {
			return err
		}
	}
	return nil
}

// WriteAll serializes records in order.
func WriteAll(w io.Writer, recs []Record) error {
	for _, rec := range recs {
		if err := Write(w, rec); err != nil {
			return err
		}
	}
	return nil
}

func headerID(hdr []byte) string {
	if i := bytes.IndexAny(hdr, " \t"); i >= 0 {
		return string(hdr[:i])
	}
	return string(hdr)
}
