// internal/blast/record.go
package blast

import (
	"fmt"
	"strconv"
)

// Record is one decoded line of BLAST tabular output produced with
// -outfmt "6 qseqid sseqid pident qlen length mismatch gapopen qstart qend sstart send evalue bitscore".
// Records are never mutated after construction.
type Record struct {
	QuerySeqID      string
	SubjectSeqID    string
	PercentIdentity float64
	QueryLen        int
	AlignLen        int
	Mismatch        int
	GapOpen         int
	QueryStart      int
	QueryEnd        int
	SubjectStart    int
	SubjectEnd      int
	EValue          float64
	BitScore        float64
}

// NumFields is the column count of the supported tabular format.
const NumFields = 13

// MalformedRecordError reports a tabular hit line that could not be decoded.
type MalformedRecordError struct {
	Field string
	Value string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed hit record: field %s = %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("malformed hit record: field %s = %q", e.Field, e.Value)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// ParseRecord decodes one already-split tabular line. Every field must
// parse as its semantic type; a bad field is an error, never dropped.
func ParseRecord(fields []string) (Record, error) {
	if len(fields) != NumFields {
		return Record{}, &MalformedRecordError{
			Field: "line",
			Value: fmt.Sprintf("%d fields", len(fields)),
			Err:   fmt.Errorf("want %d tab-separated fields", NumFields),
		}
	}
	if fields[0] == "" {
		return Record{}, &MalformedRecordError{Field: "qseqid", Value: "", Err: fmt.Errorf("empty query id")}
	}

	var (
		r    = Record{QuerySeqID: fields[0], SubjectSeqID: fields[1]}
		err  error
		bad  = func(name, v string, e error) (Record, error) {
			return Record{}, &MalformedRecordError{Field: name, Value: v, Err: e}
		}
	)
	if r.PercentIdentity, err = strconv.ParseFloat(fields[2], 64); err != nil {
		return bad("pident", fields[2], err)
	}
	ints := []struct {
		name string
		val  string
		dst  *int
	}{
		{"qlen", fields[3], &r.QueryLen},
		{"length", fields[4], &r.AlignLen},
		{"mismatch", fields[5], &r.Mismatch},
		{"gapopen", fields[6], &r.GapOpen},
		{"qstart", fields[7], &r.QueryStart},
		{"qend", fields[8], &r.QueryEnd},
		{"sstart", fields[9], &r.SubjectStart},
		{"send", fields[10], &r.SubjectEnd},
	}
	for _, f := range ints {
		if *f.dst, err = strconv.Atoi(f.val); err != nil {
			return bad(f.name, f.val, err)
		}
	}
	if r.EValue, err = strconv.ParseFloat(fields[11], 64); err != nil {
		return bad("evalue", fields[11], err)
	}
	if r.BitScore, err = strconv.ParseFloat(fields[12], 64); err != nil {
		return bad("bitscore", fields[12], err)
	}
	return r, nil
}
