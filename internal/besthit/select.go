// internal/besthit/select.go
package besthit

import (
	"fmt"
	"math"

	"blastannot/internal/blast"
)

// Mode says what kind of search produced the hits, which decides how
// alignment lengths compare to the nucleotide query length.
type Mode int

const (
	ModeBlastN Mode = iota // nucleotide vs nucleotide
	ModeBlastX             // nucleotide vs protein; lengths scale x3
)

// ParseMode accepts the blast program name used for the search.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "blastn":
		return ModeBlastN, nil
	case "blastx":
		return ModeBlastX, nil
	}
	return 0, fmt.Errorf("unsupported blast type %q (want blastn or blastx)", s)
}

func (m Mode) String() string {
	if m == ModeBlastX {
		return "blastx"
	}
	return "blastn"
}

func (m Mode) scale() int {
	if m == ModeBlastX {
		return 3
	}
	return 1
}

// Params bound which hits are admissible.
// MaxSubjectStart must already be x3-scaled by the caller under ModeBlastX;
// that policy is decided once, not per hit.
// MaxDiff is accepted and validated at the CLI but not consulted during
// selection (see DESIGN.md).
type Params struct {
	Mode            Mode
	MaxQueryStart   int
	MaxSubjectStart int
	MaxDiff         float64
}

// ZeroLengthError reports a hit whose query or alignment length is zero,
// which would make the coverage computation divide by zero.
type ZeroLengthError struct {
	QuerySeqID string
	Field      string
}

func (e *ZeroLengthError) Error() string {
	return fmt.Sprintf("hit for %s has zero %s", e.QuerySeqID, e.Field)
}

// Result is the fold accumulator of the scan and the final outcome.
// The zero value is the "no incumbent yet" state.
type Result struct {
	Found           bool
	SubjectID       string
	Diff            float64
	EValue          float64
	PercentIdentity float64
	BitScore        float64
	Mismatch        int
}

// Annotation renders the winning hit as the description fragment.
func (r Result) Annotation() string {
	return fmt.Sprintf("%s Diff: %.2f", r.SubjectID, r.Diff)
}

// Select scans hits in encounter order and keeps the admissible hit with
// the best query coverage. A hit is admissible when the alignment starts
// within MaxQueryStart on the query and MaxSubjectStart on the subject,
// and strictly improves on the incumbent's coverage difference
// |1 - length*scale/qlen|. Once an incumbent exists, a gated candidate
// must also win the quality cascade (e-value, identity, bit score,
// mismatches) to replace it. An empty or fully-rejected list yields a
// not-found Result, which is a valid outcome and not an error.
func Select(hits []blast.Record, p Params) (Result, error) {
	var best Result
	bestDiff := 1.0 // worst possible: no coverage at all
	for _, h := range hits {
		if h.QueryLen == 0 {
			return Result{}, &ZeroLengthError{QuerySeqID: h.QuerySeqID, Field: "query length"}
		}
		if h.AlignLen == 0 {
			return Result{}, &ZeroLengthError{QuerySeqID: h.QuerySeqID, Field: "alignment length"}
		}
		diff := math.Abs(1 - float64(h.AlignLen*p.Mode.scale())/float64(h.QueryLen))
		if h.QueryStart > p.MaxQueryStart || h.SubjectStart > p.MaxSubjectStart {
			continue
		}
		if diff >= bestDiff {
			continue
		}
		if best.Found && !beats(h, best) {
			continue
		}
		bestDiff = diff
		best = Result{
			Found:           true,
			SubjectID:       h.SubjectSeqID,
			Diff:            diff,
			EValue:          h.EValue,
			PercentIdentity: h.PercentIdentity,
			BitScore:        h.BitScore,
			Mismatch:        h.Mismatch,
		}
	}
	return best, nil
}

// beats is the quality cascade: smaller e-value, then higher identity,
// then higher bit score, then fewer mismatches, compared as true floats.
func beats(h blast.Record, top Result) bool {
	switch {
	case h.EValue != top.EValue:
		return h.EValue < top.EValue
	case h.PercentIdentity != top.PercentIdentity:
		return h.PercentIdentity > top.PercentIdentity
	case h.BitScore != top.BitScore:
		return h.BitScore > top.BitScore
	default:
		return h.Mismatch < top.Mismatch
	}
}
