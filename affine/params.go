package affine

import (
	"fmt"

	"github.com/katalvlaran/lvlalign/alignment"
)

// Params configures the affine scoring function. All fields are signed;
// penalties are normally negative.
//
// Fields:
//   - Match     — score of an aligned pair of equal symbols.
//   - Mismatch  — score of an aligned pair of different symbols.
//   - GapOpen   — score of the first column of a gap run.
//   - GapExtend — score of every further column of the same run.
type Params struct {
	Match     int64 `yaml:"match" mapstructure:"match"`
	Mismatch  int64 `yaml:"mismatch" mapstructure:"mismatch"`
	GapOpen   int64 `yaml:"gap_open" mapstructure:"gap_open"`
	GapExtend int64 `yaml:"gap_extend" mapstructure:"gap_extend"`
}

// DefaultParams returns the scoring used by the benchmark harness:
// Match=2, Mismatch=-2, GapOpen=-8, GapExtend=-1.
func DefaultParams() Params {
	return Params{Match: 2, Mismatch: -2, GapOpen: -8, GapExtend: -1}
}

// UnitParams returns the scoring under which Align reports the negated
// unit-cost edit distance.
func UnitParams() Params {
	return Params{Match: 0, Mismatch: -1, GapOpen: -1, GapExtend: -1}
}

// Score evaluates aln against (x, y) under p. A gap column opens a run
// whenever it differs from the previous operation, matching the gap-run
// definition of alignment.Alignment.GapCount.
//
// Returns an error wrapping alignment.ErrLengthMismatch when aln does not
// fit the sequences, or when a Match/Mismatch disagrees with the symbols.
func Score(x, y []byte, aln alignment.Alignment, p Params) (int64, error) {
	if err := aln.Validate(x, y); err != nil {
		return 0, fmt.Errorf("affine: score: %w", err)
	}

	var score int64
	prev := alignment.Match
	for k := 0; k < aln.Len(); k++ {
		op := aln.At(k)
		switch {
		case op == alignment.Match:
			score += p.Match
		case op == alignment.Mismatch:
			score += p.Mismatch
		case op == prev:
			score += p.GapExtend
		default:
			score += p.GapOpen
		}
		prev = op
	}

	return score, nil
}
