package affine_test

import (
	"fmt"

	"github.com/katalvlaran/lvlalign/affine"
)

// ExampleAlign prefers one long deletion over scattered short gaps when
// opening a gap is expensive.
//
// Complexity: O(N·M) time, O(N·M) memory
func ExampleAlign() {
	p := affine.Params{Match: 0, Mismatch: -1, GapOpen: -10, GapExtend: -1}
	score, aln := affine.Align([]byte("ACCCGCCCA"), []byte("AGA"), p)
	fmt.Println(score, aln)
	// Output: -16 =XDDDDDD=
}

// ExampleScore re-scores an alignment under different Params.
func ExampleScore() {
	_, aln := affine.Align([]byte("ACGT"), []byte("ACCTG"), affine.UnitParams())
	score, err := affine.Score([]byte("ACGT"), []byte("ACCTG"), aln, affine.DefaultParams())
	fmt.Println(aln, score, err)
	// Output: ==X=I -4 <nil>
}
