// Package affine implements global alignment under an affine gap penalty
// with Gotoh's three-state dynamic program.
//
// 🚀 What is an affine gap penalty?
//
//	A gap of length L costs GapOpen + (L-1)·GapExtend. Opening a gap is
//	usually penalized harder than extending one, so the aligner prefers a
//	few long gaps over many short ones. Scores are maximized, not minimized.
//
// ✨ Key features:
//   - three states per cell: M (aligned pair), D (Deletion), I (Insertion)
//   - one flat arena indexed by (i, j, state); no linked traceback nodes
//   - Score re-evaluates any alignment under the same Params
//
// ⚙️ Usage:
//
//	score, aln := affine.Align([]byte("ACCCGCCCA"), []byte("AGA"),
//	  affine.Params{Match: 0, Mismatch: -1, GapOpen: -10, GapExtend: -1})
//	fmt.Println(score, aln) // -16 =XDDDDDD=
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M), three cells per table position
//
// No banding or linear-space refinement is performed: long inputs pay the
// full quadratic cost, so callers that need bounded latency must cap input
// lengths themselves.
package affine
