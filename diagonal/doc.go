// Package diagonal computes unit-cost edit distance by expanding furthest
// reaching points along diagonals, in the manner of Myers' O(ND) algorithm,
// and rebuilds the optimal alignment from the stored frontiers.
//
// 🚀 How does it work?
//
//	Layer d holds, for every diagonal reachable with exactly d edits, the
//	furthest query position on it. Layer d is built from layer d-1 by one
//	Deletion (same diagonal), one substitution or one Insertion, followed by
//	a snake: the longest run of equal symbols from the new position. The
//	first layer whose frontier touches (len(x), len(y)) gives the distance.
//
// ✨ Two variants:
//   - EditDistance        — (reach, predecessor) per frontier cell; equal
//     reaches are resolved Deletion > substitution > Insertion.
//   - EditDistancePacked  — one 64-bit word per cell holding
//     reach | gap runs | gap state | predecessor; equal reaches go to the
//     candidate with fewer gap runs (see packedCell.better).
//
// ⚙️ Usage:
//
//	dist, aln := diagonal.EditDistance([]byte("ACGT"), []byte("ACCTG"))
//	fmt.Println(dist, aln) // 2 ==X=I
//
// Performance:
//
//   - Time:   O((N+M)·D) worst case, D the edit distance
//   - Memory: O(D²), every layer is kept for the traceback
//
// For near-identical inputs this is far cheaper than the quadratic table of
// package editdist; the two always agree on the distance.
package diagonal
