// Package editdist computes unit-cost edit distance between two byte
// sequences with the textbook quadratic dynamic program, and returns the
// optimal alignment together with the distance.
//
// 🚀 What is edit distance?
//
//	The minimum number of substitutions, insertions and deletions turning a
//	reference x into a query y. Costs: Match=0, Mismatch=Insertion=Deletion=1.
//
// ✨ Two variants:
//   - EditDistance        — one (cost, backpointer) cell per table position;
//     ties are broken Match/Mismatch > Insertion > Deletion.
//   - EditDistancePacked  — one 64-bit word per position holding
//     cost | gap runs | gap state | backpointer; ties in cost go to the
//     candidate with fewer gap runs (see packedCell.less).
//
// Both variants always agree on the distance. They may return different,
// equally optimal alignments; each policy is deterministic and tested.
//
// ⚙️ Usage:
//
//	dist, aln := editdist.EditDistance([]byte("ACGT"), []byte("ACCTG"))
//	fmt.Println(dist, aln) // 2 ==X=I
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M), a single flat arena of (N+1)·(M+1) cells
//
// Engines are pure functions: no state survives a call, so concurrent calls
// on independent inputs need no synchronization.
package editdist
