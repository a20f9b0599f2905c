// Package alignment defines the edit script shared by every aligner in
// lvlalign: an ordered sequence of operations that transforms a reference
// sequence x into a query sequence y.
//
// 🚀 What is an Alignment?
//
//	An Alignment is a list of Ops replayed left to right against (x, y):
//	  • Match     (=) consumes one symbol of x and one of y, symbols equal
//	  • Mismatch  (X) consumes one symbol of x and one of y, symbols differ
//	  • Insertion (I) consumes one symbol of y only
//	  • Deletion  (D) consumes one symbol of x only
//
// ✨ Key features:
//   - textual round-trip over the alphabet {'=', 'X', 'I', 'D'}
//   - distance and gap-run statistics in one linear pass
//   - three-track recovery (reference / marker / query) for inspection
//
// ⚙️ Usage:
//
//	aln, err := alignment.Parse("==X=I")
//	if err != nil {
//	  // errors.Is(err, alignment.ErrUnknownOp)
//	}
//	dist, gaps := aln.DistAndGaps() // 2, 1
//
// An Alignment is immutable once built. Every accessor that exposes the
// underlying operations returns a copy, so values may be shared freely
// between goroutines.
package alignment
