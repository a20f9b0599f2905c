// Package lvlalign is a toolkit for pairwise alignment of short DNA-like
// sequences: several exact aligners that solve the same problems in
// different ways, plus the plumbing to simulate reads and benchmark them.
//
// 🚀 What is inside?
//
//	• alignment/ — the shared edit script (=, X, I, D), statistics, rendering tracks
//	• editdist/  — quadratic unit-cost DP, plain and bit-packed cells
//	• affine/    — Gotoh's three-state DP with gap-open/gap-extend scoring
//	• diagonal/  — furthest-reaching frontier expansion, plain and bit-packed
//	• simulate/  — random templates mutated by an error profile or a pair HMM
//	• harness/   — engine registry, timing runner, TSV/YAML reports
//	• view/      — three-track terminal view with lipgloss styling
//	• config/    — viper-backed settings (file + LVLALIGN_* env)
//	• cmd/lvlalign — the CLI: simulate, align, show
//
// ✨ Why several engines?
//
//   - they cross-check each other: every edit-distance engine reports the
//     same distance on the same input
//   - the packed variants keep one 64-bit word per cell and break ties
//     toward fewer gap runs
//   - the diagonal engine runs in O((N+M)·D) and wins on near-identical reads
//
// ⚙️ Usage:
//
//	dist, aln := editdist.EditDistance([]byte("ACGT"), []byte("ACCTG"))
//	score, aln2 := affine.Align(x, y, affine.DefaultParams())
//
// Every engine is a pure, single-threaded function: no shared state, no
// blocking, safe to call concurrently on independent inputs.
package lvlalign
