// Package harness feeds sequence pairs to every aligner in lvlalign and
// reports distance, gap runs and elapsed time per pair and engine.
//
// 🚀 What does it do?
//
//	ReadPairs parses tab-separated input, one pair per line. A Runner
//	aligns each pair with each selected Engine and collects Records, which
//	WriteTSV and WriteYAML turn into reports; Summarize folds them into
//	per-engine totals.
//
// ✨ Key features:
//   - one registry of named engines: affine, quadratic, quadratic-packed,
//     diagonal, diagonal-packed
//   - two- and three-column input (x<TAB>y or id<TAB>x<TAB>y)
//   - context cancellation between pairs, structured logging via log/slog
//
// ⚙️ Usage:
//
//	pairs, err := harness.ReadPairs(f)
//	engines, err := harness.Select([]string{"quadratic", "diagonal"}, affine.DefaultParams())
//	records, err := harness.Runner{Engines: engines}.Run(ctx, pairs)
//	err = harness.WriteTSV(os.Stdout, records)
//
// Engines themselves are pure; the Runner only adds timing and logging.
package harness
