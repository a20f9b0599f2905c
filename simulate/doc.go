// Package simulate produces synthetic DNA reads for exercising and
// benchmarking the aligners: a random template and a mutated copy of it.
//
// Two mutation models are provided:
//   - Profile  — independent per-base substitution / insertion / deletion
//     rates.
//   - PairHMM  — a three-state (match, insertion, deletion) hidden Markov
//     model in which gaps tend to cluster, since staying in a gap state is
//     twice as likely as entering one.
//
// Determinism:
//
//	All randomness flows through a caller-supplied *rand.Rand. NewRand maps
//	seed 0 to a fixed default so that the zero value of Generator is
//	reproducible. *rand.Rand is not goroutine-safe; do not share one.
package simulate
