package editdist_test

import (
	"testing"

	"github.com/katalvlaran/lvlalign/alignment"
	"github.com/katalvlaran/lvlalign/editdist"
	"github.com/katalvlaran/lvlalign/simulate"
)

// benchmarkEngine runs run on one simulated read of length n at a 10% error rate.
func benchmarkEngine(b *testing.B, n int, run func(x, y []byte) (uint32, alignment.Alignment)) {
	rng := simulate.NewRand(1)
	x := simulate.RandomSequence(rng, n)
	y := simulate.NewProfile(0.1).Mutate(x, rng)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		run(x, y)
	}
}

// BenchmarkEditDistance_Small benchmarks the plain table on 100-base reads.
func BenchmarkEditDistance_Small(b *testing.B) { benchmarkEngine(b, 100, editdist.EditDistance) }

// BenchmarkEditDistance_Medium benchmarks the plain table on 1000-base reads.
func BenchmarkEditDistance_Medium(b *testing.B) { benchmarkEngine(b, 1000, editdist.EditDistance) }

// BenchmarkEditDistancePacked_Small benchmarks the packed table on 100-base reads.
func BenchmarkEditDistancePacked_Small(b *testing.B) {
	benchmarkEngine(b, 100, editdist.EditDistancePacked)
}

// BenchmarkEditDistancePacked_Medium benchmarks the packed table on 1000-base reads.
func BenchmarkEditDistancePacked_Medium(b *testing.B) {
	benchmarkEngine(b, 1000, editdist.EditDistancePacked)
}
