package simulate

import "math/rand"

// Alphabet holds the symbols emitted by the generators, in index order.
const Alphabet = "ACGT"

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 42

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the seed is used verbatim.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// RandomSequence returns n symbols drawn uniformly from Alphabet.
//
// Complexity: O(n).
func RandomSequence(rng *rand.Rand, n int) []byte {
	if n <= 0 {
		return []byte{}
	}
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = Alphabet[rng.Intn(len(Alphabet))]
	}

	return seq
}

// baseIndex returns the position of b in Alphabet, or -1.
func baseIndex(b byte) int {
	switch b {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	default:
		return -1
	}
}

// otherBase returns a symbol of Alphabet different from b, uniformly.
// Symbols outside Alphabet get any of the four.
func otherBase(rng *rand.Rand, b byte) byte {
	idx := baseIndex(b)
	if idx < 0 {
		return Alphabet[rng.Intn(len(Alphabet))]
	}
	k := rng.Intn(len(Alphabet) - 1)
	if k >= idx {
		k++
	}

	return Alphabet[k]
}

// pick draws an index from the categorical distribution probs. The weights
// need not be normalized; the last index absorbs rounding error.
func pick(rng *rand.Rand, probs []float64) int {
	var total float64
	for _, p := range probs {
		total += p
	}
	r := rng.Float64() * total
	for i, p := range probs {
		if r < p {
			return i
		}
		r -= p
	}

	return len(probs) - 1
}
