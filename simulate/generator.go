package simulate

import "fmt"

// Read is one simulated pair: a template and its mutated copy.
type Read struct {
	ID       int
	Template []byte
	Mutated  []byte
}

// Generator describes a batch of simulated reads.
//
// Fields:
//   - Count     — number of reads.
//   - Length    — template length.
//   - ErrorRate — total per-base error rate, in [0, 0.25).
//   - Seed      — RNG seed; 0 selects the package default.
//   - UseHMM    — mutate with a PairHMM instead of NewProfile.
//   - Model     — the PairHMM to use; nil means NewPairHMM(ErrorRate).
type Generator struct {
	Count     int      `yaml:"count" mapstructure:"count"`
	Length    int      `yaml:"length" mapstructure:"length"`
	ErrorRate float64  `yaml:"error_rate" mapstructure:"error_rate"`
	Seed      int64    `yaml:"seed" mapstructure:"seed"`
	UseHMM    bool     `yaml:"use_hmm" mapstructure:"use_hmm"`
	Model     *PairHMM `yaml:"-" mapstructure:"-"`
}

// DefaultGenerator mirrors the benchmark defaults: 100 reads of 500 bases
// at a 10% error rate, seed 42.
func DefaultGenerator() Generator {
	return Generator{Count: 100, Length: 500, ErrorRate: 0.1, Seed: 42}
}

// Validate rejects negative sizes and error rates outside [0, 0.25).
func (g Generator) Validate() error {
	if g.Count < 0 || g.Length < 0 {
		return fmt.Errorf("%w: count=%d length=%d", ErrBadGenerator, g.Count, g.Length)
	}
	if g.ErrorRate < 0 || g.ErrorRate >= 0.25 {
		return fmt.Errorf("%w: error rate %v not in [0, 0.25)", ErrBadGenerator, g.ErrorRate)
	}

	return nil
}

// Generate produces g.Count reads. The same settings always produce the
// same reads.
func (g Generator) Generate() ([]Read, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	rng := NewRand(g.Seed)
	profile := NewProfile(g.ErrorRate)
	hmm := NewPairHMM(g.ErrorRate)
	if g.Model != nil {
		if err := g.Model.Validate(); err != nil {
			return nil, err
		}
		hmm = *g.Model
	}

	reads := make([]Read, 0, g.Count)
	for id := 0; id < g.Count; id++ {
		template := RandomSequence(rng, g.Length)
		var mutated []byte
		if g.UseHMM {
			mutated = hmm.Generate(template, rng)
		} else {
			mutated = profile.Mutate(template, rng)
		}
		reads = append(reads, Read{ID: id, Template: template, Mutated: mutated})
	}

	return reads, nil
}
