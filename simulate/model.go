package simulate

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"

	"gopkg.in/yaml.v3"
)

var (
	// ErrBadProfile indicates negative rates or rates summing to 1 or more.
	ErrBadProfile = errors.New("simulate: invalid error profile")

	// ErrBadModel indicates a PairHMM row that is not a probability distribution.
	ErrBadModel = errors.New("simulate: invalid pair HMM")

	// ErrBadGenerator indicates unusable Generator settings.
	ErrBadGenerator = errors.New("simulate: invalid generator settings")
)

// Profile holds independent per-event probabilities.
type Profile struct {
	Substitution float64 `yaml:"substitution"`
	Insertion    float64 `yaml:"insertion"`
	Deletion     float64 `yaml:"deletion"`
}

// NewProfile splits errorRate evenly over the three event kinds.
func NewProfile(errorRate float64) Profile {
	e := errorRate / 3
	return Profile{Substitution: e, Insertion: e, Deletion: e}
}

// Validate checks that every rate is a finite non-negative number and that
// the rates leave room for copying the base unchanged.
func (p Profile) Validate() error {
	for _, v := range []float64{p.Substitution, p.Insertion, p.Deletion} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: rate %v", ErrBadProfile, v)
		}
	}
	if s := p.Substitution + p.Insertion + p.Deletion; s >= 1 {
		return fmt.Errorf("%w: rates sum to %v", ErrBadProfile, s)
	}

	return nil
}

// Mutate copies template, introducing events with the profile's rates.
// At each step one draw decides between substitution (consume and emit a
// different base), deletion (consume only), insertion (emit a random base
// only) and copy.
//
// It panics on a profile rejected by Validate: such a profile may never
// consume the template.
//
// Complexity: O(len(template)) expected.
func (p Profile) Mutate(template []byte, rng *rand.Rand) []byte {
	if err := p.Validate(); err != nil {
		panic(err.Error())
	}
	out := make([]byte, 0, len(template))
	subEnd := p.Substitution
	delEnd := subEnd + p.Deletion
	insEnd := delEnd + p.Insertion
	for i := 0; i < len(template); {
		r := rng.Float64()
		switch {
		case r < subEnd:
			out = append(out, otherBase(rng, template[i]))
			i++
		case r < delEnd:
			i++
		case r < insEnd:
			out = append(out, Alphabet[rng.Intn(len(Alphabet))])
		default:
			out = append(out, template[i])
			i++
		}
	}

	return out
}

// HMM states, also the column order of each transition row.
const (
	stateMatch = iota
	stateInsertion
	stateDeletion
)

// PairHMM is a three-state mutation model.
//
// Each transition row gives the probability of moving to
// (match, insertion, deletion). In the match state one template base is
// consumed and a base is emitted from Emission[template base]; in the
// insertion state a base is emitted from InsertionEmission without
// consuming; in the deletion state a base is consumed silently.
type PairHMM struct {
	FromMatch     [3]float64 `yaml:"from_match"`
	FromInsertion [3]float64 `yaml:"from_insertion"`
	FromDeletion  [3]float64 `yaml:"from_deletion"`

	// Emission[a][b] is P(emit Alphabet[b] | template base Alphabet[a]).
	Emission          [4][4]float64 `yaml:"emission"`
	InsertionEmission [4]float64    `yaml:"insertion_emission"`
}

// NewPairHMM builds the benchmark model for a total error rate: each event
// kind gets e = errorRate/3; leaving the match state costs e per gap kind,
// and a gap state is kept or switched with probability 2e each.
// The match emission spreads e/(1-2e) evenly over the three wrong bases.
func NewPairHMM(errorRate float64) PairHMM {
	e := errorRate / 3
	gap := [3]float64{1 - 4*e, 2 * e, 2 * e}
	h := PairHMM{
		FromMatch:         [3]float64{1 - 2*e, e, e},
		FromInsertion:     gap,
		FromDeletion:      gap,
		InsertionEmission: [4]float64{0.25, 0.25, 0.25, 0.25},
	}
	mism := (e / (1 - 2*e)) / 3
	for a := range h.Emission {
		for b := range h.Emission[a] {
			if a == b {
				h.Emission[a][b] = 1 - 3*mism
			} else {
				h.Emission[a][b] = mism
			}
		}
	}

	return h
}

// Validate checks that every row is a probability distribution and that
// the insertion state can be left, so that a walk always consumes the
// template.
func (h PairHMM) Validate() error {
	rows := [][]float64{h.FromMatch[:], h.FromInsertion[:], h.FromDeletion[:], h.InsertionEmission[:]}
	for a := range h.Emission {
		rows = append(rows, h.Emission[a][:])
	}
	for k, row := range rows {
		var sum float64
		for _, v := range row {
			if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: row %d holds %v", ErrBadModel, k, v)
			}
			sum += v
		}
		if math.Abs(sum-1) > 1e-9 {
			return fmt.Errorf("%w: row %d sums to %v", ErrBadModel, k, sum)
		}
	}
	if h.FromInsertion[stateInsertion] >= 1 {
		return fmt.Errorf("%w: insertion state never returns to the template", ErrBadModel)
	}

	return nil
}

// Generate walks the model along template and returns the emitted read.
// The walk starts in the match state and ends once the template is consumed.
// It panics on a model rejected by Validate.
func (h PairHMM) Generate(template []byte, rng *rand.Rand) []byte {
	if err := h.Validate(); err != nil {
		panic(err.Error())
	}
	out := make([]byte, 0, len(template))
	state := stateMatch
	for i := 0; i < len(template); {
		var row [3]float64
		switch state {
		case stateMatch:
			if a := baseIndex(template[i]); a >= 0 {
				out = append(out, Alphabet[pick(rng, h.Emission[a][:])])
			} else {
				out = append(out, template[i])
			}
			i++
			row = h.FromMatch
		case stateInsertion:
			out = append(out, Alphabet[pick(rng, h.InsertionEmission[:])])
			row = h.FromInsertion
		default:
			i++
			row = h.FromDeletion
		}
		state = pick(rng, row[:])
	}

	return out
}

// LoadPairHMM decodes a YAML description of a PairHMM and validates it.
func LoadPairHMM(r io.Reader) (PairHMM, error) {
	var h PairHMM
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&h); err != nil {
		return PairHMM{}, fmt.Errorf("simulate: decode pair HMM: %w", err)
	}
	if err := h.Validate(); err != nil {
		return PairHMM{}, err
	}

	return h, nil
}
