package harness

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlalign/affine"
	"github.com/katalvlaran/lvlalign/alignment"
	"github.com/katalvlaran/lvlalign/diagonal"
	"github.com/katalvlaran/lvlalign/editdist"
)

// ErrUnknownEngine is returned by Select for a name not in the registry.
var ErrUnknownEngine = errors.New("harness: unknown engine")

// Engine names.
const (
	Affine          = "affine"
	Quadratic       = "quadratic"
	QuadraticPacked = "quadratic-packed"
	Diagonal        = "diagonal"
	DiagonalPacked  = "diagonal-packed"
)

// Engine is a named aligner. Run returns the engine's own score: the affine
// score for Affine, the edit distance for the others.
type Engine struct {
	Name string
	Run  func(x, y []byte) (int64, alignment.Alignment)
}

// unit adapts an edit-distance engine to the Engine signature.
func unit(name string, f func(x, y []byte) (uint32, alignment.Alignment)) Engine {
	return Engine{Name: name, Run: func(x, y []byte) (int64, alignment.Alignment) {
		d, aln := f(x, y)

		return int64(d), aln
	}}
}

// Engines returns every registered engine, affine first. p scores Affine.
func Engines(p affine.Params) []Engine {
	return []Engine{
		{Name: Affine, Run: func(x, y []byte) (int64, alignment.Alignment) { return affine.Align(x, y, p) }},
		unit(Quadratic, editdist.EditDistance),
		unit(QuadraticPacked, editdist.EditDistancePacked),
		unit(Diagonal, diagonal.EditDistance),
		unit(DiagonalPacked, diagonal.EditDistancePacked),
	}
}

// Names lists the registered engine names in registry order.
func Names() []string {
	all := Engines(affine.Params{})
	names := make([]string, len(all))
	for i, e := range all {
		names[i] = e.Name
	}

	return names
}

// Select returns the named engines in the given order. An empty list
// selects every engine. Duplicates are kept once.
func Select(names []string, p affine.Params) ([]Engine, error) {
	all := Engines(p)
	if len(names) == 0 {
		return all, nil
	}

	byName := make(map[string]Engine, len(all))
	for _, e := range all {
		byName[e.Name] = e
	}
	seen := make(map[string]bool, len(names))
	out := make([]Engine, 0, len(names))
	for _, name := range names {
		e, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q (known: %v)", ErrUnknownEngine, name, Names())
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, e)
	}

	return out, nil
}
