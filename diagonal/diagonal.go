package diagonal

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlalign/alignment"
)

// Frontier layout shared by both variants:
//
//	layer d has 2d+1 cells indexed by k = 0..2d
//	a cell stores the query position p it reaches
//	the reference position is i = p + d - k, so k - d = p - i is the diagonal
//
// A Deletion keeps k, a substitution comes from k-1 and an Insertion from
// k-2 of the previous layer.

// pred records the move that produced a frontier cell.
type pred uint8

const (
	predNone pred = iota // layer 0
	predDeletion
	predMismatch
	predInsertion
)

// cell is one frontier entry of the plain variant. reach < 0 marks a
// diagonal that cannot be reached with this many edits.
type cell struct {
	reach int
	from  pred
}

var unreached = cell{reach: -1}

// snake returns the length of the run of equal symbols x[i:], y[j:].
func snake(x, y []byte, i, j int) int {
	k := 0
	for i+k < len(x) && j+k < len(y) && x[i+k] == y[j+k] {
		k++
	}

	return k
}

// terminal returns the diagonal index holding (n, m) in layer d.
func terminal(n, m, d int) int { return m - n + d }

// EditDistance returns the unit-cost edit distance between x and y and an
// optimal alignment.
//
// Algorithm Outline:
//  1. Layer 0 is the snake from (0, 0).
//  2. For d = 1, 2, ...: for every k in 0..2d take the furthest of
//     Deletion (k, reach), substitution (k-1, reach+1) and
//     Insertion (k-2, reach+1) from layer d-1, dropping candidates that
//     leave the table; ties go Deletion > substitution > Insertion.
//     Extend the winner by its snake.
//  3. Stop at the first d whose terminal diagonal reaches len(y).
//  4. Walk the predecessors back to layer 0, emitting one edit per layer and
//     a run of Matches per snake; reverse.
//
// It panics if more than len(x)+len(y) layers are needed or the traceback
// does not end on the origin diagonal; both indicate a bug.
//
// Complexity:
//
//	Time   = O((n+m)·D)
//	Memory = O(D²)
func EditDistance(x, y []byte) (uint32, alignment.Alignment) {
	n, m := len(x), len(y)
	layers := [][]cell{{{reach: snake(x, y, 0, 0), from: predNone}}}

	d := 0
	for !reachedEnd(layers[d], n, m, d) {
		d++
		if d > n+m {
			panic(fmt.Sprintf("diagonal: %d layers exceed |x|+|y| = %d", d, n+m))
		}
		prev := layers[d-1]
		cur := make([]cell, 2*d+1)
		for k := range cur {
			best := unreached
			if k < len(prev) && prev[k].reach >= 0 && prev[k].reach+d-k <= n {
				best = cell{reach: prev[k].reach, from: predDeletion}
			}
			if k >= 1 && k-1 < len(prev) && prev[k-1].reach >= 0 {
				p := prev[k-1].reach + 1
				if p <= m && p+d-k <= n && p > best.reach {
					best = cell{reach: p, from: predMismatch}
				}
			}
			if k >= 2 && prev[k-2].reach >= 0 {
				p := prev[k-2].reach + 1
				if p <= m && p > best.reach {
					best = cell{reach: p, from: predInsertion}
				}
			}
			if best.reach >= 0 {
				best.reach += snake(x, y, best.reach+d-k, best.reach)
			}
			cur[k] = best
		}
		layers = append(layers, cur)
	}

	ops := walk(d, terminal(n, m, d), func(d, k int) (int, alignment.Op, bool) {
		c := layers[d][k]
		switch c.from {
		case predDeletion:
			return c.reach, alignment.Deletion, true
		case predMismatch:
			return c.reach, alignment.Mismatch, true
		case predInsertion:
			return c.reach, alignment.Insertion, true
		default:
			return c.reach, 0, false
		}
	})

	return uint32(d), alignment.New(ops)
}

// reachedEnd reports whether layer d touches (n, m).
func reachedEnd(layer []cell, n, m, d int) bool {
	k := terminal(n, m, d)

	return k >= 0 && k < len(layer) && layer[k].reach == m
}

// walk rebuilds the edit script ending at cell (d, k). at returns a cell's
// reach and, unless it is the layer-0 origin, the edit that produced it.
func walk(d, k int, at func(d, k int) (reach int, op alignment.Op, ok bool)) []alignment.Op {
	ops := make([]alignment.Op, 0, d)
	reach, op, ok := at(d, k)
	for ok {
		switch op {
		case alignment.Mismatch:
			k--
		case alignment.Insertion:
			k -= 2
		}
		d--
		if d < 0 || k < 0 {
			panic(fmt.Sprintf("diagonal: traceback left the frontier at layer %d diagonal %d", d, k))
		}
		prev, prevOp, prevOK := at(d, k)

		run := reach - prev
		if op != alignment.Deletion {
			run--
		}
		if run < 0 {
			panic(fmt.Sprintf("diagonal: negative snake %d at layer %d diagonal %d", run, d, k))
		}
		for ; run > 0; run-- {
			ops = append(ops, alignment.Match)
		}
		ops = append(ops, op)
		reach, op, ok = prev, prevOp, prevOK
	}
	if d != 0 || k != 0 {
		panic(fmt.Sprintf("diagonal: traceback stopped at layer %d diagonal %d, want origin", d, k))
	}
	for ; reach > 0; reach-- {
		ops = append(ops, alignment.Match)
	}
	slices.Reverse(ops)

	return ops
}
