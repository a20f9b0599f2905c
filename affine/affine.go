package affine

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlalign/alignment"
)

// state indexes the three layers of a table position.
type state uint8

const (
	stateM state = iota // last column is an aligned pair
	stateD              // last column is a Deletion
	stateI              // last column is an Insertion
	numStates

	// noBack marks a cell without predecessor: the origin and the sentinels.
	noBack state = 0xFF
)

// cell is one (position, state) entry of the arena.
type cell struct {
	score int64
	back  state
}

// candidate is a scored predecessor.
type candidate struct {
	score int64
	from  state
}

// argmax returns the best of the three candidates in M, D, I order.
// Ties go to the later state.
func argmax(m, d, i candidate) candidate {
	best := m
	if d.score >= best.score {
		best = d
	}
	if i.score >= best.score {
		best = i
	}

	return best
}

// Align returns the maximum affine-gap score of a global alignment of x and
// y under p, together with one optimal alignment.
//
// Algorithm Outline:
//  1. Let n = len(x), m = len(y). Allocate a flat arena of (n+1)·(m+1)·3
//     cells, every one set to a sentinel low enough never to win.
//  2. Borders:
//     M[0][0] = 0, no backpointer (the unique traceback terminator)
//     D[i][0] = GapOpen + (i-1)·GapExtend, from D
//     I[0][j] = GapOpen + (j-1)·GapExtend, from I
//  3. For i = 1..n, j = 1..m:
//     M[i][j] = max(M, D, I)[i-1][j-1] + (Match | Mismatch)
//     D[i][j] = max(M+GapOpen, D+GapExtend, I+GapOpen)[i-1][j]
//     I[i][j] = max(M+GapOpen, D+GapOpen, I+GapExtend)[i][j-1]
//     each cell remembers the state it came from.
//  4. Pick the best state at (n, m) and follow backpointers, switching
//     state as recorded, until a cell without backpointer; reverse.
//
// Ties, both inside the recurrence and for the final state, go to the later
// state in the order M, D, I.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)
func Align(x, y []byte, p Params) (int64, alignment.Alignment) {
	n, m := len(x), len(y)
	width := m + 1
	at := func(i, j int, s state) int { return (i*width+j)*int(numStates) + int(s) }

	// Any border value is at least k·min(penalties) for k <= n+m, so the
	// sentinel stays strictly below it. Non-negative penalties fall back to -1
	// to keep the sentinel below the origin's 0.
	low := min(p.Mismatch, p.GapOpen, p.GapExtend, -1)
	sentinel := low * int64(n+m+9)

	table := make([]cell, (n+1)*width*int(numStates))
	for k := range table {
		table[k] = cell{score: sentinel, back: noBack}
	}
	table[at(0, 0, stateM)] = cell{score: 0, back: noBack}
	for i := 1; i <= n; i++ {
		table[at(i, 0, stateD)] = cell{score: p.GapOpen + int64(i-1)*p.GapExtend, back: stateD}
	}
	for j := 1; j <= m; j++ {
		table[at(0, j, stateI)] = cell{score: p.GapOpen + int64(j-1)*p.GapExtend, back: stateI}
	}

	for i := 1; i <= n; i++ {
		xi := x[i-1]
		for j := 1; j <= m; j++ {
			pair := p.Mismatch
			if xi == y[j-1] {
				pair = p.Match
			}

			diag := table[at(i-1, j-1, 0):at(i-1, j, 0)]
			best := argmax(
				candidate{diag[stateM].score + pair, stateM},
				candidate{diag[stateD].score + pair, stateD},
				candidate{diag[stateI].score + pair, stateI},
			)
			table[at(i, j, stateM)] = cell{score: best.score, back: best.from}

			up := table[at(i-1, j, 0):at(i-1, j+1, 0)]
			best = argmax(
				candidate{up[stateM].score + p.GapOpen, stateM},
				candidate{up[stateD].score + p.GapExtend, stateD},
				candidate{up[stateI].score + p.GapOpen, stateI},
			)
			table[at(i, j, stateD)] = cell{score: best.score, back: best.from}

			left := table[at(i, j-1, 0):at(i, j, 0)]
			best = argmax(
				candidate{left[stateM].score + p.GapOpen, stateM},
				candidate{left[stateD].score + p.GapOpen, stateD},
				candidate{left[stateI].score + p.GapExtend, stateI},
			)
			table[at(i, j, stateI)] = cell{score: best.score, back: best.from}
		}
	}

	final := table[at(n, m, 0) : at(n, m, 0)+int(numStates)]
	last := argmax(
		candidate{final[stateM].score, stateM},
		candidate{final[stateD].score, stateD},
		candidate{final[stateI].score, stateI},
	)

	return last.score, traceback(table, at, x, y, last.from)
}

// traceback walks the arena from (len(x), len(y)) in state st and returns
// the reversed path. It panics unless the walk ends at the origin.
func traceback(table []cell, at func(i, j int, s state) int, x, y []byte, st state) alignment.Alignment {
	i, j := len(x), len(y)
	ops := make([]alignment.Op, 0, max(i, j))
	for {
		back := table[at(i, j, st)].back
		if back == noBack {
			break
		}
		switch st {
		case stateM:
			i--
			j--
			if x[i] == y[j] {
				ops = append(ops, alignment.Match)
			} else {
				ops = append(ops, alignment.Mismatch)
			}
		case stateD:
			i--
			ops = append(ops, alignment.Deletion)
		default:
			j--
			ops = append(ops, alignment.Insertion)
		}
		st = back
	}
	if i != 0 || j != 0 {
		panic(fmt.Sprintf("affine: traceback stopped at (%d,%d) in state %d, want origin", i, j, st))
	}
	slices.Reverse(ops)

	return alignment.New(ops)
}
