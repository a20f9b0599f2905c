package editdist

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlalign/alignment"
)

// backpointer records which move produced a cell. backNone marks the origin.
type backpointer uint8

const (
	backNone backpointer = iota
	backMatch
	backMismatch
	backInsertion
	backDeletion
)

// op maps a backpointer to the alignment operation it stands for.
func (b backpointer) op() alignment.Op {
	switch b {
	case backMatch:
		return alignment.Match
	case backMismatch:
		return alignment.Mismatch
	case backInsertion:
		return alignment.Insertion
	default:
		return alignment.Deletion
	}
}

// cell is one position of the plain DP table.
type cell struct {
	cost uint32
	back backpointer
}

// EditDistance returns the unit-cost edit distance between x and y and an
// optimal alignment.
//
// Algorithm Outline:
//  1. Let n = len(x), m = len(y). Allocate one flat arena of (n+1)·(m+1) cells.
//  2. Initialize:
//     D[0][0] = 0, no backpointer
//     D[i][0] = i, Deletion
//     D[0][j] = j, Insertion
//  3. For i = 1..n, j = 1..m:
//     diag = D[i-1][j-1] + (x[i-1] != y[j-1])
//     ins  = D[i][j-1] + 1
//     del  = D[i-1][j] + 1
//     D[i][j] = min, ties resolved diag > ins > del
//  4. Walk backpointers from (n, m) to the origin and reverse.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m)
func EditDistance(x, y []byte) (uint32, alignment.Alignment) {
	n, m := len(x), len(y)
	width := m + 1
	table := make([]cell, (n+1)*width)

	for i := 1; i <= n; i++ {
		table[i*width] = cell{cost: uint32(i), back: backDeletion}
	}
	for j := 1; j <= m; j++ {
		table[j] = cell{cost: uint32(j), back: backInsertion}
	}

	for i := 1; i <= n; i++ {
		row, up := i*width, (i-1)*width
		xi := x[i-1]
		for j := 1; j <= m; j++ {
			mat := table[up+j-1].cost
			same := xi == y[j-1]
			if !same {
				mat++
			}
			ins := table[row+j-1].cost + 1
			del := table[up+j].cost + 1

			best := min(mat, ins, del)
			switch {
			case mat == best && same:
				table[row+j] = cell{cost: best, back: backMatch}
			case mat == best:
				table[row+j] = cell{cost: best, back: backMismatch}
			case ins == best:
				table[row+j] = cell{cost: best, back: backInsertion}
			default:
				table[row+j] = cell{cost: best, back: backDeletion}
			}
		}
	}

	dist := table[n*width+m].cost
	ops := make([]alignment.Op, 0, max(n, m))
	i, j := n, m
	for {
		b := table[i*width+j].back
		if b == backNone {
			break
		}
		op := b.op()
		ops = append(ops, op)
		if op.ConsumesX() {
			i--
		}
		if op.ConsumesY() {
			j--
		}
	}
	if i != 0 || j != 0 {
		panic(fmt.Sprintf("editdist: traceback stopped at (%d,%d), want origin", i, j))
	}
	slices.Reverse(ops)

	return dist, alignment.New(ops)
}
