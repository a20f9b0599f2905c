package editdist

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/lvlalign/alignment"
)

// packedCell is one position of the packed DP table. Bit layout, most to
// least significant:
//
//	63..32  cost           accumulated edit cost
//	31..16  gap runs       number of gap runs on the path (saturating)
//	15..8   gap state      gapNone, gapDeletion or gapInsertion
//	 7..0   backpointer    tagMatch, tagDeletion, tagInsertion, tagMismatch, tagNone
//
// Keeping the whole cell in one word halves the memory traffic of the
// plain table over an O(n·m) arena.
type packedCell uint64

const (
	costShift  = 32
	gapsShift  = 16
	stateShift = 8

	gapsMask  packedCell = 0xFFFF << gapsShift
	stateMask packedCell = 0xFF << stateShift
	tagMask   packedCell = 0xFF

	maxGaps = 0xFFFF
)

// Gap states.
const (
	gapNone      = 0
	gapDeletion  = 1
	gapInsertion = 2
)

// Backpointer tags. The numeric order matters for tie-breaking: see less.
const (
	tagMatch     = 0
	tagDeletion  = 1
	tagInsertion = 2
	tagMismatch  = 3
	tagNone      = 0xF0
)

func newPackedCell(cost uint32, gaps uint16, state, tag uint8) packedCell {
	return packedCell(cost)<<costShift |
		packedCell(gaps)<<gapsShift |
		packedCell(state)<<stateShift |
		packedCell(tag)
}

func (c packedCell) cost() uint32 { return uint32(c >> costShift) }
func (c packedCell) gaps() uint16 { return uint16((c & gapsMask) >> gapsShift) }
func (c packedCell) state() uint8 { return uint8((c & stateMask) >> stateShift) }
func (c packedCell) tag() uint8   { return uint8(c & tagMask) }

// withState replaces the gap state and backpointer tag.
func (c packedCell) withState(state, tag uint8) packedCell {
	return c&^(stateMask|tagMask) | packedCell(state)<<stateShift | packedCell(tag)
}

// addCost adds d to the cost field.
func (c packedCell) addCost(d uint32) packedCell {
	return c + packedCell(d)<<costShift
}

// openGap counts a new gap run unless the path is already inside a gap of
// the same kind. The counter saturates instead of spilling into the cost.
func (c packedCell) openGap(state uint8) packedCell {
	if c.state() == state {
		return c
	}
	if c.gaps() < maxGaps {
		c += 1 << gapsShift
	}

	return c
}

// matMove extends c with a diagonal step.
func (c packedCell) matMove(same bool) packedCell {
	if same {
		return c.withState(gapNone, tagMatch)
	}

	return c.addCost(1).withState(gapNone, tagMismatch)
}

// delMove extends c with a Deletion.
func (c packedCell) delMove() packedCell {
	return c.addCost(1).openGap(gapDeletion).withState(gapDeletion, tagDeletion)
}

// insMove extends c with an Insertion.
func (c packedCell) insMove() packedCell {
	return c.addCost(1).openGap(gapInsertion).withState(gapInsertion, tagInsertion)
}

// less is the packed tie-break policy. Fields are compared in layout order:
//
//  1. lower cost
//  2. fewer gap runs
//  3. lower gap state (none < Deletion < Insertion)
//  4. lower backpointer tag (Match < Deletion < Insertion < Mismatch)
//
// This is exactly the unsigned order of the packed words; it is spelled out
// field by field so the policy can be read without decoding the layout.
func (c packedCell) less(o packedCell) bool {
	if c.cost() != o.cost() {
		return c.cost() < o.cost()
	}
	if c.gaps() != o.gaps() {
		return c.gaps() < o.gaps()
	}
	if c.state() != o.state() {
		return c.state() < o.state()
	}

	return c.tag() < o.tag()
}

// packedMin returns the least of the given cells under less.
func packedMin(a, b, c packedCell) packedCell {
	if b.less(a) {
		a = b
	}
	if c.less(a) {
		a = c
	}

	return a
}

// tagOp maps a backpointer tag to its operation. ok is false for tagNone.
func tagOp(tag uint8) (op alignment.Op, ok bool) {
	switch tag {
	case tagMatch:
		return alignment.Match, true
	case tagDeletion:
		return alignment.Deletion, true
	case tagInsertion:
		return alignment.Insertion, true
	case tagMismatch:
		return alignment.Mismatch, true
	default:
		return 0, false
	}
}

// EditDistancePacked returns the same distance as EditDistance, computed over
// a table of packed 64-bit cells. Among cost-equal candidates it prefers the
// one with fewer gap runs so far, so its alignment can differ from the plain
// variant while staying optimal.
//
// The gap-run counter of the final cell is checked against the returned
// alignment; a disagreement is a bug and panics.
//
// Complexity:
//
//	Time   = O(n·m)
//	Memory = O(n·m) words
func EditDistancePacked(x, y []byte) (uint32, alignment.Alignment) {
	n, m := len(x), len(y)
	width := m + 1
	table := make([]packedCell, (n+1)*width)

	table[0] = newPackedCell(0, 0, gapNone, tagNone)
	for i := 1; i <= n; i++ {
		table[i*width] = newPackedCell(uint32(i), 1, gapDeletion, tagDeletion)
	}
	for j := 1; j <= m; j++ {
		table[j] = newPackedCell(uint32(j), 1, gapInsertion, tagInsertion)
	}

	for i := 1; i <= n; i++ {
		row, up := i*width, (i-1)*width
		xi := x[i-1]
		for j := 1; j <= m; j++ {
			mat := table[up+j-1].matMove(xi == y[j-1])
			del := table[up+j].delMove()
			ins := table[row+j-1].insMove()
			table[row+j] = packedMin(mat, del, ins)
		}
	}

	last := table[n*width+m]
	dist, gaps := last.cost(), last.gaps()

	ops := make([]alignment.Op, 0, max(n, m))
	i, j := n, m
	for {
		op, ok := tagOp(table[i*width+j].tag())
		if !ok {
			break
		}
		ops = append(ops, op)
		if op.ConsumesX() {
			i--
		}
		if op.ConsumesY() {
			j--
		}
	}
	if i != 0 || j != 0 {
		panic(fmt.Sprintf("editdist: packed traceback stopped at (%d,%d), want origin", i, j))
	}
	slices.Reverse(ops)

	aln := alignment.New(ops)
	if got := aln.GapCount(); gaps < maxGaps && got != uint32(gaps) {
		panic(fmt.Sprintf("editdist: packed gap counter %d disagrees with alignment %d (%s)", gaps, got, aln))
	}

	return dist, aln
}
