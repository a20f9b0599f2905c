package diagonal

import (
	"fmt"

	"github.com/katalvlaran/lvlalign/alignment"
)

// packedCell is one frontier entry of the packed variant. Bit layout, most
// to least significant:
//
//	63..32  reach          query position reached on the diagonal
//	31..16  gap runs       gap runs on the path so far (saturating)
//	15..8   gap state      gapNone, gapDeletion or gapInsertion
//	 7..0   predecessor    tagDeletion, tagInsertion, tagMismatch, tagNone
//
// The zero word is not a valid cell (no tag is 0) and marks an unreachable
// diagonal.
type packedCell uint64

const (
	reachShift = 32
	gapsShift  = 16
	stateShift = 8

	gapsMask  packedCell = 0xFFFF << gapsShift
	stateMask packedCell = 0xFF << stateShift
	tagMask   packedCell = 0xFF

	maxGaps = 0xFFFF

	unreachable packedCell = 0
)

// Gap states.
const (
	gapNone      = 0
	gapDeletion  = 1
	gapInsertion = 2
)

// Predecessor tags.
const (
	tagDeletion  = 1
	tagInsertion = 2
	tagMismatch  = 3
	tagNone      = 0xF0
)

// origin returns the layer-0 cell reaching p.
func origin(p int) packedCell {
	return packedCell(p)<<reachShift | tagNone
}

func (c packedCell) reach() int   { return int(c >> reachShift) }
func (c packedCell) gaps() uint16 { return uint16((c & gapsMask) >> gapsShift) }
func (c packedCell) state() uint8 { return uint8((c & stateMask) >> stateShift) }
func (c packedCell) tag() uint8   { return uint8(c & tagMask) }

func (c packedCell) with(state, tag uint8) packedCell {
	return c&^(stateMask|tagMask) | packedCell(state)<<stateShift | packedCell(tag)
}

// openGap counts a new gap run unless c is already inside one of the same
// kind.
func (c packedCell) openGap(state uint8) packedCell {
	if c.state() != state && c.gaps() < maxGaps {
		c += 1 << gapsShift
	}

	return c
}

// fromAbove extends c with a Deletion.
func (c packedCell) fromAbove() packedCell {
	return c.openGap(gapDeletion).with(gapDeletion, tagDeletion)
}

// fromMat extends c with a substitution.
func (c packedCell) fromMat() packedCell {
	return (c + 1<<reachShift).with(gapNone, tagMismatch)
}

// fromLeft extends c with an Insertion.
func (c packedCell) fromLeft() packedCell {
	return (c + 1<<reachShift).openGap(gapInsertion).with(gapInsertion, tagInsertion)
}

// extend advances the reach by a snake of length n. A non-empty snake closes
// any open gap.
func (c packedCell) extend(n int) packedCell {
	if n == 0 {
		return c
	}

	return (c + packedCell(n)<<reachShift).with(gapNone, c.tag())
}

// better reports whether c should replace o. Fields are compared in order:
//
//  1. larger reach
//  2. fewer gap runs
//  3. larger gap state (Insertion > Deletion > none)
//  4. larger predecessor tag (Mismatch > Insertion > Deletion)
//
// This is the unsigned order of the words with the gap-run field inverted.
func (c packedCell) better(o packedCell) bool {
	if o == unreachable {
		return c != unreachable
	}
	if c.reach() != o.reach() {
		return c.reach() > o.reach()
	}
	if c.gaps() != o.gaps() {
		return c.gaps() < o.gaps()
	}
	if c.state() != o.state() {
		return c.state() > o.state()
	}

	return c.tag() > o.tag()
}

// tagOp maps a predecessor tag to its edit. ok is false for the origin.
func tagOp(tag uint8) (op alignment.Op, ok bool) {
	switch tag {
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

// EditDistancePacked returns the same distance as EditDistance over frontier
// cells packed into one 64-bit word. Among equally far candidates it prefers
// the one with fewer gap runs so far, so its alignment can differ from the
// plain variant while staying optimal.
//
// Besides the assertions of EditDistance, it panics when the gap-run counter
// of the terminal cell disagrees with the returned alignment.
//
// Complexity:
//
//	Time   = O((n+m)·D)
//	Memory = O(D²) words
func EditDistancePacked(x, y []byte) (uint32, alignment.Alignment) {
	n, m := len(x), len(y)
	layers := [][]packedCell{{origin(snake(x, y, 0, 0))}}

	d := 0
	for !reachedEndPacked(layers[d], n, m, d) {
		d++
		if d > n+m {
			panic(fmt.Sprintf("diagonal: %d layers exceed |x|+|y| = %d", d, n+m))
		}
		prev := layers[d-1]
		cur := make([]packedCell, 2*d+1)
		for k := range cur {
			best := unreachable
			if k < len(prev) && prev[k] != unreachable && prev[k].reach()+d-k <= n {
				best = prev[k].fromAbove()
			}
			if k >= 1 && k-1 < len(prev) && prev[k-1] != unreachable {
				c := prev[k-1].fromMat()
				if p := c.reach(); p <= m && p+d-k <= n && c.better(best) {
					best = c
				}
			}
			if k >= 2 && prev[k-2] != unreachable {
				c := prev[k-2].fromLeft()
				if c.reach() <= m && c.better(best) {
					best = c
				}
			}
			if best != unreachable {
				p := best.reach()
				best = best.extend(snake(x, y, p+d-k, p))
			}
			cur[k] = best
		}
		layers = append(layers, cur)
	}

	k := terminal(n, m, d)
	gaps := layers[d][k].gaps()
	ops := walk(d, k, func(d, k int) (int, alignment.Op, bool) {
		c := layers[d][k]
		op, ok := tagOp(c.tag())

		return c.reach(), op, ok
	})

	aln := alignment.New(ops)
	if got := aln.GapCount(); gaps < maxGaps && got != uint32(gaps) {
		panic(fmt.Sprintf("diagonal: packed gap counter %d disagrees with alignment %d (%s)", gaps, got, aln))
	}

	return uint32(d), aln
}

// reachedEndPacked reports whether layer d touches (n, m).
func reachedEndPacked(layer []packedCell, n, m, d int) bool {
	k := terminal(n, m, d)

	return k >= 0 && k < len(layer) && layer[k] != unreachable && layer[k].reach() == m
}
