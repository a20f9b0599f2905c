package diagonal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cellOf(reach int, gaps uint16, state, tag uint8) packedCell {
	return packedCell(reach)<<reachShift | packedCell(gaps)<<gapsShift | packedCell(state)<<stateShift | packedCell(tag)
}

// TestPackedCell_BetterIsFlippedWordOrder checks the field-wise policy
// against the word order with the gap-run field inverted.
func TestPackedCell_BetterIsFlippedWordOrder(t *testing.T) {
	cells := []packedCell{
		cellOf(3, 0, gapNone, tagMismatch),
		cellOf(3, 1, gapDeletion, tagDeletion),
		cellOf(3, 1, gapInsertion, tagInsertion),
		cellOf(3, 2, gapNone, tagMismatch),
		cellOf(4, 5, gapNone, tagDeletion),
		cellOf(0, 0, gapNone, tagNone),
	}
	for _, a := range cells {
		for _, b := range cells {
			if a == b {
				continue
			}
			assert.Equal(t, a^gapsMask > b^gapsMask, a.better(b), "%x vs %x", uint64(a), uint64(b))
		}
	}
}

// TestPackedCell_Unreachable never wins and always loses.
func TestPackedCell_Unreachable(t *testing.T) {
	c := origin(0)
	assert.True(t, c.better(unreachable))
	assert.False(t, unreachable.better(c))
}

// TestPackedCell_Moves covers reach and gap-run accounting.
func TestPackedCell_Moves(t *testing.T) {
	c := origin(2)
	assert.Equal(t, 2, c.reach())

	del := c.fromAbove()
	assert.Equal(t, 2, del.reach())
	assert.Equal(t, uint16(1), del.gaps())
	assert.Equal(t, uint8(tagDeletion), del.tag())
	assert.Equal(t, uint16(1), del.fromAbove().gaps())

	ins := del.fromLeft()
	assert.Equal(t, 3, ins.reach())
	assert.Equal(t, uint16(2), ins.gaps())

	closed := ins.extend(4)
	assert.Equal(t, 7, closed.reach())
	assert.Equal(t, uint8(gapNone), closed.state())
	assert.Equal(t, uint8(tagInsertion), closed.tag())
	assert.Equal(t, uint16(3), closed.fromLeft().gaps())

	assert.Equal(t, ins, ins.extend(0))

	sub := ins.fromMat()
	assert.Equal(t, 4, sub.reach())
	assert.Equal(t, uint8(gapNone), sub.state())
	assert.Equal(t, uint16(2), sub.gaps())
}
