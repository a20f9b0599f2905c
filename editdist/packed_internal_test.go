package editdist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPackedCell_Layout round-trips every field through the word.
func TestPackedCell_Layout(t *testing.T) {
	c := newPackedCell(123456, 789, gapInsertion, tagMismatch)
	assert.Equal(t, uint32(123456), c.cost())
	assert.Equal(t, uint16(789), c.gaps())
	assert.Equal(t, uint8(gapInsertion), c.state())
	assert.Equal(t, uint8(tagMismatch), c.tag())
}

// TestPackedCell_LessMatchesWordOrder checks that the field-wise policy is
// the unsigned order of the packed words.
func TestPackedCell_LessMatchesWordOrder(t *testing.T) {
	cells := []packedCell{
		newPackedCell(1, 0, gapNone, tagMatch),
		newPackedCell(1, 0, gapNone, tagMismatch),
		newPackedCell(1, 0, gapDeletion, tagDeletion),
		newPackedCell(1, 0, gapInsertion, tagInsertion),
		newPackedCell(1, 1, gapNone, tagMatch),
		newPackedCell(2, 0, gapNone, tagMatch),
		newPackedCell(0, maxGaps, gapInsertion, tagNone),
	}
	for _, a := range cells {
		for _, b := range cells {
			assert.Equal(t, a < b, a.less(b), "%x vs %x", uint64(a), uint64(b))
		}
	}
}

// TestPackedCell_Moves covers gap-run accounting.
func TestPackedCell_Moves(t *testing.T) {
	origin := newPackedCell(0, 0, gapNone, tagNone)

	d1 := origin.delMove()
	assert.Equal(t, uint32(1), d1.cost())
	assert.Equal(t, uint16(1), d1.gaps())
	assert.Equal(t, uint8(tagDeletion), d1.tag())

	d2 := d1.delMove()
	assert.Equal(t, uint16(1), d2.gaps(), "extending a deletion keeps the run")

	i1 := d2.insMove()
	assert.Equal(t, uint16(2), i1.gaps(), "switching gap kind opens a run")

	m := i1.matMove(true)
	assert.Equal(t, uint32(3), m.cost())
	assert.Equal(t, uint8(gapNone), m.state())
	assert.Equal(t, uint8(tagMatch), m.tag())

	x := m.matMove(false)
	assert.Equal(t, uint32(4), x.cost())
	assert.Equal(t, uint8(tagMismatch), x.tag())

	assert.Equal(t, uint16(3), x.delMove().gaps())
}

// TestPackedCell_GapCounterSaturates keeps the cost field intact.
func TestPackedCell_GapCounterSaturates(t *testing.T) {
	c := newPackedCell(5, maxGaps, gapInsertion, tagInsertion).delMove()
	assert.Equal(t, uint16(maxGaps), c.gaps())
	assert.Equal(t, uint32(6), c.cost())
}
