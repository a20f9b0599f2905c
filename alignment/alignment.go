package alignment

import (
	"fmt"
	"strings"
)

// Alignment is an immutable edit script.
// The zero value is the empty alignment of two empty sequences.
type Alignment struct {
	ops []Op
}

// New builds an Alignment from ops. The slice is copied.
func New(ops []Op) Alignment {
	if len(ops) == 0 {
		return Alignment{}
	}
	cp := make([]Op, len(ops))
	copy(cp, ops)

	return Alignment{ops: cp}
}

// Repeat builds an Alignment of n copies of op.
func Repeat(op Op, n int) Alignment {
	if n <= 0 {
		return Alignment{}
	}
	ops := make([]Op, n)
	for i := range ops {
		ops[i] = op
	}

	return Alignment{ops: ops}
}

// Len returns the number of operations.
func (a Alignment) Len() int { return len(a.ops) }

// At returns the i-th operation. It panics if i is out of range,
// like a slice index would.
func (a Alignment) At(i int) Op { return a.ops[i] }

// Ops returns a copy of the operations.
func (a Alignment) Ops() []Op {
	cp := make([]Op, len(a.ops))
	copy(cp, a.ops)

	return cp
}

// Equal reports whether a and b hold the same operations.
func (a Alignment) Equal(b Alignment) bool {
	if len(a.ops) != len(b.ops) {
		return false
	}
	for i := range a.ops {
		if a.ops[i] != b.ops[i] {
			return false
		}
	}

	return true
}

// String serializes the alignment over {'=', 'X', 'I', 'D'}.
func (a Alignment) String() string {
	var sb strings.Builder
	sb.Grow(len(a.ops))
	for _, op := range a.ops {
		sb.WriteByte(op.Byte())
	}

	return sb.String()
}

// Parse reads the textual form produced by String.
// Any other character yields a zero Alignment and an error wrapping
// ErrUnknownOp; Parse never panics.
func Parse(s string) (Alignment, error) {
	ops := make([]Op, 0, len(s))
	for i := 0; i < len(s); i++ {
		op, ok := OpFromByte(s[i])
		if !ok {
			return Alignment{}, fmt.Errorf("%w: %q at offset %d", ErrUnknownOp, s[i], i)
		}
		ops = append(ops, op)
	}

	return Alignment{ops: ops}, nil
}

// DistAndGaps returns, in one pass, the number of non-Match operations and
// the number of gap runs. A gap run is a maximal block of consecutive
// Insertions or consecutive Deletions, so "DDII" holds two runs.
//
// Complexity: O(len) time, O(1) memory.
func (a Alignment) DistAndGaps() (dist, gaps uint32) {
	var (
		prev    Op
		hasPrev bool
	)
	for _, op := range a.ops {
		if op != Match {
			dist++
		}
		if op.IsGap() && (!hasPrev || prev != op) {
			gaps++
		}
		prev, hasPrev = op, true
	}

	return dist, gaps
}

// Distance returns the number of non-Match operations.
func (a Alignment) Distance() uint32 {
	d, _ := a.DistAndGaps()

	return d
}

// GapCount returns the number of gap runs.
func (a Alignment) GapCount() uint32 {
	_, g := a.DistAndGaps()

	return g
}

// Consumed returns how many symbols of the reference and of the query the
// alignment consumes when replayed.
func (a Alignment) Consumed() (xn, yn int) {
	for _, op := range a.ops {
		if op.ConsumesX() {
			xn++
		}
		if op.ConsumesY() {
			yn++
		}
	}

	return xn, yn
}

// Swap returns the alignment of (y, x): every Insertion becomes a Deletion
// and vice versa.
func (a Alignment) Swap() Alignment {
	ops := make([]Op, len(a.ops))
	for i, op := range a.ops {
		switch op {
		case Insertion:
			ops[i] = Deletion
		case Deletion:
			ops[i] = Insertion
		default:
			ops[i] = op
		}
	}

	return Alignment{ops: ops}
}

// Validate replays a against (x, y). It fails with ErrLengthMismatch when the
// operations overrun or under-consume either sequence, and when a Match is
// placed on different symbols or a Mismatch on equal ones.
func (a Alignment) Validate(x, y []byte) error {
	i, j := 0, 0
	for k, op := range a.ops {
		if op.ConsumesX() && i >= len(x) {
			return fmt.Errorf("%w: op %d (%s) past end of reference", ErrLengthMismatch, k, op)
		}
		if op.ConsumesY() && j >= len(y) {
			return fmt.Errorf("%w: op %d (%s) past end of query", ErrLengthMismatch, k, op)
		}
		switch op {
		case Match:
			if x[i] != y[j] {
				return fmt.Errorf("%w: op %d is Match on %q/%q", ErrLengthMismatch, k, x[i], y[j])
			}
		case Mismatch:
			if x[i] == y[j] {
				return fmt.Errorf("%w: op %d is Mismatch on %q/%q", ErrLengthMismatch, k, x[i], y[j])
			}
		}
		if op.ConsumesX() {
			i++
		}
		if op.ConsumesY() {
			j++
		}
	}
	if i != len(x) || j != len(y) {
		return fmt.Errorf("%w: consumed (%d,%d) of (%d,%d)", ErrLengthMismatch, i, j, len(x), len(y))
	}

	return nil
}

// Recover lays the alignment out as three equally long tracks:
// the reference with gaps, a marker line, and the query with gaps.
// Aligned columns carry '|' for equal symbols and 'X' otherwise; a gap
// column carries a blank on the gapped side and a blank marker.
func (a Alignment) Recover(x, y []byte) (ref, marker, query []byte, err error) {
	xn, yn := a.Consumed()
	if xn != len(x) || yn != len(y) {
		return nil, nil, nil, fmt.Errorf("%w: consumes (%d,%d), got (%d,%d)",
			ErrLengthMismatch, xn, yn, len(x), len(y))
	}

	ref = make([]byte, 0, len(a.ops))
	marker = make([]byte, 0, len(a.ops))
	query = make([]byte, 0, len(a.ops))
	i, j := 0, 0
	for _, op := range a.ops {
		switch op {
		case Match, Mismatch:
			ref = append(ref, x[i])
			query = append(query, y[j])
			if x[i] == y[j] {
				marker = append(marker, '|')
			} else {
				marker = append(marker, 'X')
			}
			i++
			j++
		case Deletion:
			ref = append(ref, x[i])
			marker = append(marker, ' ')
			query = append(query, ' ')
			i++
		case Insertion:
			ref = append(ref, ' ')
			marker = append(marker, ' ')
			query = append(query, y[j])
			j++
		}
	}

	return ref, marker, query, nil
}
