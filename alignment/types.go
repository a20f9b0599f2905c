package alignment

import "errors"

var (
	// ErrUnknownOp is returned by Parse when the text holds a symbol outside
	// the {'=', 'X', 'I', 'D'} alphabet.
	ErrUnknownOp = errors.New("alignment: unknown operation symbol")

	// ErrLengthMismatch indicates that replaying an Alignment does not consume
	// exactly the given reference and query sequences.
	ErrLengthMismatch = errors.New("alignment: operations do not fit the sequences")
)

// Op is a single edit operation.
type Op uint8

const (
	// Match aligns two equal symbols.
	Match Op = iota

	// Mismatch aligns two different symbols (a substitution).
	Mismatch

	// Insertion consumes one symbol of the query only.
	Insertion

	// Deletion consumes one symbol of the reference only.
	Deletion
)

// Byte returns the single-character code of op: '=', 'X', 'I' or 'D'.
func (op Op) Byte() byte {
	switch op {
	case Match:
		return '='
	case Mismatch:
		return 'X'
	case Insertion:
		return 'I'
	case Deletion:
		return 'D'
	default:
		return '?'
	}
}

// String implements fmt.Stringer.
func (op Op) String() string {
	switch op {
	case Match:
		return "Match"
	case Mismatch:
		return "Mismatch"
	case Insertion:
		return "Insertion"
	case Deletion:
		return "Deletion"
	default:
		return "Op(?)"
	}
}

// OpFromByte maps a character code back to its Op.
// The second result is false for any character outside the alphabet.
func OpFromByte(c byte) (Op, bool) {
	switch c {
	case '=':
		return Match, true
	case 'X':
		return Mismatch, true
	case 'I':
		return Insertion, true
	case 'D':
		return Deletion, true
	default:
		return 0, false
	}
}

// ConsumesX reports whether op advances the reference position.
func (op Op) ConsumesX() bool { return op != Insertion }

// ConsumesY reports whether op advances the query position.
func (op Op) ConsumesY() bool { return op != Deletion }

// IsGap reports whether op is an Insertion or a Deletion.
func (op Op) IsGap() bool { return op == Insertion || op == Deletion }
