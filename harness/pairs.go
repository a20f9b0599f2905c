package harness

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedLine indicates an input line that is neither x<TAB>y nor
// id<TAB>x<TAB>y.
var ErrMalformedLine = errors.New("harness: malformed pair line")

// maxLineBytes bounds a single input line.
const maxLineBytes = 64 << 20

// Pair is one reference/query pair to align.
type Pair struct {
	ID string
	X  []byte
	Y  []byte
}

// ReadPairs parses tab-separated pairs from r. Blank lines are skipped.
// Two-column lines get their zero-based pair index as ID.
func ReadPairs(r io.Reader) ([]Pair, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)

	var pairs []Pair
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		var p Pair
		switch len(fields) {
		case 2:
			p = Pair{ID: strconv.Itoa(len(pairs)), X: []byte(fields[0]), Y: []byte(fields[1])}
		case 3:
			if fields[0] == "" {
				return nil, fmt.Errorf("%w: line %d: empty id", ErrMalformedLine, lineNo)
			}
			p = Pair{ID: fields[0], X: []byte(fields[1]), Y: []byte(fields[2])}
		default:
			return nil, fmt.Errorf("%w: line %d: %d fields", ErrMalformedLine, lineNo, len(fields))
		}
		pairs = append(pairs, p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("harness: read pairs: %w", err)
	}

	return pairs, nil
}

// WritePairs writes pairs in the three-column form read by ReadPairs.
func WritePairs(w io.Writer, pairs []Pair) error {
	bw := bufio.NewWriter(w)
	for _, p := range pairs {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\n", p.ID, p.X, p.Y); err != nil {
			return fmt.Errorf("harness: write pairs: %w", err)
		}
	}

	return bw.Flush()
}
