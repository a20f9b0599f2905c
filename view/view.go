package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/lvlalign/alignment"
)

// Theme holds one style per column kind.
type Theme struct {
	Match    lipgloss.Style
	Mismatch lipgloss.Style
	Gap      lipgloss.Style
	Stats    lipgloss.Style
}

// Colors used by DefaultTheme.
const (
	ColorMatch    = lipgloss.Color("#2CD7C7")
	ColorMismatch = lipgloss.Color("#E74C3C")
	ColorGap      = lipgloss.Color("#F4D03F")
	ColorMuted    = lipgloss.Color("241")
)

// DefaultTheme returns green-ish matches, red mismatches and amber gaps,
// rendered for the process-wide lipgloss renderer.
func DefaultTheme() Theme {
	return NewTheme(lipgloss.DefaultRenderer())
}

// NewTheme builds the default palette on r, so that the color profile
// follows r's output rather than the process-wide renderer.
func NewTheme(r *lipgloss.Renderer) Theme {
	return Theme{
		Match:    r.NewStyle().Foreground(ColorMatch),
		Mismatch: r.NewStyle().Foreground(ColorMismatch).Bold(true),
		Gap:      r.NewStyle().Foreground(ColorGap),
		Stats:    r.NewStyle().Foreground(ColorMuted),
	}
}

// Options configures Render.
//
// Fields:
//   - Width — columns per block; 0 or less disables wrapping.
//   - Color — style columns with Theme.
//   - Stats — prepend a "dist=… gaps=…" line.
//   - Theme — styles used when Color is set.
type Options struct {
	Width int
	Color bool
	Stats bool
	Theme Theme
}

// DefaultOptions returns 80-column, uncolored output with a stats line.
func DefaultOptions() Options {
	return Options{Width: 80, Stats: true, Theme: DefaultTheme()}
}

// kind classifies a column by its marker byte.
type kind uint8

const (
	kindMatch kind = iota
	kindMismatch
	kindGap
)

func kindOf(marker byte) kind {
	switch marker {
	case '|':
		return kindMatch
	case 'X':
		return kindMismatch
	default:
		return kindGap
	}
}

// Render lays aln out against (x, y). It returns an error wrapping
// alignment.ErrLengthMismatch when aln does not fit the sequences.
func Render(aln alignment.Alignment, x, y []byte, opts Options) (string, error) {
	ref, marker, query, err := aln.Recover(x, y)
	if err != nil {
		return "", fmt.Errorf("view: %w", err)
	}

	var sb strings.Builder
	if opts.Stats {
		dist, gaps := aln.DistAndGaps()
		line := fmt.Sprintf("dist=%d gaps=%d len=%d", dist, gaps, aln.Len())
		if opts.Color {
			line = opts.Theme.Stats.Render(line)
		}
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	width := opts.Width
	if width <= 0 {
		width = max(len(marker), 1)
	}
	for start := 0; start < len(marker); start += width {
		end := min(start+width, len(marker))
		if start > 0 {
			sb.WriteByte('\n')
		}
		for _, track := range [][]byte{ref, marker, query} {
			sb.WriteString(renderTrack(track[start:end], marker[start:end], opts))
			sb.WriteByte('\n')
		}
	}

	return sb.String(), nil
}

// renderTrack writes one block of a track, styling runs of equal kind.
func renderTrack(track, marker []byte, opts Options) string {
	if !opts.Color {
		return string(track)
	}

	var sb strings.Builder
	for i := 0; i < len(track); {
		k := kindOf(marker[i])
		j := i + 1
		for j < len(track) && kindOf(marker[j]) == k {
			j++
		}
		sb.WriteString(opts.Theme.style(k).Render(string(track[i:j])))
		i = j
	}

	return sb.String()
}

func (t Theme) style(k kind) lipgloss.Style {
	switch k {
	case kindMatch:
		return t.Match
	case kindMismatch:
		return t.Mismatch
	default:
		return t.Gap
	}
}
