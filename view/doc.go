// Package view renders an alignment as three aligned text tracks for
// inspection in a terminal: the reference with gaps, a marker line and the
// query with gaps.
//
//	ACG T
//	|X  |
//	AA TT
//
// Long alignments are wrapped into blocks of Options.Width columns. With
// Options.Color set, columns are styled with lipgloss by kind: match,
// mismatch or gap.
package view
