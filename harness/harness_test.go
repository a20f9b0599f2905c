package harness_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/lvlalign/affine"
	"github.com/katalvlaran/lvlalign/alignment"
	"github.com/katalvlaran/lvlalign/harness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestReadPairs accepts both column layouts and skips blank lines.
func TestReadPairs(t *testing.T) {
	in := "ACGT\tACCTG\n\nr7\tAAA\tAAC\r\n"
	pairs, err := harness.ReadPairs(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, harness.Pair{ID: "0", X: []byte("ACGT"), Y: []byte("ACCTG")}, pairs[0])
	assert.Equal(t, harness.Pair{ID: "r7", X: []byte("AAA"), Y: []byte("AAC")}, pairs[1])
}

// TestReadPairs_EmptySequence keeps an empty column as an empty sequence.
func TestReadPairs_EmptySequence(t *testing.T) {
	pairs, err := harness.ReadPairs(strings.NewReader("1\tACGT\t\n"))
	require.NoError(t, err)
	require.Len(t, pairs, 1)
	assert.Empty(t, pairs[0].Y)
}

// TestReadPairs_Malformed rejects other layouts.
func TestReadPairs_Malformed(t *testing.T) {
	for _, in := range []string{"ACGT\n", "a\tb\tc\td\n", "\tACGT\tACGT\n"} {
		_, err := harness.ReadPairs(strings.NewReader(in))
		assert.ErrorIs(t, err, harness.ErrMalformedLine, "%q", in)
	}
}

// TestWritePairs_RoundTrip writes and re-reads pairs.
func TestWritePairs_RoundTrip(t *testing.T) {
	want := []harness.Pair{
		{ID: "0", X: []byte("ACGT"), Y: []byte("ACCTG")},
		{ID: "1", X: []byte("GG"), Y: []byte("G")},
	}
	var buf bytes.Buffer
	require.NoError(t, harness.WritePairs(&buf, want))
	assert.Equal(t, "0\tACGT\tACCTG\n1\tGG\tG\n", buf.String())

	got, err := harness.ReadPairs(&buf)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// TestSelect covers defaults, ordering, duplicates and unknown names.
func TestSelect(t *testing.T) {
	all, err := harness.Select(nil, affine.DefaultParams())
	require.NoError(t, err)
	require.Len(t, all, 5)
	assert.Equal(t, harness.Names(), []string{
		harness.Affine, harness.Quadratic, harness.QuadraticPacked, harness.Diagonal, harness.DiagonalPacked,
	})

	some, err := harness.Select([]string{"diagonal", "quadratic", "diagonal"}, affine.DefaultParams())
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, harness.Diagonal, some[0].Name)
	assert.Equal(t, harness.Quadratic, some[1].Name)

	_, err = harness.Select([]string{"banded"}, affine.DefaultParams())
	assert.ErrorIs(t, err, harness.ErrUnknownEngine)
}

// TestEngines_Agree runs every registered engine on the same pair.
func TestEngines_Agree(t *testing.T) {
	x, y := []byte("ACGT"), []byte("ACCTG")
	for _, e := range harness.Engines(affine.UnitParams()) {
		score, aln := e.Run(x, y)
		assert.Equal(t, "==X=I", aln.String(), e.Name)
		if e.Name == harness.Affine {
			assert.Equal(t, int64(-2), score)
		} else {
			assert.Equal(t, int64(2), score, e.Name)
		}
	}
}

// TestRunner_Run produces pair-major records with derived statistics.
func TestRunner_Run(t *testing.T) {
	engines, err := harness.Select([]string{harness.Quadratic, harness.DiagonalPacked}, affine.DefaultParams())
	require.NoError(t, err)
	pairs := []harness.Pair{
		{ID: "a", X: []byte("ACGT"), Y: []byte("ACCTG")},
		{ID: "b", X: []byte("AAACCC"), Y: []byte("AAA")},
	}
	var logs bytes.Buffer
	r := harness.Runner{
		Engines: engines,
		Logger:  slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})),
		Verify:  true,
	}
	records, err := r.Run(context.Background(), pairs)
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "a", records[0].ID)
	assert.Equal(t, harness.Quadratic, records[0].Engine)
	assert.Equal(t, harness.DiagonalPacked, records[1].Engine)
	assert.Equal(t, uint32(2), records[1].Dist)
	assert.Equal(t, uint32(1), records[1].Gaps)
	assert.Equal(t, "b", records[2].ID)
	assert.Equal(t, int64(3), records[2].Score)
	assert.Equal(t, uint32(1), records[3].Gaps)

	assert.Contains(t, logs.String(), "aligned pair")
	assert.Contains(t, logs.String(), "engine=diagonal-packed")
}

// TestRunner_Canceled stops before the first pair.
func TestRunner_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	records, err := harness.Runner{Engines: harness.Engines(affine.DefaultParams())}.
		Run(ctx, []harness.Pair{{ID: "0", X: []byte("A"), Y: []byte("A")}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, records)
}

// TestRunner_VerifyRejectsBrokenEngine reports an engine returning an
// alignment that does not fit the pair.
func TestRunner_VerifyRejectsBrokenEngine(t *testing.T) {
	broken := harness.Engine{Name: "broken", Run: func(x, y []byte) (int64, alignment.Alignment) {
		return 0, alignment.Repeat(alignment.Match, 1)
	}}
	_, err := harness.Runner{Engines: []harness.Engine{broken}, Verify: true}.
		Run(context.Background(), []harness.Pair{{ID: "0", X: []byte("AC"), Y: []byte("AC")}})
	assert.ErrorIs(t, err, alignment.ErrLengthMismatch)
}

func sampleRecords() []harness.Record {
	return []harness.Record{
		{ID: "0", Engine: "quadratic", Score: 2, Dist: 2, Gaps: 1, Elapsed: 3 * time.Millisecond},
		{ID: "0", Engine: "diagonal", Score: 2, Dist: 2, Gaps: 1, Elapsed: time.Millisecond},
		{ID: "1", Engine: "quadratic", Score: 4, Dist: 4, Gaps: 2, Elapsed: 2 * time.Millisecond},
	}
}

// TestSummarize folds per engine in order of appearance.
func TestSummarize(t *testing.T) {
	sums := harness.Summarize(sampleRecords())
	require.Len(t, sums, 2)
	assert.Equal(t, "quadratic", sums[0].Engine)
	assert.Equal(t, 2, sums[0].Pairs)
	assert.Equal(t, uint64(6), sums[0].TotalDist)
	assert.Equal(t, uint64(3), sums[0].TotalGaps)
	assert.Equal(t, 5*time.Millisecond, sums[0].Elapsed)
	assert.Equal(t, int64(5), sums[0].ElapsedMS)
	assert.Equal(t, "diagonal", sums[1].Engine)
}

// TestWriteTSV checks header and rows.
func TestWriteTSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, harness.WriteTSV(&buf, sampleRecords()))
	want := "ID\tType\tDist\tNumOfGap\tTime\n" +
		"0\tquadratic\t2\t1\t3\n" +
		"0\tdiagonal\t2\t1\t1\n" +
		"1\tquadratic\t4\t2\t2\n"
	assert.Equal(t, want, buf.String())
}

// TestWriteYAML decodes the report back.
func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, harness.WriteYAML(&buf, sampleRecords()))

	var doc struct {
		Summary []struct {
			Engine    string `yaml:"engine"`
			Pairs     int    `yaml:"pairs"`
			TotalDist uint64 `yaml:"total_dist"`
		} `yaml:"summary"`
		Records []struct {
			ID        string `yaml:"id"`
			Engine    string `yaml:"engine"`
			Dist      uint32 `yaml:"dist"`
			ElapsedUS int64  `yaml:"elapsed_us"`
		} `yaml:"records"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	require.Len(t, doc.Summary, 2)
	assert.Equal(t, uint64(6), doc.Summary[0].TotalDist)
	require.Len(t, doc.Records, 3)
	assert.Equal(t, "diagonal", doc.Records[1].Engine)
	assert.Equal(t, int64(1000), doc.Records[1].ElapsedUS)
}
