package harness

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Summary aggregates the records of one engine.
type Summary struct {
	Engine    string        `yaml:"engine"`
	Pairs     int           `yaml:"pairs"`
	TotalDist uint64        `yaml:"total_dist"`
	TotalGaps uint64        `yaml:"total_gaps"`
	Elapsed   time.Duration `yaml:"-"`
	ElapsedMS int64         `yaml:"elapsed_ms"`
}

// Summarize folds records into one Summary per engine, in order of first
// appearance.
func Summarize(records []Record) []Summary {
	index := make(map[string]int)
	var out []Summary
	for _, rec := range records {
		k, ok := index[rec.Engine]
		if !ok {
			k = len(out)
			index[rec.Engine] = k
			out = append(out, Summary{Engine: rec.Engine})
		}
		s := &out[k]
		s.Pairs++
		s.TotalDist += uint64(rec.Dist)
		s.TotalGaps += uint64(rec.Gaps)
		s.Elapsed += rec.Elapsed
	}
	for k := range out {
		out[k].ElapsedMS = out[k].Elapsed.Milliseconds()
	}

	return out
}

// WriteTSV writes one line per record under the header
// "ID Type Dist NumOfGap Time", tab-separated, with Time in milliseconds.
func WriteTSV(w io.Writer, records []Record) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, "ID\tType\tDist\tNumOfGap\tTime"); err != nil {
		return fmt.Errorf("harness: write tsv: %w", err)
	}
	for _, rec := range records {
		_, err := fmt.Fprintf(bw, "%s\t%s\t%d\t%d\t%d\n",
			rec.ID, rec.Engine, rec.Dist, rec.Gaps, rec.Elapsed.Milliseconds())
		if err != nil {
			return fmt.Errorf("harness: write tsv: %w", err)
		}
	}

	return bw.Flush()
}

// yamlRecord is the serialized form of a Record.
type yamlRecord struct {
	ID        string `yaml:"id"`
	Engine    string `yaml:"engine"`
	Score     int64  `yaml:"score"`
	Dist      uint32 `yaml:"dist"`
	Gaps      uint32 `yaml:"gaps"`
	ElapsedUS int64  `yaml:"elapsed_us"`
}

// yamlReport is the document written by WriteYAML.
type yamlReport struct {
	Summary []Summary    `yaml:"summary"`
	Records []yamlRecord `yaml:"records"`
}

// WriteYAML writes a summary block followed by every record.
func WriteYAML(w io.Writer, records []Record) error {
	doc := yamlReport{Summary: Summarize(records), Records: make([]yamlRecord, len(records))}
	for i, rec := range records {
		doc.Records[i] = yamlRecord{
			ID:        rec.ID,
			Engine:    rec.Engine,
			Score:     rec.Score,
			Dist:      rec.Dist,
			Gaps:      rec.Gaps,
			ElapsedUS: rec.Elapsed.Microseconds(),
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("harness: write yaml: %w", err)
	}

	return enc.Close()
}
