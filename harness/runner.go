package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// Record is the outcome of one engine on one pair.
type Record struct {
	ID      string
	Engine  string
	Score   int64
	Dist    uint32
	Gaps    uint32
	Elapsed time.Duration
}

// Runner aligns pairs with a fixed set of engines.
//
// Fields:
//   - Engines — engines to run, in report order.
//   - Logger  — receives one debug entry per alignment; nil discards.
//   - Verify  — replay every alignment against its pair and fail on mismatch.
type Runner struct {
	Engines []Engine
	Logger  *slog.Logger
	Verify  bool
}

// Run aligns every pair with every engine, pair-major. The context is
// checked between pairs; an alignment in progress always completes.
func (r Runner) Run(ctx context.Context, pairs []Pair) ([]Record, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	records := make([]Record, 0, len(pairs)*len(r.Engines))
	for _, p := range pairs {
		if err := ctx.Err(); err != nil {
			return records, fmt.Errorf("harness: run interrupted before pair %s: %w", p.ID, err)
		}
		for _, e := range r.Engines {
			start := time.Now()
			score, aln := e.Run(p.X, p.Y)
			elapsed := time.Since(start)

			if r.Verify {
				if err := aln.Validate(p.X, p.Y); err != nil {
					return records, fmt.Errorf("harness: %s on pair %s: %w", e.Name, p.ID, err)
				}
			}
			dist, gaps := aln.DistAndGaps()
			records = append(records, Record{
				ID:      p.ID,
				Engine:  e.Name,
				Score:   score,
				Dist:    dist,
				Gaps:    gaps,
				Elapsed: elapsed,
			})
			logger.Debug("aligned pair",
				slog.String("id", p.ID),
				slog.String("engine", e.Name),
				slog.Int64("score", score),
				slog.Any("dist", dist),
				slog.Any("gaps", gaps),
				slog.Duration("elapsed", elapsed))
		}
	}
	logger.Info("run complete", slog.Int("pairs", len(pairs)), slog.Int("engines", len(r.Engines)))

	return records, nil
}
