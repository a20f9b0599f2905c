package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/lvlalign/config"
	"github.com/katalvlaran/lvlalign/harness"
	"github.com/spf13/cobra"
)

// newAlignCmd builds `lvlalign align FILE`.
//
// # Examples
//
//	lvlalign align reads.tsv
//	lvlalign align reads.tsv --engines affine,diagonal --format yaml
//	lvlalign simulate | lvlalign align -
func newAlignCmd(a *app) *cobra.Command {
	var (
		engines []string
		format  string
		verify  bool
	)
	cmd := &cobra.Command{
		Use:   "align FILE",
		Short: "Align every pair in a tab-separated file with the selected engines",
		Long: `Reads one pair per line, either x<TAB>y or id<TAB>x<TAB>y ("-" reads stdin),
aligns it with each engine and prints distance, gap runs and time per pair.

Engines: affine, quadratic, quadratic-packed, diagonal, diagonal-packed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("engines") {
				a.cfg.Engines = engines
			}
			if cmd.Flags().Changed("format") {
				a.cfg.Output.Format = format
			}
			if cmd.Flags().Changed("verify") {
				a.cfg.Output.Verify = verify
			}

			return a.runAlign(cmd, args[0])
		},
	}
	cmd.Flags().StringSliceVar(&engines, "engines", nil, "comma-separated engines to run (default: all)")
	cmd.Flags().StringVarP(&format, "format", "f", config.FormatTSV, "report format: tsv or yaml")
	cmd.Flags().BoolVar(&verify, "verify", false, "replay every alignment against its pair")

	return cmd
}

func (a *app) runAlign(cmd *cobra.Command, path string) error {
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	engines, err := harness.Select(a.cfg.Engines, a.cfg.Scoring)
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("align: %w", err)
		}
		defer f.Close()
		in = f
	}
	pairs, err := harness.ReadPairs(in)
	if err != nil {
		return err
	}
	a.logger.Info("aligning", "pairs", len(pairs), "engines", len(engines), "input", path)

	runner := harness.Runner{Engines: engines, Logger: a.logger, Verify: a.cfg.Output.Verify}
	records, err := runner.Run(cmd.Context(), pairs)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if a.cfg.Output.Format == config.FormatYAML {
		return harness.WriteYAML(out, records)
	}

	return harness.WriteTSV(out, records)
}
