package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/lvlalign/harness"
	"github.com/katalvlaran/lvlalign/simulate"
	"github.com/spf13/cobra"
)

// newSimulateCmd builds `lvlalign simulate`, which prints id<TAB>template<TAB>mutated
// lines ready for `lvlalign align`.
func newSimulateCmd(a *app) *cobra.Command {
	var (
		g         simulate.Generator
		modelPath string
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate template/read pairs from an error profile or a pair HMM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := a.cfg.Simulate
			flags := cmd.Flags()
			if flags.Changed("num-of-reads") {
				gen.Count = g.Count
			}
			if flags.Changed("length") {
				gen.Length = g.Length
			}
			if flags.Changed("error-rate") {
				gen.ErrorRate = g.ErrorRate
			}
			if flags.Changed("seed") {
				gen.Seed = g.Seed
			}
			if flags.Changed("hmm") {
				gen.UseHMM = g.UseHMM
			}
			if modelPath != "" {
				f, err := os.Open(modelPath)
				if err != nil {
					return fmt.Errorf("simulate: %w", err)
				}
				defer f.Close()
				model, err := simulate.LoadPairHMM(f)
				if err != nil {
					return err
				}
				gen.Model = &model
				gen.UseHMM = true
			}

			reads, err := gen.Generate()
			if err != nil {
				return err
			}
			a.logger.Debug("simulated reads",
				"count", gen.Count, "length", gen.Length, "error_rate", gen.ErrorRate,
				"seed", gen.Seed, "hmm", gen.UseHMM)

			pairs := make([]harness.Pair, len(reads))
			for i, r := range reads {
				pairs[i] = harness.Pair{ID: strconv.Itoa(r.ID), X: r.Template, Y: r.Mutated}
			}

			return harness.WritePairs(cmd.OutOrStdout(), pairs)
		},
	}
	d := simulate.DefaultGenerator()
	cmd.Flags().IntVarP(&g.Count, "num-of-reads", "n", d.Count, "number of reads")
	cmd.Flags().IntVarP(&g.Length, "length", "l", d.Length, "template length")
	cmd.Flags().Float64VarP(&g.ErrorRate, "error-rate", "e", d.ErrorRate, "per-base error rate, below 0.25")
	cmd.Flags().Int64VarP(&g.Seed, "seed", "s", d.Seed, "PRNG seed")
	cmd.Flags().BoolVarP(&g.UseHMM, "hmm", "t", false, "mutate with the three-state pair HMM")
	cmd.Flags().StringVar(&modelPath, "model", "", "YAML pair HMM to mutate with (implies --hmm)")

	return cmd
}
