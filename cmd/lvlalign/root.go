package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvlalign/config"
	"github.com/spf13/cobra"
)

// app is the state shared by every subcommand once the root has run.
type app struct {
	configPath string
	logLevel   string

	cfg    config.Config
	logger *slog.Logger
}

// newRootCmd builds the command tree. Each call returns an independent tree.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "lvlalign",
		Short:         "Pairwise sequence alignment engines and benchmark harness",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "",
		"config file (default: ./lvlalign.yaml or ~/.config/lvlalign/lvlalign.yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"log level: debug, info, warn or error (overrides config)")

	root.AddCommand(newAlignCmd(a), newSimulateCmd(a), newShowCmd(a))

	return root
}

// load reads configuration and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	lvl, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
	a.logger.Debug("configuration loaded",
		slog.String("config", a.configPath),
		slog.Any("engines", cfg.Engines),
		slog.String("format", cfg.Output.Format))

	return nil
}
