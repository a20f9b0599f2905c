package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/lvlalign/config"
	"github.com/katalvlaran/lvlalign/harness"
	"github.com/katalvlaran/lvlalign/view"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

// newShowCmd builds `lvlalign show X Y`.
func newShowCmd(a *app) *cobra.Command {
	var (
		engine string
		width  int
		color  string
	)
	cmd := &cobra.Command{
		Use:   "show X Y",
		Short: "Align two sequences with one engine and print the three-track view",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("width") {
				a.cfg.View.Width = width
			}
			if cmd.Flags().Changed("color") {
				a.cfg.View.Color = color
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			engines, err := harness.Select([]string{engine}, a.cfg.Scoring)
			if err != nil {
				return err
			}

			x, y := []byte(args[0]), []byte(args[1])
			score, aln := engines[0].Run(x, y)

			out := cmd.OutOrStdout()
			opts := view.DefaultOptions()
			opts.Width = a.cfg.View.Width
			opts.Stats = a.cfg.View.Stats
			opts.Color = useColor(a.cfg.View.Color, out)
			opts.Theme = view.NewTheme(showRenderer(a.cfg.View.Color, out))
			rendered, err := view.Render(aln, x, y, opts)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(out, "engine=%s score=%d\n%s", engines[0].Name, score, rendered); err != nil {
				return err
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&engine, "engine", harness.Quadratic, "engine to align with")
	cmd.Flags().IntVarP(&width, "width", "w", 80, "columns per block (0 disables wrapping)")
	cmd.Flags().StringVar(&color, "color", config.ColorAuto, "auto, always or never")

	return cmd
}

// showRenderer returns a renderer bound to w. always forces 256 colors on
// it even when w is not a terminal.
func showRenderer(mode string, w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if mode == config.ColorAlways {
		r.SetColorProfile(termenv.ANSI256)
	}

	return r
}

// useColor resolves a color mode for w. auto colors only a terminal.
func useColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
