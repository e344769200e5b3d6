package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/fast-scroller/internal/tui"
)

var runTui = tui.Run

type tuiFlags struct {
	preset     string
	presetFile string
	itemsPath  string
	tracePath  string
	eastAsian  bool
	plain      bool
}

func (f *tuiFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.preset, "preset", "", "Section preset name (default: config or \"demo\")")
	cmd.Flags().StringVar(&f.presetFile, "preset-file", "", "TOML or YAML file with extra presets")
	cmd.Flags().StringVar(&f.itemsPath, "items", "", "File with one list item per line (\"-\" for stdin)")
	cmd.Flags().StringVar(&f.tracePath, "trace", "", "Append section changes to this file")
	cmd.Flags().BoolVar(&f.eastAsian, "east-asian", false, "Treat ambiguous-width characters as wide")
	cmd.Flags().BoolVar(&f.plain, "plain", false, "Draw labels in the terminal's default color")
}

func newTuiCmd(root *rootOptions) *cobra.Command {
	flags := &tuiFlags{}
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the list with the fast-scroll strip",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTuiCmd(cmd, root, flags)
		},
	}
	flags.bind(cmd)
	return cmd
}

func runTuiCmd(cmd *cobra.Command, root *rootOptions, flags *tuiFlags) error {
	s, err := loadSettings(root)
	if err != nil {
		return err
	}
	p, err := s.resolvePreset(flags.preset, flags.presetFile)
	if err != nil {
		return err
	}
	scfg, err := s.cfg.Scroller()
	if err != nil {
		return err
	}
	decorators, err := s.cfg.Decorators()
	if err != nil {
		return err
	}
	items, err := readItems(flags.itemsPath)
	if err != nil {
		return err
	}

	opts := tui.Options{
		Preset:       p,
		Items:        items,
		Scroller:     scfg,
		Decorations:  decorators,
		EastAsian:    flags.eastAsian,
		DefaultColor: flags.plain,
	}
	if flags.tracePath != "" {
		f, err := os.OpenFile(flags.tracePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open trace: %w", err)
		}
		defer f.Close()
		opts.Trace = f
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := runTui(ctx, opts); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
