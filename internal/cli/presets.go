package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/fast-scroller/internal/preset"
)

const presetSampleLabels = 8

func newPresetsCmd(root *rootOptions) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List built-in and file presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pal := newPalette(root)

			if file == "" {
				s, err := loadSettings(root)
				if err != nil {
					return err
				}
				file = s.cfg.PresetFile
			}
			var loaded []preset.Preset
			if file != "" {
				var err error
				loaded, err = preset.Load(file)
				if err != nil {
					return err
				}
			}

			for _, p := range loaded {
				printPreset(cmd, pal, p, file)
			}
			for _, p := range preset.Builtin() {
				if _, shadowed := preset.Find(loaded, p.Name); shadowed {
					continue
				}
				printPreset(cmd, pal, p, "built-in")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "TOML or YAML preset file (default: config presetFile)")
	return cmd
}

func printPreset(cmd *cobra.Command, pal palette, p preset.Preset, source string) {
	sample := p.Labels
	more := ""
	if len(sample) > presetSampleLabels {
		sample = sample[:presetSampleLabels]
		more = " ..."
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
		pal.key.Sprintf("%-10s", p.Name),
		pal.value.Sprintf("%3d", len(p.Labels)),
		pal.dim.Sprintf("%s%s  [%s]", strings.Join(sample, " "), more, source))
}
