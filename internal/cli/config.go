package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/fast-scroller/internal/config"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change stored settings",
	}
	cmd.AddCommand(
		newConfigShowCmd(root),
		newConfigSetCmd(root),
		newConfigResetCmd(root),
	)
	return cmd
}

func newConfigShowCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print every setting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSettings(root)
			if err != nil {
				return err
			}
			pal := newPalette(root)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s\n", pal.dim.Sprint(s.store.Path()))
			values := s.cfg.Values()
			for _, key := range config.Keys() {
				v := values[key]
				if v == "" {
					v = pal.dim.Sprint("(default)")
				} else {
					v = pal.value.Sprint(v)
				}
				_, _ = fmt.Fprintf(out, "%s %s\n", pal.key.Sprintf("%-14s", key), v)
			}
			return nil
		},
	}
}

func newConfigSetCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Change one setting (empty or \"auto\" resets numbers)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := config.NewStore(root.configPath)
			if err != nil {
				return err
			}
			if err := store.Update(func(cfg *config.Config) error {
				if err := cfg.Set(args[0], args[1]); err != nil {
					return err
				}
				if _, err := cfg.Scroller(); err != nil {
					return err
				}
				return nil
			}); err != nil {
				return fmt.Errorf("set %s: %w", args[0], err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", args[0])
			return nil
		},
	}
}

func newConfigResetCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore every setting to its default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := config.NewStore(root.configPath)
			if err != nil {
				return err
			}
			if err := store.Reset(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Reset %s\n", store.Path())
			return nil
		},
	}
}
