package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/baaaaaaaka/fast-scroller/internal/config"
	"github.com/baaaaaaaka/fast-scroller/internal/scroller"
	"github.com/baaaaaaaka/fast-scroller/internal/tui"
)

func stubRunTui(t *testing.T, result error) *tui.Options {
	t.Helper()
	var got tui.Options
	prev := runTui
	t.Cleanup(func() { runTui = prev })
	runTui = func(_ context.Context, opts tui.Options) error {
		got = opts
		return result
	}
	return &got
}

func TestRootRunsTuiWithStoredSettings(t *testing.T) {
	store := newTempStore(t)
	if err := store.Update(func(c *config.Config) error {
		c.Preset = "hangul"
		c.Decorations = []string{"bold"}
		return c.Set("textColor", "#00ff00")
	}); err != nil {
		t.Fatalf("seed config: %v", err)
	}
	got := stubRunTui(t, nil)

	if _, err := executeRoot(t, store); err != nil {
		t.Fatalf("root: %v", err)
	}
	if got.Preset.Name != "hangul" || len(got.Preset.Labels) != 14 {
		t.Fatalf("unexpected preset %+v", got.Preset)
	}
	if got.Scroller.TextColor != scroller.Color(0x00ff00) {
		t.Fatalf("unexpected text color %s", got.Scroller.TextColor)
	}
	if len(got.Decorations) != 1 {
		t.Fatalf("expected one decorator, got %d", len(got.Decorations))
	}
	if _, ok := got.Decorations[0].(*scroller.BoldEmphasis); !ok {
		t.Fatalf("expected bold decorator, got %T", got.Decorations[0])
	}
}

func TestTuiFlagsOverrideConfig(t *testing.T) {
	store := newTempStore(t)
	if err := store.Update(func(c *config.Config) error {
		c.Preset = "hangul"
		return nil
	}); err != nil {
		t.Fatalf("seed config: %v", err)
	}
	dir := t.TempDir()
	itemsPath := filepath.Join(dir, "items.txt")
	if err := os.WriteFile(itemsPath, []byte("apple\n\n  banana  \ncherry\n"), 0o600); err != nil {
		t.Fatalf("write items: %v", err)
	}
	tracePath := filepath.Join(dir, "trace.log")
	got := stubRunTui(t, nil)

	if _, err := executeRoot(t, store, "tui", "--preset", "alphabet", "--items", itemsPath, "--trace", tracePath, "--east-asian", "--plain"); err != nil {
		t.Fatalf("tui: %v", err)
	}
	if got.Preset.Name != "alphabet" {
		t.Fatalf("expected flag preset, got %q", got.Preset.Name)
	}
	if strings.Join(got.Items, ",") != "apple,banana,cherry" {
		t.Fatalf("unexpected items %q", got.Items)
	}
	if got.Trace == nil || !got.EastAsian || !got.DefaultColor {
		t.Fatalf("expected trace and flags to pass through, got %+v", got)
	}
	if _, err := os.Stat(tracePath); err != nil {
		t.Fatalf("expected trace file: %v", err)
	}
	if len(got.Decorations) != len(scroller.DecorationNames) {
		t.Fatalf("expected default decorations, got %d", len(got.Decorations))
	}
}

func TestRunTuiCmdIgnoresCancel(t *testing.T) {
	store := newTempStore(t)
	stubRunTui(t, context.Canceled)

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	if err := runTuiCmd(cmd, &rootOptions{configPath: store.Path()}, &tuiFlags{}); err != nil {
		t.Fatalf("expected cancel to be swallowed, got %v", err)
	}
}

func TestRunTuiCmdReportsErrors(t *testing.T) {
	store := newTempStore(t)
	boom := errors.New("boom")
	stubRunTui(t, boom)

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	if err := runTuiCmd(cmd, &rootOptions{configPath: store.Path()}, &tuiFlags{}); !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if err := runTuiCmd(cmd, &rootOptions{configPath: store.Path()}, &tuiFlags{itemsPath: filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Fatalf("expected missing items error")
	}
}

func TestExecuteExitCode(t *testing.T) {
	store := newTempStore(t)
	stubRunTui(t, nil)
	prevArgs := os.Args
	t.Cleanup(func() { os.Args = prevArgs })

	os.Args = []string{"fastscroller", "--config", store.Path(), "config", "set", "nope", "1"}
	if code := Execute(); code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	os.Args = []string{"fastscroller", "--config", store.Path(), "presets"}
	if code := Execute(); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}
