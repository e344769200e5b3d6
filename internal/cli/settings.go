package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/baaaaaaaka/fast-scroller/internal/config"
	"github.com/baaaaaaaka/fast-scroller/internal/preset"
)

type settings struct {
	store *config.Store
	cfg   config.Config
}

func loadSettings(root *rootOptions) (settings, error) {
	store, err := config.NewStore(root.configPath)
	if err != nil {
		return settings{}, err
	}
	cfg, err := store.Load()
	if err != nil {
		return settings{}, err
	}
	return settings{store: store, cfg: cfg}, nil
}

// resolvePreset prefers the flag values and falls back to the stored ones.
func (s settings) resolvePreset(name, file string) (preset.Preset, error) {
	if name == "" {
		name = s.cfg.Preset
	}
	if file == "" {
		file = s.cfg.PresetFile
	}
	return preset.Resolve(name, file)
}

func readItems(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open items: %w", err)
		}
		defer f.Close()
		r = f
	}

	var items []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		items = append(items, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read items: %w", err)
	}
	return items, nil
}

type palette struct {
	key   *color.Color
	value *color.Color
	dim   *color.Color
}

func newPalette(root *rootOptions) palette {
	p := palette{
		key:   color.New(color.FgCyan, color.Bold),
		value: color.New(color.FgGreen),
		dim:   color.New(color.Faint),
	}
	if root.noColor || color.NoColor {
		p.key.DisableColor()
		p.value.DisableColor()
		p.dim.DisableColor()
	}
	return p
}
