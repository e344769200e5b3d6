// Package preset provides named section label sets, built in or loaded from
// TOML and YAML files.
package preset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/baaaaaaaka/fast-scroller/internal/scroller"
)

const DefaultName = "demo"

var ErrNotFound = errors.New("preset not found")

type Preset struct {
	Name   string
	Labels []string
}

func (p Preset) Indexer() *scroller.StaticSections {
	labels := make([]string, len(p.Labels))
	copy(labels, p.Labels)
	return &scroller.StaticSections{Labels: labels}
}

func Builtin() []Preset {
	return []Preset{
		{Name: "demo", Labels: splitChars("ABCDEFGHIJKLMNOPQRSTUVWXYZㄱㄴㄷㄹㅁㅂㅅㅇㅈㅊㅋㅌㅍㅎ0123456789")},
		{Name: "alphabet", Labels: splitChars("ABCDEFGHIJKLMNOPQRSTUVWXYZ")},
		{Name: "hangul", Labels: splitChars("ㄱㄴㄷㄹㅁㅂㅅㅇㅈㅊㅋㅌㅍㅎ")},
		{Name: "digits", Labels: splitChars("0123456789")},
		{Name: "preview", Labels: scroller.PreviewSections().Sections()},
	}
}

// Find looks a preset up by case-insensitive name.
func Find(presets []Preset, name string) (Preset, bool) {
	name = strings.TrimSpace(name)
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// Resolve finds name in file (when given) and then in the built-ins.
func Resolve(name, file string) (Preset, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}
	if file != "" {
		loaded, err := Load(file)
		if err != nil {
			return Preset{}, err
		}
		if p, ok := Find(loaded, name); ok {
			return p, nil
		}
		if len(loaded) > 0 && name == DefaultName {
			return loaded[0], nil
		}
	}
	if p, ok := Find(Builtin(), name); ok {
		return p, nil
	}
	return Preset{}, fmt.Errorf("%w: %q", ErrNotFound, name)
}

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported preset file extension %q (want .toml, .yaml or .yml)", filepath.Ext(path))
	}
}

func Load(path string) ([]Preset, error) {
	format, err := FormatForPath(path)
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	presets, err := Parse(b, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return presets, nil
}

type fileEntry struct {
	Name   string `toml:"name" yaml:"name"`
	Chars  string `toml:"chars" yaml:"chars"`
	Labels []any  `toml:"labels" yaml:"labels"`
}

type fileDoc struct {
	Presets []fileEntry `toml:"preset" yaml:"presets"`
}

func Parse(data []byte, format Format) ([]Preset, error) {
	var doc fileDoc
	switch format {
	case FormatTOML:
		if _, err := toml.Decode(string(data), &doc); err != nil {
			return nil, fmt.Errorf("parse TOML: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown preset format %q", format)
	}

	out := make([]Preset, 0, len(doc.Presets))
	seen := map[string]bool{}
	for i, e := range doc.Presets {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			return nil, fmt.Errorf("preset #%d: missing name", i+1)
		}
		key := strings.ToLower(name)
		if seen[key] {
			return nil, fmt.Errorf("preset %q: duplicate name", name)
		}
		seen[key] = true

		labels := splitChars(e.Chars)
		for _, v := range e.Labels {
			labels = append(labels, normalizeLabel(v))
		}
		if len(labels) == 0 {
			return nil, fmt.Errorf("preset %q: no labels", name)
		}
		out = append(out, Preset{Name: name, Labels: labels})
	}
	return out, nil
}

func normalizeLabel(v any) string {
	var s string
	switch t := v.(type) {
	case nil:
		s = ""
	case string:
		s = t
	default:
		s = fmt.Sprint(t)
	}
	return norm.NFC.String(s)
}

// splitChars turns each rune of s into a label, skipping whitespace.
func splitChars(s string) []string {
	s = norm.NFC.String(s)
	out := make([]string, 0, len(s))
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		out = append(out, string(r))
	}
	return out
}
