package config

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/baaaaaaaka/fast-scroller/internal/scroller"
)

// Scroller resolves the stored values into an engine configuration.
func (c Config) Scroller() (scroller.Config, error) {
	out := scroller.DefaultConfig()
	out.TextSize = floatOr(c.TextSize, DefaultTextSize)
	out.Spacing = floatOr(c.Spacing, 0)
	out.SectionWidth = floatOr(c.SectionWidth, scroller.Auto)
	out.SectionHeight = floatOr(c.SectionHeight, scroller.Auto)
	out.TouchSlop = floatOr(c.TouchSlop, DefaultTouchSlop)
	out.Padding = scroller.UniformPadding(floatOr(c.Padding, DefaultPadding))
	out.Debug = c.Debug
	out.Simplified = c.Simplified
	out.TextColor = scroller.ColorWhite
	if strings.TrimSpace(c.TextColor) != "" {
		color, err := scroller.ParseColor(c.TextColor)
		if err != nil {
			return scroller.Config{}, err
		}
		out.TextColor = color
	}
	return out, nil
}

// DecorationList is the configured pipeline, or the default one when unset.
// "none" disables decorations.
func (c Config) DecorationList() []string {
	if len(c.Decorations) == 0 {
		return append([]string(nil), scroller.DecorationNames...)
	}
	if len(c.Decorations) == 1 && strings.EqualFold(c.Decorations[0], "none") {
		return nil
	}
	return append([]string(nil), c.Decorations...)
}

func (c Config) Decorators() ([]scroller.Decorator, error) {
	return scroller.DecoratorsByName(c.DecorationList(), c.Glyph)
}

var keys = []string{
	"textSize", "textColor", "spacing", "sectionWidth", "sectionHeight",
	"touchSlop", "padding", "debug", "simplified", "preset", "presetFile",
	"decorations", "glyph",
}

func Keys() []string {
	out := append([]string(nil), keys...)
	sort.Strings(out)
	return out
}

// Set parses value for key. An empty value or "auto" unsets numeric keys.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch strings.ToLower(key) {
	case "textsize":
		return setFloat(&c.TextSize, key, value, false)
	case "textcolor":
		if value != "" {
			if _, err := scroller.ParseColor(value); err != nil {
				return err
			}
		}
		c.TextColor = value
	case "spacing":
		return setFloat(&c.Spacing, key, value, false)
	case "sectionwidth":
		return setFloat(&c.SectionWidth, key, value, true)
	case "sectionheight":
		return setFloat(&c.SectionHeight, key, value, true)
	case "touchslop":
		return setFloat(&c.TouchSlop, key, value, false)
	case "padding":
		return setFloat(&c.Padding, key, value, false)
	case "debug":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.Debug = b
	case "simplified":
		b, err := parseBool(key, value)
		if err != nil {
			return err
		}
		c.Simplified = b
	case "preset":
		c.Preset = value
	case "presetfile":
		c.PresetFile = value
	case "decorations":
		names := splitList(value)
		if !(len(names) == 1 && strings.EqualFold(names[0], "none")) {
			if _, err := scroller.DecoratorsByName(names, ""); err != nil {
				return err
			}
		}
		c.Decorations = names
	case "glyph":
		c.Glyph = value
	default:
		return fmt.Errorf("unknown config key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}

// Values renders every key for display; unset values show as "".
func (c Config) Values() map[string]string {
	return map[string]string{
		"textSize":      formatFloat(c.TextSize),
		"textColor":     c.TextColor,
		"spacing":       formatFloat(c.Spacing),
		"sectionWidth":  formatFloat(c.SectionWidth),
		"sectionHeight": formatFloat(c.SectionHeight),
		"touchSlop":     formatFloat(c.TouchSlop),
		"padding":       formatFloat(c.Padding),
		"debug":         strconv.FormatBool(c.Debug),
		"simplified":    strconv.FormatBool(c.Simplified),
		"preset":        c.Preset,
		"presetFile":    c.PresetFile,
		"decorations":   strings.Join(c.Decorations, ","),
		"glyph":         c.Glyph,
	}
}

func setFloat(dst **float64, key, value string, allowAuto bool) error {
	if value == "" || (allowAuto && strings.EqualFold(value, "auto")) {
		*dst = nil
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("%s: invalid number %q", key, value)
	}
	if f < 0 {
		return fmt.Errorf("%s: must not be negative", key)
	}
	*dst = &f
	return nil
}

func parseBool(key, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, value)
	}
	return b, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func floatOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'g', -1, 64)
}
