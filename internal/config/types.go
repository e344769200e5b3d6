package config

const CurrentVersion = 1

// Config is the persisted host configuration for the scroller. Pointer
// fields are unset when nil so the built-in defaults apply.
type Config struct {
	Version       int      `json:"version"`
	TextSize      *float64 `json:"textSize,omitempty"`
	TextColor     string   `json:"textColor,omitempty"`
	Spacing       *float64 `json:"spacing,omitempty"`
	SectionWidth  *float64 `json:"sectionWidth,omitempty"`
	SectionHeight *float64 `json:"sectionHeight,omitempty"`
	TouchSlop     *float64 `json:"touchSlop,omitempty"`
	Padding       *float64 `json:"padding,omitempty"`
	Debug         bool     `json:"debug,omitempty"`
	Simplified    bool     `json:"simplified,omitempty"`
	Preset        string   `json:"preset,omitempty"`
	PresetFile    string   `json:"presetFile,omitempty"`
	Decorations   []string `json:"decorations,omitempty"`
	Glyph         string   `json:"glyph,omitempty"`
}

const (
	DefaultTextSize  = 1.0
	DefaultTouchSlop = 0.5
	DefaultPadding   = 1.0
)
