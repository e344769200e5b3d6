package scroller

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an opaque 0xRRGGBB value. Transparency lives in Paint.Alpha.
type Color uint32

const (
	ColorBlack Color = 0x000000
	ColorWhite Color = 0xffffff
	ColorRed   Color = 0xff0000
)

func (c Color) RGB() (r, g, b int32) {
	return int32(c>>16) & 0xff, int32(c>>8) & 0xff, int32(c) & 0xff
}

func (c Color) String() string {
	return fmt.Sprintf("#%06x", uint32(c)&0xffffff)
}

// ParseColor accepts "#rrggbb", "rrggbb" or "#rgb".
func ParseColor(s string) (Color, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(v) == 3 {
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	}
	if len(v) != 6 {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color(n), nil
}

// Paint is the style a label is drawn with.
type Paint struct {
	Size  float64
	Color Color
	Alpha uint8
	Bold  bool
}

// TextMetrics measures text for a paint. Ascent is negative (above the
// baseline) and Descent is positive, so the line height is Descent-Ascent.
type TextMetrics interface {
	MeasureText(text string, p Paint) float64
	Ascent(p Paint) float64
	Descent(p Paint) float64
}
