package scroller

import (
	"fmt"
	"math"
	"strings"
)

// Slot is the text and paint of one label while decorators run. Each
// decorator sees what the previous one left behind.
type Slot struct {
	Text  string
	Paint Paint

	base Paint
}

// Base is the undecorated paint for the current label.
func (s *Slot) Base() Paint { return s.base }

func (s *Slot) reset(text string, p Paint) {
	s.Text = text
	s.Paint = p
	s.base = p
}

// Decorator adjusts a label while the strip is being dragged. distance is
// how many sections away index is from the selected section.
type Decorator interface {
	Decorate(slot *Slot, index, distance int)
}

func decorate(decorations []Decorator, slot *Slot, index, distance int) {
	for _, d := range decorations {
		d.Decorate(slot, index, distance)
	}
}

const defaultSteps = 4

// falloff maps distance into (0, 1]; the selected section is always 1.
func falloff(distance, steps int) float64 {
	if distance == 0 {
		return 1
	}
	if steps <= 0 {
		steps = defaultSteps
	}
	if distance < 0 {
		distance = -distance
	}
	return float64(min(distance, steps)) / float64(steps)
}

type AlphaFade struct {
	MinAlpha uint8
	MaxAlpha uint8
	Steps    int
}

func NewAlphaFade() *AlphaFade {
	return &AlphaFade{MinAlpha: 50, MaxAlpha: 255, Steps: defaultSteps}
}

func (d *AlphaFade) Decorate(slot *Slot, _ int, distance int) {
	span := float64(d.MaxAlpha) - float64(d.MinAlpha)
	alpha := int(d.MinAlpha) + int(falloff(distance, d.Steps)*span)
	slot.Paint.Alpha = uint8(clampInt(alpha, 0, math.MaxUint8))
}

type SizeScale struct {
	MinScale float64
	Steps    int
}

func NewSizeScale() *SizeScale {
	return &SizeScale{MinScale: 0.5, Steps: defaultSteps}
}

func (d *SizeScale) Decorate(slot *Slot, _ int, distance int) {
	scale := d.MinScale + falloff(distance, d.Steps)*(1-d.MinScale)
	slot.Paint.Size = slot.Base().Size * scale
}

// BoldEmphasis bolds labels at most Within sections from the selection.
type BoldEmphasis struct {
	Within int
}

func (d *BoldEmphasis) Decorate(slot *Slot, _ int, distance int) {
	slot.Paint.Bold = abs(distance) <= d.Within
}

type GlyphSubstitute struct {
	Glyph string
}

func (d *GlyphSubstitute) Decorate(slot *Slot, _ int, distance int) {
	if distance == 0 {
		slot.Text = d.Glyph
	}
}

const DefaultGlyph = "★"

// DecorationNames lists the names DecoratorByName understands, in the
// order of the default pipeline.
var DecorationNames = []string{"alpha", "scale", "bold", "glyph"}

func DecoratorByName(name, glyph string) (Decorator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "alpha", "fade":
		return NewAlphaFade(), nil
	case "scale", "size":
		return NewSizeScale(), nil
	case "bold":
		return &BoldEmphasis{}, nil
	case "glyph", "star":
		if glyph == "" {
			glyph = DefaultGlyph
		}
		return &GlyphSubstitute{Glyph: glyph}, nil
	default:
		return nil, fmt.Errorf("unknown decoration %q (want one of %s)", name, strings.Join(DecorationNames, ", "))
	}
}

func DecoratorsByName(names []string, glyph string) ([]Decorator, error) {
	out := make([]Decorator, 0, len(names))
	for _, name := range names {
		d, err := DecoratorByName(name, glyph)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}
