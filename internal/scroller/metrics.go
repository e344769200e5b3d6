package scroller

import "unicode/utf8"

// FixedMetrics gives every rune the same advance. All values scale with
// Paint.Size.
type FixedMetrics struct {
	CharWidth    float64
	AscentRatio  float64
	DescentRatio float64
}

func (m FixedMetrics) MeasureText(text string, p Paint) float64 {
	return m.CharWidth * p.Size * float64(utf8.RuneCountInString(text))
}

func (m FixedMetrics) Ascent(p Paint) float64 { return -m.AscentRatio * p.Size }

func (m FixedMetrics) Descent(p Paint) float64 { return m.DescentRatio * p.Size }
