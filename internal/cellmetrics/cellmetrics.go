// Package cellmetrics measures section labels on a character-cell display.
package cellmetrics

import (
	"github.com/mattn/go-runewidth"

	"github.com/baaaaaaaka/fast-scroller/internal/scroller"
)

// Metrics treats every label as one row tall, whatever the paint size.
// Widths are display cells.
type Metrics struct {
	cond *runewidth.Condition
}

func New(eastAsian bool) Metrics {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	return Metrics{cond: cond}
}

func (m Metrics) MeasureText(text string, _ scroller.Paint) float64 {
	return float64(m.StringWidth(text))
}

func (m Metrics) Ascent(scroller.Paint) float64 { return -1 }

func (m Metrics) Descent(scroller.Paint) float64 { return 0 }

func (m Metrics) StringWidth(s string) int {
	if m.cond == nil {
		return runewidth.StringWidth(s)
	}
	return m.cond.StringWidth(s)
}
