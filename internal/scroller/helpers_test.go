package scroller

import (
	"math"
	"testing"
)

// testMetrics makes one text unit exactly Paint.Size tall and each rune
// Paint.Size wide.
var testMetrics = FixedMetrics{CharWidth: 1, AscentRatio: 1, DescentRatio: 0}

func newTestScroller(t *testing.T, cfg Config, labels ...string) *Scroller {
	t.Helper()
	s := New(cfg, Options{Metrics: testMetrics})
	if len(labels) > 0 {
		s.SetSections(NewStaticSections(labels...))
	}
	return s
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.TextSize = 10
	cfg.TouchSlop = 10
	return cfg
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

type drawCall struct {
	text     string
	centerX  float64
	baseline float64
	paint    Paint
}

type rectCall struct {
	left, top, right, bottom float64
}

type recordCanvas struct {
	texts []drawCall
	rects []rectCall
}

func (c *recordCanvas) DrawText(text string, centerX, baseline float64, p Paint) {
	c.texts = append(c.texts, drawCall{text: text, centerX: centerX, baseline: baseline, paint: p})
}

func (c *recordCanvas) DrawRect(left, top, right, bottom float64) {
	c.rects = append(c.rects, rectCall{left: left, top: top, right: right, bottom: bottom})
}

type recordListener struct {
	calls []int
	ix    []SectionIndexer
}

func (l *recordListener) OnSectionScrolled(ix SectionIndexer, section int) {
	l.calls = append(l.calls, section)
	l.ix = append(l.ix, ix)
}
