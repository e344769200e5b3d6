// Package scroller implements a fast scroller: a vertical strip of section
// labels that maps pointer drags to section indexes.
//
// A Scroller is not safe for concurrent use. All calls are expected to come
// from the host's single UI goroutine.
package scroller

import "reflect"

// Config is the host-resolved configuration surface.
type Config struct {
	TextSize      float64
	TextColor     Color
	Spacing       float64
	SectionWidth  float64
	SectionHeight float64
	// TouchSlop is the vertical travel that turns a press into a drag.
	TouchSlop float64
	Padding   Padding
	// Debug outlines each section box.
	Debug bool
	// Simplified ignores section width/height overrides and padding.
	Simplified bool
}

func DefaultConfig() Config {
	return Config{
		TextSize:      12,
		TextColor:     ColorBlack,
		SectionWidth:  Auto,
		SectionHeight: Auto,
		TouchSlop:     8,
	}
}

type Options struct {
	Metrics TextMetrics
	// Invalidate asks the host for a redraw.
	Invalidate func()
	// RequestLayout asks the host to measure again.
	RequestLayout func()
	// OnSectionChanged runs on every committed index change, before listeners.
	OnSectionChanged func(index int)
}

type SectionScrolledListener interface {
	OnSectionScrolled(ix SectionIndexer, section int)
}

type Scroller struct {
	cfg  Config
	opts Options

	indexer  SectionIndexer
	sections sectionSet

	decorations []Decorator
	listeners   []SectionScrolledListener

	dirty      bool
	measured   bool
	widthSpec  MeasureSpec
	heightSpec MeasureSpec
	geom       Geometry

	pointer pointerSession
}

func New(cfg Config, opts Options) *Scroller {
	if opts.Metrics == nil {
		opts.Metrics = FixedMetrics{CharWidth: 0.6, AscentRatio: 0.8, DescentRatio: 0.2}
	}
	s := &Scroller{
		cfg:   cfg,
		opts:  opts,
		dirty: true,
	}
	s.pointer.reset()
	return s
}

// SetSections replaces the section set. Passing the current indexer again
// does nothing; anything else drops the selection.
func (s *Scroller) SetSections(ix SectionIndexer) {
	if sameRef(s.indexer, ix) {
		return
	}
	s.indexer = ix
	s.sections = newSectionSet(ix)
	s.pointer.selected = -1
	s.markDirty()
}

func (s *Scroller) Sections() SectionIndexer { return s.indexer }

// SectionCount is the number of labels currently on the strip.
func (s *Scroller) SectionCount() int { return s.sections.count() }

// Label returns the label of section i, or "" when out of range.
func (s *Scroller) Label(i int) string { return s.sections.label(i) }

func (s *Scroller) SetTextSize(size float64) {
	if s.cfg.TextSize == size {
		return
	}
	s.cfg.TextSize = size
	s.markDirty()
}

func (s *Scroller) TextSize() float64 { return s.cfg.TextSize }

func (s *Scroller) SetTextColor(c Color) {
	if s.cfg.TextColor == c {
		return
	}
	s.cfg.TextColor = c
	s.markDirty()
}

func (s *Scroller) TextColor() Color { return s.cfg.TextColor }

func (s *Scroller) SetSpacing(spacing float64) {
	if s.cfg.Spacing == spacing {
		return
	}
	s.cfg.Spacing = spacing
	s.markDirty()
}

func (s *Scroller) Spacing() float64 { return s.cfg.Spacing }

// SetSectionWidth sets a fixed section width, or Auto to fit the widest label.
func (s *Scroller) SetSectionWidth(width float64) {
	if width < 0 {
		width = Auto
	}
	if s.cfg.SectionWidth == width {
		return
	}
	s.cfg.SectionWidth = width
	s.markDirty()
}

func (s *Scroller) SectionWidth() float64 { return s.cfg.SectionWidth }

// SetSectionHeight sets a fixed section height, or Auto to use the text height.
func (s *Scroller) SetSectionHeight(height float64) {
	if height < 0 {
		height = Auto
	}
	if s.cfg.SectionHeight == height {
		return
	}
	s.cfg.SectionHeight = height
	s.markDirty()
}

func (s *Scroller) SectionHeight() float64 { return s.cfg.SectionHeight }

func (s *Scroller) SetPadding(p Padding) {
	if s.cfg.Padding == p {
		return
	}
	s.cfg.Padding = p
	s.markDirty()
}

func (s *Scroller) Padding() Padding { return s.padding() }

func (s *Scroller) SetDebug(debug bool) {
	if s.cfg.Debug == debug {
		return
	}
	s.cfg.Debug = debug
	s.invalidate()
}

func (s *Scroller) Debug() bool { return s.cfg.Debug }

func (s *Scroller) AddDecoration(d Decorator) {
	if d == nil {
		return
	}
	s.decorations = append(s.decorations, d)
	s.invalidate()
}

// RemoveDecoration removes the first decorator identical to d.
func (s *Scroller) RemoveDecoration(d Decorator) {
	for i, cur := range s.decorations {
		if sameRef(cur, d) {
			s.decorations = append(s.decorations[:i:i], s.decorations[i+1:]...)
			break
		}
	}
	s.invalidate()
}

func (s *Scroller) Decorations() []Decorator {
	out := make([]Decorator, len(s.decorations))
	copy(out, s.decorations)
	return out
}

func (s *Scroller) AddOnSectionScrolledListener(l SectionScrolledListener) {
	if l == nil {
		return
	}
	s.listeners = append(s.listeners, l)
}

func (s *Scroller) RemoveOnSectionScrolledListener(l SectionScrolledListener) {
	for i, cur := range s.listeners {
		if sameRef(cur, l) {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}

// OnSizeChanged records the size the host settled on. The next measure
// fits the sections into exactly that box.
func (s *Scroller) OnSizeChanged(width, height float64) {
	s.widthSpec = ExactSize(width)
	s.heightSpec = ExactSize(height)
	s.measured = true
	s.dirty = true
	s.invalidate()
}

// Measure lays the strip out under the given constraints. The result is
// cached until a setter or a different constraint invalidates it.
func (s *Scroller) Measure(widthSpec, heightSpec MeasureSpec) Geometry {
	if s.measured && !s.dirty && s.widthSpec == widthSpec && s.heightSpec == heightSpec {
		return s.geom
	}
	s.widthSpec = widthSpec
	s.heightSpec = heightSpec
	s.measured = true
	s.relayout()
	return s.geom
}

// Geometry returns the current layout, recomputing it if anything changed
// since the last measure.
func (s *Scroller) Geometry() Geometry { return s.geometry() }

func (s *Scroller) State() TouchState { return s.pointer.state }

// SelectedIndex is the committed section, or -1.
func (s *Scroller) SelectedIndex() int { return s.pointer.selected }

func (s *Scroller) geometry() Geometry {
	if s.dirty {
		s.relayout()
	}
	return s.geom
}

func (s *Scroller) relayout() {
	sectionWidth := s.cfg.SectionWidth
	sectionHeight := s.cfg.SectionHeight
	if s.cfg.Simplified {
		sectionWidth = Auto
		sectionHeight = Auto
	}

	labelWidth, textHeight := measureLabels(s.sections.labels, s.opts.Metrics, s.basePaint())
	s.geom = computeLayout(layoutInput{
		count:         s.sections.count(),
		labelWidth:    labelWidth,
		textHeight:    textHeight,
		sectionWidth:  sectionWidth,
		sectionHeight: sectionHeight,
		spacing:       s.cfg.Spacing,
		padding:       s.padding(),
	}, s.widthSpec, s.heightSpec)
	s.dirty = false
}

func (s *Scroller) padding() Padding {
	if s.cfg.Simplified {
		return Padding{}
	}
	return s.cfg.Padding
}

func (s *Scroller) markDirty() {
	s.dirty = true
	if s.opts.RequestLayout != nil {
		s.opts.RequestLayout()
	}
	s.invalidate()
}

func (s *Scroller) invalidate() {
	if s.opts.Invalidate != nil {
		s.opts.Invalidate()
	}
}

// sameRef compares by identity without panicking on non-comparable values.
func sameRef(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta := reflect.TypeOf(a)
	if ta != reflect.TypeOf(b) || !ta.Comparable() {
		return false
	}
	return a == b
}
