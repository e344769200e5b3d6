package scroller

import "math"

type PointerAction int

const (
	PointerDown PointerAction = iota
	PointerMove
	PointerUp
	PointerCancel
)

func (a PointerAction) String() string {
	switch a {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerEvent carries the pointer's vertical position in widget coordinates.
type PointerEvent struct {
	Action PointerAction
	Y      float64
}

type TouchState int

const (
	Idle TouchState = iota
	Pressed
	Dragging
)

func (s TouchState) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Dragging:
		return "dragging"
	default:
		return "idle"
	}
}

type pointerSession struct {
	state    TouchState
	pressY   float64
	selected int
}

func (p *pointerSession) reset() {
	p.state = Idle
	p.pressY = 0
	p.selected = -1
}

// HandlePointer feeds one pointer event through the gesture state machine.
// Every event is consumed.
func (s *Scroller) HandlePointer(ev PointerEvent) bool {
	count := s.sections.count()
	if count == 0 {
		if s.pointer.state != Idle {
			s.pointer.reset()
			s.invalidate()
		}
		return true
	}

	y := ev.Y - s.padding().Top

	switch ev.Action {
	case PointerDown:
		s.pointer.pressY = y
		s.pointer.state = Pressed
	case PointerMove:
		switch s.pointer.state {
		case Pressed:
			if math.Abs(s.pointer.pressY-y) > s.cfg.TouchSlop {
				s.pointer.state = Dragging
				s.invalidate()
			}
		case Dragging:
			s.dragTo(y, count)
		}
	case PointerUp, PointerCancel:
		s.pointer.reset()
		s.invalidate()
	}
	return true
}

func (s *Scroller) dragTo(y float64, count int) {
	index, ok := selectIndex(s.geometry(), count, y, s.pointer.selected)
	if !ok {
		return
	}
	s.pointer.selected = index
	if s.opts.OnSectionChanged != nil {
		s.opts.OnSectionChanged(index)
	}
	for _, l := range s.listeners {
		l.OnSectionScrolled(s.indexer, index)
	}
	s.invalidate()
}

// groupIndex maps a content-relative y to the group under it. y is first
// clamped to [spacing/2, total-spacing/2].
func groupIndex(g Geometry, count int, y float64) (index int, clamped float64) {
	group := g.GroupHeight()
	if count <= 0 || group <= 0 {
		return -1, y
	}
	half := g.Spacing / 2
	clamped = math.Min(math.Max(y, half), float64(count)*group-half)
	index = int(math.Floor(clamped / group))
	return clampInt(index, 0, count-1), clamped
}

// selectIndex reports the index to commit for y, if any. Points within
// half a spacing of a group edge belong to the dead band and never commit.
func selectIndex(g Geometry, count int, y float64, current int) (int, bool) {
	index, y := groupIndex(g, count, y)
	if index < 0 || index == current {
		return current, false
	}
	group := g.GroupHeight()
	half := g.Spacing / 2
	within := y - float64(index)*group
	if within < half || within > group-half {
		return current, false
	}
	return index, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
