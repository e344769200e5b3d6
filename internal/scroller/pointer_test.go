package scroller

import (
	"testing"
)

// newDragScroller lays out three 30-unit sections with 10 units of spacing,
// so each group is 40 tall and the dead band is 5 on each side of a boundary.
func newDragScroller(t *testing.T) (*Scroller, *recordListener) {
	t.Helper()
	cfg := testConfig()
	cfg.SectionHeight = 30
	cfg.Spacing = 10
	s := newTestScroller(t, cfg, "A", "B", "C")
	g := s.Measure(UnboundedSize(), UnboundedSize())
	if g.GroupHeight() != 40 || g.Spacing != 10 {
		t.Fatalf("unexpected geometry %#v", g)
	}
	l := &recordListener{}
	s.AddOnSectionScrolledListener(l)
	return s, l
}

func startDrag(t *testing.T, s *Scroller) {
	t.Helper()
	s.HandlePointer(PointerEvent{Action: PointerDown, Y: 0})
	s.HandlePointer(PointerEvent{Action: PointerMove, Y: 100})
	if s.State() != Dragging {
		t.Fatalf("state=%s want dragging", s.State())
	}
}

func TestPointerSlopPromotesToDragging(t *testing.T) {
	s := newTestScroller(t, testConfig(), "A", "B", "C")
	s.Measure(ExactSize(10), ExactSize(90))

	s.HandlePointer(PointerEvent{Action: PointerDown, Y: 5})
	if s.State() != Pressed {
		t.Fatalf("state=%s want pressed", s.State())
	}
	s.HandlePointer(PointerEvent{Action: PointerMove, Y: 8})
	if s.State() != Pressed {
		t.Fatalf("state=%s want pressed after small move", s.State())
	}
	s.HandlePointer(PointerEvent{Action: PointerMove, Y: 20})
	if s.State() != Dragging {
		t.Fatalf("state=%s want dragging", s.State())
	}
	if s.SelectedIndex() != -1 {
		t.Fatalf("entering drag must not select, got %d", s.SelectedIndex())
	}
}

func TestPointerPressThenReleaseIsTap(t *testing.T) {
	s, l := newDragScroller(t)
	s.HandlePointer(PointerEvent{Action: PointerDown, Y: 50})
	s.HandlePointer(PointerEvent{Action: PointerUp, Y: 50})
	if s.State() != Idle {
		t.Fatalf("state=%s want idle", s.State())
	}
	if len(l.calls) != 0 {
		t.Fatalf("tap fired listener: %v", l.calls)
	}
}

func TestPointerDeadBandBlocksCommit(t *testing.T) {
	s, l := newDragScroller(t)
	startDrag(t, s)

	s.HandlePointer(PointerEvent{Action: PointerMove, Y: 38})
	if s.SelectedIndex() != -1 || len(l.calls) != 0 {
		t.Fatalf("y=38 committed %d (calls %v)", s.SelectedIndex(), l.calls)
	}

	s.HandlePointer(PointerEvent{Action: PointerMove, Y: 42})
	if s.SelectedIndex() != -1 {
		t.Fatalf("y=42 is inside the dead band, got %d", s.SelectedIndex())
	}

	s.HandlePointer(PointerEvent{Action: PointerMove, Y: 48})
	if s.SelectedIndex() != 1 {
		t.Fatalf("y=48 selected %d want 1", s.SelectedIndex())
	}
	if len(l.calls) != 1 || l.calls[0] != 1 {
		t.Fatalf("listener calls=%v want [1]", l.calls)
	}
	if l.ix[0] != s.Sections() {
		t.Fatalf("listener got a different indexer")
	}
}

func TestPointerRepeatedIndexIsNoop(t *testing.T) {
	s, l := newDragScroller(t)
	startDrag(t, s)

	for _, y := range []float64{15, 16, 20, 30, 34} {
		s.HandlePointer(PointerEvent{Action: PointerMove, Y: y})
	}
	if len(l.calls) != 1 || l.calls[0] != 0 {
		t.Fatalf("listener calls=%v want [0]", l.calls)
	}
}

func TestPointerDeadBandAroundEveryBoundary(t *testing.T) {
	s, _ := newDragScroller(t)
	g := s.Geometry()
	group := g.GroupHeight()
	half := g.Spacing / 2

	for k := 1; k < 3; k++ {
		boundary := group * float64(k)
		for _, from := range []int{k - 1, k} {
			for _, d := range []float64{-half * 0.9, -half / 2, 0, half / 2, half * 0.9} {
				y := boundary + d
				if got, ok := selectIndex(g, 3, y, from); ok {
					t.Fatalf("boundary %v offset %v from %d committed %d", boundary, d, from, got)
				}
			}
		}
	}
}

func TestPointerClampsOutsideStrip(t *testing.T) {
	s, l := newDragScroller(t)
	startDrag(t, s)

	s.HandlePointer(PointerEvent{Action: PointerMove, Y: -500})
	if s.SelectedIndex() != 0 {
		t.Fatalf("above strip selected %d want 0", s.SelectedIndex())
	}
	s.HandlePointer(PointerEvent{Action: PointerMove, Y: 5000})
	if s.SelectedIndex() != 2 {
		t.Fatalf("below strip selected %d want 2", s.SelectedIndex())
	}
	if len(l.calls) != 2 {
		t.Fatalf("listener calls=%v want two", l.calls)
	}
}

func TestPointerIndexMonotonic(t *testing.T) {
	s, _ := newDragScroller(t)
	g := s.Geometry()
	total := g.ContentHeight(3)

	prev := -1
	for y := 0.0; y <= total; y += 0.25 {
		idx, _ := groupIndex(g, 3, y)
		if idx < prev {
			t.Fatalf("index went from %d to %d at y=%v", prev, idx, y)
		}
		prev = idx
	}
	if prev != 2 {
		t.Fatalf("last index=%d want 2", prev)
	}
}

func TestPointerUpAndCancelReset(t *testing.T) {
	for _, action := range []PointerAction{PointerUp, PointerCancel} {
		t.Run(action.String(), func(t *testing.T) {
			s, _ := newDragScroller(t)
			startDrag(t, s)
			s.HandlePointer(PointerEvent{Action: PointerMove, Y: 60})
			if s.SelectedIndex() != 1 {
				t.Fatalf("selected=%d want 1", s.SelectedIndex())
			}
			s.HandlePointer(PointerEvent{Action: action})
			if s.State() != Idle || s.SelectedIndex() != -1 {
				t.Fatalf("after %s: state=%s selected=%d", action, s.State(), s.SelectedIndex())
			}
		})
	}
}

func TestPointerEmptySectionsStayIdle(t *testing.T) {
	s := newTestScroller(t, testConfig())
	l := &recordListener{}
	s.AddOnSectionScrolledListener(l)

	events := []PointerEvent{
		{Action: PointerDown, Y: 5},
		{Action: PointerMove, Y: 50},
		{Action: PointerMove, Y: 90},
		{Action: PointerUp, Y: 90},
	}
	for _, ev := range events {
		if !s.HandlePointer(ev) {
			t.Fatalf("event %s not consumed", ev.Action)
		}
		if s.State() != Idle {
			t.Fatalf("after %s: state=%s want idle", ev.Action, s.State())
		}
	}
	if len(l.calls) != 0 {
		t.Fatalf("listener fired: %v", l.calls)
	}
}

func TestPointerSectionsClearedMidGesture(t *testing.T) {
	redraws := 0
	s := New(testConfig(), Options{Metrics: testMetrics, Invalidate: func() { redraws++ }})
	s.SetSections(NewStaticSections("A", "B"))
	s.Measure(ExactSize(10), ExactSize(40))

	s.HandlePointer(PointerEvent{Action: PointerDown, Y: 1})
	s.SetSections(nil)
	before := redraws
	s.HandlePointer(PointerEvent{Action: PointerMove, Y: 35})
	if s.State() != Idle {
		t.Fatalf("state=%s want idle", s.State())
	}
	if redraws != before+1 {
		t.Fatalf("expected one redraw, got %d", redraws-before)
	}
}

func TestPointerHonorsTopPadding(t *testing.T) {
	cfg := testConfig()
	cfg.Padding = Padding{Top: 100}
	s := newTestScroller(t, cfg, "A", "B", "C")
	s.Measure(ExactSize(10), ExactSize(190))

	s.HandlePointer(PointerEvent{Action: PointerDown, Y: 100})
	s.HandlePointer(PointerEvent{Action: PointerMove, Y: 130})
	s.HandlePointer(PointerEvent{Action: PointerMove, Y: 175})
	if s.SelectedIndex() != 2 {
		t.Fatalf("selected=%d want 2", s.SelectedIndex())
	}
}

func TestRemoveListenerStopsNotifications(t *testing.T) {
	s, l := newDragScroller(t)
	other := &recordListener{}
	s.AddOnSectionScrolledListener(other)
	s.RemoveOnSectionScrolledListener(l)

	startDrag(t, s)
	s.HandlePointer(PointerEvent{Action: PointerMove, Y: 20})
	if len(l.calls) != 0 {
		t.Fatalf("removed listener still called: %v", l.calls)
	}
	if len(other.calls) != 1 {
		t.Fatalf("remaining listener calls=%v", other.calls)
	}
}

func TestOnSectionChangedRunsBeforeListeners(t *testing.T) {
	var order []string
	cfg := testConfig()
	s := New(cfg, Options{Metrics: testMetrics, OnSectionChanged: func(int) { order = append(order, "hook") }})
	s.SetSections(NewStaticSections("A", "B"))
	s.Measure(ExactSize(10), ExactSize(40))
	s.AddOnSectionScrolledListener(listenerFunc(func(SectionIndexer, int) { order = append(order, "listener") }))

	startDrag(t, s)
	s.HandlePointer(PointerEvent{Action: PointerMove, Y: 30})
	if len(order) != 2 || order[0] != "hook" || order[1] != "listener" {
		t.Fatalf("order=%v", order)
	}
}

type listenerFunc func(SectionIndexer, int)

func (f listenerFunc) OnSectionScrolled(ix SectionIndexer, section int) { f(ix, section) }
