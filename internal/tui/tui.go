package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/baaaaaaaka/fast-scroller/internal/cellmetrics"
	"github.com/baaaaaaaka/fast-scroller/internal/preset"
	"github.com/baaaaaaaka/fast-scroller/internal/scroller"
)

var errQuit = errors.New("quit")

var newScreen = tcell.NewScreen

type Options struct {
	Preset      preset.Preset
	Items       []string
	Scroller    scroller.Config
	Decorations []scroller.Decorator
	EastAsian   bool
	Trace       io.Writer

	// DefaultColor draws labels in the terminal's foreground color instead
	// of Scroller.TextColor.
	DefaultColor bool
}

type uiEvent struct {
	when time.Time
	kind string
}

func (e *uiEvent) When() time.Time { return e.when }

type rect struct {
	y int
	x int
	h int
	w int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type layout struct {
	list  rect
	strip rect
}

type listState struct {
	selected int
	scroll   int
}

type uiState struct {
	title    string
	rows     []listRow
	sections *scroller.StaticSections
	list     listState
	scroller *scroller.Scroller
	metrics  cellmetrics.Metrics

	strip     rect
	viewH     int
	stripSize [2]float64
	pressing  bool
	current   string
	dirty     bool

	defaultColor bool
	trace        io.Writer
}

func newUIState(opts Options) *uiState {
	rows, sections := buildRows(opts.Preset.Labels, opts.Items)
	state := &uiState{
		title:        opts.Preset.Name,
		rows:         rows,
		sections:     sections,
		metrics:      cellmetrics.New(opts.EastAsian),
		defaultColor: opts.DefaultColor,
		trace:        opts.Trace,
		dirty:        true,
	}
	state.scroller = scroller.New(opts.Scroller, scroller.Options{
		Metrics:       state.metrics,
		Invalidate:    func() { state.dirty = true },
		RequestLayout: func() { state.dirty = true },
	})
	state.scroller.SetSections(sections)
	for _, d := range opts.Decorations {
		state.scroller.AddDecoration(d)
	}
	state.scroller.AddOnSectionScrolledListener(state)
	return state
}

// OnSectionScrolled jumps the list to the section's header row.
func (s *uiState) OnSectionScrolled(ix scroller.SectionIndexer, section int) {
	pos := ix.PositionForSection(section)
	s.list.selected = clamp(pos, 0, max(0, len(s.rows)-1))
	s.list.scroll = clamp(s.list.selected, 0, max(0, len(s.rows)-s.viewH))
	s.current = s.scroller.Label(section)
	s.tracef("section index=%d label=%s row=%d", section, s.current, pos)
}

func (s *uiState) tracef(format string, args ...any) {
	if s.trace == nil {
		return
	}
	_, _ = fmt.Fprintf(s.trace, format+"\n", args...)
}

func Run(ctx context.Context, opts Options) error {
	if len(opts.Preset.Labels) == 0 {
		return errors.New("preset has no labels")
	}
	state := newUIState(opts)

	screen, err := newScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()

	go func() {
		<-ctx.Done()
		screen.PostEvent(&uiEvent{when: time.Now(), kind: "quit"})
	}()

	for {
		// Hover motion arrives constantly; only repaint after a change.
		if state.dirty {
			draw(screen, state)
		}
		ev := screen.PollEvent()

		switch tev := ev.(type) {
		case nil:
			return nil
		case *uiEvent:
			if tev.kind == "quit" {
				return ctx.Err()
			}
		case *tcell.EventResize:
			cancelGesture(state)
			state.dirty = true
			screen.Sync()
		case *tcell.EventFocus:
			if !tev.Focused {
				cancelGesture(state)
			}
		case *tcell.EventMouse:
			x, y := tev.Position()
			handleMouse(screen, state, x, y, tev.Buttons())
		case *tcell.EventKey:
			if err := handleKey(screen, state, tev); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
			state.dirty = true
		}
	}
}

func handleMouse(screen tcell.Screen, state *uiState, x, y int, buttons tcell.ButtonMask) {
	lay := computeLayout(screen, state)
	pointerY := float64(y-lay.strip.y) + 0.5

	if buttons&tcell.Button1 != 0 {
		if !state.pressing {
			if !lay.strip.contains(x, y) {
				return
			}
			state.pressing = true
			state.dirty = true
			state.scroller.HandlePointer(scroller.PointerEvent{Action: scroller.PointerDown, Y: pointerY})
			return
		}
		state.scroller.HandlePointer(scroller.PointerEvent{Action: scroller.PointerMove, Y: pointerY})
		return
	}

	if state.pressing {
		state.pressing = false
		state.scroller.HandlePointer(scroller.PointerEvent{Action: scroller.PointerUp, Y: pointerY})
		state.tracef("gesture end")
		return
	}

	viewH := lay.list.h - 2
	switch {
	case buttons&tcell.WheelUp != 0:
		state.list.scroll = clamp(state.list.scroll-1, 0, max(0, len(state.rows)-viewH))
		state.dirty = true
	case buttons&tcell.WheelDown != 0:
		state.list.scroll = clamp(state.list.scroll+1, 0, max(0, len(state.rows)-viewH))
		state.dirty = true
	}
}

func cancelGesture(state *uiState) {
	if !state.pressing {
		return
	}
	state.pressing = false
	state.scroller.HandlePointer(scroller.PointerEvent{Action: scroller.PointerCancel})
	state.tracef("gesture cancel")
}

func handleKey(screen tcell.Screen, state *uiState, ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyESC:
		return errQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return errQuit
		case 'd', 'D':
			state.scroller.SetDebug(!state.scroller.Debug())
			return nil
		}
	}

	lay := computeLayout(screen, state)
	prev := state.list.selected
	applyListNavigation(&state.list, len(state.rows), lay.list.h-2, ev)
	if state.list.selected != prev {
		section := state.sections.SectionForPosition(state.list.selected)
		state.current = state.scroller.Label(section)
	}
	return nil
}

// computeLayout places the strip on the right edge. The strip is measured
// under an at-most width and the exact height left above the status line.
func computeLayout(screen tcell.Screen, state *uiState) layout {
	maxX, maxY := screen.Size()
	usableH := max(0, maxY-1)

	g := state.scroller.Measure(
		scroller.AtMostSize(float64(max(0, maxX/3))),
		scroller.ExactSize(float64(usableH)),
	)
	stripW, _ := cell(g.Width)
	if size := [2]float64{g.Width, g.Height}; size != state.stripSize {
		state.stripSize = size
		state.scroller.OnSizeChanged(g.Width, g.Height)
	}

	lay := layout{
		list:  rect{y: 0, x: 0, h: usableH, w: max(0, maxX-stripW)},
		strip: rect{y: 0, x: max(0, maxX-stripW), h: usableH, w: stripW},
	}
	state.strip = lay.strip
	state.viewH = max(0, lay.list.h-2)
	return lay
}

func draw(screen tcell.Screen, state *uiState) {
	screen.Clear()
	lay := computeLayout(screen, state)

	drawBox(screen, lay.list, state.title, !state.pressing, fmt.Sprintf("%d rows", len(state.rows)))
	drawList(screen, lay.list, renderRows(state.rows, state.list, lay.list.h-2))

	canvas := &tcellCanvas{
		screen:       screen,
		clip:         lay.strip,
		metrics:      state.metrics,
		baseSize:     state.scroller.TextSize(),
		defaultColor: state.defaultColor,
	}
	state.scroller.Draw(canvas)

	drawStatus(screen, state)
	screen.Show()
	state.dirty = false
}

func drawStatus(screen tcell.Screen, state *uiState) {
	w, h := screen.Size()
	if h <= 0 {
		return
	}
	style := tcell.StyleDefault.Reverse(true)
	left := "Drag the strip to jump  Up/Down PgUp/PgDn: scroll  d: debug  q: quit"
	right := ""
	if state.current != "" {
		right = "Section " + state.current
	}
	writeText(screen, 0, h-1, padRight("", w), style)
	rightW := displayWidth(right)
	writeText(screen, 0, h-1, truncate(left, max(0, w-rightW-2)), style)
	if right != "" {
		writeText(screen, max(0, w-rightW), h-1, truncate(right, w), style.Bold(true))
	}
}

func applyListNavigation(state *listState, nItems int, viewH int, ev *tcell.EventKey) {
	if nItems <= 0 {
		state.selected = 0
		state.scroll = 0
		return
	}
	switch ev.Key() {
	case tcell.KeyUp:
		state.selected = clamp(state.selected-1, 0, nItems-1)
	case tcell.KeyDown:
		state.selected = clamp(state.selected+1, 0, nItems-1)
	case tcell.KeyPgUp:
		state.selected = clamp(state.selected-max(1, viewH), 0, nItems-1)
	case tcell.KeyPgDn:
		state.selected = clamp(state.selected+max(1, viewH), 0, nItems-1)
	case tcell.KeyHome:
		state.selected = 0
	case tcell.KeyEnd:
		state.selected = nItems - 1
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k', 'K':
			state.selected = clamp(state.selected-1, 0, nItems-1)
		case 'j', 'J':
			state.selected = clamp(state.selected+1, 0, nItems-1)
		case 'g':
			state.selected = 0
		case 'G':
			state.selected = nItems - 1
		default:
			return
		}
	default:
		return
	}
	state.ensureVisible(viewH, nItems)
}

func (s *listState) ensureVisible(viewH int, nItems int) {
	if nItems <= 0 || viewH <= 0 {
		s.scroll = 0
		return
	}
	maxScroll := max(0, nItems-viewH)
	if s.selected < s.scroll {
		s.scroll = s.selected
	} else if s.selected >= s.scroll+viewH {
		s.scroll = s.selected - viewH + 1
	}
	s.scroll = clamp(s.scroll, 0, maxScroll)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
