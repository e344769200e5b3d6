package tui

import (
	"math"

	"fortio.org/safecast"
	"github.com/gdamore/tcell/v2"

	"github.com/baaaaaaaka/fast-scroller/internal/cellmetrics"
	"github.com/baaaaaaaka/fast-scroller/internal/scroller"
)

var debugBackgrounds = [2]tcell.Color{tcell.ColorDarkRed, tcell.ColorMaroon}

// tcellCanvas draws scroller output into a screen region. Each label takes
// one row; a smaller or faded paint renders dim since cells cannot scale.
type tcellCanvas struct {
	screen       tcell.Screen
	clip         rect
	metrics      cellmetrics.Metrics
	baseSize     float64
	defaultColor bool

	rects int
	bg    map[int]tcell.Color
}

func (c *tcellCanvas) DrawRect(left, top, right, bottom float64) {
	x0, ok0 := cell(left)
	x1, ok1 := cell(right)
	y0, ok2 := cell(top)
	y1, ok3 := cell(bottom)
	if !ok0 || !ok1 || !ok2 || !ok3 {
		return
	}
	if y1 == y0 {
		y1++
	}
	color := debugBackgrounds[c.rects%len(debugBackgrounds)]
	c.rects++
	style := tcell.StyleDefault.Background(color)
	for y := max(y0, 0); y < min(y1, c.clip.h); y++ {
		if c.bg == nil {
			c.bg = make(map[int]tcell.Color)
		}
		c.bg[y] = color
		for x := max(x0, 0); x < min(x1, c.clip.w); x++ {
			c.screen.SetContent(c.clip.x+x, c.clip.y+y, ' ', nil, style)
		}
	}
}

func (c *tcellCanvas) DrawText(text string, centerX, baseline float64, p scroller.Paint) {
	row, ok := cell(baseline - 0.5)
	if !ok || row < 0 || row >= c.clip.h {
		return
	}
	w := float64(c.metrics.StringWidth(text))
	col, ok := cell(centerX - w/2 + 0.5)
	if !ok {
		return
	}

	style := c.style(p)
	if bg, ok := c.bg[row]; ok {
		style = style.Background(bg)
	}
	x := c.clip.x + max(0, col)
	limit := c.clip.x + c.clip.w
	for _, ch := range text {
		cw := c.metrics.StringWidth(string(ch))
		if cw == 0 {
			continue
		}
		if x+cw > limit {
			break
		}
		c.screen.SetContent(x, c.clip.y+row, ch, nil, style)
		x += cw
	}
}

func (c *tcellCanvas) style(p scroller.Paint) tcell.Style {
	style := tcell.StyleDefault
	if !c.defaultColor {
		style = style.Foreground(tcell.NewRGBColor(p.Color.RGB()))
	}
	if p.Bold {
		style = style.Bold(true)
	}
	if p.Alpha < 0x80 || p.Size < c.baseSize {
		style = style.Dim(true)
	}
	return style
}

// cell floors a widget coordinate to a cell index.
func cell(v float64) (int, bool) {
	n, err := safecast.Truncate[int](math.Floor(v))
	if err != nil {
		return 0, false
	}
	return n, true
}
