package scroller

// Canvas receives draw calls in widget coordinates.
type Canvas interface {
	DrawText(text string, centerX, baseline float64, p Paint)
	DrawRect(left, top, right, bottom float64)
}

// Draw renders every section top to bottom. Decorators only run while a
// drag is in progress.
func (s *Scroller) Draw(c Canvas) {
	if c == nil {
		return
	}
	count := s.sections.count()
	if count == 0 {
		return
	}

	g := s.geometry()
	pad := s.padding()
	width := g.Width - pad.Horizontal()
	centerX := pad.Left + width/2
	half := g.Spacing / 2
	offset := (g.SectionHeight + g.TextHeight) / 2

	base := s.basePaint()
	dragging := s.pointer.state == Dragging

	y := pad.Top
	for i := 0; i < count; i++ {
		y += half
		if s.cfg.Debug {
			c.DrawRect(pad.Left, y, pad.Left+width, y+g.SectionHeight)
		}

		label := s.sections.label(i)
		if dragging {
			var slot Slot
			slot.reset(label, base)
			decorate(s.decorations, &slot, i, abs(i-s.pointer.selected))
			c.DrawText(slot.Text, centerX, y+offset, slot.Paint)
		} else {
			c.DrawText(label, centerX, y+offset, base)
		}

		y += g.SectionHeight + (g.Spacing - half)
	}
}

func (s *Scroller) basePaint() Paint {
	return Paint{Size: s.cfg.TextSize, Color: s.cfg.TextColor, Alpha: 0xff}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
