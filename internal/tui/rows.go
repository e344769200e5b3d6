package tui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/baaaaaaaka/fast-scroller/internal/scroller"
)

const sampleItemsPerSection = 4

type listRow struct {
	label  string
	header bool
}

type row struct {
	label    string
	dim      bool
	bold     bool
	selected bool
	focused  bool
}

// Leading consonants of the Hangul syllable block, as compatibility jamo so
// they compare equal to the labels a preset carries.
var hangulInitials = []rune("ㄱㄲㄴㄷㄸㄹㅁㅂㅃㅅㅆㅇㅈㅉㅊㅋㅌㅍㅎ")

// Doubled initials file under their single consonant when a preset has no
// label for them.
var plainInitial = map[string]string{
	"ㄲ": "ㄱ",
	"ㄸ": "ㄷ",
	"ㅃ": "ㅂ",
	"ㅆ": "ㅅ",
	"ㅉ": "ㅈ",
}

// sectionKey is the label an item files under: its first rune upper-cased,
// or the initial consonant for a Hangul syllable.
func sectionKey(item string) string {
	item = strings.TrimSpace(item)
	for _, r := range item {
		if r >= 0xAC00 && r <= 0xD7A3 {
			return string(hangulInitials[(r-0xAC00)/588])
		}
		return string(unicode.ToUpper(r))
	}
	return ""
}

// buildRows lays out one header row per label followed by the items that
// belong to it. With no items every section gets a few sample rows. Items
// whose key matches no label, even after folding a doubled Hangul initial,
// land in the last section.
func buildRows(labels []string, items []string) ([]listRow, *scroller.StaticSections) {
	groups := make([][]string, len(labels))
	if len(items) == 0 {
		for i, label := range labels {
			for n := 1; n <= sampleItemsPerSection; n++ {
				groups[i] = append(groups[i], fmt.Sprintf("%s item %d", label, n))
			}
		}
	} else {
		byKey := make(map[string]int, len(labels))
		for i, label := range labels {
			if _, ok := byKey[strings.ToUpper(label)]; !ok {
				byKey[strings.ToUpper(label)] = i
			}
		}
		for _, item := range items {
			if strings.TrimSpace(item) == "" {
				continue
			}
			key := sectionKey(item)
			i, ok := byKey[key]
			if base, folded := plainInitial[key]; !ok && folded {
				i, ok = byKey[base]
			}
			if !ok {
				i = len(labels) - 1
			}
			if i < 0 {
				continue
			}
			groups[i] = append(groups[i], item)
		}
	}

	sections := &scroller.StaticSections{
		Labels:    append([]string(nil), labels...),
		Positions: make([]int, len(labels)),
	}
	var rows []listRow
	for i, label := range labels {
		sections.Positions[i] = len(rows)
		rows = append(rows, listRow{label: label, header: true})
		for _, item := range groups[i] {
			rows = append(rows, listRow{label: "  " + item})
		}
	}
	return rows, sections
}

func renderRows(rows []listRow, state listState, viewH int) []row {
	if viewH <= 0 {
		return nil
	}
	start := clamp(state.scroll, 0, max(0, len(rows)-1))
	end := min(len(rows), start+viewH)
	out := make([]row, 0, end-start)
	for i := start; i < end; i++ {
		r := rows[i]
		out = append(out, row{
			label:    r.label,
			bold:     r.header,
			selected: i == state.selected,
			focused:  true,
		})
	}
	return out
}

func drawBox(screen tcell.Screen, r rect, title string, focused bool, hint string) {
	if r.w <= 0 || r.h <= 0 {
		return
	}
	borderStyle := tcell.StyleDefault
	if focused {
		borderStyle = borderStyle.Bold(true)
	} else {
		borderStyle = borderStyle.Dim(true)
	}
	for x := r.x + 1; x < r.x+r.w-1; x++ {
		screen.SetContent(x, r.y, tcell.RuneHLine, nil, borderStyle)
		screen.SetContent(x, r.y+r.h-1, tcell.RuneHLine, nil, borderStyle)
	}
	for y := r.y + 1; y < r.y+r.h-1; y++ {
		screen.SetContent(r.x, y, tcell.RuneVLine, nil, borderStyle)
		screen.SetContent(r.x+r.w-1, y, tcell.RuneVLine, nil, borderStyle)
	}
	screen.SetContent(r.x, r.y, tcell.RuneULCorner, nil, borderStyle)
	screen.SetContent(r.x+r.w-1, r.y, tcell.RuneURCorner, nil, borderStyle)
	screen.SetContent(r.x, r.y+r.h-1, tcell.RuneLLCorner, nil, borderStyle)
	screen.SetContent(r.x+r.w-1, r.y+r.h-1, tcell.RuneLRCorner, nil, borderStyle)

	titleStyle := tcell.StyleDefault.Reverse(true)
	if focused {
		titleStyle = titleStyle.Bold(true)
	}
	title = " " + title + " "
	maxTitleWidth := max(0, r.w-2)
	title = truncate(title, maxTitleWidth)
	titleX := r.x + 1 + max(0, (maxTitleWidth-displayWidth(title))/2)
	writeText(screen, titleX, r.y, title, titleStyle)

	if hint != "" && r.h >= 2 {
		writeText(screen, r.x+1, r.y+r.h-1, truncate(hint, r.w-2), borderStyle.Dim(true))
	}
}

func drawList(screen tcell.Screen, r rect, rows []row) {
	if r.h < 3 || r.w < 4 {
		return
	}
	innerH := r.h - 2
	innerW := r.w - 2
	for i := 0; i < innerH; i++ {
		y := r.y + 1 + i
		if i >= len(rows) {
			writeText(screen, r.x+1, y, padRight("", innerW), tcell.StyleDefault)
			continue
		}
		row := rows[i]
		style := tcell.StyleDefault
		if row.bold {
			style = style.Bold(true)
		}
		if row.selected {
			style = style.Reverse(true)
			if !row.focused {
				style = style.Dim(true)
			}
		} else if row.dim {
			style = style.Dim(true)
		}
		writeText(screen, r.x+1, y, padRight(truncate(row.label, innerW), innerW), style)
	}
}

func writeText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	offset := 0
	for _, ch := range text {
		width := runewidth.RuneWidth(ch)
		if width == 0 {
			continue
		}
		screen.SetContent(x+offset, y, ch, nil, style)
		offset += width
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if displayWidth(s) <= width {
		return s
	}
	var buf strings.Builder
	curWidth := 0
	for _, ch := range s {
		chWidth := runewidth.RuneWidth(ch)
		if chWidth == 0 {
			buf.WriteRune(ch)
			continue
		}
		if curWidth+chWidth > width {
			break
		}
		buf.WriteRune(ch)
		curWidth += chWidth
	}
	return buf.String()
}

func padRight(s string, width int) string {
	if displayWidth(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-displayWidth(s))
}

func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}
