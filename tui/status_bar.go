package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/colorpick/color"
)

// BarSection represents one segment of a status bar
type BarSection struct {
	Text     string
	Style    Style
	Priority int // Higher = survives truncation
}

// StatusBar renders left sections packed from the left and right sections packed
// from the right on row y; lowest-priority sections drop first when space runs out
func (r Region) StatusBar(y int, left, right []BarSection, bg color.RGB) {
	if y < 0 || y >= r.H {
		return
	}

	for x := 0; x < r.W; x++ {
		r.Cell(x, y, ' ', bg, bg, tcell.AttrNone)
	}

	const sep = "  "
	avail := r.W - 2
	left, right = fitSections(left, right, StringWidth(sep), avail)

	x := 1
	for i, sec := range left {
		if i > 0 {
			x += StringWidth(sep)
		}
		x = r.Text(x, y, sec.Text, sec.Style.Fg, bg, sec.Style.Attr)
	}

	x = r.W - 1 - sectionsWidth(right, StringWidth(sep))
	for i, sec := range right {
		if i > 0 {
			x += StringWidth(sep)
		}
		x = r.Text(x, y, sec.Text, sec.Style.Fg, bg, sec.Style.Attr)
	}
}

func sectionsWidth(secs []BarSection, sepW int) int {
	w := 0
	for i, s := range secs {
		w += StringWidth(s.Text)
		if i > 0 {
			w += sepW
		}
	}
	return w
}

// fitSections removes lowest priority sections until both sides fit
func fitSections(left, right []BarSection, sepW, avail int) ([]BarSection, []BarSection) {
	l := append([]BarSection(nil), left...)
	rt := append([]BarSection(nil), right...)

	for {
		total := sectionsWidth(l, sepW) + sectionsWidth(rt, sepW)
		if len(l) > 0 && len(rt) > 0 {
			total += sepW
		}
		if total <= avail || len(l)+len(rt) <= 1 {
			return l, rt
		}

		// Find lowest priority across both sides, right side loses ties
		fromRight, idx := false, -1
		minPrio := 0
		for i, s := range l {
			if idx < 0 || s.Priority < minPrio {
				idx, minPrio = i, s.Priority
			}
		}
		for i, s := range rt {
			if idx < 0 || s.Priority <= minPrio {
				fromRight, idx, minPrio = true, i, s.Priority
			}
		}

		if fromRight {
			rt = append(rt[:idx], rt[idx+1:]...)
		} else {
			l = append(l[:idx], l[idx+1:]...)
		}
	}
}
