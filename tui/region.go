package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/colorpick/color"
)

// Region represents a rectangular area of a screen
// All coordinates are relative to the region's origin
type Region struct {
	Screen tcell.Screen
	Mode   ColorMode
	X, Y   int // Absolute position on screen
	W, H   int // Region dimensions
}

// NewRegion creates a region covering the whole screen
func NewRegion(s tcell.Screen, mode ColorMode) Region {
	w, h := s.Size()
	return Region{Screen: s, Mode: mode, W: w, H: h}
}

// Sub returns a nested region with coordinates relative to parent, result is clipped to parent bounds
func (r Region) Sub(x, y, w, h int) Region {
	if x < 0 {
		w += x
		x = 0
	}
	if y < 0 {
		h += y
		y = 0
	}
	if x+w > r.W {
		w = r.W - x
	}
	if y+h > r.H {
		h = r.H - y
	}
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}

	return Region{
		Screen: r.Screen,
		Mode:   r.Mode,
		X:      r.X + x,
		Y:      r.Y + y,
		W:      w,
		H:      h,
	}
}

// Inset returns a region shrunk by n cells on all sides
func (r Region) Inset(n int) Region {
	return r.Sub(n, n, r.W-2*n, r.H-2*n)
}

// Row returns the single-line region at y
func (r Region) Row(y int) Region {
	return r.Sub(0, y, r.W, 1)
}

// Cell sets a single cell with bounds checking
func (r Region) Cell(x, y int, ch rune, fg, bg color.RGB, attr tcell.AttrMask) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	style := tcell.StyleDefault.
		Foreground(toTcell(fg, r.Mode)).
		Background(toTcell(bg, r.Mode)).
		Attributes(attr)
	r.Screen.SetContent(r.X+x, r.Y+y, ch, nil, style)
}

// Fill fills entire region with background color
func (r Region) Fill(bg color.RGB) {
	for y := 0; y < r.H; y++ {
		for x := 0; x < r.W; x++ {
			r.Cell(x, y, ' ', bg, bg, tcell.AttrNone)
		}
	}
}

// Text draws s at (x, y) clipped to the region, returns the x after the last cell
func (r Region) Text(x, y int, s string, fg, bg color.RGB, attr tcell.AttrMask) int {
	for _, ch := range s {
		if x >= r.W {
			break
		}
		r.Cell(x, y, ch, fg, bg, attr)
		x += RuneWidth(ch)
	}
	return x
}

// TextCenter draws s horizontally centered on row y
func (r Region) TextCenter(y int, s string, fg, bg color.RGB, attr tcell.AttrMask) {
	x := (r.W - StringWidth(s)) / 2
	if x < 0 {
		x = 0
	}
	r.Text(x, y, s, fg, bg, attr)
}
