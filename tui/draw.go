package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/colorpick/color"
	"github.com/lixenwraith/colorpick/site"
)

const sampleText = "The quick brown fox jumps over the lazy dog"

var pageHints = map[site.Page]string{
	site.Home:     "1-4 pages  tab next  space shuffle  q quit",
	site.Picker:   "h/l hue  H/L ±10  j/k light  [/] sat  r random  c copy",
	site.Palette:  "space new  ←/→ select  c copy  C copy all  p pick",
	site.Contrast: "f fg  b bg  s swap  c copy",
}

// Draw renders a full frame and shows it
func (a *App) Draw() {
	th := a.opts.Theme
	root := NewRegion(a.screen, a.opts.Mode)
	root.Fill(th.Bg)

	if root.H < 4 || root.W < 20 {
		root.Text(0, 0, Truncate("terminal too small", root.W), th.Fail, th.Bg, tcell.AttrNone)
		a.screen.Show()
		return
	}

	a.drawNav(root.Row(0))

	body := root.Sub(0, 2, root.W, root.H-4)
	switch a.page {
	case site.Home:
		a.drawHome(body)
	case site.Picker:
		a.drawPicker(body)
	case site.Palette:
		a.drawPalette(body)
	case site.Contrast:
		a.drawContrast(body)
	}

	a.toast.Draw(root.Sub(0, 0, root.W, root.H-1))
	a.drawFooter(root.Row(root.H - 1))

	a.screen.Show()
}

// drawNav is the terminal rendition of site.Nav
func (a *App) drawNav(r Region) {
	th := a.opts.Theme
	r.Fill(th.HeaderBg)
	x := r.Text(1, 0, a.opts.Site.Brand+" 🎨", th.HeaderFg, th.HeaderBg, tcell.AttrBold)

	titles := make([]string, 0, len(site.Pages()))
	for _, p := range site.Pages() {
		titles = append(titles, p.Title())
	}
	r.TabBar(x+2, 0, titles, int(a.page), DefaultTabBarOpts(th))
}

// drawFooter is the terminal rendition of site.Footer
func (a *App) drawFooter(r Region) {
	th := a.opts.Theme
	year := a.opts.Clock().Year()
	left := []BarSection{{Text: a.opts.Site.FooterText(year), Style: Style{Fg: th.StatusFg}, Priority: 2}}
	right := []BarSection{{Text: pageHints[a.page], Style: Style{Fg: th.Accent}, Priority: 1}}
	r.StatusBar(0, left, right, th.StatusBg)
}

func (a *App) drawHome(r Region) {
	th := a.opts.Theme
	r.TextCenter(0, a.opts.Site.Tagline, th.Fg, th.Bg, tcell.AttrBold)

	entries := []struct {
		page site.Page
		desc string
	}{
		{site.Picker, "pick a color by hue, saturation and lightness"},
		{site.Palette, "generate golden-angle palettes"},
		{site.Contrast, "check WCAG contrast between two colors"},
	}
	for i, e := range entries {
		y := 2 + i
		x := r.Text(2, y, fmt.Sprintf("%d", int(e.page)+1), th.Accent, th.Bg, tcell.AttrBold)
		x = r.Text(x+2, y, fmt.Sprintf("%-9s", e.page.Title()), th.Fg, th.Bg, tcell.AttrNone)
		r.Text(x+1, y, e.desc, th.Dim, th.Bg, tcell.AttrNone)
	}

	if r.H > 8 {
		strip := r.Sub(2, r.H-3, r.W-4, 3)
		a.drawSwatches(strip, false)
	}
}

func (a *App) drawPicker(r Region) {
	th := a.opts.Theme
	c := a.PickerColor()
	hsl := color.HSL{H: a.hue, S: a.sat, L: a.light}

	swatch := r.Sub(2, 0, 22, min(9, r.H-2))
	swatch.Fill(c)
	swatch.TextCenter(swatch.H/2, c.Hex(), color.ReadableOn(c), c, tcell.AttrBold)

	info := r.Sub(27, 0, r.W-27, r.H)
	rows := [][2]string{
		{"HEX", c.Hex()},
		{"RGB", c.String()},
		{"HSL", hsl.String()},
	}
	for i, row := range rows {
		x := info.Text(0, i, row[0], th.Dim, th.Bg, tcell.AttrNone)
		info.Text(x+2, i, row[1], th.Fg, th.Bg, tcell.AttrBold)
	}

	for i, bg := range []color.RGB{color.White, color.Black} {
		ratio := color.Contrast(c, bg)
		y := 4 + i
		x := info.Text(0, y, "on "+bg.Hex(), th.Dim, th.Bg, tcell.AttrNone)
		x = info.Text(x+2, y, fmt.Sprintf("%.2f:1", ratio), th.Fg, th.Bg, tcell.AttrNone)
		a.drawLevel(info, x+2, y, color.Grade(ratio))
	}

	if r.H > 11 {
		a.drawHueBar(r.Sub(2, r.H-2, r.W-4, 2))
	}
}

// drawHueBar shows the hue spectrum at the current S/L with a marker under the hue
func (a *App) drawHueBar(r Region) {
	if r.W < 2 {
		return
	}
	th := a.opts.Theme
	for x := 0; x < r.W; x++ {
		h := float64(x) * 360 / float64(r.W)
		r.Cell(x, 0, ' ', th.Bg, color.HSLToRGB(h, float64(a.sat), float64(a.light)), tcell.AttrNone)
	}
	mx := a.hue * r.W / 360
	r.Cell(mx, 1, '▲', th.Fg, th.Bg, tcell.AttrBold)
}

func (a *App) drawPalette(r Region) {
	th := a.opts.Theme
	if r.H < 4 {
		return
	}
	a.drawSwatches(r.Sub(2, 0, r.W-4, r.H-2), true)

	sw := a.palette[a.selected]
	line := fmt.Sprintf("%s  %s  hsl(%d, %d%%, %d%%)  min ΔE00 %.1f",
		sw.Hex, sw.RGB.String(), sw.H, sw.S, sw.L, a.palette.MinDistance())
	r.Text(2, r.H-1, Truncate(line, r.W-4), th.Fg, th.Bg, tcell.AttrNone)
}

// drawSwatches splits r into equal columns, one per swatch
// With marker, the selected swatch gets ▲ on the last row
func (a *App) drawSwatches(r Region, marker bool) {
	n := len(a.palette)
	if n == 0 || r.W < n {
		return
	}
	th := a.opts.Theme
	h := r.H
	if marker {
		h--
	}
	colW := r.W / n

	for i, sw := range a.palette {
		col := r.Sub(i*colW, 0, colW, h)
		col.Fill(sw.RGB)
		col.TextCenter(col.H/2, Truncate(sw.Hex, colW), color.ReadableOn(sw.RGB), sw.RGB, tcell.AttrNone)
		if marker && i == a.selected {
			r.Cell(i*colW+colW/2, h, '▲', th.Fg, th.Bg, tcell.AttrBold)
		}
	}
}

func (a *App) drawContrast(r Region) {
	th := a.opts.Theme
	fg, bg := a.ContrastPair()

	sample := r.Sub(2, 0, r.W-4, 5)
	sample.Fill(bg)
	sample.TextCenter(1, Truncate(sampleText, sample.W-2), fg, bg, tcell.AttrNone)
	sample.TextCenter(3, "Large bold text", fg, bg, tcell.AttrBold)

	ratio := color.Contrast(fg, bg)
	grade := color.Grade(ratio)

	y := 6
	x := r.Text(2, y, "Ratio", th.Dim, th.Bg, tcell.AttrNone)
	x = r.Text(x+2, y, fmt.Sprintf("%.2f:1", ratio), th.Fg, th.Bg, tcell.AttrBold)
	a.drawLevel(r, x+2, y, grade)

	checks := []struct {
		label string
		pass  bool
	}{
		{"AA normal", grade.AA},
		{"AA large", grade.AALarge},
		{"AAA normal", grade.AAA},
		{"AAA large", grade.AAALarge},
	}
	for i, c := range checks {
		mark, fgc := '✓', th.Pass
		if !c.pass {
			mark, fgc = '✗', th.Fail
		}
		r.Cell(2, y+2+i, mark, fgc, th.Bg, tcell.AttrBold)
		r.Text(4, y+2+i, c.label, th.Fg, th.Bg, tcell.AttrNone)
	}

	r.Text(2, y+7, "fg "+fg.Hex()+"  bg "+bg.Hex(), th.Dim, th.Bg, tcell.AttrNone)
}

func (a *App) drawLevel(r Region, x, y int, g color.Rating) {
	th := a.opts.Theme
	fg := th.Pass
	if !g.AA {
		fg = th.Fail
	}
	r.Text(x, y, g.Level(), fg, th.Bg, tcell.AttrBold)
}
