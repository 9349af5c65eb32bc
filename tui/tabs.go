package tui

import "github.com/gdamore/tcell/v2"

// TabBounds stores position and size of a rendered tab
type TabBounds struct {
	X, W int
}

// TabBarOpts configures tab bar rendering
type TabBarOpts struct {
	ActiveStyle   Style
	InactiveStyle Style
	Separator     string // Between tabs, default " │ "
	Padding       int    // Horizontal padding inside each tab
}

// DefaultTabBarOpts returns sensible defaults for the theme
func DefaultTabBarOpts(th Theme) TabBarOpts {
	return TabBarOpts{
		ActiveStyle:   Style{Fg: th.HeaderBg, Bg: th.HeaderFg, Attr: tcell.AttrBold},
		InactiveStyle: Style{Fg: th.HeaderFg, Bg: th.HeaderBg},
		Separator:     " │ ",
		Padding:       1,
	}
}

// TabBar renders horizontal tab strip at (x, y)
// Returns bounds of each tab for hit testing
func (r Region) TabBar(x, y int, titles []string, active int, opts TabBarOpts) []TabBounds {
	if y < 0 || y >= r.H || len(titles) == 0 {
		return nil
	}

	if opts.Separator == "" {
		opts.Separator = " │ "
	}

	bounds := make([]TabBounds, len(titles))
	sepW := StringWidth(opts.Separator)

	for i, title := range titles {
		if x >= r.W {
			break
		}

		style := opts.InactiveStyle
		if i == active {
			style = opts.ActiveStyle
		}

		tabW := StringWidth(title) + opts.Padding*2
		if x+tabW > r.W {
			tabW = r.W - x
		}
		bounds[i] = TabBounds{X: x, W: tabW}

		for j := 0; j < tabW; j++ {
			r.Cell(x+j, y, ' ', style.Fg, style.Bg, style.Attr)
		}
		r.Sub(x, y, tabW, 1).Text(opts.Padding, 0, title, style.Fg, style.Bg, style.Attr)
		x += tabW

		if i < len(titles)-1 && x+sepW <= r.W {
			x = r.Text(x, y, opts.Separator, opts.InactiveStyle.Fg, opts.InactiveStyle.Bg, tcell.AttrDim)
		}
	}

	return bounds
}
