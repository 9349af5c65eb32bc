package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/colorpick/color"
)

// Style bundles foreground, background, and attributes for text rendering
type Style struct {
	Fg   color.RGB
	Bg   color.RGB
	Attr tcell.AttrMask
}

// Theme defines semantic colors for the app chrome
type Theme struct {
	Bg       color.RGB
	Fg       color.RGB
	Dim      color.RGB
	Accent   color.RGB
	HeaderBg color.RGB
	HeaderFg color.RGB
	StatusBg color.RGB
	StatusFg color.RGB
	Border   color.RGB
	Pass     color.RGB
	Fail     color.RGB
}

// DefaultTheme provides reasonable defaults
var DefaultTheme = Theme{
	Bg:       color.RGB{R: 20, G: 20, B: 30},
	Fg:       color.RGB{R: 200, G: 200, B: 200},
	Dim:      color.RGB{R: 120, G: 120, B: 130},
	Accent:   color.RGB{R: 100, G: 180, B: 200},
	HeaderBg: color.RGB{R: 40, G: 60, B: 90},
	HeaderFg: color.RGB{R: 255, G: 255, B: 255},
	StatusBg: color.RGB{R: 30, G: 30, B: 45},
	StatusFg: color.RGB{R: 140, G: 140, B: 140},
	Border:   color.RGB{R: 60, G: 80, B: 100},
	Pass:     color.RGB{R: 80, G: 200, B: 80},
	Fail:     color.RGB{R: 255, G: 80, B: 80},
}
