package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/lixenwraith/colorpick/color"
)

// swatch renders label on c with readable text, or label alone when unstyled
func swatch(styled bool, c color.RGB, label string) string {
	if !styled {
		return label
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(color.ReadableOn(c).Hex())).
		Padding(0, 1).
		Render(label)
}

// passFail renders a WCAG check result
func passFail(styled, pass bool) string {
	text, fg := "fail", "#ff5050"
	if pass {
		text, fg = "pass", "#50c850"
	}
	if !styled {
		return text
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(fg)).Bold(true).Render(text)
}

func printColor(w io.Writer, styled bool, c color.RGB) {
	fmt.Fprintf(w, "%s\n", swatch(styled, c, c.Hex()))
	fmt.Fprintf(w, "HEX  %s\n", c.Hex())
	fmt.Fprintf(w, "RGB  %s\n", c.String())
	fmt.Fprintf(w, "HSL  %s\n", c.HSL().String())
}
