package main

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/colorpick/clipboard"
	"github.com/lixenwraith/colorpick/color"
	"github.com/lixenwraith/colorpick/config"
	"github.com/lixenwraith/colorpick/site"
)

const copyTimeout = 5 * time.Second

func newConvertCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "convert <color>",
		Short:   "Show a color as HEX, RGB and HSL",
		Example: "  colorpick convert '#f80'\n  colorpick convert 'hsl(210, 60%, 50%)'",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := color.Parse(args[0])
			if err != nil {
				return err
			}
			printColor(cmd.OutOrStdout(), e.styled(), c)
			return nil
		},
	}
}

func newPaletteCmd(e *env) *cobra.Command {
	var (
		count  int
		seed   int64
		doCopy bool
	)

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Generate a golden-angle palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("count") {
				count = e.cfg.Palette.Size
			}
			if count < 1 || count > config.MaxPaletteSize {
				return fmt.Errorf("--count %d outside 1..%d", count, config.MaxPaletteSize)
			}

			var rng *rand.Rand
			if seed != 0 {
				rng = rand.New(rand.NewSource(seed))
			}
			p := color.NewHarmonizer(rng).Harmonize(count)
			e.log.Debug("palette generated", zap.Int("count", count), zap.Int64("seed", seed), zap.Strings("hexes", p.Hexes()))

			out := cmd.OutOrStdout()
			styled := e.styled()
			for _, sw := range p {
				fmt.Fprintf(out, "%s  %-18s hsl(%d, %d%%, %d%%)\n",
					swatch(styled, sw.RGB, sw.Hex), sw.RGB.String(), sw.H, sw.S, sw.L)
			}
			fmt.Fprintf(out, "min ΔE00 %.1f\n", p.MinDistance())

			if doCopy {
				return copyText(cmd.Context(), e, p.String())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", color.DefaultPaletteSize, "number of swatches (default from config)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for a reproducible palette (0 = random)")
	cmd.Flags().BoolVar(&doCopy, "copy", false, "copy all hex codes to the clipboard")
	return cmd
}

func newContrastCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:     "contrast <foreground> <background>",
		Short:   "Compute the WCAG contrast ratio of two colors",
		Example: "  colorpick contrast '#777' white\n  colorpick contrast '#777' '#fff'",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := parseNamed(args[0])
			if err != nil {
				return fmt.Errorf("foreground: %w", err)
			}
			bg, err := parseNamed(args[1])
			if err != nil {
				return fmt.Errorf("background: %w", err)
			}

			out := cmd.OutOrStdout()
			styled := e.styled()
			ratio := color.Contrast(fg, bg)
			g := color.Grade(ratio)

			fmt.Fprintf(out, "%s on %s\n", swatch(styled, fg, fg.Hex()), swatch(styled, bg, bg.Hex()))
			fmt.Fprintf(out, "Ratio       %.2f:1 (%s)\n", ratio, g.Level())
			fmt.Fprintf(out, "AA normal   %s\n", passFail(styled, g.AA))
			fmt.Fprintf(out, "AA large    %s\n", passFail(styled, g.AALarge))
			fmt.Fprintf(out, "AAA normal  %s\n", passFail(styled, g.AAA))
			fmt.Fprintf(out, "AAA large   %s\n", passFail(styled, g.AAALarge))
			return nil
		},
	}
}

// parseNamed accepts black/white keywords in addition to color.Parse notations
func parseNamed(s string) (color.RGB, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "black":
		return color.Black, nil
	case "white":
		return color.White, nil
	}
	return color.Parse(s)
}

func newNavCmd(e *env) *cobra.Command {
	var active string

	cmd := &cobra.Command{
		Use:   "nav",
		Short: "Print the site navigation HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page := site.NoPage
			if active != "" {
				p, ok := site.PageFromHref(active)
				if !ok {
					return fmt.Errorf("unknown page %q", active)
				}
				page = p
			}
			fmt.Fprintln(cmd.OutOrStdout(), e.cfg.SiteBuilder().Nav(page))
			return nil
		},
	}

	cmd.Flags().StringVar(&active, "active", "", "active page: index, picker, palette, contrast")
	return cmd
}

func newFooterCmd(e *env) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "footer",
		Short: "Print the site footer HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b := e.cfg.SiteBuilder()
			if year > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), b.Footer(year))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), b.FooterAt(e.clock))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "copyright year (default current year)")
	return cmd
}

func newCopyCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "copy <text>",
		Short: "Copy text to the system clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return copyText(cmd.Context(), e, args[0])
		},
	}
}

// lineNotifier prints notifications as lines
type lineNotifier struct {
	e *env
}

func (n lineNotifier) Notify(msg string) {
	fmt.Fprintln(n.e.errOut, msg)
}

func copyText(ctx context.Context, e *env, text string) error {
	ctx, cancel := context.WithTimeout(ctx, copyTimeout)
	defer cancel()

	copier := clipboard.NewCopier(e.clipboardWriter(), lineNotifier{e}, e.log)
	return copier.Copy(ctx, text)
}
