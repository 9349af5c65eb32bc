package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/colorpick/audio"
	"github.com/lixenwraith/colorpick/clipboard"
	"github.com/lixenwraith/colorpick/tui"
)

func newTUICmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive picker, palette and contrast checker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), e)
		},
	}
}

func runTUI(parent context.Context, e *env) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Restore the terminal before reporting a crash so the trace stays readable
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCOLORPICK CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	toast := tui.NewToast(e.cfg.Toast.Duration.Duration, nil)

	chime := audio.NewChime(e.cfg.UI.Sound, e.log)
	// Initialize logs its own failure; the toast stays silent then
	if chime.Initialize() == nil {
		toast.SetChime(chime)
	}
	defer chime.Close()

	// OSC 52 goes through tcell so it never interleaves with a frame
	var w clipboard.Writer = clipboard.Chain{clipboard.Native{}, tui.ScreenClipboard(screen)}
	if e.clipboard != nil {
		w = e.clipboard
	}
	copier := clipboard.NewCopier(w, toast, e.log)

	app := tui.NewApp(screen, toast, copier, tui.Options{
		Mode:        e.cfg.ColorMode(),
		PaletteSize: e.cfg.Palette.Size,
		Site:        e.cfg.SiteBuilder(),
		Clock:       e.clock,
	}, e.log)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	e.log.Info("tui started", zap.String("color_mode", e.cfg.UI.ColorMode), zap.Bool("sound", e.cfg.UI.Sound))
	return app.Run(ctx)
}
