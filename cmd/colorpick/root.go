package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/lixenwraith/colorpick/clipboard"
	"github.com/lixenwraith/colorpick/config"
	"github.com/lixenwraith/colorpick/logging"
	"github.com/lixenwraith/colorpick/tui"
)

// env carries the resolved settings and injectable collaborators for every command
type env struct {
	out, errOut io.Writer

	configPath string
	debug      bool
	colorMode  string

	cfg      config.Config
	log      *zap.Logger
	closeLog func()

	clock     func() time.Time
	clipboard clipboard.Writer
}

func newEnv(out, errOut io.Writer) *env {
	return &env{
		out:      out,
		errOut:   errOut,
		cfg:      config.Default(),
		log:      zap.NewNop(),
		closeLog: func() {},
		clock:    time.Now,
	}
}

// styled reports whether output is a terminal worth coloring
func (e *env) styled() bool {
	f, ok := e.out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// clipboardWriter returns the injected writer or the platform clipboard
// OSC 52 is only attempted when stdout is a terminal
func (e *env) clipboardWriter() clipboard.Writer {
	if e.clipboard != nil {
		return e.clipboard
	}
	return clipboard.System(e.out)
}

// load resolves config and logging from flags
func (e *env) load() error {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return err
	}
	if e.debug {
		cfg.Log.Debug = true
	}
	if e.colorMode != "" {
		if _, err := tui.ParseColorMode(e.colorMode); err != nil {
			return fmt.Errorf("--color: %w", err)
		}
		cfg.UI.ColorMode = e.colorMode
	}
	e.cfg = cfg

	logger, closeFn, err := logging.New(cfg.Log.Debug, cfg.Log.Dir)
	if err != nil {
		return err
	}
	e.log, e.closeLog = logger, closeFn
	e.log.Debug("config loaded", zap.String("path", e.configPath), zap.Int("palette_size", cfg.Palette.Size))
	return nil
}

func newRootCmd(e *env) *cobra.Command {
	root := &cobra.Command{
		Use:           "colorpick",
		Short:         "Color tools for designers: convert, generate palettes, check contrast",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.load()
		},
	}
	root.SetOut(e.out)
	root.SetErr(e.errOut)

	root.PersistentFlags().StringVar(&e.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/colorpick/config.toml)")
	root.PersistentFlags().BoolVar(&e.debug, "debug", false, "write debug log to the configured log dir")
	root.PersistentFlags().StringVar(&e.colorMode, "color", "", "color mode: auto, truecolor, 256")

	root.AddCommand(
		newConvertCmd(e),
		newPaletteCmd(e),
		newContrastCmd(e),
		newNavCmd(e),
		newFooterCmd(e),
		newCopyCmd(e),
		newTUICmd(e),
	)

	return root
}
