package tui

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/colorpick/clipboard"
	"github.com/lixenwraith/colorpick/color"
	"github.com/lixenwraith/colorpick/site"
)

const (
	frameInterval = 50 * time.Millisecond
	copyTimeout   = 3 * time.Second
)

// ErrPollerCrashed is returned by Run when the event polling goroutine panics
var ErrPollerCrashed = errors.New("event poller crashed")

// ScreenClipboard posts text as OSC 52 through the screen's own terminal
// Output is serialized with drawing under the screen lock
func ScreenClipboard(s tcell.Screen) clipboard.WriterFunc {
	return func(text string) error {
		s.SetClipboard([]byte(text))
		return nil
	}
}

// Copier performs a clipboard write, satisfied by *clipboard.Copier
type Copier interface {
	Copy(ctx context.Context, text string) error
}

// Options configures an App
type Options struct {
	Mode        ColorMode
	PaletteSize int
	Site        site.Builder
	Theme       Theme
	Clock       func() time.Time
	Harmonizer  *color.Harmonizer
}

// App is the interactive front-end mirroring the site pages
type App struct {
	screen tcell.Screen
	opts   Options
	toast  *Toast
	copier Copier
	log    *zap.Logger

	ctx context.Context
	wg  sync.WaitGroup

	page site.Page

	// Picker
	hue, sat, light int

	// Palette
	palette  color.Palette
	selected int

	// Contrast, indices into contrastCandidates()
	fgIdx, bgIdx int
}

// NewApp wires the app; screen must already be initialized by the caller
// Zero-valued options fall back to defaults
func NewApp(screen tcell.Screen, toast *Toast, copier Copier, opts Options, logger *zap.Logger) *App {
	if opts.PaletteSize <= 0 {
		opts.PaletteSize = color.DefaultPaletteSize
	}
	if opts.Site == (site.Builder{}) {
		opts.Site = site.DefaultBuilder()
	}
	if opts.Theme == (Theme{}) {
		opts.Theme = DefaultTheme
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Harmonizer == nil {
		opts.Harmonizer = color.NewHarmonizer(nil)
	}
	if opts.Mode == ColorModeAuto {
		opts.Mode = ColorModeTrueColor
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &App{
		screen: screen,
		opts:   opts,
		toast:  toast,
		copier: copier,
		log:    logger.Named("tui"),
		ctx:    context.Background(),
		page:   site.Home,
	}
	a.regenerate()
	first := a.palette[0]
	a.hue, a.sat, a.light = first.H, first.S, first.L
	return a
}

// Page returns the active page
func (a *App) Page() site.Page {
	return a.page
}

// Palette returns the current palette
func (a *App) Palette() color.Palette {
	return a.palette
}

// Selected returns the selected palette index
func (a *App) Selected() int {
	return a.selected
}

// PickerColor returns the color under edit on the Picker page
func (a *App) PickerColor() color.RGB {
	return color.HSLToRGB(float64(a.hue), float64(a.sat), float64(a.light))
}

// ContrastPair returns the foreground and background on the Contrast page
func (a *App) ContrastPair() (fg, bg color.RGB) {
	c := a.contrastCandidates()
	return c[a.fgIdx%len(c)], c[a.bgIdx%len(c)]
}

// Run owns the event loop until quit or ctx is done
// The caller initializes the screen before and finalizes it after
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	a.ctx = ctx
	defer func() {
		cancel()
		a.Wait()
	}()

	events := make(chan tcell.Event, 16)
	crashed := make(chan error, 1)
	go func() {
		// Surface a panic to Run so the caller can restore the terminal
		defer func() {
			if r := recover(); r != nil {
				a.log.Error("event poller crashed", zap.Any("panic", r))
				crashed <- fmt.Errorf("%w: %v\nStack Trace:\n%s", ErrPollerCrashed, r, debug.Stack())
			}
		}()

		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-crashed:
			return err
		case ev := <-events:
			if !a.HandleEvent(ev) {
				a.log.Debug("quit requested")
				return nil
			}
			a.Draw()
		case <-ticker.C:
			// Redraw expires the toast
			a.Draw()
		}
	}
}

// Wait blocks until pending clipboard copies finish
func (a *App) Wait() {
	a.wg.Wait()
}

// HandleEvent applies one event, returns false when the app should quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		a.setPage((a.page + 1) % site.Page(len(site.Pages())))
		return true
	case tcell.KeyBacktab:
		n := site.Page(len(site.Pages()))
		a.setPage((a.page + n - 1) % n)
		return true
	case tcell.KeyLeft:
		a.step(-1, ev.Modifiers()&tcell.ModShift != 0)
		return true
	case tcell.KeyRight:
		a.step(1, ev.Modifiers()&tcell.ModShift != 0)
		return true
	case tcell.KeyUp:
		a.adjustLight(1)
		return true
	case tcell.KeyDown:
		a.adjustLight(-1)
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	r := ev.Rune()
	switch r {
	case 'q':
		return false
	case '1', '2', '3', '4':
		a.setPage(site.Page(r - '1'))
		return true
	}

	switch a.page {
	case site.Home:
		if r == ' ' || r == 'r' {
			a.regenerate()
		}
	case site.Picker:
		a.pickerKey(r)
	case site.Palette:
		a.paletteKey(r)
	case site.Contrast:
		a.contrastKey(r)
	}
	return true
}

func (a *App) setPage(p site.Page) {
	if p.Valid() {
		a.page = p
	}
}

// step handles left/right: hue on Picker, selection on Palette
func (a *App) step(dir int, big bool) {
	switch a.page {
	case site.Picker:
		if big {
			dir *= 10
		}
		a.adjustHue(dir)
	case site.Palette:
		a.selected = (a.selected + dir + len(a.palette)) % len(a.palette)
	}
}

func (a *App) pickerKey(r rune) {
	switch r {
	case 'h':
		a.adjustHue(-1)
	case 'l':
		a.adjustHue(1)
	case 'H':
		a.adjustHue(-10)
	case 'L':
		a.adjustHue(10)
	case 'j':
		a.adjustLight(-1)
	case 'k':
		a.adjustLight(1)
	case '[':
		a.sat = clampPercent(a.sat - 1)
	case ']':
		a.sat = clampPercent(a.sat + 1)
	case 'r':
		sw := a.opts.Harmonizer.Harmonize(1)[0]
		a.hue, a.sat, a.light = sw.H, sw.S, sw.L
	case 'c':
		a.copy(a.PickerColor().Hex())
	}
}

func (a *App) paletteKey(r rune) {
	switch r {
	case ' ', 'r':
		a.regenerate()
	case 'h':
		a.step(-1, false)
	case 'l':
		a.step(1, false)
	case 'c':
		a.copy(a.palette[a.selected].Hex)
	case 'C':
		a.copy(a.palette.String())
	case 'p':
		sw := a.palette[a.selected]
		a.hue, a.sat, a.light = sw.H, sw.S, sw.L
		a.page = site.Picker
	}
}

func (a *App) contrastKey(r rune) {
	n := len(a.contrastCandidates())
	switch r {
	case 'f':
		a.fgIdx = (a.fgIdx + 1) % n
	case 'b':
		a.bgIdx = (a.bgIdx + 1) % n
	case 's':
		a.fgIdx, a.bgIdx = a.bgIdx, a.fgIdx
	case 'c':
		fg, bg := a.ContrastPair()
		a.copy(fg.Hex() + " on " + bg.Hex())
	}
}

func (a *App) adjustHue(d int) {
	a.hue = ((a.hue+d)%360 + 360) % 360
}

func (a *App) adjustLight(d int) {
	if a.page == site.Picker {
		a.light = clampPercent(a.light + d)
	}
}

func clampPercent(v int) int {
	return min(max(v, 0), 100)
}

// regenerate replaces the palette; contrast defaults to white on the first swatch
func (a *App) regenerate() {
	a.palette = a.opts.Harmonizer.Harmonize(a.opts.PaletteSize)
	a.selected = 0
	a.fgIdx = len(a.palette) + 1
	a.bgIdx = 0
}

// contrastCandidates is the palette followed by black and white
func (a *App) contrastCandidates() []color.RGB {
	out := make([]color.RGB, 0, len(a.palette)+2)
	for _, sw := range a.palette {
		out = append(out, sw.RGB)
	}
	return append(out, color.Black, color.White)
}

// copy runs the clipboard write off the UI goroutine; failures surface as an error toast
func (a *App) copy(text string) {
	ctx := a.ctx
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		ctx, cancel := context.WithTimeout(ctx, copyTimeout)
		defer cancel()

		if err := a.copier.Copy(ctx, text); err != nil {
			a.log.Warn("copy failed", zap.String("text", text), zap.Error(err))
			a.toast.Show("Copy failed: "+err.Error(), ToastError)
		}
	}()
}
