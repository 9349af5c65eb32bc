package tui

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/colorpick/clipboard"
	"github.com/lixenwraith/colorpick/color"
	"github.com/lixenwraith/colorpick/site"
)

type memClipboard struct {
	mu    sync.Mutex
	texts []string
	err   error
}

func (m *memClipboard) WriteAll(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.texts = append(m.texts, text)
	return nil
}

func (m *memClipboard) last() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.texts) == 0 {
		return ""
	}
	return m.texts[len(m.texts)-1]
}

type testApp struct {
	*App
	screen tcell.SimulationScreen
	toast  *Toast
	clip   *memClipboard
	clock  *fakeClock
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	s := newSimScreen(t, 100, 30)
	clk := newFakeClock()
	toast := NewToast(DefaultToastDuration, clk.Now)
	clip := &memClipboard{}
	copier := clipboard.NewCopier(clip, toast, nil)

	app := NewApp(s, toast, copier, Options{
		Mode:       ColorModeTrueColor,
		Clock:      clk.Now,
		Harmonizer: color.NewHarmonizer(rand.New(rand.NewSource(3))),
	}, nil)
	return &testApp{App: app, screen: s, toast: toast, clip: clip, clock: clk}
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func (ta *testApp) press(t *testing.T, evs ...tcell.Event) {
	t.Helper()
	for _, ev := range evs {
		require.True(t, ta.HandleEvent(ev), "unexpected quit")
	}
}

func TestApp_Defaults(t *testing.T) {
	ta := newTestApp(t)

	assert.Equal(t, site.Home, ta.Page())
	assert.Len(t, ta.Palette(), color.DefaultPaletteSize)

	first := ta.Palette()[0]
	assert.Equal(t, color.HSLToRGB(float64(first.H), float64(first.S), float64(first.L)), ta.PickerColor())

	fg, bg := ta.ContrastPair()
	assert.Equal(t, color.White, fg)
	assert.Equal(t, first.RGB, bg)
}

func TestApp_PageNavigation(t *testing.T) {
	ta := newTestApp(t)

	ta.press(t, runeKey('3'))
	assert.Equal(t, site.Palette, ta.Page())

	ta.press(t, key(tcell.KeyTab))
	assert.Equal(t, site.Contrast, ta.Page())

	ta.press(t, key(tcell.KeyTab))
	assert.Equal(t, site.Home, ta.Page(), "tab wraps")

	ta.press(t, key(tcell.KeyBacktab))
	assert.Equal(t, site.Contrast, ta.Page(), "backtab wraps")

	ta.press(t, runeKey('2'))
	assert.Equal(t, site.Picker, ta.Page())
}

func TestApp_Quit(t *testing.T) {
	ta := newTestApp(t)

	assert.False(t, ta.HandleEvent(runeKey('q')))
	assert.False(t, ta.HandleEvent(key(tcell.KeyEscape)))
	assert.False(t, ta.HandleEvent(key(tcell.KeyCtrlC)))
}

func TestApp_PickerAdjusts(t *testing.T) {
	ta := newTestApp(t)
	ta.press(t, runeKey('2'))

	ta.hue, ta.sat, ta.light = 350, 50, 50
	ta.press(t, runeKey('L'), runeKey('l'))
	assert.Equal(t, 1, ta.hue, "hue wraps past 360")

	ta.press(t, runeKey('h'), runeKey('h'))
	assert.Equal(t, 359, ta.hue)

	ta.press(t, runeKey('k'), key(tcell.KeyUp))
	assert.Equal(t, 52, ta.light)

	ta.light = 100
	ta.press(t, runeKey('k'))
	assert.Equal(t, 100, ta.light, "lightness clamps")

	ta.press(t, runeKey(']'), runeKey(']'), runeKey('['))
	assert.Equal(t, 51, ta.sat)

	ta.press(t, tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModShift))
	assert.Equal(t, 9, ta.hue)
}

func TestApp_PickerCopy(t *testing.T) {
	ta := newTestApp(t)
	ta.press(t, runeKey('2'))
	ta.hue, ta.sat, ta.light = 0, 100, 50

	ta.press(t, runeKey('c'))
	ta.Wait()

	assert.Equal(t, "#ff0000", ta.clip.last())
	msg, _, ok := ta.toast.Current()
	assert.True(t, ok)
	assert.Equal(t, "Copied #ff0000", msg)
}

func TestApp_PaletteSelectionAndCopy(t *testing.T) {
	ta := newTestApp(t)
	ta.press(t, runeKey('3'))
	p := ta.Palette()

	ta.press(t, key(tcell.KeyLeft))
	assert.Equal(t, len(p)-1, ta.Selected(), "selection wraps left")

	ta.press(t, key(tcell.KeyRight), runeKey('l'))
	assert.Equal(t, 1, ta.Selected())

	ta.press(t, runeKey('c'))
	ta.Wait()
	assert.Equal(t, p[1].Hex, ta.clip.last())

	ta.press(t, runeKey('C'))
	ta.Wait()
	assert.Equal(t, p.String(), ta.clip.last())

	ta.press(t, runeKey('p'))
	assert.Equal(t, site.Picker, ta.Page())
	assert.Equal(t, [3]int{p[1].H, p[1].S, p[1].L}, [3]int{ta.hue, ta.sat, ta.light})
}

func TestApp_PaletteRegenerate(t *testing.T) {
	ta := newTestApp(t)
	ta.press(t, runeKey('3'), key(tcell.KeyRight))
	before := ta.Palette()

	ta.press(t, runeKey(' '))

	assert.NotEqual(t, before, ta.Palette())
	assert.Equal(t, 0, ta.Selected())
}

func TestApp_ContrastCycling(t *testing.T) {
	ta := newTestApp(t)
	ta.press(t, runeKey('4'))
	p := ta.Palette()

	ta.press(t, runeKey('f'))
	fg, _ := ta.ContrastPair()
	assert.Equal(t, p[0].RGB, fg, "fg wraps from white to first swatch")

	ta.press(t, runeKey('b'))
	_, bg := ta.ContrastPair()
	assert.Equal(t, p[1].RGB, bg)

	ta.press(t, runeKey('s'))
	fg, bg = ta.ContrastPair()
	assert.Equal(t, p[1].RGB, fg)
	assert.Equal(t, p[0].RGB, bg)

	ta.press(t, runeKey('c'))
	ta.Wait()
	assert.Equal(t, p[1].Hex+" on "+p[0].Hex, ta.clip.last())
}

func TestApp_CopyFailureShowsError(t *testing.T) {
	ta := newTestApp(t)
	ta.clip.err = errors.New("denied")
	ta.press(t, runeKey('3'), runeKey('c'))
	ta.Wait()

	msg, sev, ok := ta.toast.Current()
	require.True(t, ok)
	assert.Equal(t, ToastError, sev)
	assert.True(t, strings.HasPrefix(msg, "Copy failed"))
	assert.Contains(t, msg, "denied")
}

func TestApp_DrawChrome(t *testing.T) {
	ta := newTestApp(t)

	for _, p := range site.Pages() {
		ta.press(t, runeKey(rune('1'+int(p))))
		ta.Draw()

		top := rowText(ta.screen, 0)
		assert.Contains(t, top, "ColorPick")
		for _, q := range site.Pages() {
			assert.Contains(t, top, q.Title())
		}

		bottom := rowText(ta.screen, 29)
		assert.Contains(t, bottom, "© 2026 ColorPick — Free color tools for designers")
	}
}

func TestApp_DrawPages(t *testing.T) {
	ta := newTestApp(t)

	ta.press(t, runeKey('2'))
	ta.hue, ta.sat, ta.light = 0, 100, 50
	ta.Draw()
	text := screenText(ta.screen)
	assert.Contains(t, text, "#ff0000")
	assert.Contains(t, text, "rgb(255, 0, 0)")
	assert.Contains(t, text, "hsl(0, 100%, 50%)")

	ta.press(t, runeKey('3'))
	ta.Draw()
	text = screenText(ta.screen)
	for _, sw := range ta.Palette() {
		assert.Contains(t, text, sw.Hex)
	}
	assert.Contains(t, text, "min ΔE00")

	ta.press(t, runeKey('4'))
	ta.fgIdx, ta.bgIdx = len(ta.Palette())+1, len(ta.Palette())
	ta.Draw()
	text = screenText(ta.screen)
	assert.Contains(t, text, "21.00:1")
	assert.Contains(t, text, "AAA normal")
}

func TestApp_DrawToastThenExpire(t *testing.T) {
	ta := newTestApp(t)
	ta.toast.Notify("Copied #abcdef")
	ta.Draw()
	assert.Contains(t, rowText(ta.screen, 28), "Copied #abcdef")

	ta.clock.Advance(DefaultToastDuration)
	ta.Draw()
	assert.NotContains(t, rowText(ta.screen, 28), "Copied")
}

func TestApp_RunQuitsOnKey(t *testing.T) {
	ta := newTestApp(t)

	done := make(chan error, 1)
	go func() { done <- ta.Run(context.Background()) }()

	ta.screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	ta := newTestApp(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ta.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

// crashingScreen panics on the first poll
type crashingScreen struct {
	tcell.SimulationScreen
}

func (crashingScreen) PollEvent() tcell.Event {
	panic("terminal read failed")
}

func TestApp_RunReportsPollerPanic(t *testing.T) {
	s := newSimScreen(t, 100, 30)
	toast := NewToast(DefaultToastDuration, nil)
	app := NewApp(crashingScreen{s}, toast, clipboard.NewCopier(&memClipboard{}, toast, nil), Options{
		Mode:       ColorModeTrueColor,
		Harmonizer: color.NewHarmonizer(rand.New(rand.NewSource(1))),
	}, nil)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case err := <-done:
		require.ErrorIs(t, err, ErrPollerCrashed)
		assert.Contains(t, err.Error(), "terminal read failed")
		assert.Contains(t, err.Error(), "Stack Trace:")
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after poller panic")
	}
}

func TestScreenClipboard_PostsToScreen(t *testing.T) {
	s := newSimScreen(t, 20, 5)
	require.NoError(t, ScreenClipboard(s).WriteAll("#abcdef"))

	s.GetClipboard()
	// Skip the resize posted by Init
	for i := 0; i < 5; i++ {
		if clip, ok := s.PollEvent().(*tcell.EventClipboard); ok {
			assert.Equal(t, "#abcdef", string(clip.Data()))
			return
		}
	}
	t.Fatal("no clipboard event")
}
