package tui

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/colorpick/color"
)

// DefaultToastDuration is how long a notification stays visible
const DefaultToastDuration = 2 * time.Second

// ToastSeverity defines message type for styling
type ToastSeverity uint8

const (
	ToastInfo    ToastSeverity = iota // Default, neutral
	ToastSuccess                      // Green, positive
	ToastError                        // Red, failure
)

// ToastIcons for severity levels
var ToastIcons = map[ToastSeverity]rune{
	ToastInfo:    'ℹ',
	ToastSuccess: '✓',
	ToastError:   '✗',
}

// ToastColors default colors per severity
var ToastColors = map[ToastSeverity]struct{ Fg, Bg, Icon color.RGB }{
	ToastInfo: {
		Fg:   color.RGB{R: 200, G: 200, B: 200},
		Bg:   color.RGB{R: 40, G: 40, B: 50},
		Icon: color.RGB{R: 100, G: 150, B: 255},
	},
	ToastSuccess: {
		Fg:   color.RGB{R: 220, G: 255, B: 220},
		Bg:   color.RGB{R: 30, G: 60, B: 30},
		Icon: color.RGB{R: 80, G: 220, B: 80},
	},
	ToastError: {
		Fg:   color.RGB{R: 255, G: 220, B: 220},
		Bg:   color.RGB{R: 60, G: 25, B: 25},
		Icon: color.RGB{R: 255, G: 80, B: 80},
	},
}

// Chime is an optional audible cue played when a toast appears
type Chime interface {
	Play()
}

// Toast is the single notification element of an app
// Create one at startup and share it; every Show reuses the same element.
// Safe for concurrent use
type Toast struct {
	mu       sync.Mutex
	duration time.Duration
	clock    func() time.Time
	chime    Chime

	msg      string
	severity ToastSeverity
	until    time.Time
	visible  bool
}

// NewToast creates the notification element
// Non-positive duration uses DefaultToastDuration, nil clock uses time.Now
func NewToast(duration time.Duration, clock func() time.Time) *Toast {
	if duration <= 0 {
		duration = DefaultToastDuration
	}
	if clock == nil {
		clock = time.Now
	}
	return &Toast{duration: duration, clock: clock}
}

// SetChime attaches a sound played on each Show, nil disables
func (t *Toast) SetChime(c Chime) {
	t.mu.Lock()
	t.chime = c
	t.mu.Unlock()
}

// Notify shows msg as a success toast, satisfying clipboard.Notifier
func (t *Toast) Notify(msg string) {
	t.Show(msg, ToastSuccess)
}

// Show replaces the current message and restarts the display window
func (t *Toast) Show(msg string, severity ToastSeverity) {
	t.mu.Lock()
	t.msg = msg
	t.severity = severity
	t.until = t.clock().Add(t.duration)
	t.visible = true
	chime := t.chime
	t.mu.Unlock()

	if chime != nil {
		chime.Play()
	}
}

// Current returns the visible message, ok is false once the window has elapsed
func (t *Toast) Current() (msg string, severity ToastSeverity, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.visible && !t.clock().Before(t.until) {
		t.visible = false
	}
	if !t.visible {
		return "", ToastInfo, false
	}
	return t.msg, t.severity, true
}

// Dismiss hides the toast immediately
func (t *Toast) Dismiss() {
	t.mu.Lock()
	t.visible = false
	t.mu.Unlock()
}

// Draw renders the toast as a full-width bar on the last row of r
// Returns the occupied region, zero when nothing is visible
func (t *Toast) Draw(r Region) Region {
	msg, severity, ok := t.Current()
	if !ok || r.W < 5 || r.H < 1 {
		return Region{}
	}

	colors := ToastColors[severity]
	bar := r.Sub(0, r.H-1, r.W, 1)
	bar.Fill(colors.Bg)

	x := 1
	bar.Cell(x, 0, ToastIcons[severity], colors.Icon, colors.Bg, tcell.AttrBold)
	x += 2

	avail := bar.W - x - 1
	if avail < 1 {
		return bar
	}
	bar.Text(x, 0, Truncate(msg, avail), colors.Fg, colors.Bg, tcell.AttrNone)
	return bar
}
