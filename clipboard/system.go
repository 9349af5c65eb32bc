package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"golang.org/x/term"
)

// Chain tries each writer in order and stops at the first success
type Chain []Writer

// WriteAll implements Writer
func (c Chain) WriteAll(text string) error {
	if len(c) == 0 {
		return fmt.Errorf("%w: no clipboard backend", ErrUnavailable)
	}
	var errs []error
	for _, w := range c {
		err := w.WriteAll(text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return fmt.Errorf("%w: %w", ErrUnavailable, errors.Join(errs...))
}

// Native writes through the OS clipboard tools (pbcopy, wl-copy, xclip, xsel, clip.exe)
type Native struct{}

// WriteAll implements Writer
func (Native) WriteAll(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("%w: no native clipboard tool found", ErrUnavailable)
	}
	return clipboard.WriteAll(text)
}

// Terminal writes an OSC 52 sequence, letting the terminal emulator set the clipboard
// Works over SSH; terminals that ignore OSC 52 fail silently on their side
type Terminal struct {
	Out  io.Writer
	Term string // $TERM, selects tmux/screen passthrough
}

// WriteAll implements Writer
func (t Terminal) WriteAll(text string) error {
	if t.Out == nil {
		return fmt.Errorf("%w: no terminal output", ErrUnavailable)
	}
	seq := osc52.New(text)
	switch {
	case strings.HasPrefix(t.Term, "tmux"):
		seq = seq.Tmux()
	case strings.HasPrefix(t.Term, "screen"):
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(t.Out)
	return err
}

// System returns the platform clipboard: native tools first, then OSC 52 to out
// OSC 52 is only tried when out is a terminal; a pipe or file would just
// receive the escape bytes with nothing to interpret them
func System(out io.Writer) Writer {
	return system(Native{}, out, os.Getenv("TERM"))
}

func system(native Writer, out io.Writer, termName string) Chain {
	chain := Chain{native}
	if IsTerminal(out) {
		chain = append(chain, Terminal{Out: out, Term: termName})
	}
	return chain
}

// IsTerminal reports whether w is a file attached to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
