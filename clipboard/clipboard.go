// Package clipboard copies text to the system clipboard and announces the
// result through an injected notifier.
package clipboard

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrUnavailable is returned when the platform refuses or lacks a clipboard
var ErrUnavailable = errors.New("clipboard unavailable")

// Writer is the platform clipboard capability
type Writer interface {
	WriteAll(text string) error
}

// WriterFunc adapts a function to Writer
type WriterFunc func(text string) error

// WriteAll implements Writer
func (f WriterFunc) WriteAll(text string) error {
	return f(text)
}

// Notifier shows a transient message to the user
type Notifier interface {
	Notify(msg string)
}

// Copier writes to a clipboard and notifies on success
type Copier struct {
	w   Writer
	n   Notifier
	log *zap.Logger
}

// NewCopier creates a copier; n may be nil for silent copies, logger may be nil
func NewCopier(w Writer, n Notifier, logger *zap.Logger) *Copier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Copier{w: w, n: n, log: logger.Named("clipboard")}
}

// Copy writes text once; no retry on failure
// The notification is shown only after a successful write. A ctx that is already
// done skips the write. If ctx ends first the
// write is abandoned (the platform call itself runs to completion) and ctx.Err is returned
func (c *Copier) Copy(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		c.log.Debug("clipboard write skipped", zap.Error(err))
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- c.w.WriteAll(text)
	}()

	select {
	case <-ctx.Done():
		c.log.Debug("clipboard write abandoned", zap.Error(ctx.Err()))
		return ctx.Err()
	case err := <-done:
		if err != nil {
			c.log.Warn("clipboard write failed", zap.Error(err))
			if errors.Is(err, ErrUnavailable) {
				return err
			}
			return fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
	}

	c.log.Debug("copied", zap.Int("bytes", len(text)))
	if c.n != nil {
		c.n.Notify("Copied " + text)
	}
	return nil
}
