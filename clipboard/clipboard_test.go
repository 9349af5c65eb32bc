package clipboard

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	mu    sync.Mutex
	texts []string
	err   error
}

func (w *recordingWriter) WriteAll(text string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.texts = append(w.texts, text)
	return w.err
}

type recordingNotifier struct {
	mu   sync.Mutex
	msgs []string
}

func (n *recordingNotifier) Notify(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
}

func TestCopy_NotifiesAfterWrite(t *testing.T) {
	w := &recordingWriter{}
	n := &recordingNotifier{}
	c := NewCopier(w, n, nil)

	require.NoError(t, c.Copy(context.Background(), "#ff8800"))

	assert.Equal(t, []string{"#ff8800"}, w.texts)
	assert.Equal(t, []string{"Copied #ff8800"}, n.msgs)
}

func TestCopy_DeniedPropagatesWithoutNotification(t *testing.T) {
	w := &recordingWriter{err: errors.New("permission denied")}
	n := &recordingNotifier{}
	c := NewCopier(w, n, nil)

	err := c.Copy(context.Background(), "#000000")

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "permission denied")
	assert.Empty(t, n.msgs)
	assert.Len(t, w.texts, 1, "no retry")
}

func TestCopy_NilNotifier(t *testing.T) {
	w := &recordingWriter{}
	c := NewCopier(w, nil, nil)

	assert.NoError(t, c.Copy(context.Background(), "x"))
}

func TestCopy_ContextAbandonsWait(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	blocking := WriterFunc(func(string) error {
		<-release
		return nil
	})
	n := &recordingNotifier{}
	c := NewCopier(blocking, n, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Copy(ctx, "#123456")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, n.msgs)
}

func TestCopy_DoneContextSkipsWrite(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// An instant writer must not race the done context
	for i := 0; i < 100; i++ {
		w := &recordingWriter{}
		n := &recordingNotifier{}
		err := NewCopier(w, n, nil).Copy(ctx, "#123456")

		require.ErrorIs(t, err, context.Canceled)
		require.Empty(t, w.texts)
		require.Empty(t, n.msgs)
	}
}

func TestChain_FirstSuccessWins(t *testing.T) {
	failing := &recordingWriter{err: errors.New("no tool")}
	ok := &recordingWriter{}
	never := &recordingWriter{}

	require.NoError(t, Chain{failing, ok, never}.WriteAll("abc"))

	assert.Equal(t, []string{"abc"}, failing.texts)
	assert.Equal(t, []string{"abc"}, ok.texts)
	assert.Empty(t, never.texts)
}

func TestChain_AllFail(t *testing.T) {
	err := Chain{
		&recordingWriter{err: errors.New("first")},
		&recordingWriter{err: errors.New("second")},
	}.WriteAll("abc")

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "first")
	assert.Contains(t, err.Error(), "second")

	assert.ErrorIs(t, Chain{}.WriteAll("abc"), ErrUnavailable)
}

func TestTerminal_WritesOSC52(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Terminal{Out: &buf, Term: "xterm-256color"}.WriteAll("#abcdef"))

	out := buf.String()
	assert.Contains(t, out, "\x1b]52;")
	assert.Contains(t, out, base64.StdEncoding.EncodeToString([]byte("#abcdef")))
}

func TestTerminal_NoOutput(t *testing.T) {
	assert.ErrorIs(t, Terminal{}.WriteAll("x"), ErrUnavailable)
}

func TestSystem_NonTerminalOutputHasNoFallback(t *testing.T) {
	var buf bytes.Buffer
	chain := system(Native{}, &buf, "xterm-256color")

	require.Len(t, chain, 1)
	assert.IsType(t, Native{}, chain[0])
}

func TestSystem_PipedOutputFailsWithoutNative(t *testing.T) {
	var pipe bytes.Buffer
	native := &recordingWriter{err: errors.New("no native tool")}
	n := &recordingNotifier{}

	c := NewCopier(system(native, &pipe, "xterm-256color"), n, nil)
	err := c.Copy(context.Background(), "#abcdef")

	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Empty(t, pipe.String(), "no escape sequence leaks into piped output")
	assert.Empty(t, n.msgs)
}

func TestSystem_RegularFileIsNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, IsTerminal(f))
	assert.Len(t, system(Native{}, f, ""), 1)
}
