// Package audio plays the short confirmation chime for copy notifications.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"
)

const (
	sampleRate = beep.SampleRate(48000)
	bufferSize = 100 * time.Millisecond
)

// Note is one tone of the chime
type Note struct {
	Freq     float64
	Duration time.Duration
}

// DefaultNotes is a rising two-tone ding
var DefaultNotes = []Note{
	{Freq: 880, Duration: 70 * time.Millisecond},
	{Freq: 1320, Duration: 110 * time.Millisecond},
}

// Chime plays a short tone sequence through the system speaker
// All methods are no-ops while disabled or uninitialized. Safe for concurrent use
type Chime struct {
	mu          sync.Mutex
	enabled     bool
	initialized bool
	notes       []Note
	volume      float64 // effects.Volume exponent, base 2
	mixer       *beep.Mixer
	log         *zap.Logger
}

// NewChime creates a chime; pass enabled=false to keep it silent
func NewChime(enabled bool, logger *zap.Logger) *Chime {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Chime{
		enabled: enabled,
		notes:   DefaultNotes,
		volume:  -2,
		mixer:   &beep.Mixer{},
		log:     logger.Named("audio"),
	}
}

// Initialize sets up the speaker once; failure leaves the chime silent
func (c *Chime) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled || c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(bufferSize)); err != nil {
		c.log.Warn("speaker init failed, continuing without sound", zap.Error(err))
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Play queues the chime on the mixer
func (c *Chime) Play() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	s, err := Sequence(c.notes, sampleRate)
	if err != nil {
		c.log.Debug("chime build failed", zap.Error(err))
		return
	}
	vol := &effects.Volume{Streamer: s, Base: 2, Volume: c.volume}

	speaker.Lock()
	c.mixer.Add(vol)
	speaker.Unlock()
}

// Close stops all queued sound
func (c *Chime) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	c.initialized = false
}

// Sequence renders notes back to back, each shaped by a short attack/release envelope
func Sequence(notes []Note, rate beep.SampleRate) (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(rate, n.Freq)
		if err != nil {
			return nil, err
		}
		tone := beep.Take(rate.N(n.Duration), sine)
		parts = append(parts, newEnvelope(tone, n.Duration, 5*time.Millisecond, n.Duration/2, rate))
	}
	return beep.Seq(parts...), nil
}

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	releaseStart int
	release      int
	total        int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	if att+rel > total {
		rel = max(total-att, 0)
	}

	return &envelope{
		streamer:     s,
		attack:       att,
		releaseStart: total - rel,
		release:      rel,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, false
		}

		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = float64(e.total-e.position) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error {
	return e.streamer.Err()
}
