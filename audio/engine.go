// Package audio synthesizes short feedback tones with beep. It consumes
// raw event signals through the systems.CuePlayer port and holds no game
// logic.
package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/hopwire/pour-panic/events"
)

// Engine plays synthesized cues through the system speaker
type Engine struct {
	config *Config

	sampleRate beep.SampleRate
	ready      atomic.Bool
	muted      atomic.Bool
}

// NewEngine creates an engine; Start must be called before cues play
func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	e := &Engine{
		config:     cfg,
		sampleRate: beep.SampleRate(cfg.SampleRate),
	}
	e.muted.Store(!cfg.Enabled)
	return e
}

// Start initializes the speaker. Failure leaves the engine silent
// rather than failing the game.
func (e *Engine) Start() error {
	if !e.config.Enabled {
		return nil
	}
	if err := speaker.Init(e.sampleRate, e.sampleRate.N(time.Second/10)); err != nil {
		e.muted.Store(true)
		return err
	}
	e.ready.Store(true)
	return nil
}

// Stop closes the speaker
func (e *Engine) Stop() {
	if e.ready.CompareAndSwap(true, false) {
		speaker.Close()
	}
}

// SetMuted toggles cue playback without touching the speaker
func (e *Engine) SetMuted(muted bool) {
	e.muted.Store(muted)
}

// PlayFeedback maps a feedback kind to its cue and plays it
func (e *Engine) PlayFeedback(kind events.FeedbackKind) {
	e.play(cueFor(kind))
}

// PlayCountdown plays the countdown blip; the final "go" digit is higher
func (e *Engine) PlayCountdown(value int) {
	if value <= 0 {
		e.play(cue{freq: 880, duration: 120 * time.Millisecond})
		return
	}
	e.play(cue{freq: 440, duration: 80 * time.Millisecond})
}

func (e *Engine) play(c cue) {
	if !e.ready.Load() || e.muted.Load() {
		return
	}
	tone, err := generators.SineTone(e.sampleRate, c.freq)
	if err != nil {
		return
	}
	streamer := beep.Take(e.sampleRate.N(c.duration), tone)
	speaker.Play(&effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   volumeGain(e.config.MasterVolume),
		Silent:   e.config.MasterVolume <= 0,
	})
}

// volumeGain maps a 0..1 volume to the exponential gain beep expects;
// 1.0 is unity, each -1 halves the power
func volumeGain(volume float64) float64 {
	if volume >= 1 {
		return 0
	}
	if volume <= 0 {
		return -10
	}
	return (volume - 1) * 5
}
