// Package audio plays the runner's sound cues. Cues are synthesized with
// beep generators, so there are no asset files to ship.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/runner"
)

// speakerBuffer is the latency of the speaker.
const speakerBuffer = 50 * time.Millisecond

// Cues plays runner cues through the system speaker. The zero value and a
// Cues that failed to initialize are silent.
type Cues struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      map[runner.Cue]int
}

// New creates a silent cue player. Call Init to open the speaker.
func New(cfg config.AudioConfig) *Cues {
	return &Cues{
		cfg:    cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		played: make(map[runner.Cue]int),
	}
}

// Init opens the speaker. Disabled audio is not an error.
func (c *Cues) Init() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized || !c.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(c.rate, c.rate.N(speakerBuffer)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// SetMuted silences or unsilences future cues.
func (c *Cues) SetMuted(m bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = m
}

// Muted reports whether cues are silenced.
func (c *Cues) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// Play starts a cue. It never blocks on the audio device.
func (c *Cues) Play(cue runner.Cue) {
	if c == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized || c.muted {
		return
	}
	s := c.streamer(cue)
	if s == nil {
		return
	}
	c.played[cue]++

	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Played returns how many times a cue reached the mixer.
func (c *Cues) Played(cue runner.Cue) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.played[cue]
}

// streamer builds a fresh stream for a cue.
func (c *Cues) streamer(cue runner.Cue) beep.Streamer {
	switch cue {
	case runner.CueJump:
		return JumpSound(c.rate, c.cfg.Volume*c.cfg.JumpVolume)
	case runner.CueHit:
		return HitSound(c.rate, c.cfg.Volume*c.cfg.HitVolume)
	default:
		return nil
	}
}

// Close stops every playing cue.
func (c *Cues) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}
