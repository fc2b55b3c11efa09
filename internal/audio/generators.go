package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// sweep is an oscillator whose frequency glides linearly from one value to
// another over its duration.
type sweep struct {
	from, to float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewSweep creates an oscillator gliding from one frequency to another.
// A constant tone is a sweep with from == to.
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{
		from:     from,
		to:       to,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// decay fades a stream out exponentially after a short linear attack.
type decay struct {
	streamer beep.Streamer
	attack   int
	rate     float64 // envelope falloff per second
	sr       beep.SampleRate
	position int
}

// NewDecay wraps s with a percussive envelope.
func NewDecay(s beep.Streamer, attack time.Duration, falloff float64, rate beep.SampleRate) beep.Streamer {
	return &decay{streamer: s, attack: rate.N(attack), rate: falloff, sr: rate}
}

func (e *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := math.Exp(-e.rate * float64(e.position) / float64(e.sr))
		if e.position < e.attack {
			vol *= float64(e.position) / float64(e.attack)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *decay) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. 0 or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Sound durations
const (
	JumpDuration = 140 * time.Millisecond
	HitDuration  = 380 * time.Millisecond
)

// JumpSound is a short rising blip.
func JumpSound(rate beep.SampleRate, vol float64) beep.Streamer {
	osc := NewSweep(330, 880, JumpDuration, WaveSquare, rate)
	return newVolume(NewDecay(osc, 5*time.Millisecond, 12, rate), vol*0.4)
}

// HitSound is a falling thud with a triangle undertone.
func HitSound(rate beep.SampleRate, vol float64) beep.Streamer {
	thud := NewSweep(220, 55, HitDuration, WaveSquare, rate)
	body := NewSweep(110, 40, HitDuration, WaveTriangle, rate)
	mixed := beep.Mix(newVolume(thud, 0.5), newVolume(body, 0.7))
	return newVolume(NewDecay(mixed, 2*time.Millisecond, 7, rate), vol)
}
