// Package audio synthesizes the game's sound effects with beep.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Effect identifies a sound effect.
type Effect int

const (
	EffectEat      Effect = iota // food or bonus eaten
	EffectGameOver               // run ended
)

func (e Effect) String() string {
	switch e {
	case EffectEat:
		return "eat"
	case EffectGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Tone describes a sine beep whose gain decays exponentially.
type Tone struct {
	Freq      float64
	Duration  time.Duration
	StartGain float64
	EndGain   float64
}

// ToneFor returns the tone played for an effect.
func ToneFor(e Effect) (Tone, bool) {
	switch e {
	case EffectEat:
		return Tone{Freq: 800, Duration: 100 * time.Millisecond, StartGain: 0.3, EndGain: 0.01}, true
	case EffectGameOver:
		return Tone{Freq: 200, Duration: 500 * time.Millisecond, StartGain: 0.3, EndGain: 0.01}, true
	default:
		return Tone{}, false
	}
}

// decay ramps gain from start to end exponentially over total samples.
type decay struct {
	streamer beep.Streamer
	pos      int
	total    int
	start    float64
	end      float64
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := d.start * math.Pow(d.end/d.start, float64(d.pos)/float64(d.total))
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.pos++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume wraps s with a linear volume in [0, 1].
// math.Log2(0) is -Inf, so zero volume is expressed as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// NewStreamer builds a finite streamer for the effect at the given rate and volume.
func NewStreamer(e Effect, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	tone, ok := ToneFor(e)
	if !ok {
		return nil, fmt.Errorf("audio: unknown effect %d", e)
	}

	sine, err := generators.SineTone(rate, tone.Freq)
	if err != nil {
		return nil, fmt.Errorf("audio: %s tone: %w", e, err)
	}

	n := rate.N(tone.Duration)
	shaped := &decay{
		streamer: beep.Take(n, sine),
		total:    n,
		start:    tone.StartGain,
		end:      tone.EndGain,
	}
	return newVolume(shaped, volume), nil
}
