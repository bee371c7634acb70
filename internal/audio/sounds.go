package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const (
	chopFrequency = 180
	chopDuration  = 90 * time.Millisecond
	fallDuration  = 600 * time.Millisecond
	pickupTone    = 660
	pickupLength  = 70 * time.Millisecond
)

// RustleGenerator produces endless filtered noise with a slow swell, the
// sound of leaves on a shaking tree.
type RustleGenerator struct {
	sr    beep.SampleRate
	rng   *rand.Rand
	pos   int
	last  float64
	cycle int
}

// NewRustleGenerator creates a rustle generator drawing noise from rng
func NewRustleGenerator(sr beep.SampleRate, rng *rand.Rand) *RustleGenerator {
	return &RustleGenerator{
		sr:    sr,
		rng:   rng,
		cycle: sr.N(300 * time.Millisecond),
	}
}

func (g *RustleGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		// one-pole low-pass keeps the hiss soft
		white := g.rng.Float64()*2 - 1
		g.last += 0.2 * (white - g.last)

		phase := float64(g.pos%g.cycle) / float64(g.cycle)
		amplitude := 0.25 * (0.6 + 0.4*math.Sin(phase*2*math.Pi))
		sample := amplitude * g.last

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *RustleGenerator) Err() error {
	return nil
}

// FallGenerator produces a decaying low rumble for a falling tree
type FallGenerator struct {
	sr      beep.SampleRate
	rng     *rand.Rand
	pos     int
	samples int
}

// NewFallGenerator creates a fall generator
func NewFallGenerator(sr beep.SampleRate, rng *rand.Rand) *FallGenerator {
	return &FallGenerator{sr: sr, rng: rng, samples: sr.N(fallDuration)}
}

func (g *FallGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		t := float64(g.pos) / float64(g.sr)
		env := 1 - float64(g.pos)/float64(g.samples)
		sample := env * env * (0.3*math.Sin(2*math.Pi*55*t) + 0.15*(g.rng.Float64()*2-1))

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *FallGenerator) Err() error {
	return nil
}

// newVolume wraps s with a linear gain; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ChopSound is the short thud of an axe biting into a tree
func ChopSound(sr beep.SampleRate, vol float64) beep.Streamer {
	tone, err := generators.SineTone(sr, chopFrequency)
	if err != nil {
		return beep.Silence(sr.N(chopDuration))
	}
	return newVolume(beep.Take(sr.N(chopDuration), tone), vol)
}

// PickupSound is a short blip played when something is collected
func PickupSound(sr beep.SampleRate, vol float64) beep.Streamer {
	tone, err := generators.SineTone(sr, pickupTone)
	if err != nil {
		return beep.Silence(sr.N(pickupLength))
	}
	return newVolume(beep.Take(sr.N(pickupLength), tone), vol*0.6)
}

// FallSound is the rumble of a tree coming down
func FallSound(sr beep.SampleRate, vol float64, rng *rand.Rand) beep.Streamer {
	return newVolume(NewFallGenerator(sr, rng), vol)
}
