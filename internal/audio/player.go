// Package audio plays the game's synthesized sound effects: the looped
// rustle of a shaking tree and one-shot chop, fall and pickup sounds.
// Every operation is safe to call when no audio device is available.
package audio

import (
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Config selects the output format
type Config struct {
	SampleRate int
	Volume     float64
}

// Player manages all game audio
type Player struct {
	mu          sync.Mutex
	rate        beep.SampleRate
	volume      float64
	rng         *rand.Rand
	mixer       *beep.Mixer
	rustle      *beep.Ctrl
	initialized bool
}

// NewPlayer creates a player. Nothing is opened until Initialize.
func NewPlayer(cfg Config, rng *rand.Rand) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &Player{
		rate:   beep.SampleRate(cfg.SampleRate),
		volume: cfg.Volume,
		rng:    rng,
		mixer:  &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close silences everything
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	if p.rustle != nil {
		p.rustle.Paused = true
	}
	p.mixer.Clear()
	speaker.Unlock()

	p.rustle = nil
	p.initialized = false
}

// SetRustling starts or pauses the looped rustle. The loop is created on
// first use and then only paused and resumed.
func (p *Player) SetRustling(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if p.rustle == nil {
		if !on {
			return
		}
		p.rustle = &beep.Ctrl{Streamer: newVolume(NewRustleGenerator(p.rate, p.rng), p.volume)}
		p.mixer.Add(p.rustle)
		return
	}
	p.rustle.Paused = !on
}

// Rustling reports whether the rustle loop is audible
func (p *Player) Rustling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.rustle == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !p.rustle.Paused
}

// PlayChop plays the axe hit sound
func (p *Player) PlayChop() {
	p.play(func() beep.Streamer { return ChopSound(p.rate, p.volume) })
}

// PlayFall plays the falling tree sound
func (p *Player) PlayFall() {
	p.play(func() beep.Streamer { return FallSound(p.rate, p.volume, p.rng) })
}

// PlayPickup plays the collection blip
func (p *Player) PlayPickup() {
	p.play(func() beep.Streamer { return PickupSound(p.rate, p.volume) })
}

func (p *Player) play(build func() beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Add(build())
	speaker.Unlock()
}
