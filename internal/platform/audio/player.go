// Package audio synthesizes the game's sound effects with beep.
// Everything is generated at runtime; there are no sample assets.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/dkoval/starfall/internal/core"
)

const sampleRate = beep.SampleRate(48000)

// Player manages all game audio. A Player that failed to initialize, or a nil
// Player, is silent; every method is safe to call regardless.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	muted       bool
	initialized bool
}

// NewPlayer creates a new audio player. Call Init before playing.
func NewPlayer() *Player {
	return &Player{
		mixer: &beep.Mixer{},
	}
}

// Init sets up the audio device. Failure leaves the player silent; the game
// does not need sound to run.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetMuted toggles sound output without tearing down the device.
func (p *Player) SetMuted(muted bool) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Close stops all sounds and releases the mixer.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	p.mixer.Clear()
	p.initialized = false
}

// HandleEvents plays the effect for each simulation event of the tick.
func (p *Player) HandleEvents(events []core.Event) {
	if p == nil {
		return
	}
	for _, ev := range events {
		switch ev {
		case core.EventShot:
			p.playShot()
		case core.EventExplosion:
			p.playExplosion()
		case core.EventShipLost:
			p.playShipLost()
		case core.EventRunStart:
			p.playRunStart()
		}
	}
}

// play adds a finite streamer to the mixer if the device is up.
func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	p.mixer.Add(s)
}

// playShot is a short high square-wave blip.
func (p *Player) playShot() {
	p.play(beep.Take(sampleRate.N(time.Millisecond*60), newBlipGenerator(sampleRate, 1200, false)))
}

// playExplosion is a noise burst with a fast decay.
func (p *Player) playExplosion() {
	p.play(beep.Take(sampleRate.N(time.Millisecond*250), newNoiseGenerator(sampleRate)))
}

// playShipLost is a long descending sweep.
func (p *Player) playShipLost() {
	p.play(beep.Take(sampleRate.N(time.Millisecond*600), newSweepGenerator(sampleRate, 400, 80)))
}

// playRunStart is a quick ascending sweep.
func (p *Player) playRunStart() {
	p.play(beep.Take(sampleRate.N(time.Millisecond*200), newSweepGenerator(sampleRate, 200, 600)))
}
