package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// blipGenerator produces a fixed-frequency tone, square or sine.
type blipGenerator struct {
	sr   beep.SampleRate
	freq float64
	sine bool
	pos  int
}

func newBlipGenerator(sr beep.SampleRate, freq float64, sine bool) *blipGenerator {
	return &blipGenerator{sr: sr, freq: freq, sine: sine}
}

func (g *blipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		phase := math.Sin(2 * math.Pi * g.freq * t)

		var sample float64
		if g.sine {
			sample = 0.2 * phase
		} else if phase >= 0 {
			sample = 0.15
		} else {
			sample = -0.15
		}

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *blipGenerator) Err() error {
	return nil
}

// noiseGenerator produces white noise with a linear decay envelope over its
// expected lifetime. Used for explosions.
type noiseGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

func newNoiseGenerator(sr beep.SampleRate) *noiseGenerator {
	return &noiseGenerator{
		sr:      sr,
		samples: sr.N(250 * time.Millisecond), // matches the Take window in the player
	}
}

func (g *noiseGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		decay := 1.0 - float64(g.pos)/float64(g.samples)
		if decay < 0 {
			decay = 0
		}
		sample := (rand.Float64()*2 - 1) * 0.25 * decay

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *noiseGenerator) Err() error {
	return nil
}

// sweepGenerator produces a sine tone gliding from one frequency to another
// over one second of samples.
type sweepGenerator struct {
	sr       beep.SampleRate
	from, to float64
	phase    float64
	pos      int
}

func newSweepGenerator(sr beep.SampleRate, from, to float64) *sweepGenerator {
	return &sweepGenerator{sr: sr, from: from, to: to}
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	total := float64(g.sr) // 1s reference; Take cuts it shorter
	for i := range samples {
		progress := float64(g.pos) / total
		if progress > 1 {
			progress = 1
		}
		freq := g.from + (g.to-g.from)*progress

		g.phase += freq / float64(g.sr)
		if g.phase >= 1 {
			g.phase -= 1
		}
		sample := 0.2 * math.Sin(2*math.Pi*g.phase) * (1 - progress*0.5)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error {
	return nil
}
