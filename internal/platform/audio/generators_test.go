package audio

import (
	"math"
	"testing"
)

func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
	Err() error
}, chunks int) []float64 {
	t.Helper()

	var out []float64
	buf := make([][2]float64, 512)
	for i := 0; i < chunks; i++ {
		n, ok := s.Stream(buf)
		if !ok {
			t.Fatal("generator stopped early")
		}
		for _, frame := range buf[:n] {
			out = append(out, frame[0])
			if frame[0] != frame[1] {
				t.Fatal("generators should emit identical stereo channels")
			}
		}
	}
	if s.Err() != nil {
		t.Fatalf("generator error: %v", s.Err())
	}
	return out
}

func TestBlipGeneratorBounds(t *testing.T) {
	samples := drain(t, newBlipGenerator(sampleRate, 1200, false), 8)

	for _, s := range samples {
		if math.Abs(s) > 0.2 {
			t.Fatalf("blip sample %f out of range", s)
		}
	}
}

func TestNoiseGeneratorDecays(t *testing.T) {
	g := newNoiseGenerator(sampleRate)
	samples := drain(t, g, 32)

	peak := func(part []float64) float64 {
		var max float64
		for _, s := range part {
			if a := math.Abs(s); a > max {
				max = a
			}
		}
		return max
	}

	head := peak(samples[:len(samples)/4])
	tail := peak(samples[len(samples)-len(samples)/4:])
	if tail >= head {
		t.Errorf("noise should decay: head peak %f, tail peak %f", head, tail)
	}
}

func TestSweepGeneratorBounds(t *testing.T) {
	samples := drain(t, newSweepGenerator(sampleRate, 400, 80), 16)

	for _, s := range samples {
		if math.Abs(s) > 0.25 {
			t.Fatalf("sweep sample %f out of range", s)
		}
	}
}

func TestPlayerSilentWithoutInit(t *testing.T) {
	p := NewPlayer()
	// Must not panic without a device
	p.HandleEvents(nil)
	p.SetMuted(true)
	p.Close()

	var nilPlayer *Player
	nilPlayer.HandleEvents(nil)
	nilPlayer.SetMuted(false)
	nilPlayer.Close()
}
