// Package sound plays the mismatch cue.
package sound

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate   = beep.SampleRate(44100)
	toneFreq     = 440.0
	toneDuration = 150 * time.Millisecond
	toneVolume   = -2.0
)

// Player emits the audible cue for a wrong key.
type Player interface {
	Beep()
}

// Silent never makes a sound.
type Silent struct{}

// Beep implements Player.
func (Silent) Beep() {}

// Bell rings the terminal bell.
type Bell struct {
	W io.Writer
}

// Beep implements Player.
func (b Bell) Beep() {
	if b.W == nil {
		return
	}
	if _, err := io.WriteString(b.W, "\a"); err != nil {
		// Best-effort bell.
		_ = err
	}
}

// Speaker plays a short sine tone through the audio device.
type Speaker struct {
	mu          sync.Mutex
	initialized bool
}

// NewSpeaker opens the audio device.
func NewSpeaker() (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	return &Speaker{initialized: true}, nil
}

// Beep implements Player.
func (s *Speaker) Beep() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Play(Tone(toneFreq, toneDuration))
}

// Close releases the audio device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}

// Tone returns a sine wave of freq Hz lasting d, faded in and out so it does
// not click.
func Tone(freq float64, d time.Duration) beep.Streamer {
	n := sampleRate.N(d)
	return &effects.Volume{
		Streamer: beep.Take(n, &sine{freq: freq, total: n}),
		Base:     2,
		Volume:   toneVolume,
	}
}

type sine struct {
	freq  float64
	pos   int
	total int
}

func (s *sine) Stream(samples [][2]float64) (int, bool) {
	ramp := sampleRate.N(10 * time.Millisecond)
	for i := range samples {
		t := float64(s.pos) / float64(sampleRate)
		v := math.Sin(2 * math.Pi * s.freq * t)
		if ramp > 0 {
			env := math.Min(float64(s.pos)/float64(ramp), 1)
			if tail := s.total - s.pos; tail < ramp {
				env = math.Min(env, float64(tail)/float64(ramp))
			}
			v *= env
		}
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *sine) Err() error {
	return nil
}
