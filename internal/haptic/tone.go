package haptic

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const toneSampleRate = beep.SampleRate(44100)

// tonePlayer mixes short sine bursts into the speaker. Construction fails
// when no audio backend exists; callers treat that as "no tone channel".
type tonePlayer struct {
	mixer *beep.Mixer
}

func newTonePlayer() (*tonePlayer, error) {
	if err := speaker.Init(toneSampleRate, toneSampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	tp := &tonePlayer{mixer: &beep.Mixer{}}
	speaker.Play(tp.mixer)
	return tp, nil
}

func (tp *tonePlayer) play(freq float64, dur time.Duration) {
	burst := newBurst(freq, dur)
	speaker.Lock()
	tp.mixer.Add(burst)
	speaker.Unlock()
}

func (tp *tonePlayer) stop() {
	speaker.Lock()
	tp.mixer.Clear()
	speaker.Unlock()
}

func toneFor(intensity Intensity) (freq float64, dur time.Duration) {
	switch intensity {
	case Medium:
		return 660, 70 * time.Millisecond
	case Heavy:
		return 440, 110 * time.Millisecond
	}
	return 880, 40 * time.Millisecond
}

// burst is a fixed-length sine streamer with a linear attack/release
// envelope so pulses start and end without clicks.
type burst struct {
	phase    float64
	phaseInc float64
	position int
	total    int
	ramp     int
}

func newBurst(freq float64, dur time.Duration) beep.Streamer {
	total := toneSampleRate.N(dur)
	ramp := toneSampleRate.N(5 * time.Millisecond)
	if ramp*2 > total {
		ramp = total / 2
	}
	return &burst{
		phaseInc: freq / float64(toneSampleRate),
		total:    total,
		ramp:     ramp,
	}
}

func (b *burst) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if b.position >= b.total {
			return i, false
		}

		val := 0.4 * math.Sin(2*math.Pi*b.phase)

		vol := 1.0
		if b.ramp > 0 {
			if b.position < b.ramp {
				vol = float64(b.position) / float64(b.ramp)
			} else if remaining := b.total - b.position; remaining < b.ramp {
				vol = float64(remaining) / float64(b.ramp)
			}
		}
		val *= vol

		samples[i][0] = val
		samples[i][1] = val

		b.phase += b.phaseInc
		if b.phase >= 1.0 {
			b.phase -= 1.0
		}
		b.position++
	}
	return len(samples), true
}

func (b *burst) Err() error { return nil }
