package haptic

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPulseRingsBellPerIntensity(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}
	n := New(Config{Bell: true, Out: out})

	n.Pulse(Light)
	assert.Equal(t, 1, strings.Count(out.String(), "\a"))

	out.Reset()
	n.Pulse(Medium)
	assert.Equal(t, 2, strings.Count(out.String(), "\a"))

	out.Reset()
	n.Pulse(Heavy)
	assert.Equal(t, 3, strings.Count(out.String(), "\a"))
}

func TestPulseDisabledIsSilent(t *testing.T) {
	t.Parallel()
	out := &bytes.Buffer{}
	n := New(Config{Bell: false, Out: out})

	n.Pulse(Light)
	n.Pulse(Heavy)

	assert.Empty(t, out.String())
	assert.False(t, n.Active())
}

func TestPulseNeverPanics(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		var n *Notifier
		n.Pulse(Light)
	})

	assert.NotPanics(t, func() {
		n := New(Config{Bell: true, Out: failingWriter{}})
		n.Pulse(Heavy)
	})
}

func TestIntensityStrings(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "light", Light.String())
	assert.Equal(t, "medium", Medium.String())
	assert.Equal(t, "heavy", Heavy.String())
}

func TestBurstDrainsAfterDuration(t *testing.T) {
	t.Parallel()
	s := newBurst(880, 10*time.Millisecond)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
	}

	assert.Equal(t, toneSampleRate.N(10*time.Millisecond), total)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}
