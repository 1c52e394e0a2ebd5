package haptic

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"hearsay/internal/logging"
)

// Intensity selects the strength of a feedback pulse
type Intensity int

const (
	Light Intensity = iota
	Medium
	Heavy
)

func (i Intensity) String() string {
	switch i {
	case Light:
		return "light"
	case Medium:
		return "medium"
	case Heavy:
		return "heavy"
	}
	return "unknown"
}

// Config controls which feedback channels a Notifier drives.
type Config struct {
	Bell    bool      // ring the terminal bell
	Audible bool      // play a synthesized tone through the audio backend
	Out     io.Writer // bell sink; nil selects os.Stderr
}

// Notifier delivers best-effort tactile-style feedback. Pulse never returns
// an error and never blocks: a missing audio backend, a disabled bell, or a
// failed write all degrade to a silent no-op.
type Notifier struct {
	bell bool
	out  io.Writer
	tone *tonePlayer
	log  *logrus.Entry
}

// New creates a notifier. When audible feedback is requested but the audio
// backend cannot initialize, the notifier comes up with the tone channel
// silently disabled.
func New(cfg Config) *Notifier {
	n := &Notifier{
		bell: cfg.Bell,
		out:  cfg.Out,
		log:  logging.NewLogger("haptic"),
	}
	if n.out == nil {
		n.out = os.Stderr
	}
	if cfg.Audible {
		tone, err := newTonePlayer()
		if err != nil {
			n.log.Debugf("audio backend unavailable: %v", err)
		} else {
			n.tone = tone
		}
	}
	return n
}

// Active reports whether any feedback channel is live.
func (n *Notifier) Active() bool {
	return n.bell || n.tone != nil
}

// Pulse requests one feedback pulse. Fire-and-forget: no return value, no
// blocking, no panic regardless of environment support.
func (n *Notifier) Pulse(intensity Intensity) {
	if n == nil {
		return
	}
	if n.bell {
		// Bell count scales with intensity; write errors are dropped.
		_, _ = io.WriteString(n.out, strings.Repeat("\a", bells(intensity)))
	}
	if n.tone != nil {
		freq, dur := toneFor(intensity)
		n.tone.play(freq, dur)
	}
}

// SetBell switches the terminal bell channel at runtime.
func (n *Notifier) SetBell(enabled bool) {
	n.bell = enabled
}

// SetTone switches the synthesized tone channel at runtime. Enabling when
// no audio backend exists degrades to a silent no-op, same as construction.
func (n *Notifier) SetTone(enabled bool) {
	if !enabled {
		if n.tone != nil {
			n.tone.stop()
			n.tone = nil
		}
		return
	}
	if n.tone != nil {
		return
	}
	tone, err := newTonePlayer()
	if err != nil {
		n.log.Debugf("audio backend unavailable: %v", err)
		return
	}
	n.tone = tone
}

// Close releases the audio backend if one was acquired.
func (n *Notifier) Close() {
	if n.tone != nil {
		n.tone.stop()
	}
}

func bells(intensity Intensity) int {
	switch intensity {
	case Medium:
		return 2
	case Heavy:
		return 3
	}
	return 1
}
