package logging

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// DefaultFile is the log sink created when Init is never called.
const DefaultFile = "hearsay.log"

var (
	mu      sync.Mutex
	base    *logrus.Logger
	entries = make(map[string]*logrus.Entry)
)

// Init opens the log file and configures the shared logger. Call it once from
// main before the TUI starts; components created earlier pick up the new sink.
// An unopenable file degrades to a discard sink: the alternate screen owns
// stdout and stderr, so nothing may write there.
func Init(path, level string) {
	mu.Lock()
	defer mu.Unlock()
	l := ensureLocked()

	if lv, err := logrus.ParseLevel(level); err == nil {
		l.SetLevel(lv)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		l.SetOutput(io.Discard)
		return
	}
	l.SetOutput(file)
}

// NewLogger returns a logger entry tagged with a component name. Entries are
// cached per component and share the Init-configured sink.
func NewLogger(component string) *logrus.Entry {
	mu.Lock()
	defer mu.Unlock()

	if e, ok := entries[component]; ok {
		return e
	}
	e := ensureLocked().WithField("component", component)
	entries[component] = e
	return e
}

// SetOutput redirects the shared sink. Tests use this to capture output.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	ensureLocked().SetOutput(w)
}

func ensureLocked() *logrus.Logger {
	if base != nil {
		return base
	}
	base = logrus.New()
	base.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	level := logrus.InfoLevel
	if env := os.Getenv("HEARSAY_LOG_LEVEL"); env != "" {
		if lv, err := logrus.ParseLevel(env); err == nil {
			level = lv
		}
	}
	base.SetLevel(level)

	// Silent until Init wires the file sink; entries created before Init
	// share the logger and start writing once main configures it.
	base.SetOutput(io.Discard)
	return base
}
