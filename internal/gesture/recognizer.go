package gesture

import (
	"errors"
	"time"
)

// Classification thresholds. Distances are in terminal cells; a cell is
// roughly twice as tall as it is wide, so the 2.0 dominance ratio demands
// about a 1:1 visual slope before a drag counts as horizontal.
const (
	MinDistance    = 8
	MaxDuration    = 500 * time.Millisecond
	DominanceRatio = 2.0
)

// ErrSurfaceBound is returned by Attach when the surface already has a live
// binding. Detach the existing binding before re-attaching.
var ErrSurfaceBound = errors.New("gesture: surface already bound")

// Direction of a recognized swipe
type Direction int

const (
	DirectionLeft Direction = iota
	DirectionRight
)

func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// Swipe describes a completed, classified gesture.
type Swipe struct {
	Direction Direction
	Distance  int // horizontal displacement magnitude, cells
	Elapsed   time.Duration
}

// Handlers receives classified swipes. A nil handler drops its direction.
type Handlers struct {
	OnSwipeLeft  func(Swipe)
	OnSwipeRight func(Swipe)
}

// Recognizer turns press/move/release sequences on named surfaces into swipe
// callbacks. It holds at most one Binding per surface and runs entirely
// inside the caller's event loop: classification and handler invocation
// happen synchronously in Release.
type Recognizer struct {
	bindings map[string]*Binding
	now      func() time.Time
}

// NewRecognizer creates an empty recognizer.
func NewRecognizer() *Recognizer {
	return &Recognizer{
		bindings: make(map[string]*Binding),
		now:      time.Now,
	}
}

// Attach binds swipe handlers to a surface and returns the detachment
// handle. Attaching to a surface that already has a live binding fails with
// ErrSurfaceBound; release the old binding first.
func (r *Recognizer) Attach(surface string, handlers Handlers) (*Binding, error) {
	if _, ok := r.bindings[surface]; ok {
		return nil, ErrSurfaceBound
	}
	b := &Binding{owner: r, surface: surface, handlers: handlers}
	r.bindings[surface] = b
	return b, nil
}

// Bound reports whether a surface currently has a live binding.
func (r *Recognizer) Bound(surface string) bool {
	_, ok := r.bindings[surface]
	return ok
}

// Press begins tracking a gesture on a surface. A second press while a
// gesture is in flight cancels it without starting a new one.
func (r *Recognizer) Press(surface string, x, y int) {
	b, ok := r.bindings[surface]
	if !ok {
		return
	}
	if b.tracking {
		b.tracking = false
		return
	}
	b.tracking = true
	b.startX, b.startY = x, y
	b.lastX, b.lastY = x, y
	b.startedAt = r.now()
}

// Move updates the tracked pointer position. Ignored while idle.
func (r *Recognizer) Move(surface string, x, y int) {
	b, ok := r.bindings[surface]
	if !ok || !b.tracking {
		return
	}
	b.lastX, b.lastY = x, y
}

// Release ends a tracked gesture and classifies it. Exactly one handler
// fires for a classified swipe; anything below threshold fires neither.
func (r *Recognizer) Release(surface string, x, y int) {
	b, ok := r.bindings[surface]
	if !ok || !b.tracking {
		return
	}
	b.tracking = false
	b.lastX, b.lastY = x, y

	dx := b.lastX - b.startX
	dy := b.lastY - b.startY
	elapsed := r.now().Sub(b.startedAt)

	swipe, ok := classify(dx, dy, elapsed)
	if !ok {
		return
	}
	if swipe.Direction == DirectionLeft {
		if b.handlers.OnSwipeLeft != nil {
			b.handlers.OnSwipeLeft(swipe)
		}
		return
	}
	if b.handlers.OnSwipeRight != nil {
		b.handlers.OnSwipeRight(swipe)
	}
}

// Cancel aborts any in-flight gesture on a surface without firing handlers.
// Surfaces call it when the pointer leaves their bounds.
func (r *Recognizer) Cancel(surface string) {
	if b, ok := r.bindings[surface]; ok {
		b.tracking = false
	}
}

func classify(dx, dy int, elapsed time.Duration) (Swipe, bool) {
	adx := abs(dx)
	ady := abs(dy)

	if adx < MinDistance {
		return Swipe{}, false
	}
	if elapsed > MaxDuration {
		return Swipe{}, false
	}
	if float64(adx) < DominanceRatio*float64(ady) {
		return Swipe{}, false
	}

	dir := DirectionRight
	if dx < 0 {
		dir = DirectionLeft
	}
	return Swipe{Direction: dir, Distance: adx, Elapsed: elapsed}, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
