package gesture

import "time"

// Binding is the opaque handle for one attached surface. It owns exactly one
// surface for its lifetime and is released with Detach.
type Binding struct {
	owner    *Recognizer
	surface  string
	handlers Handlers

	tracking       bool
	startX, startY int
	lastX, lastY   int
	startedAt      time.Time
}

// Surface returns the surface identifier this binding is attached to.
func (b *Binding) Surface() string {
	return b.surface
}

// Detach releases the binding. It is idempotent: repeated calls are no-ops.
// After Detach returns, no handler fires again on this binding; an in-flight
// press sequence is abandoned and later raw events fall through to nothing.
func (b *Binding) Detach() {
	if b.owner == nil {
		return
	}
	b.tracking = false
	// Guard against detaching a stale handle after the surface was re-bound.
	if current, ok := b.owner.bindings[b.surface]; ok && current == b {
		delete(b.owner.bindings, b.surface)
	}
	b.owner = nil
}
