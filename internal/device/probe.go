package device

// Breakpoint is a named terminal-width tier driving layout selection
type Breakpoint int

const (
	BreakpointXS Breakpoint = iota
	BreakpointSM
	BreakpointMD
	BreakpointLG
	BreakpointXL
)

// Width thresholds between tiers, in columns
const (
	WidthSM = 80
	WidthMD = 100
	WidthLG = 120
	WidthXL = 140
)

func (b Breakpoint) String() string {
	switch b {
	case BreakpointXS:
		return "xs"
	case BreakpointSM:
		return "sm"
	case BreakpointMD:
		return "md"
	case BreakpointLG:
		return "lg"
	case BreakpointXL:
		return "xl"
	}
	return "unknown"
}

// BreakpointFor maps a terminal width in columns to its tier.
func BreakpointFor(width int) Breakpoint {
	switch {
	case width >= WidthXL:
		return BreakpointXL
	case width >= WidthLG:
		return BreakpointLG
	case width >= WidthMD:
		return BreakpointMD
	case width >= WidthSM:
		return BreakpointSM
	}
	return BreakpointXS
}

// Info is an immutable snapshot of the terminal environment. Each probe
// notification carries a wholly new value; fields are never patched in place.
type Info struct {
	Breakpoint Breakpoint
	HasTouch   bool // terminal mouse reporting available and enabled
	IsMobile   bool // xs or sm: the drawer is a toggled overlay
	IsPortrait bool // rows exceed columns
	Width      int
	Height     int
}

type probeSub struct {
	id uint64
	fn func(Info)
}

// Probe reports the current terminal environment and notifies subscribers
// when a breakpoint boundary is crossed, orientation flips, or mouse
// capability changes. Resizes inside a tier update the snapshot silently.
//
// The probe is driven by the UI event loop and is not safe for concurrent
// use; notifications run synchronously inside Observe/SetTouch.
type Probe struct {
	current Info
	nextID  uint64
	subs    []probeSub
}

// NewProbe creates a probe. hasTouch reflects whether the host enabled mouse
// reporting; environments that cannot report it pass false.
func NewProbe(hasTouch bool) *Probe {
	return &Probe{
		current: Info{Breakpoint: BreakpointXS, HasTouch: hasTouch, IsMobile: true},
	}
}

// Snapshot returns the current environment snapshot.
func (p *Probe) Snapshot() Info {
	return p.current
}

// Observe feeds a terminal size into the probe. Subscribers are notified
// only when the breakpoint tier or orientation changed.
func (p *Probe) Observe(width, height int) {
	bp := BreakpointFor(width)
	next := Info{
		Breakpoint: bp,
		HasTouch:   p.current.HasTouch,
		IsMobile:   bp < BreakpointMD,
		IsPortrait: height > width,
		Width:      width,
		Height:     height,
	}

	changed := next.Breakpoint != p.current.Breakpoint || next.IsPortrait != p.current.IsPortrait
	p.current = next
	if changed {
		p.notify(next)
	}
}

// SetTouch updates mouse capability, notifying subscribers on change.
func (p *Probe) SetTouch(hasTouch bool) {
	if hasTouch == p.current.HasTouch {
		return
	}
	next := p.current
	next.HasTouch = hasTouch
	p.current = next
	p.notify(next)
}

// Subscribe registers a change handler and returns an unsubscribe function.
// Unsubscribing is idempotent and effective immediately, including against a
// notification already in flight.
func (p *Probe) Subscribe(fn func(Info)) func() {
	p.nextID++
	id := p.nextID
	p.subs = append(p.subs, probeSub{id: id, fn: fn})

	return func() {
		for i, s := range p.subs {
			if s.id == id {
				p.subs = append(p.subs[:i], p.subs[i+1:]...)
				return
			}
		}
	}
}

func (p *Probe) notify(info Info) {
	ids := make([]uint64, len(p.subs))
	for i, s := range p.subs {
		ids[i] = s.id
	}
	for _, id := range ids {
		if fn := p.lookup(id); fn != nil {
			fn(info)
		}
	}
}

func (p *Probe) lookup(id uint64) func(Info) {
	for _, s := range p.subs {
		if s.id == id {
			return s.fn
		}
	}
	return nil
}
