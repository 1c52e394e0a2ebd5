package nav

import (
	"github.com/sirupsen/logrus"

	"hearsay/internal/device"
	"hearsay/internal/domain"
	"hearsay/internal/eventbus"
	"hearsay/internal/gesture"
	"hearsay/internal/haptic"
	"hearsay/internal/logging"
)

// State of the navigation drawer
type State int

const (
	StateClosed State = iota
	StateOpen
)

func (s State) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// Surface is the gesture surface identifier the controller binds to.
const Surface = "nav"

// Host is the application the controller reports selections to. It supplies
// the current page and the transient counters behind navigation badges, and
// receives selected page ids unvalidated; sanitizing unknown ids is the
// host's job.
type Host interface {
	CurrentPage() string
	Notifications() int
	IsProcessing() bool
	Navigate(pageID string)
}

// Target is a normalized pointer interaction. The environment adapter
// resolves hit-testing against the drawer and the toggle trigger before
// delivery, so hybrid touch/mouse input arrives here exactly once.
type Target struct {
	InDrawer bool
	InToggle bool
}

// Controller owns the drawer Open/Closed state machine and composes the
// device probe, the gesture recognizer, and the haptic notifier.
//
// All transitions run synchronously inside the caller's event loop; one
// event produces at most one transition. The stored flag is authoritative at
// mobile breakpoints only; EffectiveOpen is the layout truth everywhere.
type Controller struct {
	state State
	dev   device.Info

	items   []domain.NavigationItem
	host    Host
	probe   *device.Probe
	rec     *gesture.Recognizer
	haptics *haptic.Notifier
	bus     eventbus.EventBus

	binding     *gesture.Binding
	unsubscribe func()
	mounted     bool

	log *logrus.Entry
}

// NewController wires a controller to its collaborators. Call Mount before
// delivering events and Unmount when the navigation surface goes away.
func NewController(items []domain.NavigationItem, host Host, probe *device.Probe, rec *gesture.Recognizer, haptics *haptic.Notifier, bus eventbus.EventBus) *Controller {
	return &Controller{
		state:   StateClosed,
		items:   items,
		host:    host,
		probe:   probe,
		rec:     rec,
		haptics: haptics,
		bus:     bus,
		log:     logging.NewLogger("nav"),
	}
}

// Mount takes the probe subscription and evaluates the gesture binding.
// Mounting twice is a no-op.
func (c *Controller) Mount() {
	if c.mounted {
		return
	}
	c.mounted = true
	c.dev = c.probe.Snapshot()
	c.unsubscribe = c.probe.Subscribe(c.onDeviceChange)
	c.syncBinding()
	c.log.Debugf("mounted at %s", c.dev.Breakpoint)
}

// Unmount releases the probe subscription and the gesture binding. Both are
// gone before Unmount returns; no stale callback fires afterwards.
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}
	c.mounted = false
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	if c.binding != nil {
		c.binding.Detach()
		c.binding = nil
	}
}

// Toggle flips the drawer state.
func (c *Controller) Toggle() {
	if c.state == StateOpen {
		c.setState(StateClosed)
	} else {
		c.setState(StateOpen)
	}
	c.haptics.Pulse(haptic.Light)
}

// Select notifies the host of a catalog selection exactly once and closes
// the drawer. The id passes through unvalidated.
func (c *Controller) Select(pageID string) {
	c.log.Debugf("select %s (leaving %s)", pageID, c.host.CurrentPage())
	c.host.Navigate(pageID)
	c.setState(StateClosed)
	c.haptics.Pulse(haptic.Light)
	c.bus.Publish(domain.PageSelectedEvent{PageID: pageID})
}

// OutsideInteraction dismisses an open drawer when the interaction landed
// outside both the drawer and its toggle trigger. Anything else, and any
// interaction while closed, is a no-op.
func (c *Controller) OutsideInteraction(target Target) {
	if c.state != StateOpen {
		return
	}
	if target.InDrawer || target.InToggle {
		return
	}
	c.setState(StateClosed)
}

// State returns the stored drawer flag.
func (c *Controller) State() State {
	return c.state
}

// IsOpen reports the stored flag. Authoritative at mobile breakpoints only.
func (c *Controller) IsOpen() bool {
	return c.state == StateOpen
}

// EffectiveOpen is the layout truth: non-mobile breakpoints always render
// the navigation visible regardless of the stored flag.
func (c *Controller) EffectiveOpen() bool {
	return !c.dev.IsMobile || c.state == StateOpen
}

// Device returns the snapshot the controller last observed.
func (c *Controller) Device() device.Info {
	return c.dev
}

// Items returns the static navigation catalog.
func (c *Controller) Items() []domain.NavigationItem {
	return c.items
}

// GestureBound reports whether a live gesture binding exists.
func (c *Controller) GestureBound() bool {
	return c.binding != nil
}

func (c *Controller) onDeviceChange(info device.Info) {
	was := c.dev
	c.dev = info
	c.syncBinding()
	if was.IsMobile && !info.IsMobile && c.state == StateOpen {
		// Layout acts always-visible from here on; the stored flag is kept
		// so a return to a mobile breakpoint restores the open drawer.
		c.log.Debugf("breakpoint %s: drawer flag retained while acting always-visible", info.Breakpoint)
	}
}

func (c *Controller) onSwipeLeft(s gesture.Swipe) {
	if c.state != StateOpen {
		return
	}
	c.setState(StateClosed)
	c.haptics.Pulse(haptic.Light)
	c.bus.Publish(domain.SwipeRecognizedEvent{Direction: s.Direction.String(), Distance: s.Distance, Elapsed: s.Elapsed})
}

func (c *Controller) onSwipeRight(s gesture.Swipe) {
	if c.state != StateClosed || !c.dev.IsMobile {
		return
	}
	c.setState(StateOpen)
	c.haptics.Pulse(haptic.Light)
	c.bus.Publish(domain.SwipeRecognizedEvent{Direction: s.Direction.String(), Distance: s.Distance, Elapsed: s.Elapsed})
}

// syncBinding attaches the recognizer while touch capability is present and
// releases it otherwise. Swipe handlers are method values reading live
// controller state, so Open/Closed changes need no re-bind.
func (c *Controller) syncBinding() {
	if !c.mounted || !c.dev.HasTouch {
		if c.binding != nil {
			c.binding.Detach()
			c.binding = nil
		}
		return
	}
	if c.binding != nil {
		return
	}
	b, err := c.rec.Attach(Surface, gesture.Handlers{
		OnSwipeLeft:  c.onSwipeLeft,
		OnSwipeRight: c.onSwipeRight,
	})
	if err != nil {
		c.log.Warnf("gesture attach: %v", err)
		return
	}
	c.binding = b
}

func (c *Controller) setState(next State) {
	if c.state == next {
		return
	}
	c.state = next
	if next == StateOpen {
		c.bus.Publish(domain.DrawerOpenedEvent{})
	} else {
		c.bus.Publish(domain.DrawerClosedEvent{})
	}
}
