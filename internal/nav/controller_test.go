package nav_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hearsay/internal/device"
	"hearsay/internal/domain"
	"hearsay/internal/eventbus"
	"hearsay/internal/gesture"
	"hearsay/internal/haptic"
	"hearsay/internal/nav"
)

type fakeHost struct {
	page       string
	notes      int
	processing bool
	navigated  []string
}

func (h *fakeHost) CurrentPage() string { return h.page }
func (h *fakeHost) Notifications() int { return h.notes }
func (h *fakeHost) IsProcessing() bool { return h.processing }
func (h *fakeHost) Navigate(id string) { h.navigated = append(h.navigated, id); h.page = id }

type fixture struct {
	probe *device.Probe
	rec   *gesture.Recognizer
	bus   eventbus.EventBus
	host  *fakeHost
	bell  *bytes.Buffer
	ctrl  *nav.Controller
}

func newFixture(width, height int, touch bool) *fixture {
	f := &fixture{
		probe: device.NewProbe(touch),
		rec:   gesture.NewRecognizer(),
		bus:   eventbus.New(),
		host:  &fakeHost{page: domain.PageQueue},
		bell:  &bytes.Buffer{},
	}
	f.probe.Observe(width, height)
	notifier := haptic.New(haptic.Config{Bell: true, Out: f.bell})
	f.ctrl = nav.NewController(domain.Pages(), f.host, f.probe, f.rec, notifier, f.bus)
	f.ctrl.Mount()
	return f
}

func (f *fixture) pulses() int {
	return strings.Count(f.bell.String(), "\a")
}

// swipe plays a press/release drag across the navigation surface.
func (f *fixture) swipe(dx int) {
	f.rec.Press(nav.Surface, 40, 12)
	f.rec.Release(nav.Surface, 40+dx, 12)
}

func TestToggleParity(t *testing.T) {
	t.Parallel()
	for n := 0; n <= 8; n++ {
		f := newFixture(90, 30, true)
		for i := 0; i < n; i++ {
			f.ctrl.Toggle()
		}
		want := nav.StateClosed
		if n%2 == 1 {
			want = nav.StateOpen
		}
		assert.Equal(t, want, f.ctrl.State(), "after %d toggles", n)
		assert.Equal(t, n, f.pulses(), "one light pulse per toggle")
	}
}

func TestSelectNotifiesHostOnceAndCloses(t *testing.T) {
	t.Parallel()
	f := newFixture(90, 30, true)
	f.ctrl.Toggle()
	require.Equal(t, nav.StateOpen, f.ctrl.State())

	f.ctrl.Select(domain.PageLibrary)

	assert.Equal(t, []string{domain.PageLibrary}, f.host.navigated)
	assert.Equal(t, nav.StateClosed, f.ctrl.State())
	assert.Equal(t, 2, f.pulses(), "toggle + select")
}

func TestSelectWhileClosedStillNotifies(t *testing.T) {
	t.Parallel()
	f := newFixture(90, 30, true)

	f.ctrl.Select(domain.PageSettings)

	assert.Equal(t, []string{domain.PageSettings}, f.host.navigated)
	assert.Equal(t, nav.StateClosed, f.ctrl.State())
}

func TestSelectForwardsUnknownIDUnchanged(t *testing.T) {
	t.Parallel()
	f := newFixture(90, 30, true)

	f.ctrl.Select("no-such-page")

	assert.Equal(t, []string{"no-such-page"}, f.host.navigated)
}

func TestSelectPublishesPageSelected(t *testing.T) {
	t.Parallel()
	f := newFixture(90, 30, true)

	var selected []string
	f.bus.Subscribe(domain.EventPageSelected, func(e domain.DomainEvent) {
		selected = append(selected, e.(domain.PageSelectedEvent).PageID)
	})

	f.ctrl.Select(domain.PageUpload)

	assert.Equal(t, []string{domain.PageUpload}, selected)
}

func TestOutsideInteractionDismissesOpenDrawer(t *testing.T) {
	t.Parallel()
	f := newFixture(90, 30, true)
	f.ctrl.Toggle()

	before := f.pulses()
	f.ctrl.OutsideInteraction(nav.Target{})

	assert.Equal(t, nav.StateClosed, f.ctrl.State())
	assert.Equal(t, before, f.pulses(), "outside dismissal does not pulse")
}

func TestOutsideInteractionInsideDrawerKeepsOpen(t *testing.T) {
	t.Parallel()
	f := newFixture(90, 30, true)
	f.ctrl.Toggle()

	f.ctrl.OutsideInteraction(nav.Target{InDrawer: true})
	assert.Equal(t, nav.StateOpen, f.ctrl.State())
}

func TestOutsideInteractionOnToggleTriggerKeepsOpen(t *testing.T) {
	t.Parallel()
	f := newFixture(90, 30, true)
	f.ctrl.Toggle()

	// The toggle press that opened the drawer also lands here; ignoring it
	// prevents an immediate re-close racing the open.
	f.ctrl.OutsideInteraction(nav.Target{InToggle: true})
	assert.Equal(t, nav.StateOpen, f.ctrl.State())
}

func TestOutsideInteractionWhileClosedIsNoOp(t *testing.T) {
	t.Parallel()
	f := newFixture(90, 30, true)

	f.ctrl.OutsideInteraction(nav.Target{})

	assert.Equal(t, nav.StateClosed, f.ctrl.State())
	assert.Zero(t, f.pulses())
	assert.Empty(t, f.host.navigated)
}

func TestSwipeRightOpensOnMobile(t *testing.T) {
	t.Parallel()
	f := newFixture(90, 30, true)

	f.swipe(gesture.MinDistance * 2)

	assert.Equal(t, nav.StateOpen, f.ctrl.State())
	assert.Equal(t, 1, f.pulses())
}

func TestSwipeLeftClosesOpenDrawer(t *testing.T) {
	t.Parallel()
	f := newFixture(90, 30, true)
	f.ctrl.Toggle()

	f.swipe(-gesture.MinDistance * 2)

	assert.Equal(t, nav.StateClosed, f.ctrl.State())
}

func TestSwipeLeftWhileClosedIsNoOp(t *testing.T) {
	t.Parallel()
	f := newFixture(90, 30, true)

	f.swipe(-gesture.MinDistance * 2)

	assert.Equal(t, nav.StateClosed, f.ctrl.State())
	assert.Zero(t, f.pulses())
}

func TestSwipeRightIgnoredOnDesktop(t *testing.T) {
	t.Parallel()
	f := newFixture(130, 30, true)
	require.False(t, f.ctrl.Device().IsMobile)

	f.swipe(gesture.MinDistance * 2)

	assert.Equal(t, nav.StateClosed, f.ctrl.State())
	assert.Zero(t, f.pulses())
}

func TestShortSwipeBelowThresholdDoesNothing(t *testing.T) {
	t.Parallel()
	f := newFixture(90, 30, true)

	f.swipe(gesture.MinDistance - 1)

	assert.Equal(t, nav.StateClosed, f.ctrl.State())
}

func TestSwipePublishesRecognitionEvent(t *testing.T) {
	t.Parallel()
	f := newFixture(90, 30, true)

	var dirs []string
	f.bus.Subscribe(domain.EventSwipeRecognized, func(e domain.DomainEvent) {
		dirs = append(dirs, e.(domain.SwipeRecognizedEvent).Direction)
	})

	f.swipe(gesture.MinDistance * 2) // opens
	f.swipe(-gesture.MinDistance * 2) // closes

	assert.Equal(t, []string{"right", "left"}, dirs)
}

func TestNoTouchNeverAttaches(t *testing.T) {
	t.Parallel()
	f := newFixture(90, 30, false)

	assert.False(t, f.ctrl.GestureBound())

	// A simulated drag hits no binding and changes nothing.
	f.swipe(gesture.MinDistance * 3)
	assert.Equal(t, nav.StateClosed, f.ctrl.State())
}

func TestTouchCapabilityChangeRebinds(t *testing.T) {
	t.Parallel()
	f := newFixture(90, 30, false)
	require.False(t, f.ctrl.GestureBound())

	f.probe.SetTouch(true)
	assert.True(t, f.ctrl.GestureBound())

	f.probe.SetTouch(false)
	assert.False(t, f.ctrl.GestureBound())

	f.swipe(gesture.MinDistance * 2)
	assert.Equal(t, nav.StateClosed, f.ctrl.State())
}

func TestDesktopActsAlwaysVisiblePreservingFlag(t *testing.T) {
	t.Parallel()
	f := newFixture(90, 30, true) // sm
	f.ctrl.Toggle()
	require.True(t, f.ctrl.IsOpen())

	f.probe.Observe(130, 30) // -> lg
	assert.True(t, f.ctrl.EffectiveOpen(), "desktop renders navigation regardless of the flag")
	assert.True(t, f.ctrl.IsOpen(), "stored flag survives the excursion")

	f.probe.Observe(90, 30) // back to sm
	assert.True(t, f.ctrl.IsOpen(), "round trip restores the pre-transition value")
	assert.True(t, f.ctrl.EffectiveOpen())
}

func TestDesktopAlwaysVisibleWhenFlagClosed(t *testing.T) {
	t.Parallel()
	f := newFixture(130, 30, true)

	assert.False(t, f.ctrl.IsOpen())
	assert.True(t, f.ctrl.EffectiveOpen())
}

func TestUnmountReleasesBindingAndSubscription(t *testing.T) {
	t.Parallel()
	f := newFixture(90, 30, true)
	require.True(t, f.ctrl.GestureBound())

	f.ctrl.Unmount()

	assert.False(t, f.ctrl.GestureBound())
	assert.False(t, f.rec.Bound(nav.Surface))

	// Device changes no longer reach the controller.
	f.probe.Observe(130, 30)
	assert.True(t, f.ctrl.Device().IsMobile, "snapshot frozen at unmount")

	// Gesture events hit nothing.
	f.swipe(gesture.MinDistance * 2)
	assert.Equal(t, nav.StateClosed, f.ctrl.State())
}

func TestUnmountIsIdempotentAndRemountWorks(t *testing.T) {
	t.Parallel()
	f := newFixture(90, 30, true)

	f.ctrl.Unmount()
	f.ctrl.Unmount()

	f.ctrl.Mount()
	assert.True(t, f.ctrl.GestureBound())

	f.swipe(gesture.MinDistance * 2)
	assert.Equal(t, nav.StateOpen, f.ctrl.State())
}

func TestDrawerEventsPublishedOnTransitions(t *testing.T) {
	t.Parallel()
	f := newFixture(90, 30, true)

	var trace []domain.EventType
	record := func(e domain.DomainEvent) { trace = append(trace, e.Type()) }
	f.bus.Subscribe(domain.EventDrawerOpened, record)
	f.bus.Subscribe(domain.EventDrawerClosed, record)

	f.ctrl.Toggle()
	f.ctrl.Toggle()
	f.ctrl.OutsideInteraction(nav.Target{}) // closed already: no event

	assert.Equal(t, []domain.EventType{domain.EventDrawerOpened, domain.EventDrawerClosed}, trace)
}
