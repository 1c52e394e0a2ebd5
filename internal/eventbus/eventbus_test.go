package eventbus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hearsay/internal/domain"
)

func TestPublishDeliversInSubscriptionOrder(t *testing.T) {
	t.Parallel()
	b := New()

	var got []int
	b.Subscribe(domain.EventPageSelected, func(domain.DomainEvent) { got = append(got, 1) })
	b.Subscribe(domain.EventPageSelected, func(domain.DomainEvent) { got = append(got, 2) })
	b.Subscribe(domain.EventPageSelected, func(domain.DomainEvent) { got = append(got, 3) })

	b.Publish(domain.PageSelectedEvent{PageID: domain.PageQueue})

	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestPublishIsSynchronous(t *testing.T) {
	t.Parallel()
	b := New()

	delivered := false
	b.Subscribe(domain.EventDrawerOpened, func(e domain.DomainEvent) {
		require.Equal(t, domain.EventDrawerOpened, e.Type())
		delivered = true
	})

	b.Publish(domain.DrawerOpenedEvent{})

	// No goroutines, no channels: the handler ran before Publish returned.
	assert.True(t, delivered)
}

func TestPublishOnlyMatchingType(t *testing.T) {
	t.Parallel()
	b := New()

	calls := 0
	b.Subscribe(domain.EventDrawerOpened, func(domain.DomainEvent) { calls++ })

	b.Publish(domain.DrawerClosedEvent{})
	b.Publish(domain.PageSelectedEvent{PageID: domain.PageLibrary})

	assert.Zero(t, calls)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	t.Parallel()
	b := New()

	calls := 0
	unsub := b.Subscribe(domain.EventDrawerOpened, func(domain.DomainEvent) { calls++ })

	b.Publish(domain.DrawerOpenedEvent{})
	require.Equal(t, 1, calls)

	unsub()
	b.Publish(domain.DrawerOpenedEvent{})
	assert.Equal(t, 1, calls)
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	t.Parallel()
	b := New()

	other := 0
	b.Subscribe(domain.EventDrawerOpened, func(domain.DomainEvent) { other++ })
	unsub := b.Subscribe(domain.EventDrawerOpened, func(domain.DomainEvent) { other++ })

	unsub()
	unsub()
	unsub()

	b.Publish(domain.DrawerOpenedEvent{})
	assert.Equal(t, 1, other)
}

func TestUnsubscribeDuringDispatchSuppressesLaterHandler(t *testing.T) {
	t.Parallel()
	b := New()

	var secondUnsub func()
	secondCalls := 0

	b.Subscribe(domain.EventDrawerOpened, func(domain.DomainEvent) {
		// Tear down the next subscriber mid-dispatch; it must not fire
		// for this event even though it was live when Publish began.
		secondUnsub()
	})
	secondUnsub = b.Subscribe(domain.EventDrawerOpened, func(domain.DomainEvent) { secondCalls++ })

	b.Publish(domain.DrawerOpenedEvent{})

	assert.Zero(t, secondCalls)
}

func TestSubscribeDuringDispatchDoesNotReceiveCurrentEvent(t *testing.T) {
	t.Parallel()
	b := New()

	lateCalls := 0
	b.Subscribe(domain.EventDrawerOpened, func(domain.DomainEvent) {
		b.Subscribe(domain.EventDrawerOpened, func(domain.DomainEvent) { lateCalls++ })
	})

	b.Publish(domain.DrawerOpenedEvent{})
	assert.Zero(t, lateCalls)

	b.Publish(domain.DrawerOpenedEvent{})
	assert.Equal(t, 1, lateCalls)
}
