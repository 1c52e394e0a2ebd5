package device

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreakpointFor(t *testing.T) {
	t.Parallel()
	cases := []struct {
		width int
		want  Breakpoint
	}{
		{0, BreakpointXS},
		{79, BreakpointXS},
		{80, BreakpointSM},
		{99, BreakpointSM},
		{100, BreakpointMD},
		{119, BreakpointMD},
		{120, BreakpointLG},
		{139, BreakpointLG},
		{140, BreakpointXL},
		{200, BreakpointXL},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BreakpointFor(tc.width), "width %d", tc.width)
	}
}

func TestObserveNotifiesOnBoundaryCross(t *testing.T) {
	t.Parallel()
	p := NewProbe(true)

	var got []Info
	p.Subscribe(func(info Info) { got = append(got, info) })

	p.Observe(90, 30) // xs -> sm
	require.Len(t, got, 1)
	assert.Equal(t, BreakpointSM, got[0].Breakpoint)
	assert.True(t, got[0].IsMobile)

	p.Observe(130, 30) // sm -> lg
	require.Len(t, got, 2)
	assert.Equal(t, BreakpointLG, got[1].Breakpoint)
	assert.False(t, got[1].IsMobile)
}

func TestObserveCoalescesSubBreakpointResizes(t *testing.T) {
	t.Parallel()
	p := NewProbe(true)

	calls := 0
	p.Subscribe(func(Info) { calls++ })

	p.Observe(90, 30)
	require.Equal(t, 1, calls)

	// Still sm, still landscape: snapshot updates, no notification.
	p.Observe(95, 32)
	p.Observe(82, 28)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 82, p.Snapshot().Width)
}

func TestObserveNotifiesOnOrientationFlip(t *testing.T) {
	t.Parallel()
	p := NewProbe(false)

	var last Info
	calls := 0
	p.Subscribe(func(info Info) { calls++; last = info })

	p.Observe(90, 30)
	require.Equal(t, 1, calls)
	require.False(t, last.IsPortrait)

	// Same tier, flipped orientation.
	p.Observe(90, 95)
	require.Equal(t, 2, calls)
	assert.True(t, last.IsPortrait)
}

func TestSnapshotIsPureRead(t *testing.T) {
	t.Parallel()
	p := NewProbe(true)
	p.Observe(105, 40)

	a := p.Snapshot()
	b := p.Snapshot()
	assert.Equal(t, a, b)
	assert.Equal(t, BreakpointMD, a.Breakpoint)
	assert.False(t, a.IsMobile)
}

func TestSetTouchNotifiesOnChangeOnly(t *testing.T) {
	t.Parallel()
	p := NewProbe(true)

	calls := 0
	p.Subscribe(func(Info) { calls++ })

	p.SetTouch(true) // unchanged
	assert.Zero(t, calls)

	p.SetTouch(false)
	assert.Equal(t, 1, calls)
	assert.False(t, p.Snapshot().HasTouch)
}

func TestUnsubscribeIsImmediateAndIdempotent(t *testing.T) {
	t.Parallel()
	p := NewProbe(true)

	calls := 0
	unsub := p.Subscribe(func(Info) { calls++ })

	p.Observe(90, 30)
	require.Equal(t, 1, calls)

	unsub()
	unsub()

	p.Observe(130, 30)
	assert.Equal(t, 1, calls)
}

func TestUnsubscribeDuringNotifySuppressesLaterSubscriber(t *testing.T) {
	t.Parallel()
	p := NewProbe(true)

	var dropLater func()
	laterCalls := 0
	p.Subscribe(func(Info) { dropLater() })
	dropLater = p.Subscribe(func(Info) { laterCalls++ })

	p.Observe(90, 30)
	assert.Zero(t, laterCalls)
}
