//go:build property
// +build property

package nav_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"hearsay/internal/domain"
	"hearsay/internal/gesture"
	"hearsay/internal/nav"
)

// TestControllerProperties checks drawer state-machine invariants over
// generated event sequences.
func TestControllerProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("toggle parity", prop.ForAll(
		func(n int) bool {
			f := newFixture(90, 30, true)
			for i := 0; i < n; i++ {
				f.ctrl.Toggle()
			}
			if n%2 == 0 {
				return f.ctrl.State() == nav.StateClosed
			}
			return f.ctrl.State() == nav.StateOpen
		},
		gen.IntRange(0, 200),
	))

	properties.Property("select closes and notifies exactly once", prop.ForAll(
		func(idx int, openFirst bool) bool {
			f := newFixture(90, 30, true)
			if openFirst {
				f.ctrl.Toggle()
			}
			items := f.ctrl.Items()
			id := items[idx%len(items)].ID
			f.ctrl.Select(id)
			return f.ctrl.State() == nav.StateClosed &&
				len(f.host.navigated) == 1 &&
				f.host.navigated[0] == id
		},
		gen.IntRange(0, 16),
		gen.Bool(),
	))

	properties.Property("event sequences match a reference fold", prop.ForAll(
		func(ops []int) bool {
			f := newFixture(90, 30, true)
			open := false
			selects := 0
			for _, op := range ops {
				switch op % 5 {
				case 0:
					f.ctrl.Toggle()
					open = !open
				case 1:
					f.ctrl.Select(domain.PageLibrary)
					open = false
					selects++
				case 2:
					f.ctrl.OutsideInteraction(nav.Target{})
					open = false
				case 3:
					f.swipe(gesture.MinDistance * 2) // right: opens only when closed
					open = true
				case 4:
					f.swipe(-gesture.MinDistance * 2) // left: closes only when open
					open = false
				}
			}
			got := f.ctrl.State() == nav.StateOpen
			return got == open && len(f.host.navigated) == selects
		},
		gen.SliceOf(gen.IntRange(0, 4)),
	))

	properties.TestingRun(t)
}
