package adapters

import (
	"hearsay/internal/domain"
	"hearsay/internal/eventbus"
	"hearsay/internal/ui/logic"
	"hearsay/internal/ui/state"
)

// NavHostAdapter exposes AppState as the navigation controller's host. The
// controller stays free of UI types; everything it needs funnels through
// this adapter.
type NavHostAdapter struct {
	appState *state.AppState
	bus      eventbus.EventBus
}

// NewNavHostAdapter creates a new adapter
func NewNavHostAdapter(appState *state.AppState, bus eventbus.EventBus) *NavHostAdapter {
	return &NavHostAdapter{appState: appState, bus: bus}
}

// CurrentPage returns the page the UI is showing.
func (a *NavHostAdapter) CurrentPage() string {
	return a.appState.CurrentPage
}

// Notifications returns the unseen notification count for badges.
func (a *NavHostAdapter) Notifications() int {
	return a.appState.UnseenCount()
}

// IsProcessing reports whether transcription work is in flight.
func (a *NavHostAdapter) IsProcessing() bool {
	return a.appState.IsProcessing()
}

// Navigate switches the current page. Unknown ids are dropped; the
// controller forwards selections unvalidated.
func (a *NavHostAdapter) Navigate(pageID string) {
	if logic.PageIndex(pageID) < 0 {
		return
	}
	a.appState.CurrentPage = pageID
	if pageID == domain.PageLibrary && a.appState.UnseenCount() > 0 {
		a.appState.MarkNotificationsSeen()
		a.bus.Publish(domain.NotificationsSeenEvent{})
	}
}
