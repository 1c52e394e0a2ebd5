package ui

import (
	"time"

	"hearsay/internal/domain"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event domain.DomainEvent
}

// tickMsg is sent on a timer for animations
type tickMsg time.Time

// pagerDoneMsg is sent when the external transcript pager returns
type pagerDoneMsg struct {
	id  string
	err error
}

// clearStatusMsg clears the status line after a delay
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
