package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventAudioFound        EventType = "AudioFound"
	EventAudioRemoved      EventType = "AudioRemoved"
	EventScanStarted       EventType = "ScanStarted"
	EventScanCompleted     EventType = "ScanCompleted"
	EventScanRequested     EventType = "ScanRequested"
	EventJobRequested      EventType = "JobRequested"
	EventJobQueued         EventType = "JobQueued"
	EventJobStarted        EventType = "JobStarted"
	EventJobProgressed     EventType = "JobProgressed"
	EventJobCompleted      EventType = "JobCompleted"
	EventJobFailed         EventType = "JobFailed"
	EventTranscriptAdded   EventType = "TranscriptAdded"
	EventNotificationAdded EventType = "NotificationAdded"
	EventNotificationsSeen EventType = "NotificationsSeen"
	EventDrawerOpened      EventType = "DrawerOpened"
	EventDrawerClosed      EventType = "DrawerClosed"
	EventPageSelected      EventType = "PageSelected"
	EventSwipeRecognized   EventType = "SwipeRecognized"
	EventDeviceChanged     EventType = "DeviceChanged"
	EventError             EventType = "Error"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// AudioFoundEvent is emitted when an audio file appears in the inbox
type AudioFoundEvent struct {
	File AudioFile
}

func (e AudioFoundEvent) Type() EventType { return EventAudioFound }

// AudioRemovedEvent is emitted when an inbox file disappears
type AudioRemovedEvent struct {
	Path string
}

func (e AudioRemovedEvent) Type() EventType { return EventAudioRemoved }

// ScanStartedEvent is emitted when an inbox scan begins
type ScanStartedEvent struct {
	Root string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ScanCompletedEvent is emitted when an inbox scan finishes
type ScanCompletedEvent struct {
	FilesFound int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// ScanRequestedEvent asks the discovery service for a rescan
type ScanRequestedEvent struct {
	Root string
}

func (e ScanRequestedEvent) Type() EventType { return EventScanRequested }

// JobRequestedEvent asks the transcription service to queue a file
type JobRequestedEvent struct {
	Source string
}

func (e JobRequestedEvent) Type() EventType { return EventJobRequested }

// JobQueuedEvent is emitted when a job enters the queue
type JobQueuedEvent struct {
	Job Job
}

func (e JobQueuedEvent) Type() EventType { return EventJobQueued }

// JobStartedEvent is emitted when a worker picks up a job
type JobStartedEvent struct {
	JobID string
}

func (e JobStartedEvent) Type() EventType { return EventJobStarted }

// JobProgressedEvent carries engine progress for a running job
type JobProgressedEvent struct {
	JobID    string
	Progress float64
	Stage    string
}

func (e JobProgressedEvent) Type() EventType { return EventJobProgressed }

// JobCompletedEvent is emitted when a job finishes successfully
type JobCompletedEvent struct {
	JobID      string
	Transcript Transcript
}

func (e JobCompletedEvent) Type() EventType { return EventJobCompleted }

// JobFailedEvent is emitted when a job fails
type JobFailedEvent struct {
	JobID  string
	Reason string
}

func (e JobFailedEvent) Type() EventType { return EventJobFailed }

// TranscriptAddedEvent is emitted when the library persists a transcript
type TranscriptAddedEvent struct {
	Transcript Transcript
}

func (e TranscriptAddedEvent) Type() EventType { return EventTranscriptAdded }

// NotificationAddedEvent is emitted for host-level notifications
type NotificationAddedEvent struct {
	Notification Notification
}

func (e NotificationAddedEvent) Type() EventType { return EventNotificationAdded }

// NotificationsSeenEvent is emitted when the user views the library page
type NotificationsSeenEvent struct{}

func (e NotificationsSeenEvent) Type() EventType { return EventNotificationsSeen }

// DrawerOpenedEvent is emitted when the navigation drawer opens
type DrawerOpenedEvent struct{}

func (e DrawerOpenedEvent) Type() EventType { return EventDrawerOpened }

// DrawerClosedEvent is emitted when the navigation drawer closes
type DrawerClosedEvent struct{}

func (e DrawerClosedEvent) Type() EventType { return EventDrawerClosed }

// PageSelectedEvent is emitted after a completed catalog selection
type PageSelectedEvent struct {
	PageID string
}

func (e PageSelectedEvent) Type() EventType { return EventPageSelected }

// SwipeRecognizedEvent is emitted when a gesture classifies as a swipe
type SwipeRecognizedEvent struct {
	Direction string // "left" or "right"
	Distance  int
	Elapsed   time.Duration
}

func (e SwipeRecognizedEvent) Type() EventType { return EventSwipeRecognized }

// DeviceChangedEvent is emitted when the device probe reports a new snapshot
type DeviceChangedEvent struct {
	Breakpoint string
	IsMobile   bool
	IsPortrait bool
}

func (e DeviceChangedEvent) Type() EventType { return EventDeviceChanged }

// ErrorEvent is emitted when a background service hits an error
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
