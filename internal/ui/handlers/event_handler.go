package handlers

import (
	"fmt"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hearsay/internal/domain"
	"hearsay/internal/ui/logic"
	"hearsay/internal/ui/state"
)

// TickMsg is a tick message for animations
type TickMsg time.Time

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{
		state: appState,
	}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event domain.DomainEvent) tea.Cmd {
	if desc := describe(event); desc != "" {
		h.state.PushDebugEvent(time.Now().Format("15:04:05") + " " + desc)
	}

	switch e := event.(type) {
	case domain.AudioFoundEvent:
		file := e.File
		h.state.AddAudioFile(&file)

	case domain.AudioRemovedEvent:
		h.state.RemoveAudioFile(e.Path)
		total := len(h.state.OrderedAudio) + len(h.state.OrderedJobs)
		h.state.QueueIndex = logic.Clamp(h.state.QueueIndex, total)

	case domain.ScanStartedEvent:
		h.state.Scanning = true
		h.state.StatusMessage = "Scanning inbox..."
		return tick()

	case domain.ScanCompletedEvent:
		h.state.Scanning = false
		h.state.StatusMessage = fmt.Sprintf("Scan complete. %d audio files.", e.FilesFound)

	case domain.JobQueuedEvent:
		job := e.Job
		h.state.UpsertJob(&job)
		h.state.StatusMessage = "Queued " + filepath.Base(job.Source)

	case domain.JobStartedEvent:
		h.state.SetJobRunning(e.JobID)
		return tick()

	case domain.JobProgressedEvent:
		h.state.SetJobProgress(e.JobID, e.Progress, e.Stage)

	case domain.JobCompletedEvent:
		h.state.SetJobDone(e.JobID)
		h.state.StatusMessage = "Transcribed " + e.Transcript.Title

	case domain.JobFailedEvent:
		h.state.SetJobFailed(e.JobID, e.Reason)
		h.state.StatusMessage = "Transcription failed: " + e.Reason

	case domain.TranscriptAddedEvent:
		t := e.Transcript
		h.state.AddTranscript(&t)

	case domain.NotificationAddedEvent:
		n := e.Notification
		h.state.AddNotification(&n)

	case domain.NotificationsSeenEvent:
		h.state.MarkNotificationsSeen()

	case domain.SwipeRecognizedEvent:
		h.state.LastGesture = fmt.Sprintf("swipe-%s (%d cols, %dms)", e.Direction, e.Distance, e.Elapsed.Milliseconds())

	case domain.ErrorEvent:
		h.state.StatusMessage = "Error: " + e.Message

	case domain.ConfigSavedEvent:
		h.state.StatusMessage = "Settings saved"
	}

	return nil
}

// tick drives the header spinner while background work runs.
func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// describe renders an event for the debug inspector ring. Progress events
// are left out so they do not flush everything else from the ring.
func describe(event domain.DomainEvent) string {
	switch e := event.(type) {
	case domain.AudioFoundEvent:
		return "audio found: " + e.File.Name
	case domain.AudioRemovedEvent:
		return "audio removed: " + filepath.Base(e.Path)
	case domain.ScanStartedEvent:
		return "scan started: " + e.Root
	case domain.ScanCompletedEvent:
		return fmt.Sprintf("scan done: %d files", e.FilesFound)
	case domain.JobQueuedEvent:
		return "job queued: " + filepath.Base(e.Job.Source)
	case domain.JobStartedEvent:
		return "job started: " + shortID(e.JobID)
	case domain.JobProgressedEvent:
		return ""
	case domain.JobCompletedEvent:
		return "job done: " + e.Transcript.Title
	case domain.JobFailedEvent:
		return "job failed: " + e.Reason
	case domain.TranscriptAddedEvent:
		return "transcript added: " + e.Transcript.Title
	case domain.SwipeRecognizedEvent:
		return fmt.Sprintf("swipe %s: %d cols in %dms", e.Direction, e.Distance, e.Elapsed.Milliseconds())
	case domain.DeviceChangedEvent:
		return "device: " + e.Breakpoint
	case domain.DrawerOpenedEvent:
		return "drawer opened"
	case domain.DrawerClosedEvent:
		return "drawer closed"
	case domain.PageSelectedEvent:
		return "page selected: " + e.PageID
	case domain.ErrorEvent:
		return "error: " + e.Message
	case domain.ConfigLoadedEvent:
		return "config loaded"
	case domain.ConfigSavedEvent:
		return "config saved"
	default:
		return string(event.Type())
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
