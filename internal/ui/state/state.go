package state

import (
	"hearsay/internal/config"
	"hearsay/internal/domain"
	"hearsay/internal/ui/logic"
)

// debugRingSize bounds the recent-event buffer shown in the debug overlay.
const debugRingSize = 50

// AppState contains all the application state
type AppState struct {
	// Page state
	CurrentPage string // one of domain.Page*
	PendingPage string // navigation target awaiting confirmation, "" if none

	// Inbox data
	AudioFiles   map[string]*domain.AudioFile // path -> file
	OrderedAudio []string                     // ordered paths for display

	// Queue data
	Jobs        map[string]*domain.Job // id -> job
	OrderedJobs []string               // queue order

	// Library data
	Transcripts        map[string]*domain.Transcript // id -> transcript
	OrderedTranscripts []string                      // newest first

	// Notifications
	Notifications []*domain.Notification

	// Cursor per page list
	QueueIndex    int
	LibraryIndex  int
	SettingsIndex int

	// Operation states
	Scanning bool

	// UI state
	ShowHelp         bool
	HelpScrollOffset int
	ShowDebug        bool
	DebugEvents      []string // ring buffer of recent bus events
	StatusMessage    string
	LastGesture      string // debug overlay: last classified swipe

	// Upload form state
	UploadValue string
	UploadDirty bool
	UploadError string

	// Search state (library page)
	SearchQuery string
	IsFiltered  bool

	// Settings: active values and the draft being edited on the page
	Settings      config.UISettings
	SettingsDraft config.UISettings
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		CurrentPage:   domain.PageQueue,
		AudioFiles:    make(map[string]*domain.AudioFile),
		OrderedAudio:  make([]string, 0),
		Jobs:          make(map[string]*domain.Job),
		OrderedJobs:   make([]string, 0),
		Transcripts:   make(map[string]*domain.Transcript),
		Notifications: make([]*domain.Notification, 0),
		DebugEvents:   make([]string, 0, debugRingSize),
	}
}

// Audio operations

// AddAudioFile adds or updates a discovered audio file.
func (s *AppState) AddAudioFile(file *domain.AudioFile) {
	if file == nil {
		return
	}
	if _, known := s.AudioFiles[file.Path]; !known {
		s.OrderedAudio = append(s.OrderedAudio, file.Path)
	}
	s.AudioFiles[file.Path] = file
	logic.SortAudioPaths(s.OrderedAudio, s.AudioFiles)
}

// RemoveAudioFile removes an audio file that disappeared from the inbox.
func (s *AppState) RemoveAudioFile(path string) {
	if _, known := s.AudioFiles[path]; !known {
		return
	}
	delete(s.AudioFiles, path)
	ordered := make([]string, 0, len(s.OrderedAudio))
	for _, p := range s.OrderedAudio {
		if p != path {
			ordered = append(ordered, p)
		}
	}
	s.OrderedAudio = ordered
}

// Job operations

// UpsertJob adds a job or replaces an existing one, keeping queue order.
func (s *AppState) UpsertJob(job *domain.Job) {
	if job == nil {
		return
	}
	if _, known := s.Jobs[job.ID]; !known {
		s.OrderedJobs = append(s.OrderedJobs, job.ID)
	}
	s.Jobs[job.ID] = job
}

// SetJobRunning marks a job as picked up by a worker.
func (s *AppState) SetJobRunning(id string) {
	if job, ok := s.Jobs[id]; ok {
		job.State = domain.JobRunning
	}
}

// SetJobProgress applies an engine progress update.
func (s *AppState) SetJobProgress(id string, progress float64, stage string) {
	if job, ok := s.Jobs[id]; ok {
		job.Progress = progress
		job.Stage = stage
	}
}

// SetJobDone marks a job as completed.
func (s *AppState) SetJobDone(id string) {
	if job, ok := s.Jobs[id]; ok {
		job.State = domain.JobDone
		job.Progress = 1
		job.Stage = "done"
	}
}

// SetJobFailed marks a job as failed.
func (s *AppState) SetJobFailed(id, reason string) {
	if job, ok := s.Jobs[id]; ok {
		job.State = domain.JobFailed
		job.Error = reason
	}
}

// IsProcessing reports whether any job is queued or running.
func (s *AppState) IsProcessing() bool {
	for _, job := range s.Jobs {
		if !job.Terminal() {
			return true
		}
	}
	return false
}

// RunningCount returns the number of jobs currently running.
func (s *AppState) RunningCount() int {
	n := 0
	for _, job := range s.Jobs {
		if job.State == domain.JobRunning {
			n++
		}
	}
	return n
}

// Transcript operations

// AddTranscript indexes a transcript, keeping newest-first order.
func (s *AppState) AddTranscript(t *domain.Transcript) {
	if t == nil {
		return
	}
	if _, known := s.Transcripts[t.ID]; !known {
		s.OrderedTranscripts = append(s.OrderedTranscripts, t.ID)
	}
	s.Transcripts[t.ID] = t
	logic.SortTranscriptIDs(s.OrderedTranscripts, s.Transcripts)
}

// VisibleTranscriptIDs returns the transcripts shown on the library page
// with the active search query applied.
func (s *AppState) VisibleTranscriptIDs() []string {
	return logic.NewSearchFilter(s.Transcripts).VisibleIDs(s.OrderedTranscripts, s.SearchQuery)
}

// RemoveTranscript drops a transcript from the index.
func (s *AppState) RemoveTranscript(id string) {
	if _, known := s.Transcripts[id]; !known {
		return
	}
	delete(s.Transcripts, id)
	ordered := make([]string, 0, len(s.OrderedTranscripts))
	for _, tid := range s.OrderedTranscripts {
		if tid != id {
			ordered = append(ordered, tid)
		}
	}
	s.OrderedTranscripts = ordered
}

// Notification operations

// AddNotification appends a notification.
func (s *AppState) AddNotification(n *domain.Notification) {
	if n != nil {
		s.Notifications = append(s.Notifications, n)
	}
}

// MarkNotificationsSeen clears the unseen badge.
func (s *AppState) MarkNotificationsSeen() {
	for _, n := range s.Notifications {
		n.Seen = true
	}
}

// UnseenCount returns the number of unseen notifications.
func (s *AppState) UnseenCount() int {
	n := 0
	for _, note := range s.Notifications {
		if !note.Seen {
			n++
		}
	}
	return n
}

// Settings operations

// SetSettings installs active settings and resets the draft to match.
func (s *AppState) SetSettings(ui config.UISettings) {
	s.Settings = ui
	s.SettingsDraft = ui
}

// SettingsDirty reports whether the draft differs from the active settings.
func (s *AppState) SettingsDirty() bool {
	return s.SettingsDraft != s.Settings
}

// Debug overlay

// PushDebugEvent records a bus event description in the ring buffer.
func (s *AppState) PushDebugEvent(desc string) {
	s.DebugEvents = append(s.DebugEvents, desc)
	if len(s.DebugEvents) > debugRingSize {
		s.DebugEvents = s.DebugEvents[len(s.DebugEvents)-debugRingSize:]
	}
}
