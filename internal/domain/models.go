package domain

import "time"

// AudioFile represents an audio file found in the inbox directory
type AudioFile struct {
	Path    string
	Name    string
	Ext     string // lowercase, includes the dot
	Size    int64
	ModTime time.Time
}

// JobState represents the lifecycle state of a transcription job
type JobState string

const (
	JobQueued  JobState = "queued"
	JobRunning JobState = "running"
	JobDone    JobState = "done"
	JobFailed  JobState = "failed"
)

// Job represents a single transcription job in the queue
type Job struct {
	ID        string
	Source    string // audio file path
	State     JobState
	Progress  float64 // 0..1, only meaningful while running
	Stage     string  // engine-reported stage ("loading model", "decoding", ...)
	Error     string  // failure reason if State == JobFailed
	QueuedAt  time.Time
	StartedAt time.Time
	DoneAt    time.Time
}

// Terminal reports whether the job has reached a final state.
func (j *Job) Terminal() bool {
	return j.State == JobDone || j.State == JobFailed
}

// Transcript represents a completed transcription stored in the library
type Transcript struct {
	ID        string
	Title     string
	Source    string // original audio file path
	Path      string // transcript text file path
	Language  string
	Duration  time.Duration // audio duration if the engine reported it
	Words     int
	CreatedAt time.Time
}

// NotificationKind classifies a notification for badge styling
type NotificationKind string

const (
	NotifyInfo    NotificationKind = "info"
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is a transient host-level message surfaced as a badge count
type Notification struct {
	ID   string
	Kind NotificationKind
	Text string
	At   time.Time
	Seen bool
}

// NavigationItem is one entry in the static page catalog.
// Badge is derived per render from transient counters and never persisted.
type NavigationItem struct {
	ID    string
	Label string
	Desc  string
	Badge string
}

// Page identifiers for the navigation catalog
const (
	PageQueue    = "queue"
	PageUpload   = "upload"
	PageLibrary  = "library"
	PageSettings = "settings"
)

// Pages returns the ordered navigation catalog.
func Pages() []NavigationItem {
	return []NavigationItem{
		{ID: PageQueue, Label: "Queue", Desc: "Pending and running transcription jobs"},
		{ID: PageUpload, Label: "Upload", Desc: "Queue an audio file by path"},
		{ID: PageLibrary, Label: "Library", Desc: "Completed transcripts"},
		{ID: PageSettings, Label: "Settings", Desc: "Configuration"},
	}
}
