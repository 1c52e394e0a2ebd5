package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeUpload
	ModeSearch
	ModeConfirm
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentPage() string
	CurrentIndex() int
	TotalItems() int
	SearchQuery() string
	DrawerVisible() bool
	SelectedAudioPath() string
	SelectedTranscriptID() string
	UploadDirty() bool
	SettingsDirty() bool
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// Enter is called when entering this mode
	Enter(ctx Context) []Action

	// Exit is called when leaving this mode
	Exit(ctx Context) []Action

	// Name returns the mode name for display
	Name() string
}

// DataReceiver is implemented by modes that take a payload on mode change
type DataReceiver interface {
	SetData(data interface{})
}

// ConfirmRequest parameterizes the confirm mode: the prompt to show and the
// action to emit when the user accepts.
type ConfirmRequest struct {
	Prompt string
	Accept Action
}
