package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

type SelectPageAction struct {
	Page string
}

func (a SelectPageAction) Type() string { return "select_page" }

type CyclePageAction struct {
	Delta int // +1 next page, -1 previous page
}

func (a CyclePageAction) Type() string { return "cycle_page" }

// ConfirmNavigateAction completes a page switch that was held back by the
// unsaved-input guard. The model keeps the destination in PendingPage.
type ConfirmNavigateAction struct{}

func (a ConfirmNavigateAction) Type() string { return "confirm_navigate" }

type ToggleDrawerAction struct{}

func (a ToggleDrawerAction) Type() string { return "toggle_drawer" }

// DismissAction closes the topmost transient surface (help, debug overlay,
// open drawer, active filter), resolved by the model in that order.
type DismissAction struct{}

func (a DismissAction) Type() string { return "dismiss" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Queue actions
type EnqueueAction struct {
	Path string
}

func (a EnqueueAction) Type() string { return "enqueue" }

type RescanAction struct{}

func (a RescanAction) Type() string { return "rescan" }

// Library actions
type OpenTranscriptAction struct {
	ID string
}

func (a OpenTranscriptAction) Type() string { return "open_transcript" }

type RemoveTranscriptAction struct {
	ID string
}

func (a RemoveTranscriptAction) Type() string { return "remove_transcript" }

// Settings actions
type ToggleSettingAction struct {
	Index int
}

func (a ToggleSettingAction) Type() string { return "toggle_setting" }

type SaveSettingsAction struct{}

func (a SaveSettingsAction) Type() string { return "save_settings" }

// Overlay actions
type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ToggleDebugAction struct{}

func (a ToggleDebugAction) Type() string { return "toggle_debug" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
