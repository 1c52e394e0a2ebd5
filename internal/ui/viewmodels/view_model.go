package viewmodels

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"

	"hearsay/internal/device"
	"hearsay/internal/domain"
	"hearsay/internal/ui/state"
	"hearsay/internal/ui/views"
)

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	state            *state.AppState
	configPath       string
	width            int
	height           int
	device           device.Info
	drawerOpen       bool
	storedOpen       bool
	gestureBound     bool
	confirmPrompt    string
	inputTransformer *InputTransformer
}

// NewViewModel creates a new view model
func NewViewModel(appState *state.AppState, configPath string, textInput textinput.Model) *ViewModel {
	return &ViewModel{
		state:            appState,
		configPath:       configPath,
		inputTransformer: NewInputTransformer(textInput),
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
}

// SetDevice sets the current device snapshot
func (vm *ViewModel) SetDevice(info device.Info) {
	vm.device = info
}

// SetDrawer sets the drawer visibility: the effective value for the current
// device and the stored preference behind it.
func (vm *ViewModel) SetDrawer(effective, stored bool) {
	vm.drawerOpen = effective
	vm.storedOpen = stored
}

// SetGestureBound records whether swipe recognition is currently attached
func (vm *ViewModel) SetGestureBound(bound bool) {
	vm.gestureBound = bound
}

// SetConfirmPrompt sets the pending confirmation prompt, "" for none
func (vm *ViewModel) SetConfirmPrompt(prompt string) {
	vm.confirmPrompt = prompt
}

// SetInputMode sets the current input mode
func (vm *ViewModel) SetInputMode(mode InputMode) {
	vm.inputTransformer.SetMode(mode)
}

// UpdateTextInput updates the text input model
func (vm *ViewModel) UpdateTextInput(textInput textinput.Model) {
	vm.inputTransformer.textInput = textInput
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState() views.ViewState {
	s := vm.state
	return views.ViewState{
		Width:  vm.width,
		Height: vm.height,

		Breakpoint: vm.device.Breakpoint.String(),
		IsMobile:   vm.device.IsMobile,
		Touch:      vm.device.HasTouch,
		Portrait:   vm.device.IsPortrait,

		CurrentPage:  s.CurrentPage,
		Pages:        vm.buildPages(),
		DrawerOpen:   vm.drawerOpen,
		StoredOpen:   vm.storedOpen,
		GestureBound: vm.gestureBound,
		LastGesture:  s.LastGesture,

		AudioFiles: vm.orderedAudio(),
		Jobs:       vm.orderedJobs(),
		QueueIndex: s.QueueIndex,
		Scanning:   s.Scanning,

		UploadValue: s.UploadValue,
		UploadDirty: s.UploadDirty,
		UploadError: s.UploadError,

		Transcripts:  vm.visibleTranscripts(),
		LibraryIndex: s.LibraryIndex,
		SearchQuery:  s.SearchQuery,
		IsFiltered:   s.IsFiltered,

		Settings:      s.SettingsDraft,
		SettingsIndex: s.SettingsIndex,
		SettingsDirty: s.SettingsDirty(),
		ConfigPath:    vm.configPath,

		StatusMessage:    s.StatusMessage,
		IsProcessing:     s.IsProcessing(),
		RunningCount:     s.RunningCount(),
		UnseenCount:      s.UnseenCount(),
		ShowHints:        s.Settings.ShowHints,
		ShowHelp:         s.ShowHelp,
		HelpScrollOffset: s.HelpScrollOffset,
		ShowDebug:        s.ShowDebug,
		DebugEvents:      s.DebugEvents,
		InputMode:        vm.inputTransformer.GetInputModeString(),
		TextInput:        vm.inputTransformer.GetInputText(),
		ConfirmPrompt:    vm.confirmPrompt,
	}
}

// buildPages fills the page catalog badges from transient counters.
func (vm *ViewModel) buildPages() []domain.NavigationItem {
	items := domain.Pages()
	for i := range items {
		switch items[i].ID {
		case domain.PageQueue:
			if active := vm.activeJobs(); active > 0 {
				items[i].Badge = strconv.Itoa(active)
			}
		case domain.PageLibrary:
			if unseen := vm.state.UnseenCount(); unseen > 0 {
				items[i].Badge = strconv.Itoa(unseen)
			}
		case domain.PageSettings:
			if vm.state.SettingsDirty() {
				items[i].Badge = "*"
			}
		}
	}
	return items
}

func (vm *ViewModel) activeJobs() int {
	n := 0
	for _, job := range vm.state.Jobs {
		if !job.Terminal() {
			n++
		}
	}
	return n
}

func (vm *ViewModel) orderedAudio() []*domain.AudioFile {
	files := make([]*domain.AudioFile, 0, len(vm.state.OrderedAudio))
	for _, path := range vm.state.OrderedAudio {
		if f, ok := vm.state.AudioFiles[path]; ok {
			files = append(files, f)
		}
	}
	return files
}

func (vm *ViewModel) orderedJobs() []*domain.Job {
	jobs := make([]*domain.Job, 0, len(vm.state.OrderedJobs))
	for _, id := range vm.state.OrderedJobs {
		if j, ok := vm.state.Jobs[id]; ok {
			jobs = append(jobs, j)
		}
	}
	return jobs
}

func (vm *ViewModel) visibleTranscripts() []*domain.Transcript {
	ids := vm.state.VisibleTranscriptIDs()
	out := make([]*domain.Transcript, 0, len(ids))
	for _, id := range ids {
		if t, ok := vm.state.Transcripts[id]; ok {
			out = append(out, t)
		}
	}
	return out
}
