package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/sirupsen/logrus"

	"hearsay/internal/config"
	"hearsay/internal/device"
	"hearsay/internal/discovery"
	"hearsay/internal/domain"
	"hearsay/internal/eventbus"
	"hearsay/internal/gesture"
	"hearsay/internal/haptic"
	"hearsay/internal/library"
	"hearsay/internal/logging"
	"hearsay/internal/nav"
	"hearsay/internal/ui/adapters"
	"hearsay/internal/ui/handlers"
	"hearsay/internal/ui/input"
	inputtypes "hearsay/internal/ui/input/types"
	"hearsay/internal/ui/logic"
	"hearsay/internal/ui/state"
	"hearsay/internal/ui/viewmodels"
	"hearsay/internal/ui/views"
)

const listPageSize = 10

// settingsRows is the number of toggle rows on the settings page.
const settingsRows = 4

// Model represents the UI state
type Model struct {
	bus           eventbus.EventBus
	config        *config.Config
	configService config.Service
	state         *state.AppState // centralized state

	// UI-specific state not in AppState
	width       int
	height      int
	inPagerMode bool // tracks if we're currently in pager mode

	// Pointer tracking for tap vs drag resolution
	pressed bool
	pressX  int
	pressY  int

	// Device and navigation services
	probe      *device.Probe
	recognizer *gesture.Recognizer
	haptics    *haptic.Notifier
	nav        *nav.Controller

	// Handlers
	renderer     *views.Renderer        // view renderer
	eventHandler *handlers.EventHandler // event processing handler
	viewModel    *viewmodels.ViewModel  // view model for rendering
	inputHandler *input.Handler         // input handling
	library      library.Store          // transcript store for pager and delete
	pagerOps     *PagerOps              // external pager handler

	// Program reference for terminal management
	program *tea.Program

	log *logrus.Entry
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, cfgService config.Service, lib library.Store, probe *device.Probe, rec *gesture.Recognizer, haptics *haptic.Notifier) *Model {
	appState := state.NewAppState()
	appState.SetSettings(cfg.UI)

	// Seed the library page from transcripts already on disk
	for _, t := range lib.List() {
		appState.AddTranscript(t)
	}

	m := &Model{
		bus:           bus,
		config:        cfg,
		configService: cfgService,
		state:         appState,
		probe:         probe,
		recognizer:    rec,
		haptics:       haptics,
		renderer:      views.NewRenderer(),
		inputHandler:  input.New(),
		library:       lib,
		pagerOps:      NewPagerOps(),
		log:           logging.NewLogger("ui"),
	}

	// Create event handler
	m.eventHandler = handlers.NewEventHandler(appState)

	// Create navigation controller over the page catalog
	host := adapters.NewNavHostAdapter(appState, bus)
	m.nav = nav.NewController(domain.Pages(), host, probe, rec, haptics, bus)

	// Create view model with a placeholder text input (actual one is in input handler)
	placeholderTextInput := textinput.New()
	m.viewModel = viewmodels.NewViewModel(appState, cfgService.Path(), placeholderTextInput)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	if m.pagerOps != nil {
		m.pagerOps.SetProgram(p)
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	m.nav.Mount()
	return tick()
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		before := m.probe.Snapshot()
		m.probe.Observe(msg.Width, msg.Height)
		if after := m.probe.Snapshot(); after != before {
			m.bus.Publish(domain.DeviceChangedEvent{
				Breakpoint: after.Breakpoint.String(),
				IsMobile:   after.IsMobile,
				IsPortrait: after.IsPortrait,
			})
		}

	case tea.KeyMsg:
		// Handle help/debug popups first
		if m.state.ShowHelp {
			switch msg.String() {
			case "esc", "?", "q":
				m.state.ShowHelp = false
				m.state.HelpScrollOffset = 0
			case "j", "down":
				m.state.HelpScrollOffset++
			case "k", "up":
				if m.state.HelpScrollOffset > 0 {
					m.state.HelpScrollOffset--
				}
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		if m.state.ShowDebug {
			switch msg.String() {
			case "esc", "`", "q":
				m.state.ShowDebug = false
			case "ctrl+c":
				return m, tea.Quit
			}
			return m, nil
		}

		// Create context for input handler
		ctx := &input.ModelContext{
			State: m.state,
			Nav:   m.nav,
		}

		// Handle input through the mode handler
		actions, cmd := m.inputHandler.HandleKey(msg, ctx)

		// Process actions
		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}

		statusBefore := m.state.StatusMessage
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		if m.state.StatusMessage != "" && m.state.StatusMessage != statusBefore {
			cmds = append(cmds, clearStatusAfter())
		}

		// Update text input in view model if in text mode
		if m.inputHandler.TextInput() != nil {
			m.viewModel.UpdateTextInput(*m.inputHandler.TextInput())
		}

		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	default:
		// Handle non-keyboard messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			if m.inputHandler.TextInput() != nil {
				m.viewModel.UpdateTextInput(*m.inputHandler.TextInput())
			}
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}

	return m, nil
}

// handleMouse feeds pointer events to the gesture recognizer and resolves
// taps against the zones marked during the last render.
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m.processAction(inputtypes.NavigateAction{Direction: "up"})
		case tea.MouseButtonWheelDown:
			return m.processAction(inputtypes.NavigateAction{Direction: "down"})
		case tea.MouseButtonLeft:
		default:
			return nil
		}

		// A click dismisses informational popups; the confirm prompt is
		// keyboard-only.
		if m.state.ShowHelp || m.state.ShowDebug {
			m.state.ShowHelp = false
			m.state.ShowDebug = false
			return nil
		}
		if m.inputHandler.CurrentMode() == inputtypes.ModeConfirm {
			return nil
		}

		m.pressed = true
		m.pressX = msg.X
		m.pressY = msg.Y
		m.recognizer.Press(nav.Surface, msg.X, msg.Y)

	case tea.MouseActionMotion:
		if m.pressed {
			m.recognizer.Move(nav.Surface, msg.X, msg.Y)
		}

	case tea.MouseActionRelease:
		if !m.pressed {
			return nil
		}
		m.pressed = false

		// Release may classify a swipe; the controller reacts through its
		// gesture binding before we get here.
		m.recognizer.Release(nav.Surface, msg.X, msg.Y)

		// Anything that moved more than a cell was a drag, not a tap.
		if abs(msg.X-m.pressX) > 1 || abs(msg.Y-m.pressY) > 1 {
			return nil
		}
		m.handleTap(msg)
	}

	return nil
}

// handleTap resolves a left-button tap against the marked hit zones.
func (m *Model) handleTap(msg tea.MouseMsg) {
	if zone.Get(views.ZoneToggle).InBounds(msg) {
		m.nav.Toggle()
		return
	}

	for _, item := range domain.Pages() {
		if zone.Get(views.ZoneItem(item.ID)).InBounds(msg) {
			m.selectPage(item.ID)
			return
		}
	}

	// No interactive zone hit: let the controller decide whether this
	// counts as an outside interaction.
	m.nav.OutsideInteraction(nav.Target{
		InDrawer: zone.Get(views.ZoneDrawer).InBounds(msg),
		InToggle: false,
	})
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	// Update view model with current UI state
	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.SetDevice(m.probe.Snapshot())
	m.viewModel.SetDrawer(m.nav.EffectiveOpen(), m.nav.IsOpen())
	m.viewModel.SetGestureBound(m.nav.GestureBound())
	m.viewModel.SetConfirmPrompt(m.inputHandler.ConfirmPrompt())

	// Convert input.Mode to viewmodels.InputMode
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModeUpload:
		m.viewModel.SetInputMode(viewmodels.InputModeUpload)
	case inputtypes.ModeSearch:
		m.viewModel.SetInputMode(viewmodels.InputModeSearch)
	case inputtypes.ModeConfirm:
		m.viewModel.SetInputMode(viewmodels.InputModeConfirm)
	default:
		m.viewModel.SetInputMode(viewmodels.InputModeNormal)
	}

	if ti := m.inputHandler.TextInput(); ti != nil {
		m.viewModel.UpdateTextInput(*ti)
	}

	// Build view state and render; Scan strips the zone markers and records
	// the hit boxes for mouse resolution.
	viewState := m.viewModel.BuildViewState()
	return zone.Scan(m.renderer.Render(viewState))
}

// openTranscriptPager returns a command that shows a transcript using ov
func (m *Model) openTranscriptPager(id string) tea.Cmd {
	transcript, ok := m.state.Transcripts[id]
	if !ok {
		return nil
	}

	body, err := m.library.Body(id)
	if err != nil {
		m.log.Warnf("read transcript %s: %v", id, err)
		m.state.StatusMessage = fmt.Sprintf("Error reading transcript: %v", err)
		return nil
	}

	header := fmt.Sprintf("%s\n%s · %d words\n\n", transcript.Title,
		transcript.CreatedAt.Format("2006-01-02 15:04"), transcript.Words)
	content := header + body

	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pagerOps.ShowText(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return pagerDoneMsg{
			id:  id,
			err: err,
		}
	}
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.SelectPageAction:
		m.selectPage(a.Page)

	case inputtypes.CyclePageAction:
		m.selectPage(logic.CyclePage(m.state.CurrentPage, a.Delta))

	case inputtypes.ConfirmNavigateAction:
		// The guard held back a page switch; drop whichever draft was at
		// risk and complete it.
		m.state.UploadValue = ""
		m.state.UploadDirty = false
		m.state.UploadError = ""
		m.state.SetSettings(m.state.Settings)
		if page := m.state.PendingPage; page != "" {
			m.state.PendingPage = ""
			m.nav.Select(page)
		}

	case inputtypes.ToggleDrawerAction:
		m.nav.Toggle()

	case inputtypes.DismissAction:
		m.dismiss()

	case inputtypes.SubmitTextAction:
		switch a.Mode {
		case inputtypes.ModeUpload:
			m.submitUpload(a.Text)
		case inputtypes.ModeSearch:
			m.state.SearchQuery = strings.TrimSpace(a.Text)
			m.state.IsFiltered = m.state.SearchQuery != ""
			m.state.LibraryIndex = 0
		}

	case inputtypes.CancelTextAction:
		if m.state.CurrentPage == domain.PageLibrary {
			m.state.SearchQuery = ""
			m.state.IsFiltered = false
		} else {
			m.state.UploadError = ""
		}

	case inputtypes.UpdateTextAction:
		if m.inputHandler.CurrentMode() == inputtypes.ModeUpload {
			m.state.UploadValue = a.Text
			m.state.UploadDirty = a.Text != ""
			m.state.UploadError = ""
		}

	case inputtypes.EnqueueAction:
		m.enqueue(a.Path)

	case inputtypes.RescanAction:
		m.bus.Publish(domain.ScanRequestedEvent{Root: m.config.InboxDir})

	case inputtypes.OpenTranscriptAction:
		return m.openTranscriptPager(a.ID)

	case inputtypes.RemoveTranscriptAction:
		m.removeTranscript(a.ID)

	case inputtypes.ToggleSettingAction:
		m.toggleSetting(a.Index)

	case inputtypes.SaveSettingsAction:
		return m.saveSettings()

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		m.state.HelpScrollOffset = 0

	case inputtypes.ToggleDebugAction:
		m.state.ShowDebug = !m.state.ShowDebug

	case inputtypes.QuitAction:
		if !a.Force {
			if m.state.SettingsDirty() {
				m.openConfirm("Quit without saving settings?", inputtypes.QuitAction{Force: true})
				return nil
			}
			if m.state.UploadDirty {
				m.openConfirm("Quit and discard the unsubmitted path?", inputtypes.QuitAction{Force: true})
				return nil
			}
		}
		return tea.Quit
	}

	return nil
}

// navigate moves the cursor on the current page's list.
func (m *Model) navigate(direction string) {
	switch m.state.CurrentPage {
	case domain.PageQueue:
		total := len(m.state.OrderedAudio) + len(m.state.OrderedJobs)
		m.state.QueueIndex = logic.Move(m.state.QueueIndex, total, direction, listPageSize)
	case domain.PageLibrary:
		total := len(m.state.VisibleTranscriptIDs())
		m.state.LibraryIndex = logic.Move(m.state.LibraryIndex, total, direction, listPageSize)
	case domain.PageSettings:
		m.state.SettingsIndex = logic.Move(m.state.SettingsIndex, settingsRows, direction, listPageSize)
	}
}

// selectPage routes to a page, guarding unsaved work on the page being
// left. Selection closes the drawer even while the guard holds the switch.
func (m *Model) selectPage(pageID string) {
	if logic.PageIndex(pageID) < 0 {
		return
	}
	if pageID != m.state.CurrentPage {
		if prompt := m.leavePrompt(); prompt != "" {
			if m.nav.IsOpen() {
				m.nav.Toggle()
			}
			m.state.PendingPage = pageID
			m.openConfirm(prompt, inputtypes.ConfirmNavigateAction{})
			return
		}
	}
	m.nav.Select(pageID)
}

// leavePrompt names the confirmation required to leave the current page, or
// "" when nothing unsaved is at risk.
func (m *Model) leavePrompt() string {
	switch m.state.CurrentPage {
	case domain.PageUpload:
		if m.state.UploadDirty {
			return "Discard the unsubmitted path?"
		}
	case domain.PageSettings:
		if m.state.SettingsDirty() {
			return "Discard unsaved settings?"
		}
	}
	return ""
}

// dismiss closes the topmost transient surface.
func (m *Model) dismiss() {
	switch {
	case m.state.ShowHelp:
		m.state.ShowHelp = false
		m.state.HelpScrollOffset = 0
	case m.state.ShowDebug:
		m.state.ShowDebug = false
	case m.nav.Device().IsMobile && m.nav.IsOpen():
		m.nav.Toggle()
	case m.state.IsFiltered:
		m.state.SearchQuery = ""
		m.state.IsFiltered = false
		m.state.StatusMessage = "Search cleared"
	}
}

// openConfirm switches to confirm mode with the given prompt and accept action.
func (m *Model) openConfirm(prompt string, accept inputtypes.Action) {
	m.inputHandler.ChangeMode(inputtypes.ModeConfirm, inputtypes.ConfirmRequest{
		Prompt: prompt,
		Accept: accept,
	})
}

// submitUpload validates a typed path and queues it for transcription. The
// form closes on every submit; a failed attempt keeps the draft and shows
// the error on the page until the next attempt starts.
func (m *Model) submitUpload(text string) {
	m.inputHandler.ChangeMode(inputtypes.ModeNormal, nil)

	path := strings.TrimSpace(text)
	if path == "" {
		m.state.UploadError = "Enter a path."
		return
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(m.config.InboxDir, path)
	}

	info, err := os.Stat(path)
	switch {
	case err != nil:
		m.state.UploadError = "File not found: " + path
	case info.IsDir():
		m.state.UploadError = "Not a file: " + path
	case !discovery.IsAudioPath(path):
		m.state.UploadError = "Unsupported format: " + filepath.Ext(path)
	case m.config.Engine.MaxFileSize > 0 && info.Size() > m.config.Engine.MaxFileSize:
		m.state.UploadError = fmt.Sprintf("File exceeds the %d MB limit",
			m.config.Engine.MaxFileSize/(1024*1024))
	default:
		m.state.UploadValue = ""
		m.state.UploadDirty = false
		m.state.UploadError = ""
		m.enqueue(path)
	}
}

// enqueue asks the transcription service to queue a source file.
func (m *Model) enqueue(path string) {
	if path == "" {
		return
	}
	m.bus.Publish(domain.JobRequestedEvent{Source: path})
}

// removeTranscript deletes a transcript from disk and from the index.
func (m *Model) removeTranscript(id string) {
	transcript, ok := m.state.Transcripts[id]
	if !ok {
		return
	}
	if err := m.library.Remove(id); err != nil {
		m.log.Warnf("remove transcript %s: %v", id, err)
		m.state.StatusMessage = fmt.Sprintf("Error deleting transcript: %v", err)
		return
	}
	m.state.RemoveTranscript(id)
	m.state.LibraryIndex = logic.Clamp(m.state.LibraryIndex, len(m.state.VisibleTranscriptIDs()))
	m.state.StatusMessage = "Deleted " + transcript.Title
}

// toggleSetting flips a row in the settings draft. Row order matches the
// settings page rendering.
func (m *Model) toggleSetting(index int) {
	draft := &m.state.SettingsDraft
	switch index {
	case 0:
		draft.Mouse = !draft.Mouse
	case 1:
		draft.HapticsBell = !draft.HapticsBell
	case 2:
		draft.HapticsTone = !draft.HapticsTone
	case 3:
		draft.ShowHints = !draft.ShowHints
	}
}

// saveSettings persists the draft and applies it to the running services.
func (m *Model) saveSettings() tea.Cmd {
	draft := m.state.SettingsDraft
	m.config.UI = draft

	if err := m.configService.Save(m.config); err != nil {
		m.log.Errorf("save config: %v", err)
		m.state.StatusMessage = fmt.Sprintf("Error saving config: %v", err)
		return nil
	}

	m.state.SetSettings(draft)
	m.haptics.SetBell(draft.HapticsBell)
	m.haptics.SetTone(draft.HapticsTone)

	// Touch capability follows mouse reporting; the navigation controller
	// rebinds gestures through its probe subscription.
	m.probe.SetTouch(draft.Mouse)

	if draft.Mouse {
		return tea.EnableMouseCellMotion
	}
	return tea.DisableMouse
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		// Process domain events
		statusBefore := m.state.StatusMessage
		cmd := m.eventHandler.HandleEvent(msg.Event)
		if m.state.StatusMessage != "" && m.state.StatusMessage != statusBefore {
			return m, tea.Batch(cmd, clearStatusAfter())
		}
		return m, cmd

	case tickMsg:
		return m, m.continueTicking()

	case handlers.TickMsg:
		return m, m.continueTicking()

	case pagerDoneMsg:
		if msg.err != nil {
			// Pager failed: log only; RestoreTerminal already ran
			m.log.Warnf("pager failed for %s: %v", msg.id, msg.err)
			m.state.StatusMessage = "Pager failed, see log"
		}
		return m, nil

	case pauseRenderingMsg:
		// Signal that rendering should be paused for external pager
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		// Bubble Tea's RestoreTerminal() handles the actual resuming
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.state.StatusMessage = ""
		return m, nil

	default:
		// Other messages are handled elsewhere
		return m, nil
	}
}

// continueTicking re-arms the spinner tick while something is animating.
func (m *Model) continueTicking() tea.Cmd {
	if m.inPagerMode {
		return nil
	}
	if m.state.Scanning || m.state.IsProcessing() {
		return tick()
	}
	return nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// clearStatusAfter retires the status line once it has had time to be read.
func clearStatusAfter() tea.Cmd {
	return tea.Tick(5*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
