package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"hearsay/internal/domain"
	"hearsay/internal/ui/input/types"
)

type NormalMode struct {
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode() *NormalMode {
	return &NormalMode{}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyLeft:
		return []types.Action{types.CyclePageAction{Delta: -1}}, true

	case tea.KeyRight:
		return []types.Action{types.CyclePageAction{Delta: 1}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyTab:
		return []types.Action{types.CyclePageAction{Delta: 1}}, true

	case tea.KeyShiftTab:
		return []types.Action{types.CyclePageAction{Delta: -1}}, true

	case tea.KeyEnter:
		return m.handleEnter(ctx)
	}

	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "h":
		return []types.Action{types.CyclePageAction{Delta: -1}}, true

	case "l":
		return []types.Action{types.CyclePageAction{Delta: 1}}, true

	case "1":
		return []types.Action{types.SelectPageAction{Page: domain.PageQueue}}, true

	case "2":
		return []types.Action{types.SelectPageAction{Page: domain.PageUpload}}, true

	case "3":
		return []types.Action{types.SelectPageAction{Page: domain.PageLibrary}}, true

	case "4":
		return []types.Action{types.SelectPageAction{Page: domain.PageSettings}}, true

	case "m":
		return []types.Action{types.ToggleDrawerAction{}}, true

	case " ":
		if ctx.CurrentPage() == domain.PageSettings {
			return []types.Action{types.ToggleSettingAction{Index: ctx.CurrentIndex()}}, true
		}
		return nil, false

	case "r":
		if ctx.CurrentPage() == domain.PageQueue {
			return []types.Action{types.RescanAction{}}, true
		}
		return nil, false

	case "s":
		if ctx.CurrentPage() == domain.PageSettings {
			return []types.Action{types.SaveSettingsAction{}}, true
		}
		return nil, false

	case "d":
		// Delete transcript under the cursor, after confirmation
		if ctx.CurrentPage() == domain.PageLibrary {
			if id := ctx.SelectedTranscriptID(); id != "" {
				return []types.Action{types.ChangeModeAction{
					Mode: types.ModeConfirm,
					Data: types.ConfirmRequest{
						Prompt: "Delete this transcript?",
						Accept: types.RemoveTranscriptAction{ID: id},
					},
				}}, true
			}
		}
		return nil, false

	case "/":
		if ctx.CurrentPage() == domain.PageLibrary {
			return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true
		}
		return nil, false

	case "?":
		return []types.Action{types.ToggleHelpAction{}}, true

	case "`":
		return []types.Action{types.ToggleDebugAction{}}, true

	case "esc":
		return []types.Action{types.DismissAction{}}, true

	case "q":
		return []types.Action{types.QuitAction{Force: false}}, true

	case "g":
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			// gg - go to top (within timeout)
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		// First g, wait for next key
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true

	case "G":
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		if m.lastKeyWasG {
			m.lastKeyWasG = false
		}
	}

	return nil, false
}

// handleEnter dispatches Enter by page: queue rows enqueue the audio file,
// library rows open the transcript, settings rows toggle.
func (m *NormalMode) handleEnter(ctx types.Context) ([]types.Action, bool) {
	switch ctx.CurrentPage() {
	case domain.PageQueue:
		if path := ctx.SelectedAudioPath(); path != "" {
			return []types.Action{types.EnqueueAction{Path: path}}, true
		}
		return nil, true

	case domain.PageUpload:
		return []types.Action{types.ChangeModeAction{Mode: types.ModeUpload}}, true

	case domain.PageLibrary:
		if id := ctx.SelectedTranscriptID(); id != "" {
			return []types.Action{types.OpenTranscriptAction{ID: id}}, true
		}
		return nil, true

	case domain.PageSettings:
		return []types.Action{types.ToggleSettingAction{Index: ctx.CurrentIndex()}}, true
	}

	return nil, false
}
