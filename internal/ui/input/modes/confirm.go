package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"hearsay/internal/ui/input/types"
)

// ConfirmMode asks a yes/no question carried in a ConfirmRequest and emits
// the request's accept action on "y".
type ConfirmMode struct {
	request types.ConfirmRequest
}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "confirm"
}

// SetData receives the pending ConfirmRequest on mode change.
func (m *ConfirmMode) SetData(data interface{}) {
	if req, ok := data.(types.ConfirmRequest); ok {
		m.request = req
	}
}

// Prompt returns the question to render.
func (m *ConfirmMode) Prompt() string {
	return m.request.Prompt
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	m.request = types.ConfirmRequest{}
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true

	case "y", "Y", "enter":
		accept := m.request.Accept
		actions := []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}
		if accept != nil {
			actions = append([]types.Action{accept}, actions...)
		}
		return actions, true

	case "n", "N", "esc":
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	return nil, true
}
