package modes

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"hearsay/internal/ui/input/types"
)

type UploadMode struct {
	textInputMode TextInputMode
}

func NewUploadMode(ti *textinput.Model) *UploadMode {
	return &UploadMode{
		textInputMode: NewTextInputMode(types.ModeUpload, "upload", "path/to/audio.wav", ti),
	}
}

func (m *UploadMode) Name() string {
	return m.textInputMode.Name()
}

func (m *UploadMode) Enter(ctx types.Context) []types.Action {
	return m.textInputMode.Enter(ctx)
}

func (m *UploadMode) Exit(ctx types.Context) []types.Action {
	return m.textInputMode.Exit(ctx)
}

func (m *UploadMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Enter submits the draft without flipping the mode here; the model owns
	// the transition that closes the form.
	if msg.String() == "enter" {
		text := ""
		if m.textInputMode.textInput != nil {
			text = m.textInputMode.textInput.Value()
		}
		return []types.Action{types.SubmitTextAction{Text: text, Mode: types.ModeUpload}}, true
	}
	return m.textInputMode.HandleKey(msg, ctx)
}
