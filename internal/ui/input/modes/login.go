package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"shelfsmart/internal/ui/input/types"
)

// LoginMode covers the credentials screen shown before the catalog loads.
// Character input goes to the focused field via fallthrough.
type LoginMode struct{}

func NewLoginMode() *LoginMode {
	return &LoginMode{}
}

func (m *LoginMode) Name() string {
	return "login"
}

func (m *LoginMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *LoginMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *LoginMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c", "esc":
		// There is nothing behind the login screen to fall back to
		return []types.Action{types.QuitAction{Force: true}}, true
	case "tab", "down":
		return []types.Action{types.FocusNextAction{}}, true
	case "shift+tab", "up":
		return []types.Action{types.FocusPrevAction{}}, true
	case "enter":
		return []types.Action{types.SubmitFormAction{}}, true
	}

	return nil, false
}
