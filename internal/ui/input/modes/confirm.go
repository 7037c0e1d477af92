package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"shelfsmart/internal/ui/input/types"
)

// ConfirmMode serves every yes/no popup: delete entity, clear history,
// quick-add. The model tracks what is pending; a ConfirmAction only means
// the user pressed yes.
type ConfirmMode struct{}

func NewConfirmMode() *ConfirmMode {
	return &ConfirmMode{}
}

func (m *ConfirmMode) Name() string {
	return "confirm"
}

func (m *ConfirmMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ConfirmMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "n", "N":
		// Cancel and return to normal mode
		return []types.Action{types.CloseAction{}}, true
	case "y", "Y", "enter":
		// Confirm the pending operation
		return []types.Action{types.ConfirmAction{}}, true
	}

	return nil, false
}
