package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"shelfsmart/internal/ui/input/types"
)

// FormMode covers the add/edit popup. Only control keys are claimed here;
// everything else falls through to the focused form input, which the model
// owns.
type FormMode struct{}

func NewFormMode() *FormMode {
	return &FormMode{}
}

func (m *FormMode) Name() string {
	return "form"
}

func (m *FormMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *FormMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *FormMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc":
		return []types.Action{types.CloseAction{}}, true
	case "tab", "down":
		return []types.Action{types.FocusNextAction{}}, true
	case "shift+tab", "up":
		return []types.Action{types.FocusPrevAction{}}, true
	case "enter":
		return []types.Action{types.SubmitFormAction{}}, true
	case "ctrl+a":
		// Add an author row (book form only)
		return []types.Action{types.AddAuthorRowAction{}}, true
	case "ctrl+x":
		// Remove the last author row
		return []types.Action{types.RemoveAuthorRowAction{}}, true
	case "ctrl+l":
		// Look up the typed ISBN and auto-fill matching fields
		return []types.Action{types.LookupISBNAction{}}, true
	}

	return nil, false
}
