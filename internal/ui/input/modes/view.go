package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"shelfsmart/internal/ui/input/types"
)

// ViewMode covers the read-only book detail popup.
type ViewMode struct{}

func NewViewMode() *ViewMode {
	return &ViewMode{}
}

func (m *ViewMode) Name() string {
	return "view"
}

func (m *ViewMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *ViewMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *ViewMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "q", "v":
		return []types.Action{types.CloseAction{}}, true
	case "e":
		// Switch from viewing to editing the same book
		return []types.Action{types.OpenEditAction{}}, true
	case "o", "enter":
		// Open the full record in the pager
		return []types.Action{types.OpenPagerAction{}}, true
	}

	return nil, false
}
