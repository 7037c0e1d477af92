package modes

import (
	tea "github.com/charmbracelet/bubbletea"

	"shelfsmart/internal/ui/input/types"
)

// HistoryMode navigates the recent searches popup. Enter re-runs the
// highlighted query; c asks to clear the whole history.
type HistoryMode struct{}

func NewHistoryMode() *HistoryMode {
	return &HistoryMode{}
}

func (m *HistoryMode) Name() string {
	return "history"
}

func (m *HistoryMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *HistoryMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *HistoryMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.String() {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case "esc", "q", "H":
		return []types.Action{types.CloseAction{}}, true
	case "j", "down":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case "k", "up":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case "enter":
		if ctx.HistoryCount() > 0 {
			return []types.Action{types.ApplyHistoryAction{}}, true
		}
		return nil, true
	case "c", "C":
		if ctx.HistoryCount() > 0 {
			return []types.Action{types.ClearHistoryAction{}}, true
		}
		return nil, true
	}

	return nil, false
}
