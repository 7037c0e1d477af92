package modes

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shelfsmart/internal/ui/input/types"
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
	return nil // No special actions on enter
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil // No special actions on exit
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []types.Action{types.QuitAction{Force: true}}, true

	case tea.KeyUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case tea.KeyDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case tea.KeyPgUp:
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case tea.KeyPgDown:
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case tea.KeyHome:
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case tea.KeyEnd:
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case tea.KeyEnter:
		// Enter opens the edit popup for the selected row
		if ctx.HasSelection() {
			return []types.Action{types.OpenEditAction{}}, true
		}
		return nil, false
	}

	// Handle string keys
	switch msg.String() {
	case "j":
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case "k":
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case "/":
		// Enter search mode
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSearch}}, true

	case "a":
		return []types.Action{types.OpenAddAction{Kind: "books"}}, true

	case "A":
		return []types.Action{types.OpenAddAction{Kind: "authors"}}, true

	case "c":
		return []types.Action{types.OpenAddAction{Kind: "categories"}}, true

	case "p":
		return []types.Action{types.OpenAddAction{Kind: "publishers"}}, true

	case "e":
		if ctx.HasSelection() {
			return []types.Action{types.OpenEditAction{}}, true
		}
		return nil, false

	case "v":
		if ctx.HasSelection() {
			return []types.Action{types.OpenViewAction{}}, true
		}
		return nil, false

	case "d":
		if ctx.HasSelection() {
			return []types.Action{types.OpenDeleteAction{}}, true
		}
		return nil, false

	case "H":
		return []types.Action{types.OpenHistoryAction{}}, true

	case "r":
		// Refresh the catalog
		return []types.Action{types.RefreshAction{}}, true

	case "s":
		// Cycle sort mode
		return []types.Action{types.CycleSortAction{}}, true

	case "?":
		// Toggle help
		return []types.Action{types.ToggleHelpAction{}}, true

	case "esc":
		// Clear the filter if one is active, otherwise do nothing
		if ctx.SearchQuery() != "" {
			return []types.Action{types.CancelTextAction{}}, true
		}
		return nil, true // Consume the key even if no action

	case "q":
		// Quit
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
		return nil, true // consume the key but don't do anything

	case "G":
		// G - go to bottom
		m.lastKeyWasG = false
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	default:
		// Any other key cancels the 'g' prefix
		if m.lastKeyWasG {
			m.lastKeyWasG = false
		}
	}

	return nil, false
}
