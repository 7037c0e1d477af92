package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shelfsmart/internal/ui/input/modes"
	"shelfsmart/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	textInput   *textinput.Model // Shared text input for the search box
}

func New() *Handler {
	ti := textinput.New()

	h := &Handler{
		currentMode: types.ModeNormal,
		textInput:   &ti,
		modes:       make(map[types.Mode]types.ModeHandler),
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode()
	h.modes[types.ModeSearch] = modes.NewSearchMode(h.textInput)
	h.modes[types.ModeForm] = modes.NewFormMode()
	h.modes[types.ModeConfirm] = modes.NewConfirmMode()
	h.modes[types.ModeQuickAdd] = modes.NewConfirmMode()
	h.modes[types.ModeHistory] = modes.NewHistoryMode()
	h.modes[types.ModeView] = modes.NewViewMode()
	h.modes[types.ModeLogin] = modes.NewLoginMode()

	return h
}

// HandleKey routes a key press through the current mode handler and applies
// any mode transitions it requests. Keys the mode does not claim fall
// through to the shared search input in text modes; form and login modes
// leave fallthrough to the model, which owns those inputs.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, tea.Cmd) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)

	var cmd tea.Cmd
	var allActions []types.Action

	// Handle mode changes
	for _, action := range actions {
		if changeMode, ok := action.(types.ChangeModeAction); ok {
			// Exit current mode
			if h.modes[h.currentMode] != nil {
				exitActions := h.modes[h.currentMode].Exit(ctx)
				allActions = append(allActions, exitActions...)
			}

			h.currentMode = changeMode.Mode

			// Enter new mode
			if h.modes[h.currentMode] != nil {
				enterActions := h.modes[h.currentMode].Enter(ctx)
				allActions = append(allActions, enterActions...)
			}

			if h.isTextMode(h.currentMode) {
				cmd = textinput.Blink
			}
		} else {
			allActions = append(allActions, action)
		}
	}

	// If we're in a text mode and didn't handle the key, pass it to text input
	if h.isTextMode(h.currentMode) && !consumed {
		var textCmd tea.Cmd
		*h.textInput, textCmd = h.textInput.Update(msg)
		cmd = textCmd
		// Always append an update action when in text mode to keep view in sync
		allActions = append(allActions, types.UpdateTextAction{Text: h.textInput.Value()})
	}

	return allActions, cmd
}

// ChangeMode changes the current input mode directly, for transitions the
// model decides on its own (popup opened from an async result, for one).
func (h *Handler) ChangeMode(mode types.Mode) {
	if h.currentMode == mode {
		return
	}
	if h.modes[h.currentMode] != nil {
		h.modes[h.currentMode].Exit(nil)
	}
	h.currentMode = mode
	if h.modes[h.currentMode] != nil {
		h.modes[h.currentMode].Enter(nil)
	}
}

// CurrentMode returns the active input mode.
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// ModeName returns the active mode's display name.
func (h *Handler) ModeName() string {
	if m := h.modes[h.currentMode]; m != nil {
		return m.Name()
	}
	return ""
}

// TextInput returns the shared search input model.
func (h *Handler) TextInput() *textinput.Model {
	return h.textInput
}

// SetSearchText seeds the search input, used when a history entry is
// re-applied as the active filter.
func (h *Handler) SetSearchText(text string) {
	h.textInput.SetValue(text)
	h.textInput.CursorEnd()
}

func (h *Handler) isTextMode(mode types.Mode) bool {
	return mode == types.ModeSearch
}

func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
	h.textInput.Reset()
	h.textInput.Blur()
}
