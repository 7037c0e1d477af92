package modes

import (
	"github.com/charmbracelet/bubbles/textinput"

	"shelfsmart/internal/ui/input/types"
)

// SearchMode drives the live table filter. Every keystroke flows back as
// an UpdateTextAction; Enter forces the pending history save, Esc clears
// the filter. The leave-on-enter behavior comes from TextInputMode.
type SearchMode struct {
	TextInputMode
}

func NewSearchMode(ti *textinput.Model) *SearchMode {
	return &SearchMode{
		TextInputMode: NewTextInputMode(types.ModeSearch, "search", "Search: ", ti),
	}
}
