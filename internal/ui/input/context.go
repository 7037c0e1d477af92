package input

import (
	"shelfsmart/internal/ui/state"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	State *state.AppState
}

// CurrentIndex returns the current selected index
func (c *ModelContext) CurrentIndex() int {
	return c.State.SelectedIndex
}

// TotalItems returns the number of visible rows
func (c *ModelContext) TotalItems() int {
	return len(c.State.VisibleRows)
}

// HasSelection reports whether the cursor sits on a catalog row
func (c *ModelContext) HasSelection() bool {
	_, ok := c.State.SelectedBook()
	return ok
}

// SelectedBookID returns the id of the book under the cursor, zero if none
func (c *ModelContext) SelectedBookID() int {
	book, ok := c.State.SelectedBook()
	if !ok {
		return 0
	}
	return book.ID
}

// SearchQuery returns the active filter term
func (c *ModelContext) SearchQuery() string {
	return c.State.FilterQuery
}

// HistoryCount returns the number of loaded history records
func (c *ModelContext) HistoryCount() int {
	return len(c.State.History)
}

// PopupOpen reports whether any popup is showing
func (c *ModelContext) PopupOpen() bool {
	return c.State.ShowHelp || c.State.ViewBook != nil ||
		c.State.PendingDeleteID != 0 || c.State.PendingClear ||
		len(c.State.QuickAddQueue) > 0
}
