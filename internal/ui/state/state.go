package state

import (
	"shelfsmart/internal/domain"
)

// AppState contains all the application state
type AppState struct {
	// Catalog data
	Books       []domain.Book
	VisibleRows []int // indices into Books after filtering, in display order

	// Selection state
	SelectedIndex int // index into VisibleRows

	// UI state
	ViewportOffset int // offset for scrolling
	ViewportHeight int // available height for the table
	Loading        bool
	ShowHelp       bool
	StatusMessage  string

	// Filter state
	FilterQuery string

	// Search history
	History       []domain.SearchRecord
	HistoryIndex  int
	HistoryLoaded bool

	// Pending destructive operation. Set when the delete confirm popup
	// opens, cleared on every close path so a stale id can never be
	// submitted.
	PendingDeleteID    int
	PendingDeleteTitle string

	// Pending quick-adds from the ISBN lookup flow, confirmed one at a
	// time. Cancelling drops the whole queue without any network calls.
	QuickAddQueue []QuickAddItem

	// Clear-history confirmation is pending
	PendingClear bool

	// Detail popup content; nil while the fetch is in flight
	ViewBook *domain.Book

	// Session
	LoggedIn bool
	Username string
}

// NewAppState creates a new application state
func NewAppState() *AppState {
	return &AppState{
		VisibleRows:    make([]int, 0),
		ViewportHeight: 20, // Default
	}
}

// SetCatalog replaces the book list. Visibility must be recomputed by the
// caller, which owns the filter.
func (s *AppState) SetCatalog(books []domain.Book) {
	s.Books = books
}

// SetVisible installs the filtered row set and clamps the cursor.
func (s *AppState) SetVisible(rows []int) {
	s.VisibleRows = rows
	if s.SelectedIndex >= len(rows) {
		s.SelectedIndex = len(rows) - 1
	}
	if s.SelectedIndex < 0 {
		s.SelectedIndex = 0
	}
}

// SelectedBook returns the book under the cursor.
func (s *AppState) SelectedBook() (domain.Book, bool) {
	if s.SelectedIndex < 0 || s.SelectedIndex >= len(s.VisibleRows) {
		return domain.Book{}, false
	}
	idx := s.VisibleRows[s.SelectedIndex]
	if idx < 0 || idx >= len(s.Books) {
		return domain.Book{}, false
	}
	return s.Books[idx], true
}

// BookByID finds a catalog entry by id.
func (s *AppState) BookByID(id int) (int, bool) {
	for i := range s.Books {
		if s.Books[i].ID == id {
			return i, true
		}
	}
	return 0, false
}

// PatchBook replaces one catalog entry in place, the re-fetch-and-patch
// path after an edit.
func (s *AppState) PatchBook(book domain.Book) bool {
	i, ok := s.BookByID(book.ID)
	if !ok {
		return false
	}
	s.Books[i] = book
	return true
}

// RemoveBook drops a catalog entry by id.
func (s *AppState) RemoveBook(id int) bool {
	i, ok := s.BookByID(id)
	if !ok {
		return false
	}
	s.Books = append(s.Books[:i], s.Books[i+1:]...)
	return true
}

// ClearPendingDelete resets the delete token. Called on every popup close
// path, including mode changes that bypass the confirm keys.
func (s *AppState) ClearPendingDelete() {
	s.PendingDeleteID = 0
	s.PendingDeleteTitle = ""
}

// QuickAddItem is one missing record the ISBN lookup offered to create.
type QuickAddItem struct {
	Kind string // "author", "category" or "publisher"
	Name string
}

// ClearQuickAdd drops the pending quick-add queue.
func (s *AppState) ClearQuickAdd() {
	s.QuickAddQueue = nil
}

// NextQuickAdd pops the head of the quick-add queue.
func (s *AppState) NextQuickAdd() (QuickAddItem, bool) {
	if len(s.QuickAddQueue) == 0 {
		return QuickAddItem{}, false
	}
	item := s.QuickAddQueue[0]
	s.QuickAddQueue = s.QuickAddQueue[1:]
	return item, true
}

// SelectedHistory returns the highlighted history record.
func (s *AppState) SelectedHistory() (domain.SearchRecord, bool) {
	if s.HistoryIndex < 0 || s.HistoryIndex >= len(s.History) {
		return domain.SearchRecord{}, false
	}
	return s.History[s.HistoryIndex], true
}
