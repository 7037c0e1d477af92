package logic

import (
	"strings"

	"shelfsmart/internal/domain"
)

// RowFilter handles the client-side catalog filter: case-insensitive
// substring match over a row's visible cell text. Pure and synchronous;
// filtering twice with the same term yields the same visible set.
type RowFilter struct{}

// NewRowFilter creates a new row filter
func NewRowFilter() *RowFilter {
	return &RowFilter{}
}

// Cells returns the visible cell text of a book row, in column order.
func (rf *RowFilter) Cells(book domain.Book) []string {
	return []string{
		book.ISBN,
		book.Title,
		book.AuthorNames(),
		book.CategoryName,
		book.PublisherName,
		book.Language,
		book.Availability,
	}
}

// Matches checks if a book row matches the filter term. An empty term
// matches everything.
func (rf *RowFilter) Matches(book domain.Book, term string) bool {
	if term == "" {
		return true
	}
	haystack := strings.ToLower(strings.Join(rf.Cells(book), " "))
	return strings.Contains(haystack, strings.ToLower(term))
}

// VisibleRows returns the indexes of books matching the term, preserving
// catalog order. An empty term restores full visibility.
func (rf *RowFilter) VisibleRows(books []domain.Book, term string) []int {
	visible := make([]int, 0, len(books))
	for i := range books {
		if rf.Matches(books[i], term) {
			visible = append(visible, i)
		}
	}
	return visible
}

// MatchesSubset checks the term against a designated column subset rather
// than the whole row (e.g. id/type/name on the borrow table).
func MatchesSubset(cells []string, columns []int, term string) bool {
	if term == "" {
		return true
	}
	var picked []string
	for _, col := range columns {
		if col >= 0 && col < len(cells) {
			picked = append(picked, cells[col])
		}
	}
	haystack := strings.ToLower(strings.Join(picked, " "))
	return strings.Contains(haystack, strings.ToLower(term))
}
