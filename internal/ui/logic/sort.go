package logic

import (
	"sort"
	"strings"

	"shelfsmart/internal/domain"
)

// SortMode represents different sort modes
type SortMode int

const (
	SortByTitle SortMode = iota
	SortByAuthor
	SortByCategory
	SortByAvailability
)

// BookSorter handles catalog sorting logic
type BookSorter struct{}

// NewBookSorter creates a new book sorter
func NewBookSorter() *BookSorter {
	return &BookSorter{}
}

// SortBooks sorts the catalog in place according to the given sort mode.
func (s *BookSorter) SortBooks(books []domain.Book, mode SortMode) {
	switch mode {
	case SortByTitle:
		sort.SliceStable(books, func(i, j int) bool {
			return strings.ToLower(books[i].Title) < strings.ToLower(books[j].Title)
		})
	case SortByAuthor:
		sort.SliceStable(books, func(i, j int) bool {
			ai := strings.ToLower(books[i].AuthorNames())
			aj := strings.ToLower(books[j].AuthorNames())
			if ai != aj {
				return ai < aj
			}
			return strings.ToLower(books[i].Title) < strings.ToLower(books[j].Title)
		})
	case SortByCategory:
		sort.SliceStable(books, func(i, j int) bool {
			ci := strings.ToLower(books[i].CategoryName)
			cj := strings.ToLower(books[j].CategoryName)
			if ci != cj {
				return ci < cj
			}
			return strings.ToLower(books[i].Title) < strings.ToLower(books[j].Title)
		})
	case SortByAvailability:
		sort.SliceStable(books, func(i, j int) bool {
			pi := availabilityPriority(books[i])
			pj := availabilityPriority(books[j])
			if pi != pj {
				return pi > pj // Available first
			}
			return strings.ToLower(books[i].Title) < strings.ToLower(books[j].Title)
		})
	default:
		sort.SliceStable(books, func(i, j int) bool {
			return strings.ToLower(books[i].Title) < strings.ToLower(books[j].Title)
		})
	}
}

// availabilityPriority returns a priority value for sorting by availability
func availabilityPriority(book domain.Book) int {
	switch strings.ToLower(book.Availability) {
	case "available":
		return 2
	case "reserved":
		return 1
	}
	return 0
}

// Label returns the display name of a sort mode for the status bar.
func (m SortMode) Label() string {
	switch m {
	case SortByTitle:
		return "title"
	case SortByAuthor:
		return "author"
	case SortByCategory:
		return "category"
	case SortByAvailability:
		return "availability"
	}
	return "title"
}
