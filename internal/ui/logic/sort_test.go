package logic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shelfsmart/internal/domain"
)

func titles(books []domain.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.Title
	}
	return out
}

func TestSortByTitleCaseInsensitive(t *testing.T) {
	books := []domain.Book{
		{Title: "dune"},
		{Title: "Animal Farm"},
		{Title: "Brave New World"},
	}
	NewBookSorter().SortBooks(books, SortByTitle)
	require.Equal(t, []string{"Animal Farm", "Brave New World", "dune"}, titles(books))
}

func TestSortByAuthorFallsBackToTitle(t *testing.T) {
	books := []domain.Book{
		{Title: "Foundation and Empire", Authors: []domain.BookAuthor{{Name: "Isaac Asimov"}}},
		{Title: "Dune", Authors: []domain.BookAuthor{{Name: "Frank Herbert"}}},
		{Title: "Foundation", Authors: []domain.BookAuthor{{Name: "Isaac Asimov"}}},
	}
	NewBookSorter().SortBooks(books, SortByAuthor)
	require.Equal(t, []string{"Dune", "Foundation", "Foundation and Empire"}, titles(books))
}

func TestSortByAvailabilityPutsAvailableFirst(t *testing.T) {
	books := []domain.Book{
		{Title: "A", Availability: "checked_out"},
		{Title: "B", Availability: "available"},
		{Title: "C", Availability: "reserved"},
		{Title: "D", Availability: "Available"},
	}
	NewBookSorter().SortBooks(books, SortByAvailability)
	require.Equal(t, []string{"B", "D", "C", "A"}, titles(books))
}

func TestSortByCategoryGroups(t *testing.T) {
	books := []domain.Book{
		{Title: "Z", CategoryName: "Science Fiction"},
		{Title: "A", CategoryName: "Science Fiction"},
		{Title: "M", CategoryName: "Fantasy"},
	}
	NewBookSorter().SortBooks(books, SortByCategory)
	require.Equal(t, []string{"M", "A", "Z"}, titles(books))
}

func TestSortModeLabels(t *testing.T) {
	require.Equal(t, "title", SortByTitle.Label())
	require.Equal(t, "author", SortByAuthor.Label())
	require.Equal(t, "category", SortByCategory.Label())
	require.Equal(t, "availability", SortByAvailability.Label())
	require.Equal(t, "title", SortMode(99).Label())
}

func TestNavigatorKeepsSelectionVisible(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, 0, 5, 20)

	idx, off := n.Move(7)
	require.Equal(t, 7, idx)
	require.Equal(t, 3, off, "viewport scrolls so the cursor stays on the last row")

	idx, off = n.JumpToBottom()
	require.Equal(t, 19, idx)
	require.Equal(t, 15, off)

	idx, off = n.JumpToTop()
	require.Equal(t, 0, idx)
	require.Equal(t, 0, off)
}

func TestNavigatorClampsAtEdges(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, 0, 5, 3)

	idx, _ := n.Move(-10)
	require.Equal(t, 0, idx)

	idx, _ = n.Move(10)
	require.Equal(t, 2, idx)

	n.UpdateState(0, 0, 5, 0)
	idx, off := n.Move(1)
	require.Equal(t, 0, idx)
	require.Equal(t, 0, off)
}

func TestNavigatorPaging(t *testing.T) {
	n := NewNavigator()
	n.UpdateState(0, 0, 10, 50)

	idx, _ := n.PageDown()
	require.Equal(t, 9, idx)
	idx, _ = n.PageDown()
	require.Equal(t, 18, idx)
	idx, _ = n.PageUp()
	require.Equal(t, 9, idx)
}
