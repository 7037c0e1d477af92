package logic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shelfsmart/internal/domain"
)

func sampleCatalog() []domain.Book {
	return []domain.Book{
		{
			ID: 1, ISBN: "9780261102217", Title: "The Fellowship of the Ring",
			Authors:      []domain.BookAuthor{{Name: "J.R.R. Tolkien", Role: "primary"}},
			CategoryName: "Fantasy", PublisherName: "HarperCollins",
			Language: "EN", Availability: "available",
		},
		{
			ID: 2, ISBN: "9780441172719", Title: "Dune",
			Authors:      []domain.BookAuthor{{Name: "Frank Herbert", Role: "primary"}},
			CategoryName: "Science Fiction", PublisherName: "Ace",
			Language: "EN", Availability: "reserved",
		},
		{
			ID: 3, ISBN: "9780553293357", Title: "Foundation",
			Authors:      []domain.BookAuthor{{Name: "Isaac Asimov", Role: "primary"}},
			CategoryName: "Science Fiction", PublisherName: "Bantam",
			Language: "EN", Availability: "checked_out",
		},
	}
}

func TestFilterMatchesAnyVisibleColumn(t *testing.T) {
	rf := NewRowFilter()
	books := sampleCatalog()

	cases := []struct {
		term string
		want []int
	}{
		{"", []int{0, 1, 2}},
		{"TOLKIEN", []int{0}},
		{"science", []int{1, 2}},
		{"9780441", []int{1}},
		{"bantam", []int{2}},
		{"reserved", []int{1}},
		{"no such book", []int{}},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, rf.VisibleRows(books, tc.term), "term %q", tc.term)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	rf := NewRowFilter()
	books := sampleCatalog()

	first := rf.VisibleRows(books, "science")
	second := rf.VisibleRows(books, "science")
	require.Equal(t, first, second)

	// Clearing the term restores full visibility.
	require.Equal(t, []int{0, 1, 2}, rf.VisibleRows(books, ""))
}

func TestMatchesSubsetIgnoresOtherColumns(t *testing.T) {
	cells := []string{"42", "book", "Dune", "Frank Herbert"}

	require.True(t, MatchesSubset(cells, []int{0, 1, 2}, "dune"))
	require.False(t, MatchesSubset(cells, []int{0, 1, 2}, "herbert"))
	require.True(t, MatchesSubset(cells, []int{0, 1, 2}, ""))
	require.False(t, MatchesSubset(cells, []int{9}, "dune"), "out-of-range columns contribute nothing")
}
