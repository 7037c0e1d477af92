package domain

import "strings"

// EntityKind identifies one of the admin-managed catalog entities.
type EntityKind string

const (
	KindBook      EntityKind = "books"
	KindAuthor    EntityKind = "authors"
	KindCategory  EntityKind = "categories"
	KindPublisher EntityKind = "publishers"
)

// Endpoint returns the admin-panel path fragment for the entity.
func (k EntityKind) Endpoint() string {
	return "/admin-panel/" + string(k) + "/"
}

// IDField returns the form field name carrying the entity id on edit/delete.
func (k EntityKind) IDField() string {
	switch k {
	case KindBook:
		return "book_id"
	case KindAuthor:
		return "author_id"
	case KindCategory:
		return "category_id"
	case KindPublisher:
		return "publisher_id"
	}
	return "id"
}

// Action is the mutation discriminator sent to the entity endpoints.
type Action string

const (
	ActionAdd    Action = "add"
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Book represents a catalog entry as returned by the book detail API.
type Book struct {
	ID              int          `json:"id"`
	ISBN            string       `json:"isbn"`
	Title           string       `json:"title"`
	Subtitle        string       `json:"subtitle"`
	Description     string       `json:"description"`
	PublicationDate string       `json:"publication_date"`
	Edition         string       `json:"edition"`
	Pages           int          `json:"pages"`
	Language        string       `json:"language"`
	CoverImageURL   string       `json:"cover_image_url"`
	CategoryID      int          `json:"category_id"`
	CategoryName    string       `json:"category_name"`
	PublisherID     int          `json:"publisher_id"`
	PublisherName   string       `json:"publisher_name"`
	Quantity        int          `json:"quantity"`
	TotalCopies     int          `json:"total_copies"`
	Availability    string       `json:"availability"`
	Authors         []BookAuthor `json:"authors"`
}

// BookAuthor links an author to a book with a role (primary, co-author,
// editor, translator).
type BookAuthor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// AuthorNames returns the comma-joined author list for table display.
func (b Book) AuthorNames() string {
	names := ""
	for i, a := range b.Authors {
		if i > 0 {
			names += ", "
		}
		names += a.Name
	}
	return names
}

// Author is a catalog author.
type Author struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Biography   string `json:"biography"`
	Nationality string `json:"nationality"`
}

// Category is a catalog category; ParentID is zero for top-level categories.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"category_name"`
	Description string `json:"description"`
	ParentID    int    `json:"parent_category_id"`
}

// Publisher is a catalog publisher.
type Publisher struct {
	ID              int    `json:"id"`
	Name            string `json:"publisher_name"`
	Address         string `json:"address"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	Website         string `json:"website"`
	EstablishedYear int    `json:"established_year"`
}

// SearchRecord is one saved search as returned by the history API.
type SearchRecord struct {
	Query        string `json:"search_query"`
	ResultsCount int    `json:"results_count"`
	CreatedAt    string `json:"created_at"` // ISO 8601 with timezone
}

// MatchedAuthor is an author name resolved to a database id during ISBN
// validation.
type MatchedAuthor struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ISBNResult is the payload of a successful ISBN lookup, including which of
// the external record's authors/publisher/category already exist locally.
type ISBNResult struct {
	Title              string          `json:"title"`
	Subtitle           string          `json:"subtitle"`
	Description        string          `json:"description"`
	Language           string          `json:"language"`
	PublishedDate      string          `json:"publishedDate"`
	PageCount          int             `json:"pageCount"`
	ImageLinks         ImageLinks      `json:"imageLinks"`
	Authors            []string        `json:"authors"`
	Publisher          string          `json:"publisher"`
	Categories         []string        `json:"categories"`
	MatchedCategoryID  int             `json:"matched_category_id"`
	MatchedPublisherID int             `json:"matched_publisher_id"`
	MatchedAuthors     []MatchedAuthor `json:"matched_author_ids"`
}

// ImageLinks carries cover image URLs from the ISBN lookup.
type ImageLinks struct {
	Thumbnail string `json:"thumbnail"`
}

// UnmatchedAuthors returns the lookup's author names that have no database
// match, preserving order.
func (r ISBNResult) UnmatchedAuthors() []string {
	var out []string
	for _, name := range r.Authors {
		matched := false
		for _, m := range r.MatchedAuthors {
			if strings.EqualFold(m.Name, name) {
				matched = true
				break
			}
		}
		if !matched {
			out = append(out, name)
		}
	}
	return out
}
