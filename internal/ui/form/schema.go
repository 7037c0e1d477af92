// Package form provides the generic popup form component: one schema per
// entity, one state machine for all of them.
package form

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"shelfsmart/internal/domain"
)

// Field describes one form input.
type Field struct {
	Key         string // form field name on the wire
	Label       string
	Placeholder string
	Required    bool
}

// Schema parameterizes the popup form for one entity: field list, endpoint
// kind and required set. Entities differ only by their schema.
type Schema struct {
	Kind       Kind
	Title      string
	Fields     []Field
	HasAuthors bool // books carry a repeatable author/role section
}

// Kind aliases the domain entity kind for callers of this package.
type Kind = domain.EntityKind

// BookSchema returns the add/edit book form definition.
func BookSchema() Schema {
	return Schema{
		Kind:       domain.KindBook,
		Title:      "Book",
		HasAuthors: true,
		Fields: []Field{
			{Key: "isbn", Label: "ISBN", Placeholder: "10 or 13 digits"},
			{Key: "title", Label: "Title", Required: true},
			{Key: "subtitle", Label: "Subtitle"},
			{Key: "description", Label: "Description"},
			{Key: "publication_date", Label: "Publication date", Placeholder: "YYYY-MM-DD"},
			{Key: "edition", Label: "Edition"},
			{Key: "pages", Label: "Pages"},
			{Key: "language", Label: "Language", Placeholder: "English"},
			{Key: "cover_image_url", Label: "Cover image URL"},
			{Key: "category_id", Label: "Category ID", Required: true},
			{Key: "publisher_id", Label: "Publisher ID", Required: true},
			{Key: "total_copies", Label: "Total copies"},
			{Key: "quantity", Label: "Quantity", Required: true},
		},
	}
}

// AuthorSchema returns the add/edit author form definition.
func AuthorSchema() Schema {
	return Schema{
		Kind:  domain.KindAuthor,
		Title: "Author",
		Fields: []Field{
			{Key: "name", Label: "Name", Required: true},
			{Key: "biography", Label: "Biography"},
			{Key: "nationality", Label: "Nationality"},
		},
	}
}

// CategorySchema returns the add/edit category form definition.
func CategorySchema() Schema {
	return Schema{
		Kind:  domain.KindCategory,
		Title: "Category",
		Fields: []Field{
			{Key: "category_name", Label: "Name", Required: true},
			{Key: "description", Label: "Description"},
			{Key: "parent_category_id", Label: "Parent category ID"},
		},
	}
}

// PublisherSchema returns the add/edit publisher form definition.
func PublisherSchema() Schema {
	return Schema{
		Kind:  domain.KindPublisher,
		Title: "Publisher",
		Fields: []Field{
			{Key: "publisher_name", Label: "Name", Required: true},
			{Key: "address", Label: "Address"},
			{Key: "phone", Label: "Phone"},
			{Key: "email", Label: "Email"},
			{Key: "website", Label: "Website"},
			{Key: "established_year", Label: "Established year"},
		},
	}
}

// SchemaFor returns the schema for an entity kind.
func SchemaFor(kind Kind) Schema {
	switch kind {
	case domain.KindBook:
		return BookSchema()
	case domain.KindAuthor:
		return AuthorSchema()
	case domain.KindCategory:
		return CategorySchema()
	case domain.KindPublisher:
		return PublisherSchema()
	}
	return Schema{Kind: kind, Title: string(kind)}
}

// BookValues maps a book detail payload onto form field values, the
// populate step of the edit popup.
func BookValues(book domain.Book) map[string]string {
	values := map[string]string{
		"isbn":             book.ISBN,
		"title":            book.Title,
		"subtitle":         book.Subtitle,
		"description":      book.Description,
		"publication_date": book.PublicationDate,
		"edition":          book.Edition,
		"language":         book.Language,
		"cover_image_url":  book.CoverImageURL,
	}
	if book.Pages > 0 {
		values["pages"] = strconv.Itoa(book.Pages)
	}
	if book.CategoryID > 0 {
		values["category_id"] = strconv.Itoa(book.CategoryID)
	}
	if book.PublisherID > 0 {
		values["publisher_id"] = strconv.Itoa(book.PublisherID)
	}
	if book.TotalCopies > 0 {
		values["total_copies"] = strconv.Itoa(book.TotalCopies)
	}
	if book.Quantity > 0 {
		values["quantity"] = strconv.Itoa(book.Quantity)
	}
	return values
}

// ISBNValues maps an ISBN lookup result onto form field values for
// auto-population. Partial dates are padded the way the web form does.
func ISBNValues(result domain.ISBNResult) map[string]string {
	values := map[string]string{}
	if result.Title != "" {
		values["title"] = result.Title
	}
	if result.Subtitle != "" {
		values["subtitle"] = result.Subtitle
	}
	if result.Description != "" {
		values["description"] = result.Description
	}
	if result.Language != "" {
		values["language"] = strings.ToUpper(result.Language)
	}
	if result.PublishedDate != "" {
		date := result.PublishedDate
		switch len(date) {
		case 4:
			date += "-01-01"
		case 7:
			date += "-01"
		}
		values["publication_date"] = date
	}
	if result.PageCount > 0 {
		values["pages"] = strconv.Itoa(result.PageCount)
	}
	if result.ImageLinks.Thumbnail != "" {
		values["cover_image_url"] = result.ImageLinks.Thumbnail
	}
	if result.MatchedCategoryID > 0 {
		values["category_id"] = strconv.Itoa(result.MatchedCategoryID)
	}
	if result.MatchedPublisherID > 0 {
		values["publisher_id"] = strconv.Itoa(result.MatchedPublisherID)
	}
	return values
}

// authorEntry is one row of the repeatable author section.
type authorEntry struct {
	ID   string
	Role string
}

// encodeAuthors writes the author section the way the web form serializes
// it: author_N / author_role_N pairs plus author_count, skipping blanks.
func encodeAuthors(entries []authorEntry, fields url.Values) int {
	count := 0
	for _, entry := range entries {
		id := strings.TrimSpace(entry.ID)
		if id == "" {
			continue
		}
		role := strings.TrimSpace(entry.Role)
		if role == "" {
			role = "primary"
		}
		fields.Set(fmt.Sprintf("author_%d", count), id)
		fields.Set(fmt.Sprintf("author_role_%d", count), role)
		count++
	}
	fields.Set("author_count", strconv.Itoa(count))
	return count
}
