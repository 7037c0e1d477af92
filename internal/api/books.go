package api

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shelfsmart/internal/domain"
)

// ISBN validation failures are caught client-side, before any network call.
var (
	ErrEmptyISBN   = errors.New("please enter an ISBN")
	ErrInvalidISBN = errors.New("invalid ISBN format: must be 10 or 13 digits")
)

// ListBooks fetches the full catalog.
func (c *Client) ListBooks(ctx context.Context) ([]domain.Book, error) {
	var payload struct {
		Success bool          `json:"success"`
		Books   []domain.Book `json:"books"`
	}
	if err := c.getJSON(ctx, "/admin-panel/books/api/books/", &payload); err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return payload.Books, nil
}

// BookDetail fetches the complete record for one book, including its author
// list; the table rows carry only the display subset.
func (c *Client) BookDetail(ctx context.Context, id int) (*domain.Book, error) {
	var payload struct {
		Success bool        `json:"success"`
		Book    domain.Book `json:"book"`
	}
	path := fmt.Sprintf("/admin-panel/books/api/book/%d/", id)
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return nil, fmt.Errorf("book detail %d: %w", id, err)
	}
	return &payload.Book, nil
}

// NormalizeISBN strips hyphens and spaces from user input.
func NormalizeISBN(raw string) string {
	s := strings.ReplaceAll(strings.TrimSpace(raw), "-", "")
	return strings.ReplaceAll(s, " ", "")
}

// CheckISBN validates the normalized ISBN format: 10 or 13 digits.
func CheckISBN(isbn string) error {
	if isbn == "" {
		return ErrEmptyISBN
	}
	if len(isbn) != 10 && len(isbn) != 13 {
		return ErrInvalidISBN
	}
	for _, r := range isbn {
		if r < '0' || r > '9' {
			return ErrInvalidISBN
		}
	}
	return nil
}

// ValidateISBN looks up a book by ISBN and reports which of the external
// record's authors, publisher and category already exist in the database.
// Format errors are returned without touching the network.
func (c *Client) ValidateISBN(ctx context.Context, raw string) (*domain.ISBNResult, error) {
	isbn := NormalizeISBN(raw)
	if err := CheckISBN(isbn); err != nil {
		return nil, err
	}

	var result domain.ISBNResult
	body := struct {
		ISBN string `json:"isbn"`
	}{ISBN: isbn}
	if err := c.postJSONAnon(ctx, "/api/isbn/validate/", body, &result); err != nil {
		return nil, fmt.Errorf("isbn lookup: %w", err)
	}
	return &result, nil
}
