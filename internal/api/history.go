package api

import (
	"context"
	"fmt"
	"net/http"

	"shelfsmart/internal/domain"
)

// SaveSearch persists one search query. Callers treat failures as
// best-effort telemetry: log and move on, never surface to the user.
func (c *Client) SaveSearch(ctx context.Context, query, searchType string, resultsCount int) error {
	body := struct {
		SearchQuery  string `json:"search_query"`
		SearchType   string `json:"search_type"`
		ResultsCount int    `json:"results_count"`
	}{
		SearchQuery:  query,
		SearchType:   searchType,
		ResultsCount: resultsCount,
	}
	if err := c.postJSON(ctx, "/search-history/api/save/", body, nil); err != nil {
		return fmt.Errorf("save search: %w", err)
	}
	return nil
}

// History fetches the most recent saved searches, newest first.
func (c *Client) History(ctx context.Context, limit int) ([]domain.SearchRecord, error) {
	var payload struct {
		Success bool                  `json:"success"`
		History []domain.SearchRecord `json:"history"`
	}
	path := fmt.Sprintf("/search-history/api/?limit=%d", limit)
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return payload.History, nil
}

// ClearHistory deletes all saved searches for the session user.
func (c *Client) ClearHistory(ctx context.Context) error {
	req, err := c.newMutatingRequest(ctx, http.MethodDelete, "/search-history/api/clear/", nil)
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
