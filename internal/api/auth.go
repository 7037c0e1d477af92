package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// LoginResult carries the server's answer to a login attempt.
type LoginResult struct {
	Success     bool   `json:"success"`
	RedirectURL string `json:"redirect_url"`
}

// Login posts credentials to the login page the way the browser form does:
// form-encoded, marked as an XMLHttpRequest so the server answers JSON
// instead of redirecting. Field-level validation failures come back as an
// *AppError with FieldErrors populated.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if c.CSRFToken() == "" {
		if err := c.Bootstrap(ctx); err != nil {
			return nil, err
		}
	}

	fields := url.Values{}
	fields.Set("username", strings.TrimSpace(username))
	fields.Set("password", password)

	req, err := c.newMutatingRequest(ctx, http.MethodPost, c.loginPath, strings.NewReader(fields.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")

	var result LoginResult
	if err := c.do(req, &result); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	// A fresh session cookie may come with a rotated CSRF token; drop the
	// explicit one so the jar wins from here on.
	c.csrfToken = ""

	return &result, nil
}
