// Package api is the HTTP client for the ShelfSmart server. It mirrors the
// browser's fetch layer: CSRF token injection on mutating requests, JSON
// decoding, and the split between legacy status-only handlers and the newer
// {success, error} responses.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNoCSRFToken is returned before any network I/O when a mutating call is
// attempted without a session token.
var ErrNoCSRFToken = errors.New("security token not found, please sign in again")

// csrfCookieName is the cookie the server sets alongside the login page.
const csrfCookieName = "csrftoken"

// StatusError is a non-2xx response without a usable JSON body.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server returned status %d", e.Code)
}

// AppError is an application-level rejection: a {success:false} payload,
// optionally with per-field validation messages.
type AppError struct {
	Message     string
	FieldErrors map[string][]string
}

func (e *AppError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "request rejected by server"
}

// Client talks to one ShelfSmart server. All methods take a context and are
// safe for use from Bubble Tea commands.
type Client struct {
	base      *url.URL
	http      *http.Client
	log       *zap.SugaredLogger
	loginPath string
	csrfToken string // explicit token (hidden-field equivalent); cookie jar is the fallback
}

// New creates a client for the given server base URL.
func New(baseURL string, timeout time.Duration, log *zap.SugaredLogger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid server URL %q: scheme and host required", baseURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	if log == nil {
		log = zap.S()
	}

	return &Client{
		base:      base,
		http:      &http.Client{Jar: jar, Timeout: timeout},
		log:       log,
		loginPath: "/auth/login/",
	}, nil
}

// SetCSRFToken stores an explicitly supplied token. It takes precedence over
// the cookie, matching the hidden form field on rendered pages.
func (c *Client) SetCSRFToken(token string) {
	c.csrfToken = token
}

// CSRFToken returns the current token: the explicit one if set, otherwise
// the csrftoken cookie from the jar.
func (c *Client) CSRFToken() string {
	if c.csrfToken != "" {
		return c.csrfToken
	}
	for _, ck := range c.http.Jar.Cookies(c.base) {
		if ck.Name == csrfCookieName {
			return ck.Value
		}
	}
	return ""
}

// Bootstrap fetches the login page so the server sets the csrftoken cookie.
func (c *Client) Bootstrap(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, c.loginPath, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach server: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if c.CSRFToken() == "" {
		c.log.Warnw("no csrf token after bootstrap", "url", c.endpoint(c.loginPath))
	}
	return nil
}

// endpoint resolves a server-relative path against the base URL.
func (c *Client) endpoint(path string) string {
	return c.base.String() + path
}

// newRequest builds a request with the standard headers. Every request gets
// a fresh X-Request-ID so client and server logs line up.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.endpoint(path), body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

// newMutatingRequest is newRequest plus the CSRF header; it fails before any
// network I/O when no token is available.
func (c *Client) newMutatingRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	token := c.CSRFToken()
	if token == "" {
		return nil, ErrNoCSRFToken
	}
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-CSRFToken", token)
	return req, nil
}

// statusPayload is the common {success, error, field_errors} envelope. Field
// errors arrive either as plain strings or as {message} objects.
type statusPayload struct {
	Success     bool                         `json:"success"`
	Error       string                       `json:"error"`
	FieldErrors map[string][]json.RawMessage `json:"field_errors"`
}

func (p *statusPayload) appError() *AppError {
	appErr := &AppError{Message: p.Error}
	if len(p.FieldErrors) > 0 {
		appErr.FieldErrors = make(map[string][]string, len(p.FieldErrors))
		for field, raw := range p.FieldErrors {
			for _, msg := range raw {
				appErr.FieldErrors[field] = append(appErr.FieldErrors[field], decodeFieldError(msg))
			}
		}
	}
	return appErr
}

func decodeFieldError(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Message != "" {
		return obj.Message
	}
	return string(raw)
}

// do executes the request and decodes the response into out (may be nil).
// Both response conventions are handled: legacy handlers answer with a bare
// HTTP status, newer ones with a {success, error} JSON body.
func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	isJSON := strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") ||
		(len(body) > 0 && body[0] == '{')

	if !isJSON {
		// Legacy handler: the status code is the whole answer.
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &StatusError{Code: resp.StatusCode}
		}
		return nil
	}

	var envelope statusPayload
	if err := json.Unmarshal(body, &envelope); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &StatusError{Code: resp.StatusCode}
		}
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !envelope.Success {
		appErr := envelope.appError()
		if appErr.Message == "" && (resp.StatusCode < 200 || resp.StatusCode >= 300) {
			return &StatusError{Code: resp.StatusCode}
		}
		return appErr
	}

	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// getJSON issues a GET and decodes the success payload into out.
func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

// postJSON issues a CSRF-protected POST with a JSON body.
func (c *Client) postJSON(ctx context.Context, path string, payload interface{}, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := c.newMutatingRequest(ctx, http.MethodPost, path, strings.NewReader(string(data)))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// postJSONAnon issues a JSON POST without the CSRF header, for the few
// endpoints exempt from token checks (ISBN lookup).
func (c *Client) postJSONAnon(ctx context.Context, path string, payload interface{}, out interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}
	req, err := c.newRequest(ctx, http.MethodPost, path, strings.NewReader(string(data)))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

// postForm issues a CSRF-protected POST with a form-encoded body.
func (c *Client) postForm(ctx context.Context, path string, fields url.Values, out interface{}) error {
	req, err := c.newMutatingRequest(ctx, http.MethodPost, path, strings.NewReader(fields.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(req, out)
}
