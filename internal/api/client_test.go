package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shelfsmart/internal/domain"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(srv.URL, 5*time.Second, zap.NewNop().Sugar())
	require.NoError(t, err)
	return client, srv
}

func TestMutateWithoutTokenFailsBeforeNetwork(t *testing.T) {
	hits := 0
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))

	err := client.MutateEntity(context.Background(), domain.KindBook, domain.ActionAdd, url.Values{})
	require.ErrorIs(t, err, ErrNoCSRFToken)
	require.Equal(t, 0, hits, "request must not leave the client without a token")
}

func TestMutateSendsCSRFHeaderAndAction(t *testing.T) {
	var gotToken, gotAction, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotToken = r.Header.Get("X-CSRFToken")
		gotAction = r.PostFormValue("action")
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	client.SetCSRFToken("tok123")

	fields := url.Values{}
	fields.Set("name", "Ursula K. Le Guin")
	err := client.MutateEntity(context.Background(), domain.KindAuthor, domain.ActionAdd, fields)
	require.NoError(t, err)
	require.Equal(t, "tok123", gotToken)
	require.Equal(t, "add", gotAction)
	require.Equal(t, "/admin-panel/authors/", gotPath)
}

func TestLegacyStatusOnlyResponses(t *testing.T) {
	status := http.StatusOK
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	client.SetCSRFToken("tok")

	require.NoError(t, client.MutateEntity(context.Background(), domain.KindCategory, domain.ActionAdd, url.Values{}))

	status = http.StatusBadRequest
	err := client.MutateEntity(context.Background(), domain.KindCategory, domain.ActionAdd, url.Values{})
	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusBadRequest, statusErr.Code)
}

func TestJSONEnvelopeFailureBecomesAppError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "ISBN already exists",
		})
	}))
	client.SetCSRFToken("tok")

	err := client.MutateEntity(context.Background(), domain.KindBook, domain.ActionAdd, url.Values{})
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "ISBN already exists", appErr.Message)
}

func TestFieldErrorsDecodeBothShapes(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{
			"success": false,
			"error": "Validation failed",
			"field_errors": {
				"username": [{"message": "This field is required"}],
				"password": ["Too short"]
			}
		}`))
	}))
	client.SetCSRFToken("tok")

	err := client.MutateEntity(context.Background(), domain.KindBook, domain.ActionEdit, url.Values{})
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, []string{"This field is required"}, appErr.FieldErrors["username"])
	require.Equal(t, []string{"Too short"}, appErr.FieldErrors["password"])
}

func TestBootstrapReadsCSRFCookie(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "cookie-token", Path: "/"})
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.Bootstrap(context.Background()))
	require.Equal(t, "cookie-token", client.CSRFToken())
}

func TestExplicitTokenWinsOverCookie(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "cookie-token", Path: "/"})
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.Bootstrap(context.Background()))
	client.SetCSRFToken("explicit")
	require.Equal(t, "explicit", client.CSRFToken())
}

func TestRequestsCarryRequestID(t *testing.T) {
	var gotID string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "books": []}`))
	}))

	_, err := client.ListBooks(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, gotID)
}

func TestLoginPostsFormWithAjaxHeader(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "t1", Path: "/"})
			w.WriteHeader(http.StatusOK)
			return
		}
		require.Equal(t, "XMLHttpRequest", r.Header.Get("X-Requested-With"))
		require.Equal(t, "t1", r.Header.Get("X-CSRFToken"))
		require.NoError(t, r.ParseForm())
		require.Equal(t, "admin", r.PostFormValue("username"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success": true, "redirect_url": "/admin-panel/"}`))
	}))

	result, err := client.Login(context.Background(), "admin", "secret")
	require.NoError(t, err)
	require.True(t, result.Success)
	require.Equal(t, "/admin-panel/", result.RedirectURL)
}

func TestLoginFieldErrors(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			http.SetCookie(w, &http.Cookie{Name: "csrftoken", Value: "t1", Path: "/"})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{
			"success": false,
			"error": "Please correct the errors below",
			"field_errors": {"username": [{"message": "Unknown user"}]}
		}`))
	}))

	_, err := client.Login(context.Background(), "nobody", "x")
	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, "Please correct the errors below", appErr.Message)
	require.Equal(t, []string{"Unknown user"}, appErr.FieldErrors["username"])
}

func TestDeleteEntitySendsIDField(t *testing.T) {
	var gotID, gotAction string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotID = r.PostFormValue("publisher_id")
		gotAction = r.PostFormValue("action")
	}))
	client.SetCSRFToken("tok")

	require.NoError(t, client.DeleteEntity(context.Background(), domain.KindPublisher, 42))
	require.Equal(t, "42", gotID)
	require.Equal(t, "delete", gotAction)
}

func TestContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := client.ListBooks(ctx)
	require.Error(t, err)
	require.True(t, errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled))
}
