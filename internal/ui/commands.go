package ui

import (
	"context"
	"errors"
	"net/url"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"shelfsmart/internal/api"
	"shelfsmart/internal/domain"
	"shelfsmart/internal/history"
)

// Commands wrap every server call as a tea.Cmd so the Update loop never
// blocks on the network.

func (m *Model) loadCatalogCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		books, err := m.client.ListBooks(ctx)
		return catalogMsg{books: books, err: err}
	}
}

func (m *Model) fetchDetailCmd(reqID int, purpose string, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		book, err := m.client.BookDetail(ctx, id)
		return bookDetailMsg{reqID: reqID, purpose: purpose, book: book, err: err}
	}
}

func (m *Model) mutateCmd(kind domain.EntityKind, action domain.Action, id int, fields url.Values) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		err := m.client.MutateEntity(ctx, kind, action, fields)
		return mutationMsg{kind: kind, action: action, id: id, err: err}
	}
}

func (m *Model) deleteCmd(kind domain.EntityKind, id int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		err := m.client.DeleteEntity(ctx, kind, id)
		return mutationMsg{kind: kind, action: domain.ActionDelete, id: id, err: err}
	}
}

func (m *Model) quickAddCmd(kind, name string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		var err error
		switch kind {
		case "author":
			err = m.client.QuickAddAuthor(ctx, name)
		case "category":
			err = m.client.QuickAddCategory(ctx, name)
		case "publisher":
			err = m.client.QuickAddPublisher(ctx, name)
		default:
			err = errors.New("unknown quick-add kind " + kind)
		}
		return quickAddMsg{kind: kind, name: name, err: err}
	}
}

func (m *Model) validateISBNCmd(reqID int, raw string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		result, err := m.client.ValidateISBN(ctx, raw)
		return isbnMsg{reqID: reqID, result: result, err: err}
	}
}

// debounceCmd schedules the settle tick for one recorder generation.
func (m *Model) debounceCmd(gen int) tea.Cmd {
	return tea.Tick(m.recorder.Delay(), func(time.Time) tea.Msg {
		return debounceMsg{gen: gen}
	})
}

func (m *Model) saveSearchCmd(query string, resultsCount int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		err := m.client.SaveSearch(ctx, query, history.SearchType, resultsCount)
		return searchSavedMsg{query: query, err: err}
	}
}

func (m *Model) loadHistoryCmd() tea.Cmd {
	limit := m.config.Search.HistoryLimit
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		records, err := m.client.History(ctx, limit)
		return historyMsg{records: records, err: err}
	}
}

func (m *Model) clearHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		err := m.client.ClearHistory(ctx)
		return historyClearedMsg{err: err}
	}
}

func (m *Model) loginCmd(username, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := m.opContext()
		defer cancel()
		result, err := m.client.Login(ctx, username, password)
		if err != nil {
			var appErr *api.AppError
			if errors.As(err, &appErr) {
				fieldErrs := make(map[string]string)
				for field, msgs := range appErr.FieldErrors {
					if len(msgs) > 0 {
						fieldErrs[field] = msgs[0]
					}
				}
				return loginMsg{errMsg: appErr.Message, fieldErrs: fieldErrs}
			}
			return loginMsg{err: err}
		}
		return loginMsg{success: result.Success, redirectURL: result.RedirectURL}
	}
}

// opContext bounds one server call with the configured timeout.
func (m *Model) opContext() (context.Context, context.CancelFunc) {
	timeout := time.Duration(m.config.Search.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}
