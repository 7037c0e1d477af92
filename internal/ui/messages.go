package ui

import (
	"shelfsmart/internal/domain"
	"shelfsmart/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// catalogMsg contains the result of a catalog fetch
type catalogMsg struct {
	books []domain.Book
	err   error
}

// bookDetailMsg carries a fetched book record. The request id lets the
// model drop responses that arrive after the popup they were fetched for
// has closed or been replaced.
type bookDetailMsg struct {
	reqID   int
	purpose string // "edit", "view" or "patch"
	book    *domain.Book
	err     error
}

// mutationMsg contains the result of an entity add/edit/delete
type mutationMsg struct {
	kind   domain.EntityKind
	action domain.Action
	id     int
	err    error
}

// quickAddMsg contains the result of a quick-add call
type quickAddMsg struct {
	kind string
	name string
	err  error
}

// isbnMsg carries an ISBN lookup result, tagged like bookDetailMsg
type isbnMsg struct {
	reqID  int
	result *domain.ISBNResult
	err    error
}

// debounceMsg fires when a pending history save settles. Stale
// generations are ignored by the recorder.
type debounceMsg struct {
	gen int
}

// searchSavedMsg contains the result of a history save
type searchSavedMsg struct {
	query string
	err   error
}

// historyMsg contains fetched history records
type historyMsg struct {
	records []domain.SearchRecord
	err     error
}

// historyClearedMsg contains the result of a history clear
type historyClearedMsg struct {
	err error
}

// loginMsg contains the result of a login attempt
type loginMsg struct {
	success     bool
	redirectURL string
	errMsg      string
	fieldErrs   map[string]string
	err         error
}

// pagerDoneMsg signals the external pager has exited
type pagerDoneMsg struct {
	err error
}
