package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shelfsmart/internal/api"
	"shelfsmart/internal/config"
	"shelfsmart/internal/domain"
	"shelfsmart/internal/eventbus"
	"shelfsmart/internal/ui/form"
	inputtypes "shelfsmart/internal/ui/input/types"
	"shelfsmart/internal/ui/state"
)

// newTestModel builds a logged-in model with a small catalog. Commands
// returned by the model are asserted on but never executed, so the dummy
// server address is never dialed.
func newTestModel(t *testing.T) *Model {
	t.Helper()
	cfg := config.DefaultConfig()
	client, err := api.New("http://127.0.0.1:9", time.Second, zap.NewNop().Sugar())
	require.NoError(t, err)

	m := NewModel(eventbus.New(), cfg, client, zap.NewNop().Sugar())
	m.state.LoggedIn = true
	m.state.SetCatalog([]domain.Book{
		{ID: 1, Title: "Dune", Availability: "available",
			Authors: []domain.BookAuthor{{ID: 10, Name: "Frank Herbert", Role: "primary"}}},
		{ID: 2, Title: "Foundation", Availability: "reserved",
			Authors: []domain.BookAuthor{{ID: 11, Name: "Isaac Asimov", Role: "primary"}}},
		{ID: 3, Title: "Hyperion", Availability: "available",
			Authors: []domain.BookAuthor{{ID: 12, Name: "Dan Simmons", Role: "primary"}}},
	})
	m.applyFilter("")
	m.inputHandler.ChangeMode(inputtypes.ModeNormal)
	return m
}

func TestDeleteTokenClearedOnClose(t *testing.T) {
	m := newTestModel(t)

	cmd := m.openDelete()
	require.Nil(t, cmd, "confirm_deletes on, nothing fires yet")
	require.Equal(t, 1, m.state.PendingDeleteID)
	require.Equal(t, inputtypes.ModeConfirm, m.inputHandler.CurrentMode())

	m.closePopup()
	require.Zero(t, m.state.PendingDeleteID)
	require.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())

	// A confirm landing after the popup closed must not delete anything.
	cmd = m.confirmPending()
	require.Nil(t, cmd)
	require.Len(t, m.state.Books, 3)
}

func TestConfirmedDeleteFires(t *testing.T) {
	m := newTestModel(t)

	m.openDelete()
	cmd := m.confirmPending()
	require.NotNil(t, cmd)
	require.Zero(t, m.state.PendingDeleteID, "token consumed on confirm")
	require.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
}

func TestDeleteWithoutConfirmationSetting(t *testing.T) {
	m := newTestModel(t)
	m.config.UISettings.ConfirmDeletes = false

	cmd := m.openDelete()
	require.NotNil(t, cmd, "delete fires immediately when confirmation is off")
	require.Zero(t, m.state.PendingDeleteID)
}

func TestStaleDetailResponseDropped(t *testing.T) {
	m := newTestModel(t)

	cmd := m.openView()
	require.NotNil(t, cmd)
	current := m.detailReq

	stale := &domain.Book{ID: 2, Title: "Foundation"}
	m.handleBookDetail(bookDetailMsg{reqID: current - 1, purpose: "view", book: stale})
	require.Nil(t, m.state.ViewBook, "stale response must not reach the popup")

	fresh := &domain.Book{ID: 1, Title: "Dune"}
	m.handleBookDetail(bookDetailMsg{reqID: current, purpose: "view", book: fresh})
	require.NotNil(t, m.state.ViewBook)
	require.Equal(t, "Dune", m.state.ViewBook.Title)
}

func TestViewResponseAfterCloseIgnored(t *testing.T) {
	m := newTestModel(t)

	m.openView()
	current := m.detailReq
	m.closePopup()

	m.handleBookDetail(bookDetailMsg{reqID: current, purpose: "view", book: &domain.Book{ID: 1}})
	require.Nil(t, m.state.ViewBook, "popup closed before the fetch landed")
}

func TestEditFormPopulatesFromDetail(t *testing.T) {
	m := newTestModel(t)

	cmd := m.openEdit()
	require.NotNil(t, cmd)
	require.Equal(t, form.StateLoading, m.form.State())

	detail := &domain.Book{
		ID: 1, Title: "Dune", CategoryID: 3, PublisherID: 7, Quantity: 2,
		Authors: []domain.BookAuthor{{ID: 10, Name: "Frank Herbert", Role: "primary"}},
	}
	m.handleBookDetail(bookDetailMsg{reqID: m.detailReq, purpose: "edit", book: detail})

	require.Equal(t, form.StateOpen, m.form.State())
	require.Equal(t, "Dune", m.form.Value("title"))
	require.Equal(t, "10", m.form.Values().Get("author_0"))
}

func TestEditSuccessPatchesOneRow(t *testing.T) {
	m := newTestModel(t)
	m.openEdit()

	_, cmd := m.handleMutation(mutationMsg{kind: domain.KindBook, action: domain.ActionEdit, id: 1})
	require.NotNil(t, cmd, "edit success schedules a single-row refresh")
	require.False(t, m.form.IsOpen())

	updated := domain.Book{ID: 1, Title: "Dune (Deluxe)", Availability: "available"}
	m.handleBookDetail(bookDetailMsg{purpose: "patch", book: &updated})

	i, ok := m.state.BookByID(1)
	require.True(t, ok)
	require.Equal(t, "Dune (Deluxe)", m.state.Books[i].Title)
	require.Len(t, m.state.Books, 3, "patch replaces in place, no reload")
}

func TestMutationErrorReopensForm(t *testing.T) {
	m := newTestModel(t)
	m.openAdd(domain.KindBook)

	appErr := &api.AppError{
		Message:     "Validation failed",
		FieldErrors: map[string][]string{"isbn": {"ISBN already exists"}},
	}
	m.handleMutation(mutationMsg{kind: domain.KindBook, action: domain.ActionAdd, err: appErr})

	require.True(t, m.form.IsOpen())
	require.Equal(t, "Validation failed", m.form.Error())
	require.Equal(t, "ISBN already exists", m.form.FieldError("isbn"))
}

func TestDeleteSuccessRemovesRowLocally(t *testing.T) {
	m := newTestModel(t)

	_, cmd := m.handleMutation(mutationMsg{kind: domain.KindBook, action: domain.ActionDelete, id: 2})
	require.Nil(t, cmd, "no reload after delete")
	require.Len(t, m.state.Books, 2)
	_, ok := m.state.BookByID(2)
	require.False(t, ok)
}

func TestApplySearchSeedsFilterAndInput(t *testing.T) {
	m := newTestModel(t)

	m.applySearch("dune")
	require.Equal(t, "dune", m.state.FilterQuery)
	require.Len(t, m.state.VisibleRows, 1)
	require.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
	require.Equal(t, "dune", m.inputHandler.TextInput().Value())

	// Re-running a saved query must not arm a debounced re-save.
	_, cmd := m.handleNonKeyboardMsg(debounceMsg{gen: 1})
	require.Nil(t, cmd)
}

func TestDebouncedSaveOnlyForSettledQuery(t *testing.T) {
	m := newTestModel(t)

	require.NotNil(t, m.onSearchTyped("dun"))
	require.NotNil(t, m.onSearchTyped("dune"))

	// Generations are handed out in order; the first tick is stale.
	_, cmd := m.handleNonKeyboardMsg(debounceMsg{gen: 1})
	require.Nil(t, cmd)
	_, cmd = m.handleNonKeyboardMsg(debounceMsg{gen: 2})
	require.NotNil(t, cmd, "the settled query saves")
}

func TestShortQueryFiltersButNeverSaves(t *testing.T) {
	m := newTestModel(t)

	cmd := m.onSearchTyped("du")
	require.Nil(t, cmd, "below minimum length, no debounce armed")
	require.Equal(t, "du", m.state.FilterQuery)
	require.Len(t, m.state.VisibleRows, 1)
}

func TestQuickAddDeclineReturnsToForm(t *testing.T) {
	m := newTestModel(t)
	m.openAdd(domain.KindBook)
	m.state.QuickAddQueue = []state.QuickAddItem{
		{Kind: "author", Name: "Frank Herbert"},
		{Kind: "publisher", Name: "Ace"},
	}
	m.inputHandler.ChangeMode(inputtypes.ModeQuickAdd)

	m.closePopup()
	require.Empty(t, m.state.QuickAddQueue, "decline drops the whole queue")
	require.Equal(t, inputtypes.ModeForm, m.inputHandler.CurrentMode())
	require.True(t, m.form.IsOpen(), "the book form survives the decline")
}

func TestQuickAddConfirmsOneAtATime(t *testing.T) {
	m := newTestModel(t)
	m.openAdd(domain.KindBook)
	m.state.QuickAddQueue = []state.QuickAddItem{
		{Kind: "author", Name: "Frank Herbert"},
		{Kind: "publisher", Name: "Ace"},
	}
	m.inputHandler.ChangeMode(inputtypes.ModeQuickAdd)

	cmd := m.confirmPending()
	require.NotNil(t, cmd)
	require.Len(t, m.state.QuickAddQueue, 1)
	require.Equal(t, inputtypes.ModeQuickAdd, m.inputHandler.CurrentMode())

	cmd = m.confirmPending()
	require.NotNil(t, cmd)
	require.Empty(t, m.state.QuickAddQueue)
	require.Equal(t, inputtypes.ModeForm, m.inputHandler.CurrentMode())
}

func TestStaleISBNResultDropped(t *testing.T) {
	m := newTestModel(t)
	m.openAdd(domain.KindBook)
	m.form.SetValue("isbn", "9780441172719")

	cmd := m.lookupISBN()
	require.NotNil(t, cmd)
	current := m.isbnReq

	m.handleISBNResult(isbnMsg{reqID: current - 1, result: &domain.ISBNResult{Title: "Wrong Book"}})
	require.Empty(t, m.form.Value("title"), "stale lookup must not fill the form")

	m.handleISBNResult(isbnMsg{reqID: current, result: &domain.ISBNResult{Title: "Dune"}})
	require.Equal(t, "Dune", m.form.Value("title"))
}

func TestISBNResultSelectsMatchedAuthors(t *testing.T) {
	m := newTestModel(t)
	m.openAdd(domain.KindBook)
	m.form.SetValue("isbn", "9780441172719")
	m.lookupISBN()

	result := &domain.ISBNResult{
		Title:              "Dune",
		Authors:            []string{"Frank Herbert"},
		Publisher:          "Chilton Books",
		Categories:         []string{"Science Fiction"},
		MatchedCategoryID:  3,
		MatchedPublisherID: 7,
		MatchedAuthors:     []domain.MatchedAuthor{{ID: 10, Name: "Frank Herbert"}},
	}
	m.handleISBNResult(isbnMsg{reqID: m.isbnReq, result: result})

	require.Equal(t, inputtypes.ModeForm, m.inputHandler.CurrentMode(), "fully matched lookup needs no quick-adds")
	fields := m.form.Values()
	require.Equal(t, "10", fields.Get("author_0"))
	require.Equal(t, "primary", fields.Get("author_role_0"))
}

func TestISBNResultQueuesUnmatchedRecords(t *testing.T) {
	m := newTestModel(t)
	m.openAdd(domain.KindBook)
	m.form.SetValue("isbn", "9780441172719")
	m.lookupISBN()

	result := &domain.ISBNResult{
		Title:      "Dune",
		Authors:    []string{"Frank Herbert"},
		Publisher:  "Chilton Books",
		Categories: []string{"Science Fiction"},
	}
	m.handleISBNResult(isbnMsg{reqID: m.isbnReq, result: result})

	require.Equal(t, inputtypes.ModeQuickAdd, m.inputHandler.CurrentMode())
	require.Len(t, m.state.QuickAddQueue, 3)
	require.Equal(t, "author", m.state.QuickAddQueue[0].Kind)
}

func TestLoginSuccessEntersCatalog(t *testing.T) {
	m := newTestModel(t)
	m.state.LoggedIn = false
	m.inputHandler.ChangeMode(inputtypes.ModeLogin)
	m.loginUser.SetValue("admin")

	_, cmd := m.handleLogin(loginMsg{success: true, redirectURL: "/admin-panel/"})
	require.NotNil(t, cmd, "catalog and history load after login")
	require.True(t, m.state.LoggedIn)
	require.Equal(t, "admin", m.state.Username)
	require.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())
}

func TestLoginFailureShowsFieldErrors(t *testing.T) {
	m := newTestModel(t)
	m.state.LoggedIn = false
	m.inputHandler.ChangeMode(inputtypes.ModeLogin)

	m.handleLogin(loginMsg{
		success:   false,
		errMsg:    "Please correct the errors below",
		fieldErrs: map[string]string{"username": "Unknown user"},
	})
	require.False(t, m.state.LoggedIn)
	require.Equal(t, "Please correct the errors below", m.loginErr)
	require.Equal(t, "Unknown user", m.loginField["username"])
}

func TestSortKeepsCursorOnSameBook(t *testing.T) {
	m := newTestModel(t)

	// Select Hyperion, then cycle to availability sort.
	m.state.SelectedIndex = 2
	selected, ok := m.state.SelectedBook()
	require.True(t, ok)

	m.currentSort = 3 // availability
	m.applySort()

	after, ok := m.state.SelectedBook()
	require.True(t, ok)
	require.Equal(t, selected.ID, after.ID)
}
