package ui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"shelfsmart/internal/api"
	"shelfsmart/internal/config"
	"shelfsmart/internal/domain"
	"shelfsmart/internal/eventbus"
	"shelfsmart/internal/history"
	"shelfsmart/internal/ui/form"
	"shelfsmart/internal/ui/input"
	inputtypes "shelfsmart/internal/ui/input/types"
	"shelfsmart/internal/ui/logic"
	"shelfsmart/internal/ui/state"
	"shelfsmart/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	client *api.Client
	state  *state.AppState
	log    *zap.SugaredLogger

	// UI-specific state not in AppState
	width       int
	height      int
	currentSort logic.SortMode
	inPagerMode bool

	// Handlers
	filter       *logic.RowFilter
	sorter       *logic.BookSorter
	navigator    *logic.Navigator
	recorder     *history.Recorder
	inputHandler *input.Handler

	// Renderers
	styles    *views.Styles
	table     *views.TableRenderer
	popup     *views.PopupRenderer
	formView  *views.FormRenderer
	loginView *views.LoginRenderer

	// Popup form; one instance per session, nil state means closed
	form *form.Form

	// Login screen inputs
	loginUser  textinput.Model
	loginPass  textinput.Model
	loginFocus int
	loginErr   string
	loginField map[string]string
	loggingIn  bool

	// Monotonic request ids; a response tagged with an old id is stale
	// and dropped without touching state.
	reqSeq    int
	detailReq int
	isbnReq   int

	pager *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, client *api.Client, logger *zap.SugaredLogger) *Model {
	appState := state.NewAppState()
	styles := views.NewStyles()

	loginUser := textinput.New()
	loginUser.Prompt = ""
	loginUser.CharLimit = 150
	loginUser.SetValue(cfg.Username)
	loginUser.Focus()

	loginPass := textinput.New()
	loginPass.Prompt = ""
	loginPass.CharLimit = 128
	loginPass.EchoMode = textinput.EchoPassword

	m := &Model{
		bus:          bus,
		config:       cfg,
		client:       client,
		state:        appState,
		log:          logger,
		currentSort:  logic.SortByTitle,
		filter:       logic.NewRowFilter(),
		sorter:       logic.NewBookSorter(),
		navigator:    logic.NewNavigator(),
		recorder:     history.NewRecorder(cfg.Search.MinQueryLength, time.Duration(cfg.Search.DebounceMillis)*time.Millisecond),
		inputHandler: input.New(),
		styles:       styles,
		table:        views.NewTableRenderer(styles),
		popup:        views.NewPopupRenderer(styles),
		formView:     views.NewFormRenderer(styles),
		loginView:    views.NewLoginRenderer(styles),
		loginUser:    loginUser,
		loginPass:    loginPass,
		pager:        NewPagerOps(nil),
	}

	if cfg.Username != "" {
		m.loginFocus = 1
		m.loginUser.Blur()
		m.loginPass.Focus()
	}

	m.inputHandler.ChangeMode(inputtypes.ModeLogin)

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	m.state.ViewportHeight = 20 // Will be updated on first WindowSizeMsg
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case EventMsg:
		return m.handleEvent(msg.Event)

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.inPagerMode {
		return m, nil
	}

	// Help popup swallows keys until dismissed
	if m.state.ShowHelp {
		switch msg.String() {
		case "esc", "q", "?":
			m.state.ShowHelp = false
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	ctx := &input.ModelContext{State: m.state}
	actions, cmd := m.inputHandler.HandleKey(msg, ctx)

	cmds := []tea.Cmd{}
	if cmd != nil {
		cmds = append(cmds, cmd)
	}

	for _, action := range actions {
		if actionCmd := m.processAction(action); actionCmd != nil {
			cmds = append(cmds, actionCmd)
		}
	}

	// Unclaimed keys flow into whichever component owns text entry
	if len(actions) == 0 {
		switch m.inputHandler.CurrentMode() {
		case inputtypes.ModeForm:
			if m.form != nil {
				m.form.UpdateFocused(msg)
			}
		case inputtypes.ModeLogin:
			m.updateLoginInput(msg)
		}
	}

	return m, tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QuitAction:
		return tea.Quit

	case inputtypes.NavigateAction:
		m.navigate(a.Direction)

	case inputtypes.UpdateTextAction:
		return m.onSearchTyped(a.Text)

	case inputtypes.SubmitTextAction:
		// Enter in the search box: keep the filter, save immediately
		if query, ok := m.recorder.TakeNow(a.Text); ok {
			return m.saveSearchCmd(query, len(m.state.VisibleRows))
		}

	case inputtypes.CancelTextAction:
		m.inputHandler.SetSearchText("")
		m.applyFilter("")

	case inputtypes.RefreshAction:
		m.state.Loading = true
		return m.loadCatalogCmd()

	case inputtypes.CycleSortAction:
		m.currentSort = (m.currentSort + 1) % 4
		m.applySort()

	case inputtypes.OpenAddAction:
		m.openAdd(domain.EntityKind(a.Kind))

	case inputtypes.OpenEditAction:
		return m.openEdit()

	case inputtypes.OpenViewAction:
		return m.openView()

	case inputtypes.OpenDeleteAction:
		return m.openDelete()

	case inputtypes.CloseAction:
		m.closePopup()

	case inputtypes.ConfirmAction:
		return m.confirmPending()

	case inputtypes.FocusNextAction:
		if m.inputHandler.CurrentMode() == inputtypes.ModeLogin {
			m.setLoginFocus(m.loginFocus + 1)
		} else if m.form != nil {
			m.form.FocusNext()
		}

	case inputtypes.FocusPrevAction:
		if m.inputHandler.CurrentMode() == inputtypes.ModeLogin {
			m.setLoginFocus(m.loginFocus + 1)
		} else if m.form != nil {
			m.form.FocusPrev()
		}

	case inputtypes.SubmitFormAction:
		if m.inputHandler.CurrentMode() == inputtypes.ModeLogin {
			return m.submitLogin()
		}
		return m.submitForm()

	case inputtypes.AddAuthorRowAction:
		if m.form != nil {
			m.form.AddAuthorRow()
		}

	case inputtypes.RemoveAuthorRowAction:
		if m.form != nil {
			m.form.RemoveAuthorRow()
		}

	case inputtypes.LookupISBNAction:
		return m.lookupISBN()

	case inputtypes.OpenHistoryAction:
		m.state.HistoryIndex = 0
		m.inputHandler.ChangeMode(inputtypes.ModeHistory)
		return m.loadHistoryCmd()

	case inputtypes.ApplyHistoryAction:
		if rec, ok := m.state.SelectedHistory(); ok {
			m.applySearch(rec.Query)
		}

	case inputtypes.ClearHistoryAction:
		m.state.PendingClear = true
		m.inputHandler.ChangeMode(inputtypes.ModeConfirm)

	case inputtypes.OpenPagerAction:
		if m.state.ViewBook != nil {
			return m.showPagerCmd(BuildBookRecord(m.state.ViewBook))
		}

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
	}

	return nil
}

func (m *Model) navigate(direction string) {
	if m.inputHandler.CurrentMode() == inputtypes.ModeHistory {
		switch direction {
		case "down":
			if m.state.HistoryIndex < len(m.state.History)-1 {
				m.state.HistoryIndex++
			}
		case "up":
			if m.state.HistoryIndex > 0 {
				m.state.HistoryIndex--
			}
		}
		return
	}

	m.syncNavigator()
	var idx, off int
	switch direction {
	case "up":
		idx, off = m.navigator.Move(-1)
	case "down":
		idx, off = m.navigator.Move(1)
	case "pageup":
		idx, off = m.navigator.PageUp()
	case "pagedown":
		idx, off = m.navigator.PageDown()
	case "home":
		idx, off = m.navigator.JumpToTop()
	case "end":
		idx, off = m.navigator.JumpToBottom()
	default:
		return
	}
	m.state.SelectedIndex = idx
	m.state.ViewportOffset = off
}

// onSearchTyped reacts to every keystroke in the search box: refilter
// immediately, then arm the debounced history save when the query
// qualifies.
func (m *Model) onSearchTyped(text string) tea.Cmd {
	m.applyFilter(text)
	if gen, ok := m.recorder.Keystroke(text); ok {
		return m.debounceCmd(gen)
	}
	return nil
}

// applySearch re-runs a saved query: seed the search box and refilter,
// without waking the recorder.
func (m *Model) applySearch(query string) {
	m.inputHandler.SetSearchText(query)
	m.applyFilter(query)
	m.inputHandler.ChangeMode(inputtypes.ModeNormal)
}

func (m *Model) applyFilter(term string) {
	m.state.FilterQuery = strings.TrimSpace(term)
	m.state.SetVisible(m.filter.VisibleRows(m.state.Books, m.state.FilterQuery))
	m.syncNavigator()
}

func (m *Model) applySort() {
	var selectedID int
	if book, ok := m.state.SelectedBook(); ok {
		selectedID = book.ID
	}
	m.sorter.SortBooks(m.state.Books, m.currentSort)
	m.state.SetVisible(m.filter.VisibleRows(m.state.Books, m.state.FilterQuery))

	// Keep the cursor on the same book across the re-order
	if selectedID != 0 {
		for vi, bi := range m.state.VisibleRows {
			if m.state.Books[bi].ID == selectedID {
				m.state.SelectedIndex = vi
				break
			}
		}
	}
	m.syncNavigator()
}

func (m *Model) syncNavigator() {
	m.navigator.UpdateState(
		m.state.SelectedIndex,
		m.state.ViewportOffset,
		m.state.ViewportHeight,
		len(m.state.VisibleRows),
	)
	m.state.SelectedIndex = m.navigator.GetSelectedIndex()
	m.state.ViewportOffset = m.navigator.GetViewportOffset()
}

func (m *Model) openAdd(kind domain.EntityKind) {
	m.form = form.New(form.SchemaFor(kind))
	m.form.OpenAdd()
	m.inputHandler.ChangeMode(inputtypes.ModeForm)
}

func (m *Model) openEdit() tea.Cmd {
	book, ok := m.state.SelectedBook()
	if !ok && m.state.ViewBook != nil {
		// "e" from the detail popup edits the same book
		book, ok = *m.state.ViewBook, true
	}
	if !ok {
		return nil
	}
	m.state.ViewBook = nil
	m.form = form.New(form.BookSchema())
	m.form.OpenEdit(book.ID)
	m.inputHandler.ChangeMode(inputtypes.ModeForm)

	m.reqSeq++
	m.detailReq = m.reqSeq
	return m.fetchDetailCmd(m.detailReq, "edit", book.ID)
}

func (m *Model) openView() tea.Cmd {
	book, ok := m.state.SelectedBook()
	if !ok {
		return nil
	}
	m.state.ViewBook = nil
	m.inputHandler.ChangeMode(inputtypes.ModeView)

	m.reqSeq++
	m.detailReq = m.reqSeq
	return m.fetchDetailCmd(m.detailReq, "view", book.ID)
}

func (m *Model) openDelete() tea.Cmd {
	book, ok := m.state.SelectedBook()
	if !ok {
		return nil
	}
	if !m.config.UISettings.ConfirmDeletes {
		return m.deleteCmd(domain.KindBook, book.ID)
	}
	m.state.PendingDeleteID = book.ID
	m.state.PendingDeleteTitle = book.Title
	m.inputHandler.ChangeMode(inputtypes.ModeConfirm)
	return nil
}

// closePopup tears down whichever popup is open. Every close path runs
// through here so pending tokens cannot survive a dismissed popup.
func (m *Model) closePopup() {
	mode := m.inputHandler.CurrentMode()

	m.state.ClearPendingDelete()
	m.state.PendingClear = false
	m.state.ViewBook = nil

	if mode == inputtypes.ModeQuickAdd {
		// Declining a quick-add returns to the form untouched
		m.state.ClearQuickAdd()
		if m.form != nil && m.form.IsOpen() {
			m.inputHandler.ChangeMode(inputtypes.ModeForm)
			return
		}
	}

	m.state.ClearQuickAdd()
	if m.form != nil {
		m.form.Close()
	}
	m.inputHandler.ChangeMode(inputtypes.ModeNormal)
}

// confirmPending resolves the active confirm popup.
func (m *Model) confirmPending() tea.Cmd {
	if len(m.state.QuickAddQueue) > 0 {
		item, _ := m.state.NextQuickAdd()
		if len(m.state.QuickAddQueue) == 0 {
			if m.form != nil && m.form.IsOpen() {
				m.inputHandler.ChangeMode(inputtypes.ModeForm)
			} else {
				m.inputHandler.ChangeMode(inputtypes.ModeNormal)
			}
		}
		return m.quickAddCmd(item.Kind, item.Name)
	}

	if m.state.PendingClear {
		m.state.PendingClear = false
		m.inputHandler.ChangeMode(inputtypes.ModeHistory)
		return m.clearHistoryCmd()
	}

	if m.state.PendingDeleteID != 0 {
		id := m.state.PendingDeleteID
		m.state.ClearPendingDelete()
		m.inputHandler.ChangeMode(inputtypes.ModeNormal)
		return m.deleteCmd(domain.KindBook, id)
	}

	// Nothing pending: the token was cleared by an earlier close. Treat
	// the stray confirm as a close.
	m.closePopup()
	return nil
}

func (m *Model) submitForm() tea.Cmd {
	if m.form == nil || m.form.State() != form.StateOpen {
		return nil
	}
	if key, problem := m.form.Validate(); problem != "" {
		m.form.SetError("", map[string][]string{key: {problem}})
		return nil
	}
	if !m.form.BeginSubmit() {
		return nil
	}
	return m.mutateCmd(m.form.Schema().Kind, m.form.Action(), m.form.EntityID(), m.form.Values())
}

func (m *Model) lookupISBN() tea.Cmd {
	if m.form == nil || m.form.Schema().Kind != domain.KindBook {
		return nil
	}
	raw := m.form.Value("isbn")
	if raw == "" {
		m.form.SetError("Please enter an ISBN first", nil)
		return nil
	}
	m.reqSeq++
	m.isbnReq = m.reqSeq
	return m.validateISBNCmd(m.isbnReq, raw)
}

// Login handling

func (m *Model) updateLoginInput(msg tea.Msg) {
	if m.loginFocus == 0 {
		m.loginUser, _ = m.loginUser.Update(msg)
	} else {
		m.loginPass, _ = m.loginPass.Update(msg)
	}
}

func (m *Model) setLoginFocus(focus int) {
	m.loginFocus = focus % 2
	if m.loginFocus == 0 {
		m.loginUser.Focus()
		m.loginPass.Blur()
	} else {
		m.loginUser.Blur()
		m.loginPass.Focus()
	}
}

func (m *Model) submitLogin() tea.Cmd {
	if m.loggingIn {
		return nil
	}
	username := strings.TrimSpace(m.loginUser.Value())
	password := m.loginPass.Value()

	fieldErrs := make(map[string]string)
	if username == "" {
		fieldErrs["username"] = "Username is required"
	}
	if password == "" {
		fieldErrs["password"] = "Password is required"
	}
	if len(fieldErrs) > 0 {
		m.loginField = fieldErrs
		return nil
	}

	m.loggingIn = true
	m.loginErr = ""
	m.loginField = nil
	return m.loginCmd(username, password)
}

// handleEvent processes domain events forwarded from the bus
func (m *Model) handleEvent(event eventbus.DomainEvent) (tea.Model, tea.Cmd) {
	switch e := event.(type) {
	case domain.ErrorEvent:
		m.state.StatusMessage = m.styles.StatusError.Render(e.Message)
	case domain.ConfigLoadedEvent:
		m.log.Debugw("config loaded", "server", e.ServerURL)
	}
	return m, nil
}

// handleNonKeyboardMsg handles async results
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogMsg:
		m.state.Loading = false
		if msg.err != nil {
			m.log.Errorw("catalog load failed", "error", msg.err)
			m.state.StatusMessage = m.styles.StatusError.Render("Failed to load catalog: " + shortErr(msg.err))
			return m, nil
		}
		m.state.SetCatalog(msg.books)
		m.applySort()
		m.state.StatusMessage = ""
		m.bus.Publish(domain.CatalogLoadedEvent{Count: len(msg.books)})

	case bookDetailMsg:
		return m.handleBookDetail(msg)

	case mutationMsg:
		return m.handleMutation(msg)

	case quickAddMsg:
		if msg.err != nil {
			m.log.Errorw("quick add failed", "kind", msg.kind, "name", msg.name, "error", msg.err)
			m.state.StatusMessage = m.styles.StatusError.Render(fmt.Sprintf("Could not add %s %q", msg.kind, msg.name))
			return m, nil
		}
		m.state.StatusMessage = m.styles.StatusSuccess.Render(fmt.Sprintf("Added %s %q", msg.kind, msg.name))
		m.bus.Publish(domain.EntityMutatedEvent{Kind: quickAddEntityKind(msg.kind), Action: domain.ActionAdd})

		// Once the queue drains, re-run the lookup so the fresh records
		// match and their ids land in the form
		if len(m.state.QuickAddQueue) == 0 && m.form != nil && m.form.IsOpen() &&
			m.form.Schema().Kind == domain.KindBook {
			return m, m.lookupISBN()
		}

	case isbnMsg:
		return m.handleISBNResult(msg)

	case debounceMsg:
		if query, ok := m.recorder.Take(msg.gen); ok {
			return m, m.saveSearchCmd(query, len(m.state.VisibleRows))
		}

	case searchSavedMsg:
		// History saves are fire-and-forget; failures never interrupt
		if msg.err != nil {
			m.log.Warnw("search save failed", "query", msg.query, "error", msg.err)
			return m, nil
		}
		m.bus.Publish(domain.SearchSavedEvent{Query: msg.query, ResultsCount: len(m.state.VisibleRows)})

	case historyMsg:
		if msg.err != nil {
			m.log.Warnw("history load failed", "error", msg.err)
			return m, nil
		}
		m.state.History = msg.records
		m.state.HistoryLoaded = true
		if m.state.HistoryIndex >= len(msg.records) {
			m.state.HistoryIndex = 0
		}
		m.bus.Publish(domain.HistoryLoadedEvent{Count: len(msg.records)})

	case historyClearedMsg:
		if msg.err != nil {
			m.log.Warnw("history clear failed", "error", msg.err)
			m.state.StatusMessage = m.styles.StatusError.Render("Could not clear history")
			return m, nil
		}
		m.state.History = nil
		m.state.HistoryIndex = 0
		m.bus.Publish(domain.HistoryClearedEvent{})

	case loginMsg:
		return m.handleLogin(msg)

	case pagerDoneMsg:
		m.inPagerMode = false
		if msg.err != nil {
			m.log.Errorw("pager failed", "error", msg.err)
		}
	}

	return m, nil
}

func (m *Model) handleBookDetail(msg bookDetailMsg) (tea.Model, tea.Cmd) {
	// Patch responses update the catalog regardless of what is on screen
	if msg.purpose == "patch" {
		if msg.err != nil {
			m.log.Warnw("patch fetch failed", "error", msg.err)
			return m, m.loadCatalogCmd()
		}
		if !m.state.PatchBook(*msg.book) {
			return m, m.loadCatalogCmd()
		}
		m.applySort()
		return m, nil
	}

	if msg.reqID != m.detailReq {
		m.log.Debugw("dropping stale detail response", "reqID", msg.reqID)
		return m, nil
	}

	if msg.err != nil {
		m.log.Errorw("detail fetch failed", "error", msg.err)
		m.state.StatusMessage = m.styles.StatusError.Render("Failed to load book: " + shortErr(msg.err))
		m.closePopup()
		return m, nil
	}

	switch msg.purpose {
	case "edit":
		if m.form != nil {
			m.form.Populate(form.BookValues(*msg.book))
			m.form.PopulateAuthors(msg.book.Authors)
		}
	case "view":
		if m.inputHandler.CurrentMode() == inputtypes.ModeView {
			m.state.ViewBook = msg.book
		}
	}
	return m, nil
}

func (m *Model) handleMutation(msg mutationMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.log.Errorw("mutation failed", "kind", msg.kind, "action", msg.action, "error", msg.err)
		m.bus.Publish(domain.MutationFailedEvent{Kind: msg.kind, Action: msg.action, Err: msg.err})

		var appErr *api.AppError
		if m.form != nil && m.form.IsOpen() {
			if errors.As(msg.err, &appErr) {
				m.form.SetError(appErr.Message, appErr.FieldErrors)
			} else {
				m.form.SetError(shortErr(msg.err), nil)
			}
			return m, nil
		}
		m.state.StatusMessage = m.styles.StatusError.Render(shortErr(msg.err))
		return m, nil
	}

	m.bus.Publish(domain.EntityMutatedEvent{Kind: msg.kind, Action: msg.action, ID: msg.id})

	if m.form != nil && m.form.IsOpen() {
		m.form.Close()
		m.inputHandler.ChangeMode(inputtypes.ModeNormal)
	}

	switch {
	case msg.kind == domain.KindBook && msg.action == domain.ActionDelete:
		if m.state.RemoveBook(msg.id) {
			m.applyFilter(m.state.FilterQuery)
		}
		m.state.StatusMessage = m.styles.StatusSuccess.Render("Book deleted")

	case msg.kind == domain.KindBook && msg.action == domain.ActionEdit:
		// Refresh just the changed row instead of reloading the table
		m.state.StatusMessage = m.styles.StatusSuccess.Render("Book updated")
		return m, m.fetchDetailCmd(0, "patch", msg.id)

	case msg.kind == domain.KindBook && msg.action == domain.ActionAdd:
		// A new row has a server-assigned id, so a full reload is the
		// only way to pick it up
		m.state.StatusMessage = m.styles.StatusSuccess.Render("Book added")
		m.state.Loading = true
		return m, m.loadCatalogCmd()

	default:
		m.state.StatusMessage = m.styles.StatusSuccess.Render(fmt.Sprintf("%s saved", strings.TrimSuffix(string(msg.kind), "s")))
	}
	return m, nil
}

func (m *Model) handleISBNResult(msg isbnMsg) (tea.Model, tea.Cmd) {
	if msg.reqID != m.isbnReq {
		m.log.Debugw("dropping stale isbn response", "reqID", msg.reqID)
		return m, nil
	}
	if m.form == nil || !m.form.IsOpen() {
		return m, nil
	}
	if msg.err != nil {
		m.form.SetError(shortErr(msg.err), nil)
		return m, nil
	}

	m.form.Merge(form.ISBNValues(*msg.result))
	m.form.SetMatchedAuthors(msg.result.MatchedAuthors)

	// Offer to create records the lookup could not match
	var queue []state.QuickAddItem
	for _, name := range msg.result.UnmatchedAuthors() {
		queue = append(queue, state.QuickAddItem{Kind: "author", Name: name})
	}
	if msg.result.MatchedCategoryID == 0 && len(msg.result.Categories) > 0 {
		queue = append(queue, state.QuickAddItem{Kind: "category", Name: msg.result.Categories[0]})
	}
	if msg.result.MatchedPublisherID == 0 && msg.result.Publisher != "" {
		queue = append(queue, state.QuickAddItem{Kind: "publisher", Name: msg.result.Publisher})
	}

	if len(queue) > 0 {
		m.state.QuickAddQueue = queue
		m.inputHandler.ChangeMode(inputtypes.ModeQuickAdd)
	}
	return m, nil
}

func (m *Model) handleLogin(msg loginMsg) (tea.Model, tea.Cmd) {
	m.loggingIn = false
	if msg.err != nil {
		m.log.Errorw("login failed", "error", msg.err)
		m.loginErr = "Could not reach the server: " + shortErr(msg.err)
		return m, nil
	}
	if !msg.success {
		m.loginErr = msg.errMsg
		if m.loginErr == "" {
			m.loginErr = "Invalid username or password"
		}
		m.loginField = msg.fieldErrs
		m.bus.Publish(domain.LoginFailedEvent{Username: m.loginUser.Value(), Message: m.loginErr})
		return m, nil
	}

	m.state.LoggedIn = true
	m.state.Username = strings.TrimSpace(m.loginUser.Value())
	m.state.Loading = true
	m.loginPass.Reset()
	m.inputHandler.ChangeMode(inputtypes.ModeNormal)

	m.bus.Publish(domain.LoginSucceededEvent{Username: m.state.Username, RedirectURL: msg.redirectURL})
	m.bus.Publish(domain.AppReadyEvent{LoggedIn: true})
	if m.state.Username != m.config.Username {
		m.bus.Publish(domain.ConfigChangedEvent{ServerURL: m.config.ServerURL, Username: m.state.Username})
	}

	return m, tea.Batch(m.loadCatalogCmd(), m.loadHistoryCmd())
}

// showPagerCmd hands the terminal to ov for the given content.
func (m *Model) showPagerCmd(content string) tea.Cmd {
	m.inPagerMode = true
	return func() tea.Msg {
		err := m.pager.ShowInPager(content)
		return pagerDoneMsg{err: err}
	}
}

func (m *Model) updateViewportHeight() {
	// Title, search line, header, status line and padding
	chrome := 8
	h := m.height - chrome
	if h < 3 {
		h = 3
	}
	m.state.ViewportHeight = h
	m.syncNavigator()
}

func shortErr(err error) string {
	if err == nil {
		return ""
	}
	s := err.Error()
	if i := strings.LastIndex(s, ": "); i >= 0 && i+2 < len(s) {
		return s[i+2:]
	}
	return s
}

func quickAddEntityKind(kind string) domain.EntityKind {
	switch kind {
	case "author":
		return domain.KindAuthor
	case "category":
		return domain.KindCategory
	case "publisher":
		return domain.KindPublisher
	}
	return domain.EntityKind(kind)
}
