package form

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shelfsmart/internal/domain"
)

// State tracks the form popup lifecycle. Loading covers the gap between
// opening an edit popup and the detail fetch landing.
type State int

const (
	StateClosed State = iota
	StateLoading
	StateOpen
	StateSubmitting
)

const maxAuthorRows = 8

// Form is the popup form for one entity instance. All mutable state lives
// on the instance; closing the popup discards it wholesale, so a reopened
// form always starts clean.
type Form struct {
	schema Schema
	action domain.Action
	state  State

	entityID int // set for edit, zero for add

	inputs  []textinput.Model
	authors []authorEntry
	// Author rows are edited as interleaved id/role inputs appended after
	// the schema fields; authorBase is the first such input index.
	authorBase int
	focus      int

	errMsg     string
	fieldErrs  map[string][]string
	submitOnce bool
}

// New builds a closed form for the given schema.
func New(schema Schema) *Form {
	return &Form{schema: schema}
}

// OpenAdd opens an empty add form.
func (f *Form) OpenAdd() {
	f.open(domain.ActionAdd, 0)
}

// OpenEdit opens an edit form in the loading state; Populate completes it
// once the current server values arrive.
func (f *Form) OpenEdit(id int) {
	f.open(domain.ActionEdit, id)
	f.state = StateLoading
}

func (f *Form) open(action domain.Action, id int) {
	f.action = action
	f.entityID = id
	f.state = StateOpen
	f.errMsg = ""
	f.fieldErrs = nil
	f.submitOnce = false
	f.focus = 0
	f.authors = nil

	f.inputs = make([]textinput.Model, len(f.schema.Fields))
	for i, field := range f.schema.Fields {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = field.Placeholder
		in.CharLimit = 512
		f.inputs[i] = in
	}
	f.authorBase = len(f.inputs)
	if f.schema.HasAuthors {
		f.addAuthorRow("", "")
	}
	f.applyFocus()
}

// Populate fills an edit form from fetched values and moves it from
// loading to open. A stale call after the popup closed is a no-op.
func (f *Form) Populate(values map[string]string) {
	if f.state != StateLoading {
		return
	}
	for i, field := range f.schema.Fields {
		f.inputs[i].SetValue(values[field.Key])
	}
	f.state = StateOpen
	f.applyFocus()
}

// PopulateAuthors fills the repeatable author rows on an edit form.
func (f *Form) PopulateAuthors(authors []domain.BookAuthor) {
	if !f.schema.HasAuthors || f.state == StateClosed {
		return
	}
	f.inputs = f.inputs[:f.authorBase]
	f.authors = nil
	for _, a := range authors {
		f.addAuthorRow(strconv.Itoa(a.ID), a.Role)
	}
	if len(f.authors) == 0 {
		f.addAuthorRow("", "")
	}
	f.applyFocus()
}

// SetMatchedAuthors replaces the author rows with the ids the ISBN lookup
// resolved, the way the web form auto-selects them. Without matches the
// rows are left alone.
func (f *Form) SetMatchedAuthors(authors []domain.MatchedAuthor) {
	if !f.schema.HasAuthors || f.state != StateOpen || len(authors) == 0 {
		return
	}
	f.inputs = f.inputs[:f.authorBase]
	f.authors = nil
	for _, a := range authors {
		if len(f.authors) >= maxAuthorRows {
			break
		}
		f.addAuthorRow(strconv.Itoa(a.ID), "primary")
	}
	if f.focus >= len(f.inputs) {
		f.focus = len(f.inputs) - 1
	}
	f.applyFocus()
}

// Merge overlays values onto the currently open form, keeping whatever the
// user already typed in fields the overlay does not cover.
func (f *Form) Merge(values map[string]string) {
	if f.state != StateOpen {
		return
	}
	for i, field := range f.schema.Fields {
		if v, ok := values[field.Key]; ok && v != "" {
			f.inputs[i].SetValue(v)
		}
	}
}

// Close discards the form state entirely.
func (f *Form) Close() {
	f.state = StateClosed
	f.inputs = nil
	f.authors = nil
	f.errMsg = ""
	f.fieldErrs = nil
}

// State returns the current lifecycle state.
func (f *Form) State() State { return f.state }

// IsOpen reports whether the popup should be rendered.
func (f *Form) IsOpen() bool { return f.state != StateClosed }

// Action returns add or edit for the current session.
func (f *Form) Action() domain.Action { return f.action }

// EntityID returns the id being edited, zero for add.
func (f *Form) EntityID() int { return f.entityID }

// Schema returns the form's schema.
func (f *Form) Schema() Schema { return f.schema }

// Title renders the popup heading.
func (f *Form) Title() string {
	if f.action == domain.ActionEdit {
		return "Edit " + f.schema.Title
	}
	return "Add " + f.schema.Title
}

// Error returns the banner error message, empty when none.
func (f *Form) Error() string { return f.errMsg }

// FieldError returns the first server-side error for a field key.
func (f *Form) FieldError(key string) string {
	if errs := f.fieldErrs[key]; len(errs) > 0 {
		return errs[0]
	}
	return ""
}

// SetError records a failed submit. The popup stays open with inputs
// preserved and the submit re-enabled.
func (f *Form) SetError(msg string, fieldErrs map[string][]string) {
	if f.state == StateClosed {
		return
	}
	f.state = StateOpen
	f.errMsg = msg
	f.fieldErrs = fieldErrs
	f.submitOnce = false
}

// FocusNext advances focus to the next input, wrapping around.
func (f *Form) FocusNext() {
	if len(f.inputs) == 0 {
		return
	}
	f.focus = (f.focus + 1) % len(f.inputs)
	f.applyFocus()
}

// FocusPrev moves focus to the previous input, wrapping around.
func (f *Form) FocusPrev() {
	if len(f.inputs) == 0 {
		return
	}
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.applyFocus()
}

// FocusedKey returns the schema key of the focused input, or a synthetic
// author_N / author_role_N key inside the author section.
func (f *Form) FocusedKey() string {
	if f.focus < f.authorBase {
		return f.schema.Fields[f.focus].Key
	}
	slot := f.focus - f.authorBase
	if slot%2 == 0 {
		return fmt.Sprintf("author_%d", slot/2)
	}
	return fmt.Sprintf("author_role_%d", slot/2)
}

// AddAuthorRow appends an empty author id/role pair and focuses it.
func (f *Form) AddAuthorRow() {
	if !f.schema.HasAuthors || len(f.authors) >= maxAuthorRows {
		return
	}
	f.addAuthorRow("", "")
	f.focus = f.authorBase + (len(f.authors)-1)*2
	f.applyFocus()
}

// RemoveAuthorRow drops the last author row, keeping at least one.
func (f *Form) RemoveAuthorRow() {
	if !f.schema.HasAuthors || len(f.authors) <= 1 {
		return
	}
	f.authors = f.authors[:len(f.authors)-1]
	f.inputs = f.inputs[:f.authorBase+len(f.authors)*2]
	if f.focus >= len(f.inputs) {
		f.focus = len(f.inputs) - 1
	}
	f.applyFocus()
}

func (f *Form) addAuthorRow(id, role string) {
	idIn := textinput.New()
	idIn.Prompt = ""
	idIn.Placeholder = "author ID"
	idIn.CharLimit = 16
	idIn.SetValue(id)

	roleIn := textinput.New()
	roleIn.Prompt = ""
	roleIn.Placeholder = "primary"
	roleIn.CharLimit = 32
	roleIn.SetValue(role)

	f.authors = append(f.authors, authorEntry{ID: id, Role: role})
	f.inputs = append(f.inputs, idIn, roleIn)
}

func (f *Form) applyFocus() {
	for i := range f.inputs {
		if i == f.focus {
			f.inputs[i].Focus()
		} else {
			f.inputs[i].Blur()
		}
	}
}

// Inputs exposes the input models for rendering.
func (f *Form) Inputs() []textinput.Model { return f.inputs }

// AuthorRowCount returns the number of author rows.
func (f *Form) AuthorRowCount() int { return len(f.authors) }

// FocusIndex returns the index of the focused input.
func (f *Form) FocusIndex() int { return f.focus }

// UpdateFocused forwards a message to the focused input. Only meaningful
// while the form is open.
func (f *Form) UpdateFocused(msg tea.Msg) {
	if f.state != StateOpen || f.focus >= len(f.inputs) {
		return
	}
	f.inputs[f.focus], _ = f.inputs[f.focus].Update(msg)
	f.syncAuthors()
}

func (f *Form) syncAuthors() {
	for i := range f.authors {
		f.authors[i].ID = f.inputs[f.authorBase+i*2].Value()
		f.authors[i].Role = f.inputs[f.authorBase+i*2+1].Value()
	}
}

// Value returns the current text of a schema field by key.
func (f *Form) Value(key string) string {
	for i, field := range f.schema.Fields {
		if field.Key == key {
			return strings.TrimSpace(f.inputs[i].Value())
		}
	}
	return ""
}

// SetValue overwrites a schema field by key.
func (f *Form) SetValue(key, value string) {
	for i, field := range f.schema.Fields {
		if field.Key == key {
			f.inputs[i].SetValue(value)
			return
		}
	}
}

// Validate checks required fields and entity-specific constraints. It
// returns the first problem found, keyed for display next to the field.
func (f *Form) Validate() (string, string) {
	for _, field := range f.schema.Fields {
		if field.Required && f.Value(field.Key) == "" {
			return field.Key, field.Label + " is required"
		}
	}
	if f.schema.Kind == domain.KindBook {
		if isbn := f.Value("isbn"); isbn != "" && !validISBN(isbn) {
			return "isbn", "ISBN must be 10 or 13 digits"
		}
		f.syncAuthors()
		hasAuthor := false
		for _, a := range f.authors {
			if strings.TrimSpace(a.ID) != "" {
				hasAuthor = true
				break
			}
		}
		if !hasAuthor {
			return "author_0", "At least one author is required"
		}
	}
	if f.schema.Kind == domain.KindPublisher {
		if email := f.Value("email"); email != "" && !strings.Contains(email, "@") {
			return "email", "Enter a valid email address"
		}
	}
	return "", ""
}

// validISBN applies the same format rule the lookup endpoint enforces.
func validISBN(raw string) bool {
	s := strings.ReplaceAll(strings.TrimSpace(raw), "-", "")
	s = strings.ReplaceAll(s, " ", "")
	if len(s) != 10 && len(s) != 13 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Values serializes the form for submission: every schema field, the
// author section for books, and the entity id field on edit.
func (f *Form) Values() url.Values {
	fields := url.Values{}
	for _, field := range f.schema.Fields {
		fields.Set(field.Key, f.Value(field.Key))
	}
	if f.schema.HasAuthors {
		f.syncAuthors()
		encodeAuthors(f.authors, fields)
	}
	if f.action == domain.ActionEdit && f.entityID > 0 {
		fields.Set(f.schema.Kind.IDField(), strconv.Itoa(f.entityID))
	}
	return fields
}

// BeginSubmit transitions to submitting after a successful Validate. It
// refuses re-entry so a double Enter cannot double-post.
func (f *Form) BeginSubmit() bool {
	if f.state != StateOpen || f.submitOnce {
		return false
	}
	f.state = StateSubmitting
	f.submitOnce = true
	return true
}
