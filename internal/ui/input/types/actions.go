package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
	Data interface{} // Optional data for the mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Text input actions
type UpdateTextAction struct {
	Text string
}

func (a UpdateTextAction) Type() string { return "update_text" }

type SubmitTextAction struct {
	Text string
	Mode Mode // Which mode submitted the text
}

func (a SubmitTextAction) Type() string { return "submit_text" }

type CancelTextAction struct{}

func (a CancelTextAction) Type() string { return "cancel_text" }

// Catalog actions
type RefreshAction struct{}

func (a RefreshAction) Type() string { return "refresh" }

type CycleSortAction struct{}

func (a CycleSortAction) Type() string { return "cycle_sort" }

// Popup actions. OpenAddAction carries the entity kind as a string so the
// model resolves the schema; edit, view and delete always target the
// selected book row.
type OpenAddAction struct {
	Kind string
}

func (a OpenAddAction) Type() string { return "open_add" }

type OpenEditAction struct{}

func (a OpenEditAction) Type() string { return "open_edit" }

type OpenViewAction struct{}

func (a OpenViewAction) Type() string { return "open_view" }

type OpenDeleteAction struct{}

func (a OpenDeleteAction) Type() string { return "open_delete" }

type CloseAction struct{}

func (a CloseAction) Type() string { return "close" }

// Confirm popup actions; what is being confirmed lives in model state.
type ConfirmAction struct{}

func (a ConfirmAction) Type() string { return "confirm" }

// Form actions
type FocusNextAction struct{}

func (a FocusNextAction) Type() string { return "focus_next" }

type FocusPrevAction struct{}

func (a FocusPrevAction) Type() string { return "focus_prev" }

type SubmitFormAction struct{}

func (a SubmitFormAction) Type() string { return "submit_form" }

type AddAuthorRowAction struct{}

func (a AddAuthorRowAction) Type() string { return "add_author_row" }

type RemoveAuthorRowAction struct{}

func (a RemoveAuthorRowAction) Type() string { return "remove_author_row" }

type LookupISBNAction struct{}

func (a LookupISBNAction) Type() string { return "lookup_isbn" }

// History actions
type OpenHistoryAction struct{}

func (a OpenHistoryAction) Type() string { return "open_history" }

type ApplyHistoryAction struct{}

func (a ApplyHistoryAction) Type() string { return "apply_history" }

type ClearHistoryAction struct{}

func (a ClearHistoryAction) Type() string { return "clear_history" }

// Detail view actions
type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
