package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded  EventType = "CatalogLoaded"
	EventEntityMutated  EventType = "EntityMutated"
	EventMutationFailed EventType = "MutationFailed"
	EventSearchSaved    EventType = "SearchSaved"
	EventHistoryLoaded  EventType = "HistoryLoaded"
	EventHistoryCleared EventType = "HistoryCleared"
	EventLoginSucceeded EventType = "LoginSucceeded"
	EventLoginFailed    EventType = "LoginFailed"
	EventError          EventType = "Error"
	EventConfigLoaded   EventType = "ConfigLoaded"
	EventConfigSaved    EventType = "ConfigSaved"
	EventConfigChanged  EventType = "ConfigChanged"
	EventAppReady       EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted when the book catalog has been fetched
type CatalogLoadedEvent struct {
	Count int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// EntityMutatedEvent is emitted after a successful add/edit/delete
type EntityMutatedEvent struct {
	Kind   EntityKind
	Action Action
	ID     int // zero for add
}

func (e EntityMutatedEvent) Type() EventType { return EventEntityMutated }

// MutationFailedEvent is emitted when an add/edit/delete is rejected
type MutationFailedEvent struct {
	Kind   EntityKind
	Action Action
	Err    error
}

func (e MutationFailedEvent) Type() EventType { return EventMutationFailed }

// SearchSavedEvent is emitted when a search query has been persisted
type SearchSavedEvent struct {
	Query        string
	ResultsCount int
}

func (e SearchSavedEvent) Type() EventType { return EventSearchSaved }

// HistoryLoadedEvent is emitted when the search history has been fetched
type HistoryLoadedEvent struct {
	Count int
}

func (e HistoryLoadedEvent) Type() EventType { return EventHistoryLoaded }

// HistoryClearedEvent is emitted when the search history has been cleared
type HistoryClearedEvent struct{}

func (e HistoryClearedEvent) Type() EventType { return EventHistoryCleared }

// LoginSucceededEvent is emitted after a successful login
type LoginSucceededEvent struct {
	Username    string
	RedirectURL string
}

func (e LoginSucceededEvent) Type() EventType { return EventLoginSucceeded }

// LoginFailedEvent is emitted when the server rejects a login
type LoginFailedEvent struct {
	Username string
	Message  string
}

func (e LoginFailedEvent) Type() EventType { return EventLoginFailed }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	ServerURL string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when configuration needs to be saved
type ConfigChangedEvent struct {
	ServerURL string
	Username  string
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }

// AppReadyEvent is emitted when the app is fully initialized and ready
type AppReadyEvent struct {
	LoggedIn bool
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
