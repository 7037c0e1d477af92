package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"shelfsmart/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version"`
	ServerURL  string     `toml:"server_url"`
	Username   string     `toml:"username"` // prefilled on the login screen
	UISettings UISettings `toml:"ui"`
	Search     Search     `toml:"search"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowAvailability bool `toml:"show_availability"`
	ConfirmDeletes   bool `toml:"confirm_deletes"`
}

// Search holds the search-history recorder tuning knobs
type Search struct {
	DebounceMillis int `toml:"debounce_millis"`
	MinQueryLength int `toml:"min_query_length"`
	HistoryLimit   int `toml:"history_limit"`
	TimeoutSeconds int `toml:"timeout_seconds"` // per-request HTTP timeout
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	// Create shelfsmart config directory
	shelfDir := filepath.Join(configDir, "shelfsmart")
	os.MkdirAll(shelfDir, 0755)

	return &configService{
		filePath: filepath.Join(shelfDir, "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		cfg := DefaultConfig()

		// Publish ConfigLoaded event if bus is available
		if cs.bus != nil {
			cs.bus.Publish(eventbus.ConfigLoadedEvent{ServerURL: cfg.ServerURL})
		}

		return cfg, nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	// Publish ConfigLoaded event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{ServerURL: cfg.ServerURL})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	// Publish ConfigSaved event if bus is available
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	// Check if config file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse config
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	// Ensure config directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Marshal config to TOML
	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write to file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// applyDefaults fills zero-valued tuning knobs so an older or hand-edited
// config file still yields a usable recorder.
func applyDefaults(cfg *Config) {
	if cfg.Search.DebounceMillis <= 0 {
		cfg.Search.DebounceMillis = 1000
	}
	if cfg.Search.MinQueryLength <= 0 {
		cfg.Search.MinQueryLength = 3
	}
	if cfg.Search.HistoryLimit <= 0 {
		cfg.Search.HistoryLimit = 10
	}
	if cfg.Search.TimeoutSeconds <= 0 {
		cfg.Search.TimeoutSeconds = 15
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:   1,
		ServerURL: "http://localhost:8000",
		UISettings: UISettings{
			ShowAvailability: true,
			ConfirmDeletes:   true,
		},
		Search: Search{
			DebounceMillis: 1000,
			MinQueryLength: 3,
			HistoryLimit:   10,
			TimeoutSeconds: 15,
		},
	}
}
