package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shelfsmart/internal/api"
	"shelfsmart/internal/config"
	"shelfsmart/internal/domain"
	"shelfsmart/internal/eventbus"
	"shelfsmart/internal/ui"
)

func main() {
	var serverURL string
	var configPath string
	flag.StringVar(&serverURL, "server", "", "Library server base URL")
	flag.StringVar(&serverURL, "s", "", "Library server base URL (shorthand)")
	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&configPath, "c", "", "Path to config file (shorthand)")
	flag.Parse()

	logger, err := newLogger("shelfsmart.log")
	if err != nil {
		fmt.Printf("Error setting up logging: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)
	log := logger.Sugar()

	// Create event bus
	bus := eventbus.New()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg := loadOrCreateConfig(configSvc, configPath, log)
	if serverURL != "" {
		cfg.ServerURL = serverURL
	}

	// Persist config updates the UI announces (remembered username)
	bus.Subscribe(domain.EventConfigChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.ConfigChangedEvent)
		if !ok {
			return
		}
		cfg.Username = event.Username
		var saveErr error
		if configPath != "" {
			saveErr = configSvc.SaveToPath(cfg, configPath)
		} else {
			saveErr = configSvc.Save(cfg)
		}
		if saveErr != nil {
			log.Warnw("config save failed", "error", saveErr)
		} else {
			bus.Publish(domain.ConfigSavedEvent{})
		}
	})

	// Audit trail: mutations and searches land in the log file
	bus.Subscribe(domain.EventEntityMutated, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.EntityMutatedEvent); ok {
			log.Infow("entity mutated", "kind", event.Kind, "action", event.Action, "id", event.ID)
		}
	})
	bus.Subscribe(domain.EventSearchSaved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchSavedEvent); ok {
			log.Infow("search saved", "query", event.Query, "results", event.ResultsCount)
		}
	})
	bus.Subscribe(domain.EventLoginSucceeded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.LoginSucceededEvent); ok {
			log.Infow("login succeeded", "username", event.Username)
		}
	})
	bus.Subscribe(domain.EventLoginFailed, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.LoginFailedEvent); ok {
			log.Warnw("login failed", "username", event.Username, "message", event.Message)
		}
	})
	bus.Subscribe(domain.EventCatalogLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CatalogLoadedEvent); ok {
			log.Infow("catalog loaded", "count", event.Count)
		}
	})

	// HTTP client against the library server
	timeout := time.Duration(cfg.Search.TimeoutSeconds) * time.Second
	client, err := api.New(cfg.ServerURL, timeout, log)
	if err != nil {
		fmt.Printf("Invalid server URL %q: %v\n", cfg.ServerURL, err)
		os.Exit(1)
	}

	// Create UI model
	uiModel := ui.NewModel(bus, cfg, client, log)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Forward bus errors to the UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warnw("event channel full, dropping event", "type", e.Type())
		}
	}
	bus.Subscribe(domain.EventError, forwardEvent)

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	log.Infow("starting", "server", cfg.ServerURL)
	if _, err := p.Run(); err != nil {
		log.Errorw("program failed", "error", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Infow("exited")

	close(eventChan)
}

// newLogger writes structured logs to a file so the TUI screen stays clean.
func newLogger(path string) (*zap.Logger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(f),
		zap.InfoLevel,
	)
	return zap.New(core), nil
}

// loadOrCreateConfig loads the config file or writes a fresh default one.
func loadOrCreateConfig(configSvc config.ConfigService, path string, log *zap.SugaredLogger) *config.Config {
	var cfg *config.Config
	var err error
	if path != "" {
		cfg, err = configSvc.LoadFromPath(path)
	} else {
		cfg, err = configSvc.Load()
	}
	if err == nil {
		return cfg
	}
	log.Infow("no usable config, creating default", "error", err)

	cfg = config.DefaultConfig()
	if path != "" {
		err = configSvc.SaveToPath(cfg, path)
	} else {
		err = configSvc.Save(cfg)
	}
	if err != nil {
		log.Warnw("config save failed", "error", err)
	}
	return cfg
}
