package app

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"docsort/internal/classify"
	"docsort/internal/config"
	"docsort/internal/store"
)

// App wires the classification engine and the history store for the commands.
type App struct {
	Config  *config.Config
	Engine  *classify.Engine
	History *store.HistoryStore
}

func New(cfg *config.Config) (*App, error) {
	a := &App{
		Config: cfg,
		Engine: classify.New(),
	}

	if cfg.History.Path != "" {
		hs, err := store.NewHistoryStore(cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("init history store: %w", err)
		}
		a.History = hs
	}

	log.Debug("application initialization complete")
	return a, nil
}

// Recorder returns the history store as a Recorder, or a nil interface when
// history is disabled.
func (a *App) Recorder() store.Recorder {
	if a.History == nil {
		return nil
	}
	return a.History
}

func (a *App) Close() {
	if a.History != nil {
		a.History.Close()
	}
}
