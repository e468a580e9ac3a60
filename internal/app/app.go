package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/maren/tack/internal/config"
	"github.com/maren/tack/internal/notify"
	"github.com/maren/tack/internal/store"
)

// App holds the application state and dependencies
type App struct {
	Store    *store.Store
	Notifier *notify.Notifier
	Config   *config.Config
	lockFile *flock.Flock
}

// New creates a new application instance
func New(cfg *config.Config) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	a := &App{
		Config:   cfg,
		Notifier: notify.NewNotifier(cfg.Notifications),
	}

	// Single instance only: two writers on one board document would
	// silently overwrite each other's saves.
	if err := a.acquireLock(); err != nil {
		return nil, err
	}

	s, err := store.Open(cfg.DBPath)
	if err != nil {
		a.releaseLock()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	a.Store = s

	return a, nil
}

// acquireLock acquires an exclusive file lock to prevent multiple instances
func (a *App) acquireLock() error {
	lockPath := filepath.Join(a.Config.DataDir, "tack.lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return fmt.Errorf("another instance of tack is already running")
	}

	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close cleans up application resources
func (a *App) Close() error {
	var errs []error

	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	a.releaseLock()

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
