package config

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/sjoeboo/tuiconfirm/internal/logging"
)

// Watcher reloads config.toml when it changes and delivers the result on
// Updates. Editors often replace the file instead of writing it, so the
// directory is watched rather than the file.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	updateCh chan *Config
	limiter  *rate.Limiter
	settle   time.Duration
	log      *slog.Logger
}

// NewWatcher watches the config file at path. The directory is created if it
// does not exist yet.
func NewWatcher(path string) (*Watcher, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}

	return &Watcher{
		watcher:  w,
		path:     filepath.Clean(path),
		updateCh: make(chan *Config, 1),
		// At most one reload every 250ms with a burst of one
		limiter: rate.NewLimiter(rate.Every(250*time.Millisecond), 1),
		settle:  50 * time.Millisecond,
		log:     logging.ForComponent(logging.CompConfig),
	}, nil
}

// Updates delivers reloaded configs. Only the newest pending one is kept.
func (cw *Watcher) Updates() <-chan *Config {
	return cw.updateCh
}

// Run watches until ctx is done or the watcher is closed.
func (cw *Watcher) Run(ctx context.Context) error {
	defer cw.watcher.Close()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-cw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != cw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			// Let a burst of writes settle before reading
			if pending == nil {
				pending = time.After(cw.settle)
			}

		case <-pending:
			pending = nil
			if err := cw.limiter.Wait(ctx); err != nil {
				return nil
			}
			cw.reload()

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return nil
			}
			cw.log.Warn("config_watch_error", "error", err)
		}
	}
}

func (cw *Watcher) reload() {
	cfg, err := LoadFile(cw.path)
	if err != nil {
		cw.log.Warn("config_invalid", "path", cw.path, "error", err)
		return
	}
	cw.log.Info("config_reloaded", "path", cw.path)

	// Replace a config nobody picked up yet (non-blocking)
	select {
	case <-cw.updateCh:
	default:
	}
	select {
	case cw.updateCh <- cfg:
	default:
		cw.log.Debug("config_update_dropped")
	}
}

// Close stops the watcher. Run returns shortly after.
func (cw *Watcher) Close() error {
	return cw.watcher.Close()
}
