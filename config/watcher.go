package config

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/teranos/javagen/errors"
	"github.com/teranos/javagen/logger"
)

// ChangeHandler receives the set of paths that changed during one debounce period, sorted
type ChangeHandler func(paths []string)

// Watcher watches files or directories and calls handlers once changes settle
type Watcher struct {
	watcher         *fsnotify.Watcher
	handlers        []ChangeHandler
	filter          func(path string) bool
	pending         map[string]struct{}
	mu              sync.Mutex
	handlerMu       sync.Mutex // held while handlers run; one batch at a time
	debounceTimer   *time.Timer
	debouncePeriod  time.Duration
	isOwnWrite      bool // Flag to prevent reload loops
	isOwnWriteMutex sync.Mutex
}

// NewWatcher creates a watcher on the given files or directories
func NewWatcher(debounce time.Duration, paths ...string) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	for _, path := range paths {
		if err := watcher.Add(path); err != nil {
			watcher.Close()
			return nil, errors.Wrapf(err, "failed to watch %s", path)
		}
	}

	return &Watcher{
		watcher:        watcher,
		pending:        make(map[string]struct{}),
		debouncePeriod: debounce,
	}, nil
}

// SetFilter restricts which paths trigger handlers
func (w *Watcher) SetFilter(filter func(path string) bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.filter = filter
}

// OnChange registers a handler
func (w *Watcher) OnChange(handler ChangeHandler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// MarkOwnWrite marks the next write as coming from us (prevents reload loops)
func (w *Watcher) MarkOwnWrite() {
	w.isOwnWriteMutex.Lock()
	defer w.isOwnWriteMutex.Unlock()
	w.isOwnWrite = true
}

// checkOwnWrite checks and clears the own-write flag
func (w *Watcher) checkOwnWrite() bool {
	w.isOwnWriteMutex.Lock()
	defer w.isOwnWriteMutex.Unlock()

	if w.isOwnWrite {
		w.isOwnWrite = false
		return true
	}
	return false
}

// Start begins watching for changes
func (w *Watcher) Start() {
	go w.watchLoop()
}

func (w *Watcher) watchLoop() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if isBackupFile(event.Name) {
				continue
			}
			if !w.accept(event.Name) {
				continue
			}
			if w.checkOwnWrite() {
				logger.Debugw("Watcher ignoring own write",
					logger.FieldFile, event.Name)
				continue
			}

			logger.Debugw("Watcher detected change",
				logger.FieldFile, event.Name,
				logger.FieldOperation, event.Op.String())
			w.schedule(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logger.Warnw("Watcher error",
				logger.FieldError, err)
		}
	}
}

func (w *Watcher) accept(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.filter == nil || w.filter(path)
}

// schedule debounces rapid file changes
func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.pending[path] = struct{}{}

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debouncePeriod, w.fire)
}

func (w *Watcher) fire() {
	w.mu.Lock()
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]struct{})
	handlers := make([]ChangeHandler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	sort.Strings(paths)

	w.handlerMu.Lock()
	defer w.handlerMu.Unlock()
	for _, handler := range handlers {
		handler(paths)
	}
}

// Stop stops watching for changes
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()
	return w.watcher.Close()
}

// isBackupFile checks if the file is a backup written by Save
func isBackupFile(path string) bool {
	ext := filepath.Ext(path)
	return strings.HasPrefix(ext, ".back") && len(ext) == len(".back1")
}

// ReloadCallback is called when config is reloaded
// Receives the new config and returns any error
type ReloadCallback func(*Config) error

// ConfigWatcher reloads the configuration when its file changes
type ConfigWatcher struct {
	*Watcher
	configPath string
	callbacks  []ReloadCallback
	mu         sync.RWMutex
}

// globalWatcher holds the config watcher whose own writes Save should suppress
var (
	globalWatcher   *ConfigWatcher
	globalWatcherMu sync.Mutex
)

// NewConfigWatcher creates a new config file watcher
func NewConfigWatcher(configPath string) (*ConfigWatcher, error) {
	w, err := NewWatcher(500*time.Millisecond, configPath)
	if err != nil {
		return nil, err
	}

	cw := &ConfigWatcher{Watcher: w, configPath: configPath}
	w.OnChange(func([]string) {
		if err := cw.reload(); err != nil {
			logger.Errorw("Config reload failed",
				logger.FieldError, err)
		}
	})

	globalWatcherMu.Lock()
	globalWatcher = cw
	globalWatcherMu.Unlock()

	return cw, nil
}

// OnReload registers a callback to be called when config is reloaded
func (cw *ConfigWatcher) OnReload(callback ReloadCallback) {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	cw.callbacks = append(cw.callbacks, callback)
}

func (cw *ConfigWatcher) reload() error {
	Reset()

	newConfig, err := Load()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	logger.Infow("Config reloaded",
		logger.FieldPath, cw.configPath)

	cw.mu.RLock()
	callbacks := make([]ReloadCallback, len(cw.callbacks))
	copy(callbacks, cw.callbacks)
	cw.mu.RUnlock()

	for _, callback := range callbacks {
		if err := callback(newConfig); err != nil {
			// Continue calling other callbacks even if one fails
			logger.Warnw("Config reload callback error",
				logger.FieldError, err)
		}
	}

	return nil
}

// Stop stops watching and releases the global watcher slot
func (cw *ConfigWatcher) Stop() error {
	globalWatcherMu.Lock()
	if globalWatcher == cw {
		globalWatcher = nil
	}
	globalWatcherMu.Unlock()
	return cw.Watcher.Stop()
}
