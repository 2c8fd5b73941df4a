package inventory

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher ingests export files dropped into a folder.
// Each file is ingested once it has been quiet for the debounce window.
type Watcher struct {
	service  *Service
	dir      string
	debounce time.Duration
	logger   *zap.Logger
	fs       *fsnotify.Watcher

	mu      sync.Mutex
	pending map[string]*pendingFile
	closed  bool
	done    chan struct{}
	wg      sync.WaitGroup
}

type pendingFile struct {
	timer *time.Timer
}

// NewWatcher starts watching dir.
func NewWatcher(service *Service, dir string, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	w := &Watcher{
		service:  service,
		dir:      dir,
		debounce: debounce,
		logger:   logger.With(zap.String("watch_dir", dir)),
		fs:       fsw,
		pending:  map[string]*pendingFile{},
		done:     make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(ev.Name), ".json") {
				continue
			}
			w.schedule(ev.Name)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Watcher error", zap.Error(err))
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) schedule(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if p, ok := w.pending[path]; ok && p.timer.Stop() {
		p.timer.Reset(w.debounce)
		return
	}

	p := &pendingFile{}
	w.pending[path] = p
	w.wg.Add(1)
	p.timer = time.AfterFunc(w.debounce, func() { w.fire(path, p) })
}

func (w *Watcher) fire(path string, p *pendingFile) {
	defer w.wg.Done()

	w.mu.Lock()
	if w.pending[path] == p {
		delete(w.pending, path)
	}
	closed := w.closed
	w.mu.Unlock()
	if closed {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		w.logger.Warn("Failed to read watched file", zap.String("file", path), zap.Error(err))
		return
	}
	report := w.service.IngestFiles(context.Background(), []File{{Name: filepath.Base(path), Data: data}})
	w.logger.Info("Ingested watched file",
		zap.String("file", path),
		zap.Int("characters", report.Counts.Characters),
		zap.Int("weapons", report.Counts.Weapons),
		zap.Int("echoes", report.Counts.Echoes),
		zap.Int("items", report.Counts.Items))
}

// Close stops the watcher and waits for in-flight ingestions.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	for path, p := range w.pending {
		if p.timer.Stop() {
			w.wg.Done()
		}
		delete(w.pending, path)
	}
	w.mu.Unlock()

	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	return err
}
