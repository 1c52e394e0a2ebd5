package discovery

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"hearsay/internal/domain"
	"hearsay/internal/eventbus"
	"hearsay/internal/logging"
)

// audioExtensions are the file types the inbox recognizes
var audioExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".m4a":  true,
	".flac": true,
	".ogg":  true,
	".opus": true,
	".aac":  true,
	".webm": true,
}

// IsAudioPath reports whether a path carries a recognized audio extension.
func IsAudioPath(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

// maxDepth bounds the inbox walk; nobody nests recordings deeper than this
const maxDepth = 5

// Service finds audio files in the inbox directory and keeps watching it
type Service interface {
	Start(ctx context.Context, root string) error
	Stop()
}

// service is the concrete implementation
type service struct {
	bus     eventbus.EventBus
	mu      sync.Mutex
	running bool
	runCtx  context.Context
	cancel  context.CancelFunc
	watcher *fsnotify.Watcher
	wg      sync.WaitGroup
	log     *logrus.Entry
}

// NewService creates a discovery service. Rescans can also be requested over
// the bus with ScanRequestedEvent.
func NewService(bus eventbus.EventBus) Service {
	ds := &service{
		bus: bus,
		log: logging.NewLogger("discovery"),
	}

	bus.Subscribe(domain.EventScanRequested, func(e domain.DomainEvent) {
		if event, ok := e.(domain.ScanRequestedEvent); ok {
			ds.rescan(event.Root)
		}
	})

	return ds
}

// rescan runs a requested scan on the service's own context so Stop still
// waits for it.
func (ds *service) rescan(root string) {
	ds.mu.Lock()
	if !ds.running {
		ds.mu.Unlock()
		return
	}
	ctx := ds.runCtx
	ds.wg.Add(1)
	ds.mu.Unlock()

	go func() {
		defer ds.wg.Done()
		ds.scan(ctx, root)
	}()
}

// Start runs the initial scan and begins watching the inbox for changes.
func (ds *service) Start(ctx context.Context, root string) error {
	ds.mu.Lock()
	if ds.running {
		ds.mu.Unlock()
		return nil
	}
	ds.running = true

	runCtx, cancel := context.WithCancel(ctx)
	ds.runCtx = runCtx
	ds.cancel = cancel

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		ds.running = false
		ds.cancel = nil
		ds.mu.Unlock()
		return err
	}
	ds.watcher = watcher
	ds.mu.Unlock()

	ds.scan(runCtx, root)

	ds.wg.Add(1)
	go ds.watch(runCtx)
	return nil
}

// Stop cancels the watch and waits for it to wind down.
func (ds *service) Stop() {
	ds.mu.Lock()
	if !ds.running {
		ds.mu.Unlock()
		return
	}
	ds.running = false
	ds.cancel()
	ds.watcher.Close()
	ds.mu.Unlock()

	ds.wg.Wait()
}

// scan walks the inbox publishing one AudioFoundEvent per audio file and
// registering directories with the watcher.
func (ds *service) scan(ctx context.Context, root string) {
	ds.bus.Publish(domain.ScanStartedEvent{Root: root})
	found := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err != nil {
			ds.log.Debugf("walk %s: %v", path, err)
			return nil
		}

		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			rel, _ := filepath.Rel(root, path)
			if strings.Count(rel, string(filepath.Separator)) > maxDepth {
				return filepath.SkipDir
			}
			ds.addWatch(path)
			return nil
		}

		if file, ok := ds.describe(path, d); ok {
			ds.bus.Publish(domain.AudioFoundEvent{File: file})
			found++
		}
		return nil
	})
	if err != nil && ctx.Err() == nil {
		ds.bus.Publish(domain.ErrorEvent{Message: "inbox scan failed", Err: err})
	}

	ds.bus.Publish(domain.ScanCompletedEvent{FilesFound: found})
	ds.log.Infof("scan of %s finished, %d audio files", root, found)
}

// watch drains filesystem events until the context is cancelled.
func (ds *service) watch(ctx context.Context) {
	defer ds.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ds.watcher.Events:
			if !ok {
				return
			}
			ds.handleEvent(ctx, event)
		case err, ok := <-ds.watcher.Errors:
			if !ok {
				return
			}
			ds.log.Warnf("watcher: %v", err)
		}
	}
}

func (ds *service) handleEvent(ctx context.Context, event fsnotify.Event) {
	switch {
	case event.Op.Has(fsnotify.Create):
		info, err := os.Stat(event.Name)
		if err != nil {
			return
		}
		if info.IsDir() {
			// New directory: watch it and pick up anything moved in with it.
			ds.scanSubdir(ctx, event.Name)
			return
		}
		if IsAudioPath(event.Name) {
			ds.bus.Publish(domain.AudioFoundEvent{File: domain.AudioFile{
				Path:    event.Name,
				Name:    filepath.Base(event.Name),
				Ext:     strings.ToLower(filepath.Ext(event.Name)),
				Size:    info.Size(),
				ModTime: info.ModTime(),
			}})
		}

	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		if IsAudioPath(event.Name) {
			ds.bus.Publish(domain.AudioRemovedEvent{Path: event.Name})
		}
	}
}

func (ds *service) scanSubdir(ctx context.Context, dir string) {
	ds.addWatch(dir)
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err != nil || d.IsDir() {
			return nil
		}
		if file, ok := ds.describe(path, d); ok {
			ds.bus.Publish(domain.AudioFoundEvent{File: file})
		}
		return nil
	})
}

func (ds *service) addWatch(dir string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	if ds.watcher == nil {
		return
	}
	if err := ds.watcher.Add(dir); err != nil {
		ds.log.Debugf("watch %s: %v", dir, err)
	}
}

func (ds *service) describe(path string, d fs.DirEntry) (domain.AudioFile, bool) {
	if !IsAudioPath(path) {
		return domain.AudioFile{}, false
	}
	info, err := d.Info()
	if err != nil {
		return domain.AudioFile{}, false
	}
	return domain.AudioFile{
		Path:    path,
		Name:    d.Name(),
		Ext:     strings.ToLower(filepath.Ext(path)),
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, true
}
