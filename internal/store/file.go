package store

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// FileStore persists each storage key as "<key>.json" inside a profile
// directory. It mirrors every value in memory and watches the directory
// so that writes made by another process show up in the mirror without a
// write-back of our own.
type FileStore struct {
	dir     string
	mu      sync.RWMutex
	mirror  map[string][]byte
	watcher *fsnotify.Watcher
	done    chan struct{}

	subMu sync.Mutex
	subs  []chan string
}

// Notifier is implemented by stores that can report value changes.
type Notifier interface {
	Subscribe() <-chan string
}

// NewFileStore opens (creating if needed) the store rooted at dir and
// starts the change watcher.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &OpenError{Dir: dir, Cause: err}
	}

	fs := &FileStore{
		dir:    dir,
		mirror: make(map[string][]byte),
		done:   make(chan struct{}),
	}
	if err := fs.loadExisting(); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, &OpenError{Dir: dir, Cause: err}
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close() //nolint:errcheck
		return nil, &OpenError{Dir: dir, Cause: err}
	}
	fs.watcher = watcher
	go fs.watch()

	return fs, nil
}

// GetRaw returns the mirrored bytes for storageKey.
func (fs *FileStore) GetRaw(storageKey string) ([]byte, bool, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	data, ok := fs.mirror[storageKey]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), data...), true, nil
}

// SetRaw writes value to disk synchronously and updates the mirror, so a
// caller observes its own write without a second read.
func (fs *FileStore) SetRaw(storageKey string, value []byte) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if err := os.WriteFile(fs.path(storageKey), value, 0o644); err != nil {
		return err
	}
	fs.mirror[storageKey] = append([]byte(nil), value...)
	fs.notify(storageKey)
	return nil
}

// Subscribe returns a channel that receives the storage key of every
// value that changes, whether written by this process or an external
// one. Slow receivers miss events rather than block writers.
func (fs *FileStore) Subscribe() <-chan string {
	ch := make(chan string, 16)
	fs.subMu.Lock()
	fs.subs = append(fs.subs, ch)
	fs.subMu.Unlock()
	return ch
}

func (fs *FileStore) notify(storageKey string) {
	fs.subMu.Lock()
	defer fs.subMu.Unlock()
	for _, ch := range fs.subs {
		select {
		case ch <- storageKey:
		default:
		}
	}
}

// Keys lists every storage key present in the mirror.
func (fs *FileStore) Keys() ([]string, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	keys := make([]string, 0, len(fs.mirror))
	for k := range fs.mirror {
		keys = append(keys, k)
	}
	return keys, nil
}

// Delete removes the key file and its mirror entry. Missing keys are a
// no-op.
func (fs *FileStore) Delete(storageKey string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if err := os.Remove(fs.path(storageKey)); err != nil && !os.IsNotExist(err) {
		return err
	}
	delete(fs.mirror, storageKey)
	return nil
}

// Close stops the change watcher and ends every subscription.
func (fs *FileStore) Close() error {
	close(fs.done)
	fs.subMu.Lock()
	for _, ch := range fs.subs {
		close(ch)
	}
	fs.subs = nil
	fs.subMu.Unlock()
	if fs.watcher != nil {
		return fs.watcher.Close()
	}
	return nil
}

func (fs *FileStore) path(storageKey string) string {
	return filepath.Join(fs.dir, storageKey+".json")
}

func (fs *FileStore) loadExisting() error {
	entries, err := os.ReadDir(fs.dir)
	if err != nil {
		return &OpenError{Dir: fs.dir, Cause: err}
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(fs.dir, entry.Name()))
		if err != nil {
			log.Printf("[STORE] skipping unreadable %s: %v", entry.Name(), err)
			continue
		}
		fs.mirror[strings.TrimSuffix(entry.Name(), ".json")] = data
	}
	return nil
}

// watch keeps the mirror consistent with external writers. Events caused
// by our own SetRaw resolve to identical bytes and are dropped, so no
// redundant write ever happens.
func (fs *FileStore) watch() {
	for {
		select {
		case <-fs.done:
			return
		case event, ok := <-fs.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !strings.HasSuffix(event.Name, ".json") {
				continue
			}
			fs.refresh(event.Name)
		case err, ok := <-fs.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("[STORE] watch error: %v", err)
		}
	}
}

func (fs *FileStore) refresh(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		// File may have been removed between event and read.
		return
	}
	key := strings.TrimSuffix(filepath.Base(path), ".json")

	fs.mu.Lock()
	if bytes.Equal(fs.mirror[key], data) {
		fs.mu.Unlock()
		return
	}
	fs.mirror[key] = data
	fs.mu.Unlock()
	fs.notify(key)
}
