package filesystem

import (
	"log/slog"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Cache wraps a Filesystem and keeps read file contents in memory
// until the watcher reports a change under the root. Writes through
// the cache evict their own entry immediately.
type Cache struct {
	inner   Filesystem
	watcher *fsnotify.Watcher

	mu      sync.RWMutex
	entries map[string][]byte
}

func NewCache(inner Filesystem, root string) (*Cache, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(root); err != nil {
		watcher.Close()
		return nil, err
	}

	cache := &Cache{
		inner:   inner,
		watcher: watcher,
		entries: make(map[string][]byte),
	}
	go cache.watch()
	return cache, nil
}

func (cache *Cache) watch() {
	for {
		select {
		case event, ok := <-cache.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				cache.Evict(filepath.Base(event.Name))
			}
		case err, ok := <-cache.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("filesystem watcher", "error", err)
		}
	}
}

func (cache *Cache) Evict(name string) {
	cache.mu.Lock()
	delete(cache.entries, name)
	cache.mu.Unlock()
}

func (cache *Cache) ReadFile(name string) ([]byte, error) {
	cache.mu.RLock()
	content, found := cache.entries[name]
	cache.mu.RUnlock()
	if found {
		return content, nil
	}

	content, err := cache.inner.ReadFile(name)
	if err != nil {
		return nil, err
	}

	cache.mu.Lock()
	cache.entries[name] = content
	cache.mu.Unlock()
	return content, nil
}

func (cache *Cache) WriteFile(name string, content []byte) error {
	if err := cache.inner.WriteFile(name, content); err != nil {
		return err
	}
	cache.Evict(name)
	return nil
}

func (cache *Cache) FileExists(name string) (bool, error) {
	cache.mu.RLock()
	_, found := cache.entries[name]
	cache.mu.RUnlock()
	if found {
		return true, nil
	}
	return cache.inner.FileExists(name)
}

func (cache *Cache) Close() error {
	return cache.watcher.Close()
}
