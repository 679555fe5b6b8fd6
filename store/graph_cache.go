package store

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/ttpr0/landmark-routing/graph"
	. "github.com/ttpr0/landmark-routing/util"
	"golang.org/x/exp/slog"
)

var ErrAlreadyWatching = errors.New("graph cache is already watching a directory")

// GraphEntry is a built graph together with its landmark registry.
// Entries are shared between requests and must not be modified.
type GraphEntry struct {
	Graph *graph.Graph
	Nodes *graph.NodeRegistry
}

type _CacheItem struct {
	mod_time time.Time
	entry    GraphEntry
}

// GraphCache is a read-through cache of built graphs keyed by dataset name
// and modification time. A stale modification time is a miss.
type GraphCache struct {
	mu      sync.RWMutex
	items   Dict[string, _CacheItem]
	watcher *fsnotify.Watcher
	stop    chan struct{}
	done    chan struct{}
}

func NewGraphCache() *GraphCache {
	return &GraphCache{
		items: NewDict[string, _CacheItem](10),
	}
}

func (self *GraphCache) Get(name string, mod_time time.Time) (GraphEntry, bool) {
	self.mu.RLock()
	defer self.mu.RUnlock()
	item, ok := self.items[name]
	if !ok || !item.mod_time.Equal(mod_time) {
		return GraphEntry{}, false
	}
	return item.entry, true
}

func (self *GraphCache) Put(name string, mod_time time.Time, entry GraphEntry) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.items[name] = _CacheItem{mod_time: mod_time, entry: entry}
}

func (self *GraphCache) Evict(name string) {
	self.mu.Lock()
	defer self.mu.Unlock()
	self.items.Delete(name)
}

func (self *GraphCache) Length() int {
	self.mu.RLock()
	defer self.mu.RUnlock()
	return self.items.Length()
}

//*******************************************
// invalidation
//*******************************************

// Watch evicts cached graphs whose dataset file in dir is written, replaced
// or removed. It returns once the watcher is set up. Only one directory can
// be watched at a time; call Close before watching another one.
func (self *GraphCache) Watch(dir string) error {
	if self.watcher != nil {
		return ErrAlreadyWatching
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	self.watcher = watcher
	self.stop = make(chan struct{})
	self.done = make(chan struct{})
	go self._WatchLoop()
	slog.Info("watching dataset directory " + dir)
	return nil
}

func (self *GraphCache) _WatchLoop() {
	defer close(self.done)
	for {
		select {
		case <-self.stop:
			return
		case event, ok := <-self.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			name := filepath.Base(event.Name)
			slog.Debug(fmt.Sprintf("dataset %v changed (%v), evicting cached graph", name, event.Op))
			self.Evict(name)
		case err, ok := <-self.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("dataset watcher error: " + err.Error())
		}
	}
}

// Close stops the directory watcher if one is running.
func (self *GraphCache) Close() error {
	if self.watcher == nil {
		return nil
	}
	close(self.stop)
	err := self.watcher.Close()
	<-self.done
	self.watcher = nil
	return err
}
