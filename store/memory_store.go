package store

import (
	"fmt"
	"io"
	"sync"
	"time"

	. "github.com/ttpr0/landmark-routing/util"
)

// MemoryStore is an in-process DatasetStore, mostly used as a test fixture.
type MemoryStore struct {
	mu       sync.RWMutex
	datasets Dict[string, Dataset]
	now      func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		datasets: NewDict[string, Dataset](10),
		now:      time.Now,
	}
}

func (self *MemoryStore) Save(name string, reader io.Reader) error {
	if !_ValidName(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read dataset %s: %w", name, err)
	}
	self.mu.Lock()
	defer self.mu.Unlock()
	self.datasets[name] = Dataset{
		Name:    name,
		Data:    data,
		ModTime: self.now(),
	}
	return nil
}

func (self *MemoryStore) Load(name string) (Dataset, error) {
	self.mu.RLock()
	defer self.mu.RUnlock()
	dataset, ok := self.datasets[name]
	if !ok {
		return Dataset{}, fmt.Errorf("%w: %s", ErrDatasetNotFound, name)
	}
	return dataset, nil
}

func (self *MemoryStore) Stat(name string) (time.Time, error) {
	dataset, err := self.Load(name)
	if err != nil {
		return time.Time{}, err
	}
	return dataset.ModTime, nil
}
