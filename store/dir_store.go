package store

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// DirStore keeps datasets as flat files inside a single directory.
type DirStore struct {
	dir string
}

func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create dataset directory: %w", err)
	}
	return &DirStore{dir: dir}, nil
}

func (self *DirStore) Dir() string {
	return self.dir
}

func (self *DirStore) path(name string) (string, error) {
	if !_ValidName(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(self.dir, name), nil
}

func (self *DirStore) Save(name string, reader io.Reader) error {
	path, err := self.path(name)
	if err != nil {
		return err
	}
	// write to a temporary file first so readers never see a partial dataset
	tmp, err := os.CreateTemp(self.dir, ".upload-*")
	if err != nil {
		return fmt.Errorf("failed to create dataset file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, reader); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write dataset %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write dataset %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to store dataset %s: %w", name, err)
	}
	return nil
}

func (self *DirStore) Load(name string) (Dataset, error) {
	path, err := self.path(name)
	if err != nil {
		return Dataset{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return Dataset{}, _WrapNotFound(name, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, _WrapNotFound(name, err)
	}
	return Dataset{
		Name:    name,
		Data:    data,
		ModTime: info.ModTime(),
	}, nil
}

func (self *DirStore) Stat(name string) (time.Time, error) {
	path, err := self.path(name)
	if err != nil {
		return time.Time{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, _WrapNotFound(name, err)
	}
	if info.IsDir() {
		return time.Time{}, fmt.Errorf("%w: %s", ErrDatasetNotFound, name)
	}
	return info.ModTime(), nil
}

func _WrapNotFound(name string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrDatasetNotFound, name)
	}
	return fmt.Errorf("failed to read dataset %s: %w", name, err)
}
