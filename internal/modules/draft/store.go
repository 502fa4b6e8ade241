package draft

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// draftFileName is the fixed key for the single pending slot.
const draftFileName = "pendingReservation.json"

// Store holds at most one pending reservation between form submission and
// confirmed delivery. Save overwrites, last write wins. Load returns nil when
// no draft is pending. A draft only disappears through Clear.
type Store interface {
	Save(d *Draft) error
	Load() (*Draft, error)
	Clear() error
}

// FileStore keeps the pending draft as one JSON blob under a fixed file name,
// so it survives process restarts the way the browser copy survived a page
// navigation.
type FileStore struct {
	path string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{path: filepath.Join(dir, draftFileName)}
}

func (s *FileStore) Save(d *Draft) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o600)
}

func (s *FileStore) Load() (*Draft, error) {
	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var d Draft
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (s *FileStore) Clear() error {
	err := os.Remove(s.path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// MemStore is the in-memory substitute used in tests and by in-process
// clients.
type MemStore struct {
	mu sync.Mutex
	d  *Draft
}

func NewMemStore() *MemStore {
	return &MemStore{}
}

func (s *MemStore) Save(d *Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *d
	s.d = &copied
	return nil
}

func (s *MemStore) Load() (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.d == nil {
		return nil, nil
	}
	copied := *s.d
	return &copied, nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.d = nil
	return nil
}
