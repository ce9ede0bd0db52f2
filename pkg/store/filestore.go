package store

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// FileStore keeps one <collection>.json file per collection under dir.
// Writes go to a temp file first and land with a rename, so a crashed write
// never leaves a half-written collection behind.
type FileStore struct {
	dir string
}

func NewFile(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &PersistenceError{Op: "write", Collection: dir, Err: err}
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

func (s *FileStore) Read(collection string, out any) error {
	b, err := os.ReadFile(s.path(collection))
	if os.IsNotExist(err) {
		return nil // never written yet: empty collection
	}
	if err != nil {
		return &PersistenceError{Op: "read", Collection: collection, Err: err}
	}
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return &PersistenceError{Op: "read", Collection: collection, Err: err}
	}
	return nil
}

func (s *FileStore) Write(collection string, records any) error {
	b, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "write", Collection: collection, Err: err}
	}
	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return &PersistenceError{Op: "write", Collection: collection, Err: err}
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &PersistenceError{Op: "write", Collection: collection, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &PersistenceError{Op: "write", Collection: collection, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path(collection)); err != nil {
		os.Remove(tmp.Name())
		return &PersistenceError{Op: "write", Collection: collection, Err: err}
	}
	return nil
}
