package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Collection names of the three durable JSON arrays.
const (
	Products    = "products"
	Categories  = "categories"
	Submissions = "submissions"
)

var (
	// ErrStorageUnavailable indicates the data directory cannot be
	// created or written.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrNotFound indicates a collection file that was never created.
	ErrNotFound = errors.New("not found")
	// ErrPersistence indicates a collection file that exists but
	// cannot be read or replaced.
	ErrPersistence = errors.New("persistence failure")
)

// JSONStore owns a data directory holding one JSON-array file per
// collection. Replacement writes go through a temp file and a rename,
// so a failed write leaves the previous file intact.
type JSONStore struct {
	dataDir string
}

// NewJSONStore creates a new JSONStore rooted at dataDir
func NewJSONStore(dataDir string) *JSONStore {
	return &JSONStore{dataDir: dataDir}
}

// Bootstrap creates the data directory if it does not exist
func (s *JSONStore) Bootstrap() error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create data directory %s: %v", ErrStorageUnavailable, s.dataDir, err)
	}
	return nil
}

// Path returns the file backing the named collection
func (s *JSONStore) Path(collection string) string {
	return filepath.Join(s.dataDir, collection+".json")
}

// Exists reports whether the named collection has a backing file
func (s *JSONStore) Exists(collection string) bool {
	_, err := os.Stat(s.Path(collection))
	return err == nil
}

// Read unmarshals the named collection into v. Returns ErrNotFound if
// the file was never created and ErrPersistence if it exists but
// cannot be read or parsed.
func (s *JSONStore) Read(collection string, v any) error {
	data, err := os.ReadFile(s.Path(collection))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: collection %s", ErrNotFound, collection)
	}
	if err != nil {
		return fmt.Errorf("%w: failed to read collection %s: %v", ErrPersistence, collection, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: failed to parse collection %s: %v", ErrPersistence, collection, err)
	}

	return nil
}

// Write atomically replaces the named collection with the JSON
// serialization of v. On failure the previous file contents remain
// observable.
func (s *JSONStore) Write(collection string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: failed to encode collection %s: %v", ErrPersistence, collection, err)
	}

	tmp, err := os.CreateTemp(s.dataDir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file for %s: %v", ErrPersistence, collection, err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: failed to write collection %s: %v", ErrPersistence, collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: failed to flush collection %s: %v", ErrPersistence, collection, err)
	}

	if err := os.Rename(tmp.Name(), s.Path(collection)); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("%w: failed to replace collection %s: %v", ErrPersistence, collection, err)
	}

	return nil
}
