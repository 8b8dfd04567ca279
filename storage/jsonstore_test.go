package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type row struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store := NewJSONStore(t.TempDir())

	rows := []row{{ID: 1, Name: "first"}, {ID: 2, Name: "second"}}
	if err := store.Write("rows", rows); err != nil {
		t.Fatalf("Failed to write collection: %v", err)
	}

	if !store.Exists("rows") {
		t.Error("Expected collection file to exist after write")
	}

	var got []row
	if err := store.Read("rows", &got); err != nil {
		t.Fatalf("Failed to read collection: %v", err)
	}

	if len(got) != 2 || got[0] != rows[0] || got[1] != rows[1] {
		t.Errorf("Expected %v, got %v", rows, got)
	}
}

func TestJSONStoreReadMissing(t *testing.T) {
	store := NewJSONStore(t.TempDir())

	var got []row
	err := store.Read("rows", &got)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for missing collection, got: %v", err)
	}
}

func TestJSONStoreReadCorrupt(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONStore(dir)

	if err := os.WriteFile(filepath.Join(dir, "rows.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("Failed to write corrupt file: %v", err)
	}

	var got []row
	err := store.Read("rows", &got)
	if !errors.Is(err, ErrPersistence) {
		t.Errorf("Expected ErrPersistence for corrupt collection, got: %v", err)
	}
}

func TestJSONStoreWriteReplacesAtomically(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONStore(dir)

	if err := store.Write("rows", []row{{ID: 1}}); err != nil {
		t.Fatalf("Failed to write collection: %v", err)
	}
	if err := store.Write("rows", []row{{ID: 2}, {ID: 3}}); err != nil {
		t.Fatalf("Failed to rewrite collection: %v", err)
	}

	var got []row
	if err := store.Read("rows", &got); err != nil {
		t.Fatalf("Failed to read collection: %v", err)
	}
	if len(got) != 2 || got[0].ID != 2 {
		t.Errorf("Expected replacement contents, got %v", got)
	}

	// No temp files may be left behind
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to list data dir: %v", err)
	}
	for _, e := range entries {
		if e.Name() != "rows.json" {
			t.Errorf("Unexpected leftover file: %s", e.Name())
		}
	}
}

func TestJSONStoreBootstrap(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewJSONStore(dir)

	if err := store.Bootstrap(); err != nil {
		t.Fatalf("Failed to bootstrap storage: %v", err)
	}

	if _, err := os.Stat(dir); err != nil {
		t.Errorf("Expected data directory to exist: %v", err)
	}

	// Second bootstrap is a no-op
	if err := store.Bootstrap(); err != nil {
		t.Errorf("Expected repeated bootstrap to succeed, got: %v", err)
	}
}
