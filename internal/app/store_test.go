package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testDataset = `[
  {"uid": "h1", "summary": "New Year", "start": "2025-01-01", "end": "2025-01-01", "categories": ["public"]},
  {"uid": "h2", "summary": "Winter Break", "start": "2025-12-24", "end": "2025-12-26", "categories": ["public", "school"]}
]`

func writeDataset(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write dataset: %v", err)
	}
}

func TestFileStoreLoad(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "2025.json", testDataset)

	store := NewFileStore(dir)
	records, err := store.Load(2025)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	// Stored order must be preserved
	if records[0].UID != "h1" || records[1].UID != "h2" {
		t.Errorf("Record order not preserved: %s, %s", records[0].UID, records[1].UID)
	}
	if records[1].Summary != "Winter Break" {
		t.Errorf("Expected summary Winter Break, got %s", records[1].Summary)
	}
	if len(records[1].Categories) != 2 {
		t.Errorf("Expected 2 categories, got %v", records[1].Categories)
	}
}

func TestFileStoreLoadMissingYear(t *testing.T) {
	store := NewFileStore(t.TempDir())

	_, err := store.Load(2050)
	if !errors.Is(err, ErrYearNotFound) {
		t.Fatalf("Expected ErrYearNotFound, got %v", err)
	}
}

func TestFileStoreLoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "2026.json", "{not json")

	store := NewFileStore(dir)
	_, err := store.Load(2026)
	if err == nil {
		t.Fatal("Expected error for corrupt dataset")
	}
	// Corrupt data is a hard failure, distinct from a missing year
	if errors.Is(err, ErrYearNotFound) {
		t.Error("Corrupt dataset must not report as not found")
	}
}

func TestFileStoreCaching(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "2025.json", testDataset)

	store := NewFileStore(dir)
	if _, err := store.Load(2025); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// The backing file is no longer consulted once cached
	if err := os.Remove(filepath.Join(dir, "2025.json")); err != nil {
		t.Fatalf("Failed to remove dataset: %v", err)
	}

	records, err := store.Load(2025)
	if err != nil {
		t.Fatalf("Expected cached load, got error: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("Expected 2 cached records, got %d", len(records))
	}

	if !store.Exists(2025) {
		t.Error("Exists should report cached years as present")
	}
}

func TestFileStoreExists(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "2025.json", testDataset)
	writeDataset(t, dir, "2030.json", "[]")

	store := NewFileStore(dir)
	if !store.Exists(2025) {
		t.Error("Expected 2025 to exist")
	}
	// An empty dataset file still counts
	if !store.Exists(2030) {
		t.Error("Expected 2030 to exist")
	}
	if store.Exists(2050) {
		t.Error("Expected 2050 to be missing")
	}
}

func TestFileStoreEmptyDataset(t *testing.T) {
	dir := t.TempDir()
	writeDataset(t, dir, "2030.json", "[]")

	store := NewFileStore(dir)
	records, err := store.Load(2030)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected empty dataset, got %d records", len(records))
	}
}
