package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
)

// ErrYearNotFound reports that no dataset exists for the requested year.
// A missing year is a normal outcome, not a failure.
var ErrYearNotFound = errors.New("no dataset for year")

// Store is a per-year lookup of holiday records.
type Store interface {
	// Exists reports whether a dataset for the year is present, without parsing it.
	Exists(year int) bool

	// Load returns the year's records in stored order. A missing year returns
	// ErrYearNotFound; any other error means the backing data is unreadable.
	Load(year int) ([]HolidayRecord, error)
}

// FileStore serves datasets from <dir>/<year>.json files with a read-through
// cache. Datasets are static for the process lifetime, so cached entries are
// never invalidated.
type FileStore struct {
	dir   string
	mu    sync.RWMutex
	cache map[int][]HolidayRecord
}

// NewFileStore creates a FileStore reading from the given directory
func NewFileStore(dir string) *FileStore {
	return &FileStore{
		dir:   dir,
		cache: make(map[int][]HolidayRecord),
	}
}

func (s *FileStore) path(year int) string {
	return filepath.Join(s.dir, strconv.Itoa(year)+".json")
}

// Exists reports whether a dataset file for the year is present
func (s *FileStore) Exists(year int) bool {
	s.mu.RLock()
	_, cached := s.cache[year]
	s.mu.RUnlock()
	if cached {
		return true
	}

	_, err := os.Stat(s.path(year))
	return err == nil
}

// Load returns the year's records, reading the backing file on first access
func (s *FileStore) Load(year int) ([]HolidayRecord, error) {
	s.mu.RLock()
	records, cached := s.cache[year]
	s.mu.RUnlock()
	if cached {
		DatasetCacheHits.Inc()
		return records, nil
	}
	DatasetCacheMisses.Inc()

	data, err := os.ReadFile(s.path(year))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrYearNotFound
		}
		return nil, fmt.Errorf("failed to read dataset for %d: %w", year, err)
	}

	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse dataset for %d: %w", year, err)
	}

	// Concurrent first access may load the same file twice; both parses see
	// identical data, so the duplicate write is harmless.
	s.mu.Lock()
	s.cache[year] = records
	s.mu.Unlock()

	return records, nil
}
