package store

import (
	"fmt"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/peterbourgon/diskv/v3"

	"baitonavi/pkg/catalog"
)

// Store persists catalog records on disk, one JSON blob per position. The
// catalog itself stays positional; keys encode the index so reads come back
// in catalog order.
type Store struct {
	d *diskv.Diskv
}

// Open creates a Store rooted at the configured base path.
func Open(cfg *Config) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     cfg.Path,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

const keyPrefix = "job-"

func jobKey(i int) string {
	return fmt.Sprintf("%s%04d", keyPrefix, i)
}

// Put writes the record for position i.
func (s *Store) Put(i int, rec catalog.JobRecord) error {
	if i < 0 {
		return fmt.Errorf("negative catalog position %d", i)
	}
	b, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.d.Write(jobKey(i), b)
}

// Records reads every stored record in catalog order.
func (s *Store) Records() ([]catalog.JobRecord, error) {
	keys := make([]string, 0, 16)
	for key := range s.d.Keys(nil) {
		if strings.HasPrefix(key, keyPrefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	records := make([]catalog.JobRecord, 0, len(keys))
	for _, key := range keys {
		b, err := s.d.Read(key)
		if err != nil {
			return nil, err
		}
		var rec catalog.JobRecord
		if err := json.Unmarshal(b, &rec); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Len counts the stored records.
func (s *Store) Len() int {
	n := 0
	for key := range s.d.Keys(nil) {
		if strings.HasPrefix(key, keyPrefix) {
			n++
		}
	}
	return n
}

// Seed writes records only when the store is empty, so a user-edited catalog
// survives restarts.
func (s *Store) Seed(records []catalog.JobRecord) error {
	if s.Len() > 0 {
		return nil
	}
	for i, rec := range records {
		if err := s.Put(i, rec); err != nil {
			return err
		}
	}
	return nil
}

// LoadCatalog reads the store into an immutable catalog, seeding the bundled
// records on first run.
func (s *Store) LoadCatalog() (*catalog.Catalog, error) {
	if err := s.Seed(catalog.Seed()); err != nil {
		return nil, err
	}
	records, err := s.Records()
	if err != nil {
		return nil, err
	}
	return catalog.New(records), nil
}
