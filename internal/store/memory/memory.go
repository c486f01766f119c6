// Package memory is the default in-process dataset store.
package memory

import (
	"context"
	"sync"

	"salesboard/internal/core"
	"salesboard/internal/dataset"
)

type Store struct {
	mu      sync.Mutex
	records []core.Record
}

func New(records []core.Record) *Store {
	s := &Store{}
	s.records = append(s.records, records...)
	return s
}

// NewFromFile seeds the store from a CSV file. A missing or malformed file
// yields an empty store, matching the parse policy of the dataset package.
func NewFromFile(path string) *Store {
	return New(dataset.Load(path))
}

// ReplaceDataset swaps the whole dataset. Records are validated before
// anything is replaced so a bad batch leaves the store untouched.
func (s *Store) ReplaceDataset(_ context.Context, records []core.Record) (int, error) {
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return 0, err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]core.Record(nil), records...)
	return len(s.records), nil
}

// ListRecords returns a copy of the stored records in import order.
func (s *Store) ListRecords(_ context.Context) ([]core.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Record(nil), s.records...), nil
}

// ReadTotals aggregates the stored dataset.
func (s *Store) ReadTotals(_ context.Context) (core.Totals, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return core.CalculateTotals(s.records), nil
}
