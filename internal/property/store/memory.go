package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"propertytag/internal/property/models"
	"propertytag/pkg/sentinel"
)

// InMemory keeps records in a map. Used by unit tests and by development
// runs without a DATABASE_URL. The id counter only ever moves forward so
// assigned ids behave like the Postgres sequence.
type InMemory struct {
	mu      sync.RWMutex
	records map[string]*models.Record
	nextID  int64
}

func NewInMemory() *InMemory {
	return &InMemory{records: make(map[string]*models.Record)}
}

func (s *InMemory) Insert(_ context.Context, record *models.Record) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[record.PropertyID]; ok {
		return 0, fmt.Errorf("insert property %q: %w", record.PropertyID, sentinel.ErrConflict)
	}
	s.nextID++
	stored := record.Clone()
	stored.ID = s.nextID
	s.records[record.PropertyID] = stored
	return stored.ID, nil
}

func (s *InMemory) Update(_ context.Context, record *models.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.records[record.PropertyID]
	if !ok {
		return fmt.Errorf("update property %q: %w", record.PropertyID, sentinel.ErrNotFound)
	}
	existing.PurchaseDate = record.PurchaseDate
	existing.PropertyName = record.PropertyName
	existing.Description = record.Description
	return nil
}

func (s *InMemory) SetQRCodePath(_ context.Context, id int64, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.records {
		if r.ID == id {
			r.QRCodePath = path
			return nil
		}
	}
	return fmt.Errorf("set qr code path for record %d: %w", id, sentinel.ErrNotFound)
}

func (s *InMemory) Count(_ context.Context, filter string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, r := range s.records {
		if matches(r, filter) {
			n++
		}
	}
	return n, nil
}

func (s *InMemory) Page(_ context.Context, filter string, page, pageSize int) ([]*models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matched := make([]*models.Record, 0, len(s.records))
	for _, r := range s.records {
		if matches(r, filter) {
			matched = append(matched, r.Clone())
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].PropertyID < matched[j].PropertyID
	})
	offset := (page - 1) * pageSize
	if offset >= len(matched) {
		return []*models.Record{}, nil
	}
	end := offset + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (s *InMemory) FindByPropertyID(_ context.Context, propertyID string) (*models.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[propertyID]
	if !ok {
		return nil, fmt.Errorf("find property %q: %w", propertyID, sentinel.ErrNotFound)
	}
	return r.Clone(), nil
}

func matches(r *models.Record, filter string) bool {
	if filter == "" {
		return true
	}
	needle := strings.ToLower(filter)
	return strings.Contains(strings.ToLower(r.PropertyID), needle) ||
		strings.Contains(strings.ToLower(r.PropertyName), needle)
}
