package service

import (
	"context"

	"propertytag/internal/property/models"
	"propertytag/pkg/domainerrors"
)

// Listing is one page of the filtered record set.
type Listing struct {
	Records    []*models.Record
	Page       int
	TotalPages int
	Total      int
}

// List recomputes the count and fetches one page on every call. Stateless
// and cheap at expected record counts. Pages are 1-based; a page past the
// end returns an empty slice so navigation clamping stays a caller concern.
func (s *Service) List(ctx context.Context, filter string, page int) (*Listing, error) {
	if page < 1 {
		page = 1
	}
	total, err := s.store.Count(ctx, filter)
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.CodeDatabase, "could not count property records", err)
	}
	records, err := s.store.Page(ctx, filter, page, s.pageSize)
	if err != nil {
		return nil, domainerrors.Wrap(domainerrors.CodeDatabase, "could not load property records", err)
	}
	return &Listing{
		Records:    records,
		Page:       page,
		TotalPages: (total + s.pageSize - 1) / s.pageSize,
		Total:      total,
	}, nil
}
