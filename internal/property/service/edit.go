package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"propertytag/internal/property/models"
	"propertytag/pkg/domainerrors"
	"propertytag/pkg/sentinel"
)

// EditInput carries the mutable fields of a record. The property id itself
// and the assigned id are not editable.
type EditInput struct {
	PurchaseDate string
	PropertyName string
	Description  string
}

// Get loads one record for editing.
func (s *Service) Get(ctx context.Context, propertyID string) (*models.Record, error) {
	rec, err := s.store.FindByPropertyID(ctx, propertyID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, domainerrors.New(domainerrors.CodeNotFound,
				fmt.Sprintf("no property with ID %q", propertyID))
		}
		return nil, domainerrors.Wrap(domainerrors.CodeDatabase, "could not load the property record", err)
	}
	return rec, nil
}

// Save validates and persists field updates. A previously generated tag
// image is intentionally left untouched: the printed tag is a snapshot of
// the record at issuance time, and edits diverge from it by design.
func (s *Service) Save(ctx context.Context, propertyID string, in EditInput) (*models.Record, error) {
	updated := &models.Record{
		PropertyID:   propertyID,
		PurchaseDate: strings.TrimSpace(in.PurchaseDate),
		PropertyName: strings.TrimSpace(in.PropertyName),
		Description:  strings.TrimSpace(in.Description),
	}
	if updated.PropertyName == "" {
		return nil, domainerrors.New(domainerrors.CodeValidation, "property name is required")
	}
	if err := s.store.Update(ctx, updated); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, domainerrors.New(domainerrors.CodeNotFound,
				fmt.Sprintf("no property with ID %q", propertyID))
		}
		return nil, domainerrors.Wrap(domainerrors.CodeDatabase, "could not save the property record", err)
	}
	return s.Get(ctx, propertyID)
}
