package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"propertytag/internal/property/models"
	"propertytag/pkg/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func (s *InMemoryStoreSuite) newRecord(propertyID, name string) *models.Record {
	return &models.Record{
		PropertyID:   propertyID,
		PurchaseDate: "01-15-2024",
		PropertyName: name,
		Description:  "test property",
	}
}

func (s *InMemoryStoreSuite) TestInsertAndFind() {
	s.Run("assigns monotonically increasing ids", func() {
		id1, err := s.store.Insert(s.ctx, s.newRecord("P-100", "Warehouse A"))
		s.Require().NoError(err)
		id2, err := s.store.Insert(s.ctx, s.newRecord("P-200", "Warehouse B"))
		s.Require().NoError(err)
		s.Greater(id2, id1)
	})

	s.Run("finds inserted record by property id", func() {
		_, err := s.store.Insert(s.ctx, s.newRecord("P-300", "Office"))
		s.Require().NoError(err)

		found, err := s.store.FindByPropertyID(s.ctx, "P-300")
		s.Require().NoError(err)
		s.Equal("Office", found.PropertyName)
		s.Empty(found.QRCodePath)
	})

	s.Run("returns ErrNotFound for unknown property id", func() {
		_, err := s.store.FindByPropertyID(s.ctx, "nope")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("rejects duplicate property id", func() {
		_, err := s.store.Insert(s.ctx, s.newRecord("P-400", "First"))
		s.Require().NoError(err)

		_, err = s.store.Insert(s.ctx, s.newRecord("P-400", "Second"))
		s.Require().ErrorIs(err, sentinel.ErrConflict)

		// The original record is untouched.
		found, err := s.store.FindByPropertyID(s.ctx, "P-400")
		s.Require().NoError(err)
		s.Equal("First", found.PropertyName)
	})

	s.Run("returned records do not alias store internals", func() {
		_, err := s.store.Insert(s.ctx, s.newRecord("P-500", "Aliased"))
		s.Require().NoError(err)

		found, err := s.store.FindByPropertyID(s.ctx, "P-500")
		s.Require().NoError(err)
		found.PropertyName = "Mutated"

		again, err := s.store.FindByPropertyID(s.ctx, "P-500")
		s.Require().NoError(err)
		s.Equal("Aliased", again.PropertyName)
	})
}

func (s *InMemoryStoreSuite) TestUpdate() {
	s.Run("updates mutable fields only", func() {
		id, err := s.store.Insert(s.ctx, s.newRecord("P-100", "Before"))
		s.Require().NoError(err)
		s.Require().NoError(s.store.SetQRCodePath(s.ctx, id, "assets/qr_codes/qr_P-100.png"))

		err = s.store.Update(s.ctx, &models.Record{
			PropertyID:   "P-100",
			PurchaseDate: "02-20-2024",
			PropertyName: "After",
			Description:  "updated",
		})
		s.Require().NoError(err)

		found, err := s.store.FindByPropertyID(s.ctx, "P-100")
		s.Require().NoError(err)
		s.Equal(id, found.ID)
		s.Equal("After", found.PropertyName)
		s.Equal("02-20-2024", found.PurchaseDate)
		s.Equal("assets/qr_codes/qr_P-100.png", found.QRCodePath)
	})

	s.Run("returns ErrNotFound for unknown property id", func() {
		err := s.store.Update(s.ctx, s.newRecord("missing", "Name"))
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemoryStoreSuite) TestSetQRCodePath() {
	id, err := s.store.Insert(s.ctx, s.newRecord("P-100", "Warehouse A"))
	s.Require().NoError(err)

	s.Require().NoError(s.store.SetQRCodePath(s.ctx, id, "assets/qr_codes/qr_P-100.png"))

	found, err := s.store.FindByPropertyID(s.ctx, "P-100")
	s.Require().NoError(err)
	s.Equal("assets/qr_codes/qr_P-100.png", found.QRCodePath)

	s.Require().ErrorIs(s.store.SetQRCodePath(s.ctx, 9999, "x.png"), sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestCountAndPage() {
	seed := []struct{ id, name string }{
		{"P-101", "Warehouse A"},
		{"P-102", "Warehouse B"},
		{"P-103", "Office East"},
		{"P-104", "Office West"},
		{"P-105", "Storage Unit"},
	}
	for _, rec := range seed {
		_, err := s.store.Insert(s.ctx, s.newRecord(rec.id, rec.name))
		s.Require().NoError(err)
	}

	s.Run("empty filter matches all", func() {
		n, err := s.store.Count(s.ctx, "")
		s.Require().NoError(err)
		s.Equal(5, n)
	})

	s.Run("filter matches property name case-insensitively", func() {
		n, err := s.store.Count(s.ctx, "office")
		s.Require().NoError(err)
		s.Equal(2, n)
	})

	s.Run("filter matches property id substring", func() {
		n, err := s.store.Count(s.ctx, "P-10")
		s.Require().NoError(err)
		s.Equal(5, n)
	})

	s.Run("pages are ordered by property id", func() {
		page1, err := s.store.Page(s.ctx, "", 1, 2)
		s.Require().NoError(err)
		s.Require().Len(page1, 2)
		s.Equal("P-101", page1[0].PropertyID)
		s.Equal("P-102", page1[1].PropertyID)

		page3, err := s.store.Page(s.ctx, "", 3, 2)
		s.Require().NoError(err)
		s.Require().Len(page3, 1)
		s.Equal("P-105", page3[0].PropertyID)
	})

	s.Run("LIKE metacharacters in the filter match literally", func() {
		_, err := s.store.Insert(s.ctx, s.newRecord("P_100", "Underscore Lot"))
		s.Require().NoError(err)

		// "P_1" must not match "P-101" the way a SQL wildcard would.
		n, err := s.store.Count(s.ctx, "P_1")
		s.Require().NoError(err)
		s.Equal(1, n)
	})

	s.Run("page past the end is empty, not an error", func() {
		page, err := s.store.Page(s.ctx, "", 4, 2)
		s.Require().NoError(err)
		s.Empty(page)
	})
}
