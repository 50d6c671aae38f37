//go:build integration

package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"propertytag/internal/property/models"
	"propertytag/internal/property/store"
	"propertytag/pkg/sentinel"
	"propertytag/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *store.Postgres
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T())
	s.store = store.NewPostgres(s.postgres.DB)
	s.Require().NoError(s.store.ApplySchema(context.Background()))
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateTables(context.Background(), "properties"))
}

func newRecord(propertyID, name string) *models.Record {
	return &models.Record{
		PropertyID:   propertyID,
		PurchaseDate: "01-15-2024",
		PropertyName: name,
		Description:  "integration test property",
	}
}

func (s *PostgresStoreSuite) TestInsertRoundTrip() {
	ctx := context.Background()

	id, err := s.store.Insert(ctx, newRecord("P-100", "Warehouse A"))
	s.Require().NoError(err)
	s.Positive(id)

	found, err := s.store.FindByPropertyID(ctx, "P-100")
	s.Require().NoError(err)
	s.Equal(id, found.ID)
	s.Equal("Warehouse A", found.PropertyName)
	s.Equal("01-15-2024", found.PurchaseDate)
	s.Empty(found.QRCodePath)
}

func (s *PostgresStoreSuite) TestIDsStayMonotonicAcrossTruncate() {
	ctx := context.Background()

	id1, err := s.store.Insert(ctx, newRecord("P-100", "First"))
	s.Require().NoError(err)

	s.Require().NoError(s.postgres.TruncateTables(ctx, "properties"))

	id2, err := s.store.Insert(ctx, newRecord("P-100", "Second"))
	s.Require().NoError(err)
	s.Greater(id2, id1, "ids must never be reused after removal")
}

func (s *PostgresStoreSuite) TestDuplicatePropertyID() {
	ctx := context.Background()

	_, err := s.store.Insert(ctx, newRecord("P-100", "First"))
	s.Require().NoError(err)

	_, err = s.store.Insert(ctx, newRecord("P-100", "Second"))
	s.Require().ErrorIs(err, sentinel.ErrConflict)

	n, err := s.store.Count(ctx, "")
	s.Require().NoError(err)
	s.Equal(1, n)
}

func (s *PostgresStoreSuite) TestUpdate() {
	ctx := context.Background()

	id, err := s.store.Insert(ctx, newRecord("P-100", "Before"))
	s.Require().NoError(err)
	s.Require().NoError(s.store.SetQRCodePath(ctx, id, "assets/qr_codes/qr_P-100.png"))

	err = s.store.Update(ctx, &models.Record{
		PropertyID:   "P-100",
		PurchaseDate: "02-20-2024",
		PropertyName: "After",
		Description:  "updated",
	})
	s.Require().NoError(err)

	found, err := s.store.FindByPropertyID(ctx, "P-100")
	s.Require().NoError(err)
	s.Equal(id, found.ID)
	s.Equal("After", found.PropertyName)
	s.Equal("assets/qr_codes/qr_P-100.png", found.QRCodePath, "update must not touch qr_code")

	s.Require().ErrorIs(s.store.Update(ctx, newRecord("missing", "Name")), sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestFilterAndPaging() {
	ctx := context.Background()

	seed := []struct{ id, name string }{
		{"P-101", "Warehouse A"},
		{"P-102", "Warehouse B"},
		{"P-103", "Office East"},
		{"P-104", "Office West"},
		{"P-105", "Storage Unit"},
	}
	for _, rec := range seed {
		_, err := s.store.Insert(ctx, newRecord(rec.id, rec.name))
		s.Require().NoError(err)
	}

	n, err := s.store.Count(ctx, "office")
	s.Require().NoError(err)
	s.Equal(2, n)

	page, err := s.store.Page(ctx, "office", 1, 10)
	s.Require().NoError(err)
	s.Require().Len(page, 2)
	s.Equal("P-103", page[0].PropertyID)
	s.Equal("P-104", page[1].PropertyID)

	empty, err := s.store.Page(ctx, "", 10, 10)
	s.Require().NoError(err)
	s.Empty(empty)
}

func (s *PostgresStoreSuite) TestFilterMatchesLiterally() {
	ctx := context.Background()

	seed := []struct{ id, name string }{
		{"P_100", "Underscore Lot"},
		{"P-101", "Dash Lot"},
		{"Q-100%", "Percent Lot"},
	}
	for _, rec := range seed {
		_, err := s.store.Insert(ctx, newRecord(rec.id, rec.name))
		s.Require().NoError(err)
	}

	// "_" must not act as a single-character wildcard: "P_1" would
	// otherwise also match "P-101".
	n, err := s.store.Count(ctx, "P_1")
	s.Require().NoError(err)
	s.Equal(1, n)

	page, err := s.store.Page(ctx, "P_1", 1, 10)
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal("P_100", page[0].PropertyID)

	// "%" must not act as a match-anything wildcard.
	n, err = s.store.Count(ctx, "100%")
	s.Require().NoError(err)
	s.Equal(1, n)

	page, err = s.store.Page(ctx, "100%", 1, 10)
	s.Require().NoError(err)
	s.Require().Len(page, 1)
	s.Equal("Q-100%", page[0].PropertyID)
}
