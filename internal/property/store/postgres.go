package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"propertytag/internal/property/models"
	"propertytag/pkg/sentinel"
)

//go:embed schema.sql
var schemaSQL string

// uniqueViolation is the Postgres SQLSTATE for a unique constraint breach.
const uniqueViolation = "23505"

// Postgres persists property records in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed record store.
func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// ApplySchema creates the properties table and indexes if they do not exist.
// Idempotent, called once at startup.
func (p *Postgres) ApplySchema(ctx context.Context) error {
	if _, err := p.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (p *Postgres) Insert(ctx context.Context, record *models.Record) (int64, error) {
	query := `
		INSERT INTO properties (property_id, purchase_date, property_name, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	err := p.db.QueryRowContext(ctx, query,
		record.PropertyID,
		record.PurchaseDate,
		record.PropertyName,
		record.Description,
	).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return 0, fmt.Errorf("insert property %q: %w", record.PropertyID, sentinel.ErrConflict)
		}
		return 0, fmt.Errorf("insert property: %w", err)
	}
	return id, nil
}

func (p *Postgres) Update(ctx context.Context, record *models.Record) error {
	query := `
		UPDATE properties
		SET purchase_date = $2, property_name = $3, description = $4
		WHERE property_id = $1
	`
	res, err := p.db.ExecContext(ctx, query,
		record.PropertyID,
		record.PurchaseDate,
		record.PropertyName,
		record.Description,
	)
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update property: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update property %q: %w", record.PropertyID, sentinel.ErrNotFound)
	}
	return nil
}

func (p *Postgres) SetQRCodePath(ctx context.Context, id int64, path string) error {
	res, err := p.db.ExecContext(ctx, `UPDATE properties SET qr_code = $2 WHERE id = $1`, id, path)
	if err != nil {
		return fmt.Errorf("set qr code path: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("set qr code path: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("set qr code path for record %d: %w", id, sentinel.ErrNotFound)
	}
	return nil
}

// likePattern wraps the filter for a substring ILIKE match, escaping LIKE
// metacharacters so "P_1" or "100%" match literally, the same as the
// in-memory store. An empty filter yields "%%", which matches everything.
func likePattern(filter string) string {
	escaper := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + escaper.Replace(filter) + "%"
}

func (p *Postgres) Count(ctx context.Context, filter string) (int, error) {
	query := `
		SELECT COUNT(*) FROM properties
		WHERE property_id ILIKE $1 ESCAPE '\' OR property_name ILIKE $1 ESCAPE '\'
	`
	var n int
	if err := p.db.QueryRowContext(ctx, query, likePattern(filter)).Scan(&n); err != nil {
		return 0, fmt.Errorf("count properties: %w", err)
	}
	return n, nil
}

func (p *Postgres) Page(ctx context.Context, filter string, page, pageSize int) ([]*models.Record, error) {
	query := `
		SELECT id, property_id, purchase_date, property_name, description, qr_code
		FROM properties
		WHERE property_id ILIKE $1 ESCAPE '\' OR property_name ILIKE $1 ESCAPE '\'
		ORDER BY property_id ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := p.db.QueryContext(ctx, query, likePattern(filter), pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("page properties: %w", err)
	}
	defer rows.Close()

	records := []*models.Record{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("page properties: %w", err)
	}
	return records, nil
}

func (p *Postgres) FindByPropertyID(ctx context.Context, propertyID string) (*models.Record, error) {
	query := `
		SELECT id, property_id, purchase_date, property_name, description, qr_code
		FROM properties
		WHERE property_id = $1
	`
	r, err := scanRecord(p.db.QueryRowContext(ctx, query, propertyID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("find property %q: %w", propertyID, sentinel.ErrNotFound)
		}
		return nil, err
	}
	return r, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*models.Record, error) {
	var r models.Record
	var qrCode sql.NullString
	err := row.Scan(&r.ID, &r.PropertyID, &r.PurchaseDate, &r.PropertyName, &r.Description, &qrCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan property: %w", err)
	}
	r.QRCodePath = qrCode.String
	return &r, nil
}
