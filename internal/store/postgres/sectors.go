package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/valuehound/screener/internal/domain"
)

// SectorRepository is the Postgres-backed sector directory.
type SectorRepository struct {
	pool *pgxpool.Pool
}

// NewSectorRepository creates a sector repository on the given pool.
func NewSectorRepository(pool *pgxpool.Pool) *SectorRepository {
	return &SectorRepository{pool: pool}
}

const sectorColumns = `
	id, name, description,
	average_pe_ratio, average_pb_ratio, average_dividend_yield,
	created_at, updated_at`

// Create inserts a new sector.
func (r *SectorRepository) Create(ctx context.Context, in domain.SectorCreate) (*domain.Sector, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO sectors (
			name, description,
			average_pe_ratio, average_pb_ratio, average_dividend_yield
		) VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + sectorColumns

	sector, err := scanSector(r.pool.QueryRow(ctx, query,
		in.Name, in.Description,
		in.AveragePERatio, in.AveragePBRatio, in.AverageDividendYield,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("sector %q: %w", in.Name, domain.ErrDuplicateSector)
		}
		return nil, fmt.Errorf("insert sector %q: %w", in.Name, err)
	}

	return sector, nil
}

// GetByID looks up a sector by id.
func (r *SectorRepository) GetByID(ctx context.Context, id int64) (*domain.Sector, error) {
	query := `SELECT ` + sectorColumns + ` FROM sectors WHERE id = $1`

	sector, err := scanSector(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("sector %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get sector %d: %w", id, err)
	}

	return sector, nil
}

// GetByName looks up a sector by exact name.
func (r *SectorRepository) GetByName(ctx context.Context, name string) (*domain.Sector, error) {
	query := `SELECT ` + sectorColumns + ` FROM sectors WHERE name = $1`

	sector, err := scanSector(r.pool.QueryRow(ctx, query, name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("sector %q: %w", name, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get sector %q: %w", name, err)
	}

	return sector, nil
}

// ListAll returns every sector ordered by name.
func (r *SectorRepository) ListAll(ctx context.Context) ([]domain.Sector, error) {
	query := `SELECT ` + sectorColumns + ` FROM sectors ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query sectors: %w", err)
	}
	defer rows.Close()

	sectors := make([]domain.Sector, 0)
	for rows.Next() {
		sector, err := scanSector(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sector: %w", err)
		}
		sectors = append(sectors, *sector)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sectors: %w", err)
	}

	return sectors, nil
}

func scanSector(row pgx.Row) (*domain.Sector, error) {
	var s domain.Sector
	err := row.Scan(
		&s.ID, &s.Name, &s.Description,
		&s.AveragePERatio, &s.AveragePBRatio, &s.AverageDividendYield,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
