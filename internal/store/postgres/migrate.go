package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is the idempotent DDL for the screener tables. Metric columns are
// NUMERIC and nullable: NULL means unknown, which is distinct from zero.
const schema = `
CREATE TABLE IF NOT EXISTS sectors (
	id                     BIGSERIAL PRIMARY KEY,
	name                   VARCHAR(100) NOT NULL UNIQUE,
	description            VARCHAR(500) NOT NULL DEFAULT '',
	average_pe_ratio       NUMERIC(12,2),
	average_pb_ratio       NUMERIC(12,2),
	average_dividend_yield NUMERIC(12,2),
	created_at             TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at             TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS stocks (
	id                  BIGSERIAL PRIMARY KEY,
	ticker              VARCHAR(10) NOT NULL UNIQUE,
	company_name        VARCHAR(200) NOT NULL,
	sector_id           BIGINT REFERENCES sectors(id),
	industry            VARCHAR(100) NOT NULL DEFAULT '',
	pe_ratio            NUMERIC(12,2),
	pb_ratio            NUMERIC(12,2),
	dividend_yield      NUMERIC(12,2),
	market_cap          NUMERIC(20,0),
	market_cap_category TEXT,
	current_price       NUMERIC(12,2),
	price_52week_high   NUMERIC(12,2),
	price_52week_low    NUMERIC(12,2),
	debt_to_equity      NUMERIC(12,2),
	return_on_equity    NUMERIC(12,2),
	revenue_growth      NUMERIC(12,2),
	is_active           BOOLEAN NOT NULL DEFAULT TRUE,
	last_updated        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_stocks_is_active ON stocks (is_active);
CREATE INDEX IF NOT EXISTS idx_stocks_sector_id ON stocks (sector_id);
`

// Migrate creates the screener tables if they do not exist.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
