package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Sector is reference data mapping a sector name to industry averages.
// The averages are optional: a sector without a known average P/E simply
// never marks its stocks as undervalued on the P/E signal.
type Sector struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`

	AveragePERatio       *decimal.Decimal `json:"average_pe_ratio,omitempty"`
	AveragePBRatio       *decimal.Decimal `json:"average_pb_ratio,omitempty"`
	AverageDividendYield *decimal.Decimal `json:"average_dividend_yield,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SectorCreate is the input for creating a sector.
type SectorCreate struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	AveragePERatio       *decimal.Decimal `json:"average_pe_ratio,omitempty"`
	AveragePBRatio       *decimal.Decimal `json:"average_pb_ratio,omitempty"`
	AverageDividendYield *decimal.Decimal `json:"average_dividend_yield,omitempty"`
}

// Validate checks that the sector name is set.
func (c SectorCreate) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("sector name is required")
	}
	return nil
}
