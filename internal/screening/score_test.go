package screening

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valuehound/screener/internal/domain"
)

func techSector(avgPE float64) *domain.Sector {
	s := domain.Sector{ID: 1, Name: "Technology"}
	if avgPE != 0 {
		s.AveragePERatio = dec(avgPE)
	}
	return &s
}

func TestCriteriaEvaluate(t *testing.T) {
	criteria := DefaultCriteria()

	tests := []struct {
		name      string
		stock     domain.Stock
		sector    *domain.Sector
		wantPE    bool
		wantPB    bool
		wantDiv   bool
		wantScore int
	}{
		{
			name: "all three signals",
			stock: domain.Stock{
				Ticker: "UNDERVAL", SectorID: int64p(1),
				PERatio: dec(8.5), PBRatio: dec(1.2), DividendYield: dec(4.5),
			},
			sector: techSector(12.8),
			wantPE: true, wantPB: true, wantDiv: true,
			wantScore: 100,
		},
		{
			name: "no signals",
			stock: domain.Stock{
				Ticker: "AAPL", SectorID: int64p(1),
				PERatio: dec(28.5), PBRatio: dec(8.2), DividendYield: dec(0.5),
			},
			sector: techSector(28.5), // 28.5 is not < 28.5
			wantPE: false, wantPB: false, wantDiv: false,
			wantScore: 0,
		},
		{
			name: "pe and pb only",
			stock: domain.Stock{
				Ticker: "BANK", SectorID: int64p(1),
				PERatio: dec(9.8), PBRatio: dec(1.1), DividendYield: dec(2.4),
			},
			sector: techSector(12.8),
			wantPE: true, wantPB: true, wantDiv: false,
			wantScore: 80,
		},
		{
			name: "dividend only",
			stock: domain.Stock{
				Ticker: "YIELD",
				DividendYield: dec(3.0), // >= threshold counts
			},
			wantDiv:   true,
			wantScore: 20,
		},
		{
			name: "pb at threshold is not undervalued",
			stock: domain.Stock{
				Ticker:  "EDGE",
				PBRatio: dec(1.5),
			},
			wantScore: 0,
		},
		{
			name:      "all metrics unknown",
			stock:     domain.Stock{Ticker: "MYST"},
			sector:    techSector(12.8),
			wantScore: 0,
		},
		{
			name: "known pe but no sector",
			stock: domain.Stock{
				Ticker:  "LONE",
				PERatio: dec(5.0),
			},
			wantScore: 0,
		},
		{
			name: "known pe but sector average unknown",
			stock: domain.Stock{
				Ticker: "DARK", SectorID: int64p(1),
				PERatio: dec(5.0),
			},
			sector:    techSector(0),
			wantScore: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := criteria.Evaluate(tt.stock, tt.sector)
			assert.Equal(t, tt.wantPE, result.IsUndervaluedPE, "undervalued_pe")
			assert.Equal(t, tt.wantPB, result.IsUndervaluedPB, "undervalued_pb")
			assert.Equal(t, tt.wantDiv, result.HasHighDividend, "high_dividend")
			assert.Equal(t, tt.wantScore, result.OverallScore, "overall score")
		})
	}
}

func TestCriteriaEvaluate_CopiesDisplayMetrics(t *testing.T) {
	stock := domain.Stock{
		ID: 7, Ticker: "XOM", CompanyName: "Exxon Mobil Corporation",
		Industry: "Oil & Gas", SectorID: int64p(1),
		PERatio: dec(12.8), PBRatio: dec(1.8), DividendYield: dec(5.8),
		MarketCap: dec(420_000_000_000), CurrentPrice: dec(105.40),
	}
	sector := &domain.Sector{ID: 1, Name: "Energy", AveragePERatio: dec(14.2)}

	result := DefaultCriteria().Evaluate(stock, sector)

	assert.Equal(t, int64(7), result.StockID)
	assert.Equal(t, "Energy", result.SectorName)
	assert.Equal(t, stock.PERatio, result.PERatio)
	assert.Equal(t, stock.CurrentPrice, result.CurrentPrice)
	assert.Equal(t, 60, result.OverallScore) // pe yes, pb no (1.8 >= 1.5), dividend yes
}
