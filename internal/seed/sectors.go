package seed

import (
	"github.com/shopspring/decimal"

	"github.com/valuehound/screener/internal/domain"
)

// DefaultSectors returns the ten fixed reference sectors with their
// industry-average P/E, P/B and dividend yield.
func DefaultSectors() []domain.SectorCreate {
	return []domain.SectorCreate{
		sector("Technology", "Software, hardware, and technology services companies", 28.5, 4.2, 1.8),
		sector("Healthcare", "Pharmaceutical, biotechnology, and medical device companies", 22.3, 3.1, 2.4),
		sector("Financials", "Banks, insurance companies, and financial services", 12.8, 1.1, 3.2),
		sector("Consumer Discretionary", "Retail, automotive, and entertainment companies", 18.7, 2.8, 2.1),
		sector("Consumer Staples", "Food, beverage, and household product companies", 19.4, 3.5, 2.8),
		sector("Industrials", "Manufacturing, aerospace, and industrial services", 16.9, 2.1, 2.5),
		sector("Energy", "Oil, gas, and renewable energy companies", 14.2, 1.3, 4.1),
		sector("Materials", "Mining, chemicals, and construction materials", 15.6, 1.8, 3.0),
		sector("Utilities", "Electric, gas, and water utility companies", 18.3, 1.4, 3.8),
		sector("Real Estate", "REITs and real estate development companies", 25.1, 1.2, 4.3),
	}
}

func sector(name, description string, avgPE, avgPB, avgDiv float64) domain.SectorCreate {
	pe := decimal.NewFromFloat(avgPE)
	pb := decimal.NewFromFloat(avgPB)
	div := decimal.NewFromFloat(avgDiv)
	return domain.SectorCreate{
		Name:                 name,
		Description:          description,
		AveragePERatio:       &pe,
		AveragePBRatio:       &pb,
		AverageDividendYield: &div,
	}
}
