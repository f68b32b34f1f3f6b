package seed

// company is one curated sample record. A zero metric is treated as
// unknown when the stock is built; none of the curated entries mean a true
// zero by it.
type company struct {
	ticker   string
	name     string
	sector   string
	industry string
	pe       float64
	pb       float64
	div      float64
	mcap     int64
	price    float64
}

// sampleCompanies are realistic large-cap records spanning the reference
// sectors, with the financials and energy names priced to surface on the
// undervaluation screen.
var sampleCompanies = []company{
	// Technology
	{"AAPL", "Apple Inc.", "Technology", "Consumer Electronics", 28.5, 8.2, 0.5, 2_800_000_000_000, 185.50},
	{"MSFT", "Microsoft Corporation", "Technology", "Software", 32.1, 12.4, 0.68, 2_600_000_000_000, 350.25},
	{"GOOGL", "Alphabet Inc.", "Technology", "Internet Services", 26.8, 5.1, 0, 1_650_000_000_000, 135.75},
	{"NVDA", "NVIDIA Corporation", "Technology", "Semiconductors", 45.2, 13.7, 0.16, 1_400_000_000_000, 465.80},
	{"META", "Meta Platforms Inc.", "Technology", "Social Media", 22.4, 4.8, 0, 750_000_000_000, 295.15},

	// Healthcare
	{"JNJ", "Johnson & Johnson", "Healthcare", "Pharmaceuticals", 15.8, 4.2, 2.95, 420_000_000_000, 162.40},
	{"UNH", "UnitedHealth Group", "Healthcare", "Health Insurance", 24.3, 5.8, 1.88, 480_000_000_000, 520.75},
	{"PFE", "Pfizer Inc.", "Healthcare", "Pharmaceuticals", 12.1, 2.1, 3.44, 210_000_000_000, 37.25},

	// Financials
	{"JPM", "JPMorgan Chase & Co.", "Financials", "Banking", 11.2, 1.6, 3.0, 440_000_000_000, 150.80},
	{"BAC", "Bank of America Corp", "Financials", "Banking", 9.8, 1.1, 2.4, 280_000_000_000, 34.90},
	{"WFC", "Wells Fargo & Company", "Financials", "Banking", 10.5, 0.9, 2.8, 170_000_000_000, 42.15},
	{"GS", "Goldman Sachs Group", "Financials", "Investment Banking", 8.4, 1.2, 2.5, 120_000_000_000, 350.60},

	// Energy
	{"XOM", "Exxon Mobil Corporation", "Energy", "Oil & Gas", 12.8, 1.8, 5.8, 420_000_000_000, 105.40},
	{"CVX", "Chevron Corporation", "Energy", "Oil & Gas", 13.5, 1.5, 3.4, 300_000_000_000, 158.90},
	{"COP", "ConocoPhillips", "Energy", "Oil & Gas", 11.2, 1.7, 2.1, 150_000_000_000, 118.75},

	// Utilities
	{"NEE", "NextEra Energy Inc.", "Utilities", "Electric Utilities", 22.4, 2.8, 3.2, 150_000_000_000, 75.30},
	{"DUK", "Duke Energy Corporation", "Utilities", "Electric Utilities", 19.6, 1.4, 4.1, 75_000_000_000, 98.25},
	{"SO", "Southern Company", "Utilities", "Electric Utilities", 21.8, 1.6, 3.9, 74_000_000_000, 69.85},

	// Consumer Staples
	{"PG", "Procter & Gamble Co", "Consumer Staples", "Household Products", 24.2, 7.8, 2.4, 360_000_000_000, 152.70},
	{"KO", "The Coca-Cola Company", "Consumer Staples", "Beverages", 26.4, 9.2, 3.1, 260_000_000_000, 59.85},
	{"WMT", "Walmart Inc.", "Consumer Staples", "Retail", 27.1, 5.1, 1.8, 420_000_000_000, 158.40},

	// Real Estate
	{"AMT", "American Tower Corp", "Real Estate", "REITs", 45.2, 6.8, 3.1, 95_000_000_000, 207.90},
	{"PLD", "Prologis Inc.", "Real Estate", "REITs", 38.4, 2.4, 2.8, 110_000_000_000, 118.65},
	{"SPG", "Simon Property Group", "Real Estate", "REITs", 16.8, 1.5, 6.2, 42_000_000_000, 128.75},
}

// fillerTickers name the generated low-P/E, low-P/B, decent-dividend
// records used to pad the store past the curated list.
var fillerTickers = []string{
	"INTC", "T", "VZ", "IBM", "F", "GM", "C", "USB", "PNC", "TFC",
	"KEY", "RF", "ZION", "BBY", "KSS", "M", "JCP", "GPS", "ANF", "AEO",
	"EXPR", "TLRY", "CGC", "ACB", "HEXO", "OGI", "CRON",
}
