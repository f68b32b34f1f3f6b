package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockCreateValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      StockCreate
		wantErr bool
	}{
		{
			name: "valid",
			in:   StockCreate{Ticker: "AAPL", CompanyName: "Apple Inc."},
		},
		{
			name:    "missing ticker",
			in:      StockCreate{CompanyName: "Apple Inc."},
			wantErr: true,
		},
		{
			name:    "blank ticker",
			in:      StockCreate{Ticker: "   ", CompanyName: "Apple Inc."},
			wantErr: true,
		},
		{
			name:    "ticker too long",
			in:      StockCreate{Ticker: "ABCDEFGHIJK", CompanyName: "Alphabet Soup"},
			wantErr: true,
		},
		{
			name: "ticker at length limit",
			in:   StockCreate{Ticker: "ABCDEFGHIJ", CompanyName: "Alphabet Soup"},
		},
		{
			name:    "missing company name",
			in:      StockCreate{Ticker: "AAPL"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeTicker(t *testing.T) {
	assert.Equal(t, "AAPL", NormalizeTicker("aapl"))
	assert.Equal(t, "AAPL", NormalizeTicker("  AaPl "))
	assert.Equal(t, "BRK.B", NormalizeTicker("brk.b"))
}
