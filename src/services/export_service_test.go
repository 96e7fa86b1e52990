package services_test

import (
	"strings"
	"testing"
	"time"

	"itradebook/src/models"
	"itradebook/src/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReports() []models.DailyReport {
	return []models.DailyReport{
		{
			TradeDate: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC), SymbolID: 1,
			MarketPrice: 107, BuySize1: 10, BuyPrice1: 100, SellSize1: 4, SellPrice1: 110,
			CompanyRealized: 40, CompanyUnrealized: 42,
			ExpRealized: -40, ExpUnrealized: -42,
			DailyCompanyTotal: 82, DailyExpTotal: -82, DailyGrandTotal: 164,
			IsFinalized: true,
		},
		{
			TradeDate: time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC), SymbolID: 2,
			MarketPrice: 51.5, CompanyPln: 12.35,
			IsFinalized: true,
		},
	}
}

func TestGenerateCSV(t *testing.T) {
	svc := services.NewExportService()

	csvBytes, err := svc.GenerateCSV(sampleReports())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(csvBytes)), "\n")
	require.Len(t, lines, 3)

	assert.True(t, strings.HasPrefix(lines[0], "trade_date,symbol_id,market_price"))
	assert.Contains(t, lines[0], "daily_grand_total")
	assert.True(t, strings.HasPrefix(lines[1], "2024-08-01,1,107"))
	assert.Contains(t, lines[1], "164.00")
	assert.True(t, strings.HasPrefix(lines[2], "2024-08-02,2,51.5"))
}

func TestGenerateCSVEmpty(t *testing.T) {
	svc := services.NewExportService()

	csvBytes, err := svc.GenerateCSV(nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(csvBytes)), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "trade_date,"))
}

func TestGenerateXLSX(t *testing.T) {
	svc := services.NewExportService()

	file, err := svc.GenerateXLSX(sampleReports())
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	rows, err := file.GetRows("DailyReports")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "trade_date", rows[0][0])
	assert.Equal(t, "2024-08-01", rows[1][0])
	assert.Equal(t, "2", rows[2][1])
}
