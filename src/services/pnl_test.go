package services_test

import (
	"testing"

	"itradebook/src/services"

	"github.com/stretchr/testify/assert"
)

func TestRealizedPnL(t *testing.T) {
	t.Run("offsets the smaller side", func(t *testing.T) {
		// 10 bought @100, 4 sold @110: the matched 4 lots realize the spread.
		assert.Equal(t, 40.0, services.RealizedPnL(10, 100, 4, 110))
	})

	t.Run("min size picks the buy side when smaller", func(t *testing.T) {
		assert.Equal(t, 30.0, services.RealizedPnL(3, 100, 8, 110))
	})

	t.Run("zero when no buys priced", func(t *testing.T) {
		assert.Equal(t, 0.0, services.RealizedPnL(0, 0, 4, 110))
	})

	t.Run("zero when no sells priced", func(t *testing.T) {
		assert.Equal(t, 0.0, services.RealizedPnL(10, 100, 0, 0))
	})

	t.Run("negative spread realizes a loss", func(t *testing.T) {
		assert.Equal(t, -20.0, services.RealizedPnL(5, 110, 4, 105))
	})
}

func TestUnrealizedPnL(t *testing.T) {
	t.Run("net long marks to market against avg buy", func(t *testing.T) {
		// 6 lots open long, market 107 vs avg buy 100.
		assert.Equal(t, 42.0, services.UnrealizedPnL(10, 100, 4, 110, 107))
	})

	t.Run("net short marks to market against avg sell", func(t *testing.T) {
		// 4 lots open short, avg sell 110 vs market 107.
		assert.Equal(t, 12.0, services.UnrealizedPnL(4, 100, 8, 110, 107))
	})

	t.Run("flat book has no unrealized", func(t *testing.T) {
		assert.Equal(t, 0.0, services.UnrealizedPnL(5, 100, 5, 110, 107))
	})
}

func TestComputeSymbolPnL(t *testing.T) {
	t.Run("exp mirrors company when levels match", func(t *testing.T) {
		pnl := services.ComputeSymbolPnL(107,
			10, 100, 4, 110,
			10, 100, 4, 110)

		assert.Equal(t, 40.0, pnl.CompanyRealized)
		assert.Equal(t, 42.0, pnl.CompanyUnrealized)
		assert.Equal(t, -pnl.CompanyRealized, pnl.ExpRealized)
		assert.Equal(t, -pnl.CompanyUnrealized, pnl.ExpUnrealized)
	})

	t.Run("levels are computed independently", func(t *testing.T) {
		pnl := services.ComputeSymbolPnL(107,
			10, 100, 4, 110,
			2, 50, 2, 55)

		assert.Equal(t, 40.0, pnl.CompanyRealized)
		assert.Equal(t, -10.0, pnl.ExpRealized)
		assert.Equal(t, 0.0, pnl.ExpUnrealized)
	})

	t.Run("rounded keeps cents half away from zero", func(t *testing.T) {
		pnl := services.SymbolPnL{
			CompanyRealized:   12.3456,
			CompanyUnrealized: -0.005,
			ExpRealized:       -12.3456,
			ExpUnrealized:     0.005,
		}.Rounded()

		assert.Equal(t, 12.35, pnl.CompanyRealized)
		assert.Equal(t, -0.01, pnl.CompanyUnrealized)
		assert.Equal(t, -12.35, pnl.ExpRealized)
		assert.Equal(t, 0.01, pnl.ExpUnrealized)
	})
}
