package models

import (
	"time"
)

// DailyReport is one finalized per-symbol-per-day P&L row. The aggregator
// is the sole writer; at most one row exists per (trade_date, symbol_id).
type DailyReport struct {
	ID        int       `db:"id"`
	TradeDate time.Time `db:"trade_date"`
	SymbolID  int       `db:"symbol_id"`

	MarketPrice float64 `db:"market_price"`
	BuySize1    float64 `db:"buy_size_1"`
	BuyPrice1   float64 `db:"buy_price_1"`
	SellSize1   float64 `db:"sell_size_1"`
	SellPrice1  float64 `db:"sell_price_1"`
	BuySize2    float64 `db:"buy_size_2"`
	BuyPrice2   float64 `db:"buy_price_2"`
	SellSize2   float64 `db:"sell_size_2"`
	SellPrice2  float64 `db:"sell_price_2"`

	CompanyBalance    float64 `db:"company_balance"`
	CompanyEquity     float64 `db:"company_equity"`
	CompanyFloating   float64 `db:"company_floating"`
	CompanyPln        float64 `db:"company_pln"`
	CompanyRealized   float64 `db:"company_realized"`
	CompanyUnrealized float64 `db:"company_unrealized"`

	ExpBalance    float64 `db:"exp_balance"`
	ExpEquity     float64 `db:"exp_equity"`
	ExpFloating   float64 `db:"exp_floating"`
	ExpPln        float64 `db:"exp_pln"`
	ExpRealized   float64 `db:"exp_realized"`
	ExpUnrealized float64 `db:"exp_unrealized"`

	AccnPf            float64 `db:"accn_pf"`
	DailyCompanyTotal float64 `db:"daily_company_total"`
	DailyExpTotal     float64 `db:"daily_exp_total"`
	DailyGrandTotal   float64 `db:"daily_grand_total"`

	IsFinalized bool      `db:"is_finalized"`
	CreatedAt   time.Time `db:"created_at"`
}

func (DailyReport) TableName() string {
	return "daily_reports"
}
