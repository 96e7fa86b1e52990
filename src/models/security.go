package models

import (
	"time"
)

// SecurityRow is one raw per-symbol trade snapshot for a trading day,
// produced by the ingestion feed. Level 1 fields cover the company book,
// level 2 the external ("exp") counterparty book.
type SecurityRow struct {
	ID          int       `db:"id"`
	TradeDate   time.Time `db:"trade_date"`
	SymbolID    int       `db:"symbol_id"`
	MarketPrice float64   `db:"market_price"`

	BuySize1   float64 `db:"buy_size_1"`
	BuyPrice1  float64 `db:"buy_price_1"`
	SellSize1  float64 `db:"sell_size_1"`
	SellPrice1 float64 `db:"sell_price_1"`

	BuySize2   float64 `db:"buy_size_2"`
	BuyPrice2  float64 `db:"buy_price_2"`
	SellSize2  float64 `db:"sell_size_2"`
	SellPrice2 float64 `db:"sell_price_2"`

	Balance  float64 `db:"balance"`
	Equity   float64 `db:"equity"`
	Floating float64 `db:"floating"`

	CreatedAt time.Time `db:"created_at"`
}
