package models

import (
	"time"
)

// SubAccount maps one external customer account to the symbol whose book it
// trades against.
type SubAccount struct {
	ID       int    `db:"id"`
	SymbolID int    `db:"symbol_id"`
	Name     string `db:"name"`
}

// AccountSnapshot is a customer sub-account's state as of CreatedAt. The
// feed writes several per day; the aggregator only ever reads the latest
// one at or before end-of-day.
type AccountSnapshot struct {
	ID           int       `db:"id"`
	SubAccountID int       `db:"sub_account_id"`
	Balance      float64   `db:"balance"`
	Equity       float64   `db:"equity"`
	Floating     float64   `db:"floating"`
	ProfitLoss   float64   `db:"profit_loss"`
	CreatedAt    time.Time `db:"created_at"`
}

// AccountAggregate sums the latest snapshot of every sub-account mapped to
// one symbol.
type AccountAggregate struct {
	Balance    float64
	Equity     float64
	Floating   float64
	ProfitLoss float64
}

// PriorDayBalances carries the previous trading day's closing figures used
// for the day-over-day deltas: the company book's balance and equity per
// symbol, and the external accounts' summed balance per symbol.
type PriorDayBalances struct {
	Company map[int]CompanyBalance
	Exp     map[int]float64
}

type CompanyBalance struct {
	Balance float64
	Equity  float64
}
