package repositories

import (
	"context"
	"time"

	"itradebook/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TradeRepository interface {
	// GetTradingDates lists the distinct trade dates present in the raw
	// table within [startDate, endDate], ascending.
	GetTradingDates(ctx context.Context, startDate, endDate time.Time) ([]time.Time, error)
	GetByDate(ctx context.Context, date time.Time) ([]models.SecurityRow, error)
	// GetDayBalances returns the company book's running balance and equity
	// per symbol as recorded on the given date's rows.
	GetDayBalances(ctx context.Context, date time.Time) (map[int]models.CompanyBalance, error)
}

type tradeRepo struct {
	db *pgxpool.Pool
}

func NewTradeRepository(db *pgxpool.Pool) TradeRepository {
	return &tradeRepo{db: db}
}

func (r *tradeRepo) GetTradingDates(ctx context.Context, startDate, endDate time.Time) ([]time.Time, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT trade_date
		FROM securities
		WHERE trade_date BETWEEN $1 AND $2
		ORDER BY trade_date ASC`,
		startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}
	return dates, rows.Err()
}

func (r *tradeRepo) GetByDate(ctx context.Context, date time.Time) ([]models.SecurityRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, trade_date, symbol_id,
			COALESCE(market_price, 0),
			COALESCE(buy_size_1, 0), COALESCE(buy_price_1, 0),
			COALESCE(sell_size_1, 0), COALESCE(sell_price_1, 0),
			COALESCE(buy_size_2, 0), COALESCE(buy_price_2, 0),
			COALESCE(sell_size_2, 0), COALESCE(sell_price_2, 0),
			COALESCE(balance, 0), COALESCE(equity, 0), COALESCE(floating, 0),
			created_at
		FROM securities
		WHERE trade_date = $1
		ORDER BY symbol_id ASC, id ASC`,
		date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var securities []models.SecurityRow
	for rows.Next() {
		var s models.SecurityRow
		if err := rows.Scan(&s.ID, &s.TradeDate, &s.SymbolID,
			&s.MarketPrice,
			&s.BuySize1, &s.BuyPrice1, &s.SellSize1, &s.SellPrice1,
			&s.BuySize2, &s.BuyPrice2, &s.SellSize2, &s.SellPrice2,
			&s.Balance, &s.Equity, &s.Floating,
			&s.CreatedAt); err != nil {
			return nil, err
		}
		securities = append(securities, s)
	}
	return securities, rows.Err()
}

func (r *tradeRepo) GetDayBalances(ctx context.Context, date time.Time) (map[int]models.CompanyBalance, error) {
	rows, err := r.db.Query(ctx,
		`SELECT symbol_id, COALESCE(balance, 0), COALESCE(equity, 0)
		FROM securities
		WHERE trade_date = $1
		ORDER BY symbol_id ASC, id ASC`,
		date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balances := make(map[int]models.CompanyBalance)
	for rows.Next() {
		var symbolID int
		var b models.CompanyBalance
		if err := rows.Scan(&symbolID, &b.Balance, &b.Equity); err != nil {
			return nil, err
		}
		// Later rows for the same symbol overwrite earlier ones, so the
		// last recorded row of the day wins.
		balances[symbolID] = b
	}
	return balances, rows.Err()
}
