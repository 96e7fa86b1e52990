package repositories

import (
	"context"
	"time"

	"itradebook/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SnapshotRepository interface {
	// GetAggregatesByDate sums, per symbol, the latest snapshot at or
	// before end-of-date of every sub-account mapped to that symbol.
	GetAggregatesByDate(ctx context.Context, endOfDate time.Time) (map[int]models.AccountAggregate, error)
}

type snapshotRepo struct {
	db *pgxpool.Pool
}

func NewSnapshotRepository(db *pgxpool.Pool) SnapshotRepository {
	return &snapshotRepo{db: db}
}

func (r *snapshotRepo) GetAggregatesByDate(ctx context.Context, endOfDate time.Time) (map[int]models.AccountAggregate, error) {
	rows, err := r.db.Query(ctx,
		`SELECT sa.symbol_id,
			COALESCE(SUM(s.balance), 0),
			COALESCE(SUM(s.equity), 0),
			COALESCE(SUM(s.floating), 0),
			COALESCE(SUM(s.profit_loss), 0)
		FROM (
			SELECT sub_account_id,
				COALESCE(balance, 0) AS balance,
				COALESCE(equity, 0) AS equity,
				COALESCE(floating, 0) AS floating,
				COALESCE(profit_loss, 0) AS profit_loss,
				ROW_NUMBER() OVER (
					PARTITION BY sub_account_id
					ORDER BY created_at DESC, id DESC
				) AS rn
			FROM account_snapshots
			WHERE created_at <= $1
		) s
		JOIN sub_accounts sa ON sa.id = s.sub_account_id
		WHERE s.rn = 1
		GROUP BY sa.symbol_id`,
		endOfDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	aggregates := make(map[int]models.AccountAggregate)
	for rows.Next() {
		var symbolID int
		var a models.AccountAggregate
		if err := rows.Scan(&symbolID, &a.Balance, &a.Equity, &a.Floating, &a.ProfitLoss); err != nil {
			return nil, err
		}
		aggregates[symbolID] = a
	}
	return aggregates, rows.Err()
}
