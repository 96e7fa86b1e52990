package repositories

import (
	"context"
	"strconv"
	"time"

	"itradebook/src/models"
	"itradebook/src/schemas"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReportRepository interface {
	// DeleteByDate removes every report row for the date inside tx, so a
	// rebuild replaces the day atomically with its inserts.
	DeleteByDate(ctx context.Context, tx pgx.Tx, date time.Time) error
	Insert(ctx context.Context, tx pgx.Tx, report *models.DailyReport) error
	GetByFilter(ctx context.Context, filter schemas.ReportFilter) ([]models.DailyReport, int, error)
}

type reportRepo struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) DeleteByDate(ctx context.Context, tx pgx.Tx, date time.Time) error {
	_, err := tx.Exec(ctx, `DELETE FROM daily_reports WHERE trade_date = $1`, date)
	return err
}

func (r *reportRepo) Insert(ctx context.Context, tx pgx.Tx, report *models.DailyReport) error {
	return tx.QueryRow(ctx,
		`INSERT INTO daily_reports (
			trade_date, symbol_id, market_price,
			buy_size_1, buy_price_1, sell_size_1, sell_price_1,
			buy_size_2, buy_price_2, sell_size_2, sell_price_2,
			company_balance, company_equity, company_floating,
			company_pln, company_realized, company_unrealized,
			exp_balance, exp_equity, exp_floating,
			exp_pln, exp_realized, exp_unrealized,
			accn_pf, daily_company_total, daily_exp_total, daily_grand_total,
			is_finalized
		) VALUES (
			$1, $2, $3,
			$4, $5, $6, $7,
			$8, $9, $10, $11,
			$12, $13, $14,
			$15, $16, $17,
			$18, $19, $20,
			$21, $22, $23,
			$24, $25, $26, $27,
			$28
		) RETURNING id`,
		report.TradeDate, report.SymbolID, report.MarketPrice,
		report.BuySize1, report.BuyPrice1, report.SellSize1, report.SellPrice1,
		report.BuySize2, report.BuyPrice2, report.SellSize2, report.SellPrice2,
		report.CompanyBalance, report.CompanyEquity, report.CompanyFloating,
		report.CompanyPln, report.CompanyRealized, report.CompanyUnrealized,
		report.ExpBalance, report.ExpEquity, report.ExpFloating,
		report.ExpPln, report.ExpRealized, report.ExpUnrealized,
		report.AccnPf, report.DailyCompanyTotal, report.DailyExpTotal, report.DailyGrandTotal,
		report.IsFinalized,
	).Scan(&report.ID)
}

func (r *reportRepo) GetByFilter(ctx context.Context, filter schemas.ReportFilter) ([]models.DailyReport, int, error) {
	where := `WHERE trade_date BETWEEN $1 AND $2`
	args := []interface{}{filter.StartDate, filter.EndDate}
	if filter.SymbolID > 0 {
		where += ` AND symbol_id = $3`
		args = append(args, filter.SymbolID)
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM daily_reports `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, trade_date, symbol_id, market_price,
			buy_size_1, buy_price_1, sell_size_1, sell_price_1,
			buy_size_2, buy_price_2, sell_size_2, sell_price_2,
			company_balance, company_equity, company_floating,
			company_pln, company_realized, company_unrealized,
			exp_balance, exp_equity, exp_floating,
			exp_pln, exp_realized, exp_unrealized,
			accn_pf, daily_company_total, daily_exp_total, daily_grand_total,
			is_finalized, created_at
		FROM daily_reports ` + where + `
		ORDER BY trade_date DESC, symbol_id ASC`

	limitArgs := args
	if filter.PageSize > 0 {
		query += ` LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
		limitArgs = append(limitArgs, filter.PageSize, filter.Offset())
	}

	rows, err := r.db.Query(ctx, query, limitArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var reports []models.DailyReport
	for rows.Next() {
		var rep models.DailyReport
		if err := rows.Scan(&rep.ID, &rep.TradeDate, &rep.SymbolID, &rep.MarketPrice,
			&rep.BuySize1, &rep.BuyPrice1, &rep.SellSize1, &rep.SellPrice1,
			&rep.BuySize2, &rep.BuyPrice2, &rep.SellSize2, &rep.SellPrice2,
			&rep.CompanyBalance, &rep.CompanyEquity, &rep.CompanyFloating,
			&rep.CompanyPln, &rep.CompanyRealized, &rep.CompanyUnrealized,
			&rep.ExpBalance, &rep.ExpEquity, &rep.ExpFloating,
			&rep.ExpPln, &rep.ExpRealized, &rep.ExpUnrealized,
			&rep.AccnPf, &rep.DailyCompanyTotal, &rep.DailyExpTotal, &rep.DailyGrandTotal,
			&rep.IsFinalized, &rep.CreatedAt); err != nil {
			return nil, 0, err
		}
		reports = append(reports, rep)
	}
	return reports, total, rows.Err()
}
