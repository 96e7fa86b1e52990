package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"itradebook/src/database"
	"itradebook/src/models"
	"itradebook/src/repositories"
	"itradebook/src/schemas"
	"itradebook/src/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type RebuildServiceI interface {
	RebuildRange(ctx context.Context, startDate, endDate time.Time) (*schemas.RebuildSummary, error)
	RebuildMonth(ctx context.Context, year int, month time.Month) (*schemas.RebuildSummary, error)
}

// RebuildService recomputes the finalized daily P&L report, one trading
// day at a time. Dates are strictly sequential: each day's deltas read the
// previous day's data, so parallel rebuilds are not safe.
type RebuildService struct {
	trades    repositories.TradeRepository
	snapshots repositories.SnapshotRepository
	reports   repositories.ReportRepository

	txStarter   database.TxStarter
	retryPolicy database.RetryPolicy
}

func NewRebuildService(
	trades repositories.TradeRepository,
	snapshots repositories.SnapshotRepository,
	reports repositories.ReportRepository,
	txStarter database.TxStarter,
	retryPolicy database.RetryPolicy,
) *RebuildService {
	return &RebuildService{
		trades:      trades,
		snapshots:   snapshots,
		reports:     reports,
		txStarter:   txStarter,
		retryPolicy: retryPolicy,
	}
}

// RebuildRange rebuilds every trading date found within [startDate,
// endDate]. Per-date failures are collected in the summary and never abort
// the range; only an exhausted connection policy does.
func (s *RebuildService) RebuildRange(ctx context.Context, startDate, endDate time.Time) (*schemas.RebuildSummary, error) {
	summary := &schemas.RebuildSummary{RunID: uuid.NewString()}
	logger := utils.LoggerFromContext(ctx)

	dates, err := s.trades.GetTradingDates(ctx, utils.TruncateToDay(startDate), utils.TruncateToDay(endDate))
	if err != nil {
		return summary, fmt.Errorf("listing trading dates: %w", err)
	}

	for _, date := range dates {
		if err := s.rebuildDate(ctx, date, summary); err != nil {
			if errors.Is(err, database.ErrConnectionExhausted) {
				return summary, err
			}
			logger.WithFields(logrus.Fields{
				"run_id": summary.RunID,
				"date":   date.Format(utils.ShortDashDateLayout),
				"error":  err.Error(),
			}).Error("daily report rebuild failed, continuing with next date")
			summary.AddError(date, err)
		}
	}
	return summary, nil
}

// RebuildMonth rebuilds every trading date of the given calendar month.
func (s *RebuildService) RebuildMonth(ctx context.Context, year int, month time.Month) (*schemas.RebuildSummary, error) {
	start, end := utils.MonthRange(year, month)
	return s.RebuildRange(ctx, start, end)
}

func (s *RebuildService) rebuildDate(ctx context.Context, date time.Time, summary *schemas.RebuildSummary) error {
	logger := utils.LoggerFromContext(ctx)
	date = utils.TruncateToDay(date)

	tradeRows, err := s.trades.GetByDate(ctx, date)
	if err != nil {
		return fmt.Errorf("fetching trade rows: %w", err)
	}
	if len(tradeRows) == 0 {
		summary.Skipped++
		return nil
	}
	grouped := s.groupBySymbol(ctx, tradeRows)

	todayAggregates, err := s.snapshots.GetAggregatesByDate(ctx, utils.EndOfDay(date))
	if err != nil {
		return fmt.Errorf("fetching account aggregates: %w", err)
	}

	prevDay := utils.PreviousDay(date)
	prevCompany, err := s.trades.GetDayBalances(ctx, prevDay)
	if err != nil {
		return fmt.Errorf("fetching prior-day company balances: %w", err)
	}
	prevExpAggregates, err := s.snapshots.GetAggregatesByDate(ctx, utils.EndOfDay(prevDay))
	if err != nil {
		return fmt.Errorf("fetching prior-day account aggregates: %w", err)
	}

	reports := make([]*models.DailyReport, 0, len(grouped))
	for _, row := range grouped {
		report, buildErr := BuildDailyReport(row, todayAggregates[row.SymbolID],
			prevCompany[row.SymbolID], prevExpAggregates[row.SymbolID])
		if buildErr != nil {
			logger.WithFields(logrus.Fields{
				"run_id": summary.RunID,
				"date":   date.Format(utils.ShortDashDateLayout),
				"symbol": row.SymbolID,
				"error":  buildErr.Error(),
			}).Error("skipping symbol row")
			continue
		}
		reports = append(reports, report)
	}

	// One transaction per date: the delete and every insert commit
	// together or not at all.
	tx, err := database.BeginTx(ctx, s.txStarter, s.retryPolicy)
	if err != nil {
		return err
	}
	if err := s.reports.DeleteByDate(ctx, tx, date); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("deleting existing report rows: %w", err)
	}
	for _, report := range reports {
		if err := s.reports.Insert(ctx, tx, report); err != nil {
			_ = tx.Rollback(ctx)
			return fmt.Errorf("inserting report row for symbol %d: %w", report.SymbolID, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing report rows: %w", err)
	}

	summary.Processed++
	return nil
}

// groupBySymbol keeps one row per symbol. The feed is expected to deliver
// exactly one row per symbol per date; if it ever delivers more, the last
// one wins.
func (s *RebuildService) groupBySymbol(ctx context.Context, rows []models.SecurityRow) []models.SecurityRow {
	logger := utils.LoggerFromContext(ctx)
	bySymbol := make(map[int]models.SecurityRow, len(rows))
	order := make([]int, 0, len(rows))
	for _, row := range rows {
		if _, seen := bySymbol[row.SymbolID]; seen {
			logger.WithField("symbol", row.SymbolID).Warn("duplicate trade row for symbol, keeping latest")
		} else {
			order = append(order, row.SymbolID)
		}
		bySymbol[row.SymbolID] = row
	}

	grouped := make([]models.SecurityRow, 0, len(order))
	for _, symbolID := range order {
		grouped = append(grouped, bySymbol[symbolID])
	}
	return grouped
}

// BuildDailyReport runs the per-symbol transform: P&L on both book levels,
// day-over-day deltas against the prior day, totals, and cent rounding.
// A missing account aggregate leaves every exp figure at zero.
func BuildDailyReport(row models.SecurityRow, todayExp models.AccountAggregate,
	prevCompany models.CompanyBalance, prevExp models.AccountAggregate) (*models.DailyReport, error) {
	if row.SymbolID <= 0 {
		return nil, fmt.Errorf("trade row %d has no symbol reference", row.ID)
	}

	pnl := ComputeSymbolPnL(
		utils.SanitizeFloat(row.MarketPrice),
		utils.SanitizeFloat(row.BuySize1), utils.SanitizeFloat(row.BuyPrice1),
		utils.SanitizeFloat(row.SellSize1), utils.SanitizeFloat(row.SellPrice1),
		utils.SanitizeFloat(row.BuySize2), utils.SanitizeFloat(row.BuyPrice2),
		utils.SanitizeFloat(row.SellSize2), utils.SanitizeFloat(row.SellPrice2),
	).Rounded()

	companyBalance := utils.SanitizeFloat(row.Balance)
	companyEquity := utils.SanitizeFloat(row.Equity)

	// accn_pf: the day-over-day change in company balance net of the
	// corresponding change in exp balance.
	accnPf := (companyBalance - prevCompany.Balance) - (todayExp.Balance - prevExp.Balance)
	companyPln := companyEquity - prevCompany.Equity

	dailyCompanyTotal := pnl.CompanyRealized + pnl.CompanyUnrealized
	dailyExpTotal := pnl.ExpRealized + pnl.ExpUnrealized

	return &models.DailyReport{
		TradeDate: row.TradeDate,
		SymbolID:  row.SymbolID,

		MarketPrice: utils.SanitizeFloat(row.MarketPrice),
		BuySize1:    utils.SanitizeFloat(row.BuySize1),
		BuyPrice1:   utils.SanitizeFloat(row.BuyPrice1),
		SellSize1:   utils.SanitizeFloat(row.SellSize1),
		SellPrice1:  utils.SanitizeFloat(row.SellPrice1),
		BuySize2:    utils.SanitizeFloat(row.BuySize2),
		BuyPrice2:   utils.SanitizeFloat(row.BuyPrice2),
		SellSize2:   utils.SanitizeFloat(row.SellSize2),
		SellPrice2:  utils.SanitizeFloat(row.SellPrice2),

		CompanyBalance:    utils.Round2(companyBalance),
		CompanyEquity:     utils.Round2(companyEquity),
		CompanyFloating:   utils.Round2(utils.SanitizeFloat(row.Floating)),
		CompanyPln:        utils.Round2(companyPln),
		CompanyRealized:   pnl.CompanyRealized,
		CompanyUnrealized: pnl.CompanyUnrealized,

		ExpBalance:    utils.Round2(todayExp.Balance),
		ExpEquity:     utils.Round2(todayExp.Equity),
		ExpFloating:   utils.Round2(todayExp.Floating),
		ExpPln:        utils.Round2(todayExp.ProfitLoss),
		ExpRealized:   pnl.ExpRealized,
		ExpUnrealized: pnl.ExpUnrealized,

		AccnPf:            utils.Round2(accnPf),
		DailyCompanyTotal: utils.Round2(dailyCompanyTotal),
		DailyExpTotal:     utils.Round2(dailyExpTotal),
		DailyGrandTotal:   utils.Round2(dailyCompanyTotal - dailyExpTotal),

		IsFinalized: true,
	}, nil
}
