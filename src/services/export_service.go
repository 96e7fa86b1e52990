package services

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"itradebook/src/models"
	"itradebook/src/utils"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/xuri/excelize/v2"
)

type ExportServiceI interface {
	GenerateCSV(reports []models.DailyReport) ([]byte, error)
	GenerateXLSX(reports []models.DailyReport) (*excelize.File, error)
}

type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

var exportColumns = []string{
	"trade_date", "symbol_id", "market_price",
	"buy_size_1", "buy_price_1", "sell_size_1", "sell_price_1",
	"buy_size_2", "buy_price_2", "sell_size_2", "sell_price_2",
	"company_balance", "company_equity", "company_floating",
	"company_pln", "company_realized", "company_unrealized",
	"exp_balance", "exp_equity", "exp_floating",
	"exp_pln", "exp_realized", "exp_unrealized",
	"accn_pf", "daily_company_total", "daily_exp_total", "daily_grand_total",
}

func reportRecord(r models.DailyReport) []string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
	return []string{
		r.TradeDate.Format(utils.ShortDashDateLayout),
		strconv.Itoa(r.SymbolID),
		strconv.FormatFloat(r.MarketPrice, 'f', -1, 64),
		f(r.BuySize1), f(r.BuyPrice1), f(r.SellSize1), f(r.SellPrice1),
		f(r.BuySize2), f(r.BuyPrice2), f(r.SellSize2), f(r.SellPrice2),
		f(r.CompanyBalance), f(r.CompanyEquity), f(r.CompanyFloating),
		f(r.CompanyPln), f(r.CompanyRealized), f(r.CompanyUnrealized),
		f(r.ExpBalance), f(r.ExpEquity), f(r.ExpFloating),
		f(r.ExpPln), f(r.ExpRealized), f(r.ExpUnrealized),
		f(r.AccnPf), f(r.DailyCompanyTotal), f(r.DailyExpTotal), f(r.DailyGrandTotal),
	}
}

// GenerateCSV renders the report rows through a dataframe so the CSV always
// carries the canonical column order and header.
func (es *ExportService) GenerateCSV(reports []models.DailyReport) ([]byte, error) {
	if len(reports) == 0 {
		return []byte(strings.Join(exportColumns, ",") + "\n"), nil
	}

	records := make([][]string, 0, len(reports)+1)
	records = append(records, exportColumns)
	for _, r := range reports {
		records = append(records, reportRecord(r))
	}

	// Values arrive pre-formatted, so type detection would only reformat
	// them.
	df := dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String))
	if df.Err != nil {
		return nil, df.Err
	}

	var buf bytes.Buffer
	if err := df.WriteCSV(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateXLSX writes the report rows to a single-sheet workbook.
func (es *ExportService) GenerateXLSX(reports []models.DailyReport) (*excelize.File, error) {
	file := excelize.NewFile()
	sheet := "DailyReports"
	index, err := file.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	file.SetActiveSheet(index)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := make([]interface{}, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = col
	}
	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, r := range reports {
		record := reportRecord(r)
		row := make([]interface{}, len(record))
		for j, cell := range record {
			row[j] = cell
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := file.SetSheetRow(sheet, cellRef, &row); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return file, nil
}
