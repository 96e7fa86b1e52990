package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"itradebook/src/api/handlers"
	"itradebook/src/models"
	"itradebook/src/schemas"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type stubController struct {
	reports    *schemas.PaginatedReportsResponse
	reportsErr error
	lastFilter schemas.ReportFilter
	csv        []byte
	symbols    []schemas.SymbolResponse
}

func (s *stubController) GetReports(_ context.Context, filter schemas.ReportFilter) (*schemas.PaginatedReportsResponse, error) {
	s.lastFilter = filter
	if s.reportsErr != nil {
		return nil, s.reportsErr
	}
	return s.reports, nil
}

func (s *stubController) ExportReportsCSV(_ context.Context, filter schemas.ReportFilter) ([]byte, error) {
	s.lastFilter = filter
	return s.csv, nil
}

func (s *stubController) ExportReportsXLSX(_ context.Context, _ schemas.ReportFilter) (*excelize.File, error) {
	return excelize.NewFile(), nil
}

func (s *stubController) GetSymbols(_ context.Context) ([]schemas.SymbolResponse, error) {
	return s.symbols, nil
}

func newTestHandler(stub *stubController) *handlers.Handler {
	logger := logrus.New()
	return &handlers.Handler{Controller: stub, Logger: logger}
}

func TestGetReports(t *testing.T) {
	t.Run("returns the page as JSON", func(t *testing.T) {
		stub := &stubController{
			reports: &schemas.PaginatedReportsResponse{
				Data:     []models.DailyReport{{SymbolID: 1, TradeDate: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)}},
				Page:     1,
				PageSize: 50,
				Total:    1,
			},
		}
		handler := newTestHandler(stub)

		req := httptest.NewRequest(http.MethodGet, "/api/reports?startDate=2024-08-01&endDate=2024-08-31", nil)
		rec := httptest.NewRecorder()
		handler.GetReports(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var response schemas.PaginatedReportsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
		assert.Equal(t, 1, response.Total)
		require.Len(t, response.Data, 1)
		assert.Equal(t, 1, response.Data[0].SymbolID)
	})

	t.Run("applies filters and pagination params", func(t *testing.T) {
		stub := &stubController{reports: &schemas.PaginatedReportsResponse{}}
		handler := newTestHandler(stub)

		req := httptest.NewRequest(http.MethodGet,
			"/api/reports?startDate=2024-08-01&endDate=2024-08-31&symbol_id=7&page=3&pageSize=20", nil)
		rec := httptest.NewRecorder()
		handler.GetReports(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 7, stub.lastFilter.SymbolID)
		assert.Equal(t, 3, stub.lastFilter.Page)
		assert.Equal(t, 20, stub.lastFilter.PageSize)
		assert.Equal(t, 40, stub.lastFilter.Offset())
	})

	t.Run("rejects a missing date range", func(t *testing.T) {
		handler := newTestHandler(&stubController{})

		req := httptest.NewRequest(http.MethodGet, "/api/reports", nil)
		rec := httptest.NewRecorder()
		handler.GetReports(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		handler := newTestHandler(&stubController{})

		req := httptest.NewRequest(http.MethodGet, "/api/reports?startDate=01-08-2024&endDate=2024-08-31", nil)
		rec := httptest.NewRecorder()
		handler.GetReports(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("rejects an inverted range", func(t *testing.T) {
		handler := newTestHandler(&stubController{})

		req := httptest.NewRequest(http.MethodGet, "/api/reports?startDate=2024-08-31&endDate=2024-08-01", nil)
		rec := httptest.NewRecorder()
		handler.GetReports(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestExportReports(t *testing.T) {
	t.Run("streams csv with attachment headers", func(t *testing.T) {
		stub := &stubController{csv: []byte("trade_date,symbol_id\n2024-08-01,1\n")}
		handler := newTestHandler(stub)

		req := httptest.NewRequest(http.MethodGet,
			"/api/reports/export?startDate=2024-08-01&endDate=2024-08-31&format=csv", nil)
		rec := httptest.NewRecorder()
		handler.ExportReports(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "daily_reports.csv")
		assert.Contains(t, rec.Body.String(), "2024-08-01,1")
	})

	t.Run("rejects an unknown format", func(t *testing.T) {
		handler := newTestHandler(&stubController{})

		req := httptest.NewRequest(http.MethodGet,
			"/api/reports/export?startDate=2024-08-01&endDate=2024-08-31&format=pdf", nil)
		rec := httptest.NewRecorder()
		handler.ExportReports(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetSymbols(t *testing.T) {
	stub := &stubController{symbols: []schemas.SymbolResponse{{ID: 1, Name: "EURUSD"}}}
	handler := newTestHandler(stub)

	req := httptest.NewRequest(http.MethodGet, "/api/symbols", nil)
	rec := httptest.NewRecorder()
	handler.GetSymbols(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var response []schemas.SymbolResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 1)
	assert.Equal(t, "EURUSD", response[0].Name)
}
