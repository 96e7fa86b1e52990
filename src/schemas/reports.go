package schemas

import (
	"time"

	"itradebook/src/models"
)

// RebuildRequest triggers a rebuild over an explicit date range or, when
// Year/Month are set, over a whole calendar month.
type RebuildRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Year      int    `json:"year"`
	Month     int    `json:"month"`
}

// RebuildError records one trading date the aggregator could not finish.
type RebuildError struct {
	Date    string `json:"date"`
	Message string `json:"message"`
}

// RebuildSummary is what a rebuild run hands back to its caller: per-date
// failures never abort the range, they show up here instead.
type RebuildSummary struct {
	RunID     string         `json:"run_id"`
	Processed int            `json:"processed"`
	Skipped   int            `json:"skipped"`
	Errors    []RebuildError `json:"errors"`
}

func (s *RebuildSummary) AddError(date time.Time, err error) {
	s.Errors = append(s.Errors, RebuildError{
		Date:    date.Format("2006-01-02"),
		Message: err.Error(),
	})
}

// ReportFilter narrows a report listing.
type ReportFilter struct {
	StartDate time.Time
	EndDate   time.Time
	SymbolID  int
	Page      int
	PageSize  int
}

func (f ReportFilter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.PageSize
}

// PaginatedReportsResponse is the API shape for report listings.
type PaginatedReportsResponse struct {
	Data     []models.DailyReport `json:"data"`
	Page     int                  `json:"page"`
	PageSize int                  `json:"page_size"`
	Total    int                  `json:"total"`
}

// SymbolResponse is the API shape for the symbols listing.
type SymbolResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
