package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"itradebook/src/schemas"
	"itradebook/src/utils"
)

// parseReportFilter reads the listing query params. startDate and endDate
// are required; page and pageSize fall back to the listing defaults.
func parseReportFilter(r *http.Request) (schemas.ReportFilter, error) {
	var filter schemas.ReportFilter

	startDateStr := r.URL.Query().Get("startDate")
	endDateStr := r.URL.Query().Get("endDate")
	if startDateStr == "" || endDateStr == "" {
		return filter, utils.BadRequest("startDate and endDate are required")
	}

	startDate, err := time.Parse(utils.ShortDashDateLayout, startDateStr)
	if err != nil {
		return filter, utils.UnprocessableEntity("invalid startDate, expected YYYY-MM-DD")
	}
	endDate, err := time.Parse(utils.ShortDashDateLayout, endDateStr)
	if err != nil {
		return filter, utils.UnprocessableEntity("invalid endDate, expected YYYY-MM-DD")
	}
	if endDate.Before(startDate) {
		return filter, utils.BadRequest("endDate must not be before startDate")
	}
	filter.StartDate = startDate
	filter.EndDate = endDate

	if symbolStr := r.URL.Query().Get("symbol_id"); symbolStr != "" {
		symbolID, err := strconv.Atoi(symbolStr)
		if err != nil || symbolID <= 0 {
			return filter, utils.UnprocessableEntity("invalid symbol_id")
		}
		filter.SymbolID = symbolID
	}

	filter.Page = 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			return filter, utils.UnprocessableEntity("invalid page")
		}
		filter.Page = page
	}

	filter.PageSize = utils.DefaultPageSize
	if sizeStr := r.URL.Query().Get("pageSize"); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size < 1 || size > utils.MaxPageSize {
			return filter, utils.UnprocessableEntity("invalid pageSize")
		}
		filter.PageSize = size
	}

	return filter, nil
}

func (h *Handler) GetReports(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter, err := parseReportFilter(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	response, err := h.Controller.GetReports(ctx, filter)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, response, http.StatusOK)
}

func (h *Handler) ExportReports(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	filter, err := parseReportFilter(r)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	format := r.URL.Query().Get("format")
	switch format {
	case "", "csv":
		csvBytes, err := h.Controller.ExportReportsCSV(ctx, filter)
		if err != nil {
			h.HandleErrors(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="daily_reports.csv"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(csvBytes)
	case "xlsx":
		file, err := h.Controller.ExportReportsXLSX(ctx, filter)
		if err != nil {
			h.HandleErrors(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="daily_reports.xlsx"`)
		w.WriteHeader(http.StatusOK)
		if err := file.Write(w); err != nil {
			h.Logger.WithError(err).Error("failed streaming xlsx export")
		}
	default:
		h.HandleErrors(w, utils.BadRequest("format must be csv or xlsx"))
	}
}
