package controllers

import (
	"context"
	"fmt"
	"time"

	"itradebook/src/schemas"
	"itradebook/src/utils"

	"github.com/xuri/excelize/v2"
)

const reportPageCacheTTL = 10 * time.Minute

func (c *Controller) GetReports(ctx context.Context, filter schemas.ReportFilter) (*schemas.PaginatedReportsResponse, error) {
	cacheKey, cached := c.cachedPage(filter)
	if cached != nil {
		return cached, nil
	}

	reports, total, err := c.ReportRepository.GetByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	response := &schemas.PaginatedReportsResponse{
		Data:     reports,
		Page:     filter.Page,
		PageSize: filter.PageSize,
		Total:    total,
	}

	if c.redisHandler != nil && cacheKey != "" {
		// Cache failures only cost the next read a database round trip.
		_ = c.redisHandler.Set(cacheKey, response, reportPageCacheTTL)
	}
	return response, nil
}

// cachedPage looks up the page in Redis. The key embeds the current report
// cache generation, which the worker bumps after every rebuild.
func (c *Controller) cachedPage(filter schemas.ReportFilter) (string, *schemas.PaginatedReportsResponse) {
	if c.redisHandler == nil {
		return "", nil
	}
	version, err := c.redisHandler.ReportVersion()
	if err != nil {
		return "", nil
	}
	key := fmt.Sprintf("itradebook:reports:v%d:%s:%s:%d:%d:%d",
		version,
		filter.StartDate.Format(utils.ShortDashDateLayout),
		filter.EndDate.Format(utils.ShortDashDateLayout),
		filter.SymbolID, filter.Page, filter.PageSize)

	var response schemas.PaginatedReportsResponse
	found, err := c.redisHandler.Get(key, &response)
	if err != nil || !found {
		return key, nil
	}
	return key, &response
}

func (c *Controller) ExportReportsCSV(ctx context.Context, filter schemas.ReportFilter) ([]byte, error) {
	filter.PageSize = 0 // exports carry the whole range
	reports, _, err := c.ReportRepository.GetByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	return c.ExportService.GenerateCSV(reports)
}

func (c *Controller) ExportReportsXLSX(ctx context.Context, filter schemas.ReportFilter) (*excelize.File, error) {
	filter.PageSize = 0
	reports, _, err := c.ReportRepository.GetByFilter(ctx, filter)
	if err != nil {
		return nil, err
	}
	return c.ExportService.GenerateXLSX(reports)
}
