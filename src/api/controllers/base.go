package controllers

import (
	"context"

	"itradebook/src/repositories"
	"itradebook/src/schemas"
	"itradebook/src/services"
	"itradebook/src/utils"
	redis_utils "itradebook/src/utils/redis"

	"github.com/xuri/excelize/v2"
)

type IController interface {
	GetReports(ctx context.Context, filter schemas.ReportFilter) (*schemas.PaginatedReportsResponse, error)
	ExportReportsCSV(ctx context.Context, filter schemas.ReportFilter) ([]byte, error)
	ExportReportsXLSX(ctx context.Context, filter schemas.ReportFilter) (*excelize.File, error)
	GetSymbols(ctx context.Context) ([]schemas.SymbolResponse, error)
}

type Controller struct {
	ReportRepository repositories.ReportRepository
	SymbolRepository repositories.SymbolRepository
	ExportService    services.ExportServiceI

	symbolCache  *utils.Cache[[]schemas.SymbolResponse]
	redisHandler *redis_utils.RedisHandler
}

// NewController wires the read-side controller. redisHandler may be nil,
// in which case report pages are served straight from the database.
func NewController(
	reportRepository repositories.ReportRepository,
	symbolRepository repositories.SymbolRepository,
	exportService services.ExportServiceI,
	redisHandler *redis_utils.RedisHandler,
) *Controller {
	return &Controller{
		ReportRepository: reportRepository,
		SymbolRepository: symbolRepository,
		ExportService:    exportService,
		symbolCache:      utils.NewCache[[]schemas.SymbolResponse](),
		redisHandler:     redisHandler,
	}
}
