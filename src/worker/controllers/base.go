package controllers

import (
	"context"
	"time"

	"itradebook/src/scheduler"
	"itradebook/src/schemas"
	"itradebook/src/services"
	"itradebook/src/utils"
	redis_utils "itradebook/src/utils/redis"

	"github.com/sirupsen/logrus"
)

type IController interface {
	Rebuild(ctx context.Context, req schemas.RebuildRequest) (*schemas.RebuildSummary, error)
	StartNightlyRebuild(cronSpec string) error
	Stop()
}

type Controller struct {
	RebuildService services.RebuildServiceI

	redisHandler *redis_utils.RedisHandler
	logger       *logrus.Logger
	nightlyTask  *scheduler.ScheduledTask
}

func NewController(rebuildService services.RebuildServiceI, redisHandler *redis_utils.RedisHandler, logger *logrus.Logger) *Controller {
	return &Controller{
		RebuildService: rebuildService,
		redisHandler:   redisHandler,
		logger:         logger,
	}
}

// Rebuild resolves the request into a date range and runs the aggregator.
// After a run that processed anything, the report cache generation is
// bumped so the API stops serving stale pages.
func (c *Controller) Rebuild(ctx context.Context, req schemas.RebuildRequest) (*schemas.RebuildSummary, error) {
	ctx = utils.WithLogger(ctx, c.logger)

	var summary *schemas.RebuildSummary
	var err error
	switch {
	case req.Year != 0 && req.Month != 0:
		if req.Month < 1 || req.Month > 12 {
			return nil, utils.BadRequest("month must be between 1 and 12")
		}
		summary, err = c.RebuildService.RebuildMonth(ctx, req.Year, time.Month(req.Month))
	case req.StartDate != "" && req.EndDate != "":
		startDate, parseErr := time.Parse(utils.ShortDashDateLayout, req.StartDate)
		if parseErr != nil {
			return nil, utils.UnprocessableEntity("invalid start_date, expected YYYY-MM-DD")
		}
		endDate, parseErr := time.Parse(utils.ShortDashDateLayout, req.EndDate)
		if parseErr != nil {
			return nil, utils.UnprocessableEntity("invalid end_date, expected YYYY-MM-DD")
		}
		if endDate.Before(startDate) {
			return nil, utils.BadRequest("end_date must not be before start_date")
		}
		summary, err = c.RebuildService.RebuildRange(ctx, startDate, endDate)
	default:
		return nil, utils.BadRequest("either start_date/end_date or year/month are required")
	}

	if summary != nil && summary.Processed > 0 {
		c.invalidateReportCache()
	}
	return summary, err
}

// StartNightlyRebuild schedules a rebuild of the previous calendar day.
func (c *Controller) StartNightlyRebuild(cronSpec string) error {
	task, err := scheduler.NewScheduledTask(cronSpec, func() {
		yesterday := utils.PreviousDay(time.Now().UTC())
		req := schemas.RebuildRequest{
			StartDate: yesterday.Format(utils.ShortDashDateLayout),
			EndDate:   yesterday.Format(utils.ShortDashDateLayout),
		}
		summary, err := c.Rebuild(context.Background(), req)
		if err != nil {
			c.logger.WithError(err).Error("nightly rebuild aborted")
			return
		}
		c.logger.WithFields(logrus.Fields{
			"run_id":    summary.RunID,
			"processed": summary.Processed,
			"skipped":   summary.Skipped,
			"errors":    len(summary.Errors),
		}).Info("nightly rebuild finished")
	})
	if err != nil {
		return err
	}
	c.nightlyTask = task
	return nil
}

func (c *Controller) Stop() {
	if c.nightlyTask != nil {
		c.nightlyTask.Cancel()
		c.nightlyTask = nil
	}
}

func (c *Controller) invalidateReportCache() {
	if c.redisHandler == nil {
		return
	}
	if err := c.redisHandler.BumpReportVersion(); err != nil {
		c.logger.WithError(err).Warn("failed to invalidate report cache")
	}
}
