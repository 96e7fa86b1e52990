package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"itradebook/src/config"
	"itradebook/src/database"
	"itradebook/src/repositories"
	"itradebook/src/services"
	"itradebook/src/utils"
	redis_utils "itradebook/src/utils/redis"
	"itradebook/src/worker/controllers"

	"github.com/sirupsen/logrus"
)

type Handler struct {
	Controller controllers.IController
	Logger     *logrus.Logger
}

func NewHandler(cfg *config.Config, logger *logrus.Logger) (*Handler, error) {
	db, err := database.SetupDB(cfg)
	if err != nil {
		return nil, err
	}

	redisHandler, err := redis_utils.NewRedisHandler(cfg)
	if err != nil {
		logger.WithError(err).Warn("redis unavailable, report cache will not be invalidated")
		redisHandler = nil
	}

	rebuildService := services.NewRebuildService(
		repositories.NewTradeRepository(db),
		repositories.NewSnapshotRepository(db),
		repositories.NewReportRepository(db),
		db,
		database.RetryPolicyFromConfig(cfg),
	)
	controller := controllers.NewController(rebuildService, redisHandler, logger)

	if cfg.Rebuild.CronTime != "" {
		if err := controller.StartNightlyRebuild(cfg.Rebuild.CronTime); err != nil {
			return nil, err
		}
	}

	return &Handler{Controller: controller, Logger: logger}, nil
}

func Healthcheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	var httpErr *utils.HTTPError
	if errors.Is(err, context.DeadlineExceeded) {
		h.respond(w, nil, map[string]string{"error": "Request timed out"}, http.StatusGatewayTimeout)
	} else if errors.As(err, &httpErr) {
		h.respond(w, nil, map[string]string{"error": httpErr.Message}, httpErr.Code)
	} else if err != nil {
		h.respond(w, nil, map[string]string{"error": err.Error()}, http.StatusInternalServerError)
	} else {
		h.respond(w, nil, map[string]string{"error": "Unhandled error"}, http.StatusInternalServerError)
	}
}
