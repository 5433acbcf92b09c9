package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"churchattendance/internal/delivery/http/helpers"
	"churchattendance/internal/metrics"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthStatus is the body of GET /healthz.
type HealthStatus struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type HealthController struct {
	Logger  *slog.Logger
	DB      Pinger
	Timeout time.Duration
}

func NewHealthController(logger *slog.Logger, db Pinger) *HealthController {
	return &HealthController{Logger: logger, DB: db, Timeout: 2 * time.Second}
}

// Healthz godoc
// @Summary Liveness and database check
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse "data.status: ok"
// @Failure 503 {object} helpers.APIResponse "data.status: degraded"
// @Router /healthz [get]
func (c *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), c.Timeout)
	defer cancel()

	start := time.Now()
	err := c.DB.PingContext(ctx)
	metrics.ObserveDBPing(time.Since(start))
	if err != nil {
		c.Logger.WarnContext(r.Context(), "database ping failed", "err", err)
		helpers.WriteJSONSuccess(w, http.StatusServiceUnavailable, HealthStatus{Status: "degraded", Database: "unreachable"})
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, HealthStatus{Status: "ok", Database: "ok"})
}
