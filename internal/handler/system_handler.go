package handler

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/projetoguri/sgpg/internal/client"
	"github.com/projetoguri/sgpg/internal/response"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const healthTimeout = 3 * time.Second

// SystemHandler reports process health and the reachability of the backend
// and, when sessions live there, Redis.
type SystemHandler struct {
	api       *client.Client
	rdb       *redis.Client
	driver    string
	startTime time.Time
	log       zerolog.Logger
}

// NewSystemHandler creates a new SystemHandler. rdb may be nil.
func NewSystemHandler(api *client.Client, rdb *redis.Client, driver string, log zerolog.Logger) *SystemHandler {
	return &SystemHandler{
		api:       api,
		rdb:       rdb,
		driver:    driver,
		startTime: time.Now(),
		log:       log.With().Str("component", "system_handler").Logger(),
	}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type healthReport struct {
	Status        string                      `json:"status"`
	Uptime        string                      `json:"uptime"`
	GoVersion     string                      `json:"go_version"`
	Goroutines    int                         `json:"goroutines"`
	SessionDriver string                      `json:"session_driver"`
	Dependencies  map[string]dependencyStatus `json:"dependencies"`
}

// Health godoc
// GET /health
// Returns "ok" when every dependency answers and "degraded" otherwise. The
// HTTP status stays 200 while this process is serving.
func (h *SystemHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	report := healthReport{
		Status:        "ok",
		Uptime:        time.Since(h.startTime).Round(time.Second).String(),
		GoVersion:     runtime.Version(),
		Goroutines:    runtime.NumGoroutine(),
		SessionDriver: h.driver,
		Dependencies:  map[string]dependencyStatus{},
	}

	report.Dependencies["backend"] = h.check(ctx, "backend", h.api.Ping)
	if h.rdb != nil {
		report.Dependencies["redis"] = h.check(ctx, "redis", func(ctx context.Context) error {
			return h.rdb.Ping(ctx).Err()
		})
	}
	for _, dep := range report.Dependencies {
		if dep.Status != "ok" {
			report.Status = "degraded"
		}
	}

	response.Records(c, http.StatusOK, report.Status, report)
}

func (h *SystemHandler) check(ctx context.Context, name string, ping func(context.Context) error) dependencyStatus {
	if err := ping(ctx); err != nil {
		h.log.Warn().Err(err).Str("dependency", name).Msg("Health check failed")
		return dependencyStatus{Status: "down", Error: err.Error()}
	}
	return dependencyStatus{Status: "ok"}
}
