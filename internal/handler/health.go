package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/deppfellow/pos-backend/internal/middleware"
	"github.com/deppfellow/pos-backend/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var errDatabaseNotInitialized = errors.New("database not initialized")

type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports whether the process can reach its store.
type HealthHandler struct {
	Handler
	db pinger
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{Handler: NewHandler(s)}
	if s.DB != nil {
		h.db = s.DB
	}
	return h
}

// CheckHealth pings the store within the configured timeout.
// It answers 200 when healthy and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]any)
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.server.Config.Observability.HealthChecks.Timeout)
	defer cancel()

	dbStart := time.Now()
	err := h.ping(ctx)
	database := map[string]any{
		"driver":        h.server.Config.Database.Driver,
		"response_time": time.Since(dbStart).String(),
	}
	checks["database"] = database

	if err != nil {
		database["status"] = "unhealthy"
		database["error"] = err.Error()
		response["status"] = "unhealthy"

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(dbStart)).
			Msg("database health check failed")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]any{
				"check_type":        "database",
				"operation":         "health_check",
				"error_type":        "database_unhealthy",
				"response_time_ms":  time.Since(dbStart).Milliseconds(),
				"total_duration_ms": time.Since(start).Milliseconds(),
				"error_message":     err.Error(),
			})
		}

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	database["status"] = "healthy"

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) ping(ctx context.Context) error {
	if h.db == nil {
		return errDatabaseNotInitialized
	}
	return h.db.Ping(ctx)
}
