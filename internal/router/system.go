package router

import (
	"github.com/deppfellow/pos-backend/internal/handler"
	"github.com/deppfellow/pos-backend/internal/server"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints outside the resource API:
// the health report and the static front-end files.
func registerSystemRoutes(s *server.Server, r *echo.Echo, h *handler.Handlers) {
	if s.Config.Observability.HealthChecks.Enabled {
		r.GET("/status", h.Health.CheckHealth)
	}

	if dir := s.Config.Server.StaticDir; dir != "" {
		r.Static("/", dir)
	}
}
