// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers.
package router

import (
	"github.com/deppfellow/pos-backend/internal/handler"
	"github.com/deppfellow/pos-backend/internal/middleware"
	"github.com/deppfellow/pos-backend/internal/server"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
)

// NewRouter builds the echo instance serving the API.
//
// Middleware order matters: the request id must exist before the context
// logger is built, and the New Relic transaction must exist before
// EnhanceTracing and the context logger read it.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Pre(echoMiddleware.RemoveTrailingSlash())

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(s, router, h)

	api := router.Group("/api")
	h.Customers.Register(api.Group("/customers"))
	h.Cashiers.Register(api.Group("/cashiers"))
	h.Suppliers.Register(api.Group("/suppliers"))
	h.Products.Register(api.Group("/products"))
	h.Sales.Register(api.Group("/sales"))

	return router
}
