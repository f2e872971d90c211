package handler

import (
	"time"

	"github.com/deppfellow/pos-backend/internal/middleware"
	"github.com/deppfellow/pos-backend/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Handler holds the shared application dependencies of every handler.
type Handler struct {
	server *server.Server
}

func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// Bindable is a request type whose pointer knows how to fill itself from
// the echo context.
type Bindable[R any] interface {
	*R
	Bind(c echo.Context) error
}

// HandlerFunc is a typed endpoint receiving a bound request.
type HandlerFunc[Req, Res any] func(c echo.Context, req Req) (Res, error)

// handleRequest is the pipeline shared by every endpoint: bind, run the
// handler, write the JSON result. Each phase is logged with the request
// logger and timed on the New Relic transaction.
func handleRequest[Req any, PReq Bindable[Req]](
	c echo.Context,
	handler func(c echo.Context, req Req) (any, error),
	status int,
) error {
	start := time.Now()
	route := c.Path()

	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
	}

	logger := middleware.GetLogger(c).With().
		Str("operation", "handler").
		Str("route", route).
		Logger()

	logger.Debug().Msg("handling request")

	bindStart := time.Now()
	var req Req
	if err := PReq(&req).Bind(c); err != nil {
		bindDuration := time.Since(bindStart)

		logger.Error().
			Err(err).
			Dur("bind_duration", bindDuration).
			Msg("request binding failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("bind.status", "failed")
			txn.AddAttribute("bind.duration_ms", bindDuration.Milliseconds())
		}

		return err
	}

	bindDuration := time.Since(bindStart)
	if txn != nil {
		txn.AddAttribute("bind.status", "success")
		txn.AddAttribute("bind.duration_ms", bindDuration.Milliseconds())
	}

	handlerStart := time.Now()
	result, err := handler(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		totalDuration := time.Since(start)

		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", totalDuration).
			Msg("handler execution failed")

		if txn != nil {
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
			txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		}
		return err
	}

	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
	}

	logger.Debug().
		Dur("bind_duration", bindDuration).
		Dur("handler_duration", handlerDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return c.JSON(status, result)
}

// Handle wraps a typed endpoint into an echo.HandlerFunc running the
// shared pipeline. A fresh request value is bound for every call.
//
//	g.GET("/:id", Handle(h.Handler, h.Get, http.StatusOK))
func Handle[Req any, PReq Bindable[Req], Res any](
	h Handler,
	handler HandlerFunc[Req, Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest[Req, PReq](c, func(c echo.Context, req Req) (any, error) {
			return handler(c, req)
		}, status)
	}
}
