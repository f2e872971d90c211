package handler

import (
	"io"

	"github.com/deppfellow/pos-backend/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type listRequest struct{}

func (r *listRequest) Bind(c echo.Context) error {
	return nil
}

type idRequest struct {
	ID string
}

func (r *idRequest) Bind(c echo.Context) error {
	r.ID = c.Param("id")
	return nil
}

type searchRequest struct {
	Term string
}

func (r *searchRequest) Bind(c echo.Context) error {
	r.Term = c.Param("term")
	return nil
}

// payloadRequest carries a JSON body and, for updates, the path id.
// Absent fields stay nil and reach the store as NULL. The body is decoded
// as JSON whatever Content-Type the client sent; an empty body binds nothing.
type payloadRequest[In any] struct {
	ID   string
	Body In
}

func (r *payloadRequest[In]) Bind(c echo.Context) error {
	r.ID = c.Param("id")

	if c.Request().ContentLength == 0 {
		return nil
	}

	err := c.Echo().JSONSerializer.Deserialize(c, &r.Body)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return errs.NewInternalServerError(bindMessage(err))
	}

	return nil
}

// bindMessage strips echo's "code=..., message=..." wrapping.
func bindMessage(err error) string {
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if msg, ok := echoErr.Message.(string); ok {
			return msg
		}
	}
	return err.Error()
}
