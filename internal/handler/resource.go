package handler

import (
	"context"
	"net/http"

	"github.com/deppfellow/pos-backend/internal/model"
	"github.com/deppfellow/pos-backend/internal/server"
	"github.com/labstack/echo/v4"
)

// ResourceService is what a ResourceHandler needs from the service layer.
type ResourceService[T, In any] interface {
	List(ctx context.Context) ([]T, error)
	Search(ctx context.Context, term string) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, in In) (int64, error)
	Update(ctx context.Context, id string, in In) error
	Delete(ctx context.Context, id string) error
}

// ResourceHandler serves the six CRUD routes of one resource.
type ResourceHandler[T, In any] struct {
	Handler
	noun       string
	createdMsg string
	service    ResourceService[T, In]
}

// NewResourceHandler builds the handler of a resource. noun starts the
// update and delete messages; createdMsg is returned by create as is.
func NewResourceHandler[T, In any](s *server.Server, noun, createdMsg string, service ResourceService[T, In]) *ResourceHandler[T, In] {
	return &ResourceHandler[T, In]{
		Handler:    NewHandler(s),
		noun:       noun,
		createdMsg: createdMsg,
		service:    service,
	}
}

// Register mounts the routes on g:
//
//	GET    ""              list
//	GET    "/search/:term" search
//	GET    "/:id"          get
//	POST   ""              create
//	PUT    "/:id"          update
//	DELETE "/:id"          delete
func (h *ResourceHandler[T, In]) Register(g *echo.Group) {
	g.GET("", Handle(h.Handler, h.List, http.StatusOK))
	g.GET("/search/:term", Handle(h.Handler, h.Search, http.StatusOK))
	g.GET("/:id", Handle(h.Handler, h.Get, http.StatusOK))
	g.POST("", Handle(h.Handler, h.Create, http.StatusOK))
	g.PUT("/:id", Handle(h.Handler, h.Update, http.StatusOK))
	g.DELETE("/:id", Handle(h.Handler, h.Delete, http.StatusOK))
}

func (h *ResourceHandler[T, In]) List(c echo.Context, _ listRequest) ([]T, error) {
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return nil, err
	}
	return nonNil(items), nil
}

func (h *ResourceHandler[T, In]) Search(c echo.Context, req searchRequest) ([]T, error) {
	items, err := h.service.Search(c.Request().Context(), req.Term)
	if err != nil {
		return nil, err
	}
	return nonNil(items), nil
}

// Get renders null when the id matches nothing.
func (h *ResourceHandler[T, In]) Get(c echo.Context, req idRequest) (*T, error) {
	return h.service.Get(c.Request().Context(), req.ID)
}

func (h *ResourceHandler[T, In]) Create(c echo.Context, req payloadRequest[In]) (model.CreatedResponse, error) {
	id, err := h.service.Create(c.Request().Context(), req.Body)
	if err != nil {
		return model.CreatedResponse{}, err
	}
	return model.CreatedResponse{Message: h.createdMsg, ID: id}, nil
}

func (h *ResourceHandler[T, In]) Update(c echo.Context, req payloadRequest[In]) (model.MessageResponse, error) {
	if err := h.service.Update(c.Request().Context(), req.ID, req.Body); err != nil {
		return model.MessageResponse{}, err
	}
	return model.MessageResponse{Message: h.noun + " updated successfully"}, nil
}

func (h *ResourceHandler[T, In]) Delete(c echo.Context, req idRequest) (model.MessageResponse, error) {
	if err := h.service.Delete(c.Request().Context(), req.ID); err != nil {
		return model.MessageResponse{}, err
	}
	return model.MessageResponse{Message: h.noun + " deleted successfully"}, nil
}

// nonNil keeps empty results rendering as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
