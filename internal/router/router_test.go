package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/deppfellow/pos-backend/internal/config"
	"github.com/deppfellow/pos-backend/internal/handler"
	"github.com/deppfellow/pos-backend/internal/middleware"
	"github.com/deppfellow/pos-backend/internal/model"
	"github.com/deppfellow/pos-backend/internal/server"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyService answers every call with no rows.
type emptyService[T, In any] struct{}

func (emptyService[T, In]) List(ctx context.Context) ([]T, error) { return nil, nil }

func (emptyService[T, In]) Search(ctx context.Context, term string) ([]T, error) {
	return nil, nil
}

func (emptyService[T, In]) Get(ctx context.Context, id string) (*T, error) { return nil, nil }

func (emptyService[T, In]) Create(ctx context.Context, in In) (int64, error) { return 1, nil }

func (emptyService[T, In]) Update(ctx context.Context, id string, in In) error { return nil }

func (emptyService[T, In]) Delete(ctx context.Context, id string) error { return nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "app.js"), []byte("console.log(1)"), 0o600))

	logger := zerolog.Nop()
	s := &server.Server{
		Config: &config.Config{
			Server: config.ServerConfig{
				CORSAllowedOrigins: []string{"*"},
				StaticDir:          static,
			},
			Database:      config.DatabaseConfig{Driver: config.DriverMySQL},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}

	h := &handler.Handlers{
		Health:    handler.NewHealthHandler(s),
		Customers: handler.NewResourceHandler[model.Customer, model.PersonInput](s, "Customer", "Customer added successfully", emptyService[model.Customer, model.PersonInput]{}),
		Cashiers:  handler.NewResourceHandler[model.Cashier, model.PersonInput](s, "Cashier", "Cashier added successfully", emptyService[model.Cashier, model.PersonInput]{}),
		Suppliers: handler.NewResourceHandler[model.Supplier, model.SupplierInput](s, "Supplier", "Supplier added successfully", emptyService[model.Supplier, model.SupplierInput]{}),
		Products:  handler.NewResourceHandler[model.Product, model.ProductInput](s, "Product", "Product added successfully", emptyService[model.Product, model.ProductInput]{}),
		Sales:     handler.NewResourceHandler[model.Sale, model.SaleInput](s, "Sale", "Sale recorded successfully", emptyService[model.Sale, model.SaleInput]{}),
	}

	return NewRouter(s, h)
}

func serve(r http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestResourceRoutes(t *testing.T) {
	r := newTestRouter(t)

	for _, resource := range []string{"customers", "cashiers", "suppliers", "products", "sales"} {
		t.Run(resource, func(t *testing.T) {
			rec := serve(r, http.MethodGet, "/api/"+resource)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `[]`, rec.Body.String())

			rec = serve(r, http.MethodGet, "/api/"+resource+"/search/x")
			assert.Equal(t, http.StatusOK, rec.Code)

			rec = serve(r, http.MethodGet, "/api/"+resource+"/1")
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `null`, rec.Body.String())

			rec = serve(r, http.MethodDelete, "/api/"+resource+"/1")
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestTrailingSlash(t *testing.T) {
	rec := serve(newTestRouter(t), http.MethodGet, "/api/customers/")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestIDHeader(t *testing.T) {
	rec := serve(newTestRouter(t), http.MethodGet, "/api/customers")

	assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
}

func TestUnknownRouteKeepsStatus(t *testing.T) {
	r := newTestRouter(t)

	rec := serve(r, http.MethodGet, "/api/unknown/1/2")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())

	rec = serve(r, http.MethodPatch, "/api/customers/1")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method Not Allowed"}`, rec.Body.String())
}

func TestStatusWithoutDatabase(t *testing.T) {
	rec := serve(newTestRouter(t), http.MethodGet, "/status")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStaticFiles(t *testing.T) {
	rec := serve(newTestRouter(t), http.MethodGet, "/app.js")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "console.log(1)", rec.Body.String())
}
