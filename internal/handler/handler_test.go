package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/pos-backend/internal/config"
	"github.com/deppfellow/pos-backend/internal/middleware"
	"github.com/deppfellow/pos-backend/internal/model"
	"github.com/deppfellow/pos-backend/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCustomers struct {
	items   []model.Customer
	created int64
	err     error

	gotID    string
	gotTerm  string
	gotInput model.PersonInput
}

func (f *fakeCustomers) List(ctx context.Context) ([]model.Customer, error) {
	return f.items, f.err
}

func (f *fakeCustomers) Search(ctx context.Context, term string) ([]model.Customer, error) {
	f.gotTerm = term
	return f.items, f.err
}

func (f *fakeCustomers) Get(ctx context.Context, id string) (*model.Customer, error) {
	f.gotID = id
	if f.err != nil || len(f.items) == 0 {
		return nil, f.err
	}
	return &f.items[0], nil
}

func (f *fakeCustomers) Create(ctx context.Context, in model.PersonInput) (int64, error) {
	f.gotInput = in
	return f.created, f.err
}

func (f *fakeCustomers) Update(ctx context.Context, id string, in model.PersonInput) error {
	f.gotID = id
	f.gotInput = in
	return f.err
}

func (f *fakeCustomers) Delete(ctx context.Context, id string) error {
	f.gotID = id
	return f.err
}

func testServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Database:      config.DatabaseConfig{Driver: config.DriverPostgres},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}
}

func newCustomerAPI(svc *fakeCustomers) *echo.Echo {
	s := testServer()
	e := echo.New()
	e.HTTPErrorHandler = middleware.NewGlobalMiddlewares(s).GlobalErrorHandler

	NewResourceHandler[model.Customer, model.PersonInput](s, "Customer", "Customer added successfully", svc).
		Register(e.Group("/api/customers"))

	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func strPtr(s string) *string { return &s }

func TestListEmptyRendersArray(t *testing.T) {
	rec := do(newCustomerAPI(&fakeCustomers{}), http.MethodGet, "/api/customers", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListRendersColumns(t *testing.T) {
	svc := &fakeCustomers{items: []model.Customer{
		{CustID: 2, CustFname: strPtr("Ann"), CustLname: nil},
	}}

	rec := do(newCustomerAPI(svc), http.MethodGet, "/api/customers", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"CustID":2,"CustFname":"Ann","CustLname":null}]`, rec.Body.String())
}

func TestSearchPassesTerm(t *testing.T) {
	svc := &fakeCustomers{}

	rec := do(newCustomerAPI(svc), http.MethodGet, "/api/customers/search/ann", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ann", svc.gotTerm)
}

func TestGetMissRendersNull(t *testing.T) {
	svc := &fakeCustomers{}

	rec := do(newCustomerAPI(svc), http.MethodGet, "/api/customers/99", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
	assert.Equal(t, "99", svc.gotID)
}

func TestCreate(t *testing.T) {
	svc := &fakeCustomers{created: 7}

	rec := do(newCustomerAPI(svc), http.MethodPost, "/api/customers", `{"fname":"Ann","lname":"Lee"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Customer added successfully","id":7}`, rec.Body.String())
	require.NotNil(t, svc.gotInput.Fname)
	assert.Equal(t, "Ann", *svc.gotInput.Fname)
	assert.Equal(t, "Lee", *svc.gotInput.Lname)
}

func TestCreateDecodesJSONWithoutContentType(t *testing.T) {
	svc := &fakeCustomers{created: 7}
	e := newCustomerAPI(svc)

	for _, contentType := range []string{"", echo.MIMETextPlain} {
		req := httptest.NewRequest(http.MethodPost, "/api/customers", strings.NewReader(`{"fname":"Ann","lname":"Lee"}`))
		if contentType != "" {
			req.Header.Set(echo.HeaderContentType, contentType)
		}
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, contentType)
		require.NotNil(t, svc.gotInput.Fname, contentType)
		assert.Equal(t, "Ann", *svc.gotInput.Fname)
		assert.Equal(t, "Lee", *svc.gotInput.Lname)
	}
}

func TestCreateEmptyBodyWritesNulls(t *testing.T) {
	svc := &fakeCustomers{created: 2}

	rec := do(newCustomerAPI(svc), http.MethodPost, "/api/customers", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Customer added successfully","id":2}`, rec.Body.String())
	assert.Nil(t, svc.gotInput.Fname)
	assert.Nil(t, svc.gotInput.Lname)
}

func TestCreateMissingFieldsStayNull(t *testing.T) {
	svc := &fakeCustomers{created: 1}

	rec := do(newCustomerAPI(svc), http.MethodPost, "/api/customers", `{"fname":"Ann"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.gotInput.Lname)
}

func TestUpdate(t *testing.T) {
	svc := &fakeCustomers{}

	rec := do(newCustomerAPI(svc), http.MethodPut, "/api/customers/3", `{"fname":"Bo","lname":"Li"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Customer updated successfully"}`, rec.Body.String())
	assert.Equal(t, "3", svc.gotID)
	assert.Equal(t, "Bo", *svc.gotInput.Fname)
}

func TestDelete(t *testing.T) {
	svc := &fakeCustomers{}

	rec := do(newCustomerAPI(svc), http.MethodDelete, "/api/customers/3", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Customer deleted successfully"}`, rec.Body.String())
	assert.Equal(t, "3", svc.gotID)
}

func TestStoreErrorRendersMessage(t *testing.T) {
	svc := &fakeCustomers{err: errors.New(`relation "Customer" does not exist`)}

	rec := do(newCustomerAPI(svc), http.MethodGet, "/api/customers/3", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"relation \"Customer\" does not exist"}`, rec.Body.String())
}

func TestMalformedBodyIsServerError(t *testing.T) {
	svc := &fakeCustomers{}

	rec := do(newCustomerAPI(svc), http.MethodPost, "/api/customers", `{"fname":`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
	assert.Len(t, body, 1)
}

func TestUnknownRoute(t *testing.T) {
	rec := do(newCustomerAPI(&fakeCustomers{}), http.MethodGet, "/api/nothing", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

func TestSaleMessages(t *testing.T) {
	s := testServer()
	svc := &fakeSales{created: 12}
	e := echo.New()
	NewResourceHandler[model.Sale, model.SaleInput](s, "Sale", "Sale recorded successfully", svc).Register(e.Group("/api/sales"))

	rec := do(e, http.MethodPost, "/api/sales", `{"customerId":1,"cashierId":2,"productIds":[4,5],"date":"2024-01-02"}`)
	assert.JSONEq(t, `{"message":"Sale recorded successfully","id":12}`, rec.Body.String())
	assert.Equal(t, []int64{4, 5}, svc.gotInput.ProductIDs)

	rec = do(e, http.MethodDelete, "/api/sales/12", "")
	assert.JSONEq(t, `{"message":"Sale deleted successfully"}`, rec.Body.String())
}

type fakeSales struct {
	created  int64
	gotInput model.SaleInput
}

func (f *fakeSales) List(ctx context.Context) ([]model.Sale, error) { return nil, nil }

func (f *fakeSales) Search(ctx context.Context, term string) ([]model.Sale, error) {
	return nil, nil
}

func (f *fakeSales) Get(ctx context.Context, id string) (*model.Sale, error) { return nil, nil }

func (f *fakeSales) Create(ctx context.Context, in model.SaleInput) (int64, error) {
	f.gotInput = in
	return f.created, nil
}

func (f *fakeSales) Update(ctx context.Context, id string, in model.SaleInput) error { return nil }

func (f *fakeSales) Delete(ctx context.Context, id string) error { return nil }

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("ping without deadline")
	}
	return f.err
}

func TestCheckHealth(t *testing.T) {
	tests := []struct {
		name       string
		db         pinger
		wantStatus int
		wantState  string
	}{
		{name: "healthy", db: fakePinger{}, wantStatus: http.StatusOK, wantState: "healthy"},
		{name: "ping fails", db: fakePinger{err: errors.New("connection refused")}, wantStatus: http.StatusServiceUnavailable, wantState: "unhealthy"},
		{name: "no database", db: nil, wantStatus: http.StatusServiceUnavailable, wantState: "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HealthHandler{Handler: NewHandler(testServer()), db: tt.db}

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/status", nil), rec)

			require.NoError(t, h.CheckHealth(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body struct {
				Status    string    `json:"status"`
				Timestamp time.Time `json:"timestamp"`
				Checks    map[string]struct {
					Status string `json:"status"`
					Driver string `json:"driver"`
				} `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantState, body.Status)
			assert.Equal(t, tt.wantState, body.Checks["database"].Status)
			assert.Equal(t, config.DriverPostgres, body.Checks["database"].Driver)
		})
	}
}
