package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"marketplace/ecommerce/internal/handler"
	"marketplace/ecommerce/internal/model"
	"marketplace/ecommerce/internal/repository/memory"
	"marketplace/ecommerce/internal/service"

	"github.com/andybalholm/brotli"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *handler.Handler {
	t.Helper()
	logger, _ := test.NewNullLogger()

	products := memory.NewProductRepository()
	require.NoError(t, service.SeedProducts(context.Background(), products, logger))

	return handler.NewHandler(
		handler.NewProductHandler(service.NewCatalogService(products), logger),
		handler.NewAuthHandler(service.NewAuthService(memory.NewUserRepository(), service.PlainHasher{}), logger),
		handler.NewOrderHandler(service.NewOrderService(memory.NewOrderRepository()), logger),
		handler.Options{Logger: logger},
	)
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestRegisterThenLogin(t *testing.T) {
	h := newTestHandler(t)
	creds := map[string]string{"email": "ann@example.com", "password": "hunter2"}

	w := do(t, h, http.MethodPost, "/api/auth/register", creds)
	require.Equal(t, http.StatusOK, w.Code)
	registered := decode[model.User](t, w)
	assert.Equal(t, "ann@example.com", registered.Email)
	assert.Equal(t, "hunter2", registered.Password)

	w = do(t, h, http.MethodPost, "/api/auth/login", creds)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, registered, decode[model.User](t, w))
}

func TestRegister_DuplicateEmail(t *testing.T) {
	h := newTestHandler(t)
	creds := map[string]string{"email": "ann@example.com", "password": "hunter2"}

	w := do(t, h, http.MethodPost, "/api/auth/register", creds)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, h, http.MethodPost, "/api/auth/register", creds)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already exists!", w.Body.String())
}

func TestLogin_WrongPasswordLooksLikeUnknownEmail(t *testing.T) {
	h := newTestHandler(t)
	do(t, h, http.MethodPost, "/api/auth/register", map[string]string{"email": "ann@example.com", "password": "right"})

	wrong := do(t, h, http.MethodPost, "/api/auth/login", map[string]string{"email": "ann@example.com", "password": "wrong"})
	unknown := do(t, h, http.MethodPost, "/api/auth/login", map[string]string{"email": "bob@example.com", "password": "right"})

	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, "Invalid email or password", wrong.Body.String())
	assert.Equal(t, wrong.Code, unknown.Code)
	assert.Equal(t, wrong.Body.String(), unknown.Body.String())
}

func TestListProducts_AfterSeed(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, w.Code)

	products := decode[[]model.Product](t, w)
	require.Len(t, products, 3)
	assert.Equal(t, "Gaming Laptop", products[0].Name)
	assert.Equal(t, 1200.0, products[0].Price)
	assert.Equal(t, 10, products[0].Stock)
	assert.Equal(t, "https://images.unsplash.com/photo-1603302576837-37561b2e2302?w=500", products[0].ImageURL)
	assert.Contains(t, w.Body.String(), `"imageUrl"`)
}

func TestAddAndDeleteProduct(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, http.MethodPost, "/api/products", map[string]any{
		"id": 500, "name": "USB Hub", "description": "4 ports", "price": 15.5, "stock": 7, "imageUrl": "https://example.com/hub.png",
	})
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[model.Product](t, w)
	assert.NotEqual(t, int64(500), created.ID)
	assert.Equal(t, "USB Hub", created.Name)

	listed := decode[[]model.Product](t, do(t, h, http.MethodGet, "/api/products", nil))
	assert.Len(t, listed, 4)

	w = do(t, h, http.MethodDelete, "/api/products/"+strconv.FormatInt(created.ID, 10), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	listed = decode[[]model.Product](t, do(t, h, http.MethodGet, "/api/products", nil))
	assert.Len(t, listed, 3)
	for _, p := range listed {
		assert.NotEqual(t, created.ID, p.ID)
	}
}

func TestDeleteProduct_UnknownIDIsSilent(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, http.MethodDelete, "/api/products/987654", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Body.String())

	w = do(t, h, http.MethodDelete, "/api/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutAndListOrders(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, http.MethodPost, "/api/orders/checkout", map[string]any{
		"userId": 1, "productNames": "Gaming Laptop, Wireless Mouse", "totalPrice": 1225.0,
	})
	require.Equal(t, http.StatusOK, w.Code)
	placed := decode[model.Order](t, w)
	assert.NotZero(t, placed.ID)
	assert.False(t, placed.OrderDate.IsZero())
	assert.Equal(t, 1225.0, placed.TotalPrice)

	mine := decode[[]model.Order](t, do(t, h, http.MethodGet, "/api/orders/user/1", nil))
	require.Len(t, mine, 1)
	assert.Equal(t, placed.ID, mine[0].ID)

	w = do(t, h, http.MethodGet, "/api/orders/user/2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestMalformedBody(t *testing.T) {
	h := newTestHandler(t)

	for _, path := range []string{"/api/auth/register", "/api/auth/login", "/api/products", "/api/orders/checkout"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader("{not json"))
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code, path)
	}
}

func TestCORS_AnyOrigin(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Origin", "https://marketplace-ui.example")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	preflight := httptest.NewRequest(http.MethodOptions, "/api/orders/checkout", nil)
	preflight.Header.Set("Origin", "https://marketplace-ui.example")
	preflight.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, preflight)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestBrotliResponse(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Accept-Encoding", "br")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, "br", w.Header().Get("Content-Encoding"))
	var products []model.Product
	require.NoError(t, json.NewDecoder(brotli.NewReader(w.Body)).Decode(&products))
	assert.Len(t, products, 3)
}

func TestHealthAndMetrics(t *testing.T) {
	h := newTestHandler(t)

	w := do(t, h, http.MethodGet, "/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	do(t, h, http.MethodPost, "/api/auth/login", map[string]string{"email": "x@example.com", "password": "y"})
	w = do(t, h, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `marketplace_auth_attempts_total{action="login",outcome="invalid_credentials"}`)
}

func TestAuthRateLimit(t *testing.T) {
	logger, _ := test.NewNullLogger()
	h := handler.NewHandler(
		handler.NewProductHandler(service.NewCatalogService(memory.NewProductRepository()), logger),
		handler.NewAuthHandler(service.NewAuthService(memory.NewUserRepository(), nil), logger),
		handler.NewOrderHandler(service.NewOrderService(memory.NewOrderRepository()), logger),
		handler.Options{Logger: logger, AuthLimiter: handler.NewRateLimiter(0.001, 1, logger)},
	)
	creds := map[string]string{"email": "ann@example.com", "password": "pw"}

	assert.Equal(t, http.StatusUnauthorized, do(t, h, http.MethodPost, "/api/auth/login", creds).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(t, h, http.MethodPost, "/api/auth/login", creds).Code)
	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/products", nil).Code, "only /api/auth is limited")
}
