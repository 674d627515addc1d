package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"app/internal/handler"
	infraRepo "app/internal/infra/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newProductServer(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	uc := usecase.NewProductUsecase(infraRepo.NewProductMemoryRepository())
	handler.NewProductHandler(uc).RegisterRoutes(e)
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestProductHandler_AddAndGet(t *testing.T) {
	e := newProductServer(t)

	rec := doJSON(e, http.MethodPost, "/products", `{"id":7,"name":"Coffee","price":9.99,"stock":30,"restock_amount":10}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodGet, "/products/7", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Coffee", got["name"])
	assert.Equal(t, 9.99, got["price"])
}

// HTTPErrorのステータスがそのままレスポンスになる
func TestProductHandler_ErrorMapping(t *testing.T) {
	e := newProductServer(t)

	rec := doJSON(e, http.MethodGet, "/products/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "product not found", body["error"])

	rec = doJSON(e, http.MethodGet, "/products/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductHandler_DuplicateID(t *testing.T) {
	e := newProductServer(t)

	body := `{"id":7,"name":"Coffee","price":9.99,"stock":30,"restock_amount":10}`
	rec := doJSON(e, http.MethodPost, "/products", body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(e, http.MethodPost, "/products", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestProductHandler_SearchByName(t *testing.T) {
	e := newProductServer(t)

	doJSON(e, http.MethodPost, "/products", `{"id":7,"name":"Coffee","price":9.99,"stock":30,"restock_amount":10}`)

	rec := doJSON(e, http.MethodGet, "/products?name=coffee", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, float64(7), got["id"])
}
