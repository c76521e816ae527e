package sale

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Neurokami/proyecto-infra/internal/auth"
	"github.com/Neurokami/proyecto-infra/internal/middlewares"
)

type fakeStore struct {
	sales  map[int64][]*Sale
	listed int
}

func (f *fakeStore) findAllByVendor(_ context.Context, vendorID int64) ([]*Sale, error) {
	f.listed++

	if sales, ok := f.sales[vendorID]; ok {
		return sales, nil
	}

	return []*Sale{}, nil
}

func newTestRouter(t *testing.T, store Storer) *chi.Mux {
	t.Helper()

	tokens := auth.NewTokenService("test-secret", 3600)
	handler := NewHandler(
		NewService(store),
		middlewares.NewMiddleware(tokens),
	)

	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	return router
}

func doGet(t *testing.T, router *chi.Mux, path string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	payload := map[string]any{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}

	return rec, payload
}

func TestGetVendorSales(t *testing.T) {
	store := &fakeStore{
		sales: map[int64][]*Sale{
			1: {
				{
					SaleID:        3,
					Fecha:         "2024-05-02 10:30:00",
					Total:         23000,
					ClienteNombre: "Luis",
					Items:         1,
				},
				{
					SaleID:        1,
					Fecha:         "2024-05-01 09:00:00",
					Total:         8000,
					ClienteNombre: "Marta",
					Items:         2,
				},
			},
		},
	}

	rec, payload := doGet(t, newTestRouter(t, store), "/ventas?vendedor_id=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])

	ventas := payload["ventas"].([]any)
	require.Len(t, ventas, 2)

	first := ventas[0].(map[string]any)
	assert.Equal(t, float64(3), first["id_venta"])
	assert.Equal(t, "2024-05-02 10:30:00", first["fecha"])
	assert.Equal(t, float64(23000), first["total"])
	assert.Equal(t, "Luis", first["cliente_nombre"])
	assert.Equal(t, float64(1), first["items"])
}

func TestGetVendorSalesEmptyListIsStillASuccess(t *testing.T) {
	rec, payload := doGet(
		t,
		newTestRouter(t, &fakeStore{sales: map[int64][]*Sale{}}),
		"/ventas?vendedor_id=4",
	)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["success"])
	assert.Empty(t, payload["ventas"])
}

func TestBadVendorParamIs422WithoutTouchingStore(t *testing.T) {
	store := &fakeStore{}
	router := newTestRouter(t, store)

	for _, path := range []string{
		"/ventas",
		"/ventas?vendedor_id=abc",
		"/ventas?vendedor_id=0",
	} {
		rec, payload := doGet(t, router, path)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, path)
		assert.Equal(
			t,
			"El parámetro vendedor_id es obligatorio y debe ser numérico.",
			payload["message"],
			path,
		)
	}

	assert.Zero(t, store.listed)
}
