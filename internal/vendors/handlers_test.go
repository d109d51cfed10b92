package vendors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vendorRouter() http.Handler {
	r := chi.NewRouter()
	h := Handler{}
	r.Get("/api/vendors", h.List)
	r.Get("/api/vendors/{id}", h.Get)
	return r
}

func TestListReturnsFullCatalog(t *testing.T) {
	rec := httptest.NewRecorder()
	vendorRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/vendors", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []Vendor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, All(), got)
}

func TestListFiltered(t *testing.T) {
	rec := httptest.NewRecorder()
	vendorRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/vendors?category=venue&price_band=Luxury", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []Vendor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotEmpty(t, got)
	for _, v := range got {
		assert.Equal(t, CategoryVenue, v.Category)
		assert.Equal(t, "Luxury", v.PriceBand)
	}
}

func TestGetVendor(t *testing.T) {
	rec := httptest.NewRecorder()
	vendorRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/vendors/ven-001", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var got Vendor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "The Grand Maratha Ballroom", got.Name)

	rec = httptest.NewRecorder()
	vendorRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/vendors/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
