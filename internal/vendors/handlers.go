package vendors

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the vendor directory over HTTP.
type Handler struct{}

// List handles GET /api/vendors.
func (Handler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := Filter{
		Category:  query.Get("category"),
		City:      query.Get("city"),
		PriceBand: query.Get("price_band"),
	}

	found := All()
	if filter != (Filter{}) {
		found = Find(filter)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(found)
}

// Get handles GET /api/vendors/{id}.
func (Handler) Get(w http.ResponseWriter, r *http.Request) {
	vendor, ok := ByID(chi.URLParam(r, "id"))
	if !ok {
		http.Error(w, "vendor not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(vendor)
}
