package budget

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"shaadiAi/internal/storage"
)

// Handler bundles dependencies for budget endpoints.
type Handler struct {
	Store storage.Store
}

// Plan handles GET /api/budget/plan. It returns the deterministic
// allocation for the requested (or default) budget range, together with
// the known range labels for the UI.
func (h Handler) Plan(w http.ResponseWriter, r *http.Request) {
	breakdown := DefaultBreakdown(r.URL.Query().Get("range"))

	writeJSON(w, http.StatusOK, struct {
		Breakdown Breakdown `json:"breakdown"`
		Ranges    []string  `json:"ranges"`
	}{
		Breakdown: breakdown,
		Ranges:    RangeLabels(),
	})
}

// ListItems handles GET /api/budget/items?plan=.
func (h Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	planKey := strings.TrimSpace(r.URL.Query().Get("plan"))
	if planKey == "" {
		http.Error(w, "plan is required", http.StatusBadRequest)
		return
	}

	items, err := h.Store.ListBudgetItems(r.Context(), planKey)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// CreateItem handles POST /api/budget/items.
func (h Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var item storage.BudgetItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	item.PlanKey = strings.TrimSpace(item.PlanKey)
	item.Label = strings.TrimSpace(item.Label)
	if item.PlanKey == "" || item.Label == "" {
		http.Error(w, "plan_key and label are required", http.StatusBadRequest)
		return
	}
	if item.Category == "" {
		item.Category = "other"
	}

	created, err := h.Store.CreateBudgetItem(r.Context(), item)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// UpdateItem handles PATCH /api/budget/items/{id}.
func (h Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var item storage.BudgetItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	item.ID = chi.URLParam(r, "id")

	updated, err := h.Store.UpdateBudgetItem(r.Context(), item)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "budget item not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteItem handles DELETE /api/budget/items/{id}.
func (h Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	err := h.Store.DeleteBudgetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "budget item not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
