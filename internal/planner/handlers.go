package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"shaadiAi/internal/events"
	"shaadiAi/internal/storage"
)

// Handler bundles dependencies for the blueprint and preference endpoints.
type Handler struct {
	Orchestrator *Orchestrator
	Store        storage.Store
	Events       *events.Broker
}

type blueprintRequest struct {
	PlanKey     string              `json:"plan_key"`
	Preferences storage.Preferences `json:"preferences"`
}

// GenerateBlueprint handles POST /api/blueprint. The response always carries
// a fully populated blueprint, generated where possible and composed from
// fallbacks where not.
func (h Handler) GenerateBlueprint(w http.ResponseWriter, r *http.Request) {
	var req blueprintRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	planKey := strings.TrimSpace(req.PlanKey)
	if planKey == "" {
		planKey = uuid.NewString()
	}

	// Persisting preferences is best effort; a storage hiccup must not
	// block generation.
	if h.Store != nil {
		if err := h.Store.SavePreferences(r.Context(), planKey, req.Preferences); err != nil {
			log.Warn().Err(err).Str("plan_key", planKey).Msg("failed to persist preferences")
		}
	}

	bp := h.Orchestrator.GenerateBlueprint(r.Context(), planKey, req.Preferences)
	writeJSON(w, http.StatusOK, struct {
		PlanKey   string    `json:"plan_key"`
		Blueprint Blueprint `json:"blueprint"`
	}{PlanKey: planKey, Blueprint: bp})
}

type themeImagesRequest struct {
	Preferences storage.Preferences `json:"preferences"`
	Count       int                 `json:"count"`
}

// GenerateThemeImages handles POST /api/blueprint/images.
func (h Handler) GenerateThemeImages(w http.ResponseWriter, r *http.Request) {
	var req themeImagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, h.Orchestrator.GenerateThemeImages(r.Context(), req.Preferences, req.Count))
}

// GetPreferences handles GET /api/preferences/{key}.
func (h Handler) GetPreferences(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	prefs, err := h.Store.GetPreferences(r.Context(), key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.Error(w, "preferences not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

// PutPreferences handles PUT /api/preferences/{key}.
func (h Handler) PutPreferences(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var prefs storage.Preferences
	if err := json.NewDecoder(r.Body).Decode(&prefs); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Store.SavePreferences(r.Context(), key, prefs); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, prefs)
}

// StreamEvents handles GET /api/events, streaming sub-task progress over
// SSE until the client disconnects.
func (h Handler) StreamEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch := h.Events.Subscribe()
	defer h.Events.Unsubscribe(ch)

	for {
		select {
		case <-r.Context().Done():
			return
		case evt := <-ch:
			payload, err := json.Marshal(evt)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
