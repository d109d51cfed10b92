package schedule

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// Handler bundles the optional calendar and mail integrations. A nil client
// means the corresponding feature is not configured.
type Handler struct {
	Calendar *CalendarClient
	Mail     *EmailClient
}

// CreateEvent handles POST /api/schedule/events.
func (h Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	if h.Calendar == nil {
		http.Error(w, "calendar integration not configured", http.StatusServiceUnavailable)
		return
	}

	var in EventInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(in.Title) == "" || in.Start.IsZero() {
		http.Error(w, "title and start are required", http.StatusBadRequest)
		return
	}

	id, err := h.Calendar.CreateEvent(r.Context(), in)
	if err != nil {
		log.Error().Err(err).Str("title", in.Title).Msg("failed to create calendar event")
		http.Error(w, "failed to create calendar event", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusCreated, struct {
		EventID string `json:"event_id"`
	}{EventID: id})
}

// SendInvites handles POST /api/schedule/invites.
func (h Handler) SendInvites(w http.ResponseWriter, r *http.Request) {
	if h.Mail == nil {
		http.Error(w, "mail integration not configured", http.StatusServiceUnavailable)
		return
	}

	var inv Invite
	if err := json.NewDecoder(r.Body).Decode(&inv); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(inv.To) == 0 {
		http.Error(w, "at least one recipient is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(inv.Subject) == "" {
		inv.Subject = "You're invited!"
	}

	if err := h.Mail.SendInvite(r.Context(), inv); err != nil {
		log.Error().Err(err).Int("recipients", len(inv.To)).Msg("failed to send invites")
		http.Error(w, "failed to send invites", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusAccepted, struct {
		Sent int `json:"sent"`
	}{Sent: len(inv.To)})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
