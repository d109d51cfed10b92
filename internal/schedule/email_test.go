package schedule

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shaadiAi/internal/config"
)

func testEmailClient(endpoint string) *EmailClient {
	return &EmailClient{
		endpoint: endpoint,
		apiKey:   "test-key",
		from:     "planner@shaadiai.app",
		client:   &http.Client{Timeout: time.Second},
	}
}

func TestSendInvite(t *testing.T) {
	var got mailPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := testEmailClient(srv.URL)
	err := client.SendInvite(context.Background(), Invite{
		To:      []string{"guest@example.com", " ", "family@example.com"},
		Subject: "Wedding of Aarav and Diya",
		Body:    "Join us in Jaipur this November.",
	})
	require.NoError(t, err)
	assert.Equal(t, "planner@shaadiai.app", got.From)
	assert.Equal(t, []string{"guest@example.com", "family@example.com"}, got.To, "blank recipients are dropped")
	assert.Equal(t, "Wedding of Aarav and Diya", got.Subject)
}

func TestSendInviteProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid sender domain", http.StatusUnprocessableEntity)
	}))
	defer srv.Close()

	err := testEmailClient(srv.URL).SendInvite(context.Background(), Invite{To: []string{"guest@example.com"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 422")
	assert.Contains(t, err.Error(), "invalid sender domain")
}

func TestSendInviteNoRecipients(t *testing.T) {
	err := testEmailClient("http://unused.invalid").SendInvite(context.Background(), Invite{To: []string{"  "}})
	assert.Error(t, err)
}

func TestNewEmailClientUnconfigured(t *testing.T) {
	assert.Nil(t, NewEmailClient(config.ScheduleConfig{}))
	assert.Nil(t, NewEmailClient(config.ScheduleConfig{MailEndpoint: "https://mail.example"}))
	assert.NotNil(t, NewEmailClient(config.ScheduleConfig{
		MailEndpoint: "https://mail.example",
		MailAPIKey:   "k",
		MailFrom:     "planner@shaadiai.app",
	}))
}
