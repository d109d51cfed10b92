package schedule

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"shaadiAi/internal/config"
)

// Invite is one guest-facing email batch.
type Invite struct {
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}

// EmailClient posts invites to a JSON mail provider API.
type EmailClient struct {
	endpoint string
	apiKey   string
	from     string
	client   *http.Client
}

// NewEmailClient builds a client for the configured mail provider. Returns
// nil when no provider is configured.
func NewEmailClient(cfg config.ScheduleConfig) *EmailClient {
	if cfg.MailEndpoint == "" || cfg.MailAPIKey == "" {
		return nil
	}
	return &EmailClient{
		endpoint: cfg.MailEndpoint,
		apiKey:   cfg.MailAPIKey,
		from:     cfg.MailFrom,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

type mailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// SendInvite delivers one invite batch through the provider.
func (c *EmailClient) SendInvite(ctx context.Context, inv Invite) error {
	recipients := make([]string, 0, len(inv.To))
	for _, addr := range inv.To {
		if trimmed := strings.TrimSpace(addr); trimmed != "" {
			recipients = append(recipients, trimmed)
		}
	}
	if len(recipients) == 0 {
		return fmt.Errorf("invite has no recipients")
	}

	body, err := json.Marshal(mailPayload{
		From:    c.from,
		To:      recipients,
		Subject: inv.Subject,
		Text:    inv.Body,
	})
	if err != nil {
		return fmt.Errorf("marshal mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send mail request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("mail provider returned status %d: %s", resp.StatusCode, string(payload))
	}
	return nil
}
