package schedule

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"shaadiAi/internal/config"
)

// EventInput describes one planning milestone to place on the couple's
// shared calendar.
type EventInput struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

// CalendarClient wraps the Google Calendar API for milestone scheduling.
type CalendarClient struct {
	svc        *calendar.Service
	calendarID string
}

// NewCalendarClient builds a client from service-account credentials.
// Returns nil without error when no calendar is configured so the caller
// can leave the feature disabled.
func NewCalendarClient(ctx context.Context, cfg config.ScheduleConfig) (*CalendarClient, error) {
	if cfg.CalendarID == "" || cfg.CalendarCredentials == "" {
		return nil, nil
	}
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsJSON([]byte(cfg.CalendarCredentials)),
		option.WithScopes(calendar.CalendarEventsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create calendar service: %w", err)
	}
	return &CalendarClient{svc: svc, calendarID: cfg.CalendarID}, nil
}

// CreateEvent inserts the milestone and returns the provider event ID.
func (c *CalendarClient) CreateEvent(ctx context.Context, in EventInput) (string, error) {
	if in.End.Before(in.Start) || in.End.Equal(in.Start) {
		in.End = in.Start.Add(time.Hour)
	}
	evt := &calendar.Event{
		Summary:     in.Title,
		Description: in.Description,
		Location:    in.Location,
		Start:       &calendar.EventDateTime{DateTime: in.Start.Format(time.RFC3339)},
		End:         &calendar.EventDateTime{DateTime: in.End.Format(time.RFC3339)},
	}
	created, err := c.svc.Events.Insert(c.calendarID, evt).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert calendar event: %w", err)
	}
	return created.Id, nil
}
