package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates that a record could not be located in the backing store.
var ErrNotFound = errors.New("record not found")

// Preferences holds everything a couple tells us about their wedding.
// It is read-only to the planning core; handlers create it from request
// payloads and the store persists it under a caller-supplied key.
type Preferences struct {
	PartnerOne  string        `json:"partner_one"`
	PartnerTwo  string        `json:"partner_two"`
	GuestCount  int           `json:"guest_count"`
	WeddingDate string        `json:"wedding_date"`
	Location    string        `json:"location"`
	BudgetRange string        `json:"budget_range"`
	Theme       ThemePrefs    `json:"theme"`
	Venue       VenuePrefs    `json:"venue"`
	Catering    CateringPrefs `json:"catering"`
	Photography PhotoPrefs    `json:"photography"`
}

// ThemePrefs captures the selected wedding theme and palette.
type ThemePrefs struct {
	Name   string `json:"name"`
	Colors string `json:"colors"`
	Season string `json:"season,omitempty"`
}

// VenuePrefs captures the desired venue profile.
type VenuePrefs struct {
	Type     string `json:"type"`
	Capacity int    `json:"capacity"`
	Setting  string `json:"setting,omitempty"`
}

// CateringPrefs captures cuisine and service choices.
type CateringPrefs struct {
	Cuisine  string `json:"cuisine"`
	MealType string `json:"meal_type"`
	Dietary  string `json:"dietary,omitempty"`
}

// PhotoPrefs captures photography style and coverage.
type PhotoPrefs struct {
	Style    string `json:"style"`
	Coverage string `json:"coverage"`
}

// BudgetItem is a single tracked expense line in a couple's budget.
type BudgetItem struct {
	ID        string    `json:"id"`
	PlanKey   string    `json:"plan_key"`
	Category  string    `json:"category"`
	Label     string    `json:"label"`
	Estimated int64     `json:"estimated"`
	Actual    int64     `json:"actual"`
	Paid      bool      `json:"paid"`
	CreatedAt time.Time `json:"created_at"`
}

// Store defines the persistence behaviors the application relies on.
type Store interface {
	SavePreferences(ctx context.Context, key string, prefs Preferences) error
	GetPreferences(ctx context.Context, key string) (Preferences, error)
	CreateBudgetItem(ctx context.Context, item BudgetItem) (BudgetItem, error)
	ListBudgetItems(ctx context.Context, planKey string) ([]BudgetItem, error)
	UpdateBudgetItem(ctx context.Context, item BudgetItem) (BudgetItem, error)
	DeleteBudgetItem(ctx context.Context, id string) error
	Close()
}

// NewStore selects a backing store based on whether a database URL is provided.
func NewStore(ctx context.Context, databaseURL string) (Store, error) {
	if databaseURL == "" {
		return NewInMemoryStore(), nil
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := ensureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

func ensureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS preferences (
        key TEXT PRIMARY KEY,
        record JSONB NOT NULL,
        updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`); err != nil {
		return fmt.Errorf("create preferences table: %w", err)
	}

	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS budget_items (
        id TEXT PRIMARY KEY,
        plan_key TEXT NOT NULL,
        category TEXT NOT NULL,
        label TEXT NOT NULL,
        estimated BIGINT NOT NULL DEFAULT 0,
        actual BIGINT NOT NULL DEFAULT 0,
        paid BOOLEAN NOT NULL DEFAULT false,
        created_at TIMESTAMPTZ NOT NULL DEFAULT now()
    )`); err != nil {
		return fmt.Errorf("create budget_items table: %w", err)
	}

	if _, err := pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS budget_items_plan_key_idx ON budget_items (plan_key)`); err != nil {
		return fmt.Errorf("index budget_items: %w", err)
	}

	return nil
}
