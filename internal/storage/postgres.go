package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists preferences and budget items in PostgreSQL.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// SavePreferences upserts the record under the given key.
func (s *PostgresStore) SavePreferences(ctx context.Context, key string, prefs Preferences) error {
	record, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	if _, err := s.pool.Exec(ctx,
		`INSERT INTO preferences (key, record, updated_at) VALUES ($1, $2, now())
         ON CONFLICT (key) DO UPDATE SET record = EXCLUDED.record, updated_at = now()`,
		key, record); err != nil {
		return fmt.Errorf("upsert preferences: %w", err)
	}
	return nil
}

// GetPreferences loads the record stored under the given key.
func (s *PostgresStore) GetPreferences(ctx context.Context, key string) (Preferences, error) {
	var record []byte
	err := s.pool.QueryRow(ctx, `SELECT record FROM preferences WHERE key = $1`, key).Scan(&record)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Preferences{}, ErrNotFound
		}
		return Preferences{}, fmt.Errorf("query preferences: %w", err)
	}

	var prefs Preferences
	if err := json.Unmarshal(record, &prefs); err != nil {
		return Preferences{}, fmt.Errorf("unmarshal preferences: %w", err)
	}
	return prefs, nil
}

// CreateBudgetItem inserts a budget item, assigning an ID when absent.
func (s *PostgresStore) CreateBudgetItem(ctx context.Context, item BudgetItem) (BudgetItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	if _, err := s.pool.Exec(ctx,
		`INSERT INTO budget_items (id, plan_key, category, label, estimated, actual, paid, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		item.ID, item.PlanKey, item.Category, item.Label, item.Estimated, item.Actual, item.Paid, item.CreatedAt); err != nil {
		return BudgetItem{}, fmt.Errorf("insert budget item: %w", err)
	}
	return item, nil
}

// ListBudgetItems returns items belonging to the given plan, oldest first.
func (s *PostgresStore) ListBudgetItems(ctx context.Context, planKey string) ([]BudgetItem, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, plan_key, category, label, estimated, actual, paid, created_at
         FROM budget_items WHERE plan_key = $1 ORDER BY created_at`, planKey)
	if err != nil {
		return nil, fmt.Errorf("query budget items: %w", err)
	}
	defer rows.Close()

	items := []BudgetItem{}
	for rows.Next() {
		var item BudgetItem
		if err := rows.Scan(&item.ID, &item.PlanKey, &item.Category, &item.Label,
			&item.Estimated, &item.Actual, &item.Paid, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan budget item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateBudgetItem updates the mutable fields of an item.
func (s *PostgresStore) UpdateBudgetItem(ctx context.Context, item BudgetItem) (BudgetItem, error) {
	tag, err := s.pool.Exec(ctx,
		`UPDATE budget_items SET category = $2, label = $3, estimated = $4, actual = $5, paid = $6
         WHERE id = $1`,
		item.ID, item.Category, item.Label, item.Estimated, item.Actual, item.Paid)
	if err != nil {
		return BudgetItem{}, fmt.Errorf("update budget item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return BudgetItem{}, ErrNotFound
	}

	err = s.pool.QueryRow(ctx,
		`SELECT id, plan_key, category, label, estimated, actual, paid, created_at FROM budget_items WHERE id = $1`,
		item.ID).Scan(&item.ID, &item.PlanKey, &item.Category, &item.Label, &item.Estimated, &item.Actual, &item.Paid, &item.CreatedAt)
	if err != nil {
		return BudgetItem{}, fmt.Errorf("reload budget item: %w", err)
	}
	return item, nil
}

// DeleteBudgetItem removes an item by ID.
func (s *PostgresStore) DeleteBudgetItem(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM budget_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete budget item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Close releases database resources.
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}
