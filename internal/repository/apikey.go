package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/imgvet/imgvet/internal/model"
)

// CreateAPIKey inserts a new API key into the database.
func (r *Repository) CreateAPIKey(ctx context.Context, key *model.APIKey) error {
	query := `
		INSERT INTO api_keys (id, key_prefix, key_hash, label, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		key.ID,
		key.KeyPrefix,
		key.KeyHash,
		key.Label,
		key.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to create API key: %w", err)
	}

	return nil
}

// GetAPIKeysByPrefix retrieves non-revoked API keys matching a visible
// prefix. Multiple keys can share a prefix; the caller verifies the full
// key against each candidate's hash.
func (r *Repository) GetAPIKeysByPrefix(ctx context.Context, prefix string) ([]*model.APIKey, error) {
	query := `
		SELECT id, key_prefix, key_hash, label, revoked_at, last_used_at, created_at
		FROM api_keys
		WHERE key_prefix = $1 AND revoked_at IS NULL
	`

	rows, err := r.pool.Query(ctx, query, prefix)
	if err != nil {
		return nil, fmt.Errorf("failed to get API keys by prefix: %w", err)
	}
	defer rows.Close()

	var keys []*model.APIKey
	for rows.Next() {
		var key model.APIKey
		if err := rows.Scan(
			&key.ID,
			&key.KeyPrefix,
			&key.KeyHash,
			&key.Label,
			&key.RevokedAt,
			&key.LastUsedAt,
			&key.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan API key: %w", err)
		}
		keys = append(keys, &key)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read API keys: %w", err)
	}

	return keys, nil
}

// UpdateAPIKeyLastUsed records when a key last authenticated a request.
func (r *Repository) UpdateAPIKeyLastUsed(ctx context.Context, keyID string) error {
	query := `
		UPDATE api_keys
		SET last_used_at = $2
		WHERE id = $1
	`

	if _, err := r.pool.Exec(ctx, query, keyID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to update API key last_used_at: %w", err)
	}

	return nil
}
