package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/imgvet/imgvet/internal/model"
)

// ErrImageOwnerMissing indicates an append for a user ID that does not
// exist. The referential-integrity constraint on images.user_id surfaces
// this without an explicit existence check.
var ErrImageOwnerMissing = errors.New("image owner does not exist")

// AppendImage persists a new image record. Records are append-only; there
// are no update or delete operations.
func (r *Repository) AppendImage(ctx context.Context, record *model.ImageRecord) error {
	query := `
		INSERT INTO images (id, user_id, recognized_text, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query,
		record.ID,
		record.UserID,
		record.RecognizedText,
		record.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return ErrImageOwnerMissing
		}
		return fmt.Errorf("failed to append image record: %w", err)
	}

	return nil
}

// ListRecognizedTexts returns the recognized texts of all image records for
// a user in insertion order. Fingerprints are not stored; callers recompute
// them from these texts.
func (r *Repository) ListRecognizedTexts(ctx context.Context, userID string) ([]string, error) {
	query := `
		SELECT recognized_text
		FROM images
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recognized texts: %w", err)
	}
	defer rows.Close()

	var texts []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("failed to scan recognized text: %w", err)
		}
		texts = append(texts, text)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recognized texts: %w", err)
	}

	return texts, nil
}

// ListImages returns all image records for a user in insertion order.
func (r *Repository) ListImages(ctx context.Context, userID string) ([]*model.ImageRecord, error) {
	query := `
		SELECT id, user_id, recognized_text, created_at
		FROM images
		WHERE user_id = $1
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list images: %w", err)
	}
	defer rows.Close()

	var records []*model.ImageRecord
	for rows.Next() {
		var record model.ImageRecord
		if err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.RecognizedText,
			&record.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan image record: %w", err)
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read image records: %w", err)
	}

	return records, nil
}

// CountImages returns the number of image records stored for a user.
func (r *Repository) CountImages(ctx context.Context, userID string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM images
		WHERE user_id = $1
	`

	var count int64
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count image records: %w", err)
	}

	return count, nil
}
