package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"arogya/internal/models"
)

// RatingStore records 1-5 star ratings keyed by (content item, client IP).
type RatingStore struct {
	db *sql.DB
}

// NewRatingStore returns a new RatingStore.
func NewRatingStore(db *sql.DB) *RatingStore {
	return &RatingStore{db: db}
}

// Create persists a rating. Returns ErrDuplicate when the same IP has
// already rated this content item; the original rating is preserved.
func (s *RatingStore) Create(r *models.Rating) (*models.Rating, error) {
	row := s.db.QueryRow(`
		INSERT INTO ratings (content_id, user_ip, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, r.ContentID, r.UserIP, r.Rating, r.Comment)

	result := *r
	err := row.Scan(&result.ID, &result.CreatedAt)
	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("create rating: %w", err)
	}
	return &result, nil
}

// ListByContent returns all ratings for one content item, newest first.
func (s *RatingStore) ListByContent(contentID uuid.UUID) ([]models.Rating, error) {
	rows, err := s.db.Query(`
		SELECT id, content_id, host(user_ip), rating, comment, created_at
		FROM ratings
		WHERE content_id = $1
		ORDER BY created_at DESC
	`, contentID)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()

	var items []models.Rating
	for rows.Next() {
		var r models.Rating
		if err := rows.Scan(&r.ID, &r.ContentID, &r.UserIP, &r.Rating, &r.Comment, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

// Summary returns the arithmetic mean and count of a content item's
// ratings. The average is 0 when no ratings exist, never null.
func (s *RatingStore) Summary(contentID uuid.UUID) (avg float64, count int, err error) {
	err = s.db.QueryRow(`
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM ratings
		WHERE content_id = $1
	`, contentID).Scan(&avg, &count)
	if err != nil {
		return 0, 0, fmt.Errorf("rating summary: %w", err)
	}
	return avg, count, nil
}
