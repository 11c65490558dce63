package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups health content items ("Nutrition", "First Aid", ...).
// Content items belong to exactly one category; deleting a category
// cascades to its content.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	Color       string    `json:"color"`
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Live aggregates computed by store queries, never cached.
	ActiveContentCount int `json:"active_content_count"`
	VideoCount         int `json:"video_count"`
	ArticleCount       int `json:"article_count"`
}
