package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating is a 1-5 star rating left for a content item. The submitter's
// IP address acts as a pseudo-identity: each (content, IP) pair may rate
// at most once, enforced by a database unique constraint.
type Rating struct {
	ID        uuid.UUID `json:"id"`
	ContentID uuid.UUID `json:"content_id"`
	UserIP    string    `json:"-"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// ContentView is one append-only view event recorded when a client calls
// the increment-view action.
type ContentView struct {
	ID        uuid.UUID `json:"id"`
	ContentID uuid.UUID `json:"content_id"`
	UserIP    string    `json:"user_ip"`
	UserAgent string    `json:"user_agent"`
	ViewedAt  time.Time `json:"viewed_at"`
}
