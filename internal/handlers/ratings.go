package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"arogya/internal/middleware"
	"arogya/internal/models"
	"arogya/internal/store"
)

// Ratings groups the rating resource handlers. Ratings are append-only:
// created once per (content, IP) pair and never updated or deleted
// through the API.
type Ratings struct {
	ratings *store.RatingStore
	content *store.ContentStore
}

// NewRatings creates the rating handler group.
func NewRatings(ratings *store.RatingStore, content *store.ContentStore) *Ratings {
	return &Ratings{ratings: ratings, content: content}
}

// List returns the ratings for one content item, newest first.
// GET /api/ratings?content_id=...
func (h *Ratings) List(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("content_id")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "content_id query parameter is required")
		return
	}
	contentID, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid content_id")
		return
	}

	items, err := h.ratings.ListByContent(contentID)
	if err != nil {
		serverError(w, "list ratings", err)
		return
	}
	if items == nil {
		items = []models.Rating{}
	}
	writeJSON(w, http.StatusOK, items)
}

// Create submits a rating. The submitter IP is taken from the request
// (never the body); a second rating from the same IP for the same item
// is rejected as a conflict and the original is preserved.
// POST /api/ratings
func (h *Ratings) Create(w http.ResponseWriter, r *http.Request) {
	var in RatingInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if msg := checkRatingInput(&in); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	item, err := h.content.FindByID(in.ContentID)
	if err != nil {
		serverError(w, "find content", err)
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "content not found")
		return
	}

	created, err := h.ratings.Create(&models.Rating{
		ContentID: in.ContentID,
		UserIP:    middleware.ClientIP(r),
		Rating:    in.Rating,
		Comment:   in.Comment,
	})
	if errors.Is(err, store.ErrDuplicate) {
		writeError(w, http.StatusConflict, "this address has already rated this content")
		return
	}
	if err != nil {
		serverError(w, "create rating", err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}
