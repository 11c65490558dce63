package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"arogya/internal/models"
	"arogya/internal/presenter"
	"arogya/internal/slug"
	"arogya/internal/store"
)

// Categories groups the category resource handlers.
type Categories struct {
	categories *store.CategoryStore
	content    *store.ContentStore
}

// NewCategories creates the category handler group.
func NewCategories(categories *store.CategoryStore, content *store.ContentStore) *Categories {
	return &Categories{categories: categories, content: content}
}

// List returns all active categories with their live content counts.
// GET /api/categories
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.categories.ListActive()
	if err != nil {
		serverError(w, "list categories", err)
		return
	}
	writeJSON(w, http.StatusOK, presenter.NewCategorySummaries(items))
}

// Featured returns active categories having at least one active,
// featured content item.
// GET /api/categories/featured
func (h *Categories) Featured(w http.ResponseWriter, r *http.Request) {
	items, err := h.categories.ListFeatured()
	if err != nil {
		serverError(w, "list featured categories", err)
		return
	}
	writeJSON(w, http.StatusOK, presenter.NewCategorySummaries(items))
}

// Get returns one active category by slug with its content nested,
// featured items first.
// GET /api/categories/{slug}
func (h *Categories) Get(w http.ResponseWriter, r *http.Request) {
	category, err := h.categories.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		serverError(w, "find category", err)
		return
	}
	if category == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	content, err := h.content.ListByCategory(category.ID, store.Filter{})
	if err != nil {
		serverError(w, "list category content", err)
		return
	}
	writeJSON(w, http.StatusOK, presenter.NewCategoryDetail(category, content))
}

// Content returns a category's active content, filterable by type,
// difficulty, age group, and featured flag.
// GET /api/categories/{slug}/content
func (h *Categories) Content(w http.ResponseWriter, r *http.Request) {
	category, err := h.categories.FindBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		serverError(w, "find category", err)
		return
	}
	if category == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	q := r.URL.Query()
	f := store.Filter{
		ContentType: q.Get("type"),
		Difficulty:  q.Get("difficulty"),
		AgeGroup:    q.Get("age_group"),
	}
	if q.Get("featured") == "true" {
		featured := true
		f.Featured = &featured
	}

	content, err := h.content.ListByCategory(category.ID, f)
	if err != nil {
		serverError(w, "list category content", err)
		return
	}
	writeJSON(w, http.StatusOK, presenter.NewContentLists(content))
}

// Create adds a new category, deriving the slug from the name when the
// client omits one.
// POST /api/categories
func (h *Categories) Create(w http.ResponseWriter, r *http.Request) {
	var in CategoryInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if msg := checkCategoryInput(&in); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	category := &models.Category{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: in.Description,
		Icon:        in.Icon,
		Color:       in.Color,
		IsActive:    true,
		SortOrder:   in.Order,
	}
	if category.Slug == "" {
		category.Slug = slug.Generate(category.Name)
	}
	if category.Color == "" {
		category.Color = "#4CAF50"
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}

	created, err := h.categories.Create(category)
	if errors.Is(err, store.ErrDuplicate) {
		writeError(w, http.StatusConflict, "a category with this name or slug already exists")
		return
	}
	if err != nil {
		serverError(w, "create category", err)
		return
	}
	writeJSON(w, http.StatusCreated, presenter.NewCategorySummary(created))
}

// Update modifies a category's writable fields. The slug stays stable.
// PUT /api/categories/{id}
func (h *Categories) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	category, err := h.categories.FindByID(id)
	if err != nil {
		serverError(w, "find category", err)
		return
	}
	if category == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	var in CategoryInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if msg := checkCategoryInput(&in); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	category.Name = in.Name
	category.Description = in.Description
	category.Icon = in.Icon
	category.SortOrder = in.Order
	if in.Color != "" {
		category.Color = in.Color
	}
	if in.IsActive != nil {
		category.IsActive = *in.IsActive
	}

	err = h.categories.Update(category)
	if errors.Is(err, store.ErrDuplicate) {
		writeError(w, http.StatusConflict, "a category with this name already exists")
		return
	}
	if err != nil {
		serverError(w, "update category", err)
		return
	}

	updated, err := h.categories.FindByID(id)
	if err != nil || updated == nil {
		serverError(w, "reload category", err)
		return
	}
	writeJSON(w, http.StatusOK, presenter.NewCategorySummary(updated))
}

// Delete removes a category and, by cascade, all its content along with
// that content's ratings and view events.
// DELETE /api/categories/{id}
func (h *Categories) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	category, err := h.categories.FindByID(id)
	if err != nil {
		serverError(w, "find category", err)
		return
	}
	if category == nil {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}

	if err := h.categories.Delete(id); err != nil {
		serverError(w, "delete category", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
