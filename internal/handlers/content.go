package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"arogya/internal/middleware"
	"arogya/internal/models"
	"arogya/internal/presenter"
	"arogya/internal/search"
	"arogya/internal/slug"
	"arogya/internal/store"
)

// Curated list sizes for the featured/popular/recent endpoints.
const (
	featuredLimit = 10
	popularLimit  = 20
	recentLimit   = 20
)

// Content groups the content resource handlers, including the counter
// actions, curated lists, ranked search, and the stats snapshot.
type Content struct {
	content    *store.ContentStore
	categories *store.CategoryStore
	ratings    *store.RatingStore
	searcher   *search.Searcher
}

// NewContent creates the content handler group.
func NewContent(content *store.ContentStore, categories *store.CategoryStore, ratings *store.RatingStore, searcher *search.Searcher) *Content {
	return &Content{content: content, categories: categories, ratings: ratings, searcher: searcher}
}

// List returns active content filtered and ordered by query parameters.
// GET /api/content?category=&type=&difficulty=&age_group=&featured=&search=&ordering=
func (h *Content) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if ord := q.Get("ordering"); ord != "" && !store.ValidOrdering(ord) {
		writeError(w, http.StatusBadRequest, "unknown ordering "+ord)
		return
	}

	f := store.Filter{
		CategorySlug: q.Get("category"),
		ContentType:  q.Get("type"),
		Difficulty:   q.Get("difficulty"),
		AgeGroup:     q.Get("age_group"),
		Search:       q.Get("search"),
		Ordering:     q.Get("ordering"),
	}
	switch q.Get("featured") {
	case "true":
		v := true
		f.Featured = &v
	case "false":
		v := false
		f.Featured = &v
	}

	items, err := h.content.List(f)
	if err != nil {
		serverError(w, "list content", err)
		return
	}
	writeJSON(w, http.StatusOK, presenter.NewContentLists(items))
}

// Create adds a new content item using the restricted field set. The
// slug is derived from the title; counters start at zero.
// POST /api/content
func (h *Content) Create(w http.ResponseWriter, r *http.Request) {
	var in ContentInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if msg := checkContentInput(&in); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	category, err := h.categories.FindByID(in.CategoryID)
	if err != nil {
		serverError(w, "find category", err)
		return
	}
	if category == nil {
		writeError(w, http.StatusBadRequest, "unknown category_id")
		return
	}

	item := contentFromInput(&in)
	item.Slug = slug.Generate(in.Title)

	created, err := h.content.Create(item)
	if err != nil {
		serverError(w, "create content", err)
		return
	}
	created.CategoryName = category.Name
	created.CategorySlug = category.Slug

	avg, total, err := h.ratings.Summary(created.ID)
	if err != nil {
		serverError(w, "rating summary", err)
		return
	}
	writeJSON(w, http.StatusCreated, presenter.NewContentDetail(created, avg, total))
}

// Get returns one active content item with its rating summary.
// GET /api/content/{id}
func (h *Content) Get(w http.ResponseWriter, r *http.Request) {
	item, ok := h.findContent(w, r)
	if !ok {
		return
	}

	avg, total, err := h.ratings.Summary(item.ID)
	if err != nil {
		serverError(w, "rating summary", err)
		return
	}
	writeJSON(w, http.StatusOK, presenter.NewContentDetail(item, avg, total))
}

// Update replaces a content item's writable fields. Counters, slug, and
// timestamps are untouched.
// PUT /api/content/{id}
func (h *Content) Update(w http.ResponseWriter, r *http.Request) {
	item, ok := h.findContent(w, r)
	if !ok {
		return
	}

	var in ContentInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	h.saveUpdate(w, item, &in)
}

// Patch updates only the fields present in the body; everything else
// keeps its stored value. The merged result passes the full validation.
// PATCH /api/content/{id}
func (h *Content) Patch(w http.ResponseWriter, r *http.Request) {
	item, ok := h.findContent(w, r)
	if !ok {
		return
	}

	var patch ContentPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	in := inputFromContent(item)
	patch.apply(&in)
	h.saveUpdate(w, item, &in)
}

// saveUpdate validates the (full or merged) input and persists it onto
// the existing item, then responds with the reloaded detail.
func (h *Content) saveUpdate(w http.ResponseWriter, item *models.Content, in *ContentInput) {
	if msg := checkContentInput(in); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	category, err := h.categories.FindByID(in.CategoryID)
	if err != nil {
		serverError(w, "find category", err)
		return
	}
	if category == nil {
		writeError(w, http.StatusBadRequest, "unknown category_id")
		return
	}

	updated := contentFromInput(in)
	updated.ID = item.ID
	updated.IsActive = item.IsActive
	if in.IsActive != nil {
		updated.IsActive = *in.IsActive
	}

	if err := h.content.Update(updated); err != nil {
		serverError(w, "update content", err)
		return
	}

	// Reload for server-managed fields; the item may have deactivated
	// itself out of the active scope.
	reloaded, err := h.content.FindByID(item.ID)
	if err != nil {
		serverError(w, "reload content", err)
		return
	}
	if reloaded == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	avg, total, err := h.ratings.Summary(reloaded.ID)
	if err != nil {
		serverError(w, "rating summary", err)
		return
	}
	writeJSON(w, http.StatusOK, presenter.NewContentDetail(reloaded, avg, total))
}

// Delete hard-deletes a content item; its ratings and view events go
// with it by cascade.
// DELETE /api/content/{id}
func (h *Content) Delete(w http.ResponseWriter, r *http.Request) {
	item, ok := h.findContent(w, r)
	if !ok {
		return
	}
	if err := h.content.Delete(item.ID); err != nil {
		serverError(w, "delete content", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// IncrementView records one view event and bumps the view counter as a
// single unit, returning the new counter value.
// POST /api/content/{id}/increment_view
func (h *Content) IncrementView(w http.ResponseWriter, r *http.Request) {
	item, ok := h.findContent(w, r)
	if !ok {
		return
	}

	count, err := h.content.IncrementView(item.ID, middleware.ClientIP(r), r.UserAgent())
	if err != nil {
		serverError(w, "increment view", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"view_count": count})
}

// Like bumps the like counter unconditionally; likes track no identity.
// POST /api/content/{id}/like
func (h *Content) Like(w http.ResponseWriter, r *http.Request) {
	item, ok := h.findContent(w, r)
	if !ok {
		return
	}

	count, err := h.content.IncrementLike(item.ID)
	if err != nil {
		serverError(w, "increment like", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"like_count": count})
}

// Share bumps the share counter unconditionally.
// POST /api/content/{id}/share
func (h *Content) Share(w http.ResponseWriter, r *http.Request) {
	item, ok := h.findContent(w, r)
	if !ok {
		return
	}

	count, err := h.content.IncrementShare(item.ID)
	if err != nil {
		serverError(w, "increment share", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"share_count": count})
}

// Featured returns the ten newest-published featured items.
// GET /api/content/featured
func (h *Content) Featured(w http.ResponseWriter, r *http.Request) {
	featured := true
	items, err := h.content.List(store.Filter{
		Featured: &featured,
		Ordering: "-published_date",
		Limit:    featuredLimit,
	})
	if err != nil {
		serverError(w, "list featured content", err)
		return
	}
	writeJSON(w, http.StatusOK, presenter.NewContentLists(items))
}

// Popular returns the twenty most-viewed items, likes breaking ties.
// GET /api/content/popular
func (h *Content) Popular(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.ListPopular(popularLimit)
	if err != nil {
		serverError(w, "list popular content", err)
		return
	}
	writeJSON(w, http.StatusOK, presenter.NewContentLists(items))
}

// Recent returns the twenty most recently created items.
// GET /api/content/recent
func (h *Content) Recent(w http.ResponseWriter, r *http.Request) {
	items, err := h.content.List(store.Filter{
		Ordering: "-created_at",
		Limit:    recentLimit,
	})
	if err != nil {
		serverError(w, "list recent content", err)
		return
	}
	writeJSON(w, http.StatusOK, presenter.NewContentLists(items))
}

// Search runs the relevance-ranked free-text search. The q parameter is
// required; category and type narrow the candidate set.
// GET /api/content/search?q=&category=&type=
func (h *Content) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	query := q.Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "search query is required")
		return
	}

	results, err := h.searcher.Search(query, q.Get("category"), q.Get("type"))
	if err != nil {
		serverError(w, "search content", err)
		return
	}
	writeJSON(w, http.StatusOK, presenter.NewSearchResults(results))
}

// Stats returns the point-in-time catalog aggregates.
// GET /api/content/stats
func (h *Content) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.content.Stats()
	if err != nil {
		serverError(w, "content stats", err)
		return
	}
	writeJSON(w, http.StatusOK, presenter.NewStatsSnapshot(st))
}

// findContent parses the id URL parameter and loads the active item,
// writing the appropriate error response on failure.
func (h *Content) findContent(w http.ResponseWriter, r *http.Request) (*models.Content, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid content id")
		return nil, false
	}

	item, err := h.content.FindByID(id)
	if err != nil {
		serverError(w, "find content", err)
		return nil, false
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "content not found")
		return nil, false
	}
	return item, true
}

// inputFromContent projects a stored item back into the writable field
// set, the starting point for a partial update merge.
func inputFromContent(c *models.Content) ContentInput {
	active := c.IsActive
	return ContentInput{
		CategoryID:      c.CategoryID,
		Title:           c.Title,
		Description:     c.Description,
		ContentType:     string(c.ContentType),
		URL:             c.URL,
		ThumbnailURL:    c.ThumbnailURL,
		EmbedCode:       c.EmbedCode,
		Author:          c.Author,
		Source:          c.Source,
		Duration:        c.Duration,
		Language:        c.Language,
		Difficulty:      string(c.Difficulty),
		TargetAgeGroup:  string(c.TargetAgeGroup),
		IsFeatured:      c.IsFeatured,
		IsActive:        &active,
		IsVerified:      c.IsVerified,
		Tags:            c.Tags,
		MetaDescription: c.MetaDescription,
	}
}

// contentFromInput maps the writable payload onto a model, applying the
// same defaults the original catalog used.
func contentFromInput(in *ContentInput) *models.Content {
	item := &models.Content{
		CategoryID:      in.CategoryID,
		Title:           in.Title,
		Description:     in.Description,
		ContentType:     models.ContentType(in.ContentType),
		URL:             in.URL,
		ThumbnailURL:    in.ThumbnailURL,
		EmbedCode:       in.EmbedCode,
		Author:          in.Author,
		Source:          in.Source,
		Duration:        in.Duration,
		Language:        in.Language,
		Difficulty:      models.Difficulty(in.Difficulty),
		TargetAgeGroup:  models.AgeGroup(in.TargetAgeGroup),
		IsFeatured:      in.IsFeatured,
		IsVerified:      in.IsVerified,
		Tags:            in.Tags,
		MetaDescription: in.MetaDescription,
	}
	if item.Language == "" {
		item.Language = "en"
	}
	if item.Difficulty == "" {
		item.Difficulty = models.DifficultyAll
	}
	if item.TargetAgeGroup == "" {
		item.TargetAgeGroup = models.AgeGroupAllAges
	}
	return item
}
