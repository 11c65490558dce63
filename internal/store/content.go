package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"arogya/internal/models"
)

// ContentStore handles all content-related database operations, including
// the per-item counters and their backing analytics events.
type ContentStore struct {
	db *sql.DB
}

// NewContentStore creates a new ContentStore with the given database connection.
func NewContentStore(db *sql.DB) *ContentStore {
	return &ContentStore{db: db}
}

// contentColumns selects all content fields plus the owning category's
// name and slug.
const contentColumns = `
	ct.id, ct.category_id, ct.title, ct.slug, ct.description, ct.content_type,
	ct.url, ct.thumbnail_url, ct.embed_code, ct.author, ct.source, ct.duration,
	ct.language, ct.difficulty_level, ct.target_age_group,
	ct.is_featured, ct.is_active, ct.is_verified,
	ct.view_count, ct.like_count, ct.share_count,
	ct.tags, ct.meta_description, ct.published_at, ct.created_at, ct.updated_at,
	c.name, c.slug`

const contentFrom = ` FROM content ct JOIN categories c ON c.id = ct.category_id `

// scanContent scans a row into a Content struct.
func scanContent(scanner interface{ Scan(...any) error }) (*models.Content, error) {
	var ct models.Content
	err := scanner.Scan(
		&ct.ID, &ct.CategoryID, &ct.Title, &ct.Slug, &ct.Description, &ct.ContentType,
		&ct.URL, &ct.ThumbnailURL, &ct.EmbedCode, &ct.Author, &ct.Source, &ct.Duration,
		&ct.Language, &ct.Difficulty, &ct.TargetAgeGroup,
		&ct.IsFeatured, &ct.IsActive, &ct.IsVerified,
		&ct.ViewCount, &ct.LikeCount, &ct.ShareCount,
		&ct.Tags, &ct.MetaDescription, &ct.PublishedAt, &ct.CreatedAt, &ct.UpdatedAt,
		&ct.CategoryName, &ct.CategorySlug,
	)
	if err != nil {
		return nil, err
	}
	return &ct, nil
}

// likeEscaper neutralizes the ILIKE pattern metacharacters so a search
// term is always matched literally. Without it a query like "50%" would
// match any row containing "50".
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// orderings maps API ordering keys to SQL columns. Anything outside this
// whitelist is rejected by the handler before it reaches the store.
var orderings = map[string]string{
	"published_date": "ct.published_at",
	"view_count":     "ct.view_count",
	"like_count":     "ct.like_count",
	"created_at":     "ct.created_at",
}

// ValidOrdering reports whether key (optionally prefixed with "-" for
// descending) is an allowed ordering for content listings.
func ValidOrdering(key string) bool {
	_, ok := orderings[strings.TrimPrefix(key, "-")]
	return ok
}

// Filter narrows a content listing. Zero values mean "no restriction";
// the active-only scope is always applied.
type Filter struct {
	CategoryID   uuid.UUID // exact category match by id
	CategorySlug string    // exact category match by slug
	ContentType  string
	Difficulty   string
	AgeGroup     string
	Featured     *bool
	Search       string // case-insensitive substring over title/description/tags
	Ordering     string // whitelisted key, "-" prefix for descending
	Limit        int
}

// buildWhere renders the filter into SQL conditions and arguments,
// always including the active-only scope.
func (f Filter) buildWhere() (string, []any) {
	conds := []string{"ct.is_active"}
	var args []any

	add := func(cond string, val any) {
		args = append(args, val)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.CategoryID != uuid.Nil {
		add("ct.category_id = $%d", f.CategoryID)
	}
	if f.CategorySlug != "" {
		add("c.slug = $%d", f.CategorySlug)
	}
	if f.ContentType != "" {
		add("ct.content_type = $%d", f.ContentType)
	}
	if f.Difficulty != "" {
		add("ct.difficulty_level = $%d", f.Difficulty)
	}
	if f.AgeGroup != "" {
		add("ct.target_age_group = $%d", f.AgeGroup)
	}
	if f.Featured != nil {
		add("ct.is_featured = $%d", *f.Featured)
	}
	if f.Search != "" {
		pattern := "%" + escapeLike(f.Search) + "%"
		args = append(args, pattern)
		n := len(args)
		conds = append(conds, fmt.Sprintf(
			"(ct.title ILIKE $%d OR ct.description ILIKE $%d OR ct.tags ILIKE $%d)", n, n, n))
	}

	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderBy renders the ordering clause. The default listing order is
// newest published first, creation time breaking ties.
func (f Filter) orderBy() string {
	key := f.Ordering
	if key == "" {
		return " ORDER BY ct.published_at DESC, ct.created_at DESC"
	}
	dir := " ASC"
	if strings.HasPrefix(key, "-") {
		key = key[1:]
		dir = " DESC"
	}
	col, ok := orderings[key]
	if !ok {
		return " ORDER BY ct.published_at DESC, ct.created_at DESC"
	}
	return " ORDER BY " + col + dir + ", ct.created_at DESC"
}

// List returns active content items matching the filter.
func (s *ContentStore) List(f Filter) ([]models.Content, error) {
	where, args := f.buildWhere()
	query := "SELECT" + contentColumns + contentFrom + where + f.orderBy()
	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list content: %w", err)
	}
	defer rows.Close()

	var items []models.Content
	for rows.Next() {
		ct, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, *ct)
	}
	return items, rows.Err()
}

// ListByCategory returns a category's active content, featured items
// first, then newest published.
func (s *ContentStore) ListByCategory(categoryID uuid.UUID, f Filter) ([]models.Content, error) {
	f.CategoryID = categoryID
	where, args := f.buildWhere()
	query := "SELECT" + contentColumns + contentFrom + where +
		" ORDER BY ct.is_featured DESC, ct.published_at DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list content by category: %w", err)
	}
	defer rows.Close()

	var items []models.Content
	for rows.Next() {
		ct, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, *ct)
	}
	return items, rows.Err()
}

// ListPopular returns the most-viewed active items, likes breaking ties.
func (s *ContentStore) ListPopular(limit int) ([]models.Content, error) {
	query := "SELECT" + contentColumns + contentFrom +
		` WHERE ct.is_active
		ORDER BY ct.view_count DESC, ct.like_count DESC, ct.created_at DESC
		LIMIT $1`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("list popular content: %w", err)
	}
	defer rows.Close()

	var items []models.Content
	for rows.Next() {
		ct, err := scanContent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan content: %w", err)
		}
		items = append(items, *ct)
	}
	return items, rows.Err()
}

// FindByID retrieves an active content item by ID. Returns nil if no
// active item matches.
func (s *ContentStore) FindByID(id uuid.UUID) (*models.Content, error) {
	row := s.db.QueryRow(`SELECT`+contentColumns+contentFrom+`WHERE ct.id = $1 AND ct.is_active`, id)
	ct, err := scanContent(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find content by id: %w", err)
	}
	return ct, nil
}

// Create inserts a new content item and returns it with generated fields.
// The slug must already be set by the caller.
func (s *ContentStore) Create(ct *models.Content) (*models.Content, error) {
	row := s.db.QueryRow(`
		INSERT INTO content (category_id, title, slug, description, content_type,
		                     url, thumbnail_url, embed_code, author, source, duration,
		                     language, difficulty_level, target_age_group,
		                     is_featured, is_verified, tags, meta_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id, is_active, view_count, like_count, share_count,
		          published_at, created_at, updated_at
	`, ct.CategoryID, ct.Title, ct.Slug, ct.Description, ct.ContentType,
		ct.URL, ct.ThumbnailURL, ct.EmbedCode, ct.Author, ct.Source, ct.Duration,
		ct.Language, ct.Difficulty, ct.TargetAgeGroup,
		ct.IsFeatured, ct.IsVerified, ct.Tags, ct.MetaDescription)

	result := *ct
	err := row.Scan(&result.ID, &result.IsActive,
		&result.ViewCount, &result.LikeCount, &result.ShareCount,
		&result.PublishedAt, &result.CreatedAt, &result.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create content: %w", err)
	}
	return &result, nil
}

// Update modifies an existing content item using the restricted field
// set. Counters, slug, and timestamps are never client-writable.
func (s *ContentStore) Update(ct *models.Content) error {
	_, err := s.db.Exec(`
		UPDATE content SET
			category_id = $1, title = $2, description = $3, content_type = $4,
			url = $5, thumbnail_url = $6, embed_code = $7, author = $8,
			source = $9, duration = $10, language = $11,
			difficulty_level = $12, target_age_group = $13,
			is_featured = $14, is_active = $15, is_verified = $16,
			tags = $17, meta_description = $18, updated_at = NOW()
		WHERE id = $19
	`, ct.CategoryID, ct.Title, ct.Description, ct.ContentType,
		ct.URL, ct.ThumbnailURL, ct.EmbedCode, ct.Author,
		ct.Source, ct.Duration, ct.Language,
		ct.Difficulty, ct.TargetAgeGroup,
		ct.IsFeatured, ct.IsActive, ct.IsVerified,
		ct.Tags, ct.MetaDescription, ct.ID)
	if err != nil {
		return fmt.Errorf("update content: %w", err)
	}
	return nil
}

// Delete removes a content item by ID. Its ratings and view events are
// removed by ON DELETE CASCADE.
func (s *ContentStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM content WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete content: %w", err)
	}
	return nil
}

// IncrementView records one view event and bumps the view counter in a
// single transaction: the counter update only happens if the event
// insert succeeded, so the two can never diverge. Returns the new
// counter value, or ErrNoRows wrapped if the item does not exist.
func (s *ContentStore) IncrementView(id uuid.UUID, userIP, userAgent string) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin view tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO content_views (content_id, user_ip, user_agent)
		VALUES ($1, $2, $3)
	`, id, userIP, userAgent)
	if err != nil {
		return 0, fmt.Errorf("insert view event: %w", err)
	}

	var count int
	err = tx.QueryRow(`
		UPDATE content SET view_count = view_count + 1
		WHERE id = $1
		RETURNING view_count
	`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("increment view count: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit view tx: %w", err)
	}
	return count, nil
}

// IncrementLike bumps the like counter atomically and returns the new value.
func (s *ContentStore) IncrementLike(id uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(`
		UPDATE content SET like_count = like_count + 1
		WHERE id = $1
		RETURNING like_count
	`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("increment like count: %w", err)
	}
	return count, nil
}

// IncrementShare bumps the share counter atomically and returns the new value.
func (s *ContentStore) IncrementShare(id uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(`
		UPDATE content SET share_count = share_count + 1
		WHERE id = $1
		RETURNING share_count
	`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("increment share count: %w", err)
	}
	return count, nil
}

// CountViewEvents returns the number of recorded view events for a
// content item.
func (s *ContentStore) CountViewEvents(id uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM content_views WHERE content_id = $1`, id).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count view events: %w", err)
	}
	return count, nil
}

// Stats is a point-in-time snapshot of catalog-wide aggregates over
// active content. Nothing here is cached; every call recomputes.
type Stats struct {
	TotalContent    int              `json:"total_content"`
	TotalVideos     int              `json:"total_videos"`
	TotalArticles   int              `json:"total_articles"`
	TotalViews      int              `json:"total_views"`
	FeaturedContent int              `json:"featured_content"`
	CategoriesCount int              `json:"categories_count"`
	RecentContent   []models.Content `json:"-"`
}

// Stats computes the catalog statistics snapshot, including the five
// most recently created active items.
func (s *ContentStore) Stats() (*Stats, error) {
	var st Stats
	err := s.db.QueryRow(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE content_type = 'video'),
			COUNT(*) FILTER (WHERE content_type = 'article'),
			COALESCE(SUM(view_count), 0),
			COUNT(*) FILTER (WHERE is_featured),
			(SELECT COUNT(*) FROM categories WHERE is_active)
		FROM content
		WHERE is_active
	`).Scan(&st.TotalContent, &st.TotalVideos, &st.TotalArticles,
		&st.TotalViews, &st.FeaturedContent, &st.CategoriesCount)
	if err != nil {
		return nil, fmt.Errorf("content stats: %w", err)
	}

	recent, err := s.List(Filter{Ordering: "-created_at", Limit: 5})
	if err != nil {
		return nil, err
	}
	st.RecentContent = recent
	return &st, nil
}
