package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"arogya/internal/models"
)

// CategoryStore manages health categories in the database.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// categoryColumns selects the raw category fields plus the three live
// content aggregates. The counts are correlated subqueries over the
// content table so they can never go stale after a content item's
// active flag flips.
const categoryColumns = `
	c.id, c.name, c.slug, c.description, c.icon, c.color,
	c.is_active, c.sort_order, c.created_at, c.updated_at,
	(SELECT COUNT(*) FROM content ct WHERE ct.category_id = c.id AND ct.is_active) AS active_content_count,
	(SELECT COUNT(*) FROM content ct WHERE ct.category_id = c.id AND ct.is_active AND ct.content_type = 'video') AS video_count,
	(SELECT COUNT(*) FROM content ct WHERE ct.category_id = c.id AND ct.is_active AND ct.content_type = 'article') AS article_count`

// scanCategory scans a row into a Category struct.
func scanCategory(scanner interface{ Scan(...any) error }) (*models.Category, error) {
	var c models.Category
	err := scanner.Scan(
		&c.ID, &c.Name, &c.Slug, &c.Description, &c.Icon, &c.Color,
		&c.IsActive, &c.SortOrder, &c.CreatedAt, &c.UpdatedAt,
		&c.ActiveContentCount, &c.VideoCount, &c.ArticleCount,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListActive returns all active categories ordered by sort order then name.
func (s *CategoryStore) ListActive() ([]models.Category, error) {
	rows, err := s.db.Query(`
		SELECT ` + categoryColumns + `
		FROM categories c
		WHERE c.is_active
		ORDER BY c.sort_order, c.name
	`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}

// FindBySlug retrieves an active category by its slug. Returns nil if no
// active category matches.
func (s *CategoryStore) FindBySlug(slug string) (*models.Category, error) {
	row := s.db.QueryRow(`
		SELECT `+categoryColumns+`
		FROM categories c
		WHERE c.slug = $1 AND c.is_active
	`, slug)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by slug: %w", err)
	}
	return c, nil
}

// FindByID retrieves a category by ID regardless of active flag.
// Returns nil if not found.
func (s *CategoryStore) FindByID(id uuid.UUID) (*models.Category, error) {
	row := s.db.QueryRow(`
		SELECT `+categoryColumns+`
		FROM categories c
		WHERE c.id = $1
	`, id)
	c, err := scanCategory(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return c, nil
}

// Create inserts a new category and returns it. The slug must already be
// set by the caller (derived from the name when the client omits it).
// Returns ErrDuplicate when the name or slug is already taken.
func (s *CategoryStore) Create(c *models.Category) (*models.Category, error) {
	row := s.db.QueryRow(`
		INSERT INTO categories (name, slug, description, icon, color, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, c.Name, c.Slug, c.Description, c.Icon, c.Color, c.IsActive, c.SortOrder)

	result := *c
	err := row.Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
	if isUniqueViolation(err) {
		return nil, ErrDuplicate
	}
	if err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &result, nil
}

// Update modifies an existing category. The slug is deliberately not
// updatable: it is derived once at creation and stays stable.
func (s *CategoryStore) Update(c *models.Category) error {
	_, err := s.db.Exec(`
		UPDATE categories SET
			name = $1, description = $2, icon = $3, color = $4,
			is_active = $5, sort_order = $6, updated_at = NOW()
		WHERE id = $7
	`, c.Name, c.Description, c.Icon, c.Color, c.IsActive, c.SortOrder, c.ID)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete removes a category by ID. Owned content items, and transitively
// their ratings and view events, are removed by ON DELETE CASCADE.
func (s *CategoryStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// ListFeatured returns active categories that have at least one active,
// featured content item.
func (s *CategoryStore) ListFeatured() ([]models.Category, error) {
	rows, err := s.db.Query(`
		SELECT ` + categoryColumns + `
		FROM categories c
		WHERE c.is_active AND EXISTS (
			SELECT 1 FROM content ct
			WHERE ct.category_id = c.id AND ct.is_active AND ct.is_featured
		)
		ORDER BY c.sort_order, c.name
	`)
	if err != nil {
		return nil, fmt.Errorf("list featured categories: %w", err)
	}
	defer rows.Close()

	var items []models.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		items = append(items, *c)
	}
	return items, rows.Err()
}
