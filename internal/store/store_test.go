// store_test.go provides a shared test database helper for all store
// integration tests. Tests are skipped if PostgreSQL is not available.
package store

import (
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"arogya/internal/database"
	"arogya/internal/models"
	"arogya/internal/slug"
)

// testDSN returns the PostgreSQL connection string for testing.
// Uses environment variables with local-development defaults.
func testDSN() string {
	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "arogya")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "arogya")
	return "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test database and runs migrations.
// If the database is unavailable, the test is skipped. A cleanup
// function is registered to close the connection when the test finishes.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("pgx", testDSN())
	if err != nil {
		t.Skipf("skipping integration test: cannot open DB: %v", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping integration test: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("failed to run migrations: %v", err)
	}

	// Downgrade goose global state.
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testCategory inserts a throwaway active category and registers cleanup.
// The cascade removes any content created under it.
func testCategory(t *testing.T, db *sql.DB) *models.Category {
	t.Helper()

	name := "Test Category " + uuid.NewString()[:8]
	c, err := NewCategoryStore(db).Create(&models.Category{
		Name:     name,
		Slug:     slug.Generate(name),
		Color:    "#4CAF50",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("create test category: %v", err)
	}

	t.Cleanup(func() {
		db.Exec("DELETE FROM categories WHERE id = $1", c.ID)
	})
	return c
}

// testContent inserts a minimal active content item in the given category.
func testContent(t *testing.T, db *sql.DB, categoryID uuid.UUID, title string) *models.Content {
	t.Helper()

	ct, err := NewContentStore(db).Create(&models.Content{
		CategoryID:     categoryID,
		Title:          title,
		Slug:           slug.Generate(title) + "-" + uuid.NewString()[:8],
		Description:    "test description",
		ContentType:    models.ContentTypeArticle,
		URL:            "https://example.org/" + uuid.NewString()[:8],
		Language:       "en",
		Difficulty:     models.DifficultyAll,
		TargetAgeGroup: models.AgeGroupAllAges,
	})
	if err != nil {
		t.Fatalf("create test content: %v", err)
	}
	return ct
}
