// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL is unavailable.
package handlers_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"arogya/internal/database"
	"arogya/internal/handlers"
	"arogya/internal/middleware"
	"arogya/internal/models"
	"arogya/internal/router"
	"arogya/internal/search"
	"arogya/internal/slug"
	"arogya/internal/store"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "arogya")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "arogya")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testEnv holds all dependencies for handler integration tests. The
// router is fully wired; the rate limiter is disabled (limit 0) so
// tests never need Valkey.
type testEnv struct {
	DB         *sql.DB
	Categories *store.CategoryStore
	Content    *store.ContentStore
	Ratings    *store.RatingStore
	Router     http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := testDB(t)
	categoryStore := store.NewCategoryStore(db)
	contentStore := store.NewContentStore(db)
	ratingStore := store.NewRatingStore(db)
	searcher := search.New(contentStore)

	limiter := middleware.NewRateLimiter(nil, 0, time.Minute)

	r := router.New(
		handlers.NewCategories(categoryStore, contentStore),
		handlers.NewContent(contentStore, categoryStore, ratingStore, searcher),
		handlers.NewRatings(ratingStore, contentStore),
		limiter,
	)

	return &testEnv{
		DB:         db,
		Categories: categoryStore,
		Content:    contentStore,
		Ratings:    ratingStore,
		Router:     r,
	}
}

// do performs a request against the wired router and decodes the JSON
// response body into out (when out is non-nil).
func (env *testEnv) do(t *testing.T, method, target string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	env.Router.ServeHTTP(rec, req)

	if out != nil && rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec
}

// testCategory inserts a throwaway active category and registers
// cleanup. The cascade removes any content created under it.
func testCategory(t *testing.T, env *testEnv) *models.Category {
	t.Helper()

	name := "Test Category " + uuid.NewString()[:8]
	c, err := env.Categories.Create(&models.Category{
		Name:     name,
		Slug:     slug.Generate(name),
		Color:    "#4CAF50",
		IsActive: true,
	})
	if err != nil {
		t.Fatalf("create test category: %v", err)
	}

	t.Cleanup(func() {
		env.DB.Exec("DELETE FROM categories WHERE id = $1", c.ID)
	})
	return c
}

// testContent inserts a minimal active content item in the given category.
func testContent(t *testing.T, env *testEnv, categoryID uuid.UUID, title string) *models.Content {
	t.Helper()

	ct, err := env.Content.Create(&models.Content{
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
