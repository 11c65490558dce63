package database

import (
	"testing"

	"github.com/pressly/goose/v3"
)

func TestSeedIdempotent(t *testing.T) {
	db, err := Connect(testDSN())
	if err != nil {
		t.Skipf("skipping: DB not available: %v", err)
	}
	defer db.Close()

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	// Seed creates data only when the categories table is empty. We call
	// it twice to verify idempotency. We don't clear the database first
	// because other test packages may be running concurrently against
	// the same database.
	if err := Seed(db); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	if err := Seed(db); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var categoryCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&categoryCount); err != nil {
		t.Fatalf("count categories: %v", err)
	}
	if categoryCount < 1 {
		t.Errorf("expected at least 1 category, got %d", categoryCount)
	}

	var contentCount int
	if err := db.QueryRow("SELECT COUNT(*) FROM content").Scan(&contentCount); err != nil {
		t.Fatalf("count content: %v", err)
	}
	if contentCount < 1 {
		t.Errorf("expected at least 1 content item, got %d", contentCount)
	}
}
