package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"arogya/internal/slug"
)

// seedCategory describes one category created by Seed.
type seedCategory struct {
	name        string
	description string
	icon        string
	color       string
	order       int
}

// seedContent describes one starter content item created by Seed.
type seedContent struct {
	category    string
	title       string
	description string
	contentType string
	url         string
	author      string
	source      string
	duration    string
	tags        string
	featured    bool
	verified    bool
}

var seedCategories = []seedCategory{
	{"Nutrition", "Learn about healthy eating, balanced diet, and nutritional guidelines", "nutrition", "#4CAF50", 1},
	{"Hygiene", "Personal hygiene, handwashing, dental care, and cleanliness habits", "water", "#2196F3", 2},
	{"Child Health", "Pediatric care, vaccination schedules, and child development", "heart", "#FF9800", 3},
	{"Mental Health", "Mental wellness, stress management, anxiety, and emotional wellbeing", "happy", "#9C27B0", 4},
	{"First Aid", "Emergency response, CPR, AED training, and basic life support", "medical", "#F44336", 5},
	{"Seasonal Diseases", "Prevention and management of monsoon diseases, flu, and seasonal health tips", "thermometer", "#607D8B", 6},
}

var seedContents = []seedContent{
	{
		category:    "Nutrition",
		title:       "WHO Healthy Diet Guidelines",
		description: "Complete guidelines for healthy eating: fruits, vegetables, fats, sugars, and salt recommendations from World Health Organization",
		contentType: "article",
		url:         "https://www.who.int/news-room/fact-sheets/detail/healthy-diet",
		source:      "World Health Organization",
		tags:        "diet, nutrition, who, guidelines",
		featured:    true,
		verified:    true,
	},
	{
		category:    "Hygiene",
		title:       "Proper Handwashing Technique",
		description: "Step-by-step demonstration of the WHO recommended handwashing technique to prevent infections",
		contentType: "video",
		url:         "https://www.youtube.com/watch?v=3PmVJQUCm4E",
		source:      "World Health Organization",
		duration:    "1:26",
		tags:        "handwashing, hygiene, prevention",
		featured:    true,
		verified:    true,
	},
	{
		category:    "First Aid",
		title:       "Hands-Only CPR Basics",
		description: "Learn hands-only CPR in under two minutes: call for help, push hard and fast in the center of the chest",
		contentType: "video",
		url:         "https://www.youtube.com/watch?v=M4ACYp75mjU",
		author:      "American Heart Association",
		source:      "American Heart Association",
		duration:    "1:57",
		tags:        "cpr, emergency, first aid",
		verified:    true,
	},
	{
		category:    "Child Health",
		title:       "Childhood Vaccination Schedule",
		description: "Recommended immunization schedule for children from birth through age six",
		contentType: "pdf",
		url:         "https://www.cdc.gov/vaccines/schedules/downloads/child/0-18yrs-child-combined-schedule.pdf",
		source:      "CDC",
		tags:        "vaccination, immunization, children",
		verified:    true,
	},
	{
		category:    "Mental Health",
		title:       "Managing Everyday Stress",
		description: "Practical techniques for recognizing and managing stress: breathing exercises, sleep habits, and when to seek help",
		contentType: "article",
		url:         "https://www.who.int/news-room/questions-and-answers/item/stress",
		source:      "World Health Organization",
		tags:        "stress, mental health, wellbeing",
	},
}

// Seed populates the database with the standard health categories and a
// handful of starter content items. It is idempotent: if any category
// already exists, seeding is skipped entirely.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
		return fmt.Errorf("seed check categories: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	for _, c := range seedCategories {
		_, err := db.Exec(`
			INSERT INTO categories (name, slug, description, icon, color, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, c.name, slug.Generate(c.name), c.description, c.icon, c.color, c.order)
		if err != nil {
			return fmt.Errorf("seed category %q: %w", c.name, err)
		}
	}

	for _, c := range seedContents {
		_, err := db.Exec(`
			INSERT INTO content (category_id, title, slug, description, content_type,
			                     url, author, source, duration, tags, is_featured, is_verified)
			SELECT id, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
			FROM categories WHERE name = $1
		`, c.category, c.title, slug.Generate(c.title), c.description, c.contentType,
			c.url, c.author, c.source, c.duration, c.tags, c.featured, c.verified)
		if err != nil {
			return fmt.Errorf("seed content %q: %w", c.title, err)
		}
	}

	slog.Info("database seeded",
		"categories", len(seedCategories),
		"content_items", len(seedContents),
	)
	return nil
}
