package presenter

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"arogya/internal/models"
	"arogya/internal/search"
)

func sampleContent() *models.Content {
	return &models.Content{
		ID:           uuid.New(),
		Title:        "Proper Handwashing Technique",
		Slug:         "proper-handwashing-technique",
		Description:  "WHO recommended handwashing steps",
		ContentType:  models.ContentTypeVideo,
		URL:          "https://www.youtube.com/watch?v=3PmVJQUCm4E",
		Author:       "WHO",
		Source:       "World Health Organization",
		Duration:     "1:26",
		Language:     "en",
		Difficulty:   models.DifficultyAll,
		TargetAgeGroup: models.AgeGroupAllAges,
		IsFeatured:   true,
		IsActive:     true,
		IsVerified:   true,
		ViewCount:    12,
		LikeCount:    3,
		ShareCount:   1,
		Tags:         "handwashing, hygiene",
		PublishedAt:  time.Now(),
		CategoryName: "Hygiene",
		CategorySlug: "hygiene",
	}
}

func TestNewContentListResolvesThumbnailAndTags(t *testing.T) {
	c := sampleContent()
	shaped := NewContentList(c)

	if shaped.ThumbnailURL != "https://img.youtube.com/vi/3PmVJQUCm4E/maxresdefault.jpg" {
		t.Errorf("thumbnail: got %q", shaped.ThumbnailURL)
	}
	if len(shaped.TagList) != 2 || shaped.TagList[0] != "handwashing" || shaped.TagList[1] != "hygiene" {
		t.Errorf("tag list: got %v", shaped.TagList)
	}
	if shaped.CategoryName != "Hygiene" || shaped.CategorySlug != "hygiene" {
		t.Errorf("category fields: got %q/%q", shaped.CategoryName, shaped.CategorySlug)
	}
}

func TestContentListOmitsDetailFields(t *testing.T) {
	// The list shape must not leak detail-only fields like embed code
	// or the raw tags string.
	raw, err := json.Marshal(NewContentList(sampleContent()))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := string(raw)
	for _, field := range []string{"embed_code", "share_count", "average_rating", "\"tags\""} {
		if strings.Contains(body, field) {
			t.Errorf("list shape contains detail field %s", field)
		}
	}
}

func TestNewContentDetail(t *testing.T) {
	c := sampleContent()
	shaped := NewContentDetail(c, 4.0, 2)

	if shaped.VideoID != "3PmVJQUCm4E" {
		t.Errorf("video id: got %q", shaped.VideoID)
	}
	if shaped.AverageRating != 4.0 || shaped.TotalRatings != 2 {
		t.Errorf("rating summary: got %v/%d", shaped.AverageRating, shaped.TotalRatings)
	}
	if shaped.Tags != "handwashing, hygiene" {
		t.Errorf("raw tags: got %q", shaped.Tags)
	}
}

func TestNewSearchResultsCarriesScore(t *testing.T) {
	c := sampleContent()
	shaped := NewSearchResults([]search.Result{{Content: *c, Score: 6}})

	if len(shaped) != 1 {
		t.Fatalf("expected 1 result, got %d", len(shaped))
	}
	if shaped[0].Relevance != 6 {
		t.Errorf("relevance: got %d, want 6", shaped[0].Relevance)
	}
}

func TestEmptySlicesSerializeAsArrays(t *testing.T) {
	raw, err := json.Marshal(NewContentLists(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "[]" {
		t.Errorf("empty list: got %s, want []", raw)
	}

	raw, err = json.Marshal(NewCategorySummaries(nil))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != "[]" {
		t.Errorf("empty categories: got %s, want []", raw)
	}
}

func TestNewCategoryDetailNestsContent(t *testing.T) {
	cat := &models.Category{
		ID:                 uuid.New(),
		Name:               "Hygiene",
		Slug:               "hygiene",
		IsActive:           true,
		SortOrder:          2,
		ActiveContentCount: 1,
		VideoCount:         1,
	}
	detail := NewCategoryDetail(cat, []models.Content{*sampleContent()})

	if detail.Order != 2 {
		t.Errorf("order: got %d", detail.Order)
	}
	if len(detail.Content) != 1 {
		t.Fatalf("expected 1 nested item, got %d", len(detail.Content))
	}
	if detail.Content[0].Slug != "proper-handwashing-technique" {
		t.Errorf("nested slug: got %q", detail.Content[0].Slug)
	}
}
