package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// ContentType classifies a content item by medium.
type ContentType string

const (
	ContentTypeVideo       ContentType = "video"
	ContentTypeArticle     ContentType = "article"
	ContentTypePDF         ContentType = "pdf"
	ContentTypeAudio       ContentType = "audio"
	ContentTypeInfographic ContentType = "infographic"
	ContentTypeInteractive ContentType = "interactive"
)

// Difficulty indicates the expected audience expertise level.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
	DifficultyAll          Difficulty = "all"
)

// AgeGroup indicates the target audience age bracket.
type AgeGroup string

const (
	AgeGroupChildren AgeGroup = "children"
	AgeGroupTeens    AgeGroup = "teens"
	AgeGroupAdults   AgeGroup = "adults"
	AgeGroupSeniors  AgeGroup = "seniors"
	AgeGroupAllAges  AgeGroup = "all_ages"
)

// Content is a single health-education media item (video, article, PDF...)
// belonging to one category.
type Content struct {
	ID              uuid.UUID   `json:"id"`
	CategoryID      uuid.UUID   `json:"category_id"`
	Title           string      `json:"title"`
	Slug            string      `json:"slug"`
	Description     string      `json:"description"`
	ContentType     ContentType `json:"content_type"`
	URL             string      `json:"url"`
	ThumbnailURL    string      `json:"thumbnail_url"`
	EmbedCode       string      `json:"embed_code"`
	Author          string      `json:"author"`
	Source          string      `json:"source"`
	Duration        string      `json:"duration"`
	Language        string      `json:"language"`
	Difficulty      Difficulty  `json:"difficulty_level"`
	TargetAgeGroup  AgeGroup    `json:"target_age_group"`
	IsFeatured      bool        `json:"is_featured"`
	IsActive        bool        `json:"is_active"`
	IsVerified      bool        `json:"is_verified"`
	ViewCount       int         `json:"view_count"`
	LikeCount       int         `json:"like_count"`
	ShareCount      int         `json:"share_count"`
	Tags            string      `json:"tags"`
	MetaDescription string      `json:"meta_description"`
	PublishedAt     time.Time   `json:"published_date"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`

	// Joined from the owning category by store queries.
	CategoryName string `json:"-"`
	CategorySlug string `json:"-"`
}

// TagList splits the comma-separated tags string into a clean slice.
// Surrounding whitespace is trimmed and empty segments are dropped.
func (c *Content) TagList() []string {
	tags := []string{}
	for _, t := range strings.Split(c.Tags, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// VideoID extracts the YouTube video identifier from the content URL.
// Both watch?v= and youtu.be/ URL shapes are recognized. Returns an
// empty string for non-YouTube URLs.
func (c *Content) VideoID() string {
	if !strings.Contains(c.URL, "youtube.com") && !strings.Contains(c.URL, "youtu.be") {
		return ""
	}
	if _, after, ok := strings.Cut(c.URL, "youtube.com/watch?v="); ok {
		id, _, _ := strings.Cut(after, "&")
		return id
	}
	if strings.Contains(c.URL, "youtu.be/") {
		id := c.URL[strings.LastIndex(c.URL, "/")+1:]
		id, _, _ = strings.Cut(id, "?")
		return id
	}
	return ""
}

// ResolveThumbnail returns the thumbnail URL to present for this item.
// An explicitly set thumbnail always wins; otherwise one is synthesized
// from the YouTube video id when the URL is a recognized video link.
// Returns an empty string when neither applies.
func (c *Content) ResolveThumbnail() string {
	if c.ThumbnailURL != "" {
		return c.ThumbnailURL
	}
	if id := c.VideoID(); id != "" {
		return "https://img.youtube.com/vi/" + id + "/maxresdefault.jpg"
	}
	return ""
}

// ValidContentType reports whether s is one of the known content types.
func ValidContentType(s string) bool {
	switch ContentType(s) {
	case ContentTypeVideo, ContentTypeArticle, ContentTypePDF,
		ContentTypeAudio, ContentTypeInfographic, ContentTypeInteractive:
		return true
	}
	return false
}

// ValidDifficulty reports whether s is one of the known difficulty levels.
func ValidDifficulty(s string) bool {
	switch Difficulty(s) {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced, DifficultyAll:
		return true
	}
	return false
}

// ValidAgeGroup reports whether s is one of the known age groups.
func ValidAgeGroup(s string) bool {
	switch AgeGroup(s) {
	case AgeGroupChildren, AgeGroupTeens, AgeGroupAdults, AgeGroupSeniors, AgeGroupAllAges:
		return true
	}
	return false
}
