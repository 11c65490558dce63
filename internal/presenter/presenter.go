// Package presenter shapes internal records into the field subsets each
// API consumer needs: compact list entries, full detail views, search
// hits carrying a relevance score, and the stats snapshot. Thumbnail
// resolution and video-id extraction are pure functions of the stored
// fields, recomputed per request.
package presenter

import (
	"time"

	"github.com/google/uuid"

	"arogya/internal/models"
	"arogya/internal/search"
	"arogya/internal/store"
)

// ContentList is the compact shape used by listing endpoints.
type ContentList struct {
	ID             uuid.UUID          `json:"id"`
	Title          string             `json:"title"`
	Slug           string             `json:"slug"`
	Description    string             `json:"description"`
	ContentType    models.ContentType `json:"content_type"`
	URL            string             `json:"url"`
	ThumbnailURL   string             `json:"thumbnail_url"`
	Author         string             `json:"author"`
	Source         string             `json:"source"`
	Duration       string             `json:"duration"`
	Difficulty     models.Difficulty  `json:"difficulty_level"`
	TargetAgeGroup models.AgeGroup    `json:"target_age_group"`
	IsFeatured     bool               `json:"is_featured"`
	ViewCount      int                `json:"view_count"`
	LikeCount      int                `json:"like_count"`
	PublishedAt    time.Time          `json:"published_date"`
	CategoryName   string             `json:"category_name"`
	CategorySlug   string             `json:"category_slug"`
	TagList        []string           `json:"tag_list"`
}

// ContentDetail is the full shape for single-item retrieval. It extends
// the list shape with embed markup, verification state, share count, the
// raw tags string, SEO metadata, timestamps, the extracted video id, and
// the live rating summary.
type ContentDetail struct {
	ContentList
	EmbedCode       string    `json:"embed_code"`
	Language        string    `json:"language"`
	IsVerified      bool      `json:"is_verified"`
	ShareCount      int       `json:"share_count"`
	Tags            string    `json:"tags"`
	MetaDescription string    `json:"meta_description"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	VideoID         string    `json:"youtube_id"`
	AverageRating   float64   `json:"average_rating"`
	TotalRatings    int       `json:"total_ratings"`
}

// SearchResult is the shape for ranked search hits: a trimmed list entry
// plus the integer relevance score.
type SearchResult struct {
	ID           uuid.UUID          `json:"id"`
	Title        string             `json:"title"`
	Slug         string             `json:"slug"`
	Description  string             `json:"description"`
	ContentType  models.ContentType `json:"content_type"`
	URL          string             `json:"url"`
	ThumbnailURL string             `json:"thumbnail_url"`
	Author       string             `json:"author"`
	Duration     string             `json:"duration"`
	ViewCount    int                `json:"view_count"`
	CategoryName string             `json:"category_name"`
	Relevance    int                `json:"relevance_score"`
	PublishedAt  time.Time          `json:"published_date"`
}

// CategorySummary is the category shape with its live content counts.
type CategorySummary struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Slug               string    `json:"slug"`
	Description        string    `json:"description"`
	Icon               string    `json:"icon"`
	Color              string    `json:"color"`
	IsActive           bool      `json:"is_active"`
	Order              int       `json:"order"`
	ActiveContentCount int       `json:"active_content_count"`
	VideoCount         int       `json:"video_count"`
	ArticleCount       int       `json:"article_count"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// CategoryDetail nests the category's content list into the summary.
type CategoryDetail struct {
	CategorySummary
	Content []ContentList `json:"media_content"`
}

// StatsSnapshot is the aggregate view returned by the stats endpoint.
type StatsSnapshot struct {
	TotalContent    int           `json:"total_content"`
	TotalVideos     int           `json:"total_videos"`
	TotalArticles   int           `json:"total_articles"`
	TotalViews      int           `json:"total_views"`
	FeaturedContent int           `json:"featured_content"`
	CategoriesCount int           `json:"categories_count"`
	RecentContent   []ContentList `json:"recent_content"`
}

// NewContentList shapes a content item for listing.
func NewContentList(c *models.Content) ContentList {
	return ContentList{
		ID:             c.ID,
		Title:          c.Title,
		Slug:           c.Slug,
		Description:    c.Description,
		ContentType:    c.ContentType,
		URL:            c.URL,
		ThumbnailURL:   c.ResolveThumbnail(),
		Author:         c.Author,
		Source:         c.Source,
		Duration:       c.Duration,
		Difficulty:     c.Difficulty,
		TargetAgeGroup: c.TargetAgeGroup,
		IsFeatured:     c.IsFeatured,
		ViewCount:      c.ViewCount,
		LikeCount:      c.LikeCount,
		PublishedAt:    c.PublishedAt,
		CategoryName:   c.CategoryName,
		CategorySlug:   c.CategorySlug,
		TagList:        c.TagList(),
	}
}

// NewContentLists shapes a slice of content items for listing. Always
// returns a non-nil slice so empty listings serialize as [].
func NewContentLists(items []models.Content) []ContentList {
	out := make([]ContentList, 0, len(items))
	for i := range items {
		out = append(out, NewContentList(&items[i]))
	}
	return out
}

// NewContentDetail shapes a content item for single-item retrieval with
// its current rating summary.
func NewContentDetail(c *models.Content, avgRating float64, totalRatings int) ContentDetail {
	return ContentDetail{
		ContentList:     NewContentList(c),
		EmbedCode:       c.EmbedCode,
		Language:        c.Language,
		IsVerified:      c.IsVerified,
		ShareCount:      c.ShareCount,
		Tags:            c.Tags,
		MetaDescription: c.MetaDescription,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
		VideoID:         c.VideoID(),
		AverageRating:   avgRating,
		TotalRatings:    totalRatings,
	}
}

// NewSearchResults shapes ranked search hits.
func NewSearchResults(results []search.Result) []SearchResult {
	out := make([]SearchResult, 0, len(results))
	for i := range results {
		c := &results[i].Content
		out = append(out, SearchResult{
			ID:           c.ID,
			Title:        c.Title,
			Slug:         c.Slug,
			Description:  c.Description,
			ContentType:  c.ContentType,
			URL:          c.URL,
			ThumbnailURL: c.ResolveThumbnail(),
			Author:       c.Author,
			Duration:     c.Duration,
			ViewCount:    c.ViewCount,
			CategoryName: c.CategoryName,
			Relevance:    results[i].Score,
			PublishedAt:  c.PublishedAt,
		})
	}
	return out
}

// NewCategorySummary shapes a category with its live counts.
func NewCategorySummary(c *models.Category) CategorySummary {
	return CategorySummary{
		ID:                 c.ID,
		Name:               c.Name,
		Slug:               c.Slug,
		Description:        c.Description,
		Icon:               c.Icon,
		Color:              c.Color,
		IsActive:           c.IsActive,
		Order:              c.SortOrder,
		ActiveContentCount: c.ActiveContentCount,
		VideoCount:         c.VideoCount,
		ArticleCount:       c.ArticleCount,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}
}

// NewCategorySummaries shapes a slice of categories.
func NewCategorySummaries(items []models.Category) []CategorySummary {
	out := make([]CategorySummary, 0, len(items))
	for i := range items {
		out = append(out, NewCategorySummary(&items[i]))
	}
	return out
}

// NewCategoryDetail shapes a category with its nested content list.
func NewCategoryDetail(c *models.Category, content []models.Content) CategoryDetail {
	return CategoryDetail{
		CategorySummary: NewCategorySummary(c),
		Content:         NewContentLists(content),
	}
}

// NewStatsSnapshot shapes the stats aggregate.
func NewStatsSnapshot(st *store.Stats) StatsSnapshot {
	return StatsSnapshot{
		TotalContent:    st.TotalContent,
		TotalVideos:     st.TotalVideos,
		TotalArticles:   st.TotalArticles,
		TotalViews:      st.TotalViews,
		FeaturedContent: st.FeaturedContent,
		CategoriesCount: st.CategoriesCount,
		RecentContent:   NewContentLists(st.RecentContent),
	}
}
