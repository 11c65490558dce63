package handlers

import (
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"arogya/internal/models"
)

// validate is the shared struct validator for request payloads.
var validate = validator.New()

// CategoryInput is the writable field set for category create/update.
// Slug is honored at creation only (derived from the name when omitted);
// update payloads may carry it but it is ignored — slugs never change
// once assigned.
type CategoryInput struct {
	Name        string `json:"name" validate:"required,max=100"`
	Slug        string `json:"slug" validate:"omitempty,max=100"`
	Description string `json:"description" validate:"max=2000"`
	Icon        string `json:"icon" validate:"max=50"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
	IsActive    *bool  `json:"is_active"`
	Order       int    `json:"order" validate:"gte=0"`
}

// ContentInput is the restricted writable field set for content
// create/update. Counters, slug, and timestamps are server-managed and
// deliberately absent.
type ContentInput struct {
	CategoryID      uuid.UUID `json:"category_id" validate:"required"`
	Title           string    `json:"title" validate:"required,max=200"`
	Description     string    `json:"description" validate:"required"`
	ContentType     string    `json:"content_type" validate:"required"`
	URL             string    `json:"url" validate:"required"`
	ThumbnailURL    string    `json:"thumbnail_url" validate:"omitempty,url"`
	EmbedCode       string    `json:"embed_code"`
	Author          string    `json:"author" validate:"max=100"`
	Source          string    `json:"source" validate:"max=100"`
	Duration        string    `json:"duration" validate:"max=20"`
	Language        string    `json:"language" validate:"omitempty,max=10"`
	Difficulty      string    `json:"difficulty_level"`
	TargetAgeGroup  string    `json:"target_age_group"`
	IsFeatured      bool      `json:"is_featured"`
	IsActive        *bool     `json:"is_active"`
	IsVerified      bool      `json:"is_verified"`
	Tags            string    `json:"tags" validate:"max=500"`
	MetaDescription string    `json:"meta_description" validate:"max=160"`
}

// ContentPatch is the partial-update payload: every field is optional
// and absent fields keep their stored value. The merged result is
// validated with the same rules as a full update.
type ContentPatch struct {
	CategoryID      *uuid.UUID `json:"category_id"`
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	ContentType     *string    `json:"content_type"`
	URL             *string    `json:"url"`
	ThumbnailURL    *string    `json:"thumbnail_url"`
	EmbedCode       *string    `json:"embed_code"`
	Author          *string    `json:"author"`
	Source          *string    `json:"source"`
	Duration        *string    `json:"duration"`
	Language        *string    `json:"language"`
	Difficulty      *string    `json:"difficulty_level"`
	TargetAgeGroup  *string    `json:"target_age_group"`
	IsFeatured      *bool      `json:"is_featured"`
	IsActive        *bool      `json:"is_active"`
	IsVerified      *bool      `json:"is_verified"`
	Tags            *string    `json:"tags"`
	MetaDescription *string    `json:"meta_description"`
}

// apply overlays the set fields onto a full input.
func (p *ContentPatch) apply(in *ContentInput) {
	if p.CategoryID != nil {
		in.CategoryID = *p.CategoryID
	}
	if p.Title != nil {
		in.Title = *p.Title
	}
	if p.Description != nil {
		in.Description = *p.Description
	}
	if p.ContentType != nil {
		in.ContentType = *p.ContentType
	}
	if p.URL != nil {
		in.URL = *p.URL
	}
	if p.ThumbnailURL != nil {
		in.ThumbnailURL = *p.ThumbnailURL
	}
	if p.EmbedCode != nil {
		in.EmbedCode = *p.EmbedCode
	}
	if p.Author != nil {
		in.Author = *p.Author
	}
	if p.Source != nil {
		in.Source = *p.Source
	}
	if p.Duration != nil {
		in.Duration = *p.Duration
	}
	if p.Language != nil {
		in.Language = *p.Language
	}
	if p.Difficulty != nil {
		in.Difficulty = *p.Difficulty
	}
	if p.TargetAgeGroup != nil {
		in.TargetAgeGroup = *p.TargetAgeGroup
	}
	if p.IsFeatured != nil {
		in.IsFeatured = *p.IsFeatured
	}
	if p.IsActive != nil {
		in.IsActive = p.IsActive
	}
	if p.IsVerified != nil {
		in.IsVerified = *p.IsVerified
	}
	if p.Tags != nil {
		in.Tags = *p.Tags
	}
	if p.MetaDescription != nil {
		in.MetaDescription = *p.MetaDescription
	}
}

// RatingInput is the rating submission payload. The submitter IP is
// server-assigned and never part of the body.
type RatingInput struct {
	ContentID uuid.UUID `json:"content_id" validate:"required"`
	Rating    int       `json:"rating" validate:"required,min=1,max=5"`
	Comment   string    `json:"comment" validate:"max=2000"`
}

// checkContentInput validates a content payload beyond struct tags:
// absolute http(s) URL and known enum values. Returns a descriptive
// message, or "" when valid.
func checkContentInput(in *ContentInput) string {
	if err := validate.Struct(in); err != nil {
		return validationMessage(err)
	}
	if !validHTTPURL(in.URL) {
		return "url must be an absolute http(s) URL"
	}
	if !models.ValidContentType(in.ContentType) {
		return fmt.Sprintf("unknown content_type %q", in.ContentType)
	}
	if in.Difficulty != "" && !models.ValidDifficulty(in.Difficulty) {
		return fmt.Sprintf("unknown difficulty_level %q", in.Difficulty)
	}
	if in.TargetAgeGroup != "" && !models.ValidAgeGroup(in.TargetAgeGroup) {
		return fmt.Sprintf("unknown target_age_group %q", in.TargetAgeGroup)
	}
	return ""
}

// checkCategoryInput validates a category payload. Returns a descriptive
// message, or "" when valid.
func checkCategoryInput(in *CategoryInput) string {
	if err := validate.Struct(in); err != nil {
		return validationMessage(err)
	}
	return ""
}

// checkRatingInput validates a rating payload. Returns a descriptive
// message, or "" when valid.
func checkRatingInput(in *RatingInput) string {
	if err := validate.Struct(in); err != nil {
		return validationMessage(err)
	}
	return ""
}

// validationMessage flattens a validator error into a single
// field-oriented message.
func validationMessage(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		e := errs[0]
		switch e.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", e.Field())
		case "max":
			return fmt.Sprintf("%s is too long (max %s)", e.Field(), e.Param())
		case "min":
			return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
		case "url":
			return fmt.Sprintf("%s must be a valid URL", e.Field())
		case "hexcolor":
			return fmt.Sprintf("%s must be a hex color code", e.Field())
		default:
			return fmt.Sprintf("%s is invalid", e.Field())
		}
	}
	return "invalid request body"
}

// validHTTPURL reports whether s is a well-formed absolute URL using the
// http or https scheme.
func validHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
