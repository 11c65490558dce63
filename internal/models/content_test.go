package models

import (
	"reflect"
	"testing"
)

func TestTagList(t *testing.T) {
	tests := []struct {
		name string
		tags string
		want []string
	}{
		{"simple", "nutrition,diet,health", []string{"nutrition", "diet", "health"}},
		{"whitespace trimmed", " nutrition , diet ", []string{"nutrition", "diet"}},
		{"empty segments dropped", "nutrition,,diet,", []string{"nutrition", "diet"}},
		{"empty string", "", []string{}},
		{"only commas", ",,,", []string{}},
		{"single tag", "cpr", []string{"cpr"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Content{Tags: tt.tags}
			if got := c.TagList(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("TagList() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"watch url", "https://www.youtube.com/watch?v=ABC123", "ABC123"},
		{"watch url with extra params", "https://www.youtube.com/watch?v=ABC123&t=42s", "ABC123"},
		{"short url", "https://youtu.be/XYZ789", "XYZ789"},
		{"short url with query", "https://youtu.be/XYZ789?si=share", "XYZ789"},
		{"non video url", "https://www.who.int/publications/healthy-diet", ""},
		{"youtube without watch param", "https://www.youtube.com/channel/abc", ""},
		{"empty url", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Content{URL: tt.url}
			if got := c.VideoID(); got != tt.want {
				t.Errorf("VideoID() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveThumbnail(t *testing.T) {
	t.Run("explicit thumbnail wins", func(t *testing.T) {
		c := &Content{
			URL:          "https://www.youtube.com/watch?v=ABC123",
			ThumbnailURL: "https://example.org/thumb.png",
		}
		if got := c.ResolveThumbnail(); got != "https://example.org/thumb.png" {
			t.Errorf("ResolveThumbnail() = %q, want explicit thumbnail", got)
		}
	})

	t.Run("synthesized from watch url", func(t *testing.T) {
		c := &Content{URL: "https://www.youtube.com/watch?v=ABC123"}
		want := "https://img.youtube.com/vi/ABC123/maxresdefault.jpg"
		if got := c.ResolveThumbnail(); got != want {
			t.Errorf("ResolveThumbnail() = %q, want %q", got, want)
		}
	})

	t.Run("synthesized from short url", func(t *testing.T) {
		c := &Content{URL: "https://youtu.be/XYZ789"}
		want := "https://img.youtube.com/vi/XYZ789/maxresdefault.jpg"
		if got := c.ResolveThumbnail(); got != want {
			t.Errorf("ResolveThumbnail() = %q, want %q", got, want)
		}
	})

	t.Run("no thumbnail for non video url", func(t *testing.T) {
		c := &Content{URL: "https://www.who.int/publications/healthy-diet"}
		if got := c.ResolveThumbnail(); got != "" {
			t.Errorf("ResolveThumbnail() = %q, want empty", got)
		}
	})
}

func TestEnumValidators(t *testing.T) {
	for _, ct := range []string{"video", "article", "pdf", "audio", "infographic", "interactive"} {
		if !ValidContentType(ct) {
			t.Errorf("ValidContentType(%q) = false, want true", ct)
		}
	}
	if ValidContentType("podcast") {
		t.Error("ValidContentType(podcast) = true, want false")
	}

	for _, d := range []string{"beginner", "intermediate", "advanced", "all"} {
		if !ValidDifficulty(d) {
			t.Errorf("ValidDifficulty(%q) = false, want true", d)
		}
	}
	if ValidDifficulty("expert") {
		t.Error("ValidDifficulty(expert) = true, want false")
	}

	for _, a := range []string{"children", "teens", "adults", "seniors", "all_ages"} {
		if !ValidAgeGroup(a) {
			t.Errorf("ValidAgeGroup(%q) = false, want true", a)
		}
	}
	if ValidAgeGroup("toddlers") {
		t.Error("ValidAgeGroup(toddlers) = true, want false")
	}
}
