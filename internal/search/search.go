// Package search implements the relevance-ranked free-text search over
// the content catalog. Candidates are fetched with a substring filter in
// the store, then scored and ordered in process. The scoring rule is a
// fixed linear rule over three fields; callers only see the package API,
// so an indexed text-search backend could replace the internals without
// touching handlers.
package search

import (
	"sort"
	"strings"

	"arogya/internal/models"
	"arogya/internal/store"
)

// Relevance weights per matched field. Matches are additive: an item
// matching all three fields scores 6.
const (
	titleWeight       = 3
	descriptionWeight = 2
	tagsWeight        = 1
)

// Result is one scored search hit.
type Result struct {
	Content models.Content
	Score   int
}

// Searcher runs ranked queries against the content store.
type Searcher struct {
	content *store.ContentStore
}

// New returns a Searcher over the given content store.
func New(content *store.ContentStore) *Searcher {
	return &Searcher{content: content}
}

// Score computes the relevance of a content item for a query: +3 when
// the query appears in the title, +2 in the description, +1 in the tags
// string, all case-insensitive substring matches.
func Score(c *models.Content, query string) int {
	q := strings.ToLower(query)
	score := 0
	if strings.Contains(strings.ToLower(c.Title), q) {
		score += titleWeight
	}
	if strings.Contains(strings.ToLower(c.Description), q) {
		score += descriptionWeight
	}
	if strings.Contains(strings.ToLower(c.Tags), q) {
		score += tagsWeight
	}
	return score
}

// Search returns active content items matching the query in title,
// description, or tags, restricted by the optional category slug and
// content type, ordered by descending relevance. Ties break on newer
// published timestamp, then ascending ID, so repeated queries against
// unchanged data return identical ordering.
func (s *Searcher) Search(query, categorySlug, contentType string) ([]Result, error) {
	items, err := s.content.List(store.Filter{
		Search:       query,
		CategorySlug: categorySlug,
		ContentType:  contentType,
	})
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(items))
	for _, item := range items {
		results = append(results, Result{Content: item, Score: Score(&item, query)})
	}

	rank(results)
	return results, nil
}

// rank orders results by descending score with a fixed deterministic
// tie-break: newer published timestamp first, then ascending ID.
func rank(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if !a.Content.PublishedAt.Equal(b.Content.PublishedAt) {
			return a.Content.PublishedAt.After(b.Content.PublishedAt)
		}
		return a.Content.ID.String() < b.Content.ID.String()
	})
}
