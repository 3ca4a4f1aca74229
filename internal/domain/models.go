package domain

import (
	"sort"
	"strings"
	"time"
)

// Domain contains the core models shared across pipeline stages.

// Region labels assigned by the classifier.
const (
	RegionIndia        = "India"
	RegionMiddleEast   = "Middle East"
	RegionNorthAmerica = "North America"
	RegionSouthAmerica = "South America"
	RegionEurope       = "Europe"
	RegionAfrica       = "Africa"
	RegionAPAC         = "APAC"
	RegionUnclassified = "Unclassified Region"
)

// Stream labels assigned by the classifier.
const (
	StreamUpstream     = "Upstream"
	StreamMidstream    = "Midstream"
	StreamDownstream   = "Downstream"
	StreamUnclassified = "Unclassified Stream"
)

// PlaceholderContent is the last-resort resolved content when nothing
// usable could be obtained for a candidate. The summarizer passes it
// through untouched.
const PlaceholderContent = "Content too short or unavailable for detailed summarization."

// Candidate is one feed entry that survived deduplication and
// relevance filtering. PublishedAt is zero when the feed supplied no
// parseable timestamp.
type Candidate struct {
	Title       string
	URL         string
	RawSummary  string
	PublishedAt time.Time
	SourceName  string
}

// Key returns the uniqueness key used for deduplication across feeds.
func (c Candidate) Key() string {
	return strings.ToLower(c.Title) + "|" + strings.ToLower(c.URL)
}

// Article is the processed unit handed to consumers. Immutable once
// produced.
type Article struct {
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Region      string    `json:"region"`
	Stream      string    `json:"stream"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_at"`
	SourceName  string    `json:"source_name"`
}

// SortByRecency orders articles newest first. Articles without a known
// publication time sort to the end. The sort is stable so feed order is
// preserved among equal timestamps.
func SortByRecency(articles []Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		a, b := articles[i].PublishedAt, articles[j].PublishedAt
		if a.IsZero() {
			return false
		}
		if b.IsZero() {
			return true
		}
		return a.After(b)
	})
}

// Filter narrows a processed article set for display consumers. Empty
// fields match everything.
type Filter struct {
	Regions []string
	Streams []string
	Sources []string
	Search  string
}

// FilterArticles returns the articles matching every populated filter
// field. The input slice is never mutated.
func FilterArticles(articles []Article, f Filter) []Article {
	out := make([]Article, 0, len(articles))
	search := strings.ToLower(strings.TrimSpace(f.Search))

	for _, a := range articles {
		if len(f.Regions) > 0 && !containsFold(f.Regions, a.Region) {
			continue
		}
		if len(f.Streams) > 0 && !containsFold(f.Streams, a.Stream) {
			continue
		}
		if len(f.Sources) > 0 && !containsFold(f.Sources, a.SourceName) {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(a.Title + " " + a.Summary)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
