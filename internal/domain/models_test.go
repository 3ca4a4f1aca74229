package domain

import (
	"testing"
	"time"
)

func TestCandidateKeyIsCaseInsensitive(t *testing.T) {
	a := Candidate{Title: "OPEC Cuts Output", URL: "https://Example.com/News"}
	b := Candidate{Title: "opec cuts output", URL: "https://example.com/news"}
	if a.Key() != b.Key() {
		t.Fatalf("keys differ: %q vs %q", a.Key(), b.Key())
	}
}

func TestSortByRecencyNewestFirstZeroLast(t *testing.T) {
	old := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	recent := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	articles := []Article{
		{Title: "undated"},
		{Title: "old", PublishedAt: old},
		{Title: "recent", PublishedAt: recent},
	}
	SortByRecency(articles)

	if articles[0].Title != "recent" || articles[1].Title != "old" || articles[2].Title != "undated" {
		t.Fatalf("unexpected order: %q %q %q", articles[0].Title, articles[1].Title, articles[2].Title)
	}
}

func TestSortByRecencyStableAmongUndated(t *testing.T) {
	articles := []Article{
		{Title: "first"},
		{Title: "second"},
		{Title: "third"},
	}
	SortByRecency(articles)
	if articles[0].Title != "first" || articles[2].Title != "third" {
		t.Fatalf("undated order not preserved: %+v", articles)
	}
}

func TestFilterArticles(t *testing.T) {
	articles := []Article{
		{Title: "Permian output rises", Summary: "Shale production up", Region: RegionNorthAmerica, Stream: StreamUpstream, SourceName: "Rigzone"},
		{Title: "New LNG terminal", Summary: "Gujarat import capacity", Region: RegionIndia, Stream: StreamMidstream, SourceName: "ET Energy"},
		{Title: "Refinery margins fall", Summary: "Diesel cracks weaken", Region: RegionEurope, Stream: StreamDownstream, SourceName: "OilPrice"},
	}

	got := FilterArticles(articles, Filter{Regions: []string{"india"}})
	if len(got) != 1 || got[0].Region != RegionIndia {
		t.Fatalf("region filter: %+v", got)
	}

	got = FilterArticles(articles, Filter{Streams: []string{StreamUpstream, StreamDownstream}})
	if len(got) != 2 {
		t.Fatalf("stream filter: expected 2, got %d", len(got))
	}

	got = FilterArticles(articles, Filter{Search: "DIESEL"})
	if len(got) != 1 || got[0].SourceName != "OilPrice" {
		t.Fatalf("search filter: %+v", got)
	}

	got = FilterArticles(articles, Filter{})
	if len(got) != 3 {
		t.Fatalf("empty filter should match all, got %d", len(got))
	}
}
