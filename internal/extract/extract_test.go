package extract

import (
	"fmt"
	"strings"
	"testing"

	"github.com/enerlens-hq/enerlens-pipeline/pkg/feeds"
)

func rssFeed(title string, items ...string) []byte {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0"?><rss version="2.0"><channel>`)
	fmt.Fprintf(&b, "<title>%s</title>", title)
	for _, item := range items {
		b.WriteString(item)
	}
	b.WriteString(`</channel></rss>`)
	return []byte(b.String())
}

func rssItem(title, link, description string) string {
	return fmt.Sprintf(`<item><title>%s</title><link>%s</link><description>%s</description></item>`,
		title, link, description)
}

func TestExtractFiltersByRelevance(t *testing.T) {
	e := NewExtractor(nil, 150, nil)

	payload := feeds.Payload{
		Source: feeds.Source{ID: "f1", URL: "https://feed.example/rss"},
		Body: rssFeed("Energy Wire",
			rssItem("OPEC weighs further supply curbs", "https://energywire.example/opec", "Ministers meet next week."),
			rssItem("Top 10 BBQ grills for summer", "https://energywire.example/grills", "Gas grills reviewed."),
			rssItem("Morning headlines roundup", "https://energywire.example/roundup", "Stories from overnight."),
		),
	}

	got := e.Extract([]feeds.Payload{payload})
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d: %+v", len(got), got)
	}
	if got[0].Title != "OPEC weighs further supply curbs" {
		t.Fatalf("wrong survivor: %q", got[0].Title)
	}
	if got[0].SourceName != "Energy Wire" {
		t.Fatalf("source name should come from feed title, got %q", got[0].SourceName)
	}
}

func TestExtractRejectsJunkDomains(t *testing.T) {
	e := NewExtractor(nil, 150, nil)

	payload := feeds.Payload{
		Source: feeds.Source{ID: "f1", URL: "https://feed.example/rss"},
		Body: rssFeed("Wire",
			rssItem("Crude oil futures climb", "https://www.amazon.com/deals/oil-book", "Crude oil markets move."),
			rssItem("Crude oil futures climb again", "https://energywire.example/crude", "Crude oil markets move."),
		),
	}

	got := e.Extract([]feeds.Payload{payload})
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if !strings.Contains(got[0].URL, "energywire.example") {
		t.Fatalf("junk domain survived: %q", got[0].URL)
	}
}

func TestExtractDeduplicatesFirstWins(t *testing.T) {
	e := NewExtractor(nil, 150, nil)

	first := feeds.Payload{
		Source: feeds.Source{ID: "a", URL: "https://a.example/rss"},
		Body: rssFeed("Feed A",
			rssItem("OPEC output deal agreed", "https://news.example/opec-deal", "Supply pact reached for crude."),
		),
	}
	second := feeds.Payload{
		Source: feeds.Source{ID: "b", URL: "https://b.example/rss"},
		Body: rssFeed("Feed B",
			rssItem("OPEC OUTPUT DEAL AGREED", "https://news.example/OPEC-DEAL", "Duplicate entry, different case."),
		),
	}

	got := e.Extract([]feeds.Payload{first, second})
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate after dedup, got %d", len(got))
	}
	if got[0].SourceName != "Feed A" {
		t.Fatalf("first occurrence should win, got source %q", got[0].SourceName)
	}
}

func TestExtractCapsCandidates(t *testing.T) {
	e := NewExtractor(nil, 3, nil)

	items := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, rssItem(
			fmt.Sprintf("Crude oil update %d", i),
			fmt.Sprintf("https://news.example/crude-%d", i),
			"Crude oil markets move.",
		))
	}
	payload := feeds.Payload{
		Source: feeds.Source{ID: "f1", URL: "https://feed.example/rss"},
		Body:   rssFeed("Wire", items...),
	}

	got := e.Extract([]feeds.Payload{payload})
	if len(got) != 3 {
		t.Fatalf("expected cap of 3, got %d", len(got))
	}
	if got[0].Title != "Crude oil update 0" {
		t.Fatalf("cap should keep earliest entries, got %q", got[0].Title)
	}
}

func TestExtractSkipsAbsentAndMalformedPayloads(t *testing.T) {
	e := NewExtractor(nil, 150, nil)

	payloads := []feeds.Payload{
		{Source: feeds.Source{ID: "down", URL: "https://down.example/rss"}, Body: nil},
		{Source: feeds.Source{ID: "html", URL: "https://html.example/rss"}, Body: []byte("<html><body>error page</body></html>")},
		{Source: feeds.Source{ID: "broken", URL: "https://broken.example/rss"}, Body: []byte("<rss><channel><unclosed")},
	}

	got := e.Extract(payloads)
	if len(got) != 0 {
		t.Fatalf("expected no candidates, got %d", len(got))
	}
}

func TestStripTags(t *testing.T) {
	got := StripTags(`<p>Crude <b>oil</b>   prices<br/>rise</p>`)
	if got != "Crude oil pricesrise" && got != "Crude oil prices rise" {
		t.Fatalf("StripTags = %q", got)
	}
}
