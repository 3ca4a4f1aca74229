package extract

import (
	"net/url"
	"strings"

	"github.com/mmcdole/gofeed"

	"github.com/enerlens-hq/enerlens-pipeline/internal/domain"
	"github.com/enerlens-hq/enerlens-pipeline/internal/logger"
	"github.com/enerlens-hq/enerlens-pipeline/internal/taxonomy"
	"github.com/enerlens-hq/enerlens-pipeline/pkg/feeds"
)

// Extractor turns raw feed payloads into a deduplicated, filtered,
// capped sequence of candidates.
type Extractor struct {
	tax         *taxonomy.Taxonomy
	maxArticles int
	parser      *gofeed.Parser
	log         logger.Logger
}

// NewExtractor builds an extractor over the given taxonomy. maxArticles
// caps the output; entries beyond the cap are discarded with a warning.
func NewExtractor(tax *taxonomy.Taxonomy, maxArticles int, log logger.Logger) *Extractor {
	if tax == nil {
		tax = taxonomy.Default()
	}
	return &Extractor{
		tax:         tax,
		maxArticles: maxArticles,
		parser:      gofeed.NewParser(),
		log:         logger.Ensure(log),
	}
}

// Extract parses every payload and returns the surviving candidates in
// feed-iteration order. Absent and malformed payloads contribute zero
// entries; they never abort the batch.
func (e *Extractor) Extract(payloads []feeds.Payload) []domain.Candidate {
	candidates := make([]domain.Candidate, 0, 64)
	seen := make(map[string]struct{})
	capped := false

	for _, payload := range payloads {
		if payload.Body == nil {
			e.log.WarnObj("skipping absent feed payload", "feed_url", payload.Source.URL)
			continue
		}

		raw := string(payload.Body)
		if !looksLikeFeed(raw) {
			e.log.WarnObj("payload does not look like a feed", "feed_url", payload.Source.URL)
			continue
		}

		feed, err := e.parser.ParseString(raw)
		if err != nil {
			e.log.WarnObj("feed parse failed", "feed_error", map[string]any{
				"feed_url": payload.Source.URL,
				"error":    err.Error(),
			})
			continue
		}

		sourceName := feedSourceName(feed, payload.Source)
		for _, item := range feed.Items {
			cand, ok := e.buildCandidate(item, sourceName)
			if !ok {
				continue
			}

			key := cand.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}

			if len(candidates) >= e.maxArticles {
				capped = true
				continue
			}
			candidates = append(candidates, cand)
		}
	}

	if capped {
		e.log.WarnObj("candidate cap reached, discarding excess entries", "extract_cap", map[string]any{
			"max_articles": e.maxArticles,
		})
	}
	e.log.InfoObj("extraction completed", "extract_result", map[string]any{
		"candidates": len(candidates),
		"payloads":   len(payloads),
	})
	return candidates
}

func (e *Extractor) buildCandidate(item *gofeed.Item, sourceName string) (domain.Candidate, bool) {
	if item == nil {
		return domain.Candidate{}, false
	}

	title := strings.TrimSpace(item.Title)
	link := strings.TrimSpace(item.Link)
	if title == "" || link == "" {
		return domain.Candidate{}, false
	}

	summary := StripTags(item.Description)

	cand := domain.Candidate{
		Title:      title,
		URL:        link,
		RawSummary: summary,
		SourceName: sourceName,
	}
	if item.PublishedParsed != nil {
		cand.PublishedAt = item.PublishedParsed.UTC()
	}

	if !e.relevant(title, summary, link, sourceName) {
		return domain.Candidate{}, false
	}
	return cand, true
}

// relevant applies the three-stage filter with short-circuit semantics:
// a core-energy keyword must appear in title or summary, no
// irrelevant/ad keyword may appear in title+summary+source, and the URL
// host must not be a junk domain. An unparseable URL counts as
// irrelevant.
func (e *Extractor) relevant(title, summary, link, sourceName string) bool {
	if !taxonomy.ContainsAny(title, e.tax.CoreEnergy) &&
		!taxonomy.ContainsAny(summary, e.tax.CoreEnergy) {
		return false
	}

	overall := title + " " + summary + " " + sourceName
	if taxonomy.ContainsAny(overall, e.tax.Irrelevant) {
		return false
	}

	parsed, err := url.Parse(link)
	if err != nil || parsed.Hostname() == "" {
		return false
	}
	host := strings.ToLower(parsed.Hostname())
	for _, junk := range e.tax.JunkDomains {
		if strings.Contains(host, junk) {
			return false
		}
	}
	return true
}

// looksLikeFeed is a cheap pre-check for RSS/Atom root markers so
// arbitrary HTML error pages are skipped before structured parsing.
func looksLikeFeed(content string) bool {
	return strings.Contains(content, "<rss") || strings.Contains(content, "<feed")
}

func feedSourceName(feed *gofeed.Feed, src feeds.Source) string {
	if feed != nil && strings.TrimSpace(feed.Title) != "" {
		return strings.TrimSpace(feed.Title)
	}
	if strings.TrimSpace(src.Name) != "" {
		return src.Name
	}
	return src.URL
}
