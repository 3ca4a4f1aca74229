package resolve

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"github.com/enerlens-hq/enerlens-pipeline/internal/domain"
	"github.com/enerlens-hq/enerlens-pipeline/internal/logger"
	"github.com/enerlens-hq/enerlens-pipeline/pkg/httpclient"
)

const (
	// DefaultScrapeTimeout bounds each article page request.
	DefaultScrapeTimeout = 20 * time.Second

	maxHTMLBodyBytes = 1 << 20 // 1 MiB
)

// Resolver chooses the text to summarize for each candidate: the feed
// summary when long enough, otherwise the scraped article body, with a
// fallback chain down to a fixed placeholder.
type Resolver struct {
	client        httpclient.Client
	minSummaryLen int
	minScrapedLen int
	log           logger.Logger

	// Progress, when set, is invoked after each scheduled scrape
	// completes. Observer plumbing only.
	Progress func(done, total int)
}

// NewResolver builds a resolver. minSummaryLen is the feed-summary
// sufficiency threshold; minScrapedLen the scraped-body one.
func NewResolver(client httpclient.Client, minSummaryLen, minScrapedLen int, log logger.Logger) *Resolver {
	if client == nil {
		client = httpclient.NewRestyClient(DefaultScrapeTimeout)
	}
	return &Resolver{
		client:        client,
		minSummaryLen: minSummaryLen,
		minScrapedLen: minScrapedLen,
		log:           logger.Ensure(log),
	}
}

// Resolve returns, index-aligned with candidates, the content each
// candidate will be summarized from. Candidates with a sufficient feed
// summary never hit the network; the rest are scraped concurrently.
// A failing scrape degrades that one entry to its fallback chain.
func (r *Resolver) Resolve(ctx context.Context, candidates []domain.Candidate) []string {
	contents := make([]string, len(candidates))
	var scrapeIdx []int

	for i, cand := range candidates {
		summary := strings.TrimSpace(cand.RawSummary)
		if len(summary) >= r.minSummaryLen {
			contents[i] = summary
			continue
		}
		scrapeIdx = append(scrapeIdx, i)
	}

	if len(scrapeIdx) == 0 {
		return contents
	}

	r.log.InfoObj("scraping full articles for short summaries", "scrape_meta", map[string]any{
		"scrape_count": len(scrapeIdx),
		"total":        len(candidates),
	})

	scraped := make([]string, len(scrapeIdx))
	var wg sync.WaitGroup
	var mu sync.Mutex
	done := 0

	for n, idx := range scrapeIdx {
		wg.Add(1)
		go func(n, idx int) {
			defer wg.Done()

			text, err := r.scrape(ctx, candidates[idx].URL)
			if err != nil {
				r.log.WarnObj("article scrape failed", "scrape_error", map[string]any{
					"url":   candidates[idx].URL,
					"error": err.Error(),
				})
			}
			scraped[n] = text

			mu.Lock()
			done++
			finished := done
			mu.Unlock()
			if r.Progress != nil {
				r.Progress(finished, len(scrapeIdx))
			}
		}(n, idx)
	}
	wg.Wait()

	for n, idx := range scrapeIdx {
		contents[idx] = r.choose(scraped[n], candidates[idx])
	}
	return contents
}

// choose applies the fallback chain: scraped body when it meets the
// length threshold, else the first non-empty of scraped text, feed
// summary and title, else the fixed placeholder.
func (r *Resolver) choose(scraped string, cand domain.Candidate) string {
	scraped = strings.TrimSpace(scraped)
	if len(scraped) >= r.minScrapedLen {
		return scraped
	}
	for _, option := range []string{scraped, strings.TrimSpace(cand.RawSummary), strings.TrimSpace(cand.Title)} {
		if option != "" {
			return option
		}
	}
	return domain.PlaceholderContent
}

func (r *Resolver) scrape(ctx context.Context, url string) (string, error) {
	resp, err := r.client.Get(ctx, url, nil)
	if err != nil {
		return "", fmt.Errorf("http fetch: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode())
	}

	body := resp.Body()
	if len(body) > maxHTMLBodyBytes {
		body = body[:maxHTMLBodyBytes]
	}
	return extractMainContent(body), nil
}

// extractMainContent walks the prioritized selector list for the main
// content container, strips the junk substructures from the match and
// collapses whitespace. When no selector matches, readability
// extraction is tried before giving up.
func extractMainContent(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}

	var container *goquery.Selection
	for _, sel := range contentSelectors {
		if node := doc.Find(sel).First(); node.Length() > 0 {
			container = node
			break
		}
	}

	if container != nil {
		container.Find(strings.Join(junkSelectors, ", ")).Remove()
		if text := collapseWhitespace(container.Text()); text != "" {
			return text
		}
	}

	return readabilityFallback(body)
}

func readabilityFallback(body []byte) string {
	article, err := readability.FromReader(bytes.NewReader(body), nil)
	if err != nil {
		return ""
	}
	return collapseWhitespace(article.TextContent)
}

func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
