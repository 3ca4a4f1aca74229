package feeds

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/enerlens-hq/enerlens-pipeline/internal/logger"
	"github.com/enerlens-hq/enerlens-pipeline/pkg/httpclient"
)

// DefaultFeedTimeout bounds each feed request.
const DefaultFeedTimeout = 15 * time.Second

var acceptHeaders = map[string]string{
	"Accept": "application/xml, text/xml, application/rss+xml, application/atom+xml",
}

// Fetcher retrieves raw feed payloads for a set of sources. Every
// source is requested concurrently; a failing source yields an absent
// payload and never aborts the batch. No retries.
type Fetcher struct {
	client httpclient.Client
	log    logger.Logger

	// Progress, when set, is invoked after each source completes with
	// the number of finished sources and the batch total. Pass-through
	// plumbing for an external progress indicator; not part of the
	// fetch contract.
	Progress func(done, total int)
}

// NewFetcher builds a fetcher with the provided HTTP client (or a
// default resty client with the standard feed timeout).
func NewFetcher(client httpclient.Client, log logger.Logger) *Fetcher {
	if client == nil {
		client = httpclient.NewRestyClient(DefaultFeedTimeout)
	}
	return &Fetcher{
		client: client,
		log:    logger.Ensure(log),
	}
}

// FetchAll requests every source at once and returns payloads aligned
// by index with the input: results[i] always belongs to sources[i],
// regardless of completion order.
func (f *Fetcher) FetchAll(ctx context.Context, sources []Source) []Payload {
	results := make([]Payload, len(sources))

	var wg sync.WaitGroup
	var mu sync.Mutex
	done := 0

	for i, src := range sources {
		results[i] = Payload{Source: src}

		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()

			body, err := f.fetchOne(ctx, src)
			if err != nil {
				f.log.WarnObj("feed fetch failed", "feed_error", map[string]any{
					"feed_id":  src.ID,
					"feed_url": src.URL,
					"error":    err.Error(),
				})
			} else {
				results[i].Body = body
			}

			mu.Lock()
			done++
			finished := done
			mu.Unlock()
			if f.Progress != nil {
				f.Progress(finished, len(sources))
			}
		}(i, src)
	}
	wg.Wait()

	return results
}

func (f *Fetcher) fetchOne(ctx context.Context, src Source) ([]byte, error) {
	headers := make(map[string]string, len(acceptHeaders)+len(src.Headers))
	for k, v := range acceptHeaders {
		headers[k] = v
	}
	for k, v := range src.Headers {
		headers[k] = v
	}

	resp, err := f.client.Get(ctx, src.URL, headers)
	if err != nil {
		return nil, fmt.Errorf("http fetch: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode())
	}

	body := resp.Body()
	if len(body) == 0 {
		return nil, fmt.Errorf("feed returned empty body")
	}
	return body, nil
}
