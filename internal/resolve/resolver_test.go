package resolve

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/enerlens-hq/enerlens-pipeline/internal/domain"
	"github.com/enerlens-hq/enerlens-pipeline/pkg/httpclient"
)

type stubResponse struct {
	body   []byte
	status int
}

func (s stubResponse) Body() []byte    { return s.body }
func (s stubResponse) StatusCode() int { return s.status }

type stubClient struct {
	mu    sync.Mutex
	calls []string
	pages map[string]stubResponse
	err   error
}

func (s *stubClient) Get(_ context.Context, url string, _ map[string]string) (httpclient.Response, error) {
	s.mu.Lock()
	s.calls = append(s.calls, url)
	s.mu.Unlock()

	if s.err != nil {
		return nil, s.err
	}
	page, ok := s.pages[url]
	if !ok {
		return stubResponse{status: 404}, nil
	}
	return page, nil
}

func (s *stubClient) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func articleHTML(text string) []byte {
	return []byte(`<html><body><article><script>var x=1;</script><p>` + text + `</p></article></body></html>`)
}

func TestResolveUsesSufficientFeedSummaryWithoutNetwork(t *testing.T) {
	client := &stubClient{}
	r := NewResolver(client, 50, 250, nil)

	summary := strings.Repeat("Crude oil markets moved sharply. ", 3)
	got := r.Resolve(context.Background(), []domain.Candidate{
		{Title: "Oil", URL: "https://news.example/oil", RawSummary: summary},
	})

	if len(got) != 1 || got[0] != strings.TrimSpace(summary) {
		t.Fatalf("Resolve = %q", got)
	}
	if client.callCount() != 0 {
		t.Fatalf("expected no network calls, got %v", client.calls)
	}
}

func TestResolveScrapesShortSummaries(t *testing.T) {
	body := strings.Repeat("Long article paragraph about crude oil supply. ", 10)
	client := &stubClient{pages: map[string]stubResponse{
		"https://news.example/a": {body: articleHTML(body), status: 200},
	}}
	r := NewResolver(client, 50, 250, nil)

	got := r.Resolve(context.Background(), []domain.Candidate{
		{Title: "A", URL: "https://news.example/a", RawSummary: "too short"},
	})

	if client.callCount() != 1 {
		t.Fatalf("expected one scrape, got %v", client.calls)
	}
	if !strings.Contains(got[0], "Long article paragraph") {
		t.Fatalf("scraped content not used: %q", got[0])
	}
	if strings.Contains(got[0], "var x=1") {
		t.Fatalf("junk selector content survived: %q", got[0])
	}
}

func TestResolveFallbackChain(t *testing.T) {
	client := &stubClient{err: errors.New("connection refused")}
	r := NewResolver(client, 50, 250, nil)

	got := r.Resolve(context.Background(), []domain.Candidate{
		{Title: "Title only", URL: "https://news.example/t", RawSummary: "short summary"},
		{Title: "Bare title", URL: "https://news.example/b"},
		{URL: "https://news.example/empty"},
	})

	if got[0] != "short summary" {
		t.Fatalf("expected raw summary fallback, got %q", got[0])
	}
	if got[1] != "Bare title" {
		t.Fatalf("expected title fallback, got %q", got[1])
	}
	if got[2] != domain.PlaceholderContent {
		t.Fatalf("expected placeholder, got %q", got[2])
	}
}

func TestResolveShortScrapeStillPreferredOverTitle(t *testing.T) {
	client := &stubClient{pages: map[string]stubResponse{
		"https://news.example/s": {body: articleHTML("Brief update."), status: 200},
	}}
	r := NewResolver(client, 50, 250, nil)

	got := r.Resolve(context.Background(), []domain.Candidate{
		{Title: "S", URL: "https://news.example/s", RawSummary: ""},
	})

	if got[0] != "Brief update." {
		t.Fatalf("Resolve = %q", got[0])
	}
}

func TestResolveIndexAlignment(t *testing.T) {
	longBody := strings.Repeat("Plenty of crude oil coverage in this piece. ", 10)
	client := &stubClient{pages: map[string]stubResponse{
		"https://news.example/1": {body: articleHTML(longBody), status: 200},
		"https://news.example/3": {body: articleHTML(longBody), status: 200},
	}}
	r := NewResolver(client, 50, 250, nil)

	sufficient := strings.Repeat("A feed summary long enough to pass the threshold. ", 2)
	got := r.Resolve(context.Background(), []domain.Candidate{
		{Title: "one", URL: "https://news.example/1", RawSummary: "x"},
		{Title: "two", URL: "https://news.example/2", RawSummary: sufficient},
		{Title: "three", URL: "https://news.example/3", RawSummary: "y"},
	})

	if !strings.Contains(got[0], "Plenty of crude oil") {
		t.Fatalf("index 0 misaligned: %q", got[0])
	}
	if got[1] != strings.TrimSpace(sufficient) {
		t.Fatalf("index 1 misaligned: %q", got[1])
	}
	if !strings.Contains(got[2], "Plenty of crude oil") {
		t.Fatalf("index 2 misaligned: %q", got[2])
	}
}

func TestResolveProgressCallback(t *testing.T) {
	client := &stubClient{err: errors.New("down")}
	r := NewResolver(client, 50, 250, nil)

	var mu sync.Mutex
	var seen []int
	r.Progress = func(done, total int) {
		mu.Lock()
		seen = append(seen, done)
		mu.Unlock()
		if total != 2 {
			t.Errorf("total = %d, want 2", total)
		}
	}

	r.Resolve(context.Background(), []domain.Candidate{
		{Title: "a", URL: "https://news.example/a"},
		{Title: "b", URL: "https://news.example/b"},
	})

	if len(seen) != 2 {
		t.Fatalf("progress calls = %d, want 2", len(seen))
	}
}
