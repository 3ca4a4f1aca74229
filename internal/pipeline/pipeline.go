package pipeline

import (
	"context"
	"fmt"

	"github.com/enerlens-hq/enerlens-pipeline/internal/classify"
	"github.com/enerlens-hq/enerlens-pipeline/internal/domain"
	"github.com/enerlens-hq/enerlens-pipeline/internal/extract"
	"github.com/enerlens-hq/enerlens-pipeline/internal/logger"
	"github.com/enerlens-hq/enerlens-pipeline/internal/resolve"
	"github.com/enerlens-hq/enerlens-pipeline/internal/summarize"
	"github.com/enerlens-hq/enerlens-pipeline/pkg/feeds"
)

// Pipeline runs the full ingestion pass: fetch -> extract -> resolve ->
// summarize+classify. Stages execute in strict sequence; fan-out
// concurrency lives inside the fetcher and the resolver only. Failure
// anywhere degrades to fewer or zero articles, never to an error
// surfaced to the caller (context cancellation aside).
type Pipeline struct {
	sources    []feeds.Source
	fetcher    *feeds.Fetcher
	extractor  *extract.Extractor
	resolver   *resolve.Resolver
	summarizer *summarize.Summarizer
	classifier *classify.Classifier
	observer   Observer
	log        logger.Logger
}

// New wires a pipeline from its stage components.
func New(
	sources []feeds.Source,
	fetcher *feeds.Fetcher,
	extractor *extract.Extractor,
	resolver *resolve.Resolver,
	summarizer *summarize.Summarizer,
	classifier *classify.Classifier,
	observer Observer,
	log logger.Logger,
) (*Pipeline, error) {
	if fetcher == nil || extractor == nil || resolver == nil || summarizer == nil || classifier == nil {
		return nil, fmt.Errorf("pipeline requires all stage components")
	}

	obs := ensureObserver(observer)
	fetcher.Progress = func(done, total int) { obs.ItemDone(StageFetch, done, total) }
	resolver.Progress = func(done, total int) { obs.ItemDone(StageResolve, done, total) }

	return &Pipeline{
		sources:    sources,
		fetcher:    fetcher,
		extractor:  extractor,
		resolver:   resolver,
		summarizer: summarizer,
		classifier: classifier,
		observer:   obs,
		log:        logger.Ensure(log),
	}, nil
}

// Produce executes one full refresh and returns the processed articles
// ordered by recency. An empty result is a normal terminal state.
func (p *Pipeline) Produce(ctx context.Context) ([]domain.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.observer.StageStarted(StageFetch, len(p.sources))
	payloads := p.fetcher.FetchAll(ctx, p.sources)
	p.observer.StageCompleted(StageFetch, len(payloads))

	p.observer.StageStarted(StageExtract, len(payloads))
	candidates := p.extractor.Extract(payloads)
	p.observer.StageCompleted(StageExtract, len(candidates))

	if len(candidates) == 0 {
		p.log.InfoObj("no relevant candidates after extraction", "pipeline_result", map[string]any{
			"sources": len(p.sources),
		})
		return []domain.Article{}, nil
	}

	p.observer.StageStarted(StageResolve, len(candidates))
	contents := p.resolver.Resolve(ctx, candidates)
	p.observer.StageCompleted(StageResolve, len(contents))

	p.observer.StageStarted(StageSummarize, len(candidates))
	articles := make([]domain.Article, 0, len(candidates))
	for i, cand := range candidates {
		content := contents[i]
		summary := summarize.CleanForMarkdown(p.summarizer.Summarize(content))

		// Title plus resolved content gives the classifier more signal
		// than the summary alone.
		region, stream := p.classifier.Classify(cand.Title + " " + content)

		articles = append(articles, domain.Article{
			Title:       cand.Title,
			Summary:     summary,
			Region:      region,
			Stream:      stream,
			URL:         cand.URL,
			PublishedAt: cand.PublishedAt,
			SourceName:  cand.SourceName,
		})
		p.observer.ItemDone(StageSummarize, i+1, len(candidates))
	}
	p.observer.StageCompleted(StageSummarize, len(articles))

	domain.SortByRecency(articles)

	p.log.InfoObj("pipeline run completed", "pipeline_result", map[string]any{
		"sources":  len(p.sources),
		"articles": len(articles),
	})
	return articles, nil
}
