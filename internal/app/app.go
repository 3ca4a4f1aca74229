package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/enerlens-hq/enerlens-pipeline/internal/bookmarks"
	"github.com/enerlens-hq/enerlens-pipeline/internal/cache"
	"github.com/enerlens-hq/enerlens-pipeline/internal/classify"
	"github.com/enerlens-hq/enerlens-pipeline/internal/config"
	"github.com/enerlens-hq/enerlens-pipeline/internal/domain"
	"github.com/enerlens-hq/enerlens-pipeline/internal/extract"
	"github.com/enerlens-hq/enerlens-pipeline/internal/logger"
	"github.com/enerlens-hq/enerlens-pipeline/internal/pipeline"
	"github.com/enerlens-hq/enerlens-pipeline/internal/resolve"
	"github.com/enerlens-hq/enerlens-pipeline/internal/summarize"
	"github.com/enerlens-hq/enerlens-pipeline/internal/taxonomy"
	"github.com/enerlens-hq/enerlens-pipeline/pkg/feeds"
	"github.com/enerlens-hq/enerlens-pipeline/pkg/httpclient"
	"github.com/enerlens-hq/enerlens-pipeline/pkg/publishers"
)

// Runtime wires the feed registry, pipeline stages, result cache, and
// downstream publishers and drives the refresh loop.
type Runtime struct {
	cfg       *config.Config
	cache     *cache.ResultCache
	fanout    *publishers.Fanout
	bookmarks bookmarks.Store
	log       logger.Logger
}

// NewRuntime builds the full application runtime from config files.
func NewRuntime(ctx context.Context, cfg *config.Config, log logger.Logger) (*Runtime, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	log = logger.Ensure(log)

	tax, err := loadTaxonomy(cfg.TaxonomyFile)
	if err != nil {
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}

	feedReg, err := feeds.LoadRegistry(cfg.FeedsFile)
	if err != nil {
		return nil, fmt.Errorf("load feeds registry: %w", err)
	}
	log.InfoObj("feeds registry loaded", "feeds", feedReg.All())

	fanout, err := buildFanout(ctx, cfg.PublishersFile, log)
	if err != nil {
		return nil, err
	}

	marks, err := bookmarks.NewStore(cfg.BookmarksStore, cfg.BookmarksPath)
	if err != nil {
		return nil, fmt.Errorf("open bookmark store: %w", err)
	}

	fetcher := feeds.NewFetcher(httpclient.NewRestyClient(cfg.FeedTimeout), log)
	extractor := extract.NewExtractor(tax, cfg.MaxArticles, log)
	resolver := resolve.NewResolver(
		httpclient.NewRestyClient(cfg.ScrapeTimeout),
		cfg.MinRSSSummaryLength,
		cfg.MinScrapedContentLength,
		log,
	)
	summarizer := summarize.NewSummarizer(cfg.SummarySentences)
	summarizer.MinSummaryLen = cfg.MinRSSSummaryLength
	classifier := classify.NewClassifier(tax)

	pipe, err := pipeline.New(feedReg.All(), fetcher, extractor, resolver, summarizer, classifier, nil, log)
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}

	producer := publishingProducer(pipe, fanout, log)
	resultCache := cache.New(producer, cfg.CacheTTL, log)

	return &Runtime{
		cfg:       cfg,
		cache:     resultCache,
		fanout:    fanout,
		bookmarks: marks,
		log:       log,
	}, nil
}

// loadTaxonomy reads the taxonomy file when one is configured, falling
// back to the built-in keyword sets otherwise.
func loadTaxonomy(path string) (*taxonomy.Taxonomy, error) {
	if path == "" {
		return taxonomy.Default(), nil
	}
	return taxonomy.Load(path)
}

// buildFanout assembles publishers from the configured file. No file
// means no downstream sinks, which is a valid standalone setup.
func buildFanout(ctx context.Context, path string, log logger.Logger) (*publishers.Fanout, error) {
	if path == "" {
		return publishers.NewFanout(nil), nil
	}

	reg, err := publishers.LoadRegistry(path)
	if err != nil {
		return nil, fmt.Errorf("load publishers registry: %w", err)
	}
	enabled := reg.Enabled()

	pubs, err := publishers.BuildAll(ctx, publishers.DefaultRegistry(), enabled, log)
	if err != nil {
		return nil, fmt.Errorf("build publishers: %w", err)
	}
	log.InfoObj("publishers registry loaded", "publishers", enabled)
	return publishers.NewFanout(pubs), nil
}

// publishingProducer decorates the pipeline so every successful refresh
// fans the resulting article set out to the configured sinks. Publish
// failures are logged, never propagated: a sink outage must not poison
// the cache.
func publishingProducer(pipe *pipeline.Pipeline, fanout *publishers.Fanout, log logger.Logger) cache.Producer {
	return cache.ProducerFunc(func(ctx context.Context) ([]domain.Article, error) {
		articles, err := pipe.Produce(ctx)
		if err != nil {
			return nil, err
		}
		if fanout.Size() > 0 {
			delivered, pubErr := fanout.Publish(ctx, publishers.NewEvent(articles))
			if pubErr != nil {
				log.WarnObj("refresh event delivery incomplete", "publish_result", map[string]any{
					"delivered": delivered,
					"sinks":     fanout.Size(),
					"error":     pubErr.Error(),
				})
			}
		}
		return articles, nil
	})
}

// Articles returns the current cached article set, refreshing when the
// stored result is missing or stale.
func (r *Runtime) Articles(ctx context.Context) ([]domain.Article, error) {
	return r.cache.Get(ctx)
}

// Bookmarks exposes the bookmark store.
func (r *Runtime) Bookmarks() bookmarks.Store { return r.bookmarks }

// Run performs an initial refresh and then keeps the cache warm until
// the context is cancelled. SIGHUP forces an immediate recompute.
func (r *Runtime) Run(ctx context.Context) error {
	if r == nil || r.cache == nil {
		return fmt.Errorf("runtime is not initialized")
	}
	defer r.bookmarks.Close()

	if _, err := r.cache.Refresh(ctx); err != nil {
		return fmt.Errorf("initial refresh: %w", err)
	}

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	ticker := time.NewTicker(r.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.log.InfoObj("refresh loop exiting", "reason", ctx.Err())
			return nil
		case <-hup:
			r.log.InfoObj("refresh requested via signal", "signal", "SIGHUP")
			r.cache.Invalidate()
			if _, err := r.cache.Refresh(ctx); err != nil {
				r.log.ErrorObj("forced refresh failed", "error", err)
			}
		case <-ticker.C:
			if _, err := r.cache.Get(ctx); err != nil {
				r.log.ErrorObj("scheduled refresh failed", "error", err)
			}
		}
	}
}
