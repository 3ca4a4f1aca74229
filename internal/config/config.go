package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from files and
// environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	FeedsFile      string `mapstructure:"feeds_file"`
	TaxonomyFile   string `mapstructure:"taxonomy_file"`
	PublishersFile string `mapstructure:"publishers_file"`

	RefreshIntervalSeconds int64         `mapstructure:"refresh_interval"`
	RefreshInterval        time.Duration `mapstructure:"-"`
	CacheTTLHours          int64         `mapstructure:"cache_ttl_hours"`
	CacheTTL               time.Duration `mapstructure:"-"`

	MinRSSSummaryLength     int `mapstructure:"min_rss_summary_length"`
	MinScrapedContentLength int `mapstructure:"min_scraped_content_length"`
	MaxArticles             int `mapstructure:"max_articles"`
	SummarySentences        int `mapstructure:"summary_sentences"`

	FeedTimeoutSeconds   int64         `mapstructure:"feed_timeout_seconds"`
	FeedTimeout          time.Duration `mapstructure:"-"`
	ScrapeTimeoutSeconds int64         `mapstructure:"scrape_timeout_seconds"`
	ScrapeTimeout        time.Duration `mapstructure:"-"`

	BookmarksStore string `mapstructure:"bookmarks_store"`
	BookmarksPath  string `mapstructure:"bookmarks_path"`
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")

	v := viper.New()

	v.SetDefault("app_name", "enerlens-pipeline")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("feeds_file", "./configs/feeds.yaml")
	v.SetDefault("taxonomy_file", "")
	v.SetDefault("publishers_file", "")
	v.SetDefault("refresh_interval", int64((1*time.Hour)/time.Second))
	v.SetDefault("cache_ttl_hours", 24)
	v.SetDefault("min_rss_summary_length", 50)
	v.SetDefault("min_scraped_content_length", 250)
	v.SetDefault("max_articles", 150)
	v.SetDefault("summary_sentences", 3)
	v.SetDefault("feed_timeout_seconds", 15)
	v.SetDefault("scrape_timeout_seconds", 20)
	v.SetDefault("bookmarks_store", "none")
	v.SetDefault("bookmarks_path", "./data/bookmarks.db")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.RefreshIntervalSeconds <= 0 {
		return nil, fmt.Errorf("invalid refresh_interval (must be positive seconds)")
	}
	cfg.RefreshInterval = time.Duration(cfg.RefreshIntervalSeconds) * time.Second

	if cfg.CacheTTLHours <= 0 {
		return nil, fmt.Errorf("invalid cache_ttl_hours (must be positive hours)")
	}
	cfg.CacheTTL = time.Duration(cfg.CacheTTLHours) * time.Hour

	if cfg.MinRSSSummaryLength <= 0 {
		return nil, fmt.Errorf("invalid min_rss_summary_length (must be positive)")
	}
	if cfg.MinScrapedContentLength <= 0 {
		return nil, fmt.Errorf("invalid min_scraped_content_length (must be positive)")
	}
	if cfg.MaxArticles <= 0 {
		return nil, fmt.Errorf("invalid max_articles (must be positive)")
	}
	if cfg.SummarySentences <= 0 {
		return nil, fmt.Errorf("invalid summary_sentences (must be positive)")
	}
	if cfg.FeedTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid feed_timeout_seconds (must be positive seconds)")
	}
	if cfg.ScrapeTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid scrape_timeout_seconds (must be positive seconds)")
	}
	cfg.FeedTimeout = time.Duration(cfg.FeedTimeoutSeconds) * time.Second
	cfg.ScrapeTimeout = time.Duration(cfg.ScrapeTimeoutSeconds) * time.Second

	return &cfg, nil
}
