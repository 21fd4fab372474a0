package config

import "time"

// Built-in fallbacks, applied after all explicit sources.
const (
	DefaultEndpoint        = "https://bsky.social"
	DefaultRequestTimeout  = 15 * time.Second
	DefaultPageSize        = 50
	DefaultMaxFeedItems    = 1000
	DefaultSummaryInterval = 5 * time.Minute
	DefaultRefreshAhead    = 2 * time.Minute
)

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Service.Endpoint = DefaultEndpoint
	cfg.Service.RequestTimeout = DefaultRequestTimeout
	cfg.App.PageSize = DefaultPageSize
	cfg.App.MaxFeedItems = DefaultMaxFeedItems
	cfg.Jobs.SummaryInterval = DefaultSummaryInterval
	cfg.Jobs.RefreshAhead = DefaultRefreshAhead
	return cfg
}
