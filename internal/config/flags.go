package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-e/-endpoint PDS base URL (e.g. "https://bsky.social")
//	-d database file path
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "15s")
//	-page-size items requested per paginated fetch
//	-max-feed-items client-side cap on accumulated feed items
//	-summary-interval widget summary rewrite interval (e.g., "5m")
//	-refresh-ahead how long before token expiry to refresh (e.g., "2m")
func ParseFlags() *Config {
	var endpoint string
	var dbPath string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var pageSize int
	var maxFeedItems int
	var summaryInterval time.Duration
	var refreshAhead time.Duration

	flag.StringVar(&endpoint, "e", "", "PDS base URL")
	flag.StringVar(&endpoint, "endpoint", "", "PDS base URL (alias)")
	flag.StringVar(&dbPath, "d", "", "Local database file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	flag.IntVar(&pageSize, "page-size", 0, "Items per paginated fetch")
	flag.IntVar(&maxFeedItems, "max-feed-items", 0, "Cap on accumulated feed items (0 = unbounded)")
	flag.DurationVar(&summaryInterval, "summary-interval", 0, "Widget summary rewrite interval")
	flag.DurationVar(&refreshAhead, "refresh-ahead", 0, "Refresh session this long before expiry")

	flag.Parse()

	cfg := &Config{}
	cfg.Service.Endpoint = endpoint
	cfg.Service.RequestTimeout = requestTimeout
	cfg.Storage.DB.Path = dbPath
	cfg.App.PageSize = pageSize
	cfg.App.MaxFeedItems = maxFeedItems
	cfg.Jobs.SummaryInterval = summaryInterval
	cfg.Jobs.RefreshAhead = refreshAhead
	cfg.JSONFilePath = jsonConfigPath

	return cfg
}
