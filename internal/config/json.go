package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Duration wraps time.Duration so JSON config files can spell intervals as
// strings ("15s", "5m") instead of nanosecond integers.
type Duration struct {
	time.Duration
}

// UnmarshalJSON implements json.Unmarshaler. Accepts either a duration
// string or a bare number of nanoseconds.
func (d *Duration) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		parsed, parseErr := time.ParseDuration(asString)
		if parseErr != nil {
			return fmt.Errorf("invalid duration %q: %w", asString, parseErr)
		}
		d.Duration = parsed
		return nil
	}

	var asInt int64
	if err := json.Unmarshal(data, &asInt); err != nil {
		return fmt.Errorf("invalid duration value: %w", err)
	}
	d.Duration = time.Duration(asInt)
	return nil
}

// JSONConfig mirrors [Config] with JSON tags and string durations.
type JSONConfig struct {
	App struct {
		PageSize     int    `json:"page_size"`
		MaxFeedItems int    `json:"max_feed_items"`
		Version      string `json:"version"`
	} `json:"app,omitempty"`

	Service struct {
		Endpoint       string   `json:"endpoint"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"service,omitempty"`

	Storage struct {
		DB struct {
			Path string `json:"path"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Vault struct {
		Passphrase string `json:"passphrase"`
	} `json:"vault,omitempty"`

	Jobs struct {
		SummaryInterval Duration `json:"summary_interval"`
		RefreshAhead    Duration `json:"refresh_ahead"`
	} `json:"jobs,omitempty"`
}

func parseJSON(jsonFilePath string) (*Config, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg JSONConfig
	if err = json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json config: %w", err)
	}

	cfg := &Config{}
	cfg.App.PageSize = jsonCfg.App.PageSize
	cfg.App.MaxFeedItems = jsonCfg.App.MaxFeedItems
	cfg.App.Version = jsonCfg.App.Version
	cfg.Service.Endpoint = jsonCfg.Service.Endpoint
	cfg.Service.RequestTimeout = jsonCfg.Service.RequestTimeout.Duration
	cfg.Storage.DB.Path = jsonCfg.Storage.DB.Path
	cfg.Vault.Passphrase = jsonCfg.Vault.Passphrase
	cfg.Jobs.SummaryInterval = jsonCfg.Jobs.SummaryInterval.Duration
	cfg.Jobs.RefreshAhead = jsonCfg.Jobs.RefreshAhead.Duration

	return cfg, nil
}
