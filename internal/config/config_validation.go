// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [Config] satisfies all application
// invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *Config) validate() error {
	if cfg.Service.Endpoint == "" || cfg.Service.RequestTimeout <= 0 {
		return ErrInvalidServiceConfigs
	}

	if !strings.Contains(cfg.Service.Endpoint, "://") {
		return ErrInvalidServiceConfigs
	}

	if cfg.Storage.DB.Path == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.PageSize <= 0 || cfg.App.PageSize > 100 {
		return ErrInvalidAppConfigs
	}

	if cfg.App.MaxFeedItems < 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Jobs.SummaryInterval <= 0 || cfg.Jobs.RefreshAhead <= 0 {
		return ErrInvalidJobConfigs
	}

	return nil
}
