// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {"page_size": 25, "max_feed_items": 500, "version": "1.2.3"},
		"service": {"endpoint": "https://pds.example.org", "request_timeout": "20s"},
		"storage": {"db": {"path": "/tmp/sky.db"}},
		"vault": {"passphrase": "hunter2"},
		"jobs": {"summary_interval": "10m", "refresh_ahead": "90s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.App.PageSize)
	assert.Equal(t, 500, cfg.App.MaxFeedItems)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "https://pds.example.org", cfg.Service.Endpoint)
	assert.Equal(t, 20*time.Second, cfg.Service.RequestTimeout)
	assert.Equal(t, "/tmp/sky.db", cfg.Storage.DB.Path)
	assert.Equal(t, "hunter2", cfg.Vault.Passphrase)
	assert.Equal(t, 10*time.Minute, cfg.Jobs.SummaryInterval)
	assert.Equal(t, 90*time.Second, cfg.Jobs.RefreshAhead)
}

func TestParseJSON_DurationAsNanoseconds(t *testing.T) {
	path := writeTempJSON(t, `{"service": {"request_timeout": 15000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.Service.RequestTimeout)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := writeTempJSON(t, `{"service": {"request_timeout": "soon"}}`)

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, `{"service": `)

	_, err := parseJSON(path)
	require.Error(t, err)
}
