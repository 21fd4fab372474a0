// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config loads and validates the go-sky-client configuration.
//
// Values are assembled from three sources and merged with mergo (first
// non-zero value wins): environment variables, command-line flags, and an
// optional JSON file whose path is itself resolved from the first two
// sources.
package config
