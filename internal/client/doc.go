// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI flows, the session manager, and the background
// jobs (proactive token refresh, widget summary snapshots) into a single
// process lifecycle.
package client
