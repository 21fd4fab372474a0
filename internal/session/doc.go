// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session owns the AT Protocol credential bundle.
//
// The Manager is the single writer of the current session configuration:
// login, refresh, restore, and logout replace or clear the whole bundle
// atomically and publish the change to every subscriber. Local state is
// authoritative: a logout clears the configuration even when the remote
// revoke fails, and a failed refresh is treated as a forced sign-out.
package session
