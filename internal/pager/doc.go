// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package pager implements the cursor-based list-state engine shared by all
// paginated screens (timeline, author feed, notifications, bookmarks).
//
// A Pager owns one accumulated list and walks it through the phases
// uninitialized → loading → loaded → failed. Exactly one fetch may be in
// flight per Pager; callers that race get ErrFetchInFlight instead of
// corrupted ordering. The engine performs no deduplication across pages;
// that remains the caller's concern.
package pager
