// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Summary is the shared snapshot the widget command reads. The schema is
// deliberately tiny: two integer values and two string values, written as a
// whole by the host client and read-only from the widget side.
type Summary struct {
	// Handle of the account the snapshot belongs to.
	Handle string `json:"handle"`

	// LatestNotification is a one-line description of the most recent
	// notification, empty when there is none.
	LatestNotification string `json:"latestNotification"`

	// FollowersCount is the account's follower count at write time.
	FollowersCount int64 `json:"followersCount"`

	// UnreadCount is the unread notification count at write time.
	UnreadCount int64 `json:"unreadCount"`

	// UpdatedAt is when the host client last wrote the snapshot.
	UpdatedAt time.Time `json:"updatedAt"`
}
