// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Notification reasons as defined by app.bsky.notification.listNotifications.
const (
	NotificationLike    = "like"
	NotificationRepost  = "repost"
	NotificationFollow  = "follow"
	NotificationMention = "mention"
	NotificationReply   = "reply"
	NotificationQuote   = "quote"
)

// Notification is an immutable value record mapped 1:1 from the XRPC
// notification view.
type Notification struct {
	// URI is the AT-URI of the record that produced the notification
	// (the like record, the reply post, etc.).
	URI string `json:"uri"`

	// CID is the content identifier of that record.
	CID string `json:"cid"`

	Author Author `json:"author"`

	// Reason is one of the Notification* constants.
	Reason string `json:"reason"`

	// ReasonSubject is the AT-URI of the viewer's record the notification
	// is about (e.g. the liked post). Empty for follows.
	ReasonSubject string `json:"reasonSubject,omitempty"`

	IsRead    bool      `json:"isRead"`
	IndexedAt time.Time `json:"indexedAt"`
}
