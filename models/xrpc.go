// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// Wire-level request and response shapes for the XRPC endpoints the client
// consumes. These mirror the lexicon JSON exactly; the adapter maps them to
// the value records above ([Post], [Profile], [Notification]) before anything
// else sees them.

// XRPCErrorBody is the standard XRPC failure payload.
type XRPCErrorBody struct {
	// Error is the machine-readable error name (e.g. "ExpiredToken").
	Error string `json:"error"`

	// Message is the optional human-readable detail.
	Message string `json:"message,omitempty"`
}

// CreateSessionRequest is the body of com.atproto.server.createSession.
type CreateSessionRequest struct {
	// Identifier is a handle, DID, or email.
	Identifier string `json:"identifier"`

	// Password is the account or app password.
	Password string `json:"password"`
}

// SessionResponse is the body returned by createSession and refreshSession.
type SessionResponse struct {
	DID        string `json:"did"`
	Handle     string `json:"handle"`
	AccessJWT  string `json:"accessJwt"`
	RefreshJWT string `json:"refreshJwt"`
}

// AuthorView is the wire shape of a post author / notification author.
type AuthorView struct {
	DID         string `json:"did"`
	Handle      string `json:"handle"`
	DisplayName string `json:"displayName,omitempty"`
}

// ViewerStateView is the wire shape of the per-post viewer block.
type ViewerStateView struct {
	Like   string `json:"like,omitempty"`
	Repost string `json:"repost,omitempty"`
}

// PostRecordView is the decoded app.bsky.feed.post record embedded in a
// post view.
type PostRecordView struct {
	Type      string    `json:"$type"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostView is the wire shape of app.bsky.feed.defs#postView.
type PostView struct {
	URI    string     `json:"uri"`
	CID    string     `json:"cid"`
	Author AuthorView `json:"author"`

	// Record is the raw post record; decoded lazily into [PostRecordView]
	// because other record types can appear here in future lexicons.
	Record json.RawMessage `json:"record"`

	ReplyCount  int64 `json:"replyCount"`
	RepostCount int64 `json:"repostCount"`
	LikeCount   int64 `json:"likeCount"`

	IndexedAt time.Time       `json:"indexedAt"`
	Viewer    ViewerStateView `json:"viewer"`
}

// ReasonView is the wire shape of app.bsky.feed.defs#reasonRepost.
type ReasonView struct {
	Type string     `json:"$type"`
	By   AuthorView `json:"by"`
}

// FeedViewPost is one entry of a feed response.
type FeedViewPost struct {
	Post   PostView    `json:"post"`
	Reason *ReasonView `json:"reason,omitempty"`
}

// FeedResponse is the body of getTimeline and getAuthorFeed.
type FeedResponse struct {
	Feed   []FeedViewPost `json:"feed"`
	Cursor string         `json:"cursor,omitempty"`
}

// ProfileView is the body of app.bsky.actor.getProfile.
type ProfileView struct {
	DID            string `json:"did"`
	Handle         string `json:"handle"`
	DisplayName    string `json:"displayName,omitempty"`
	Description    string `json:"description,omitempty"`
	FollowersCount int64  `json:"followersCount"`
	FollowsCount   int64  `json:"followsCount"`
	PostsCount     int64  `json:"postsCount"`
}

// NotificationView is one entry of listNotifications.
type NotificationView struct {
	URI           string     `json:"uri"`
	CID           string     `json:"cid"`
	Author        AuthorView `json:"author"`
	Reason        string     `json:"reason"`
	ReasonSubject string     `json:"reasonSubject,omitempty"`
	IsRead        bool       `json:"isRead"`
	IndexedAt     time.Time  `json:"indexedAt"`
}

// NotificationsResponse is the body of listNotifications.
type NotificationsResponse struct {
	Notifications []NotificationView `json:"notifications"`
	Cursor        string             `json:"cursor,omitempty"`
}

// UnreadCountResponse is the body of getUnreadCount.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

// StrongRef is a com.atproto.repo.strongRef: a URI/CID pair identifying an
// exact record revision.
type StrongRef struct {
	URI string `json:"uri"`
	CID string `json:"cid"`
}

// SubjectRecord is the record body for like and repost records; both
// lexicons share this shape and differ only in $type.
type SubjectRecord struct {
	Type      string    `json:"$type"`
	Subject   StrongRef `json:"subject"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateRecordRequest is the body of com.atproto.repo.createRecord.
type CreateRecordRequest struct {
	Repo       string `json:"repo"`
	Collection string `json:"collection"`
	Record     any    `json:"record"`
}

// CreateRecordResponse is the body returned by createRecord.
type CreateRecordResponse struct {
	URI string `json:"uri"`
	CID string `json:"cid"`
}

// DeleteRecordRequest is the body of com.atproto.repo.deleteRecord.
type DeleteRecordRequest struct {
	Repo       string `json:"repo"`
	Collection string `json:"collection"`
	RKey       string `json:"rkey"`
}
