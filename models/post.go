// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Author identifies the account that wrote a post.
type Author struct {
	// DID is the author's decentralized identifier.
	DID string `json:"did"`

	// Handle is the author's current handle.
	Handle string `json:"handle"`

	// DisplayName is the author's optional profile display name.
	DisplayName string `json:"displayName,omitempty"`
}

// ViewerState holds the signed-in account's relationship to a post.
//
// LikeURI and RepostURI are the AT-URIs of the viewer's own like/repost
// records; a non-empty value both marks the post as liked/reposted and
// is required to delete the record again. Bookmarked is client-local
// state with no server-side counterpart.
type ViewerState struct {
	LikeURI    string `json:"like,omitempty"`
	RepostURI  string `json:"repost,omitempty"`
	Bookmarked bool   `json:"bookmarked,omitempty"`
}

// Post is an immutable value record mapped 1:1 from the XRPC post view.
// Posts have no independent lifecycle on the client: they exist only as
// long as a list-state snapshot references them.
type Post struct {
	// URI is the AT-URI of the post record
	// (e.g. "at://did:plc:abc/app.bsky.feed.post/3l3qo2vuowo2b").
	URI string `json:"uri"`

	// CID is the content identifier of the record revision.
	CID string `json:"cid"`

	Author Author `json:"author"`

	// Text is the post body.
	Text string `json:"text"`

	CreatedAt time.Time `json:"createdAt"`
	IndexedAt time.Time `json:"indexedAt"`

	ReplyCount  int64 `json:"replyCount"`
	RepostCount int64 `json:"repostCount"`
	LikeCount   int64 `json:"likeCount"`

	Viewer ViewerState `json:"viewer"`
}

// FeedItem is one entry of a feed page: a post plus the optional reason it
// appears in the feed (repost attribution).
type FeedItem struct {
	Post Post `json:"post"`

	// RepostedBy is the handle of the account whose repost surfaced this
	// post in the feed. Empty for original posts.
	RepostedBy string `json:"repostedBy,omitempty"`
}
