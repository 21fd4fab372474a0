package models

import "time"

// Bookmark is a locally saved post reference. Bookmarks never leave the
// device; they live in the client database only.
type Bookmark struct {
	// ID is the client-assigned row identifier (UUID).
	ID string

	// AccountDID scopes the bookmark to the account that saved it.
	AccountDID string

	// URI is the AT-URI of the bookmarked post.
	URI string

	// CID is the content hash of the post version that was bookmarked.
	CID string

	// AuthorHandle is the post author's handle at save time.
	AuthorHandle string

	// Text is the post text at save time.
	Text string

	// SavedAt is when the bookmark was created locally.
	SavedAt time.Time
}
