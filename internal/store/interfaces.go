package store

import (
	"context"

	"github.com/MKhiriev/go-sky-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BookmarkRepository is the local bookmark storage. Bookmarks are scoped by
// account DID and listed newest-first with cursor pagination, matching the
// shape of the remote feed endpoints so the same pager can drive them.
type BookmarkRepository interface {
	SaveBookmark(ctx context.Context, bookmark models.Bookmark) error
	DeleteBookmark(ctx context.Context, accountDID, uri string) error
	IsBookmarked(ctx context.Context, accountDID, uri string) (bool, error)
	ListBookmarks(ctx context.Context, accountDID, cursor string, limit int) ([]models.Bookmark, string, error)
}

// SummaryRepository persists the widget summary snapshot. The snapshot is a
// single row; every save replaces it wholesale.
type SummaryRepository interface {
	SaveSummary(ctx context.Context, summary models.Summary) error
	GetSummary(ctx context.Context) (models.Summary, error)
}

// SessionBlobRepository stores the sealed session credential blob. The blob
// is opaque ciphertext; sealing and opening happen in the session package.
type SessionBlobRepository interface {
	SaveSessionBlob(ctx context.Context, blob []byte) error
	LoadSessionBlob(ctx context.Context) ([]byte, error)
	DeleteSessionBlob(ctx context.Context) error
}
