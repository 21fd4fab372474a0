// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-sky-client/models"
)

const defaultBookmarkPageSize = 50

const (
	isBookmarkedQuery = `
		SELECT COUNT(1)
		FROM bookmarks
		WHERE account_did = ? AND uri = ?;`

	upsertSummary = `
		INSERT INTO summary (
			id,
			handle,
			latest_notification,
			followers_count,
			unread_count,
			updated_at
		) VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			handle              = excluded.handle,
			latest_notification = excluded.latest_notification,
			followers_count     = excluded.followers_count,
			unread_count        = excluded.unread_count,
			updated_at          = excluded.updated_at;`

	getSummaryQuery = `
		SELECT
			handle,
			latest_notification,
			followers_count,
			unread_count,
			updated_at
		FROM summary
		WHERE id = 1;`

	upsertSessionBlob = `
		INSERT INTO session_blob (id, blob, updated_at)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			blob       = excluded.blob,
			updated_at = excluded.updated_at;`

	getSessionBlob = `
		SELECT blob
		FROM session_blob
		WHERE id = 1;`

	deleteSessionBlob = `
		DELETE FROM session_blob
		WHERE id = 1;`
)

// buildSaveBookmarkQuery builds an idempotent insert: re-bookmarking the same
// post replaces the existing row for that (account_did, uri) pair.
func buildSaveBookmarkQuery(bookmark models.Bookmark) (string, []any, error) {
	return sq.Insert("bookmarks").
		Options("OR REPLACE").
		Columns("id", "account_did", "uri", "cid", "author_handle", "text", "saved_at").
		Values(bookmark.ID, bookmark.AccountDID, bookmark.URI, bookmark.CID, bookmark.AuthorHandle, bookmark.Text, bookmark.SavedAt).
		ToSql()
}

// buildDeleteBookmarkQuery builds a delete scoped by account and post URI.
func buildDeleteBookmarkQuery(accountDID, uri string) (string, []any, error) {
	return sq.Delete("bookmarks").
		Where(sq.Eq{"account_did": accountDID, "uri": uri}).
		ToSql()
}

// buildListBookmarksQuery builds a newest-first page query. When cursor is
// non-empty it continues strictly after the row the cursor points at; rows
// are ordered by (saved_at, id) descending so the cursor is stable even when
// two bookmarks share a timestamp.
func buildListBookmarksQuery(accountDID, cursor string, limit int) (string, []any, error) {
	if limit <= 0 {
		limit = defaultBookmarkPageSize
	}

	builder := sq.Select("id", "account_did", "uri", "cid", "author_handle", "text", "saved_at").
		From("bookmarks").
		Where(sq.Eq{"account_did": accountDID}).
		OrderBy("saved_at DESC", "id DESC").
		Limit(uint64(limit))

	if cursor != "" {
		savedAt, id, err := decodeBookmarkCursor(cursor)
		if err != nil {
			return "", nil, err
		}
		builder = builder.Where(sq.Or{
			sq.Lt{"saved_at": savedAt},
			sq.And{sq.Eq{"saved_at": savedAt}, sq.Lt{"id": id}},
		})
	}

	return builder.ToSql()
}

// encodeBookmarkCursor produces the opaque cursor pointing at a row.
func encodeBookmarkCursor(bookmark models.Bookmark) string {
	return strconv.FormatInt(bookmark.SavedAt.UnixNano(), 10) + "|" + bookmark.ID
}

func decodeBookmarkCursor(cursor string) (time.Time, string, error) {
	nanos, id, ok := strings.Cut(cursor, "|")
	if !ok || id == "" {
		return time.Time{}, "", fmt.Errorf("%w: %q", ErrInvalidCursor, cursor)
	}

	n, err := strconv.ParseInt(nanos, 10, 64)
	if err != nil {
		return time.Time{}, "", fmt.Errorf("%w: %q", ErrInvalidCursor, cursor)
	}

	return time.Unix(0, n), id, nil
}
