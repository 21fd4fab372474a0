// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-sky-client/internal/logger"
	"github.com/MKhiriev/go-sky-client/models"
)

// bookmarkRepository is the SQLite-backed implementation of
// [BookmarkRepository]. All queries are scoped by account DID so that
// bookmarks of different accounts sharing the device never mix.
type bookmarkRepository struct {
	*DB
	logger *logger.Logger
}

func NewBookmarkRepository(db *DB, logger *logger.Logger) BookmarkRepository {
	logger.Debug().Msg("creating bookmark repository")
	return &bookmarkRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveBookmark persists a bookmark. A missing ID is assigned here; saving the
// same post twice replaces the earlier row.
func (r *bookmarkRepository) SaveBookmark(ctx context.Context, bookmark models.Bookmark) error {
	log := logger.FromContext(ctx)

	if bookmark.ID == "" {
		bookmark.ID = uuid.NewString()
	}

	query, args, err := buildSaveBookmarkQuery(bookmark)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.SaveBookmark").
			Str("uri", bookmark.URI).
			Msg("failed to build bookmark insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.SaveBookmark").
			Str("account_did", bookmark.AccountDID).
			Str("uri", bookmark.URI).
			Msg("failed to execute bookmark insert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteBookmark removes the bookmark for the given post. Returns
// [ErrBookmarkNotFound] when nothing was deleted.
func (r *bookmarkRepository) DeleteBookmark(ctx context.Context, accountDID, uri string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBookmarkQuery(accountDID, uri)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.DeleteBookmark").
			Str("uri", uri).
			Msg("failed to build bookmark delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.DeleteBookmark").
			Str("account_did", accountDID).
			Str("uri", uri).
			Msg("failed to execute bookmark delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookmarkNotFound
	}

	return nil
}

// IsBookmarked reports whether the account has bookmarked the given post.
func (r *bookmarkRepository) IsBookmarked(ctx context.Context, accountDID, uri string) (bool, error) {
	log := logger.FromContext(ctx)

	var count int64
	row := r.DB.QueryRowContext(ctx, isBookmarkedQuery, accountDID, uri)
	if err := row.Scan(&count); err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.IsBookmarked").
			Str("uri", uri).
			Msg("failed to scan bookmark count")
		return false, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return count > 0, nil
}

// ListBookmarks returns one newest-first page of bookmarks plus the cursor
// for the next page. An empty next cursor means the listing is exhausted.
func (r *bookmarkRepository) ListBookmarks(ctx context.Context, accountDID, cursor string, limit int) ([]models.Bookmark, string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListBookmarksQuery(accountDID, cursor, limit)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.ListBookmarks").
			Str("account_did", accountDID).
			Msg("failed to build bookmark list query")
		if errors.Is(err, ErrInvalidCursor) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "bookmarkRepository.ListBookmarks").
			Str("account_did", accountDID).
			Msg("failed to execute bookmark list query")
		return nil, "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	if limit <= 0 {
		limit = defaultBookmarkPageSize
	}
	results := make([]models.Bookmark, 0, limit)

	for rows.Next() {
		var item models.Bookmark

		scanErr := rows.Scan(
			&item.ID,
			&item.AccountDID,
			&item.URI,
			&item.CID,
			&item.AuthorHandle,
			&item.Text,
			&item.SavedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "bookmarkRepository.ListBookmarks").
				Str("account_did", accountDID).
				Msg("failed to scan bookmark row")
			return nil, "", fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "bookmarkRepository.ListBookmarks").
			Str("account_did", accountDID).
			Msg("error occurred during rows iteration")
		return nil, "", fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	// a short page means there is nothing after it
	nextCursor := ""
	if len(results) == limit {
		nextCursor = encodeBookmarkCursor(results[len(results)-1])
	}

	return results, nextCursor, nil
}
