package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-sky-client/internal/logger"
	"github.com/MKhiriev/go-sky-client/models"
)

// summaryRepository is the SQLite-backed implementation of
// [SummaryRepository]. The summary is a single-row snapshot shared with the
// widget command through the database file.
type summaryRepository struct {
	*DB
	logger *logger.Logger
}

func NewSummaryRepository(db *DB, logger *logger.Logger) SummaryRepository {
	logger.Debug().Msg("creating summary repository")
	return &summaryRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveSummary replaces the snapshot wholesale. Readers always observe either
// the previous snapshot or the new one, never a mix.
func (r *summaryRepository) SaveSummary(ctx context.Context, summary models.Summary) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertSummary,
		summary.Handle,
		summary.LatestNotification,
		summary.FollowersCount,
		summary.UnreadCount,
		summary.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "summaryRepository.SaveSummary").
			Str("handle", summary.Handle).
			Msg("failed to execute summary upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetSummary returns the current snapshot, or [ErrSummaryNotFound] when no
// snapshot has ever been written.
func (r *summaryRepository) GetSummary(ctx context.Context) (models.Summary, error) {
	log := logger.FromContext(ctx)

	var summary models.Summary
	row := r.DB.QueryRowContext(ctx, getSummaryQuery)

	err := row.Scan(
		&summary.Handle,
		&summary.LatestNotification,
		&summary.FollowersCount,
		&summary.UnreadCount,
		&summary.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Summary{}, ErrSummaryNotFound
		}
		log.Err(err).
			Str("func", "summaryRepository.GetSummary").
			Msg("failed to scan summary row")
		return models.Summary{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return summary, nil
}
