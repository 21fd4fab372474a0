package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sky-client/internal/logger"
)

// sessionBlobRepository is the SQLite-backed implementation of
// [SessionBlobRepository]. It stores exactly one sealed blob; the content is
// opaque ciphertext produced by the session vault.
type sessionBlobRepository struct {
	*DB
	logger *logger.Logger
}

func NewSessionBlobRepository(db *DB, logger *logger.Logger) SessionBlobRepository {
	logger.Debug().Msg("creating session blob repository")
	return &sessionBlobRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sessionBlobRepository) SaveSessionBlob(ctx context.Context, blob []byte) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, upsertSessionBlob, blob, time.Now()); err != nil {
		log.Err(err).
			Str("func", "sessionBlobRepository.SaveSessionBlob").
			Msg("failed to execute session blob upsert")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionBlobRepository) LoadSessionBlob(ctx context.Context) ([]byte, error) {
	log := logger.FromContext(ctx)

	var blob []byte
	row := r.DB.QueryRowContext(ctx, getSessionBlob)

	if err := row.Scan(&blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionBlobNotFound
		}
		log.Err(err).
			Str("func", "sessionBlobRepository.LoadSessionBlob").
			Msg("failed to scan session blob row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return blob, nil
}

func (r *sessionBlobRepository) DeleteSessionBlob(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.DB.ExecContext(ctx, deleteSessionBlob); err != nil {
		log.Err(err).
			Str("func", "sessionBlobRepository.DeleteSessionBlob").
			Msg("failed to execute session blob delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
