package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-sky-client/internal/config"
	"github.com/MKhiriev/go-sky-client/internal/logger"
)

// Storages groups all local repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	// Bookmarks is the local bookmark repository.
	Bookmarks BookmarkRepository

	// Summary is the widget summary snapshot repository.
	Summary SummaryRepository

	// SessionBlobs stores the sealed session credential blob.
	SessionBlobs SessionBlobRepository
}

// NewStorages initialises the storage layer using the supplied configuration
// and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.Path,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [Storages] value wired to fresh repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Bookmarks:    NewBookmarkRepository(db, logger),
		Summary:      NewSummaryRepository(db, logger),
		SessionBlobs: NewSessionBlobRepository(db, logger),
	}, nil
}

// NewReadOnlySummary opens the shared database read-only and returns just the
// summary repository. The widget command uses it; migrations are not run
// because a read-only handle cannot alter the schema.
func NewReadOnlySummary(cfg config.Storage, logger *logger.Logger) (SummaryRepository, error) {
	db, err := NewConnectSQLiteReadOnly(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite read-only connection error: %w", err)
	}

	return NewSummaryRepository(db, logger), nil
}
