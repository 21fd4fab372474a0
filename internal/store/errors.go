package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrBookmarkNotFound is returned when a lookup or delete targets a
	// bookmark that does not exist for the given account.
	ErrBookmarkNotFound = errors.New("bookmark was not found")

	// ErrSummaryNotFound is returned when the widget summary snapshot has
	// never been written.
	ErrSummaryNotFound = errors.New("summary snapshot was not found")

	// ErrSessionBlobNotFound is returned when no sealed session blob is
	// stored.
	ErrSessionBlobNotFound = errors.New("session blob was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrInvalidCursor is returned when a pagination cursor cannot be
	// decoded. Cursors are opaque to callers; any hand-crafted value is
	// rejected.
	ErrInvalidCursor = errors.New("invalid pagination cursor")
)
