package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/migrations"
)

// maxAttempts bounds how often a write is tried when the driver reports a
// retryable error.
const maxAttempts = 3

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is a database handle shared by the repositories of one backend.
// A nil errorClassificator disables retries.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the migration set matching the backend of db.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs fn until it succeeds, returns a non-retryable error or
// maxAttempts is reached.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}
		if ctx.Err() != nil {
			return err
		}
		logger.FromContext(ctx).Warn().Err(err).Int("attempt", attempt).Msg("retrying database call")
	}
	return err
}
