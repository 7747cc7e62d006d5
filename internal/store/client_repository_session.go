package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalSessionRepository constructs a [LocalSessionRepository] backed by
// the client SQLite database. At most one session is stored.
func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.LocalSession) error {
	err := r.withRetry(ctx, func() error {
		_, err := r.DB.ExecContext(ctx, saveSession, session.UserID, session.Login, session.Token, session.CreatedAt)
		return err
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sessionRepository.SaveSession").
			Int64("user_id", session.UserID).
			Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// LoadSession returns [ErrLocalSessionNotFound] when nobody is signed in.
func (r *sessionRepository) LoadSession(ctx context.Context) (models.LocalSession, error) {
	var s models.LocalSession
	err := r.DB.QueryRowContext(ctx, loadSession).Scan(&s.UserID, &s.Login, &s.Token, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionRepository.LoadSession").Msg("failed to load session")
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return s, nil
}

func (r *sessionRepository) ClearSession(ctx context.Context) error {
	err := r.withRetry(ctx, func() error {
		_, err := r.DB.ExecContext(ctx, clearSession)
		return err
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
