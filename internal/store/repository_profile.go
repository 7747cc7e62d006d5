package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/models"
)

type profileRepository struct {
	*DB
	logger *logger.Logger
}

// NewProfileRepository constructs a PostgreSQL-backed [ProfileRepository].
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	return &profileRepository{
		DB:     db,
		logger: logger,
	}
}

// GetProfile returns [ErrProfileNotFound] for accounts that were never
// provisioned.
func (p *profileRepository) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var profile models.Profile
	err := p.DB.QueryRowContext(ctx, getProfile, userID).
		Scan(&profile.UserID, &profile.Name, &profile.Bio, &profile.Avatar, &profile.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "profileRepository.GetProfile").
			Int64("user_id", userID).
			Msg("failed to get profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return profile, nil
}

func (p *profileRepository) UpsertProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var saved models.Profile
	err := p.withRetry(ctx, func() error {
		return p.DB.QueryRowContext(ctx, upsertProfile, profile.UserID, profile.Name, profile.Bio, profile.Avatar).
			Scan(&saved.UserID, &saved.Name, &saved.Bio, &saved.Avatar, &saved.UpdatedAt)
	})
	if err != nil {
		log.Err(err).
			Str("func", "profileRepository.UpsertProfile").
			Int64("user_id", profile.UserID).
			Msg("failed to upsert profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}
