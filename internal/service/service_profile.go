package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/store"
	"github.com/MKhiriev/gumi-collection/models"
)

type profileService struct {
	profileRepository store.ProfileRepository

	logger *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, logger *logger.Logger) ProfileService {
	return &profileService{profileRepository: profileRepository, logger: logger}
}

func (s *profileService) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	if userID <= 0 {
		return models.Profile{}, ErrValidationNoUserID
	}
	return s.profileRepository.GetProfile(ctx, userID)
}

func (s *profileService) UpsertProfile(ctx context.Context, profile models.Profile) (models.Profile, error) {
	if profile.UserID <= 0 {
		return models.Profile{}, ErrValidationNoUserID
	}

	saved, err := s.profileRepository.UpsertProfile(ctx, profile)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*profileService.UpsertProfile").
			Int64("user_id", profile.UserID).
			Msg("saving profile failed")
		return models.Profile{}, fmt.Errorf("saving profile: %w", err)
	}
	return saved, nil
}
