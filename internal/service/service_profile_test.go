package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/mock"
	"github.com/MKhiriev/gumi-collection/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestProfileService(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockProfileRepository(ctrl)
	svc := NewProfileService(repo, logger.Nop())
	ctx := context.Background()

	_, err := svc.GetProfile(ctx, 0)
	require.ErrorIs(t, err, ErrValidationNoUserID)

	_, err = svc.UpsertProfile(ctx, models.Profile{Name: "x"})
	require.ErrorIs(t, err, ErrValidationNoUserID)

	profile := models.Profile{UserID: 4, Name: "Mika", Bio: "badges"}
	repo.EXPECT().UpsertProfile(ctx, profile).Return(profile, nil)
	repo.EXPECT().GetProfile(ctx, int64(4)).Return(profile, nil)

	saved, err := svc.UpsertProfile(ctx, profile)
	require.NoError(t, err)
	assert.Equal(t, "Mika", saved.Name)

	got, err := svc.GetProfile(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, profile, got)

	repo.EXPECT().UpsertProfile(ctx, gomock.Any()).Return(models.Profile{}, errStorage)
	_, err = svc.UpsertProfile(ctx, profile)
	require.ErrorIs(t, err, errStorage)
}
