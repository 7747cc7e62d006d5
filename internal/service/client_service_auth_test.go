// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/gumi-collection/internal/adapter"
	"github.com/MKhiriev/gumi-collection/internal/app"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/mock"
	"github.com/MKhiriev/gumi-collection/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientAuth(t *testing.T) (ClientAuthService, *mock.MockLocalSessionRepository, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockLocalSessionRepository(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	return NewClientAuthService(sessions, serverAdapter, logger.Nop()), sessions, serverAdapter
}

func TestClientAuthService_Login(t *testing.T) {
	svc, sessions, serverAdapter := newTestClientAuth(t)
	ctx := context.Background()
	user := models.User{Login: "mika", Password: "pw"}

	serverAdapter.EXPECT().Login(ctx, user).Return(models.Session{UserID: 2, Login: "mika"}, nil)
	serverAdapter.EXPECT().Token().Return("jwt")
	sessions.EXPECT().SaveSession(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, local models.LocalSession) error {
			assert.Equal(t, int64(2), local.UserID)
			assert.Equal(t, "jwt", local.Token)
			return nil
		})

	session, err := svc.Login(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, "mika", session.Login)
}

func TestClientAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, serverAdapter := newTestClientAuth(t)
	serverAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.Session{}, fmt.Errorf("%w: %s", adapter.ErrUnauthorized, app.MsgInvalidLoginPassword))

	_, err := svc.Login(context.Background(), models.User{Login: "mika", Password: "bad"})
	require.ErrorIs(t, err, ErrLoginOnServer)
	require.ErrorIs(t, err, ErrWrongPassword)
}

func TestClientAuthService_Register(t *testing.T) {
	t.Run("empty credentials", func(t *testing.T) {
		svc, _, _ := newTestClientAuth(t)
		_, err := svc.Register(context.Background(), models.User{Login: " "})
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("login taken", func(t *testing.T) {
		svc, _, serverAdapter := newTestClientAuth(t)
		serverAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(models.Session{}, fmt.Errorf("%w: %s", adapter.ErrConflict, app.MsgLoginAlreadyExists))

		_, err := svc.Register(context.Background(), models.User{Login: "mika", Password: "pw"})
		require.ErrorIs(t, err, ErrRegisterOnServer)
		require.ErrorIs(t, err, ErrLoginAlreadyExists)
	})
}
