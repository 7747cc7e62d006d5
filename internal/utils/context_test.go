package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/gumi-collection/models"
	"github.com/stretchr/testify/assert"
)

func TestContextKey_String(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
	assert.Equal(t, "login", LoginCtxKey.String())
}

func TestGetUserIDFromContext(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	ctx := context.WithValue(context.Background(), UserIDCtxKey, "42")
	_, ok = GetUserIDFromContext(ctx)
	assert.False(t, ok, "string value must not be accepted")

	ctx = context.WithValue(context.Background(), UserIDCtxKey, int64(42))
	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
}

func TestWithSession(t *testing.T) {
	ctx := WithSession(context.Background(), models.Session{UserID: 3, Login: "aoi"})

	session, ok := GetSessionFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, models.Session{UserID: 3, Login: "aoi"}, session)

	_, ok = GetSessionFromContext(context.Background())
	assert.False(t, ok)
}
