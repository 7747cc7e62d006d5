package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/gumi-collection/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer = "gumi-collection"
	testKey    = "secret-key"
)

func TestGenerateJWTToken(t *testing.T) {
	session := models.Session{UserID: 42, Login: "mika@example.com"}

	token, err := GenerateJWTToken(testIssuer, session, time.Hour, testKey)
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, int64(42), token.UserID)
	assert.Equal(t, "mika@example.com", token.Login)
	assert.Equal(t, "42", token.Subject)
	assert.Equal(t, testIssuer, token.Issuer)
	require.NotNil(t, token.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), token.ExpiresAt.Time, 5*time.Second)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	session := models.Session{UserID: 1}
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, key: testKey},
		{name: "zero duration", issuer: testIssuer, duration: 0, key: testKey},
		{name: "empty key", issuer: testIssuer, duration: time.Hour, key: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, session, tt.duration, tt.key)
			assert.ErrorIs(t, err, ErrInvalidTokenParams)
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, models.Session{UserID: 7, Login: "rin"}, time.Minute, testKey)
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(token.SignedString, testKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(7), parsed.UserID)
	assert.Equal(t, "rin", parsed.Login)
	assert.Equal(t, token.SignedString, parsed.String())
}

func TestValidateAndParseJWTToken_Rejects(t *testing.T) {
	valid, err := GenerateJWTToken(testIssuer, models.Session{UserID: 7}, time.Minute, testKey)
	require.NoError(t, err)

	t.Run("wrong key", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(valid.SignedString, "other", testIssuer)
		assert.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken(valid.SignedString, testKey, "someone-else")
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ValidateAndParseJWTToken("not.a.token", testKey, testIssuer)
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Issuer:    testIssuer,
			Subject:   "7",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(signed, testKey, testIssuer)
		assert.True(t, errors.Is(err, jwt.ErrTokenExpired))
	})

	t.Run("non numeric subject", func(t *testing.T) {
		claims := jwt.RegisteredClaims{Issuer: testIssuer, Subject: "abc"}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testKey))
		require.NoError(t, err)

		_, err = ValidateAndParseJWTToken(signed, testKey, testIssuer)
		assert.Error(t, err)
	})
}

func TestParseSessionFromJWT(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, models.Session{UserID: 9, Login: "sora"}, time.Minute, testKey)
	require.NoError(t, err)

	session, err := ParseSessionFromJWT(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, models.Session{UserID: 9, Login: "sora"}, session)

	_, err = ParseSessionFromJWT("bogus")
	assert.Error(t, err)
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def", want: "abc.def"},
		{header: "bearer   abc", want: "abc"},
		{header: "  Bearer xyz  ", want: "xyz"},
		{header: "Basic abc", wantErr: true},
		{header: "Bearer", wantErr: true},
		{header: "Bearer   ", wantErr: true},
		{header: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
