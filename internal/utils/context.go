// Package utils provides general-purpose helpers shared by the server and
// the client: session context keys, HMAC request signing, JSON responses,
// the resty client wrapper, session tokens and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/gumi-collection/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the authenticated user id (int64).
var UserIDCtxKey = contextKey("userID")

// LoginCtxKey stores the authenticated login (string).
var LoginCtxKey = contextKey("login")

// WithSession returns a copy of ctx carrying the session's user id and login.
func WithSession(ctx context.Context, session models.Session) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, session.UserID)
	return context.WithValue(ctx, LoginCtxKey, session.Login)
}

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetSessionFromContext retrieves the session stored by WithSession.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	userID, ok := GetUserIDFromContext(ctx)
	if !ok {
		return models.Session{}, false
	}
	login, _ := ctx.Value(LoginCtxKey).(string)
	return models.Session{UserID: userID, Login: login}, true
}
