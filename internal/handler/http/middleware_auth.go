package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/gumi-collection/internal/app"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/service"
	"github.com/MKhiriev/gumi-collection/internal/utils"
	"github.com/MKhiriev/gumi-collection/models"
)

// auth rejects requests without a valid bearer token with 401 and stores
// the session of the token in the request context.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenIsExpired) {
				log.Err(err).Msg("token expired")
				http.Error(w, app.MsgTokenIsExpired, http.StatusUnauthorized)
				return
			}
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx = log.WithUser(token.UserID).WithContext(ctx)
		ctx = utils.WithSession(ctx, models.Session{UserID: token.UserID, Login: token.Login})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token of "Bearer <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	token, err := utils.ParseBearerToken(authHeader)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAuthorizationHeader, err)
	}
	return token, nil
}

// sessionFromRequest returns the session put into the context by auth.
func sessionFromRequest(w http.ResponseWriter, r *http.Request) (models.Session, bool) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok || session.UserID <= 0 {
		logger.FromRequest(r).Error().Msg("no user in request context")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusUnauthorized)
		return models.Session{}, false
	}
	return session, true
}
