package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/gumi-collection/models"
	"github.com/golang-jwt/jwt/v5"
)

// sessionClaims is the claim set of a session token: the registered claims
// plus the account login.
type sessionClaims struct {
	jwt.RegisteredClaims
	Login string `json:"login,omitempty"`
}

// ErrInvalidTokenParams is returned by GenerateJWTToken when a required
// parameter is empty or zero.
var ErrInvalidTokenParams = errors.New("invalid params for generating JWT Token")

// GenerateJWTToken creates a signed HMAC-SHA256 session token.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - login:           the account login
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("gumi-collection", models.Session{UserID: 42, Login: "mika"}, time.Hour, "secret")
func GenerateJWTToken(issuer string, session models.Session, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidTokenParams
	}

	now := time.Now()
	claims := &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(session.UserID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Login: session.Login,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims.RegisteredClaims,
		SignedString:     tokenString,
		UserID:           session.UserID,
		Login:            session.Login,
	}, nil
}

// ValidateAndParseJWTToken verifies the signature, issuer and expiry of
// tokenString and extracts the session it was issued for. Expired tokens
// yield an error matching [jwt.ErrTokenExpired].
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := subjectToUserID(claims.Subject)
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims.RegisteredClaims,
		SignedString:     tokenString,
		UserID:           userID,
		Login:            claims.Login,
	}, nil
}

// ParseSessionFromJWT reads the session of a token without verifying it.
// The client uses it to check a persisted token against the stored account.
func ParseSessionFromJWT(tokenString string) (models.Session, error) {
	claims := &sessionClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return models.Session{}, err
	}

	userID, err := subjectToUserID(claims.Subject)
	if err != nil {
		return models.Session{}, err
	}
	return models.Session{UserID: userID, Login: claims.Login}, nil
}

// ParseBearerToken extracts the token of an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errors.New("invalid authorization header")
	}
	return strings.TrimSpace(token), nil
}

func subjectToUserID(subject string) (int64, error) {
	if subject == "" {
		return 0, errors.New("empty subject error")
	}
	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error occurred during converting subject to user id: %w", err)
	}
	return userID, nil
}
