package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/gumi-collection/internal/adapter"
	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/store"
	"github.com/MKhiriev/gumi-collection/models"
)

type clientAuthService struct {
	sessions store.LocalSessionRepository
	adapter  adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientAuthService(sessions store.LocalSessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{sessions: sessions, adapter: serverAdapter, logger: logger}
}

func (a *clientAuthService) Register(ctx context.Context, user models.User) (models.Session, error) {
	if err := checkCredentials(user); err != nil {
		return models.Session{}, err
	}

	session, err := a.adapter.Register(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapAdapterError(err))
	}

	return session, a.persist(ctx, session)
}

func (a *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	if err := checkCredentials(user); err != nil {
		return models.Session{}, err
	}

	session, err := a.adapter.Login(ctx, user)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapAdapterError(err))
	}

	return session, a.persist(ctx, session)
}

// persist stores the adapter's current token next to the session.
func (a *clientAuthService) persist(ctx context.Context, session models.Session) error {
	local := models.LocalSession{
		UserID:    session.UserID,
		Login:     session.Login,
		Token:     a.adapter.Token(),
		CreatedAt: time.Now(),
	}
	if err := a.sessions.SaveSession(ctx, local); err != nil {
		a.logger.Err(err).Str("func", "*clientAuthService.persist").Int64("user_id", session.UserID).Msg("saving local session failed")
		return fmt.Errorf("saving local session: %w", err)
	}
	return nil
}

func checkCredentials(user models.User) error {
	if strings.TrimSpace(user.Login) == "" || user.Password == "" {
		return ErrInvalidDataProvided
	}
	return nil
}
