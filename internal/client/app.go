package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/service"
	"github.com/MKhiriev/gumi-collection/internal/tui"
)

var errNilDependency = errors.New("client: nil dependency")

type App struct {
	sessions service.SessionService
	ui       UI
	workers  BackgroundWorker
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workers BackgroundWorker, logger *logger.Logger) (*App, error) {
	if services == nil || services.SessionService == nil || ui == nil || workers == nil {
		return nil, errNilDependency
	}
	return &App{
		sessions: services.SessionService,
		ui:       ui,
		workers:  workers,
		logger:   logger,
	}, nil
}

func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	for {
		if err := a.signIn(ctx); err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}

		a.workers.Run(ctx)
		logout, err := a.ui.MainLoop(ctx)
		a.workers.Stop()

		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}
	}
}

// signIn activates the persisted session, running the login flow first when
// there is none.
func (a *App) signIn(ctx context.Context) error {
	session, err := a.sessions.RestoreSession(ctx)
	if err == nil {
		a.logger.Info().Int64("user_id", session.UserID).Msg("continuing persisted session")
		return nil
	}
	if !errors.Is(err, service.ErrNotSignedIn) {
		return fmt.Errorf("restore session: %w", err)
	}

	if _, err = a.ui.LoginFlow(ctx); err != nil {
		return err
	}

	if _, err = a.sessions.RestoreSession(ctx); err != nil {
		return fmt.Errorf("restore session after login: %w", err)
	}
	return nil
}
