// Package tui is the terminal front end of the collection client, built on
// Bubble Tea. LoginFlow handles sign-in and registration, MainLoop runs the
// collection screens until the user quits or signs out.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/gumi-collection/internal/logger"
	"github.com/MKhiriev/gumi-collection/internal/service"
	"github.com/MKhiriev/gumi-collection/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoServices = errors.New("tui: client services are required")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil || services.AuthService == nil || services.SessionService == nil {
		return nil, errNoServices
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: log}, nil
}

// LoginFlow shows the welcome, login and register screens and returns the
// session of the account that signed in.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	model := newLoginAppModel(ctx, t.services, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.err != nil {
		return models.Session{}, result.err
	}
	return result.session, nil
}

// MainLoop runs the collection screens. logout is true when the user signed
// out and the login flow should start again.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainAppModel(ctx, t.services, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.logout {
		t.logger.Info().Msg("signed out")
	}
	return result.logout, nil
}
