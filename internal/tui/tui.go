package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-sky-client/internal/logger"
	"github.com/MKhiriev/go-sky-client/internal/service"
	"github.com/MKhiriev/go-sky-client/internal/session"
)

// ErrUserQuit reports that the user closed the sign-in screen without
// authenticating.
var ErrUserQuit = errors.New("user quit")

type TUI struct {
	session  *session.Manager
	services *service.Services
}

func New(manager *session.Manager, services *service.Services, _ *logger.Logger) (*TUI, error) {
	return &TUI{session: manager, services: services}, nil
}

// LoginFlow runs the sign-in screen until the session manager holds a
// configuration. Returns ErrUserQuit when the user backs out.
func (t *TUI) LoginFlow(ctx context.Context) error {
	model := newLoginModel(ctx, t.session)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(loginModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser || !result.done {
		return ErrUserQuit
	}

	return nil
}

// MainLoop runs the signed-in screens. logout is true when the user asked to
// sign out or the session expired underneath the UI; either way the caller
// should return to the sign-in flow.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newMainLoopModel(ctx, t.session, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
