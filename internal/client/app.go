package client

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-sky-client/internal/config"
	"github.com/MKhiriev/go-sky-client/internal/logger"
	"github.com/MKhiriev/go-sky-client/internal/service"
	"github.com/MKhiriev/go-sky-client/internal/session"
	"github.com/MKhiriev/go-sky-client/internal/store"
	"github.com/MKhiriev/go-sky-client/internal/tui"
)

// refreshCheckInterval is how often the refresh job inspects the access
// token expiry. The refresh-ahead window itself comes from configuration.
const refreshCheckInterval = 30 * time.Second

type App struct {
	cfg      *config.Config
	session  *session.Manager
	services *service.Services
	ui       *tui.TUI
	logger   *logger.Logger
}

func NewApp(cfg *config.Config, manager *session.Manager, services *service.Services, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if cfg == nil || manager == nil || services == nil || ui == nil {
		return nil, errors.New("client app: missing dependency")
	}

	return &App{
		cfg:      cfg,
		session:  manager,
		services: services,
		ui:       ui,
		logger:   log,
	}, nil
}

// Run drives the sign-in / main-loop cycle until the user quits. A logout,
// whether user-initiated or forced by an expired refresh token, returns to
// the sign-in flow instead of exiting.
func (a *App) Run() error {
	ctx := context.Background()
	defer a.session.Close()

	for {
		if a.session.Current() == nil {
			if err := a.restoreOrLogin(ctx); err != nil {
				if errors.Is(err, tui.ErrUserQuit) {
					return nil
				}
				return err
			}
		}

		a.services.RefreshJob.Start(ctx, refreshCheckInterval)
		a.services.SummaryJob.Start(ctx, a.cfg.Jobs.SummaryInterval)

		logout, err := a.ui.MainLoop(ctx)

		a.services.RefreshJob.Stop()
		a.services.SummaryJob.Stop()

		if err != nil {
			return err
		}
		if !logout {
			return nil
		}

		// forced sign-outs (expired refresh token) already cleared the
		// session; only a user-initiated logout still has one to revoke
		if a.session.Current() != nil {
			a.session.Logout(ctx)
		}
	}
}

func (a *App) restoreOrLogin(ctx context.Context) error {
	err := a.session.Restore(ctx)
	if err == nil {
		return nil
	}

	if !errors.Is(err, session.ErrNoVault) && !errors.Is(err, store.ErrSessionBlobNotFound) {
		a.logger.Warn().Err(err).Msg("stored session unusable, falling back to interactive login")
	}

	return a.ui.LoginFlow(ctx)
}
