package service

import (
	"context"

	"github.com/MKhiriev/go-sky-client/internal/adapter"
	"github.com/MKhiriev/go-sky-client/internal/logger"
	"github.com/MKhiriev/go-sky-client/models"
)

type profileService struct {
	adapter adapter.ServiceAdapter
	session SessionManager
	logger  *logger.Logger
}

func NewProfileService(serviceAdapter adapter.ServiceAdapter, session SessionManager, logger *logger.Logger) ProfileService {
	return &profileService{
		adapter: serviceAdapter,
		session: session,
		logger:  logger,
	}
}

// GetProfile implements ProfileService.
func (p *profileService) GetProfile(ctx context.Context, actor string) (models.Profile, error) {
	return withRefreshRetry(ctx, p.session, func(ctx context.Context) (models.Profile, error) {
		return p.adapter.GetProfile(ctx, actor)
	})
}

// CurrentProfile implements ProfileService.
func (p *profileService) CurrentProfile(ctx context.Context) (models.Profile, error) {
	current := p.session.Current()
	if current == nil {
		return models.Profile{}, ErrNotSignedIn
	}

	return p.GetProfile(ctx, current.DID)
}
