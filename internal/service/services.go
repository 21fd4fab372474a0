package service

import (
	"github.com/MKhiriev/go-sky-client/internal/adapter"
	"github.com/MKhiriev/go-sky-client/internal/config"
	"github.com/MKhiriev/go-sky-client/internal/logger"
	"github.com/MKhiriev/go-sky-client/internal/store"
)

type Services struct {
	Feed          FeedService
	Profile       ProfileService
	Notifications NotificationService
	Summary       SummaryService
	SummaryJob    SummaryJob
	RefreshJob    RefreshJob
}

func NewServices(serviceAdapter adapter.ServiceAdapter, session SessionManager, storages *store.Storages, cfg *config.Config, log *logger.Logger) *Services {
	summarySvc := NewSummaryService(serviceAdapter, session, storages, log)

	return &Services{
		Feed:          NewFeedService(serviceAdapter, session, storages, cfg.App, log),
		Profile:       NewProfileService(serviceAdapter, session, log),
		Notifications: NewNotificationService(serviceAdapter, session, cfg.App, log),
		Summary:       summarySvc,
		SummaryJob:    NewSummaryJob(summarySvc),
		RefreshJob:    NewRefreshJob(session, cfg.Jobs.RefreshAhead, log),
	}
}
