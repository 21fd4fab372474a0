package service

import (
	"context"

	"github.com/MKhiriev/go-sky-client/internal/adapter"
	"github.com/MKhiriev/go-sky-client/internal/config"
	"github.com/MKhiriev/go-sky-client/internal/logger"
	"github.com/MKhiriev/go-sky-client/internal/pager"
	"github.com/MKhiriev/go-sky-client/models"
)

type notificationService struct {
	adapter adapter.ServiceAdapter
	session SessionManager
	logger  *logger.Logger

	pageSize int
}

func NewNotificationService(serviceAdapter adapter.ServiceAdapter, session SessionManager, cfg config.App, logger *logger.Logger) NotificationService {
	return &notificationService{
		adapter:  serviceAdapter,
		session:  session,
		logger:   logger,
		pageSize: cfg.PageSize,
	}
}

// Notifications implements NotificationService.
func (n *notificationService) Notifications() *pager.Pager[models.Notification] {
	fetch := func(ctx context.Context, cursor string) ([]models.Notification, string, error) {
		return fetchPageWithRefresh(ctx, n.session, func(ctx context.Context) ([]models.Notification, string, error) {
			return n.adapter.ListNotifications(ctx, cursor, n.pageSize)
		})
	}
	return pager.New(fetch)
}

// UnreadCount implements NotificationService.
func (n *notificationService) UnreadCount(ctx context.Context) (int64, error) {
	return withRefreshRetry(ctx, n.session, func(ctx context.Context) (int64, error) {
		return n.adapter.GetUnreadCount(ctx)
	})
}
