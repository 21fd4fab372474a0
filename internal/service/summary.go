// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sky-client/internal/adapter"
	"github.com/MKhiriev/go-sky-client/internal/logger"
	"github.com/MKhiriev/go-sky-client/internal/store"
	"github.com/MKhiriev/go-sky-client/models"
)

type summaryService struct {
	adapter  adapter.ServiceAdapter
	session  SessionManager
	storages *store.Storages
	logger   *logger.Logger
}

func NewSummaryService(serviceAdapter adapter.ServiceAdapter, session SessionManager, storages *store.Storages, logger *logger.Logger) SummaryService {
	return &summaryService{
		adapter:  serviceAdapter,
		session:  session,
		storages: storages,
		logger:   logger,
	}
}

// Snapshot implements SummaryService. It gathers the snapshot fields from
// the remote API and replaces the stored row wholesale, so the widget reader
// observes either the previous snapshot or this one.
func (s *summaryService) Snapshot(ctx context.Context) error {
	current := s.session.Current()
	if current == nil {
		return ErrNotSignedIn
	}

	profile, err := withRefreshRetry(ctx, s.session, func(ctx context.Context) (models.Profile, error) {
		return s.adapter.GetProfile(ctx, current.DID)
	})
	if err != nil {
		return fmt.Errorf("snapshot profile: %w", err)
	}

	unread, err := withRefreshRetry(ctx, s.session, func(ctx context.Context) (int64, error) {
		return s.adapter.GetUnreadCount(ctx)
	})
	if err != nil {
		return fmt.Errorf("snapshot unread count: %w", err)
	}

	latest, _, err := fetchPageWithRefresh(ctx, s.session, func(ctx context.Context) ([]models.Notification, string, error) {
		return s.adapter.ListNotifications(ctx, "", 1)
	})
	if err != nil {
		return fmt.Errorf("snapshot latest notification: %w", err)
	}

	summary := models.Summary{
		Handle:         profile.Handle,
		FollowersCount: profile.FollowersCount,
		UnreadCount:    unread,
		UpdatedAt:      time.Now(),
	}
	if len(latest) > 0 {
		summary.LatestNotification = describeNotification(latest[0])
	}

	if err := s.storages.Summary.SaveSummary(ctx, summary); err != nil {
		return fmt.Errorf("save summary snapshot: %w", err)
	}

	s.logger.Debug().
		Str("handle", summary.Handle).
		Int64("unread", summary.UnreadCount).
		Msg("summary snapshot written")

	return nil
}

// describeNotification renders a notification as the widget's one-liner.
func describeNotification(n models.Notification) string {
	who := n.Author.Handle
	if n.Author.DisplayName != "" {
		who = n.Author.DisplayName
	}

	switch n.Reason {
	case models.NotificationLike:
		return who + " liked your post"
	case models.NotificationRepost:
		return who + " reposted your post"
	case models.NotificationFollow:
		return who + " followed you"
	case models.NotificationMention:
		return who + " mentioned you"
	case models.NotificationReply:
		return who + " replied to your post"
	case models.NotificationQuote:
		return who + " quoted your post"
	default:
		return who + " interacted with you"
	}
}
