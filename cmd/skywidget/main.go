package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-sky-client/internal/config"
	"github.com/MKhiriev/go-sky-client/internal/logger"
	"github.com/MKhiriev/go-sky-client/internal/store"
)

// skywidget renders the summary snapshot the client keeps in the shared
// SQLite file. It opens the database read-only and never touches the
// network, so it stays cheap enough to run from a status bar or cron.
func main() {
	log := logger.NewClientLogger("go-sky-widget")

	cfg, err := config.GetConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	summaryStore, err := store.NewReadOnlySummary(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("open summary store")
	}

	summary, err := summaryStore.GetSummary(context.Background())
	if err != nil {
		if errors.Is(err, store.ErrSummaryNotFound) {
			fmt.Println("no summary yet: sign in with skyclient first")
			return
		}
		log.Fatal().Err(err).Msg("read summary")
	}

	fmt.Printf("@%s\n", summary.Handle)
	fmt.Printf("Followers: %d    Unread: %d\n", summary.FollowersCount, summary.UnreadCount)
	if summary.LatestNotification != "" {
		fmt.Println(summary.LatestNotification)
	}
	fmt.Printf("updated %s ago\n", updatedAgo(summary.UpdatedAt))
}

func updatedAgo(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "moments"
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
}
