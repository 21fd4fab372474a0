package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sky-client/internal/logger"
	"github.com/MKhiriev/go-sky-client/models"
)

func TestProfileService_GetProfile(t *testing.T) {
	fake := &fakeAdapter{
		getProfileFn: func(_ context.Context, actor string) (models.Profile, error) {
			assert.Equal(t, "bob.bsky.social", actor)
			return models.Profile{Handle: "bob.bsky.social", FollowersCount: 5}, nil
		},
	}
	svc := NewProfileService(fake, signedInSession(), logger.Nop())

	profile, err := svc.GetProfile(context.Background(), "bob.bsky.social")
	require.NoError(t, err)
	assert.Equal(t, int64(5), profile.FollowersCount)
}

func TestProfileService_CurrentProfile(t *testing.T) {
	fake := &fakeAdapter{
		getProfileFn: func(_ context.Context, actor string) (models.Profile, error) {
			assert.Equal(t, "did:plc:alice", actor)
			return models.Profile{Handle: "alice.bsky.social"}, nil
		},
	}
	svc := NewProfileService(fake, signedInSession(), logger.Nop())

	profile, err := svc.CurrentProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "alice.bsky.social", profile.Handle)
}

func TestProfileService_CurrentProfile_RequiresSession(t *testing.T) {
	svc := NewProfileService(&fakeAdapter{}, &fakeSession{}, logger.Nop())

	_, err := svc.CurrentProfile(context.Background())
	require.ErrorIs(t, err, ErrNotSignedIn)
}
