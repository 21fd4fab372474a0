// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sky-client/models"
)

var errNoBlob = errors.New("no blob stored")

// memSealedStore is an in-memory SealedStore for tests.
type memSealedStore struct {
	blob []byte
}

func (s *memSealedStore) SaveSessionBlob(_ context.Context, blob []byte) error {
	s.blob = append([]byte(nil), blob...)
	return nil
}

func (s *memSealedStore) LoadSessionBlob(_ context.Context) ([]byte, error) {
	if s.blob == nil {
		return nil, errNoBlob
	}
	return s.blob, nil
}

func (s *memSealedStore) DeleteSessionBlob(_ context.Context) error {
	s.blob = nil
	return nil
}

func testSession() models.SessionConfig {
	return models.SessionConfig{
		DID:        "did:plc:alice",
		Handle:     "alice.bsky.social",
		Endpoint:   "https://bsky.social",
		AccessJWT:  "access-token",
		RefreshJWT: "refresh-token",
	}
}

func TestVault_SaveLoadRoundTrip(t *testing.T) {
	store := &memSealedStore{}
	v := NewVault(store, "correct horse battery staple")
	ctx := context.Background()

	require.NoError(t, v.Save(ctx, testSession()))

	got, err := v.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, testSession(), got)
}

func TestVault_BlobIsNotPlaintext(t *testing.T) {
	store := &memSealedStore{}
	v := NewVault(store, "passphrase")

	require.NoError(t, v.Save(context.Background(), testSession()))
	assert.NotContains(t, string(store.blob), "refresh-token")
	assert.NotContains(t, string(store.blob), "did:plc:alice")
}

func TestVault_WrongPassphraseFailsToOpen(t *testing.T) {
	store := &memSealedStore{}
	ctx := context.Background()

	require.NoError(t, NewVault(store, "right").Save(ctx, testSession()))

	_, err := NewVault(store, "wrong").Load(ctx)
	require.Error(t, err)
}

func TestVault_TruncatedBlob(t *testing.T) {
	store := &memSealedStore{blob: []byte("short")}
	_, err := NewVault(store, "passphrase").Load(context.Background())
	require.Error(t, err)
}

func TestVault_LoadPassesThroughStoreError(t *testing.T) {
	store := &memSealedStore{}
	_, err := NewVault(store, "passphrase").Load(context.Background())
	assert.ErrorIs(t, err, errNoBlob)
}

func TestVault_Delete(t *testing.T) {
	store := &memSealedStore{}
	v := NewVault(store, "passphrase")
	ctx := context.Background()

	require.NoError(t, v.Save(ctx, testSession()))
	require.NoError(t, v.Delete(ctx))

	_, err := v.Load(ctx)
	require.Error(t, err)
}
