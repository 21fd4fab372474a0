// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-sky-client/models"
)

// SealedStore persists the encrypted session blob. The store never sees
// plaintext credentials.
type SealedStore interface {
	SaveSessionBlob(ctx context.Context, blob []byte) error
	LoadSessionBlob(ctx context.Context) ([]byte, error)
	DeleteSessionBlob(ctx context.Context) error
}

const (
	vaultSaltLen = 16

	// Argon2id parameters per the OWASP recommendation (2024):
	// 1 iteration, 64 MiB, 4 threads, 256-bit key.
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
)

// Vault seals the session configuration at rest with AES-256-GCM under an
// Argon2id-derived key. The blob layout is salt ‖ nonce ‖ ciphertext, so a
// fresh salt and nonce are used on every save.
type Vault struct {
	store      SealedStore
	passphrase string
}

// NewVault constructs a Vault over store. The passphrase must stay stable
// across restarts or previously sealed sessions become unreadable.
func NewVault(store SealedStore, passphrase string) *Vault {
	return &Vault{store: store, passphrase: passphrase}
}

// Save seals cfg and persists the blob.
func (v *Vault) Save(ctx context.Context, cfg models.SessionConfig) error {
	plaintext, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode session config: %w", err)
	}

	blob, err := v.seal(plaintext)
	if err != nil {
		return fmt.Errorf("seal session config: %w", err)
	}

	return v.store.SaveSessionBlob(ctx, blob)
}

// Load reads and opens the persisted blob. Errors from the store (including
// its not-found sentinel) pass through unchanged.
func (v *Vault) Load(ctx context.Context) (models.SessionConfig, error) {
	blob, err := v.store.LoadSessionBlob(ctx)
	if err != nil {
		return models.SessionConfig{}, err
	}

	plaintext, err := v.open(blob)
	if err != nil {
		return models.SessionConfig{}, fmt.Errorf("open session blob: %w", err)
	}

	var cfg models.SessionConfig
	if err = json.Unmarshal(plaintext, &cfg); err != nil {
		return models.SessionConfig{}, fmt.Errorf("decode session config: %w", err)
	}
	return cfg, nil
}

// Delete removes the persisted blob.
func (v *Vault) Delete(ctx context.Context) error {
	return v.store.DeleteSessionBlob(ctx)
}

func (v *Vault) seal(plaintext []byte) ([]byte, error) {
	salt := make([]byte, vaultSaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}

	gcm, err := v.cipherFor(salt)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	blob := make([]byte, 0, len(salt)+len(nonce)+len(plaintext)+gcm.Overhead())
	blob = append(blob, salt...)
	blob = append(blob, nonce...)
	return gcm.Seal(blob, nonce, plaintext, nil), nil
}

func (v *Vault) open(blob []byte) ([]byte, error) {
	if len(blob) < vaultSaltLen {
		return nil, fmt.Errorf("blob too short")
	}
	salt, rest := blob[:vaultSaltLen], blob[vaultSaltLen:]

	gcm, err := v.cipherFor(salt)
	if err != nil {
		return nil, err
	}

	if len(rest) < gcm.NonceSize() {
		return nil, fmt.Errorf("blob too short")
	}
	nonce, ciphertext := rest[:gcm.NonceSize()], rest[gcm.NonceSize():]

	return gcm.Open(nil, nonce, ciphertext, nil)
}

func (v *Vault) cipherFor(salt []byte) (cipher.AEAD, error) {
	key := argon2.IDKey([]byte(v.passphrase), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
