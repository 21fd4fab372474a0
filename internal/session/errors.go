package session

import "errors"

var (
	// ErrNotAuthenticated is returned by operations that require a current
	// session when none is held.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNoVault is returned by Restore when session persistence is
	// disabled (no vault passphrase configured).
	ErrNoVault = errors.New("session vault not configured")
)
