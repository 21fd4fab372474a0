package service

import "errors"

var (
	// ErrNotSignedIn is returned by operations that act on behalf of the
	// signed-in account when no session is held.
	ErrNotSignedIn = errors.New("not signed in")
)
