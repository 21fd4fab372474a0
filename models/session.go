// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionConfig is the opaque credential bundle for an authenticated AT
// Protocol session. It is owned exclusively by the session manager: the
// whole value is replaced atomically on login and refresh, and dropped on
// logout. Nothing outside the session package mutates it.
type SessionConfig struct {
	// DID is the decentralized identifier of the signed-in account
	// (e.g. "did:plc:abcdefghijklmnop").
	DID string `json:"did"`

	// Handle is the account handle at the time the session was created
	// (e.g. "alice.bsky.social"). Handles can change; the DID cannot.
	Handle string `json:"handle"`

	// Endpoint is the base URL of the PDS that issued the session.
	Endpoint string `json:"endpoint"`

	// AccessJWT is the short-lived access token sent as the bearer
	// credential on every authenticated XRPC call.
	AccessJWT string `json:"accessJwt"`

	// RefreshJWT is the long-lived token used to obtain a new access
	// token via com.atproto.server.refreshSession.
	RefreshJWT string `json:"refreshJwt"`
}

// Authenticated reports whether the bundle carries a usable access token.
func (c SessionConfig) Authenticated() bool {
	return c.DID != "" && c.AccessJWT != ""
}
