package config

import "errors"

// Validation errors returned by [Config.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServiceConfigs indicates invalid upstream service settings
	// (for example, a missing endpoint or zero request timeout).
	ErrInvalidServiceConfigs = errors.New("invalid service configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty database path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a page size outside 1..100, the limit enforced by the
	// upstream lexicons).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidJobConfigs indicates invalid background job settings
	// (for example, a zero summary interval).
	ErrInvalidJobConfigs = errors.New("invalid job configuration")
)
