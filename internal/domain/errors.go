package domain

import "errors"

var (
	// ErrNotInitialized is returned by backend queries before a
	// successful Initialize or after Cleanup.
	ErrNotInitialized = errors.New("gpu backend not initialized")

	// ErrDeviceUnavailable marks a device index whose handle could not
	// be enumerated.
	ErrDeviceUnavailable = errors.New("gpu device unavailable")

	// ErrQueryFailed marks a telemetry query whose core fields could not
	// be read.
	ErrQueryFailed = errors.New("gpu query failed")

	// ErrNoBackend is reported when no vendor backend could be
	// initialized at all.
	ErrNoBackend = errors.New("no gpu backend available")
)
