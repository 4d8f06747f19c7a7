package common

import "errors"

// Sentinel errors shared between the actor transport and the startup layer.
// Callers should match these with errors.Is.
var (
	// Transport-level classification.
	ErrUnauthorized = errors.New("unauthorized")
	ErrUnavailable  = errors.New("backend unavailable")
	ErrTimeout      = errors.New("request timed out")

	// Backend record state.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Identity errors.
	ErrInvalidToken      = errors.New("invalid delegation token")
	ErrDelegationExpired = errors.New("delegation expired")
	ErrNoIdentity        = errors.New("no identity")
)
