// Package profile owns the registered user profiles and their credential
// gate. Callers match the sentinel errors with errors.Is.
package profile

import "errors"

var (
	// Validation errors: surfaced to the user, nothing is mutated.
	ErrMissingCredential = errors.New("profile: username and password required")
	ErrDuplicateUser     = errors.New("profile: username already taken")
	ErrUnknownUser       = errors.New("profile: unknown user")
	ErrNotFound          = errors.New("profile: profile not found")

	// Credential mismatch: distinguished from ErrUnknownUser in messaging
	// but not in security posture.
	ErrBadCredential = errors.New("profile: incorrect password")
)
