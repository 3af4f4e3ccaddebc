// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested row does not exist. It is an
	// authoritative answer from storage, never an infrastructure failure.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArity indicates a hierarchy resolution was requested with
	// the wrong number of ancestor codes for the target level.
	ErrInvalidArity = errors.New("invalid ancestor arity")

	// ErrUnknownAncestor indicates an ancestor code has no matching row at
	// its own level. Wrapped errors carry the failing level.
	ErrUnknownAncestor = errors.New("unknown ancestor")

	// ErrAmbiguousMatch indicates more than one hierarchy row matched a
	// full ancestor chain. Storage enforces uniqueness, so this is a
	// data-integrity error and is never silently resolved.
	ErrAmbiguousMatch = errors.New("ambiguous hierarchy match")

	// ErrMissingRequiredClaim indicates a verified token lacks a claim the
	// permission engine needs for a fail-closed decision.
	ErrMissingRequiredClaim = errors.New("missing required claim")

	// ErrStorageUnavailable indicates the storage collaborator failed
	// (timeout, connectivity). Must never be read as not-found or as a
	// denial.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
