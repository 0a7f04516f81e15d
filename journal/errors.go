package journal

import "errors"

var (
	// ErrInvalidConfig marks configuration and argument errors that are
	// detected before any store call is made. Never retried.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrStoreUnavailable marks connection and query transport failures.
	// Polls are idempotent, so these are safe to retry.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrDecode marks a row shape mismatch between the journal table and
	// the expected schema contract. Not retried.
	ErrDecode = errors.New("row decode failed")
)
