package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAPIKeys means no upstream credentials were configured. Fatal at
	// startup, never retried.
	ErrNoAPIKeys = errors.New("no YouTube API keys configured")

	// ErrQuotaExhausted means every configured credential reported quota
	// exhaustion for one logical request. Callers surface this as a
	// distinct "try again later" condition.
	ErrQuotaExhausted = errors.New("all YouTube API keys exhausted their quota")

	// ErrDuplicate maps the store's unique-constraint violation. An "add"
	// against an existing engagement record resolves as success, and a
	// losing concurrent cache insert is swallowed.
	ErrDuplicate = errors.New("record already exists")

	// ErrNotFound is returned when a requested resource is absent.
	ErrNotFound = errors.New("not found")

	// ErrNotAuthenticated means an engagement mutation was attempted without
	// a signed-in session.
	ErrNotAuthenticated = errors.New("not authenticated")
)

// UpstreamError is any non-2xx, non-quota response from the upstream API.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream responded %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("upstream responded %d", e.StatusCode)
}
