package api

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies an API failure.
type Kind int

const (
	// KindRequestFailed covers any non-2xx the other kinds don't claim.
	KindRequestFailed Kind = iota
	// KindUnauthenticated means no token was present for a call that needs
	// one. Raised before any network I/O.
	KindUnauthenticated
	// KindSessionExpired means the server returned 401; the stored token has
	// already been cleared by the time the caller sees this.
	KindSessionExpired
	// KindNotFound means the server returned 404 for a lookup.
	KindNotFound
)

// Error is the typed outcome of a failed API call.
type Error struct {
	Kind       Kind
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindUnauthenticated:
		return "not authenticated: please log in"
	case KindSessionExpired:
		return "session expired: please log in again"
	case KindNotFound:
		if e.Detail != "" {
			return e.Detail
		}
		return "not found"
	default:
		if e.Detail != "" {
			return e.Detail
		}
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
}

func kindOf(err error) (Kind, bool) {
	apiErr := &Error{}
	if errors.As(err, &apiErr) {
		return apiErr.Kind, true
	}
	return 0, false
}

// IsUnauthenticated reports whether err is a missing-token failure.
func IsUnauthenticated(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == KindUnauthenticated
}

// IsSessionExpired reports whether err is a 401 outcome.
func IsSessionExpired(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == KindSessionExpired
}

// IsNotFound reports whether err is a 404 outcome.
func IsNotFound(err error) bool {
	kind, ok := kindOf(err)
	return ok && kind == KindNotFound
}
