package sources

import (
	"context"
	"errors"
	"fmt"
)

// ErrSourceTimeout marks a fetch abandoned at its deadline.
var ErrSourceTimeout = errors.New("source fetch timed out")

// FetchError wraps a failed origin fetch with enough context to decide
// whether a retry is worthwhile.
type FetchError struct {
	Origin     string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: fetch failed (status=%d): %v", e.Origin, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s: fetch failed: %v", e.Origin, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// IsTransient reports whether a fetch error is worth a single retry:
// network failures, timeouts, and 5xx/429 responses qualify; a
// definitive 4xx does not. An empty but well-formed response is not an
// error at all and never reaches here.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrSourceTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		if fe.StatusCode == 0 {
			return true
		}
		return fe.StatusCode >= 500 || fe.StatusCode == 429
	}
	return false
}
