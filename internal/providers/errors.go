package providers

import (
	"errors"
	"fmt"
	"time"
)

// AcquisitionError reports that a scoreboard document could not be obtained at all.
type AcquisitionError struct {
	Source string
	Err    error
}

func (e *AcquisitionError) Error() string {
	if e.Source == "" {
		return fmt.Sprintf("scoreboard unavailable: %v", e.Err)
	}
	return fmt.Sprintf("scoreboard unavailable from %s: %v", e.Source, e.Err)
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}

// AsAcquisitionError attempts to unwrap an error into an AcquisitionError.
func AsAcquisitionError(err error) (*AcquisitionError, bool) {
	var aErr *AcquisitionError
	if errors.As(err, &aErr) {
		return aErr, true
	}
	return nil, false
}

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// ErrProviderUnavailable signals that no upstream provider is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")
