package scoreboard

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedEvent     = errors.New("malformed event record")
	ErrMissingCompetition = errors.New("event has no competition")
	ErrMissingHome        = errors.New("competition has no home competitor")
	ErrMissingAway        = errors.New("competition has no away competitor")
	ErrMissingTeam        = errors.New("competitor has no team")
	ErrInvalidStartTime   = errors.New("invalid start time")
)

// NormalizationError reports why a single event record could not become a Game.
// The sequence producers swallow it; callers of NormalizeEvent can inspect it with errors.Is.
// Index is the event's position in the feed when the error comes from Results.
type NormalizationError struct {
	Index   int
	EventID string
	Err     error
}

func (e *NormalizationError) Error() string {
	if e.EventID == "" {
		return fmt.Sprintf("normalize event: %v", e.Err)
	}
	return fmt.Sprintf("normalize event %s: %v", e.EventID, e.Err)
}

func (e *NormalizationError) Unwrap() error {
	return e.Err
}

// AsNormalizationError attempts to unwrap an error into a NormalizationError.
func AsNormalizationError(err error) (*NormalizationError, bool) {
	var nErr *NormalizationError
	if errors.As(err, &nErr) {
		return nErr, true
	}
	return nil, false
}
