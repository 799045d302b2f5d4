package testutil

import "time"

// Kickoff is the start time RawEvent and SampleGame use.
var Kickoff = time.Date(2023, 10, 21, 20, 0, 0, 0, time.UTC)

// NowAt returns a clock function fixed at the provided time.
func NowAt(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// AfterKickoff returns a clock fixed d after Kickoff.
func AfterKickoff(d time.Duration) func() time.Time {
	return NowAt(Kickoff.Add(d))
}
