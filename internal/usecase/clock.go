package usecase

import "time"

var _ Clocker = (*Clock)(nil) // ensure Clock implements Clocker.

// Clocker is an interface for getting current real time. Date rules
// take time through it so tests can pin "today".
type Clocker interface {
	Now() time.Time
}

// Clock implements the Clocker interface with the real wall clock.
type Clock struct{}

// Now provides current clock time in UTC.
func (Clock) Now() time.Time {
	return time.Now().UTC()
}

// Today truncates the clock reading to a calendar date.
func Today(clock Clocker) time.Time {
	y, m, d := clock.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
