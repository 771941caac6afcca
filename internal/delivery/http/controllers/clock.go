package controllers

import "time"

// Clock returns the current instant in the location used for week boundaries.
type Clock func() time.Time

// LocalClock returns a Clock reading the wall clock in loc.
func LocalClock(loc *time.Location) Clock {
	return func() time.Time { return time.Now().In(loc) }
}
