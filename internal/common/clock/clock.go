package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/werewolf/internal/common/clock Clock

// Clock abstracts time so the phase countdown can be driven by tests.
type Clock interface {
	// Now returns the current time
	Now() time.Time

	// After returns a channel that receives once d has elapsed
	After(d time.Duration) <-chan time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// After waits for the duration to elapse on the system clock
func (c *DefaultClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
