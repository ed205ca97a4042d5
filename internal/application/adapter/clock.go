// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock is a Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
