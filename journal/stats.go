package journal

import "time"

// PollStats describes one completed poll, for injected observers.
type PollStats struct {
	SliceRange SliceRange
	Events     int
	Elapsed    time.Duration
}
