package sliceq

import "github.com/brejnholt/sliceq/journal"

// Observer is notified once per completed poll. It is the injected side
// channel for metrics; implementations must be safe for concurrent calls
// from parallel slice range workers.
type Observer interface {
	ObservePoll(stats journal.PollStats)
}

type ObserverFunc func(stats journal.PollStats)

func (fn ObserverFunc) ObservePoll(stats journal.PollStats) {
	fn(stats)
}

type noopObserver struct{}

func (noopObserver) ObservePoll(stats journal.PollStats) {}
