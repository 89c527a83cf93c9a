package mado

import "time"

// Invocation describes one completed command dispatch. Err is nil for
// successful invocations, including those resolved to a JSON error
// envelope upstream of the command itself.
type Invocation struct {
	Name     string
	Began    time.Time
	Duration time.Duration
	Err      error
}

// Observer is notified after every command invocation. Observers run on
// the request goroutine and should hand work off quickly; a slow
// observer delays only its own request, never the registry.
//
// In general tracing should be preferred to observers for debugging,
// observers exist for host applications that want to feed invocation
// data into their own metrics or audit sinks.
type Observer interface {
	CommandInvoked(Invocation)
}
