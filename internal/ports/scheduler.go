package ports

import "time"

// Task is a handle to a repeating callback. Stop is idempotent.
type Task interface {
	Stop()
}

type Scheduler interface {
	Every(interval time.Duration, fn func()) Task
}
