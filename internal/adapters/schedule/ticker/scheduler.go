package ticker

import (
	"sync"
	"time"

	"github.com/bnema/podium/internal/ports"
)

// Scheduler runs each repeating task on its own time.Ticker goroutine.
type Scheduler struct{}

var _ ports.Scheduler = Scheduler{}

func (Scheduler) Every(interval time.Duration, fn func()) ports.Task {
	t := &task{
		ticker: time.NewTicker(interval),
		done:   make(chan struct{}),
	}
	go t.loop(fn)
	return t
}

type task struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

func (t *task) loop(fn func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			// Stop may race with a pending tick; done wins.
			select {
			case <-t.done:
				return
			default:
			}
			fn()
		}
	}
}

func (t *task) Stop() {
	t.once.Do(func() {
		t.ticker.Stop()
		close(t.done)
	})
}
