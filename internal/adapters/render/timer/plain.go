package timer

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/bnema/podium/internal/domain"
)

// RunPlain starts the countdown and prints one line per visible change until it reaches zero or ctx ends.
func RunPlain(ctx context.Context, controller Controller, out io.Writer) error {
	var (
		mu       sync.Mutex
		last     string
		once     sync.Once
		writeErr error
	)
	done := make(chan struct{})

	emit := func(s domain.TimerSnapshot) {
		mu.Lock()
		defer mu.Unlock()

		line := PlainLine(s)
		if line == last {
			return
		}
		last = line
		if _, err := fmt.Fprintln(out, line); err != nil && writeErr == nil {
			writeErr = err
		}
	}

	emit(controller.Snapshot())
	unsubscribe := controller.Subscribe(func(s domain.TimerSnapshot) {
		emit(s)
		if !s.Running && s.RemainingSeconds == 0 {
			once.Do(func() { close(done) })
		}
	})
	defer unsubscribe()

	controller.Start()

	select {
	case <-done:
	case <-ctx.Done():
		controller.Pause()
	}

	mu.Lock()
	defer mu.Unlock()
	return writeErr
}
