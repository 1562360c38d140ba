package wizard

import (
	"context"
	"sync"
	"time"
)

// Poller runs a function on a fixed interval until the function reports it
// is finished, the context is canceled or Stop is called.
type Poller struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// StartPoller calls fn every interval, first after one interval has elapsed.
// fn returns true to end polling. Calls never overlap.
func StartPoller(ctx context.Context, interval time.Duration, fn func(ctx context.Context) bool) *Poller {
	ctx, cancel := context.WithCancel(ctx)
	p := &Poller{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(p.done)
		defer cancel()

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if fn(ctx) {
					return
				}
			}
		}
	}()
	return p
}

// Stop cancels polling. It does not wait; use Done for that.
// Safe to call more than once and from inside fn.
func (p *Poller) Stop() {
	p.once.Do(p.cancel)
}

// Done is closed once the polling goroutine has exited.
func (p *Poller) Done() <-chan struct{} {
	return p.done
}
