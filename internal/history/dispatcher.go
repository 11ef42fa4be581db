package history

import (
	"sync"

	"github.com/alexisbeaulieu97/tinte/internal/theme"
)

// dispatcher delivers queued themes to a callback on its own goroutine,
// preserving enqueue order. Delivery never happens on the caller's stack.
type dispatcher struct {
	fn ChangeFunc

	mu      sync.Mutex
	pending []theme.Theme
	closed  bool

	wake chan struct{}
	done chan struct{}
}

func newDispatcher(fn ChangeFunc) *dispatcher {
	d := &dispatcher{
		fn:   fn,
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *dispatcher) add(t theme.Theme) {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.pending = append(d.pending, t)
	select {
	case d.wake <- struct{}{}:
	default:
	}
	d.mu.Unlock()
}

func (d *dispatcher) run() {
	defer close(d.done)
	for {
		_, open := <-d.wake
		d.flush()
		if !open {
			return
		}
	}
}

// flush drains the queue outside the lock.
func (d *dispatcher) flush() {
	for {
		d.mu.Lock()
		batch := d.pending
		d.pending = nil
		d.mu.Unlock()

		if len(batch) == 0 {
			return
		}
		for _, t := range batch {
			d.fn(t)
		}
	}
}

func (d *dispatcher) close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.wake)
	d.mu.Unlock()

	<-d.done
}
