package service

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrLoopStopped is returned when posting to a loop that is no longer running.
var ErrLoopStopped = errors.New("event loop stopped")

// Loop runs posted funcs one at a time on a single goroutine. It also acts
// as the Clock of the game it serves, so ticks and input never interleave.
type Loop struct {
	events chan func()
	done   chan struct{}
	once   sync.Once
}

// NewLoop returns a loop whose queue holds up to buffer pending events.
func NewLoop(buffer int) *Loop {
	if buffer < 0 {
		buffer = 0
	}
	return &Loop{
		events: make(chan func(), buffer),
		done:   make(chan struct{}),
	}
}

// Run executes events until ctx is done or Stop is called.
func (l *Loop) Run(ctx context.Context) {
	defer l.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-l.done:
			return
		case fn := <-l.events:
			fn()
		}
	}
}

// Stop ends Run and every subscription created with Every.
func (l *Loop) Stop() {
	l.once.Do(func() { close(l.done) })
}

// Post queues fn, blocking while the queue is full.
func (l *Loop) Post(fn func()) error {
	select {
	case <-l.done:
		return ErrLoopStopped
	default:
	}

	select {
	case l.events <- fn:
		return nil
	case <-l.done:
		return ErrLoopStopped
	}
}

// Do queues fn and waits for it to run. It must not be called from inside
// the loop.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	ran := make(chan struct{})
	if err := l.Post(func() {
		defer close(ran)
		fn()
	}); err != nil {
		return err
	}

	select {
	case <-ran:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-l.done:
		select {
		case <-ran:
			return nil
		default:
			return ErrLoopStopped
		}
	}
}

// Every posts fn to the loop once per period d. A tick already queued when
// cancel runs is dropped.
func (l *Loop) Every(d time.Duration, fn func()) func() {
	stop := make(chan struct{})
	var once sync.Once

	tick := func() {
		select {
		case <-stop:
		default:
			fn()
		}
	}

	go func() {
		t := time.NewTicker(d)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-l.done:
				return
			case <-t.C:
				select {
				case l.events <- tick:
				case <-stop:
					return
				case <-l.done:
					return
				}
			}
		}
	}()

	return func() { once.Do(func() { close(stop) }) }
}
