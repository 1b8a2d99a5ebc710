package service

import (
	"fmt"
	"sync"

	"github.com/beka-birhanu/vinom-maze-gate/maze"
	"github.com/beka-birhanu/vinom-maze-gate/service/i"
	"github.com/google/uuid"
)

// EventKind identifies what an Event reports.
type EventKind uint8

// Event kinds, one per Observer callback.
const (
	EventGrid EventKind = iota + 1
	EventMoved
	EventTick
	EventFinished
)

func (k EventKind) String() string {
	switch k {
	case EventGrid:
		return "grid"
	case EventMoved:
		return "moved"
	case EventTick:
		return "tick"
	case EventFinished:
		return "finished"
	}
	return "unknown"
}

// Event is an observer callback captured for delivery over a channel.
type Event struct {
	Kind      EventKind
	SessionID uuid.UUID
	Grid      *maze.Grid    // EventGrid
	Position  maze.Position // EventMoved
	Remaining int           // EventTick
	Won       bool          // EventFinished
}

// Broadcaster is an Observer that copies every event to its subscribers.
// A subscriber that falls a full buffer behind is evicted and its channel
// closed.
type Broadcaster struct {
	buffer    int
	sessionID func() uuid.UUID
	logger    i.Logger

	mu   sync.Mutex
	subs map[int]chan Event
	next int
}

// NewBroadcaster creates a broadcaster with the given per-subscriber buffer.
// sessionID tags each event and is called on the publishing goroutine.
func NewBroadcaster(buffer int, sessionID func() uuid.UUID, logger i.Logger) *Broadcaster {
	if buffer < 1 {
		buffer = 1
	}
	if logger == nil {
		logger = discardLogger{}
	}
	return &Broadcaster{
		buffer:    buffer,
		sessionID: sessionID,
		logger:    logger,
		subs:      make(map[int]chan Event),
	}
}

// Subscribe registers a new subscriber. The returned func unsubscribes it
// and closes the channel. It is safe to call more than once.
func (b *Broadcaster) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Event, b.buffer)
	b.subs[id] = ch

	return ch, func() { b.remove(id) }
}

// Subscribers returns the number of live subscribers.
func (b *Broadcaster) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Broadcaster) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if ch, ok := b.subs[id]; ok {
		delete(b.subs, id)
		close(ch)
	}
}

func (b *Broadcaster) publish(e Event) {
	if b.sessionID != nil {
		e.SessionID = b.sessionID()
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for id, ch := range b.subs {
		select {
		case ch <- e:
		default:
			delete(b.subs, id)
			close(ch)
			b.logger.Warning(fmt.Sprintf("evicted event subscriber %d: buffer of %d full", id, b.buffer))
		}
	}
}

func (b *Broadcaster) OnGridChanged(grid *maze.Grid) {
	b.publish(Event{Kind: EventGrid, Grid: grid})
}

func (b *Broadcaster) OnPlayerMoved(pos maze.Position) {
	b.publish(Event{Kind: EventMoved, Position: pos})
}

func (b *Broadcaster) OnTick(secondsRemaining int) {
	b.publish(Event{Kind: EventTick, Remaining: secondsRemaining})
}

func (b *Broadcaster) OnFinished(won bool) {
	b.publish(Event{Kind: EventFinished, Won: won})
}
