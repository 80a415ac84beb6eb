// internal/mission/events.go
package mission

import (
	"context"
	"sync"
	"time"

	apperrors "design-missions/internal/common/errors"
	"design-missions/internal/common/logger"
	"design-missions/internal/common/metrics"
)

type EventType string

const (
	EventReceived     EventType = "received"
	EventStarted      EventType = "started"
	EventCompleted    EventType = "completed"
	EventError        EventType = "error"
	EventPrioritized  EventType = "prioritized"
	EventCancelled    EventType = "cancelled"
	EventDelivered    EventType = "delivered"
	EventPaused       EventType = "paused"
	EventResumed      EventType = "resumed"
	EventStatusReport EventType = "statusReport"
)

// Event is one lifecycle notification. Data holds event-specific fields.
type Event struct {
	Type      EventType              `json:"type"`
	MissionID string                 `json:"missionId,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

// Subscription receives events on C until it is unsubscribed or the bus closes.
type Subscription struct {
	C    <-chan Event
	id   uint64
	name string
	ch   chan Event
}

// Sink forwards events outside the process.
type Sink interface {
	Name() string
	Send(ctx context.Context, e Event) error
}

const sinkSendTimeout = 5 * time.Second

// Bus fans events out to subscribers in registration order. Sends never block:
// an event that does not fit a subscriber's buffer is dropped for that subscriber.
type Bus struct {
	mu     sync.RWMutex
	subs   []*Subscription
	nextID uint64
	closed bool
	pumps  sync.WaitGroup
	logger logger.Logger
}

func NewBus(log logger.Logger) *Bus {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Bus{logger: log}
}

func (b *Bus) Subscribe(name string, buffer int) *Subscription {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &Subscription{C: ch, id: b.nextID, name: name, ch: ch}
	if b.closed {
		close(ch)
		return sub
	}
	b.subs = append(b.subs, sub)
	return sub
}

// Unsubscribe detaches sub and closes its channel. Unknown subscriptions are ignored.
func (b *Bus) Unsubscribe(sub *Subscription) {
	if sub == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == sub.id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			close(s.ch)
			return
		}
	}
}

func (b *Bus) Publish(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}

	metrics.EventsPublished.WithLabelValues(string(e.Type)).Inc()
	for _, s := range b.subs {
		select {
		case s.ch <- e:
		default:
			metrics.EventsDropped.WithLabelValues(s.name).Inc()
			b.logger.Warn("event dropped for slow subscriber", map[string]interface{}{
				"subscriber": s.name,
				"eventType":  e.Type,
				"missionId":  e.MissionID,
			})
		}
	}
}

// Attach pumps every event into sink from a dedicated goroutine, so a slow sink
// never delays the publisher. Failed sends are counted and logged.
func (b *Bus) Attach(sink Sink, buffer int) {
	sub := b.Subscribe("sink:"+sink.Name(), buffer)

	b.pumps.Add(1)
	go func() {
		defer b.pumps.Done()
		for e := range sub.C {
			ctx, cancel := context.WithTimeout(context.Background(), sinkSendTimeout)
			err := sink.Send(ctx, e)
			cancel()
			if err != nil {
				metrics.EventsBroadcastFailed.WithLabelValues(sink.Name()).Inc()
				stdErr := apperrors.NewEventBroadcastError(sink.Name(), err)
				b.logger.Error(stdErr.Message, map[string]interface{}{
					"errorCode": stdErr.Code,
					"details":   stdErr.Details,
					"eventType": e.Type,
					"missionId": e.MissionID,
				})
			}
		}
	}()
}

// Close detaches every subscriber and waits for the sink pumps to drain.
func (b *Bus) Close() {
	b.mu.Lock()
	if !b.closed {
		b.closed = true
		for _, s := range b.subs {
			close(s.ch)
		}
		b.subs = nil
	}
	b.mu.Unlock()

	b.pumps.Wait()
}
