package services

import (
	"log"
	"sync"

	"shopmate-api/pkg/models"
)

// subscriberBuffer bounds each subscriber's event queue. Events beyond
// it are dropped for that subscriber instead of blocking the broadcast.
const subscriberBuffer = 16

// StreamService is the in-process hub behind the real-time channel.
// Subscribers are added and removed only; broadcasting is
// fire-and-forget and never blocks the request that triggered it.
type StreamService struct {
	mu          sync.RWMutex
	subscribers map[string]chan models.StreamEvent
}

// NewStreamService creates an empty hub.
func NewStreamService() *StreamService {
	return &StreamService{
		subscribers: make(map[string]chan models.StreamEvent),
	}
}

// Subscribe registers a subscriber and returns its event channel.
func (ss *StreamService) Subscribe(id string) <-chan models.StreamEvent {
	ch := make(chan models.StreamEvent, subscriberBuffer)

	ss.mu.Lock()
	ss.subscribers[id] = ch
	ss.mu.Unlock()

	log.Printf("stream: subscriber %s connected (%d active)", id, ss.SubscriberCount())
	return ch
}

// Unsubscribe removes a subscriber and closes its channel.
func (ss *StreamService) Unsubscribe(id string) {
	ss.mu.Lock()
	if ch, ok := ss.subscribers[id]; ok {
		delete(ss.subscribers, id)
		close(ch)
	}
	ss.mu.Unlock()
}

// SubscriberCount returns the number of active subscribers.
func (ss *StreamService) SubscriberCount() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return len(ss.subscribers)
}

// Broadcast delivers an event to every subscriber. A subscriber whose
// buffer is full misses the event; delivery failure never propagates
// to the caller.
func (ss *StreamService) Broadcast(event models.StreamEvent) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	for id, ch := range ss.subscribers {
		select {
		case ch <- event:
		default:
			log.Printf("stream: subscriber %s is slow, dropping %s event", id, event.Name)
		}
	}
}

// BroadcastExcept delivers an event to every subscriber but the named
// one. Used for typing rebroadcast, where the sender must not receive
// its own signal.
func (ss *StreamService) BroadcastExcept(excludeID string, event models.StreamEvent) {
	ss.mu.RLock()
	defer ss.mu.RUnlock()

	for id, ch := range ss.subscribers {
		if id == excludeID {
			continue
		}
		select {
		case ch <- event:
		default:
			log.Printf("stream: subscriber %s is slow, dropping %s event", id, event.Name)
		}
	}
}
