package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	EventRegion = "region"
	EventStatus = "status"
)

const clientBuffer = 32

// Message is one server-sent event. Data is encoded as JSON by the transport.
type Message struct {
	ID        uint64    `json:"id"`
	Event     string    `json:"event"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// Broadcaster fans published messages out to every subscribed client.
// A client that cannot keep up misses messages instead of blocking others.
type Broadcaster struct {
	logger *zap.Logger

	mu      sync.RWMutex
	seq     uint64
	clients map[uuid.UUID]chan Message
	closed  bool
}

func NewBroadcaster(logger *zap.Logger) *Broadcaster {
	return &Broadcaster{
		logger:  logger.With(zap.String("component", "events")),
		clients: make(map[uuid.UUID]chan Message),
	}
}

// Subscribe registers a client. The channel is closed by Unsubscribe or Close.
func (b *Broadcaster) Subscribe() (uuid.UUID, <-chan Message) {
	id := uuid.New()
	ch := make(chan Message, clientBuffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(ch)
		return id, ch
	}
	b.clients[id] = ch
	b.logger.Debug("client subscribed", zap.Stringer("client_id", id), zap.Int("clients", len(b.clients)))
	return id, ch
}

func (b *Broadcaster) Unsubscribe(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.clients[id]; ok {
		close(ch)
		delete(b.clients, id)
		b.logger.Debug("client unsubscribed", zap.Stringer("client_id", id), zap.Int("clients", len(b.clients)))
	}
}

func (b *Broadcaster) ClientCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

func (b *Broadcaster) Publish(event string, data any) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.seq++
	msg := Message{ID: b.seq, Event: event, Data: data, Timestamp: time.Now().UTC()}

	for id, ch := range b.clients {
		select {
		case ch <- msg:
		default:
			b.logger.Warn("client too slow, dropping event",
				zap.Stringer("client_id", id),
				zap.String("event", event),
			)
		}
	}
}

// Close disconnects every client. Later publishes are ignored.
func (b *Broadcaster) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.clients {
		close(ch)
		delete(b.clients, id)
	}
}
