package events

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Channel is the Redis pub/sub channel supply events are published on.
const Channel = "supply_events"

// Event types.
const (
	TypeStockout = "stockout"
	TypePurchase = "purchase"
	TypeDecision = "decision"
)

const recentLimit = 100

type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
	At   time.Time   `json:"at"`
}

// Bus publishes supply events to Redis and keeps the latest ones in memory.
type Bus struct {
	client  *redis.Client
	channel string

	mu     sync.Mutex
	recent []Event
}

var (
	once     sync.Once
	instance *Bus
)

// Default returns the process-wide bus. Call Init first to attach Redis.
func Default() *Bus {
	once.Do(func() {
		instance = NewBus(nil)
	})
	return instance
}

// Init attaches client to the default bus. A nil client keeps it memory-only.
func Init(client *redis.Client) {
	b := Default()
	b.mu.Lock()
	b.client = client
	b.mu.Unlock()
}

func NewBus(client *redis.Client) *Bus {
	return &Bus{client: client, channel: Channel}
}

// Publish records the event and, when Redis is attached, publishes it.
// Redis failures are logged, never returned to the caller's business flow.
func (b *Bus) Publish(ctx context.Context, eventType string, data interface{}) Event {
	ev := Event{Type: eventType, Data: data, At: time.Now()}

	b.mu.Lock()
	b.recent = append(b.recent, ev)
	if len(b.recent) > recentLimit {
		b.recent = b.recent[len(b.recent)-recentLimit:]
	}
	client := b.client
	b.mu.Unlock()

	if client == nil {
		return ev
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("events: marshal %s: %v", eventType, err)
		return ev
	}
	if err := client.Publish(ctx, b.channel, payload).Err(); err != nil {
		log.Printf("events: publish %s: %v", eventType, err)
	}
	return ev
}

// Recent returns up to n latest events, oldest first. n <= 0 returns all kept.
func (b *Bus) Recent(n int) []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	start := 0
	if n > 0 && len(b.recent) > n {
		start = len(b.recent) - n
	}
	out := make([]Event, len(b.recent)-start)
	copy(out, b.recent[start:])
	return out
}

// Subscribe streams decoded events from Redis until ctx is done.
func (b *Bus) Subscribe(ctx context.Context, handle func(Event)) error {
	b.mu.Lock()
	client := b.client
	b.mu.Unlock()

	if client == nil {
		<-ctx.Done()
		return ctx.Err()
	}
	sub := client.Subscribe(ctx, b.channel)
	defer sub.Close()
	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var ev Event
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				log.Printf("events: bad payload on %s: %v", b.channel, err)
				continue
			}
			handle(ev)
		}
	}
}
