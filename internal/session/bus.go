package session

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
)

const liveCodeChannel = "livecode:events"

// busEnvelope wraps an event with the publishing instance id so each
// instance can skip its own messages (it already broadcast locally).
type busEnvelope struct {
	InstanceID string               `json:"instanceId"`
	Event      models.LiveCodeEvent `json:"event"`
}

// Bus bridges live-code events between service instances over Redis
// pub/sub. A nil Bus degrades to local-only fanout.
type Bus struct {
	rdb        *redis.Client
	hub        *Hub
	log        *zap.Logger
	instanceID string
	ctx        context.Context
	cancel     context.CancelFunc
}

func NewBus(rdb *redis.Client, hub *Hub, log *zap.Logger) *Bus {
	ctx, cancel := context.WithCancel(context.Background())
	b := &Bus{
		rdb:        rdb,
		hub:        hub,
		log:        log,
		instanceID: uuid.New().String(),
		ctx:        ctx,
		cancel:     cancel,
	}
	go b.subscribe()
	return b
}

// Publish forwards the event to every other instance. Local fanout goes
// through the hub directly; cross-instance delivery is best effort, so a
// Redis failure is logged but never fails the append that triggered it.
func (b *Bus) Publish(ctx context.Context, event models.LiveCodeEvent) {
	if b == nil || b.rdb == nil {
		return
	}
	payload, err := json.Marshal(busEnvelope{InstanceID: b.instanceID, Event: event})
	if err != nil {
		b.log.Error("failed to marshal live-code event", zap.Error(err))
		return
	}
	if err := b.rdb.Publish(ctx, liveCodeChannel, payload).Err(); err != nil {
		b.log.Warn("failed to publish live-code event", zap.Error(err))
	}
}

func (b *Bus) subscribe() {
	pubsub := b.rdb.Subscribe(b.ctx, liveCodeChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-b.ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var env busEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				b.log.Warn("failed to unmarshal live-code event", zap.Error(err))
				continue
			}
			if env.InstanceID == b.instanceID {
				continue
			}
			b.hub.Broadcast(env.Event)
		}
	}
}

func (b *Bus) Close() {
	if b != nil && b.cancel != nil {
		b.cancel()
	}
}
