package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/hbnb/internal/logger"
	"github.com/sbilibin2017/hbnb/internal/models"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// EventPublisher announces committed entity changes.
type EventPublisher interface {
	Publish(ctx context.Context, event models.EntityEvent)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// KafkaEventPublisher publishes entity events as JSON messages keyed by entity id.
type KafkaEventPublisher struct {
	writer KafkaWriter
}

// NewKafkaEventPublisher creates a publisher. A nil writer disables publishing.
func NewKafkaEventPublisher(writer KafkaWriter) *KafkaEventPublisher {
	return &KafkaEventPublisher{writer: writer}
}

// Publish writes the event. Failures are logged and never returned: the
// change is already committed.
func (p *KafkaEventPublisher) Publish(ctx context.Context, event models.EntityEvent) {
	if p == nil || p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal entity event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EntityID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish entity event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Entity event published to Kafka", "event_id", event.EventID, "entity", event.Entity, "operation", event.Operation)
	}
}

// publish builds and sends an event for e when a publisher is configured.
func publish(ctx context.Context, p EventPublisher, operation string, e models.Entity, actorID string) {
	if p == nil {
		return
	}
	p.Publish(ctx, models.EntityEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		Entity:    e.TableName(),
		EntityID:  entityID(e),
		Operation: operation,
		ActorID:   actorID,
	})
}

func entityID(e models.Entity) string {
	key := e.Key()
	if id, ok := key["id"]; ok {
		return fmt.Sprint(id)
	}
	if code, ok := key["code"]; ok {
		return fmt.Sprint(code)
	}
	parts := make([]string, 0, len(key))
	for _, col := range []string{"place_id", "amenity_id"} {
		if v, ok := key[col]; ok {
			parts = append(parts, fmt.Sprint(v))
		}
	}
	return strings.Join(parts, ":")
}
