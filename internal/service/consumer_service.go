package service

import (
	"context"
	"encoding/json"

	"notes-app-be/internal/dto"
	"notes-app-be/internal/pkg/logger"
	"notes-app-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
)

const consumerModule = "NOTE_EVENTS"

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// EventForwarder relays consumed events to an external bus (NATS JetStream).
type EventForwarder interface {
	Publish(ctx context.Context, event events.Event) error
}

type consumerService struct {
	subscriber message.Subscriber
	topicName  string
	auditLog   logger.ILogger
	forwarder  EventForwarder
}

// NewConsumerService builds the note event consumer. forwarder may be nil.
func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	auditLog logger.ILogger,
	forwarder EventForwarder,
) IConsumerService {
	return &consumerService{
		subscriber: subscriber,
		topicName:  topicName,
		auditLog:   auditLog,
		forwarder:  forwarder,
	}
}

// Consume subscribes and processes messages in the background until ctx is cancelled.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	// Always ack: the audit trail is best effort and must never block publishers.
	defer msg.Ack()

	var payload dto.NoteEventMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.auditLog.Error(consumerModule, "failed to unmarshal note event", map[string]interface{}{
			"error":      err,
			"message_id": msg.UUID,
		})
		return
	}

	cs.auditLog.Info(consumerModule, payload.Type, map[string]interface{}{
		"event_id":    payload.Id,
		"data":        payload.Data,
		"occurred_at": payload.OccurredAt,
	})

	if cs.forwarder == nil {
		return
	}

	evt := events.BaseEvent{
		Id:         payload.Id,
		Type:       payload.Type,
		Data:       payload.Data,
		OccurredAt: payload.OccurredAt,
	}
	if err := cs.forwarder.Publish(ctx, evt); err != nil {
		cs.auditLog.Warn(consumerModule, "failed to forward note event", map[string]interface{}{
			"error":    err.Error(),
			"event_id": payload.Id,
		})
	}
}
