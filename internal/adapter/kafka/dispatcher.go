// Package kafka dispatches notifications by publishing them to the
// district topic on a broker, for deployments that fan out to devices
// through their own consumer rather than FCM.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/sos-alert-service/internal/domain"
)

// Dispatcher implements domain.Dispatcher over a Kafka producer. The topic
// comes from the payload, one topic per district.
type Dispatcher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewDispatcher creates a producer for the given brokers. Topics are set
// per message and auto-created on first use.
func NewDispatcher(brokers []string, logger *slog.Logger) *Dispatcher {
	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(brokers...),
		Balancer:               &kafkago.LeastBytes{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
	}
	return &Dispatcher{writer: w, logger: logger}
}

// Dispatch serializes and publishes the payload, returning the generated
// message id carried in the message key and header.
func (d *Dispatcher) Dispatch(ctx context.Context, p domain.NotificationPayload) (string, error) {
	msg, id, err := serializeToMessage(p)
	if err != nil {
		return "", &domain.DeliveryError{Err: err}
	}
	if err := d.writer.WriteMessages(ctx, msg); err != nil {
		return "", &domain.DeliveryError{Err: err}
	}
	d.logger.Debug("kafka message published", "topic", p.Topic, "message_id", id)
	return id, nil
}

func (d *Dispatcher) Close() error {
	return d.writer.Close()
}

// serializeToMessage marshals a payload into a Kafka message with a fresh
// UUID message id.
func serializeToMessage(p domain.NotificationPayload) (kafkago.Message, string, error) {
	value, err := json.Marshal(p)
	if err != nil {
		return kafkago.Message{}, "", fmt.Errorf("serialize notification: %w", err)
	}
	id := uuid.NewString()
	return kafkago.Message{
		Topic: p.Topic,
		Key:   []byte(id),
		Value: value,
		Headers: []kafkago.Header{
			{Key: "message_id", Value: []byte(id)},
			{Key: "type", Value: []byte(p.Data["type"])},
			{Key: "sos_id", Value: []byte(p.Data["sos_id"])},
		},
	}, id, nil
}
