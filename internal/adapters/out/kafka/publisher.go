// Package kafka publishes committed domain events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"printdrop/internal/core/domain/model/kernel"
	"printdrop/internal/core/domain/model/order"

	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes one message per event, keyed by aggregate id so all
// events of an order land on the same partition.
type Publisher struct {
	writer messageWriter
}

// ParseBrokers splits a comma separated broker list and drops blanks.
func ParseBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return newPublisher(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	})
}

func newPublisher(w messageWriter) *Publisher {
	return &Publisher{writer: w}
}

type envelope struct {
	Event       string    `json:"event"`
	AggregateID string    `json:"aggregateId"`
	OccurredAt  time.Time `json:"occurredAt"`
	Payload     any       `json:"payload,omitempty"`
}

type statusChangedPayload struct {
	OrderID   string  `json:"orderId"`
	OwnerID   string  `json:"ownerId"`
	Status    string  `json:"status"`
	CourierID *string `json:"courierId"`
}

func (p *Publisher) Publish(ctx context.Context, events ...kernel.DomainEvent) error {
	if len(events) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(events))
	for _, e := range events {
		data, err := json.Marshal(toEnvelope(e))
		if err != nil {
			return err
		}
		msgs = append(msgs, kafka.Message{
			Key:   []byte(e.AggregateID().String()),
			Value: data,
			Time:  time.Now().UTC(),
			Headers: []kafka.Header{
				{Key: "event", Value: []byte(e.EventName())},
			},
		})
	}

	return p.writer.WriteMessages(ctx, msgs...)
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}

func toEnvelope(e kernel.DomainEvent) envelope {
	env := envelope{
		Event:       e.EventName(),
		AggregateID: e.AggregateID().String(),
		OccurredAt:  e.OccurredAt().UTC(),
	}

	if changed, ok := e.(order.StatusChanged); ok {
		payload := statusChangedPayload{
			OrderID: changed.OrderID.String(),
			OwnerID: changed.OwnerID.String(),
			Status:  changed.Status.String(),
		}
		if changed.CourierID != nil {
			id := changed.CourierID.String()
			payload.CourierID = &id
		}
		env.Payload = payload
	}
	return env
}
