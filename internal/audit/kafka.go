package audit

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
)

// KafkaStore publishes events to a topic keyed by business, so consumers see
// the events of one business in order.
type KafkaStore struct {
	writer *kafka.Writer
}

func NewKafkaStore(brokers []string, topic string) *KafkaStore {
	return &KafkaStore{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
			WriteTimeout: 5 * time.Second,
		},
	}
}

func (s *KafkaStore) Log(ctx context.Context, ev Event) error {
	msg, err := encodeMessage(ctx, ev, time.Now())
	if err != nil {
		return err
	}
	return s.writer.WriteMessages(ctx, msg)
}

func (s *KafkaStore) Close() error {
	return s.writer.Close()
}

type message struct {
	BusinessID uint      `json:"business_id"`
	UserID     *uint     `json:"user_id,omitempty"`
	Action     string    `json:"action"`
	Entity     string    `json:"entity"`
	EntityID   *uint     `json:"entity_id,omitempty"`
	Metadata   any       `json:"metadata,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func encodeMessage(ctx context.Context, ev Event, at time.Time) (kafka.Message, error) {
	value, err := json.Marshal(message{
		BusinessID: ev.BusinessID,
		UserID:     ev.UserID,
		Action:     ev.Action,
		Entity:     ev.Entity,
		EntityID:   ev.EntityID,
		Metadata:   ev.Metadata,
		OccurredAt: at.UTC(),
	})
	if err != nil {
		return kafka.Message{}, err
	}

	carrier := &headerCarrier{headers: []kafka.Header{{Key: "action", Value: []byte(ev.Action)}}}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	return kafka.Message{
		Key:     []byte(strconv.FormatUint(uint64(ev.BusinessID), 10)),
		Value:   value,
		Headers: carrier.headers,
		Time:    at,
	}, nil
}

type headerCarrier struct {
	headers []kafka.Header
}

func (c *headerCarrier) Get(key string) string {
	for _, h := range c.headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *headerCarrier) Set(key, value string) {
	for i := range c.headers {
		if c.headers[i].Key == key {
			c.headers[i].Value = []byte(value)
			return
		}
	}
	c.headers = append(c.headers, kafka.Header{Key: key, Value: []byte(value)})
}

func (c *headerCarrier) Keys() []string {
	keys := make([]string, 0, len(c.headers))
	for _, h := range c.headers {
		keys = append(keys, h.Key)
	}
	return keys
}

// Stores fans one event out to every store and reports all failures.
type Stores []Store

func (s Stores) Log(ctx context.Context, ev Event) error {
	var errs []error
	for _, st := range s {
		if err := st.Log(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
