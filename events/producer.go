package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/segmentio/kafka-go"
)

const Topic = "food_hub_events"

// Producer publishes domain events to Kafka. A nil Producer is valid and
// drops everything, so event publishing stays optional at runtime.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	if len(brokers) == 0 {
		return nil
	}
	return &Producer{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  Topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish sends one event, best-effort. Failures are logged and never
// surfaced to the request that triggered them.
func (p *Producer) Publish(ctx context.Context, eventType, key string, payload map[string]interface{}) {
	if p == nil || p.writer == nil {
		return
	}

	body := map[string]interface{}{"type": eventType}
	for k, v := range payload {
		body[k] = v
	}
	data, err := json.Marshal(body)
	if err != nil {
		slog.Error("event marshal failed", "type", eventType, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: data,
	}); err != nil {
		slog.Error("event publish failed", "type", eventType, "error", err)
	}
}

func (p *Producer) Close() {
	if p == nil || p.writer == nil {
		return
	}
	if err := p.writer.Close(); err != nil {
		slog.Error("event producer close failed", "error", err)
	}
}
