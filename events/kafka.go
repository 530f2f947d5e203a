package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/segmentio/kafka-go"
)

type KafkaPublisher struct {
	Writer *kafka.Writer
}

// NewKafkaPublisher returns a publisher whose writes never block the
// request: the writer is async and delivery errors are only logged.
func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{Writer: &kafka.Writer{
		Addr:        kafka.TCP(brokers...),
		Topic:       topic,
		Balancer:    &kafka.Hash{},
		Async:       true,
		MaxAttempts: 1,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				logger.Error("order events delivery failed", slog.Int("messages", len(messages)), slog.Any("error", err))
			}
		},
	}}
}

func (p *KafkaPublisher) Publish(ctx context.Context, evt OrderEvent) error {
	msg, err := encode(evt)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.Writer.Close()
}

// encode keys messages by order id so one order's events stay on one partition
func encode(evt OrderEvent) (kafka.Message, error) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode %s event: %w", evt.Type, err)
	}
	return kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(evt.OrderID), 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(evt.Type)},
		},
	}, nil
}
