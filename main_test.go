package main

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"restaurant-orders-api/config"
	"restaurant-orders-api/events"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closeRecorder struct {
	closed int
}

func (p *closeRecorder) Publish(context.Context, events.OrderEvent) error { return nil }

func (p *closeRecorder) Close() error {
	p.closed++
	return nil
}

func TestRunClosesPublisherOnFailure(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name string
		cfg  config.Config
	}{
		{
			name: "listen error",
			cfg: config.Config{
				Port:     "-1",
				GinMode:  gin.TestMode,
				Database: config.Database{Driver: "sqlite", Source: "file::memory:"},
			},
		},
		{
			name: "database error",
			cfg: config.Config{
				Port:     "3000",
				GinMode:  gin.TestMode,
				Database: config.Database{Driver: "mysql", Source: "x"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			publisher := &closeRecorder{}
			err := run(&tt.cfg, logger, publisher)
			require.Error(t, err)
			assert.Equal(t, 1, publisher.closed)
		})
	}
}

func TestNewPublisherWithoutBrokers(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.IsType(t, events.NopPublisher{}, newPublisher(config.Kafka{Topic: "order-events"}, logger))

	p := newPublisher(config.Kafka{Brokers: []string{"localhost:9092"}, Topic: "order-events"}, logger)
	require.IsType(t, &events.KafkaPublisher{}, p)
	assert.NoError(t, p.Close())
}
