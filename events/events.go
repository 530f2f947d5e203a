package events

import (
	"context"
	"time"

	"restaurant-orders-api/models"
)

const (
	TypeOrderPlaced        = "order.placed"
	TypeOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the message published after an order write commits
type OrderEvent struct {
	Type           string             `json:"type"`
	OrderID        uint               `json:"orderId"`
	CustomerID     uint               `json:"customerId"`
	RestaurantID   uint               `json:"restaurantId"`
	Status         models.OrderStatus `json:"status"`
	PreviousStatus models.OrderStatus `json:"previousStatus,omitempty"`
	TotalPrice     float64            `json:"totalPrice"`
	Timestamp      time.Time          `json:"timestamp"`
}

// NewOrderEvent snapshots an order into an event of the given type
func NewOrderEvent(eventType string, o *models.Order, previous models.OrderStatus) OrderEvent {
	return OrderEvent{
		Type:           eventType,
		OrderID:        o.ID,
		CustomerID:     o.CustomerID,
		RestaurantID:   o.RestaurantID,
		Status:         o.Status,
		PreviousStatus: previous,
		TotalPrice:     o.TotalPrice,
		Timestamp:      time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, evt OrderEvent) error
	Close() error
}

// NopPublisher drops every event, used when no broker is configured
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, OrderEvent) error { return nil }
func (NopPublisher) Close() error                              { return nil }
