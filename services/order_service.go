package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"restaurant-orders-api/events"
	"restaurant-orders-api/models"
	"restaurant-orders-api/repository"
	"restaurant-orders-api/statemachine"

	"github.com/shopspring/decimal"
)

type OrderLine struct {
	MenuItemID uint
	Quantity   int
}

type PlaceOrderInput struct {
	CustomerID   uint
	RestaurantID uint
	Items        []OrderLine
}

type OrderService struct {
	Store     *repository.Store
	Publisher events.Publisher
	Logger    *slog.Logger
}

func NewOrderService(store *repository.Store, publisher events.Publisher, logger *slog.Logger) *OrderService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &OrderService{Store: store, Publisher: publisher, Logger: logger}
}

// PlaceOrder prices each line at the menu item's current price and stores
// the order with every line whose menu item exists. Lines pointing at a
// missing menu item are dropped and do not count towards the total.
// Price lookups and the insert share one transaction.
func (s *OrderService) PlaceOrder(ctx context.Context, in PlaceOrderInput) (*models.Order, error) {
	order := &models.Order{
		CustomerID:   in.CustomerID,
		RestaurantID: in.RestaurantID,
		Status:       models.StatusPending,
		OrderItems:   []models.OrderItem{},
	}
	order.StatusHistory = []models.OrderStatusHistory{
		{ToStatus: models.StatusPending, Note: "order placed"},
	}

	err := s.Store.Transaction(ctx, func(tx *repository.Store) error {
		total := decimal.Zero
		for _, line := range in.Items {
			item, err := tx.GetMenuItem(ctx, line.MenuItemID)
			if errors.Is(err, repository.ErrNotFound) {
				s.Logger.WarnContext(ctx, "dropping order line for unknown menu item",
					slog.Uint64("menu_item_id", uint64(line.MenuItemID)),
					slog.Int("quantity", line.Quantity))
				continue
			}
			if err != nil {
				return err
			}

			total = total.Add(LineTotal(item.Price, line.Quantity))
			order.OrderItems = append(order.OrderItems, models.OrderItem{
				MenuItemID: item.ID,
				Quantity:   line.Quantity,
				Price:      item.Price,
			})
		}
		order.TotalPrice = total.Round(2).InexactFloat64()
		return tx.CreateOrder(ctx, order)
	})
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}

	s.Logger.InfoContext(ctx, "order placed",
		slog.Uint64("order_id", uint64(order.ID)),
		slog.Float64("total_price", order.TotalPrice),
		slog.Int("lines", len(order.OrderItems)),
		slog.Int("dropped_lines", len(in.Items)-len(order.OrderItems)))
	s.publish(ctx, events.NewOrderEvent(events.TypeOrderPlaced, order, ""))
	return order, nil
}

// UpdateStatus moves an order to a new status when the lifecycle allows it
// and records the change in the order's status history. Asking for the status
// the order already has changes nothing and returns the order as stored.
func (s *OrderService) UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error) {
	var (
		order    *models.Order
		previous models.OrderStatus
		changed  bool
	)
	err := s.Store.Transaction(ctx, func(tx *repository.Store) error {
		current, err := tx.GetOrder(ctx, id)
		if err != nil {
			return err
		}
		if current.Status == status {
			order = current
			return nil
		}
		if err := statemachine.CanTransition(current.Status, status); err != nil {
			return err
		}
		if err := tx.UpdateOrderStatus(ctx, id, status); err != nil {
			return err
		}
		err = tx.AddStatusHistory(ctx, &models.OrderStatusHistory{
			OrderID:    id,
			FromStatus: current.Status,
			ToStatus:   status,
			Note:       fmt.Sprintf("status changed from %s to %s", current.Status, status),
		})
		if err != nil {
			return err
		}
		previous, changed = current.Status, true
		order, err = tx.GetOrder(ctx, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update order %d status: %w", id, err)
	}
	if !changed {
		return order, nil
	}

	s.Logger.InfoContext(ctx, "order status changed",
		slog.Uint64("order_id", uint64(order.ID)),
		slog.String("from", string(previous)),
		slog.String("to", string(order.Status)))
	s.publish(ctx, events.NewOrderEvent(events.TypeOrderStatusChanged, order, previous))
	return order, nil
}

// publish never fails the caller, the order is already committed.
func (s *OrderService) publish(ctx context.Context, evt events.OrderEvent) {
	if err := s.Publisher.Publish(ctx, evt); err != nil {
		s.Logger.ErrorContext(ctx, "publish order event",
			slog.String("type", evt.Type),
			slog.Uint64("order_id", uint64(evt.OrderID)),
			slog.Any("error", err))
	}
}

// LineTotal is price × quantity in exact decimal arithmetic
func LineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}
