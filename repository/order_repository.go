package repository

import (
	"context"

	"restaurant-orders-api/models"

	"gorm.io/gorm"
)

// CreateOrder inserts the order with its OrderItems and StatusHistory in one write
func (s *Store) CreateOrder(ctx context.Context, o *models.Order) error {
	return classify("create order", s.db(ctx).Create(o).Error)
}

func (s *Store) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	var o models.Order
	err := s.db(ctx).
		Preload("OrderItems").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		First(&o, id).Error
	if err != nil {
		return nil, classify("get order", err)
	}
	return &o, nil
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id uint, status models.OrderStatus) error {
	res := s.db(ctx).Model(&models.Order{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return classify("update order status", res.Error)
	}
	if res.RowsAffected == 0 {
		return classify("update order status", ErrNotFound)
	}
	return nil
}

// AddStatusHistory records one status change of an order
func (s *Store) AddStatusHistory(ctx context.Context, h *models.OrderStatusHistory) error {
	return classify("add status history", s.db(ctx).Create(h).Error)
}
