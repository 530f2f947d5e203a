package repository

import (
	"context"

	"restaurant-orders-api/models"
)

func (s *Store) CreateCustomer(ctx context.Context, c *models.Customer) error {
	return classify("create customer", s.db(ctx).Create(c).Error)
}

func (s *Store) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	var c models.Customer
	if err := s.db(ctx).First(&c, id).Error; err != nil {
		return nil, classify("get customer", err)
	}
	return &c, nil
}

// TopCustomersByOrderCount ranks customers by how many orders they placed,
// most first. Equal counts are ordered by id.
func (s *Store) TopCustomersByOrderCount(ctx context.Context, limit int) ([]models.CustomerOrderCount, error) {
	out := []models.CustomerOrderCount{}
	err := s.db(ctx).Model(&models.Customer{}).
		Select("customers.id, customers.name, COUNT(orders.id) AS order_count").
		Joins("LEFT JOIN orders ON orders.customer_id = customers.id").
		Group("customers.id, customers.name").
		Order("order_count DESC, customers.id ASC").
		Limit(limit).
		Scan(&out).Error
	if err != nil {
		return nil, classify("top customers", err)
	}
	return out, nil
}

// ListOrdersForCustomer returns the customer's orders with their items. An
// unknown customer yields an empty list.
func (s *Store) ListOrdersForCustomer(ctx context.Context, customerID uint) ([]models.Order, error) {
	orders := []models.Order{}
	err := s.db(ctx).Preload("OrderItems").
		Where("customer_id = ?", customerID).
		Order("id ASC").
		Find(&orders).Error
	if err != nil {
		return nil, classify("list customer orders", err)
	}
	return orders, nil
}
