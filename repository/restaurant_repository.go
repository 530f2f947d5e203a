package repository

import (
	"context"

	"restaurant-orders-api/models"

	"github.com/shopspring/decimal"
)

func (s *Store) CreateRestaurant(ctx context.Context, r *models.Restaurant) error {
	return classify("create restaurant", s.db(ctx).Create(r).Error)
}

func (s *Store) GetRestaurant(ctx context.Context, id uint) (*models.Restaurant, error) {
	var r models.Restaurant
	if err := s.db(ctx).First(&r, id).Error; err != nil {
		return nil, classify("get restaurant", err)
	}
	return &r, nil
}

// SumCompletedRevenue totals completed orders of a restaurant, 0 when there
// are none. SQLite sums decimal columns as REAL, so the sum is read back as a
// decimal and rounded to cents.
func (s *Store) SumCompletedRevenue(ctx context.Context, restaurantID uint) (float64, error) {
	var revenue decimal.Decimal
	err := s.db(ctx).Model(&models.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Where("restaurant_id = ? AND status = ?", restaurantID, models.StatusCompleted).
		Row().Scan(&revenue)
	if err != nil {
		return 0, classify("sum revenue", err)
	}
	return revenue.Round(2).InexactFloat64(), nil
}
