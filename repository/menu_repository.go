package repository

import (
	"context"

	"restaurant-orders-api/models"
)

// GetMenuForRestaurant lists a restaurant's menu items by id, only the
// available ones when availableOnly is set.
func (s *Store) GetMenuForRestaurant(ctx context.Context, restaurantID uint, availableOnly bool) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	query := s.db(ctx).Where("restaurant_id = ?", restaurantID)
	if availableOnly {
		query = query.Where("is_available = ?", true)
	}
	if err := query.Order("id ASC").Find(&items).Error; err != nil {
		return nil, classify("get menu", err)
	}
	return items, nil
}

func (s *Store) CreateMenuItem(ctx context.Context, item *models.MenuItem) error {
	return classify("create menu item", s.db(ctx).Create(item).Error)
}

func (s *Store) GetMenuItem(ctx context.Context, id uint) (*models.MenuItem, error) {
	var item models.MenuItem
	if err := s.db(ctx).First(&item, id).Error; err != nil {
		return nil, classify("get menu item", err)
	}
	return &item, nil
}

// UpdateMenuItem writes only the given columns and returns the stored row.
func (s *Store) UpdateMenuItem(ctx context.Context, id uint, fields map[string]any) (*models.MenuItem, error) {
	item, err := s.GetMenuItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return item, nil
	}
	if err := s.db(ctx).Model(item).Updates(fields).Error; err != nil {
		return nil, classify("update menu item", err)
	}
	return s.GetMenuItem(ctx, id)
}

// TopSellingMenuItem returns the item with the highest ordered quantity
// across all orders, or nil when nothing was ever ordered. Equal totals are
// ordered by menu item id.
func (s *Store) TopSellingMenuItem(ctx context.Context) (*models.MenuItem, error) {
	var rows []struct {
		MenuItemID    uint
		TotalQuantity int64
	}
	err := s.db(ctx).Model(&models.OrderItem{}).
		Select("menu_item_id, SUM(quantity) AS total_quantity").
		Group("menu_item_id").
		Order("total_quantity DESC, menu_item_id ASC").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, classify("top selling menu item", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return s.GetMenuItem(ctx, rows[0].MenuItemID)
}
