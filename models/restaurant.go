package models

import "time"

type Restaurant struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"not null"`
	Address   string     `json:"address"`
	Cuisine   string     `json:"cuisine"`
	MenuItems []MenuItem `json:"-" gorm:"foreignKey:RestaurantID"`
	Orders    []Order    `json:"-" gorm:"foreignKey:RestaurantID"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// MenuItem has no gorm default on IsAvailable: a default tag would turn an
// explicit false into true on insert.
type MenuItem struct {
	ID           uint        `json:"id" gorm:"primaryKey"`
	RestaurantID uint        `json:"restaurantId" gorm:"not null;index"`
	Name         string      `json:"name" gorm:"not null"`
	Description  string      `json:"description"`
	Price        float64     `json:"price" gorm:"type:decimal(10,2);not null"`
	IsAvailable  bool        `json:"isAvailable" gorm:"not null"`
	OrderItems   []OrderItem `json:"-" gorm:"foreignKey:MenuItemID"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}
