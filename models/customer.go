package models

import "time"

type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     *string   `json:"email" gorm:"uniqueIndex"`
	Orders    []Order   `json:"-" gorm:"foreignKey:CustomerID"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CustomerOrderCount is one row of the top-customers ranking
type CustomerOrderCount struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	OrderCount int64  `json:"orderCount"`
}
