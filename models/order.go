package models

import "time"

// OrderStatus is the lifecycle state of an order
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPreparing OrderStatus = "Preparing"
	StatusCompleted OrderStatus = "Completed"
	StatusCancelled OrderStatus = "Cancelled"
)

type Order struct {
	ID            uint                 `json:"id" gorm:"primaryKey"`
	CustomerID    uint                 `json:"customerId" gorm:"not null;index"`
	RestaurantID  uint                 `json:"restaurantId" gorm:"not null;index"`
	TotalPrice    float64              `json:"totalPrice" gorm:"type:decimal(10,2);not null"`
	Status        OrderStatus          `json:"status" gorm:"not null;default:'Pending'"`
	OrderItems    []OrderItem          `json:"orderItems" gorm:"foreignKey:OrderID"`
	StatusHistory []OrderStatusHistory `json:"statusHistory,omitempty" gorm:"foreignKey:OrderID"` // audit trail, oldest first
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
}

type OrderItem struct {
	ID         uint    `json:"id" gorm:"primaryKey"`
	OrderID    uint    `json:"orderId" gorm:"not null;index"`
	MenuItemID uint    `json:"menuItemId" gorm:"not null;index"`
	Quantity   int     `json:"quantity" gorm:"not null"`
	Price      float64 `json:"price" gorm:"type:decimal(10,2);not null"` // unit price at time of order
}

// OrderStatusHistory is one row per status an order has been in. The first
// row of an order has no FromStatus.
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"orderId" gorm:"not null;index"`
	FromStatus OrderStatus `json:"fromStatus,omitempty"`
	ToStatus   OrderStatus `json:"toStatus" gorm:"not null"`
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"createdAt"`
}
