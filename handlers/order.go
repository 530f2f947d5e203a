package handlers

import (
	"errors"
	"net/http"

	"restaurant-orders-api/models"
	"restaurant-orders-api/repository"
	"restaurant-orders-api/services"
	"restaurant-orders-api/statemachine"

	"github.com/gin-gonic/gin"
)

type OrderLineRequest struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required,min=1"`
}

type PlaceOrderRequest struct {
	CustomerID   uint               `json:"customerId" binding:"required"`
	RestaurantID uint               `json:"restaurantId" binding:"required"`
	Items        []OrderLineRequest `json:"items" binding:"required,dive"`
}

// PlaceOrder handles POST /orders
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	in := services.PlaceOrderInput{
		CustomerID:   req.CustomerID,
		RestaurantID: req.RestaurantID,
		Items:        make([]services.OrderLine, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		in.Items = append(in.Items, services.OrderLine{MenuItemID: item.MenuItemID, Quantity: item.Quantity})
	}

	order, err := h.Orders.PlaceOrder(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, order)
}

// GetOrder handles GET /orders/:id. A missing order is an empty 404.
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	order, err := h.Store.GetOrder(c.Request.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		c.Status(http.StatusNotFound)
		return
	}
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, order)
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus handles PATCH /orders/:id/status
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status, err := statemachine.ParseStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":          "Invalid status",
			"valid_statuses": statemachine.Statuses(),
		})
		return
	}

	order, err := h.Orders.UpdateStatus(c.Request.Context(), id, status)
	if errors.Is(err, statemachine.ErrInvalidTransition) {
		current := h.currentStatus(c, id)
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    current,
			"requested":         status,
			"valid_next_states": statemachine.ValidTransitionsFrom(current),
		})
		return
	}
	if err != nil {
		h.fail(c, err, "Order not found")
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) currentStatus(c *gin.Context, id uint) models.OrderStatus {
	order, err := h.Store.GetOrder(c.Request.Context(), id)
	if err != nil {
		return ""
	}
	return order.Status
}
