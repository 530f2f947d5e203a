package handlers

import (
	"net/http"

	"restaurant-orders-api/models"

	"github.com/gin-gonic/gin"
)

const topCustomersLimit = 5

type CreateCustomerRequest struct {
	Name  string  `json:"name" binding:"required"`
	Email *string `json:"email"`
}

// CreateCustomer handles POST /customers
func (h *Handler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	customer := models.Customer{Name: req.Name, Email: req.Email}
	if err := h.Store.CreateCustomer(c.Request.Context(), &customer); err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// GetTopCustomers handles GET /customers/top
func (h *Handler) GetTopCustomers(c *gin.Context) {
	top, err := h.Store.TopCustomersByOrderCount(c.Request.Context(), topCustomersLimit)
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, top)
}

// GetCustomer handles GET /customers/:id
func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	customer, err := h.Store.GetCustomer(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Customer not found")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// GetCustomerOrders handles GET /customers/:id/orders
func (h *Handler) GetCustomerOrders(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	orders, err := h.Store.ListOrdersForCustomer(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, orders)
}
