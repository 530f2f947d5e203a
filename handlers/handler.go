package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"restaurant-orders-api/models"
	"restaurant-orders-api/repository"
	"restaurant-orders-api/services"

	"github.com/gin-gonic/gin"
)

// Store is the slice of the persistence gateway the handlers use
type Store interface {
	CreateCustomer(ctx context.Context, c *models.Customer) error
	GetCustomer(ctx context.Context, id uint) (*models.Customer, error)
	TopCustomersByOrderCount(ctx context.Context, limit int) ([]models.CustomerOrderCount, error)
	ListOrdersForCustomer(ctx context.Context, customerID uint) ([]models.Order, error)

	CreateRestaurant(ctx context.Context, r *models.Restaurant) error
	GetRestaurant(ctx context.Context, id uint) (*models.Restaurant, error)
	SumCompletedRevenue(ctx context.Context, restaurantID uint) (float64, error)

	GetMenuForRestaurant(ctx context.Context, restaurantID uint, availableOnly bool) ([]models.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *models.MenuItem) error
	UpdateMenuItem(ctx context.Context, id uint, fields map[string]any) (*models.MenuItem, error)
	TopSellingMenuItem(ctx context.Context) (*models.MenuItem, error)

	GetOrder(ctx context.Context, id uint) (*models.Order, error)

	Ping(ctx context.Context) error
}

// OrderFlow places orders and moves them through their lifecycle
type OrderFlow interface {
	PlaceOrder(ctx context.Context, in services.PlaceOrderInput) (*models.Order, error)
	UpdateStatus(ctx context.Context, id uint, status models.OrderStatus) (*models.Order, error)
}

type Handler struct {
	Store  Store
	Orders OrderFlow
	Logger *slog.Logger
}

func New(store Store, orders OrderFlow, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{Store: store, Orders: orders, Logger: logger}
}

// parseID reads a numeric path parameter, answering 400 when it is not one
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return 0, false
	}
	return uint(id), true
}

// fail answers 404 with notFound for missing rows and a generic 500 for
// anything else. Store details only go to the log.
func (h *Handler) fail(c *gin.Context, err error, notFound string) {
	if errors.Is(err, repository.ErrNotFound) && notFound != "" {
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
		return
	}
	h.Logger.ErrorContext(c.Request.Context(), "request failed",
		slog.String("method", c.Request.Method),
		slog.String("path", c.FullPath()),
		slog.Any("error", err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
