package routes

import (
	"log/slog"

	"restaurant-orders-api/handlers"
	"restaurant-orders-api/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// NewRouter builds the engine with recovery, request logging and CORS
// in front of every route.
func NewRouter(h *handlers.Handler, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger), middleware.CORS())
	SetupRoutes(r, h)
	return r
}

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// request bodies have a fixed schema per endpoint
	binding.EnableDecoderDisallowUnknownFields = true

	r.GET("/health", h.Health)
	r.GET("/order-statuses", handlers.GetStateMachineInfo)

	// ── Customers ──────────────────────────────────────────────────
	r.POST("/customers", h.CreateCustomer)
	r.GET("/customers/top", h.GetTopCustomers)
	r.GET("/customers/:id", h.GetCustomer)
	r.GET("/customers/:id/orders", h.GetCustomerOrders)

	// ── Restaurants & menus ────────────────────────────────────────
	r.POST("/restaurants", h.CreateRestaurant)
	r.GET("/restaurants/:id/menu", h.GetMenu)
	r.POST("/restaurants/:id/menu", h.AddMenuItem)
	r.GET("/restaurants/:id/revenue", h.GetRevenue)
	r.PATCH("/menu/:id", h.UpdateMenuItem)
	r.GET("/menu/top-items", h.GetTopMenuItem)

	// ── Orders ─────────────────────────────────────────────────────
	r.POST("/orders", h.PlaceOrder)
	r.GET("/orders/:id", h.GetOrder)
	r.PATCH("/orders/:id/status", h.UpdateOrderStatus)
}
