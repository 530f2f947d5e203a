package handlers

import (
	"net/http"
	"strconv"

	"restaurant-orders-api/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ── Restaurants ─────────────────────────────────────────────────────────────

type CreateRestaurantRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Cuisine string `json:"cuisine"`
}

// CreateRestaurant handles POST /restaurants
func (h *Handler) CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	restaurant := models.Restaurant{Name: req.Name, Address: req.Address, Cuisine: req.Cuisine}
	if err := h.Store.CreateRestaurant(c.Request.Context(), &restaurant); err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// GetRevenue handles GET /restaurants/:id/revenue
func (h *Handler) GetRevenue(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	revenue, err := h.Store.SumCompletedRevenue(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenue": revenue})
}

// ── Menu ────────────────────────────────────────────────────────────────────

type CreateMenuItemRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	IsAvailable *bool    `json:"isAvailable"`
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
	IsAvailable *bool    `json:"isAvailable"`
}

// fields lists the columns to write, only those present in the request
func (r UpdateMenuItemRequest) fields() map[string]any {
	fields := map[string]any{}
	if r.Name != nil {
		fields["name"] = *r.Name
	}
	if r.Description != nil {
		fields["description"] = *r.Description
	}
	if r.Price != nil {
		fields["price"] = roundPrice(*r.Price)
	}
	if r.IsAvailable != nil {
		fields["is_available"] = *r.IsAvailable
	}
	return fields
}

// roundPrice keeps menu prices to the cents the price column holds
func roundPrice(p float64) float64 {
	return decimal.NewFromFloat(p).Round(2).InexactFloat64()
}

// GetMenu handles GET /restaurants/:id/menu. Only available items are listed
// unless ?available=false is passed.
func (h *Handler) GetMenu(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	availableOnly, err := strconv.ParseBool(c.DefaultQuery("available", "true"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "available must be true or false"})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Store.GetRestaurant(ctx, id); err != nil {
		h.fail(c, err, "Restaurant not found")
		return
	}
	items, err := h.Store.GetMenuForRestaurant(ctx, id, availableOnly)
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddMenuItem handles POST /restaurants/:id/menu
func (h *Handler) AddMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	if _, err := h.Store.GetRestaurant(ctx, id); err != nil {
		h.fail(c, err, "Restaurant not found")
		return
	}

	item := models.MenuItem{
		RestaurantID: id,
		Name:         req.Name,
		Description:  req.Description,
		Price:        roundPrice(*req.Price),
		IsAvailable:  req.IsAvailable == nil || *req.IsAvailable,
	}
	if err := h.Store.CreateMenuItem(ctx, &item); err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateMenuItem handles PATCH /menu/:id
func (h *Handler) UpdateMenuItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req UpdateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.Store.UpdateMenuItem(c.Request.Context(), id, req.fields())
	if err != nil {
		h.fail(c, err, "Menu item not found")
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetTopMenuItem handles GET /menu/top-items. The body is null when nothing
// has been ordered yet.
func (h *Handler) GetTopMenuItem(c *gin.Context) {
	item, err := h.Store.TopSellingMenuItem(c.Request.Context())
	if err != nil {
		h.fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, item)
}
