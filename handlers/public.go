package handlers

import (
	"net/http"

	"restaurant-orders-api/statemachine"

	"github.com/gin-gonic/gin"
)

// Health reports whether the store answers
func (h *Handler) Health(c *gin.Context) {
	if err := h.Store.Ping(c.Request.Context()); err != nil {
		h.Logger.WarnContext(c.Request.Context(), "health check failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "Restaurant Orders API",
	})
}

// GetStateMachineInfo returns the order lifecycle for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	var terminal []string
	for _, s := range statemachine.Statuses() {
		if statemachine.IsTerminal(s) {
			terminal = append(terminal, string(s))
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"statuses":        statemachine.Statuses(),
		"state_machine":   statemachine.GetAllTransitions(),
		"terminal_states": terminal,
		"description":     "Order Lifecycle State Machine",
	})
}
