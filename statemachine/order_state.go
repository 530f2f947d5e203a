package statemachine

import (
	"errors"
	"fmt"
	"strings"

	"restaurant-orders-api/models"
)

var (
	// ErrUnknownStatus is returned by ParseStatus for strings outside the lifecycle
	ErrUnknownStatus = errors.New("unknown order status")
	// ErrInvalidTransition is returned by CanTransition for moves the lifecycle forbids
	ErrInvalidTransition = errors.New("invalid status transition")
)

// Transition defines a valid state change
type Transition struct {
	From models.OrderStatus `json:"from"`
	To   models.OrderStatus `json:"to"`
}

var statuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusPreparing,
	models.StatusCompleted,
	models.StatusCancelled,
}

// validTransitions is the authoritative state machine definition
var validTransitions = []Transition{
	{From: models.StatusPending, To: models.StatusPreparing},
	{From: models.StatusPending, To: models.StatusCompleted},
	{From: models.StatusPending, To: models.StatusCancelled},
	{From: models.StatusPreparing, To: models.StatusCompleted},
	{From: models.StatusPreparing, To: models.StatusCancelled},
}

var transitionMap = func() map[Transition]bool {
	m := make(map[Transition]bool, len(validTransitions))
	for _, t := range validTransitions {
		m[t] = true
	}
	return m
}()

// ParseStatus maps a raw string onto a known status. Matching is exact.
func ParseStatus(raw string) (models.OrderStatus, error) {
	for _, s := range statuses {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	nexts := []models.OrderStatus{}
	for _, t := range validTransitions {
		if t.From == status {
			nexts = append(nexts, t.To)
		}
	}
	return nexts
}

// IsTerminal reports whether no transition leaves status
func IsTerminal(status models.OrderStatus) bool {
	return len(ValidTransitionsFrom(status)) == 0
}

// CanTransition checks whether an order may move from one state to another
func CanTransition(from, to models.OrderStatus) error {
	if transitionMap[Transition{From: from, To: to}] {
		return nil
	}
	return fmt.Errorf("%w: %s -> %s is not allowed, valid transitions from %s are: %s",
		ErrInvalidTransition, from, to, from, describeValidFrom(from))
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	names := make([]string, len(nexts))
	for i, s := range nexts {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Statuses returns every known status in lifecycle order
func Statuses() []models.OrderStatus {
	return statuses
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
