package statemachine

import (
	"testing"

	"restaurant-orders-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	got, err := ParseStatus("Completed")
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, got)

	_, err = ParseStatus("completed")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name    string
		from    models.OrderStatus
		to      models.OrderStatus
		wantErr bool
	}{
		{name: "pending to preparing", from: models.StatusPending, to: models.StatusPreparing},
		{name: "pending to completed", from: models.StatusPending, to: models.StatusCompleted},
		{name: "preparing to cancelled", from: models.StatusPreparing, to: models.StatusCancelled},
		{name: "same status", from: models.StatusPending, to: models.StatusPending, wantErr: true},
		{name: "out of completed", from: models.StatusCompleted, to: models.StatusPending, wantErr: true},
		{name: "out of cancelled", from: models.StatusCancelled, to: models.StatusPreparing, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := CanTransition(tc.from, tc.to)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTerminalStates(t *testing.T) {
	assert.True(t, IsTerminal(models.StatusCompleted))
	assert.True(t, IsTerminal(models.StatusCancelled))
	assert.False(t, IsTerminal(models.StatusPending))
	assert.Empty(t, ValidTransitionsFrom(models.StatusCompleted))
	assert.Equal(t,
		[]models.OrderStatus{models.StatusPreparing, models.StatusCompleted, models.StatusCancelled},
		ValidTransitionsFrom(models.StatusPending))
}

func TestCanTransitionMessageListsNextStates(t *testing.T) {
	err := CanTransition(models.StatusCompleted, models.StatusPending)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none (terminal state)")
}
