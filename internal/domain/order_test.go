package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, valid := range []string{"Pending", "Preparing", "Completed"} {
		status, err := ParseStatus(valid)
		require.NoError(t, err)
		assert.Equal(t, Status(valid), status)
	}

	for _, invalid := range []string{"", "pending", "PENDING", "Cancelled", "Done"} {
		_, err := ParseStatus(invalid)
		assert.ErrorIs(t, err, ErrInvalidStatus, "input %q", invalid)
	}
}

func TestStatusNext(t *testing.T) {
	next, ok := StatusPending.Next()
	require.True(t, ok)
	assert.Equal(t, StatusPreparing, next)

	next, ok = StatusPreparing.Next()
	require.True(t, ok)
	assert.Equal(t, StatusCompleted, next)

	_, ok = StatusCompleted.Next()
	assert.False(t, ok)
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusPreparing.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
}

func TestNewOrder(t *testing.T) {
	order, err := NewOrder(1, []OrderItem{{MenuItemID: 2, Quantity: 3}})
	require.NoError(t, err)
	assert.Equal(t, StatusPending, order.Status)
	assert.Equal(t, 1, order.CustomerID)
	assert.Len(t, order.Items, 1)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestNewOrderWithoutItems(t *testing.T) {
	order, err := NewOrder(1, nil)
	require.NoError(t, err)
	assert.Empty(t, order.Items)
}

func TestNewOrderValidation(t *testing.T) {
	_, err := NewOrder(0, nil)
	assert.Error(t, err)

	_, err = NewOrder(1, []OrderItem{{MenuItemID: 0, Quantity: 1}})
	assert.Error(t, err)

	_, err = NewOrder(1, []OrderItem{{MenuItemID: 1, Quantity: 0}})
	assert.Error(t, err)
}

func TestCanTransitionTo(t *testing.T) {
	order := &Order{Status: StatusPending}
	assert.True(t, order.CanTransitionTo(StatusPreparing))
	assert.False(t, order.CanTransitionTo(StatusCompleted))
	assert.False(t, order.CanTransitionTo(StatusPending))

	order.Status = StatusPreparing
	assert.True(t, order.CanTransitionTo(StatusCompleted))
	assert.False(t, order.CanTransitionTo(StatusPending))

	order.Status = StatusCompleted
	assert.False(t, order.CanTransitionTo(StatusPending))
	assert.False(t, order.CanTransitionTo(StatusPreparing))
}
