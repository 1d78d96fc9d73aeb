package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextOrderStatus(t *testing.T) {
	assert.Equal(t, OrderStatusPickedUp, NextOrderStatus(OrderStatusPending))
	assert.Equal(t, OrderStatusDelivered, NextOrderStatus(OrderStatusPickedUp))

	// Delivered is terminal; unknown statuses go nowhere.
	assert.Equal(t, "", NextOrderStatus(OrderStatusDelivered))
	assert.Equal(t, "", NextOrderStatus("cancelled"))
}
