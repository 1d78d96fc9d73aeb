package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestIsConsideredActiveTriState(t *testing.T) {
	yes := true
	no := false

	// Absent, null and true are all active; only an explicit false is not.
	assert.True(t, (&InventoryItem{ItemName: "gauze"}).IsConsideredActive())
	assert.True(t, (&InventoryItem{ItemName: "gauze", IsActive: &yes}).IsConsideredActive())
	assert.False(t, (&InventoryItem{ItemName: "gauze", IsActive: &no}).IsConsideredActive())
}

func TestActiveFilterExcludesOnlyExplicitFalse(t *testing.T) {
	filter := ActiveFilter()
	assert.Equal(t, bson.M{"isActive": bson.M{"$ne": false}}, filter)
}

func TestAbsentFieldRoundTripsAsNil(t *testing.T) {
	// A legacy document without the isActive field must decode to nil,
	// which the predicate treats as active.
	raw, err := bson.Marshal(bson.M{"itemName": "splint", "quantity": 3})
	assert.NoError(t, err)

	var item InventoryItem
	assert.NoError(t, bson.Unmarshal(raw, &item))
	assert.Nil(t, item.IsActive)
	assert.True(t, item.IsConsideredActive())
}
