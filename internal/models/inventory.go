package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InventoryItem is a stock record. IsActive is deliberately tri-state:
// true, absent and null are all treated as active; only an explicit false
// deactivates an item. Legacy records predate the field, so absence must
// keep meaning active.
type InventoryItem struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ItemName string             `bson:"itemName" json:"itemName"`
	Quantity int                `bson:"quantity" json:"quantity"`
	IsActive *bool              `bson:"isActive,omitempty" json:"isActive,omitempty"`
}

// IsConsideredActive applies the tri-state rule to a single item.
func (i *InventoryItem) IsConsideredActive() bool {
	return i.IsActive == nil || *i.IsActive
}

// ActiveFilter is the query form of the tri-state rule: everything whose
// isActive is not literally false, which covers true, null and absent.
func ActiveFilter() bson.M {
	return bson.M{"isActive": bson.M{"$ne": false}}
}
