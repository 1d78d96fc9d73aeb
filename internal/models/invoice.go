package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Invoice bills an order. Totals follow the same caller-computed rule as
// purchases.
type Invoice struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderID     primitive.ObjectID `bson:"orderId" json:"orderId"`
	Subtotal    float64            `bson:"subtotal" json:"subtotal"`
	TaxAmount   float64            `bson:"taxAmount" json:"taxAmount"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	IssuedTo    string             `bson:"issuedTo" json:"issuedTo"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
