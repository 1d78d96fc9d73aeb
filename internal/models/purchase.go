package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PurchaseItem struct {
	ItemName  string  `bson:"itemName" json:"itemName"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	UnitPrice float64 `bson:"unitPrice" json:"unitPrice"`
}

// Purchase is a detail record against a supplier. Subtotal, TaxAmount and
// TotalAmount are stored exactly as the caller computed them; the server
// never recomputes or cross-checks them.
type Purchase struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SupplierID  primitive.ObjectID `bson:"supplierId" json:"supplierId"`
	Items       []PurchaseItem     `bson:"items" json:"items"`
	Subtotal    float64            `bson:"subtotal" json:"subtotal"`
	TaxAmount   float64            `bson:"taxAmount" json:"taxAmount"`
	TotalAmount float64            `bson:"totalAmount" json:"totalAmount"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	IsDeleted   bool               `bson:"isDeleted" json:"isDeleted"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
