package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Order statuses form the deliverer-driven lifecycle
// pending -> picked-up -> delivered.
const (
	OrderStatusPending   = "pending"
	OrderStatusPickedUp  = "picked-up"
	OrderStatusDelivered = "delivered"
)

// Order types: who the order is placed on behalf of.
const (
	OrderTypeAdmin  = "admin"
	OrderTypeDoctor = "doctor"
)

type OrderItem struct {
	ItemID   primitive.ObjectID `bson:"itemId" json:"itemId"`
	ItemName string             `bson:"itemName" json:"itemName"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrderType string             `bson:"orderType" json:"orderType"`
	Items     []OrderItem        `bson:"items" json:"items"`
	Status    string             `bson:"status" json:"status"`
	CreatedBy primitive.ObjectID `bson:"createdBy" json:"createdBy"`

	// Doctor attribution, required when OrderType == "doctor".
	DoctorID     string `bson:"doctorId,omitempty" json:"doctorId,omitempty"`
	DoctorName   string `bson:"doctorName,omitempty" json:"doctorName,omitempty"`
	HospitalName string `bson:"hospitalName,omitempty" json:"hospitalName,omitempty"`

	PickupPhoto string    `bson:"pickupPhoto,omitempty" json:"pickupPhoto,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// NextOrderStatus returns the legal successor of a status, or "" when the
// status is terminal or unknown.
func NextOrderStatus(status string) string {
	switch status {
	case OrderStatusPending:
		return OrderStatusPickedUp
	case OrderStatusPickedUp:
		return OrderStatusDelivered
	default:
		return ""
	}
}
