package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Return types mirror order types: who originated the return.
const (
	ReturnTypeAdmin  = "admin"
	ReturnTypeDoctor = "doctor"
)

// Return statuses. Pending/approved/rejected is the approval lifecycle;
// available-for-reuse/used is the restock lifecycle. A return sits in one
// lifecycle at a time.
const (
	ReturnStatusPending   = "pending"
	ReturnStatusApproved  = "approved"
	ReturnStatusRejected  = "rejected"
	ReturnStatusAvailable = "Available for reuse"
	ReturnStatusUsed      = "Used"
)

type ReturnItem struct {
	ItemID   primitive.ObjectID `bson:"itemId" json:"itemId"`
	ItemName string             `bson:"itemName" json:"itemName"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// Return records inventory items sent back. ReturnNumber is assigned once
// at first save and never regenerated; a unique index on it backs that up.
type Return struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReturnNumber string             `bson:"returnNumber" json:"returnNumber"`
	ReturnType   string             `bson:"returnType" json:"returnType"`
	Status       string             `bson:"status" json:"status"`
	Items        []ReturnItem       `bson:"items" json:"items"`
	CreatedBy    primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	DoctorID     string             `bson:"doctorId,omitempty" json:"doctorId,omitempty"`
	Reason       string             `bson:"reason,omitempty" json:"reason,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
