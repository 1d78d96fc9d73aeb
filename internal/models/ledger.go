package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LedgerEntry is an append-only financial record. Entries reference other
// entities by id and are never updated after creation.
type LedgerEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EntityType  string             `bson:"entityType" json:"entityType"`
	EntityID    primitive.ObjectID `bson:"entityId" json:"entityId"`
	Amount      float64            `bson:"amount" json:"amount"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// GeneralLedgerEntry is the double-entry style record used for accounting
// views. Append-only, same as LedgerEntry.
type GeneralLedgerEntry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Account     string             `bson:"account" json:"account"`
	Debit       float64            `bson:"debit" json:"debit"`
	Credit      float64            `bson:"credit" json:"credit"`
	Reference   string             `bson:"reference,omitempty" json:"reference,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	CreatedBy   primitive.ObjectID `bson:"createdBy" json:"createdBy"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}
