package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// History is an append-only activity record. The enabled/removed soft flags
// are the only fields ever mutated after creation.
type History struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Action     string             `bson:"action" json:"action"`
	EntityType string             `bson:"entityType" json:"entityType"`
	EntityID   primitive.ObjectID `bson:"entityId" json:"entityId"`
	ActorID    primitive.ObjectID `bson:"actorId,omitempty" json:"actorId,omitempty"`
	Detail     string             `bson:"detail,omitempty" json:"detail,omitempty"`
	Enabled    bool               `bson:"enabled" json:"enabled"`
	Removed    bool               `bson:"removed" json:"removed"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
