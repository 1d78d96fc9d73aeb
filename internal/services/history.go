package services

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medsupply/erp-api/internal/models"
)

// HistoryService appends activity records as entities are mutated. Failures
// are logged, never propagated: a missing history row must not fail the
// mutation it describes.
type HistoryService struct {
	db *mongo.Database
}

func NewHistoryService(db *mongo.Database) *HistoryService {
	return &HistoryService{db: db}
}

// Record appends one history document.
func (s *HistoryService) Record(ctx context.Context, action, entityType string, entityID, actorID primitive.ObjectID, detail string) {
	entry := models.History{
		ID:         primitive.NewObjectID(),
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
		ActorID:    actorID,
		Detail:     detail,
		Enabled:    true,
		CreatedAt:  time.Now(),
	}
	if _, err := s.db.Collection("history").InsertOne(ctx, entry); err != nil {
		log.Printf("history: failed to record %s on %s %s: %v", action, entityType, entityID.Hex(), err)
	}
}
