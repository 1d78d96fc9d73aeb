package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medsupply/erp-api/internal/models"
)

// ReturnNumberService assigns the sequential return number a Return gets at
// its first save.
type ReturnNumberService struct {
	db *mongo.Database
}

func NewReturnNumberService(db *mongo.Database) *ReturnNumberService {
	return &ReturnNumberService{db: db}
}

// FormatReturnNumber builds "<prefix><seq zero-padded to 6>": DR for
// doctor-originated returns, AR otherwise.
func FormatReturnNumber(returnType string, seq int64) string {
	prefix := "AR"
	if returnType == models.ReturnTypeDoctor {
		prefix = "DR"
	}
	return fmt.Sprintf("%s%06d", prefix, seq)
}

// Next counts existing returns and formats the next number. Two concurrent
// callers can observe the same count; the unique index on returnNumber is
// what catches the resulting duplicate at insert time. Callers must not
// retry past that failure.
func (s *ReturnNumberService) Next(ctx context.Context, returnType string) (string, error) {
	count, err := s.db.Collection("returns").CountDocuments(ctx, bson.M{})
	if err != nil {
		return "", err
	}
	return FormatReturnNumber(returnType, count+1), nil
}
