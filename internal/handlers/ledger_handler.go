package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medsupply/erp-api/internal/middleware"
	"github.com/medsupply/erp-api/internal/models"
)

// Ledger, general-ledger and history records are append-only: create and
// list are the only operations, except for history's enabled/removed soft
// flags.

// CreateLedgerEntry appends a financial record referencing another entity.
func (h *Handler) CreateLedgerEntry(c *gin.Context) {
	var req struct {
		EntityType  string  `json:"entityType" binding:"required"`
		EntityID    string  `json:"entityId" binding:"required"`
		Amount      float64 `json:"amount" binding:"required"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	entityID, err := primitive.ObjectIDFromHex(req.EntityID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid entity id")
		return
	}
	createdBy, err := primitive.ObjectIDFromHex(c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid user id in token")
		return
	}

	entry := models.LedgerEntry{
		ID:          primitive.NewObjectID(),
		EntityType:  req.EntityType,
		EntityID:    entityID,
		Amount:      req.Amount,
		Description: req.Description,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
	}
	if _, err := h.DB.Collection("ledger").InsertOne(context.TODO(), entry); err != nil {
		respondUnhandled(c, err)
		return
	}
	respondCreated(c, entry, "Ledger entry created")
}

// ListLedgerEntries lists ledger records newest first.
func (h *Handler) ListLedgerEntries(c *gin.Context) {
	page, limit := parsePagination(c)

	collection := h.DB.Collection("ledger")
	count, err := collection.CountDocuments(context.TODO(), bson.M{})
	if err != nil {
		respondUnhandled(c, err)
		return
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := collection.Find(context.TODO(), bson.M{}, findOptions)
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	defer cursor.Close(context.TODO())

	entries := make([]models.LedgerEntry, 0)
	if err := cursor.All(context.TODO(), &entries); err != nil {
		respondUnhandled(c, err)
		return
	}

	respondList(c, entries, len(entries), buildPagination(page, limit, count))
}

// CreateGeneralLedgerEntry appends a double-entry style accounting record.
func (h *Handler) CreateGeneralLedgerEntry(c *gin.Context) {
	var req struct {
		Account     string  `json:"account" binding:"required"`
		Debit       float64 `json:"debit"`
		Credit      float64 `json:"credit"`
		Reference   string  `json:"reference"`
		Description string  `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	createdBy, err := primitive.ObjectIDFromHex(c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid user id in token")
		return
	}

	entry := models.GeneralLedgerEntry{
		ID:          primitive.NewObjectID(),
		Account:     req.Account,
		Debit:       req.Debit,
		Credit:      req.Credit,
		Reference:   req.Reference,
		Description: req.Description,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
	}
	if _, err := h.DB.Collection("generalLedger").InsertOne(context.TODO(), entry); err != nil {
		respondUnhandled(c, err)
		return
	}
	respondCreated(c, entry, "General ledger entry created")
}

// ListGeneralLedgerEntries lists accounting records newest first.
func (h *Handler) ListGeneralLedgerEntries(c *gin.Context) {
	page, limit := parsePagination(c)

	collection := h.DB.Collection("generalLedger")
	count, err := collection.CountDocuments(context.TODO(), bson.M{})
	if err != nil {
		respondUnhandled(c, err)
		return
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := collection.Find(context.TODO(), bson.M{}, findOptions)
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	defer cursor.Close(context.TODO())

	entries := make([]models.GeneralLedgerEntry, 0)
	if err := cursor.All(context.TODO(), &entries); err != nil {
		respondUnhandled(c, err)
		return
	}

	respondList(c, entries, len(entries), buildPagination(page, limit, count))
}

// ListHistory lists activity records, hiding removed ones by default.
func (h *Handler) ListHistory(c *gin.Context) {
	page, limit := parsePagination(c)

	filter := bson.M{"removed": bson.M{"$ne": true}}
	if entityType := c.Query("entityType"); entityType != "" {
		filter["entityType"] = entityType
	}

	collection := h.DB.Collection("history")
	count, err := collection.CountDocuments(context.TODO(), filter)
	if err != nil {
		respondUnhandled(c, err)
		return
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := collection.Find(context.TODO(), filter, findOptions)
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	defer cursor.Close(context.TODO())

	entries := make([]models.History, 0)
	if err := cursor.All(context.TODO(), &entries); err != nil {
		respondUnhandled(c, err)
		return
	}

	respondList(c, entries, len(entries), buildPagination(page, limit, count))
}

// SetHistoryEnabled toggles the enabled soft flag, the only mutation a
// history record supports besides removal.
func (h *Handler) SetHistoryEnabled(enabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.setHistoryFlag(c, "enabled", enabled)
	}
}

// RemoveHistory sets the removed soft flag; the record stays stored.
func (h *Handler) RemoveHistory(c *gin.Context) {
	h.setHistoryFlag(c, "removed", true)
}

func (h *Handler) setHistoryFlag(c *gin.Context, field string, value bool) {
	historyID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid history id")
		return
	}

	result, err := h.DB.Collection("history").UpdateOne(context.TODO(), bson.M{"_id": historyID}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	if result.MatchedCount == 0 {
		respondError(c, http.StatusNotFound, "History record not found")
		return
	}
	respondOK(c, nil, "History record updated")
}
