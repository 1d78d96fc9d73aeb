package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medsupply/erp-api/internal/models"
)

// ListInventory lists stock items. ?active=true narrows to items considered
// active under the tri-state rule (true, null and absent all count).
func (h *Handler) ListInventory(c *gin.Context) {
	page, limit := parsePagination(c)

	filter := bson.M{}
	if c.Query("active") == "true" {
		filter = models.ActiveFilter()
	}
	if name := c.Query("itemName"); name != "" {
		filter["itemName"] = name
	}

	collection := h.DB.Collection("inventory")
	count, err := collection.CountDocuments(context.TODO(), filter)
	if err != nil {
		respondUnhandled(c, err)
		return
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "itemName", Value: 1}})
	cursor, err := collection.Find(context.TODO(), filter, findOptions)
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	defer cursor.Close(context.TODO())

	items := make([]models.InventoryItem, 0)
	if err := cursor.All(context.TODO(), &items); err != nil {
		respondUnhandled(c, err)
		return
	}

	respondList(c, items, len(items), buildPagination(page, limit, count))
}

// CreateInventoryItem adds a stock item. isActive is left unset unless the
// caller supplies it; absent means active.
func (h *Handler) CreateInventoryItem(c *gin.Context) {
	var req struct {
		ItemName string `json:"itemName" binding:"required"`
		Quantity int    `json:"quantity" binding:"min=0"`
		IsActive *bool  `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	item := models.InventoryItem{
		ID:       primitive.NewObjectID(),
		ItemName: req.ItemName,
		Quantity: req.Quantity,
		IsActive: req.IsActive,
	}
	if _, err := h.DB.Collection("inventory").InsertOne(context.TODO(), item); err != nil {
		respondUnhandled(c, err)
		return
	}
	respondCreated(c, item, "Item created")
}

// UpdateInventoryItem updates name, quantity or the active flag.
func (h *Handler) UpdateInventoryItem(c *gin.Context) {
	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid item id")
		return
	}

	var req struct {
		ItemName *string `json:"itemName"`
		Quantity *int    `json:"quantity"`
		IsActive *bool   `json:"isActive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	set := bson.M{}
	if req.ItemName != nil {
		set["itemName"] = *req.ItemName
	}
	if req.Quantity != nil {
		set["quantity"] = *req.Quantity
	}
	if req.IsActive != nil {
		set["isActive"] = *req.IsActive
	}
	if len(set) == 0 {
		respondError(c, http.StatusBadRequest, "No update fields provided")
		return
	}

	result, err := h.DB.Collection("inventory").UpdateOne(context.TODO(), bson.M{"_id": itemID}, bson.M{"$set": set})
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	if result.MatchedCount == 0 {
		respondError(c, http.StatusNotFound, "Item not found")
		return
	}
	respondOK(c, nil, "Item updated")
}

// DeleteInventoryItem deactivates an item by setting isActive false. Stock
// records are never removed.
func (h *Handler) DeleteInventoryItem(c *gin.Context) {
	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid item id")
		return
	}

	result, err := h.DB.Collection("inventory").UpdateOne(context.TODO(), bson.M{"_id": itemID}, bson.M{"$set": bson.M{"isActive": false}})
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	if result.MatchedCount == 0 {
		respondError(c, http.StatusNotFound, "Item not found")
		return
	}
	respondOK(c, nil, "Item deactivated")
}

// InventorySummary aggregates active items and units. Items with isActive
// absent or null count identically to isActive:true.
func (h *Handler) InventorySummary(c *gin.Context) {
	collection := h.DB.Collection("inventory")

	activeItems, err := collection.CountDocuments(context.TODO(), models.ActiveFilter())
	if err != nil {
		respondUnhandled(c, err)
		return
	}

	pipeline := []bson.M{
		{"$match": models.ActiveFilter()},
		{"$group": bson.M{"_id": nil, "totalUnits": bson.M{"$sum": "$quantity"}}},
	}
	cursor, err := collection.Aggregate(context.TODO(), pipeline)
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	defer cursor.Close(context.TODO())

	var totals []struct {
		TotalUnits int `bson:"totalUnits"`
	}
	if err := cursor.All(context.TODO(), &totals); err != nil {
		respondUnhandled(c, err)
		return
	}
	totalUnits := 0
	if len(totals) > 0 {
		totalUnits = totals[0].TotalUnits
	}

	respondOK(c, gin.H{"activeItems": activeItems, "totalUnits": totalUnits}, "")
}
