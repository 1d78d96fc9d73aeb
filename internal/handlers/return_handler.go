package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medsupply/erp-api/internal/middleware"
	"github.com/medsupply/erp-api/internal/models"
)

type returnItemRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	ItemName string `json:"itemName" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// CreateReturn records a return and assigns its return number. The number
// is generated exactly once, here; updates never regenerate it. Concurrent
// creations can land on the same sequence value, in which case the unique
// index rejects the second insert and the caller sees a conflict.
func (h *Handler) CreateReturn(c *gin.Context) {
	var req struct {
		ReturnType string              `json:"returnType" binding:"required,oneof=admin doctor"`
		Items      []returnItemRequest `json:"items" binding:"required,min=1,dive"`
		DoctorID   string              `json:"doctorId"`
		Reason     string              `json:"reason"`
		Status     string              `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.ReturnType == models.ReturnTypeDoctor && req.DoctorID == "" {
		respondError(c, http.StatusBadRequest, "Doctor returns require doctorId")
		return
	}

	status := req.Status
	switch status {
	case "":
		status = models.ReturnStatusPending
	case models.ReturnStatusPending, models.ReturnStatusAvailable:
	default:
		respondError(c, http.StatusBadRequest, "Returns start as pending or Available for reuse")
		return
	}

	createdBy, err := primitive.ObjectIDFromHex(c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid user id in token")
		return
	}

	items := make([]models.ReturnItem, 0, len(req.Items))
	for _, it := range req.Items {
		itemID, err := primitive.ObjectIDFromHex(it.ItemID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid item id: "+it.ItemID)
			return
		}
		items = append(items, models.ReturnItem{ItemID: itemID, ItemName: it.ItemName, Quantity: it.Quantity})
	}

	returnNumber, err := h.ReturnNumbers.Next(context.TODO(), req.ReturnType)
	if err != nil {
		respondUnhandled(c, err)
		return
	}

	now := time.Now()
	ret := models.Return{
		ID:           primitive.NewObjectID(),
		ReturnNumber: returnNumber,
		ReturnType:   req.ReturnType,
		Status:       status,
		Items:        items,
		CreatedBy:    createdBy,
		DoctorID:     req.DoctorID,
		Reason:       req.Reason,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := h.DB.Collection("returns").InsertOne(context.TODO(), ret); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			respondError(c, http.StatusConflict, "Return number collision, please retry")
			return
		}
		respondUnhandled(c, err)
		return
	}

	h.History.Record(context.TODO(), "return.created", "return", ret.ID, createdBy, ret.ReturnNumber)
	respondCreated(c, ret, "Return created")
}

// ListReturns lists returns with optional type and status filters.
func (h *Handler) ListReturns(c *gin.Context) {
	page, limit := parsePagination(c)

	filter := bson.M{}
	if returnType := c.Query("returnType"); returnType != "" {
		filter["returnType"] = returnType
	}
	if status := c.Query("status"); status != "" {
		filter["status"] = status
	}

	collection := h.DB.Collection("returns")
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

	returns := make([]models.Return, 0)
	if err := cursor.All(context.TODO(), &returns); err != nil {
		respondUnhandled(c, err)
		return
	}

	respondList(c, returns, len(returns), buildPagination(page, limit, count))
}

// GetReturn fetches one return by id.
func (h *Handler) GetReturn(c *gin.Context) {
	returnID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid return id")
		return
	}

	var ret models.Return
	err = h.DB.Collection("returns").FindOne(context.TODO(), bson.M{"_id": returnID}).Decode(&ret)
	if err != nil {
		respondError(c, http.StatusNotFound, "Return not found")
		return
	}
	respondOK(c, ret, "")
}

// UpdateReturn edits items and reason. The return number is deliberately
// not updatable: once assigned it never changes.
func (h *Handler) UpdateReturn(c *gin.Context) {
	returnID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid return id")
		return
	}

	var req struct {
		Items  []returnItemRequest `json:"items"`
		Reason *string             `json:"reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	set := bson.M{}
	if req.Items != nil {
		items := make([]models.ReturnItem, 0, len(req.Items))
		for _, it := range req.Items {
			itemID, err := primitive.ObjectIDFromHex(it.ItemID)
			if err != nil {
				respondError(c, http.StatusBadRequest, "Invalid item id: "+it.ItemID)
				return
			}
			items = append(items, models.ReturnItem{ItemID: itemID, ItemName: it.ItemName, Quantity: it.Quantity})
		}
		set["items"] = items
	}
	if req.Reason != nil {
		set["reason"] = *req.Reason
	}
	if len(set) == 0 {
		respondError(c, http.StatusBadRequest, "No update fields provided")
		return
	}
	set["updatedAt"] = time.Now()

	result, err := h.DB.Collection("returns").UpdateOne(context.TODO(), bson.M{"_id": returnID}, bson.M{"$set": set})
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	if result.MatchedCount == 0 {
		respondError(c, http.StatusNotFound, "Return not found")
		return
	}
	respondOK(c, nil, "Return updated")
}

// ApproveReturn moves a pending return to approved.
func (h *Handler) ApproveReturn(c *gin.Context) {
	h.transitionReturn(c, models.ReturnStatusPending, models.ReturnStatusApproved)
}

// RejectReturn moves a pending return to rejected.
func (h *Handler) RejectReturn(c *gin.Context) {
	h.transitionReturn(c, models.ReturnStatusPending, models.ReturnStatusRejected)
}

// MarkReturnUsed consumes a reusable return. Legal only from
// "Available for reuse"; "Used" is terminal, so a second call conflicts
// and leaves the record unchanged.
func (h *Handler) MarkReturnUsed(c *gin.Context) {
	h.transitionReturn(c, models.ReturnStatusAvailable, models.ReturnStatusUsed)
}

// transitionReturn applies a single-step status transition, filtering on
// the expected source status so concurrent calls cannot double-apply.
func (h *Handler) transitionReturn(c *gin.Context, from, to string) {
	returnID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid return id")
		return
	}

	collection := h.DB.Collection("returns")
	result, err := collection.UpdateOne(context.TODO(),
		bson.M{"_id": returnID, "status": from},
		bson.M{"$set": bson.M{"status": to, "updatedAt": time.Now()}})
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	if result.ModifiedCount == 0 {
		var ret models.Return
		if err := collection.FindOne(context.TODO(), bson.M{"_id": returnID}).Decode(&ret); err != nil {
			respondError(c, http.StatusNotFound, "Return not found")
			return
		}
		respondError(c, http.StatusConflict, "Return is "+ret.Status+", cannot mark as "+to)
		return
	}

	actorID, _ := primitive.ObjectIDFromHex(c.GetString(middleware.ContextUserID))
	h.History.Record(context.TODO(), "return.status."+to, "return", returnID, actorID, "")
	respondOK(c, gin.H{"status": to}, "Return updated")
}
