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

// CreatePurchase stores a purchase with the caller-computed totals. The
// server does not recompute subtotal, tax or total from the items.
func (h *Handler) CreatePurchase(c *gin.Context) {
	var req struct {
		SupplierID  string                `json:"supplierId" binding:"required"`
		Items       []models.PurchaseItem `json:"items" binding:"required,min=1"`
		Subtotal    float64               `json:"subtotal"`
		TaxAmount   float64               `json:"taxAmount"`
		TotalAmount float64               `json:"totalAmount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	supplierID, err := primitive.ObjectIDFromHex(req.SupplierID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid supplier id")
		return
	}
	err = h.DB.Collection("suppliers").FindOne(context.TODO(), bson.M{"_id": supplierID, "isDeleted": bson.M{"$ne": true}}).Err()
	if err != nil {
		respondError(c, http.StatusNotFound, "Supplier not found")
		return
	}

	createdBy, err := primitive.ObjectIDFromHex(c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid user id in token")
		return
	}

	now := time.Now()
	purchase := models.Purchase{
		ID:          primitive.NewObjectID(),
		SupplierID:  supplierID,
		Items:       req.Items,
		Subtotal:    req.Subtotal,
		TaxAmount:   req.TaxAmount,
		TotalAmount: req.TotalAmount,
		CreatedBy:   createdBy,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if _, err := h.DB.Collection("purchases").InsertOne(context.TODO(), purchase); err != nil {
		respondUnhandled(c, err)
		return
	}
	respondCreated(c, purchase, "Purchase created")
}

// ListPurchases lists non-deleted purchases, optionally by supplier.
func (h *Handler) ListPurchases(c *gin.Context) {
	page, limit := parsePagination(c)

	filter := bson.M{"isDeleted": bson.M{"$ne": true}}
	if supplierID := c.Query("supplierId"); supplierID != "" {
		id, err := primitive.ObjectIDFromHex(supplierID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid supplier id")
			return
		}
		filter["supplierId"] = id
	}

	collection := h.DB.Collection("purchases")
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

	purchases := make([]models.Purchase, 0)
	if err := cursor.All(context.TODO(), &purchases); err != nil {
		respondUnhandled(c, err)
		return
	}

	respondList(c, purchases, len(purchases), buildPagination(page, limit, count))
}

// UpdatePurchase replaces the editable fields, again storing totals as
// supplied.
func (h *Handler) UpdatePurchase(c *gin.Context) {
	purchaseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid purchase id")
		return
	}

	var req struct {
		Items       []models.PurchaseItem `json:"items"`
		Subtotal    *float64              `json:"subtotal"`
		TaxAmount   *float64              `json:"taxAmount"`
		TotalAmount *float64              `json:"totalAmount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	set := bson.M{}
	if req.Items != nil {
		set["items"] = req.Items
	}
	if req.Subtotal != nil {
		set["subtotal"] = *req.Subtotal
	}
	if req.TaxAmount != nil {
		set["taxAmount"] = *req.TaxAmount
	}
	if req.TotalAmount != nil {
		set["totalAmount"] = *req.TotalAmount
	}
	if len(set) == 0 {
		respondError(c, http.StatusBadRequest, "No update fields provided")
		return
	}
	set["updatedAt"] = time.Now()

	result, err := h.DB.Collection("purchases").UpdateOne(context.TODO(), bson.M{"_id": purchaseID, "isDeleted": bson.M{"$ne": true}}, bson.M{"$set": set})
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	if result.MatchedCount == 0 {
		respondError(c, http.StatusNotFound, "Purchase not found")
		return
	}
	respondOK(c, nil, "Purchase updated")
}

// DeletePurchase soft-deletes the record.
func (h *Handler) DeletePurchase(c *gin.Context) {
	purchaseID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid purchase id")
		return
	}

	result, err := h.DB.Collection("purchases").UpdateOne(context.TODO(), bson.M{"_id": purchaseID}, bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now()}})
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	if result.MatchedCount == 0 {
		respondError(c, http.StatusNotFound, "Purchase not found")
		return
	}
	respondOK(c, nil, "Purchase deleted")
}
