package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medsupply/erp-api/internal/models"
)

// ListSuppliers lists non-deleted supplier master records.
func (h *Handler) ListSuppliers(c *gin.Context) {
	page, limit := parsePagination(c)

	filter := bson.M{"isDeleted": bson.M{"$ne": true}}
	if name := c.Query("name"); name != "" {
		filter["name"] = name
	}

	collection := h.DB.Collection("suppliers")
	count, err := collection.CountDocuments(context.TODO(), filter)
	if err != nil {
		respondUnhandled(c, err)
		return
	}

	findOptions := options.Find().
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := collection.Find(context.TODO(), filter, findOptions)
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	defer cursor.Close(context.TODO())

	suppliers := make([]models.Supplier, 0)
	if err := cursor.All(context.TODO(), &suppliers); err != nil {
		respondUnhandled(c, err)
		return
	}

	respondList(c, suppliers, len(suppliers), buildPagination(page, limit, count))
}

func (h *Handler) CreateSupplier(c *gin.Context) {
	var req struct {
		Name          string `json:"name" binding:"required"`
		ContactPerson string `json:"contactPerson"`
		Email         string `json:"email"`
		Phone         string `json:"phone"`
		Address       string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	now := time.Now()
	supplier := models.Supplier{
		ID:            primitive.NewObjectID(),
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := h.DB.Collection("suppliers").InsertOne(context.TODO(), supplier); err != nil {
		respondUnhandled(c, err)
		return
	}
	respondCreated(c, supplier, "Supplier created")
}

func (h *Handler) UpdateSupplier(c *gin.Context) {
	supplierID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid supplier id")
		return
	}

	var req struct {
		Name          string `json:"name"`
		ContactPerson string `json:"contactPerson"`
		Email         string `json:"email"`
		Phone         string `json:"phone"`
		Address       string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.ContactPerson != "" {
		set["contactPerson"] = req.ContactPerson
	}
	if req.Email != "" {
		set["email"] = req.Email
	}
	if req.Phone != "" {
		set["phone"] = req.Phone
	}
	if req.Address != "" {
		set["address"] = req.Address
	}
	if len(set) == 0 {
		respondError(c, http.StatusBadRequest, "No update fields provided")
		return
	}
	set["updatedAt"] = time.Now()

	result, err := h.DB.Collection("suppliers").UpdateOne(context.TODO(), bson.M{"_id": supplierID, "isDeleted": bson.M{"$ne": true}}, bson.M{"$set": set})
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	if result.MatchedCount == 0 {
		respondError(c, http.StatusNotFound, "Supplier not found")
		return
	}
	respondOK(c, nil, "Supplier updated")
}

// DeleteSupplier soft-deletes the record; it drops out of default lists.
func (h *Handler) DeleteSupplier(c *gin.Context) {
	supplierID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid supplier id")
		return
	}

	result, err := h.DB.Collection("suppliers").UpdateOne(context.TODO(), bson.M{"_id": supplierID}, bson.M{"$set": bson.M{"isDeleted": true, "updatedAt": time.Now()}})
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	if result.MatchedCount == 0 {
		respondError(c, http.StatusNotFound, "Supplier not found")
		return
	}
	respondOK(c, nil, "Supplier deleted")
}
