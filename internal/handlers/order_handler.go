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
	"github.com/medsupply/erp-api/internal/roles"
)

type orderItemRequest struct {
	ItemID   string `json:"itemId" binding:"required"`
	ItemName string `json:"itemName" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// CreateOrder accepts an order from any authenticated role. Doctor-type
// orders carry doctor attribution; creating an order does not touch
// inventory quantities.
func (h *Handler) CreateOrder(c *gin.Context) {
	var req struct {
		OrderType    string             `json:"orderType" binding:"required,oneof=admin doctor"`
		Items        []orderItemRequest `json:"items" binding:"required,min=1,dive"`
		DoctorID     string             `json:"doctorId"`
		DoctorName   string             `json:"doctorName"`
		HospitalName string             `json:"hospitalName"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.OrderType == models.OrderTypeDoctor && (req.DoctorID == "" || req.DoctorName == "" || req.HospitalName == "") {
		respondError(c, http.StatusBadRequest, "Doctor orders require doctorId, doctorName and hospitalName")
		return
	}

	createdBy, err := primitive.ObjectIDFromHex(c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid user id in token")
		return
	}

	items := make([]models.OrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		itemID, err := primitive.ObjectIDFromHex(it.ItemID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid item id: "+it.ItemID)
			return
		}
		items = append(items, models.OrderItem{ItemID: itemID, ItemName: it.ItemName, Quantity: it.Quantity})
	}

	now := time.Now()
	order := models.Order{
		ID:           primitive.NewObjectID(),
		OrderType:    req.OrderType,
		Items:        items,
		Status:       models.OrderStatusPending,
		CreatedBy:    createdBy,
		DoctorID:     req.DoctorID,
		DoctorName:   req.DoctorName,
		HospitalName: req.HospitalName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := h.DB.Collection("orders").InsertOne(context.TODO(), order); err != nil {
		respondUnhandled(c, err)
		return
	}

	h.History.Record(context.TODO(), "order.created", "order", order.ID, createdBy, "")
	respondCreated(c, order, "Order created")
}

// orderListFilter scopes the order list by role: doctors and hospitals see
// only their own orders, deliverers see undelivered work unless they ask for
// a specific status, everyone else sees all. Owner reads are never narrowed.
func orderListFilter(callerRole roles.Role, callerID primitive.ObjectID, status, orderType string) bson.M {
	filter := bson.M{}
	switch callerRole {
	case roles.Doctor, roles.Hospital:
		filter["createdBy"] = callerID
	case roles.Deliverer:
		if status == "" {
			filter["status"] = bson.M{"$ne": models.OrderStatusDelivered}
		}
	}
	if status != "" {
		filter["status"] = status
	}
	if orderType != "" {
		filter["orderType"] = orderType
	}
	return filter
}

// ListOrders lists orders under the role-based scope above.
func (h *Handler) ListOrders(c *gin.Context) {
	page, limit := parsePagination(c)

	callerRole, _ := roles.Parse(c.GetString(middleware.ContextUserRole))
	callerID := primitive.NilObjectID
	if callerRole == roles.Doctor || callerRole == roles.Hospital {
		id, err := primitive.ObjectIDFromHex(c.GetString(middleware.ContextUserID))
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Invalid user id in token")
			return
		}
		callerID = id
	}
	filter := orderListFilter(callerRole, callerID, c.Query("status"), c.Query("orderType"))

	collection := h.DB.Collection("orders")
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

	orders := make([]models.Order, 0)
	if err := cursor.All(context.TODO(), &orders); err != nil {
		respondUnhandled(c, err)
		return
	}

	respondList(c, orders, len(orders), buildPagination(page, limit, count))
}

// GetOrder fetches one order by id.
func (h *Handler) GetOrder(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	var order models.Order
	err = h.DB.Collection("orders").FindOne(context.TODO(), bson.M{"_id": orderID}).Decode(&order)
	if err != nil {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}
	respondOK(c, order, "")
}

// UpdateOrderStatus advances an order along pending -> picked-up ->
// delivered. The route is gated to deliverers; any skip or repeat of a
// step conflicts and leaves the order unchanged.
func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	var order models.Order
	collection := h.DB.Collection("orders")
	if err := collection.FindOne(context.TODO(), bson.M{"_id": orderID}).Decode(&order); err != nil {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}

	if models.NextOrderStatus(order.Status) != req.Status {
		respondError(c, http.StatusConflict, "Illegal status transition from "+order.Status+" to "+req.Status)
		return
	}

	// Filter on the current status too, so a concurrent transition loses
	// cleanly instead of double-applying.
	result, err := collection.UpdateOne(context.TODO(),
		bson.M{"_id": orderID, "status": order.Status},
		bson.M{"$set": bson.M{"status": req.Status, "updatedAt": time.Now()}})
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	if result.ModifiedCount == 0 {
		respondError(c, http.StatusConflict, "Order status changed concurrently")
		return
	}

	actorID, _ := primitive.ObjectIDFromHex(c.GetString(middleware.ContextUserID))
	h.History.Record(context.TODO(), "order.status."+req.Status, "order", orderID, actorID, "")
	respondOK(c, gin.H{"status": req.Status}, "Order status updated")
}
