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

// CreateInvoice bills an existing order. Totals are stored as the caller
// computed them.
func (h *Handler) CreateInvoice(c *gin.Context) {
	var req struct {
		OrderID     string  `json:"orderId" binding:"required"`
		Subtotal    float64 `json:"subtotal"`
		TaxAmount   float64 `json:"taxAmount"`
		TotalAmount float64 `json:"totalAmount"`
		IssuedTo    string  `json:"issuedTo" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	orderID, err := primitive.ObjectIDFromHex(req.OrderID)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid order id")
		return
	}
	if err := h.DB.Collection("orders").FindOne(context.TODO(), bson.M{"_id": orderID}).Err(); err != nil {
		respondError(c, http.StatusNotFound, "Order not found")
		return
	}

	createdBy, err := primitive.ObjectIDFromHex(c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid user id in token")
		return
	}

	invoice := models.Invoice{
		ID:          primitive.NewObjectID(),
		OrderID:     orderID,
		Subtotal:    req.Subtotal,
		TaxAmount:   req.TaxAmount,
		TotalAmount: req.TotalAmount,
		IssuedTo:    req.IssuedTo,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now(),
	}
	if _, err := h.DB.Collection("invoices").InsertOne(context.TODO(), invoice); err != nil {
		respondUnhandled(c, err)
		return
	}

	h.History.Record(context.TODO(), "invoice.created", "invoice", invoice.ID, createdBy, "")
	respondCreated(c, invoice, "Invoice created")
}

// ListInvoices lists invoices, optionally by order.
func (h *Handler) ListInvoices(c *gin.Context) {
	page, limit := parsePagination(c)

	filter := bson.M{}
	if orderID := c.Query("orderId"); orderID != "" {
		id, err := primitive.ObjectIDFromHex(orderID)
		if err != nil {
			respondError(c, http.StatusBadRequest, "Invalid order id")
			return
		}
		filter["orderId"] = id
	}

	collection := h.DB.Collection("invoices")
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

	invoices := make([]models.Invoice, 0)
	if err := cursor.All(context.TODO(), &invoices); err != nil {
		respondUnhandled(c, err)
		return
	}

	respondList(c, invoices, len(invoices), buildPagination(page, limit, count))
}

// GetInvoice fetches one invoice by id.
func (h *Handler) GetInvoice(c *gin.Context) {
	invoiceID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid invoice id")
		return
	}

	var invoice models.Invoice
	err = h.DB.Collection("invoices").FindOne(context.TODO(), bson.M{"_id": invoiceID}).Decode(&invoice)
	if err != nil {
		respondError(c, http.StatusNotFound, "Invoice not found")
		return
	}
	respondOK(c, invoice, "")
}
