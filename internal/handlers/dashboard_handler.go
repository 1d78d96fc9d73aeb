package handlers

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medsupply/erp-api/internal/middleware"
	"github.com/medsupply/erp-api/internal/models"
	"github.com/medsupply/erp-api/internal/roles"
)

// ViewForRole is the pure role -> dashboard view mapping. Unknown or guest
// roles fall back to the default view. The client route guard mirrors this
// selection; this is the authoritative copy.
func ViewForRole(role roles.Role) string {
	switch role {
	case roles.Owner, roles.Admin:
		return "admin"
	case roles.Doctor:
		return "doctor"
	case roles.Hospital:
		return "hospital"
	case roles.Deliverer:
		return "deliverer"
	case roles.Distributor:
		return "distributor"
	case roles.Accountant:
		return "accountant"
	default:
		return "guest"
	}
}

// countOrZero counts documents for the stats payload. A failed count is
// logged and rendered as zero so the rest of the dashboard still loads.
func (h *Handler) countOrZero(ctx context.Context, collection string, filter bson.M) int64 {
	count, err := h.DB.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		log.Printf("dashboard: counting %s failed: %v", collection, err)
		return 0
	}
	return count
}

// Dashboard returns the caller's view selection plus a small stats payload
// appropriate to the role.
func (h *Handler) Dashboard(c *gin.Context) {
	role, _ := roles.Parse(c.GetString(middleware.ContextUserRole))
	view := ViewForRole(role)

	stats := gin.H{}
	ctx := context.TODO()
	switch view {
	case "admin":
		stats["users"] = h.countOrZero(ctx, "users", bson.M{"isDeleted": bson.M{"$ne": true}})
		stats["pendingOrders"] = h.countOrZero(ctx, "orders", bson.M{"status": models.OrderStatusPending})
		stats["pendingReturns"] = h.countOrZero(ctx, "returns", bson.M{"status": models.ReturnStatusPending})
	case "doctor", "hospital":
		if userID, err := primitive.ObjectIDFromHex(c.GetString(middleware.ContextUserID)); err == nil {
			stats["myOrders"] = h.countOrZero(ctx, "orders", bson.M{"createdBy": userID})
		}
	case "deliverer":
		stats["pendingOrders"] = h.countOrZero(ctx, "orders", bson.M{"status": models.OrderStatusPending})
		stats["pickedUpOrders"] = h.countOrZero(ctx, "orders", bson.M{"status": models.OrderStatusPickedUp})
	case "distributor":
		stats["activeItems"] = h.countOrZero(ctx, "inventory", models.ActiveFilter())
	case "accountant":
		stats["ledgerEntries"] = h.countOrZero(ctx, "ledger", bson.M{})
		stats["invoices"] = h.countOrZero(ctx, "invoices", bson.M{})
	}

	respondOK(c, gin.H{"view": view, "stats": stats}, "")
}
