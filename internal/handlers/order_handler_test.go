package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/medsupply/erp-api/internal/models"
	"github.com/medsupply/erp-api/internal/roles"
)

func TestOrderListFilterDoctorSeesOwnOrders(t *testing.T) {
	callerID := primitive.NewObjectID()

	filter := orderListFilter(roles.Doctor, callerID, "", "")
	assert.Equal(t, callerID, filter["createdBy"])

	filter = orderListFilter(roles.Hospital, callerID, "", "doctor")
	assert.Equal(t, callerID, filter["createdBy"])
	assert.Equal(t, "doctor", filter["orderType"])
}

func TestOrderListFilterDelivererExcludesDelivered(t *testing.T) {
	filter := orderListFilter(roles.Deliverer, primitive.NilObjectID, "", "")
	assert.Equal(t, bson.M{"$ne": models.OrderStatusDelivered}, filter["status"])
	_, scopedToCreator := filter["createdBy"]
	assert.False(t, scopedToCreator)
}

func TestOrderListFilterDelivererMayAskForStatus(t *testing.T) {
	filter := orderListFilter(roles.Deliverer, primitive.NilObjectID, models.OrderStatusDelivered, "")
	assert.Equal(t, models.OrderStatusDelivered, filter["status"])
}

func TestOrderListFilterOwnerAndAdminUnscoped(t *testing.T) {
	assert.Equal(t, bson.M{}, orderListFilter(roles.Owner, primitive.NilObjectID, "", ""))
	assert.Equal(t, bson.M{}, orderListFilter(roles.Admin, primitive.NilObjectID, "", ""))
}
