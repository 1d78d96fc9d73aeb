package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/medsupply/erp-api/internal/middleware"
	"github.com/medsupply/erp-api/internal/models"
	"github.com/medsupply/erp-api/internal/roles"
	"github.com/medsupply/erp-api/internal/utils"
)

// userListFilter scopes the user list. Owners see everything and may narrow
// by any organization; every other caller is pinned to callerOrg, which must
// come from their stored account, never from the request. Owner records are
// always included regardless of organization: owners see everything, and
// everyone sees the owners.
func userListFilter(callerRole roles.Role, callerOrg, roleFilter, orgQuery string) bson.M {
	filter := bson.M{"isDeleted": bson.M{"$ne": true}}
	if roleFilter != "" {
		filter["role"] = roleFilter
	}
	if callerRole.IsOwner() {
		if orgQuery != "" {
			filter["organizationId"] = orgQuery
		}
		return filter
	}

	if callerOrg != "" {
		filter["organizationId"] = callerOrg
	} else {
		// Caller without an organization only sees records that also have
		// none; null matches missing fields too.
		filter["organizationId"] = bson.M{"$in": bson.A{"", nil}}
	}
	return bson.M{"$or": bson.A{
		filter,
		bson.M{"role": string(roles.Owner), "isDeleted": bson.M{"$ne": true}},
	}}
}

// ListUsers lists accounts, excluding soft-deleted ones. The organization
// scope for non-owner callers is read from their own user record; the
// organizationId query param only narrows owner requests.
func (h *Handler) ListUsers(c *gin.Context) {
	page, limit := parsePagination(c)

	callerRole, _ := roles.Parse(c.GetString(middleware.ContextUserRole))
	callerOrg := ""
	if !callerRole.IsOwner() {
		callerID, err := primitive.ObjectIDFromHex(c.GetString(middleware.ContextUserID))
		if err != nil {
			respondError(c, http.StatusUnauthorized, "Invalid user id in token")
			return
		}
		var caller models.User
		if err := h.DB.Collection("users").FindOne(context.TODO(), bson.M{"_id": callerID}).Decode(&caller); err != nil {
			respondError(c, http.StatusUnauthorized, "Caller account not found")
			return
		}
		callerOrg = caller.OrganizationID
	}

	filter := userListFilter(callerRole, callerOrg, c.Query("role"), c.Query("organizationId"))

	collection := h.DB.Collection("users")
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

	users := make([]models.User, 0)
	if err := cursor.All(context.TODO(), &users); err != nil {
		respondUnhandled(c, err)
		return
	}

	respondList(c, users, len(users), buildPagination(page, limit, count))
}

// CreateUser lets admins provision accounts directly.
func (h *Handler) CreateUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	role, ok := roles.Parse(req.Role)
	if !ok {
		respondError(c, http.StatusBadRequest, "Invalid role")
		return
	}
	if role == roles.Doctor && (req.HospitalName == "" || req.Specialization == "" || req.RegistrationNumber == "") {
		respondError(c, http.StatusBadRequest, "Doctor accounts require hospitalName, specialization and registrationNumber")
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		respondUnhandled(c, err)
		return
	}

	user := models.User{
		ID:                 primitive.NewObjectID(),
		Name:               req.Name,
		Email:              req.Email,
		Password:           hashedPassword,
		Role:               string(role),
		Phone:              req.Phone,
		OrganizationID:     req.OrganizationID,
		HospitalName:       req.HospitalName,
		Specialization:     req.Specialization,
		RegistrationNumber: req.RegistrationNumber,
	}

	if _, err := h.DB.Collection("users").InsertOne(context.TODO(), user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			respondError(c, http.StatusBadRequest, "Email already exists")
			return
		}
		respondUnhandled(c, err)
		return
	}

	user.Password = ""
	respondCreated(c, user, "User created")
}

// UpdateUser updates an account's admin-editable fields.
func (h *Handler) UpdateUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	var req struct {
		Name           string `json:"name"`
		Phone          string `json:"phone"`
		Role           string `json:"role"`
		OrganizationID string `json:"organizationId"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	set := bson.M{}
	if req.Name != "" {
		set["name"] = req.Name
	}
	if req.Phone != "" {
		set["phone"] = req.Phone
	}
	if req.Role != "" {
		if _, ok := roles.Parse(req.Role); !ok {
			respondError(c, http.StatusBadRequest, "Invalid role")
			return
		}
		set["role"] = req.Role
	}
	if req.OrganizationID != "" {
		set["organizationId"] = req.OrganizationID
	}
	if len(set) == 0 {
		respondError(c, http.StatusBadRequest, "No update fields provided")
		return
	}

	result, err := h.DB.Collection("users").UpdateOne(context.TODO(), bson.M{"_id": userID, "isDeleted": bson.M{"$ne": true}}, bson.M{"$set": set})
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	if result.MatchedCount == 0 {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}
	respondOK(c, nil, "User updated")
}

// DeleteUser soft-deletes an account. Accounts are never hard-deleted.
func (h *Handler) DeleteUser(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid user id")
		return
	}

	result, err := h.DB.Collection("users").UpdateOne(context.TODO(), bson.M{"_id": userID}, bson.M{"$set": bson.M{"isDeleted": true}})
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	if result.MatchedCount == 0 {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}
	respondOK(c, nil, "User deleted")
}
