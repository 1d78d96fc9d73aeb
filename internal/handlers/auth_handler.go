package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/medsupply/erp-api/internal/middleware"
	"github.com/medsupply/erp-api/internal/models"
	"github.com/medsupply/erp-api/internal/roles"
	"github.com/medsupply/erp-api/internal/utils"
)

type RegisterRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=8"`
	Role           string `json:"role" binding:"required"`
	Phone          string `json:"phone"`
	OrganizationID string `json:"organizationId"`

	// Required when Role == "doctor".
	HospitalName       string `json:"hospitalName"`
	Specialization     string `json:"specialization"`
	RegistrationNumber string `json:"registrationNumber"`
}

// Register creates an account for any of the dashboard roles.
func (h *Handler) Register(c *gin.Context) {
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

	_, err = h.DB.Collection("users").InsertOne(context.TODO(), user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			respondError(c, http.StatusBadRequest, "Email already exists")
			return
		}
		respondUnhandled(c, err)
		return
	}

	respondCreated(c, gin.H{
		"id":    user.ID.Hex(),
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role,
	}, "Account created")
}

// Login verifies credentials and hands back a bearer token.
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	var user models.User
	err := h.DB.Collection("users").FindOne(context.TODO(), bson.M{"email": req.Email, "isDeleted": bson.M{"$ne": true}}).Decode(&user)
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Role)
	if err != nil {
		respondUnhandled(c, err)
		return
	}

	user.Password = ""
	respondOK(c, gin.H{"token": token, "user": user}, "Logged in")
}

// GetProfile returns the authenticated user's own record.
func (h *Handler) GetProfile(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid user id in token")
		return
	}

	var user models.User
	err = h.DB.Collection("users").FindOne(context.TODO(), bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}
	respondOK(c, user, "")
}

// UpdateProfile lets a user change their own scoped fields. Role and email
// are not updatable here.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, err := primitive.ObjectIDFromHex(c.GetString(middleware.ContextUserID))
	if err != nil {
		respondError(c, http.StatusUnauthorized, "Invalid user id in token")
		return
	}

	var req struct {
		Name           string `json:"name"`
		Phone          string `json:"phone"`
		HospitalName   string `json:"hospitalName"`
		Specialization string `json:"specialization"`
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
	if req.HospitalName != "" {
		set["hospitalName"] = req.HospitalName
	}
	if req.Specialization != "" {
		set["specialization"] = req.Specialization
	}
	if len(set) == 0 {
		respondError(c, http.StatusBadRequest, "No update fields provided")
		return
	}

	result, err := h.DB.Collection("users").UpdateOne(context.TODO(), bson.M{"_id": userID}, bson.M{"$set": set})
	if err != nil {
		respondUnhandled(c, err)
		return
	}
	if result.MatchedCount == 0 {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}
	respondOK(c, nil, "Profile updated")
}
